package router

import (
	"github.com/go-chi/chi/v5"

	"hotelpos/internal/handlers/auth"
	"hotelpos/internal/handlers/catalog"
	"hotelpos/internal/handlers/hall"
	"hotelpos/internal/handlers/health"
	"hotelpos/internal/handlers/order"
	"hotelpos/internal/handlers/room"
	"hotelpos/internal/handlers/settings"
	"hotelpos/internal/handlers/table"
	"hotelpos/internal/handlers/user"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Catalog  catalog.Handler
	Hall     hall.Handler
	Health   health.Handler
	Order    order.Handler
	Room     room.Handler
	Settings settings.Handler
	Table    table.Handler
	User     user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Hall.Router(routerGroup)
		r.DomainHandlers.Order.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
		r.DomainHandlers.Table.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
