package hall

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotelpos/infras/otel"
	"hotelpos/internal/domains/hall/model/dto"
	"hotelpos/internal/domains/hall/service"
	"hotelpos/shared/constant"
	"hotelpos/shared/validator"
	"hotelpos/transport/http/middleware"
	"hotelpos/transport/http/response"
)

type Handler struct {
	service service.Hall
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Hall, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/halls", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Auth)

		routerGroup.Get("/", handler.GetHalls)
		routerGroup.Post("/bookings", handler.BookHall)
		routerGroup.Get("/bookings", handler.GetBookings)
		routerGroup.Delete("/bookings/{id}", handler.CancelBooking)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(handler.auth.RequireRole(constant.RoleAdmin))
			adminGroup.Post("/", handler.CreateHall)
			adminGroup.Delete("/{id}", handler.DeleteHall)
		})
	})
}

func actor(request *http.Request) string {
	user, _ := request.Context().Value(constant.ContextKeyUserID).(string)

	return user
}

// GetHalls lists the banquet halls.
// @Summary Get all halls
// @Tags Hall
// @Produce json
// @Success 200 {object} response.Data[dto.GetHallsResponse]
// @Router /v1/halls [get]
// @Security BearerAuth
func (handler *Handler) GetHalls(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHalls")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateHall adds a banquet hall.
// @Summary Create a hall
// @Tags Hall
// @Accept json
// @Produce json
// @Param request body dto.CreateHallRequest true "Hall details"
// @Success 201 {object} response.Data[dto.HallResponse]
// @Failure 409 {object} response.Error
// @Router /v1/halls [post]
// @Security BearerAuth
func (handler *Handler) CreateHall(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHall")
	defer scope.End()

	var req dto.CreateHallRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req, actor(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hall")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// DeleteHall removes a hall. A hall with bookings cannot be deleted.
// @Summary Delete a hall
// @Tags Hall
// @Produce json
// @Param id path string true "Hall ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/halls/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteHall(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHall")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hall")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Hall deleted successfully")
}

// BookHall reserves a hall for an event date.
// @Summary Book a hall
// @Tags Hall
// @Accept json
// @Produce json
// @Param request body dto.BookHallRequest true "Booking details"
// @Success 201 {object} response.Data[dto.HallBookingResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/halls/bookings [post]
// @Security BearerAuth
func (handler *Handler) BookHall(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookHall")
	defer scope.End()

	var req dto.BookHallRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Book(ctx, req, actor(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book hall")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings lists hall bookings, optionally within a date range.
// @Summary Get hall bookings
// @Tags Hall
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetHallBookingsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/halls/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHallBookings")
	defer scope.End()

	from := request.URL.Query().Get("from")
	to := request.URL.Query().Get("to")

	res, err := handler.service.GetBookings(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CancelBooking removes a hall booking.
// @Summary Cancel a hall booking
// @Tags Hall
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/halls/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelHallBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.CancelBooking(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel hall booking")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking cancelled successfully")
}
