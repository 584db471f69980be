package order

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotelpos/infras/otel"
	"hotelpos/internal/domains/order/model/dto"
	"hotelpos/internal/domains/order/service"
	"hotelpos/shared/constant"
	"hotelpos/shared/failure"
	"hotelpos/shared/validator"
	"hotelpos/transport/http/middleware"
	"hotelpos/transport/http/response"
)

type Handler struct {
	service service.Order
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Order, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/orders", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Auth)

		routerGroup.Put("/", handler.SaveOrder)
		routerGroup.Get("/active", handler.GetActiveOrder)
		routerGroup.Post("/kot", handler.SendKOT)
		routerGroup.Post("/checkout/{id}", handler.CheckoutTable)
		routerGroup.Post("/takeout", handler.SaveTakeoutOrder)
		routerGroup.Post("/delivery", handler.SaveDeliveryOrder)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(handler.auth.RequireRole(constant.RoleAdmin))
			adminGroup.Get("/sales", handler.GetSalesHistory)
			adminGroup.Get("/reports/daily", handler.GetDailyReport)
		})
	})
}

func actor(request *http.Request) string {
	user, _ := request.Context().Value(constant.ContextKeyUserID).(string)

	return user
}

// target reads the table or room the request is aimed at. Exactly one of the
// two must be set.
func target(request *http.Request) (tableID, roomID string, err error) {
	tableID = request.URL.Query().Get("table_id")
	roomID = request.URL.Query().Get("room_id")

	if (tableID == "") == (roomID == "") {
		return "", "", failure.BadRequestFromString("exactly one of table_id or room_id is required")
	}

	return tableID, roomID, nil
}

// SaveOrder replaces the open order of a table or room with the given cart.
// @Summary Save an order
// @Description Replace the open order of a table or room, creating it when none is open.
// @Tags Order
// @Accept json
// @Produce json
// @Param request body dto.SaveOrderRequest true "Cart state"
// @Success 200 {object} response.Data[dto.OrderResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/orders [put]
// @Security BearerAuth
func (handler *Handler) SaveOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveOrder")
	defer scope.End()

	var req dto.SaveOrderRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.SaveOrder(ctx, req, actor(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save order")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetActiveOrder returns the open order of a table or room.
// @Summary Get the active order
// @Tags Order
// @Produce json
// @Param table_id query string false "Table ID"
// @Param room_id query string false "Room ID"
// @Success 200 {object} response.Data[dto.OrderResponse]
// @Failure 404 {object} response.Error
// @Router /v1/orders/active [get]
// @Security BearerAuth
func (handler *Handler) GetActiveOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveOrder")
	defer scope.End()

	tableID, roomID, err := target(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.GetActiveOrder(ctx, tableID, roomID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SendKOT prints the unsent lines of the open order as a kitchen ticket.
// @Summary Send a kitchen order ticket
// @Tags Order
// @Produce json
// @Param table_id query string false "Table ID"
// @Param room_id query string false "Room ID"
// @Success 200 {object} response.Data[dto.DocumentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/orders/kot [post]
// @Security BearerAuth
func (handler *Handler) SendKOT(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendKOT")
	defer scope.End()

	tableID, roomID, err := target(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.SendKOT(ctx, tableID, roomID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send kitchen ticket")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CheckoutTable bills and closes the open order of a table.
// @Summary Check out a table
// @Tags Order
// @Produce json
// @Param id path string true "Table ID"
// @Success 200 {object} response.Data[dto.CheckoutTableResponse]
// @Failure 404 {object} response.Error
// @Router /v1/orders/checkout/{id} [post]
// @Security BearerAuth
func (handler *Handler) CheckoutTable(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckoutTable")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.CheckoutTable(ctx, id, actor(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to checkout table")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SaveTakeoutOrder settles a takeout order in one step.
// @Summary Create a takeout order
// @Tags Order
// @Accept json
// @Produce json
// @Param request body dto.TakeoutOrderRequest true "Order lines"
// @Success 201 {object} response.Data[dto.CheckoutTableResponse]
// @Failure 400 {object} response.Error
// @Router /v1/orders/takeout [post]
// @Security BearerAuth
func (handler *Handler) SaveTakeoutOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveTakeoutOrder")
	defer scope.End()

	var req dto.TakeoutOrderRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.SaveTakeoutOrder(ctx, req, actor(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save takeout order")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// SaveDeliveryOrder settles a delivery order in one step.
// @Summary Create a delivery order
// @Tags Order
// @Accept json
// @Produce json
// @Param request body dto.DeliveryOrderRequest true "Order lines and customer details"
// @Success 201 {object} response.Data[dto.CheckoutTableResponse]
// @Failure 400 {object} response.Error
// @Router /v1/orders/delivery [post]
// @Security BearerAuth
func (handler *Handler) SaveDeliveryOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveDeliveryOrder")
	defer scope.End()

	var req dto.DeliveryOrderRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.SaveDeliveryOrder(ctx, req, actor(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save delivery order")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetSalesHistory lists closed orders in a date range.
// @Summary Get sales history
// @Tags Order
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetSalesHistoryResponse]
// @Failure 400 {object} response.Error
// @Router /v1/orders/sales [get]
// @Security BearerAuth
func (handler *Handler) GetSalesHistory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSalesHistory")
	defer scope.End()

	from := request.URL.Query().Get("from")
	to := request.URL.Query().Get("to")

	res, err := handler.service.SalesHistory(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetDailyReport aggregates one day's closed orders by order type.
// @Summary Get the daily report
// @Tags Order
// @Produce json
// @Param date query string true "Report date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetDailyReportResponse]
// @Failure 400 {object} response.Error
// @Router /v1/orders/reports/daily [get]
// @Security BearerAuth
func (handler *Handler) GetDailyReport(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDailyReport")
	defer scope.End()

	date := request.URL.Query().Get("date")

	res, err := handler.service.DailyReport(ctx, date)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
