package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotelpos/infras/otel"
	"hotelpos/internal/domains/settings/model/dto"
	"hotelpos/internal/domains/settings/service"
	"hotelpos/shared/constant"
	"hotelpos/shared/validator"
	"hotelpos/transport/http/middleware"
	"hotelpos/transport/http/response"
)

type Handler struct {
	service service.Settings
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Settings, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Auth)

		routerGroup.Get("/", handler.GetSettings)

		routerGroup.With(handler.auth.RequireRole(constant.RoleAdmin)).Put("/", handler.UpdateSettings)
	})
}

// GetSettings returns the hotel profile settings.
// @Summary Get settings
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Data[dto.GetSettingsResponse]
// @Router /v1/settings [get]
// @Security BearerAuth
func (handler *Handler) GetSettings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateSettings upserts the given settings keys.
// @Summary Update settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Settings to update"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Router /v1/settings [put]
// @Security BearerAuth
func (handler *Handler) UpdateSettings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSettings")
	defer scope.End()

	var req dto.UpdateSettingsRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update settings")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Settings updated successfully")
}
