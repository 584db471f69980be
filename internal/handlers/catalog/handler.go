package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotelpos/infras/otel"
	"hotelpos/internal/domains/catalog/model/dto"
	"hotelpos/internal/domains/catalog/service"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/failure"
	"hotelpos/shared/validator"
	"hotelpos/transport/http/middleware"
	"hotelpos/transport/http/response"
)

type Handler struct {
	service service.Catalog
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Catalog, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/categories", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Auth)

		routerGroup.Get("/", handler.GetCategories)
		routerGroup.Get("/{id}", handler.GetCategoryByID)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(handler.auth.RequireRole(constant.RoleAdmin))
			adminGroup.Post("/", handler.CreateCategory)
			adminGroup.Patch("/{id}", handler.UpdateCategory)
			adminGroup.Delete("/{id}", handler.DeleteCategory)
		})
	})

	router.Route("/items", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Auth)

		routerGroup.Get("/", handler.GetItems)
		routerGroup.Get("/{id}", handler.GetItemByID)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(handler.auth.RequireRole(constant.RoleAdmin))
			adminGroup.Post("/", handler.CreateItem)
			adminGroup.Patch("/{id}", handler.UpdateItem)
			adminGroup.Delete("/{id}", handler.DeleteItem)
			adminGroup.Post("/{id}/image", handler.UploadItemImage)
		})
	})

	router.With(handler.auth.Auth).Get("/menu", handler.GetMenu)
}

// CreateCategory adds a menu category.
// @Summary Create a category
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} response.Message
// @Failure 409 {object} response.Error
// @Router /v1/categories [post]
// @Security BearerAuth
func (handler *Handler) CreateCategory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCategory")
	defer scope.End()

	var req dto.CreateCategoryRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreateCategory(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create category")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Category created successfully")
}

// GetCategories lists menu categories.
// @Summary Get all categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[dto.GetCategoriesResponse]
// @Router /v1/categories [get]
// @Security BearerAuth
func (handler *Handler) GetCategories(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(request, true)

	res, err := handler.service.GetCategories(ctx, params, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) GetCategoryByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategoryByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.GetCategory(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) UpdateCategory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCategory")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	var req dto.UpdateCategoryRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateCategory(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update category")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Category updated successfully")
}

// DeleteCategory removes a category. A category that still has menu items
// cannot be deleted.
func (handler *Handler) DeleteCategory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCategory")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.DeleteCategory(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete category")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Category deleted successfully")
}

// CreateItem adds a menu item.
// @Summary Create a menu item
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateItemRequest true "Item details"
// @Success 201 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/items [post]
// @Security BearerAuth
func (handler *Handler) CreateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	var req dto.CreateItemRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreateItem(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create item")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Item created successfully")
}

func (handler *Handler) GetItems(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(request, true)

	res, err := handler.service.GetItems(ctx, params, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) GetItemByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.GetItem(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) UpdateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	var req dto.UpdateItemRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateItem(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update item")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Item updated successfully")
}

func (handler *Handler) DeleteItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.DeleteItem(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete item")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Item deleted successfully")
}

// UploadItemImage attaches an image to a menu item.
// @Summary Upload a menu item image
// @Tags Catalog
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Item ID"
// @Param file formData file true "Image file"
// @Success 200 {object} response.Data[string]
// @Failure 400 {object} response.Error
// @Router /v1/items/{id}/image [post]
// @Security BearerAuth
func (handler *Handler) UploadItemImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadItemImage")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		response.WithError(writer, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	file, fileHeader, err := request.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, failure.BadRequestFromString("missing image file"))

		return
	}
	defer file.Close()

	url, err := handler.service.UploadItemImage(ctx, id, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload item image")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, url)
}

// GetMenu returns the full menu grouped by category.
// @Summary Get the menu
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[dto.GetMenuResponse]
// @Router /v1/menu [get]
// @Security BearerAuth
func (handler *Handler) GetMenu(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenu")
	defer scope.End()

	res, err := handler.service.GetMenu(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
