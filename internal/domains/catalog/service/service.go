package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"hotelpos/config"
	"hotelpos/infras/otel"
	"hotelpos/infras/s3"
	"hotelpos/internal/domains/catalog/model"
	"hotelpos/internal/domains/catalog/model/dto"
	"hotelpos/internal/domains/catalog/repository"
	"hotelpos/shared"
	"hotelpos/shared/cache"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/failure"
)

const (
	cacheGetCategory    = "category:get"
	cacheGetAllCategory = "category:gets"
	cacheGetItem        = "item:get"
	cacheGetAllItem     = "item:gets"
	cacheGetMenu        = "menu:get"

	itemImageDirectory = "menu-items"
)

type Catalog interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) error
	GetCategories(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCategoriesResponse, error)
	GetCategory(ctx context.Context, id string) (dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, req dto.UpdateCategoryRequest, id string) error
	DeleteCategory(ctx context.Context, id string) error

	CreateItem(ctx context.Context, req dto.CreateItemRequest) error
	GetItems(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetItemsResponse, error)
	GetItem(ctx context.Context, id string) (dto.ItemResponse, error)
	UpdateItem(ctx context.Context, req dto.UpdateItemRequest, id string) error
	DeleteItem(ctx context.Context, id string) error
	UploadItemImage(ctx context.Context, id string, file multipart.File, fileHeader *multipart.FileHeader) (string, error)

	GetMenu(ctx context.Context) (dto.GetMenuResponse, error)
}

type serviceImpl struct {
	categoryRepo repository.Category
	itemRepo     repository.Item
	cfg          *config.Config
	cache        cache.RedisCache
	s3           s3.S3
	otel         otel.Otel
}

func New(categoryRepo repository.Category, itemRepo repository.Item, cfg *config.Config, cache cache.RedisCache, s3 s3.S3, otel otel.Otel) Catalog {
	return &serviceImpl{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		cfg:          cfg,
		cache:        cache,
		s3:           s3,
		otel:         otel,
	}
}

func (s *serviceImpl) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCategory")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.categoryRepo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create category")

		return failure.ConflictOnDuplicate(fmt.Errorf("failed to create category: %w", err), "category name already exists") //nolint:wrapcheck
	}

	s.invalidateCatalogCaches(ctx)

	return nil
}

func (s *serviceImpl) GetCategories(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCategoriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCategories")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCategory, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for categories")

		return res, nil
	}

	total, err := s.categoryRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count categories")

		return res, fmt.Errorf("failed to count categories: %w", err)
	}

	models, err := s.categoryRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get categories")

		return res, fmt.Errorf("failed to get categories: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save categories to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetCategory(ctx context.Context, id string) (res dto.CategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCategory")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCategory, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	category, err := s.categoryRepo.Get(ctx, shared.FilterByID(id, model.CategoryFieldID, model.CategoryTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get category")

		return res, fmt.Errorf("failed to get category: %w", err)
	}

	if category.ID == constant.Empty {
		return res, failure.NotFound("category not found") //nolint:wrapcheck
	}

	res.FromModel(category)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save category to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateCategory(ctx context.Context, req dto.UpdateCategoryRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCategory")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateCategoryRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.CategoryFieldID, model.CategoryTableName)

	exist, err := s.categoryRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if category exists")

		return fmt.Errorf("failed to check if category exists: %w", err)
	}

	if !exist {
		return failure.NotFound("category not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.categoryRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update category")

		return failure.ConflictOnDuplicate(fmt.Errorf("failed to update category: %w", err), "category name already exists") //nolint:wrapcheck
	}

	s.invalidateCatalogCaches(ctx)

	return nil
}

func (s *serviceImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteCategory")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.CategoryFieldID, model.CategoryTableName)

	exist, err := s.categoryRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if category exists")

		return fmt.Errorf("failed to check if category exists: %w", err)
	}

	if !exist {
		return failure.NotFound("category not found") //nolint:wrapcheck
	}

	hasItems, err := s.itemRepo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.ItemFieldCategoryID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ItemTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check category items")

		return fmt.Errorf("failed to check category items: %w", err)
	}

	if hasItems {
		return failure.Conflict("category still has menu items") //nolint:wrapcheck
	}

	if err = s.categoryRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete category")

		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.invalidateCatalogCaches(ctx)

	return nil
}

func (s *serviceImpl) CreateItem(ctx context.Context, req dto.CreateItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	categoryExists, err := s.categoryRepo.Exist(ctx, shared.FilterByID(req.CategoryID, model.CategoryFieldID, model.CategoryTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if category exists")

		return fmt.Errorf("failed to check if category exists: %w", err)
	}

	if !categoryExists {
		return failure.BadRequestFromString("category does not exist") //nolint:wrapcheck
	}

	if err = s.itemRepo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create menu item")

		return failure.ConflictOnDuplicate(fmt.Errorf("failed to create menu item: %w", err), "menu item name already exists") //nolint:wrapcheck
	}

	s.invalidateCatalogCaches(ctx)

	return nil
}

func (s *serviceImpl) GetItems(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetItems")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllItem, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for menu items")

		return res, nil
	}

	total, err := s.itemRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count menu items")

		return res, fmt.Errorf("failed to count menu items: %w", err)
	}

	models, err := s.itemRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu items")

		return res, fmt.Errorf("failed to get menu items: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save menu items to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetItem(ctx context.Context, id string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetItem, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	item, err := s.itemRepo.Get(ctx, shared.FilterByID(id, model.ItemFieldID, model.ItemTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu item")

		return res, fmt.Errorf("failed to get menu item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("menu item not found") //nolint:wrapcheck
	}

	res.FromModel(item)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save menu item to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateItem(ctx context.Context, req dto.UpdateItemRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateItemRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.ItemFieldID, model.ItemTableName)

	exist, err := s.itemRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if menu item exists")

		return fmt.Errorf("failed to check if menu item exists: %w", err)
	}

	if !exist {
		return failure.NotFound("menu item not found") //nolint:wrapcheck
	}

	if req.CategoryID != constant.Empty {
		categoryExists, err := s.categoryRepo.Exist(ctx, shared.FilterByID(req.CategoryID, model.CategoryFieldID, model.CategoryTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if category exists")

			return fmt.Errorf("failed to check if category exists: %w", err)
		}

		if !categoryExists {
			return failure.BadRequestFromString("category does not exist") //nolint:wrapcheck
		}
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.itemRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update menu item")

		return failure.ConflictOnDuplicate(fmt.Errorf("failed to update menu item: %w", err), "menu item name already exists") //nolint:wrapcheck
	}

	s.invalidateCatalogCaches(ctx)

	return nil
}

func (s *serviceImpl) DeleteItem(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.ItemFieldID, model.ItemTableName)

	item, err := s.itemRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu item")

		return fmt.Errorf("failed to get menu item: %w", err)
	}

	if item.ID == constant.Empty {
		return failure.NotFound("menu item not found") //nolint:wrapcheck
	}

	if err = s.itemRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete menu item")

		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	if s.cfg.External.S3.Enable && item.ImageURL != constant.Empty {
		go func() {
			c := context.WithoutCancel(ctx)

			bucket := s.cfg.External.S3.BucketName
			objectName := s.s3.GetObjectNameFromURL(bucket, item.ImageURL)

			if err := s.s3.DeleteFile(c, bucket, constant.Empty, objectName); err != nil {
				log.Error().Err(err).Msg("failed to delete menu item image")
			}
		}()
	}

	s.invalidateCatalogCaches(ctx)

	return nil
}

func (s *serviceImpl) UploadItemImage(ctx context.Context, id string, file multipart.File, fileHeader *multipart.FileHeader) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadItemImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.ItemFieldID, model.ItemTableName)

	exist, err := s.itemRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if menu item exists")

		return constant.Empty, fmt.Errorf("failed to check if menu item exists: %w", err)
	}

	if !exist {
		return constant.Empty, failure.NotFound("menu item not found") //nolint:wrapcheck
	}

	fileName := id + filepath.Ext(fileHeader.Filename)

	url, err = s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, itemImageDirectory, file, fileHeader, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload menu item image")

		return constant.Empty, fmt.Errorf("failed to upload menu item image: %w", err)
	}

	if err = s.itemRepo.Update(ctx, map[string]any{
		model.ItemFieldImageURL:  url,
		constant.FieldModifiedBy: user,
	}, filter); err != nil {
		log.Error().Err(err).Msg("failed to save menu item image url")

		return constant.Empty, fmt.Errorf("failed to save menu item image url: %w", err)
	}

	s.invalidateCatalogCaches(ctx)

	return url, nil
}

func (s *serviceImpl) GetMenu(ctx context.Context) (res dto.GetMenuResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMenu")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetMenu, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetMenu).Msg("cache hit for menu")

		return res, nil
	}

	sortByName := gDto.QueryParams{SortBy: model.CategoryFieldName, SortDir: gDto.SortDirAsc}

	categories, err := s.categoryRepo.GetAll(ctx, sortByName, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get categories")

		return res, fmt.Errorf("failed to get categories: %w", err)
	}

	items, err := s.itemRepo.GetAll(ctx, gDto.QueryParams{SortBy: model.ItemTableName + "." + model.ItemFieldName, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu items")

		return res, fmt.Errorf("failed to get menu items: %w", err)
	}

	res.FromModels(categories, items)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetMenu, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save menu to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidateCatalogCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetCategory)
		shared.InvalidateCaches(c, s.cache, cacheGetAllCategory)
		shared.InvalidateCaches(c, s.cache, cacheGetItem)
		shared.InvalidateCaches(c, s.cache, cacheGetAllItem)
		shared.InvalidateCaches(c, s.cache, cacheGetMenu)
	}()
}
