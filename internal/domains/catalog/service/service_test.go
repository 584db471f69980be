package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelpos/config"
	"hotelpos/infras/otel/mocks"
	catalogMocks "hotelpos/internal/domains/catalog/mocks"
	"hotelpos/internal/domains/catalog/model"
	"hotelpos/internal/domains/catalog/model/dto"
	"hotelpos/internal/domains/catalog/service"
	cacheMocks "hotelpos/shared/cache/mocks"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/failure"
)

type catalogServiceMocks struct {
	categoryRepo *catalogMocks.MockCategory
	itemRepo     *catalogMocks.MockItem
	cache        *cacheMocks.MockRedisCache
}

func newCatalogService(ctrl *gomock.Controller) (service.Catalog, catalogServiceMocks) {
	m := catalogServiceMocks{
		categoryRepo: catalogMocks.NewMockCategory(ctrl),
		itemRepo:     catalogMocks.NewMockItem(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache invalidation and refresh run on background goroutines.
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.categoryRepo, m.itemRepo, cfg, m.cache, nil, mocks.NewOtel())

	return svc, m
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestCatalogService_CreateCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCatalogService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func() {
				m.categoryRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "duplicate name",
			setupMock: func() {
				m.categoryRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505"})
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.CreateCategory(userContext(), dto.CreateCategoryRequest{Name: "FOOD", TaxRate: 5})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogService_DeleteCategoryWithItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCatalogService(ctrl)

	m.categoryRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	m.itemRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

	err := svc.DeleteCategory(userContext(), "category-1")

	assert.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
}

func TestCatalogService_GetCategoryFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCatalogService(ctrl)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			res, _ := value.(*dto.CategoryResponse)
			res.ID = "category-1"
			res.Name = "FOOD"

			return nil
		})

	res, err := svc.GetCategory(userContext(), "category-1")

	assert.NoError(t, err)
	assert.Equal(t, "FOOD", res.Name)
}

func TestCatalogService_GetCategoryNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCatalogService(ctrl)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	m.categoryRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Category{}, nil)

	_, err := svc.GetCategory(userContext(), "missing")

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestCatalogService_UpdateCategoryEmptyRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newCatalogService(ctrl)

	err := svc.UpdateCategory(userContext(), dto.UpdateCategoryRequest{}, "category-1")

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestCatalogService_CreateItemUnknownCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCatalogService(ctrl)

	m.categoryRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := svc.CreateItem(userContext(), dto.CreateItemRequest{
		Name:       "Butter Chicken",
		Price:      320,
		CategoryID: "missing",
	})

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestCatalogService_GetMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCatalogService(ctrl)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	m.categoryRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Category{
			{ID: "category-1", Name: "FOOD", TaxRate: 5},
		}, nil)

	m.itemRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Item{
			{ID: "item-1", Name: "Butter Chicken", Price: 320, CategoryID: "category-1"},
		}, nil)

	res, err := svc.GetMenu(userContext())

	assert.NoError(t, err)
	assert.Len(t, res.Categories, 1)
	assert.Len(t, res.Categories[0].Items, 1)
}

func TestCatalogService_GetItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCatalogService(ctrl)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	m.itemRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	m.itemRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Item{
			{ID: "item-1", Name: "Butter Chicken", Price: 320},
		}, nil)

	res, err := svc.GetItems(userContext(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Items, 1)
}
