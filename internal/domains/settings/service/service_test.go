package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelpos/config"
	"hotelpos/infras/otel/mocks"
	settingsMocks "hotelpos/internal/domains/settings/mocks"
	"hotelpos/internal/domains/settings/model"
	"hotelpos/internal/domains/settings/model/dto"
	"hotelpos/internal/domains/settings/service"
	cacheMocks "hotelpos/shared/cache/mocks"
	"hotelpos/shared/constant"
)

type settingsServiceMocks struct {
	repo  *settingsMocks.MockSettings
	cache *cacheMocks.MockRedisCache
}

func newSettingsService(ctrl *gomock.Controller) (service.Settings, settingsServiceMocks) {
	m := settingsServiceMocks{
		repo:  settingsMocks.NewMockSettings(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(m.repo, cfg, m.cache, mocks.NewOtel()), m
}

func TestSettingsService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSettingsService(ctrl)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Setting{
			{Key: model.KeyHotelName, Value: "Hotel Sunrise"},
			{Key: model.KeyHotelPhone, Value: "+91 80 4000 1234"},
		}, nil)

	res, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Hotel Sunrise", res.Settings[model.KeyHotelName])
	assert.Len(t, res.Settings, 2)
}

func TestSettingsService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSettingsService(ctrl)

	m.repo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, setting model.Setting) error {
			assert.Equal(t, model.KeyHotelName, setting.Key)
			assert.Equal(t, "New Name", setting.Value)
			assert.Equal(t, "test-user-id", setting.CreatedBy)

			return nil
		})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	err := svc.Update(ctx, dto.UpdateSettingsRequest{
		Settings: map[string]string{model.KeyHotelName: "New Name"},
	})

	assert.NoError(t, err)
}

func TestSettingsService_UpdateRepoFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSettingsService(ctrl)

	m.repo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(errors.New("database error"))

	err := svc.Update(context.Background(), dto.UpdateSettingsRequest{
		Settings: map[string]string{model.KeyHotelName: "New Name"},
	})

	assert.Error(t, err)
}

func TestSettingsService_GetHotelProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSettingsService(ctrl)

	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Setting{
			{Key: model.KeyHotelName, Value: "Hotel Sunrise"},
			{Key: model.KeyHotelAddress, Value: "12 MG Road, Bengaluru"},
			{Key: model.KeyHotelGST, Value: "29ABCDE1234F1Z5"},
			{Key: model.KeyHotelPhone, Value: "+91 80 4000 1234"},
		}, nil)

	profile, err := svc.GetHotelProfile(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Hotel Sunrise", profile.Name)
	assert.Equal(t, "29ABCDE1234F1Z5", profile.GSTIN)
}
