package service_test

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelpos/config"
	"hotelpos/infras/otel/mocks"
	tableMocks "hotelpos/internal/domains/table/mocks"
	"hotelpos/internal/domains/table/model"
	"hotelpos/internal/domains/table/model/dto"
	"hotelpos/internal/domains/table/service"
	"hotelpos/shared/constant"
	"hotelpos/shared/failure"
)

func newTableService(ctrl *gomock.Controller) (service.Table, *tableMocks.MockTable) {
	mockRepo := tableMocks.NewMockTable(ctrl)

	return service.New(mockRepo, &config.Config{}, mocks.NewOtel()), mockRepo
}

func TestTableService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTableService(ctrl)

	mockRepo.EXPECT().
		GetAllWithDue(gomock.Any()).
		Return([]model.TableWithDue{
			{DiningTable: model.DiningTable{ID: "table-1", TableNumber: 1, Status: constant.SlotStatusOccupied}, TotalDue: 672},
			{DiningTable: model.DiningTable{ID: "table-2", TableNumber: 2, Status: constant.SlotStatusAvailable}},
		}, nil)

	res, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Tables, 2)
	assert.Equal(t, 672.0, res.Tables[0].TotalDue)
	assert.Equal(t, 0.0, res.Tables[1].TotalDue)
}

func TestTableService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTableService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, table model.DiningTable) error {
						assert.Equal(t, 7, table.TableNumber)
						assert.Equal(t, constant.SlotStatusAvailable, table.Status)

						return nil
					})
			},
		},
		{
			name: "duplicate table number",
			setupMock: func() {
				mockRepo.EXPECT().
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

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, dto.CreateTableRequest{TableNumber: 7})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTableService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTableService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.DiningTable{ID: "table-1", Status: constant.SlotStatusAvailable}, nil)
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unknown table",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.DiningTable{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "occupied table",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.DiningTable{ID: "table-1", Status: constant.SlotStatusOccupied}, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "table-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
