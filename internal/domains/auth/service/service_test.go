package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelpos/config"
	"hotelpos/infras/jwt"
	jwtMocks "hotelpos/infras/jwt/mocks"
	"hotelpos/infras/otel/mocks"
	"hotelpos/internal/domains/auth/model/dto"
	"hotelpos/internal/domains/auth/service"
	userMocks "hotelpos/internal/domains/user/mocks"
	userModel "hotelpos/internal/domains/user/model"
	"hotelpos/shared/constant"
	"hotelpos/shared/failure"
)

// PIN 1234 hashed with bcrypt.
const hashedPIN = "$2b$10$Wh0rxZ1GB5TuDE.9d888W..74BcRG/EIcUebLh1FJpd2h7wSAnX9."

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

	validUser := userModel.User{
		ID:       "user-id-123",
		Username: "admin",
		FullName: "Administrator",
		PIN:      hashedPIN,
		Role:     constant.RoleAdmin,
		Active:   true,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Username: "admin", PIN: "1234"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(validUser.ID, validUser.Username, validUser.Role).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
					}, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unknown username",
			req:  dto.LoginRequest{Username: "ghost", PIN: "1234"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
		{
			name: "wrong pin",
			req:  dto.LoginRequest{Username: "admin", PIN: "9999"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser, nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
		{
			name: "deactivated user",
			req:  dto.LoginRequest{Username: "admin", PIN: "1234"},
			setupMock: func() {
				inactive := validUser
				inactive.Active = false

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access-token", res.AccessToken)
				assert.Equal(t, "admin", res.User.Username)
			}
		})
	}
}

func TestAuthService_LoginSurvivesLastLoginFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

	mockUserRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(userModel.User{ID: "user-1", Username: "admin", PIN: hashedPIN, Role: constant.RoleAdmin, Active: true}, nil)

	mockJWT.EXPECT().
		GenerateTokenPair("user-1", "admin", constant.RoleAdmin).
		Return(&jwt.TokenPair{AccessToken: "access-token"}, nil)

	mockUserRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("database error"))

	res, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", PIN: "1234"})

	assert.NoError(t, err)
	assert.Equal(t, "access-token", res.AccessToken)
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

	t.Run("successful refresh", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("refresh-token").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("bad-token").
			Return(nil, jwt.ErrInvalidToken)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad-token"})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}
