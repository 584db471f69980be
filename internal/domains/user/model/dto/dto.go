package dto

import (
	"github.com/google/uuid"

	"hotelpos/internal/domains/user/model"
	"hotelpos/shared"
	gDto "hotelpos/shared/dto"
	gModel "hotelpos/shared/model"
	"hotelpos/shared/timezone"
)

type CreateUserRequest struct {
	Username string `json:"username"  validate:"required,max=50"`
	FullName string `json:"full_name" validate:"omitempty,max=100"`
	PIN      string `json:"pin"       validate:"required,numeric,min=4,max=8"`
	Role     string `json:"role"      validate:"required,oneof=ADMIN CASHIER"`
}

func (c *CreateUserRequest) ToModel(user, hashedPIN string) model.User {
	return model.User{
		ID:       uuid.NewString(),
		Username: c.Username,
		FullName: c.FullName,
		PIN:      hashedPIN,
		Role:     c.Role,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateUserRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"omitempty,max=100"`
	Role     string `db:"role"      json:"role"      validate:"omitempty,oneof=ADMIN CASHIER"`
	Active   *bool  `db:"active"    json:"active"    validate:"omitempty"`
}

type UpdatePINRequest struct {
	CurrentPIN string `json:"current_pin" validate:"required,numeric"`
	NewPIN     string `json:"new_pin"     validate:"required,numeric,min=4,max=8"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	LastLogin string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(mod model.User) {
	r.ID = mod.ID
	r.Username = mod.Username
	r.FullName = mod.FullName
	r.Role = mod.Role
	r.Active = mod.Active

	if mod.LastLogin != nil {
		r.LastLogin = timezone.Format(*mod.LastLogin, "2006-01-02 15:04:05")
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
