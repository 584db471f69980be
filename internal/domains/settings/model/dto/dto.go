package dto

import (
	"hotelpos/internal/domains/settings/model"
)

type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" validate:"required,min=1"`
}

type GetSettingsResponse struct {
	Settings map[string]string `json:"settings"`
}

func (r *GetSettingsResponse) FromModels(models []model.Setting) {
	r.Settings = make(map[string]string, len(models))
	for _, mod := range models {
		r.Settings[mod.Key] = mod.Value
	}
}
