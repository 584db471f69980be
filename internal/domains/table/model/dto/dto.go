package dto

import (
	"github.com/google/uuid"

	"hotelpos/internal/domains/table/model"
	"hotelpos/shared/constant"
	gModel "hotelpos/shared/model"
	"hotelpos/shared/timezone"
)

type CreateTableRequest struct {
	TableNumber int `json:"table_number" validate:"required,gte=1"`
}

func (c *CreateTableRequest) ToModel(user string) model.DiningTable {
	return model.DiningTable{
		ID:          uuid.NewString(),
		TableNumber: c.TableNumber,
		Status:      constant.SlotStatusAvailable,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type TableResponse struct {
	ID          string  `json:"id"`
	TableNumber int     `json:"table_number"`
	Status      string  `json:"status"`
	TotalDue    float64 `json:"total_due"`
}

func (r *TableResponse) FromModel(mod model.TableWithDue) {
	r.ID = mod.ID
	r.TableNumber = mod.TableNumber
	r.Status = mod.Status
	r.TotalDue = mod.TotalDue
}

type GetTablesResponse struct {
	Tables []TableResponse `json:"tables"`
}

func (r *GetTablesResponse) FromModels(models []model.TableWithDue) {
	r.Tables = make([]TableResponse, len(models))
	for i, mod := range models {
		r.Tables[i].FromModel(mod)
	}
}
