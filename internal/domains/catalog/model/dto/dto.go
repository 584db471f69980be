package dto

import (
	"github.com/google/uuid"

	"hotelpos/internal/domains/catalog/model"
	"hotelpos/shared"
	gDto "hotelpos/shared/dto"
	gModel "hotelpos/shared/model"
	"hotelpos/shared/timezone"
)

type CreateCategoryRequest struct {
	Name    string  `json:"name"     validate:"required,max=100"`
	TaxRate float64 `json:"tax_rate" validate:"gte=0,lte=100"`
}

func (c *CreateCategoryRequest) ToModel(user string) model.Category {
	return model.Category{
		ID:      uuid.NewString(),
		Name:    c.Name,
		TaxRate: c.TaxRate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCategoryRequest struct {
	Name    string   `db:"name"     json:"name"     validate:"omitempty,max=100"`
	TaxRate *float64 `db:"tax_rate" json:"tax_rate" validate:"omitempty,gte=0,lte=100"`
}

type CategoryResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	TaxRate float64 `json:"tax_rate"`
	gDto.Metadata
}

func (r *CategoryResponse) FromModel(mod model.Category) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.TaxRate = mod.TaxRate
	r.Metadata.FromModel(mod.Metadata)
}

type GetCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetCategoriesResponse) FromModels(models []model.Category, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Categories = make([]CategoryResponse, len(models))
	for i, mod := range models {
		r.Categories[i].FromModel(mod)
	}
}

type CreateItemRequest struct {
	Name          string   `json:"name"           validate:"required,max=100"`
	Price         float64  `json:"price"          validate:"required,gte=0"`
	DeliveryPrice float64  `json:"delivery_price" validate:"omitempty,gte=0"`
	CategoryID    string   `json:"category_id"    validate:"required"`
	TaxOverride   *float64 `json:"tax_override"   validate:"omitempty,gte=0,lte=100"`
}

func (c *CreateItemRequest) ToModel(user string) model.Item {
	return model.Item{
		ID:            uuid.NewString(),
		Name:          c.Name,
		Price:         c.Price,
		DeliveryPrice: c.DeliveryPrice,
		CategoryID:    c.CategoryID,
		TaxOverride:   c.TaxOverride,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateItemRequest struct {
	Name          string   `db:"name"           json:"name"           validate:"omitempty,max=100"`
	Price         *float64 `db:"price"          json:"price"          validate:"omitempty,gte=0"`
	DeliveryPrice *float64 `db:"delivery_price" json:"delivery_price" validate:"omitempty,gte=0"`
	CategoryID    string   `db:"category_id"    json:"category_id"    validate:"omitempty"`
	TaxOverride   *float64 `db:"tax_override"   json:"tax_override"   validate:"omitempty,gte=0,lte=100"`
}

type ItemResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	DeliveryPrice float64  `json:"delivery_price"`
	CategoryID    string   `json:"category_id"`
	CategoryName  string   `json:"category_name"`
	TaxRate       float64  `json:"tax_rate"`
	TaxOverride   *float64 `json:"tax_override,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
	gDto.Metadata
}

func (r *ItemResponse) FromModel(mod model.Item) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Price = mod.Price
	r.DeliveryPrice = mod.DeliveryPrice
	r.CategoryID = mod.CategoryID
	r.CategoryName = mod.CategoryName
	r.TaxRate = mod.EffectiveTaxRate()
	r.TaxOverride = mod.TaxOverride
	r.ImageURL = mod.ImageURL
	r.Metadata.FromModel(mod.Metadata)
}

type GetItemsResponse struct {
	Items     []ItemResponse `json:"items"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetItemsResponse) FromModels(models []model.Item, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]ItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}

type MenuCategoryResponse struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	TaxRate float64        `json:"tax_rate"`
	Items   []ItemResponse `json:"items"`
}

type GetMenuResponse struct {
	Categories []MenuCategoryResponse `json:"categories"`
}

// FromModels groups the items under their categories, keeping the category
// ordering and including categories that have no items yet.
func (r *GetMenuResponse) FromModels(categories []model.Category, items []model.Item) {
	r.Categories = make([]MenuCategoryResponse, len(categories))

	itemsByCategory := make(map[string][]ItemResponse, len(categories))
	for _, item := range items {
		var res ItemResponse
		res.FromModel(item)

		itemsByCategory[item.CategoryID] = append(itemsByCategory[item.CategoryID], res)
	}

	for i, category := range categories {
		r.Categories[i] = MenuCategoryResponse{
			ID:      category.ID,
			Name:    category.Name,
			TaxRate: category.TaxRate,
			Items:   itemsByCategory[category.ID],
		}
	}
}
