package model

import (
	"hotelpos/shared/constant"
	"hotelpos/shared/model"
)

const (
	CategoryTableName  = "categories"
	CategoryEntityName = "category"

	CategoryFieldID      = "id"
	CategoryFieldName    = "name"
	CategoryFieldTaxRate = "tax_rate"
)

const (
	ItemTableName  = "menu_items"
	ItemEntityName = "menu_item"

	ItemFieldID            = "id"
	ItemFieldName          = "name"
	ItemFieldPrice         = "price"
	ItemFieldDeliveryPrice = "delivery_price"
	ItemFieldCategoryID    = "category_id"
	ItemFieldTaxOverride   = "tax_override"
	ItemFieldImageURL      = "image_url"
)

type Category struct {
	ID      string  `db:"id"`
	Name    string  `db:"name"`
	TaxRate float64 `db:"tax_rate"`
	model.Metadata
}

type Item struct {
	ID            string   `db:"id"`
	Name          string   `db:"name"`
	Price         float64  `db:"price"`
	DeliveryPrice float64  `db:"delivery_price"`
	CategoryID    string   `db:"category_id"`
	TaxOverride   *float64 `db:"tax_override"`
	ImageURL      string   `db:"image_url"`
	CategoryName  string   `db:"category_name"     table:"categories" column:"name"`
	CategoryTax   float64  `db:"category_tax_rate" table:"categories" column:"tax_rate"`
	model.Metadata
}

func (i Item) GetJoinQuery() string {
	return "LEFT JOIN categories ON categories.id = menu_items.category_id"
}

// EffectiveTaxRate resolves the tax rate applied to the item: the item
// override wins over the category rate.
func (i *Item) EffectiveTaxRate() float64 {
	if i.TaxOverride != nil {
		return *i.TaxOverride
	}

	return i.CategoryTax
}

// PriceFor returns the unit price for the given order price mode. Delivery
// pricing falls back to the dine-in price when not set.
func (i *Item) PriceFor(priceMode string) float64 {
	if priceMode == constant.PriceModeDelivery && i.DeliveryPrice > 0 {
		return i.DeliveryPrice
	}

	return i.Price
}
