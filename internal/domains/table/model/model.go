package model

import (
	"hotelpos/shared/model"
)

const (
	TableName  = "dining_tables"
	EntityName = "dining_table"

	FieldID          = "id"
	FieldTableNumber = "table_number"
	FieldStatus      = "status"
)

type DiningTable struct {
	ID          string `db:"id"`
	TableNumber int    `db:"table_number"`
	Status      string `db:"status"`
	model.Metadata
}

// TableWithDue is a dining table joined with the running total of its open
// orders.
type TableWithDue struct {
	DiningTable
	TotalDue float64 `db:"total_due"`
}
