package validator_test

import (
	"strings"
	"testing"

	"hotelpos/shared/validator"
)

type createItemBody struct {
	Name       string  `validate:"required,max=100"              json:"name"`
	Price      float64 `validate:"required,gt=0"                 json:"price"`
	CategoryID string  `validate:"required,uuid"                 json:"category_id"`
	Role       string  `validate:"omitempty,oneof=ADMIN CASHIER" json:"role"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        createItemBody
		expectError bool
	}{
		{
			name: "valid struct",
			data: createItemBody{
				Name:       "Butter Chicken",
				Price:      320,
				CategoryID: "a1b460b8-41d1-4f6a-9f10-101010101001",
				Role:       "CASHIER",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: createItemBody{
				Price:      320,
				CategoryID: "a1b460b8-41d1-4f6a-9f10-101010101001",
			},
			expectError: true,
		},
		{
			name: "zero price",
			data: createItemBody{
				Name:       "Butter Chicken",
				Price:      0,
				CategoryID: "a1b460b8-41d1-4f6a-9f10-101010101001",
			},
			expectError: true,
		},
		{
			name: "malformed category id",
			data: createItemBody{
				Name:       "Butter Chicken",
				Price:      320,
				CategoryID: "not-a-uuid",
			},
			expectError: true,
		},
		{
			name: "invalid role",
			data: createItemBody{
				Name:       "Butter Chicken",
				Price:      320,
				CategoryID: "a1b460b8-41d1-4f6a-9f10-101010101001",
				Role:       "MANAGER",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid numeric PIN",
			field:       "1234",
			tag:         "numeric,min=4,max=8",
			expectError: false,
		},
		{
			name:        "non-numeric PIN",
			field:       "12ab",
			tag:         "numeric,min=4,max=8",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "DINE_IN",
			tag:         "oneof=DINE_IN ROOM_SERVICE TAKEOUT DELIVERY",
			expectError: false,
		},
		{
			name:        "invalid oneof",
			field:       "DRIVE_THROUGH",
			tag:         "oneof=DINE_IN ROOM_SERVICE TAKEOUT DELIVERY",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"Masala Chai","price":40,"category_id":"a1b460b8-41d1-4f6a-9f10-101010101002"}`,
			expectError: false,
		},
		{
			name:        "invalid field value",
			jsonBody:    `{"name":"Masala Chai","price":-5,"category_id":"a1b460b8-41d1-4f6a-9f10-101010101002"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Masala Chai","price":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data createItemBody
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := &createItemBody{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}
