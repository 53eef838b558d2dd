package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest alta de un ítem del catálogo.
type CreateItemRequest struct {
	CategoryID        string          `json:"category_id" validate:"required,uuid4"`
	SupplierID        string          `json:"supplier_id" validate:"omitempty,uuid4"`
	Name              string          `json:"name" validate:"required,max=200"`
	Description       string          `json:"description" validate:"omitempty,max=1000"`
	Unit              string          `json:"unit" validate:"omitempty,max=30"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	LowStockThreshold int64           `json:"low_stock_threshold" validate:"min=0"`
}

// UpdateItemRequest edición parcial de un ítem.
type UpdateItemRequest struct {
	CategoryID        *string          `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	SupplierID        *string          `json:"supplier_id,omitempty" validate:"omitempty,uuid4"`
	Name              *string          `json:"name,omitempty" validate:"omitempty,max=200"`
	Description       *string          `json:"description,omitempty" validate:"omitempty,max=1000"`
	Unit              *string          `json:"unit,omitempty" validate:"omitempty,max=30"`
	CostPrice         *decimal.Decimal `json:"cost_price,omitempty"`
	SalePrice         *decimal.Decimal `json:"sale_price,omitempty"`
	LowStockThreshold *int64           `json:"low_stock_threshold,omitempty" validate:"omitempty,min=0"`
}

// ItemResponse ítem del catálogo en respuestas.
type ItemResponse struct {
	ID                string          `json:"id"`
	CategoryID        string          `json:"category_id"`
	SupplierID        string          `json:"supplier_id,omitempty"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	Unit              string          `json:"unit,omitempty"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ItemListResponse listado paginado de ítems.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
