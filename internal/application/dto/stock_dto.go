package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockSummaryResponse resumen de stock derivado de un ítem.
type StockSummaryResponse struct {
	ItemID              string          `json:"item_id"`
	ItemName            string          `json:"item_name"`
	CurrentStock        int64           `json:"current_stock"`
	TotalInQty          int64           `json:"total_in_qty"`
	TotalOutQty         int64           `json:"total_out_qty"`
	TotalInCost         decimal.Decimal `json:"total_in_cost"`
	TotalOutCost        decimal.Decimal `json:"total_out_cost"`
	LowStockThreshold   int64           `json:"low_stock_threshold"`
	IsLowStock          bool            `json:"is_low_stock"`
	LastTransactionDate *time.Time      `json:"last_transaction_date,omitempty"`
	LastPurchaseDate    *time.Time      `json:"last_purchase_date,omitempty"`
	LastSaleDate        *time.Time      `json:"last_sale_date,omitempty"`
}

// BulkSummaryRequest resumen en lote: lista de ids o vacía para todos.
type BulkSummaryRequest struct {
	ItemIDs []string `json:"item_ids" validate:"omitempty,dive,uuid4"`
}

// RegisterEntryRequest alta directa de un asiento (compra, venta o devolución).
// Las entregas a curso NO pasan por aquí: las escribe el coordinador.
type RegisterEntryRequest struct {
	ItemID          string           `json:"item_id" validate:"required,uuid4"`
	Kind            string           `json:"kind" validate:"required,oneof=purchase sale return"`
	Quantity        int64            `json:"quantity" validate:"required,gt=0"`
	UnitCost        *decimal.Decimal `json:"unit_cost,omitempty"`
	Status          string           `json:"status" validate:"omitempty,oneof=pending completed cancelled deleted"`
	TransactionDate *time.Time       `json:"transaction_date,omitempty"`
}

// LedgerEntryResponse asiento del libro en respuestas.
type LedgerEntryResponse struct {
	ID              string          `json:"id"`
	ItemID          string          `json:"item_id"`
	Kind            string          `json:"kind"`
	QuantityIn      int64           `json:"quantity_in"`
	CostIn          decimal.Decimal `json:"cost_in"`
	QuantityOut     int64           `json:"quantity_out"`
	CostOut         decimal.Decimal `json:"cost_out"`
	Status          string          `json:"status"`
	DistributionID  *string         `json:"distribution_id,omitempty"`
	TransactionDate time.Time       `json:"transaction_date"`
	CreatedBy       string          `json:"created_by,omitempty"`
}
