package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del catálogo de dotación (cuadernos, uniformes,
// kits). El stock NO se guarda aquí: se deriva del libro de asientos.
type Item struct {
	ID                string
	CategoryID        string
	SupplierID        string
	Name              string
	Description       string
	Unit              string // unidad de medida: "unidad", "caja", "paquete"
	CostPrice         decimal.Decimal
	SalePrice         decimal.Decimal
	LowStockThreshold int64 // 0 = solo alerta con stock <= 0
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
