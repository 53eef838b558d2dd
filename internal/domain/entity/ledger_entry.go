package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del libro de inventario.
const (
	KindPurchase     = "purchase"     // compra a proveedor (entrada)
	KindSale         = "sale"         // venta (salida)
	KindDistribution = "distribution" // entrega a un curso (salida)
	KindReturn       = "return"       // devolución al depósito (entrada)
)

// Estados de un asiento. Solo "completed" cuenta para el stock derivado.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusDeleted   = "deleted"
)

// LedgerEntry representa un asiento del libro de inventario: un movimiento de
// stock con cantidad/costo de entrada o de salida (nunca ambos positivos).
// El stock de un ítem nunca se guarda como contador: se deriva plegando los
// asientos completed.
type LedgerEntry struct {
	ID              string
	ItemID          string
	Kind            string // purchase, sale, distribution, return
	QuantityIn      int64
	CostIn          decimal.Decimal
	QuantityOut     int64
	CostOut         decimal.Decimal
	Status          string  // pending, completed, cancelled, deleted
	DistributionID  *string // solo para Kind = distribution
	TransactionDate time.Time
	CreatedAt       time.Time
	CreatedBy       string // UserID
}

// ValidKind reporta si k es un tipo de transacción conocido.
func ValidKind(k string) bool {
	switch k {
	case KindPurchase, KindSale, KindDistribution, KindReturn:
		return true
	}
	return false
}

// ValidStatus reporta si s es un estado conocido.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled, StatusDeleted:
		return true
	}
	return false
}

// Counts reporta si el asiento participa en la matemática de stock.
func (e *LedgerEntry) Counts() bool {
	return e.Status == StatusCompleted
}
