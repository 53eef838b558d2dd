// Package stock implementa la matemática de stock derivado (servicio de dominio).
// El stock nunca se almacena: se pliega sobre los asientos completed del libro.
package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
)

// Summary resumen de stock de un ítem, recalculado desde cero en cada llamada.
type Summary struct {
	ItemID              string
	ItemName            string
	CurrentStock        int64
	TotalInQty          int64
	TotalOutQty         int64
	TotalInCost         decimal.Decimal
	TotalOutCost        decimal.Decimal
	LowStockThreshold   int64
	IsLowStock          bool
	LastTransactionDate *time.Time
	LastPurchaseDate    *time.Time
	LastSaleDate        *time.Time
}

// Compute pliega los asientos de un ítem y devuelve su resumen.
// StockActual = Σ quantity_in − Σ quantity_out (solo asientos completed).
// IsLowStock = StockActual <= umbral (umbral 0: solo alerta con stock <= 0).
// Los asientos en otros estados se ignoran aunque vengan en la lista.
func Compute(item *entity.Item, entries []*entity.LedgerEntry) Summary {
	s := Summary{
		ItemID:            item.ID,
		ItemName:          item.Name,
		LowStockThreshold: item.LowStockThreshold,
		TotalInCost:       decimal.Zero,
		TotalOutCost:      decimal.Zero,
	}

	for _, e := range entries {
		if !e.Counts() {
			continue
		}
		s.TotalInQty += e.QuantityIn
		s.TotalOutQty += e.QuantityOut
		s.TotalInCost = s.TotalInCost.Add(e.CostIn)
		s.TotalOutCost = s.TotalOutCost.Add(e.CostOut)

		s.LastTransactionDate = maxDate(s.LastTransactionDate, e.TransactionDate)
		switch e.Kind {
		case entity.KindPurchase:
			s.LastPurchaseDate = maxDate(s.LastPurchaseDate, e.TransactionDate)
		case entity.KindSale:
			s.LastSaleDate = maxDate(s.LastSaleDate, e.TransactionDate)
		}
	}

	s.CurrentStock = s.TotalInQty - s.TotalOutQty
	s.IsLowStock = s.CurrentStock <= item.LowStockThreshold
	return s
}

func maxDate(current *time.Time, candidate time.Time) *time.Time {
	if current == nil || candidate.After(*current) {
		t := candidate
		return &t
	}
	return current
}
