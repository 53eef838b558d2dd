package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
	"github.com/jhoicas/Dotacion-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del plegado de stock: StockActual = Σ entradas − Σ salidas sobre los
// asientos completed. El stock nunca se guarda; estos tests fijan la matemática
// de la que depende todo el chequeo de entregas.
// ──────────────────────────────────────────────────────────────────────────────

func testItem(threshold int64) *entity.Item {
	return &entity.Item{
		ID:                "item-1",
		Name:              "Cuaderno rayado 100 hojas",
		LowStockThreshold: threshold,
	}
}

func entrada(kind string, qty int64, cost float64, date time.Time) *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:              "e-" + date.Format("150405.000"),
		ItemID:          "item-1",
		Kind:            kind,
		QuantityIn:      qty,
		CostIn:          decimal.NewFromFloat(cost),
		Status:          entity.StatusCompleted,
		TransactionDate: date,
	}
}

func salida(kind string, qty int64, cost float64, date time.Time) *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:              "s-" + date.Format("150405.000"),
		ItemID:          "item-1",
		Kind:            kind,
		QuantityOut:     qty,
		CostOut:         decimal.NewFromFloat(cost),
		Status:          entity.StatusCompleted,
		TransactionDate: date,
	}
}

func TestCompute_SinAsientos(t *testing.T) {
	s := stock.Compute(testItem(0), nil)

	assert.Equal(t, int64(0), s.CurrentStock, "sin asientos el stock es cero")
	assert.True(t, s.IsLowStock, "umbral 0 con stock 0 debe alertar (<=)")
	assert.Nil(t, s.LastTransactionDate)
	assert.True(t, s.TotalInCost.IsZero())
}

func TestCompute_EntradasMenosSalidas(t *testing.T) {
	base := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	entries := []*entity.LedgerEntry{
		entrada(entity.KindPurchase, 100, 250_000, base),
		salida(entity.KindDistribution, 30, 75_000, base.Add(24*time.Hour)),
		salida(entity.KindSale, 5, 15_000, base.Add(48*time.Hour)),
		entrada(entity.KindReturn, 2, 5_000, base.Add(72*time.Hour)),
	}

	s := stock.Compute(testItem(10), entries)

	assert.Equal(t, int64(102), s.TotalInQty)
	assert.Equal(t, int64(35), s.TotalOutQty)
	assert.Equal(t, int64(67), s.CurrentStock)
	assert.False(t, s.IsLowStock)
	assert.True(t, s.TotalInCost.Equal(decimal.NewFromInt(255_000)))
	assert.True(t, s.TotalOutCost.Equal(decimal.NewFromInt(90_000)))
}

// Los asientos pending/cancelled/deleted se ignoran aunque vengan en la lista:
// anular una entrega restaura el stock sin escribir ningún contador.
func TestCompute_IgnoraAsientosNoCompleted(t *testing.T) {
	base := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	cancelada := salida(entity.KindDistribution, 40, 100_000, base.Add(time.Hour))
	cancelada.Status = entity.StatusCancelled
	pendiente := entrada(entity.KindPurchase, 500, 1_000_000, base.Add(2*time.Hour))
	pendiente.Status = entity.StatusPending

	entries := []*entity.LedgerEntry{
		entrada(entity.KindPurchase, 100, 250_000, base),
		cancelada,
		pendiente,
	}

	s := stock.Compute(testItem(0), entries)

	assert.Equal(t, int64(100), s.CurrentStock)
	assert.Equal(t, int64(100), s.TotalInQty)
	assert.Equal(t, int64(0), s.TotalOutQty)
	// La fecha del asiento cancelado tampoco cuenta.
	assert.Equal(t, base, *s.LastTransactionDate)
}

func TestCompute_UmbralEsInclusive(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	entries := []*entity.LedgerEntry{
		entrada(entity.KindPurchase, 10, 20_000, base),
	}

	enUmbral := stock.Compute(testItem(10), entries)
	assert.True(t, enUmbral.IsLowStock, "stock == umbral debe alertar")

	sobreUmbral := stock.Compute(testItem(9), entries)
	assert.False(t, sobreUmbral.IsLowStock, "stock > umbral no alerta")
}

func TestCompute_FechasPorTipo(t *testing.T) {
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	compraVieja := entrada(entity.KindPurchase, 50, 100_000, base)
	compraNueva := entrada(entity.KindPurchase, 20, 40_000, base.Add(10*24*time.Hour))
	venta := salida(entity.KindSale, 5, 10_000, base.Add(5*24*time.Hour))
	entrega := salida(entity.KindDistribution, 10, 20_000, base.Add(20*24*time.Hour))

	s := stock.Compute(testItem(0), []*entity.LedgerEntry{compraVieja, venta, compraNueva, entrega})

	assert.Equal(t, compraNueva.TransactionDate, *s.LastPurchaseDate)
	assert.Equal(t, venta.TransactionDate, *s.LastSaleDate)
	// La última transacción global sí incluye la entrega.
	assert.Equal(t, entrega.TransactionDate, *s.LastTransactionDate)
}

// El stock derivado puede quedar negativo si el libro lo dice (p.ej. asientos
// históricos cargados a mano); el plegado no lo "corrige".
func TestCompute_PermiteNegativo(t *testing.T) {
	base := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	entries := []*entity.LedgerEntry{
		salida(entity.KindSale, 7, 14_000, base),
	}

	s := stock.Compute(testItem(0), entries)

	assert.Equal(t, int64(-7), s.CurrentStock)
	assert.True(t, s.IsLowStock)
}
