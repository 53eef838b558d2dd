package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
)

// LedgerRepository define el puerto de persistencia para los asientos del
// libro de inventario. Los asientos solo mutan en status y, para los pareados
// con una Distribution, en quantity_out.
type LedgerRepository interface {
	Create(entry *entity.LedgerEntry) error
	GetByID(id string) (*entity.LedgerEntry, error)
	// ListCompletedByItem devuelve todos los asientos completed del ítem
	// (insumo del plegado de stock; sin paginación, el plegado es O(n)).
	ListCompletedByItem(itemID string) ([]*entity.LedgerEntry, error)
	ListByItem(itemID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error)
	GetByDistribution(distributionID string) (*entity.LedgerEntry, error)
	UpdateStatus(id, status string) error
	// UpdateQuantityOut reescribe la salida de un asiento pareado cuando se
	// edita su Distribution (invariante: ambos registros deben coincidir).
	UpdateQuantityOut(id string, quantityOut int64, costOut decimal.Decimal) error
}
