package repository

import (
	"time"

	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
)

// DistributionFilter filtros opcionales para listados y conciliación.
// Campos vacíos no filtran.
type DistributionFilter struct {
	ItemID    string
	ClassID   string
	TermID    string
	TeacherID string
}

// DistributionTotal total entregado por ítem (GROUP BY item_id).
type DistributionTotal struct {
	ItemID               string
	TotalDistributed     int64
	LastDistributionDate *time.Time
}

// DistributionRepository define el puerto de persistencia para entregas a curso.
type DistributionRepository interface {
	Create(d *entity.Distribution) error
	GetByID(id string) (*entity.Distribution, error)
	Update(d *entity.Distribution) error
	UpdateStatus(id, status string) error
	List(filter DistributionFilter, limit, offset int) ([]*entity.Distribution, error)
	// SumByItem agrega distributed_quantity por ítem para las entregas activas
	// que pasen el filtro (lado "entregado" de la conciliación).
	SumByItem(filter DistributionFilter) ([]DistributionTotal, error)
}
