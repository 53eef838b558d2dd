package repository

import "github.com/jhoicas/Dotacion-api/internal/domain/entity"

// EntitlementRepository define el puerto de persistencia para cupos planificados.
// Upsert por (curso, ítem, periodo): el duplicado se resuelve sobrescribiendo,
// nunca como error.
type EntitlementRepository interface {
	Upsert(e *entity.Entitlement) error
	GetByKey(classID, itemID, termID string) (*entity.Entitlement, error)
	List(classID, termID string) ([]*entity.Entitlement, error)
}
