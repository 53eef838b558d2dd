package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
	"github.com/jhoicas/Dotacion-api/internal/domain/repository"
)

var _ repository.EntitlementRepository = (*EntitlementRepo)(nil)

// EntitlementRepo implementación de EntitlementRepository sobre PostgreSQL
// (usable con pool o tx).
type EntitlementRepo struct {
	q Querier
}

// NewEntitlementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEntitlementRepository(q Querier) *EntitlementRepo {
	return &EntitlementRepo{q: q}
}

// Upsert inserta o sobrescribe el cupo (único por curso+ítem+periodo). El
// conflicto de clave se resuelve sobrescribiendo cantidad, nunca como error.
func (r *EntitlementRepo) Upsert(e *entity.Entitlement) error {
	query := `
		INSERT INTO entitlements (id, class_id, item_id, term_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (class_id, item_id, term_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		e.ID, e.ClassID, e.ItemID, e.TermID, e.Quantity, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert entitlement: %w", err)
	}
	return nil
}

// GetByKey obtiene el cupo por su clave natural.
func (r *EntitlementRepo) GetByKey(classID, itemID, termID string) (*entity.Entitlement, error) {
	query := `
		SELECT id, class_id, item_id, term_id, quantity, created_at, updated_at
		FROM entitlements WHERE class_id = $1 AND item_id = $2 AND term_id = $3`
	var e entity.Entitlement
	err := r.q.QueryRow(context.Background(), query, classID, itemID, termID).Scan(
		&e.ID, &e.ClassID, &e.ItemID, &e.TermID, &e.Quantity, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entitlement: %w", err)
	}
	return &e, nil
}

// List lista cupos con filtros opcionales de curso y periodo.
func (r *EntitlementRepo) List(classID, termID string) ([]*entity.Entitlement, error) {
	query := `
		SELECT id, class_id, item_id, term_id, quantity, created_at, updated_at
		FROM entitlements WHERE 1=1`
	var args []any
	pos := 1
	if classID != "" {
		query += fmt.Sprintf(" AND class_id = $%d", pos)
		args = append(args, classID)
		pos++
	}
	if termID != "" {
		query += fmt.Sprintf(" AND term_id = $%d", pos)
		args = append(args, termID)
		pos++
	}
	query += " ORDER BY class_id, item_id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entitlements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Entitlement
	for rows.Next() {
		var e entity.Entitlement
		if err := rows.Scan(&e.ID, &e.ClassID, &e.ItemID, &e.TermID, &e.Quantity, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan entitlement: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
