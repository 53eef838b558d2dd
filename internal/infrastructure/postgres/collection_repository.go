package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
	"github.com/jhoicas/Dotacion-api/internal/domain/repository"
)

var _ repository.CollectionRepository = (*CollectionRepo)(nil)

// CollectionRepo implementación de CollectionRepository sobre PostgreSQL
// (usable con pool o tx).
type CollectionRepo struct {
	q Querier
}

// NewCollectionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCollectionRepository(q Querier) *CollectionRepo {
	return &CollectionRepo{q: q}
}

const collectionColumns = `id, student_id, class_id, term_id, item_id, qty, eligible, received, received_date, teacher_id, created_at, updated_at`

// Upsert inserta o sobrescribe el retiro (único por estudiante+periodo+ítem).
// En conflicto conserva id y created_at originales; el RETURNING los escribe
// de vuelta en c para que el caller devuelva la fila canónica.
func (r *CollectionRepo) Upsert(c *entity.StudentCollection) error {
	query := `
		INSERT INTO student_collections (` + collectionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (student_id, term_id, item_id)
		DO UPDATE SET class_id = EXCLUDED.class_id, qty = EXCLUDED.qty,
		              eligible = EXCLUDED.eligible, received = EXCLUDED.received,
		              received_date = EXCLUDED.received_date, teacher_id = EXCLUDED.teacher_id,
		              updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		c.ID, c.StudentID, c.ClassID, c.TermID, c.ItemID, c.Quantity,
		c.Eligible, c.Received, c.ReceivedDate, c.TeacherID, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert student collection: %w", err)
	}
	return nil
}

// GetByKey obtiene el retiro por su clave natural.
func (r *CollectionRepo) GetByKey(studentID, termID, itemID string) (*entity.StudentCollection, error) {
	query := `
		SELECT ` + collectionColumns + ` FROM student_collections
		WHERE student_id = $1 AND term_id = $2 AND item_id = $3`
	var c entity.StudentCollection
	err := r.q.QueryRow(context.Background(), query, studentID, termID, itemID).Scan(
		&c.ID, &c.StudentID, &c.ClassID, &c.TermID, &c.ItemID, &c.Quantity,
		&c.Eligible, &c.Received, &c.ReceivedDate, &c.TeacherID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get student collection: %w", err)
	}
	return &c, nil
}

// List lista retiros con filtros opcionales.
func (r *CollectionRepo) List(filter repository.DistributionFilter, limit, offset int) ([]*entity.StudentCollection, error) {
	query := `SELECT ` + collectionColumns + ` FROM student_collections WHERE 1=1`
	args, pos := appendDistFilter(&query, nil, 1, filter, "teacher_id")
	query += fmt.Sprintf(" ORDER BY updated_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list student collections: %w", err)
	}
	defer rows.Close()

	var list []*entity.StudentCollection
	for rows.Next() {
		var c entity.StudentCollection
		if err := rows.Scan(
			&c.ID, &c.StudentID, &c.ClassID, &c.TermID, &c.ItemID, &c.Quantity,
			&c.Eligible, &c.Received, &c.ReceivedDate, &c.TeacherID, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan student collection: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// SumReceivedByItem agrega qty por ítem de los retiros received=true que pasen
// el filtro (lado "retirado" de la conciliación).
func (r *CollectionRepo) SumReceivedByItem(filter repository.DistributionFilter) ([]repository.CollectionTotal, error) {
	query := `
	SELECT item_id, SUM(qty) AS total_collected
	FROM student_collections
	WHERE received = true`
	args, _ := appendDistFilter(&query, nil, 1, filter, "teacher_id")
	query += ` GROUP BY item_id`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("sum collections by item: %w", err)
	}
	defer rows.Close()

	var totals []repository.CollectionTotal
	for rows.Next() {
		var t repository.CollectionTotal
		if err := rows.Scan(&t.ItemID, &t.TotalCollected); err != nil {
			return nil, fmt.Errorf("scan collection total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
