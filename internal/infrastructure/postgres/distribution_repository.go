package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
	"github.com/jhoicas/Dotacion-api/internal/domain/repository"
)

var _ repository.DistributionRepository = (*DistributionRepo)(nil)

// DistributionRepo implementación de DistributionRepository sobre PostgreSQL
// (usable con pool o tx).
type DistributionRepo struct {
	q Querier
}

// NewDistributionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDistributionRepository(q Querier) *DistributionRepo {
	return &DistributionRepo{q: q}
}

const distColumns = `id, class_id, item_id, term_id, quantity, distribution_date, teacher_id, notes, status, created_at, updated_at, created_by`

// Create persiste una entrega a curso.
func (r *DistributionRepo) Create(d *entity.Distribution) error {
	query := `
		INSERT INTO distributions (` + distColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	createdBy := (*string)(nil)
	if d.CreatedBy != "" {
		createdBy = &d.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.ClassID, d.ItemID, d.TermID, d.Quantity, d.DistributionDate,
		d.TeacherID, d.Notes, d.Status, d.CreatedAt, d.UpdatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("insert distribution: %w", err)
	}
	return nil
}

// GetByID obtiene una entrega por ID.
func (r *DistributionRepo) GetByID(id string) (*entity.Distribution, error) {
	query := `SELECT ` + distColumns + ` FROM distributions WHERE id = $1`
	var d entity.Distribution
	var createdBy *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.ClassID, &d.ItemID, &d.TermID, &d.Quantity, &d.DistributionDate,
		&d.TeacherID, &d.Notes, &d.Status, &d.CreatedAt, &d.UpdatedAt, &createdBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get distribution: %w", err)
	}
	if createdBy != nil {
		d.CreatedBy = *createdBy
	}
	return &d, nil
}

// Update reescribe los campos editables de una entrega.
func (r *DistributionRepo) Update(d *entity.Distribution) error {
	query := `
		UPDATE distributions
		SET quantity = $2, distribution_date = $3, teacher_id = $4, notes = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Quantity, d.DistributionDate, d.TeacherID, d.Notes, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update distribution: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado de una entrega (active/cancelled).
func (r *DistributionRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE distributions SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update distribution status: %w", err)
	}
	return nil
}

// List lista entregas con filtros opcionales, recientes primero.
func (r *DistributionRepo) List(filter repository.DistributionFilter, limit, offset int) ([]*entity.Distribution, error) {
	query := `SELECT ` + distColumns + ` FROM distributions WHERE 1=1`
	args, pos := appendDistFilter(&query, nil, 1, filter, "teacher_id")
	query += fmt.Sprintf(" ORDER BY distribution_date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list distributions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Distribution
	for rows.Next() {
		var d entity.Distribution
		var createdBy *string
		if err := rows.Scan(
			&d.ID, &d.ClassID, &d.ItemID, &d.TermID, &d.Quantity, &d.DistributionDate,
			&d.TeacherID, &d.Notes, &d.Status, &d.CreatedAt, &d.UpdatedAt, &createdBy,
		); err != nil {
			return nil, fmt.Errorf("scan distribution: %w", err)
		}
		if createdBy != nil {
			d.CreatedBy = *createdBy
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// SumByItem agrega distributed_quantity por ítem para entregas activas que
// pasen el filtro (lado "entregado" de la conciliación).
func (r *DistributionRepo) SumByItem(filter repository.DistributionFilter) ([]repository.DistributionTotal, error) {
	query := `
	SELECT item_id, SUM(quantity) AS total_distributed, MAX(distribution_date) AS last_distribution_date
	FROM distributions
	WHERE status = 'active'`
	args, _ := appendDistFilter(&query, nil, 1, filter, "teacher_id")
	query += ` GROUP BY item_id`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("sum distributions by item: %w", err)
	}
	defer rows.Close()

	var totals []repository.DistributionTotal
	for rows.Next() {
		var t repository.DistributionTotal
		var last time.Time
		if err := rows.Scan(&t.ItemID, &t.TotalDistributed, &last); err != nil {
			return nil, fmt.Errorf("scan distribution total: %w", err)
		}
		t.LastDistributionDate = &last
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// appendDistFilter añade condiciones por ítem/curso/periodo/docente al query.
// teacherColumn permite reusar el helper en tablas con otra columna de docente.
func appendDistFilter(query *string, args []any, pos int, filter repository.DistributionFilter, teacherColumn string) ([]any, int) {
	if filter.ItemID != "" {
		*query += fmt.Sprintf(" AND item_id = $%d", pos)
		args = append(args, filter.ItemID)
		pos++
	}
	if filter.ClassID != "" {
		*query += fmt.Sprintf(" AND class_id = $%d", pos)
		args = append(args, filter.ClassID)
		pos++
	}
	if filter.TermID != "" {
		*query += fmt.Sprintf(" AND term_id = $%d", pos)
		args = append(args, filter.TermID)
		pos++
	}
	if filter.TeacherID != "" {
		*query += fmt.Sprintf(" AND %s = $%d", teacherColumn, pos)
		args = append(args, filter.TeacherID)
		pos++
	}
	return args, pos
}
