package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
	"github.com/jhoicas/Dotacion-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación de LedgerRepository sobre PostgreSQL (usable con pool o tx).
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

const ledgerColumns = `id, item_id, kind, quantity_in, cost_in, quantity_out, cost_out, status, distribution_id, transaction_date, created_at, created_by`

// Create persiste un asiento del libro.
func (r *LedgerRepo) Create(entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	createdBy := (*string)(nil)
	if entry.CreatedBy != "" {
		createdBy = &entry.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ItemID, entry.Kind,
		entry.QuantityIn, entry.CostIn, entry.QuantityOut, entry.CostOut,
		entry.Status, entry.DistributionID, entry.TransactionDate, entry.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID.
func (r *LedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByDistribution obtiene el asiento pareado de una entrega.
func (r *LedgerRepo) GetByDistribution(distributionID string) (*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE distribution_id = $1`
	return r.scanOne(query, distributionID)
}

func (r *LedgerRepo) scanOne(query string, args ...any) (*entity.LedgerEntry, error) {
	row := r.q.QueryRow(context.Background(), query, args...)
	entry, err := scanLedgerRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	return entry, nil
}

// ListCompletedByItem devuelve todos los asientos completed de un ítem,
// insumo del plegado de stock. Sin paginación a propósito.
func (r *LedgerRepo) ListCompletedByItem(itemID string) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE item_id = $1 AND status = 'completed'
		ORDER BY transaction_date`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list completed entries: %w", err)
	}
	defer rows.Close()
	return scanLedgerRows(rows)
}

// ListByItem lista asientos de un ítem en un rango de fechas (todos los estados).
func (r *LedgerRepo) ListByItem(itemID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE item_id = $1`
	args := []any{itemID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND transaction_date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND transaction_date <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY transaction_date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries by item: %w", err)
	}
	defer rows.Close()
	return scanLedgerRows(rows)
}

// UpdateStatus cambia el estado de un asiento (única mutación general permitida).
func (r *LedgerRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE ledger_entries SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update entry status: %w", err)
	}
	return nil
}

// UpdateQuantityOut reescribe la salida de un asiento pareado cuando se edita
// su Distribution.
func (r *LedgerRepo) UpdateQuantityOut(id string, quantityOut int64, costOut decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE ledger_entries SET quantity_out = $2, cost_out = $3 WHERE id = $1`,
		id, quantityOut, costOut)
	if err != nil {
		return fmt.Errorf("update entry quantity_out: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLedgerRow(row rowScanner) (*entity.LedgerEntry, error) {
	var e entity.LedgerEntry
	var createdBy *string
	err := row.Scan(
		&e.ID, &e.ItemID, &e.Kind,
		&e.QuantityIn, &e.CostIn, &e.QuantityOut, &e.CostOut,
		&e.Status, &e.DistributionID, &e.TransactionDate, &e.CreatedAt, &createdBy,
	)
	if err != nil {
		return nil, err
	}
	if createdBy != nil {
		e.CreatedBy = *createdBy
	}
	return &e, nil
}

func scanLedgerRows(rows pgx.Rows) ([]*entity.LedgerEntry, error) {
	var list []*entity.LedgerEntry
	for rows.Next() {
		e, err := scanLedgerRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
