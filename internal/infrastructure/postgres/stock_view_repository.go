package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Dotacion-api/internal/domain/repository"
)

var _ repository.StockViewRepository = (*StockViewRepo)(nil)

// StockViewRepo vista de lectura optimizada sobre el libro: una sola consulta
// agregada para candidatos a bajo stock, en lugar de plegar ítem por ítem.
type StockViewRepo struct {
	pool *pgxpool.Pool
}

// NewStockViewRepository construye el adaptador de la vista.
func NewStockViewRepository(pool *pgxpool.Pool) *StockViewRepo {
	return &StockViewRepo{pool: pool}
}

// ListLowStockItemIDs selecciona los ítems cuyo stock derivado (solo asientos
// completed) está en o bajo su umbral. El LEFT JOIN conserva ítems sin
// asientos: stock 0 <= umbral, siempre candidatos.
func (r *StockViewRepo) ListLowStockItemIDs() ([]string, error) {
	const query = `
	SELECT i.id
	FROM items i
	LEFT JOIN ledger_entries le ON le.item_id = i.id AND le.status = 'completed'
	GROUP BY i.id, i.low_stock_threshold
	HAVING COALESCE(SUM(le.quantity_in), 0) - COALESCE(SUM(le.quantity_out), 0) <= i.low_stock_threshold
	ORDER BY i.id`

	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock item ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan low stock id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
