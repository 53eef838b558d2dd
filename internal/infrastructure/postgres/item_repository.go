package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
	"github.com/jhoicas/Dotacion-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, category_id, supplier_id, name, description, unit, cost_price, sale_price, low_stock_threshold, created_at, updated_at`

// Create persiste un nuevo ítem.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	supplierID := (*string)(nil)
	if item.SupplierID != "" {
		supplierID = &item.SupplierID
	}
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CategoryID, supplierID, item.Name, item.Description, item.Unit,
		item.CostPrice, item.SalePrice, item.LowStockThreshold,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el ítem y bloquea su fila (SELECT FOR UPDATE).
// Serializa el chequeo de stock del coordinador de entregas por ítem.
func (r *ItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *ItemRepo) scanOne(query string, args ...any) (*entity.Item, error) {
	var item entity.Item
	var supplierID *string
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&item.ID, &item.CategoryID, &supplierID, &item.Name, &item.Description, &item.Unit,
		&item.CostPrice, &item.SalePrice, &item.LowStockThreshold,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	if supplierID != nil {
		item.SupplierID = *supplierID
	}
	return &item, nil
}

// Update actualiza los datos de catálogo de un ítem.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items
		SET category_id = $2, supplier_id = $3, name = $4, description = $5, unit = $6,
		    cost_price = $7, sale_price = $8, low_stock_threshold = $9, updated_at = $10
		WHERE id = $1`
	supplierID := (*string)(nil)
	if item.SupplierID != "" {
		supplierID = &item.SupplierID
	}
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CategoryID, supplierID, item.Name, item.Description, item.Unit,
		item.CostPrice, item.SalePrice, item.LowStockThreshold, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// List lista ítems con paginación, ordenados por nombre.
func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// ListByIDs obtiene los ítems cuyos ids estén en la lista.
func (r *ItemRepo) ListByIDs(ids []string) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("list items by ids: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// ListAllIDs devuelve los ids de todos los ítems del catálogo.
func (r *ItemRepo) ListAllIDs() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id FROM items ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list item ids: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan item id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Delete elimina un ítem.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func scanItems(rows pgx.Rows) ([]*entity.Item, error) {
	var list []*entity.Item
	for rows.Next() {
		var item entity.Item
		var supplierID *string
		if err := rows.Scan(
			&item.ID, &item.CategoryID, &supplierID, &item.Name, &item.Description, &item.Unit,
			&item.CostPrice, &item.SalePrice, &item.LowStockThreshold,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if supplierID != nil {
			item.SupplierID = *supplierID
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}
