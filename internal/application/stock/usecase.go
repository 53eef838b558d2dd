// Package stock implementa el agregador de stock: resúmenes derivados del
// libro de asientos y el alta directa de compras/ventas/devoluciones.
package stock

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Dotacion-api/internal/application/dto"
	"github.com/jhoicas/Dotacion-api/internal/domain"
	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
	"github.com/jhoicas/Dotacion-api/internal/domain/repository"
	domstock "github.com/jhoicas/Dotacion-api/internal/domain/stock"
)

// SummaryUseCase calcula resúmenes de stock por ítem. Sin caché: cada llamada
// re-escanea los asientos completed del ítem; el lote abre un escaneo por ítem.
type SummaryUseCase struct {
	itemRepo   repository.ItemRepository
	ledgerRepo repository.LedgerRepository
	viewRepo   repository.StockViewRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(
	itemRepo repository.ItemRepository,
	ledgerRepo repository.LedgerRepository,
	viewRepo repository.StockViewRepository,
) *SummaryUseCase {
	return &SummaryUseCase{itemRepo: itemRepo, ledgerRepo: ledgerRepo, viewRepo: viewRepo}
}

// GetSummary deriva el resumen de stock de un ítem desde su libro.
// Un ítem sin asientos devuelve stock 0, nunca error.
func (uc *SummaryUseCase) GetSummary(itemID string) (*dto.StockSummaryResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.ledgerRepo.ListCompletedByItem(itemID)
	if err != nil {
		return nil, err
	}
	s := domstock.Compute(item, entries)
	return toSummaryResponse(s), nil
}

// GetBulkSummaries deriva resúmenes para una lista de ids; lista vacía = todos
// los ítems del catálogo. Un id inexistente se omite del resultado.
func (uc *SummaryUseCase) GetBulkSummaries(itemIDs []string) ([]dto.StockSummaryResponse, error) {
	if len(itemIDs) == 0 {
		all, err := uc.itemRepo.ListAllIDs()
		if err != nil {
			return nil, err
		}
		itemIDs = all
	}
	out := make([]dto.StockSummaryResponse, 0, len(itemIDs))
	for _, id := range itemIDs {
		summary, err := uc.GetSummary(id)
		if err != nil {
			if err == domain.ErrNotFound {
				continue
			}
			return nil, err
		}
		out = append(out, *summary)
	}
	return out, nil
}

// GetLowStockItems devuelve el resumen completo de cada ítem en o bajo su
// umbral. Los candidatos salen de una sola consulta agregada sobre el libro;
// el resumen de cada uno se re-deriva con GetSummary.
func (uc *SummaryUseCase) GetLowStockItems() ([]dto.StockSummaryResponse, error) {
	ids, err := uc.viewRepo.ListLowStockItemIDs()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockSummaryResponse, 0, len(ids))
	for _, id := range ids {
		summary, err := uc.GetSummary(id)
		if err != nil {
			if err == domain.ErrNotFound {
				continue
			}
			return nil, err
		}
		out = append(out, *summary)
	}
	return out, nil
}

// RegisterEntry da de alta un asiento directo: compra o devolución (entrada) o
// venta (salida). Las entregas a curso no pasan por aquí. El estado por
// defecto es completed; un asiento pending/cancelled/deleted se persiste pero
// no afecta balances.
func (uc *SummaryUseCase) RegisterEntry(userID string, in dto.RegisterEntryRequest) (*dto.LedgerEntryResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Kind == entity.KindDistribution || !entity.ValidKind(in.Kind) {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.StatusCompleted
	}
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	unitCost := item.CostPrice
	if in.UnitCost != nil {
		if in.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		unitCost = *in.UnitCost
	}
	qty := decimal.NewFromInt(in.Quantity)

	now := time.Now()
	txDate := now
	if in.TransactionDate != nil {
		txDate = *in.TransactionDate
	}
	entry := &entity.LedgerEntry{
		ID:              uuid.New().String(),
		ItemID:          in.ItemID,
		Kind:            in.Kind,
		Status:          status,
		TransactionDate: txDate,
		CreatedAt:       now,
		CreatedBy:       userID,
	}
	// Invariante: como mucho una de las dos cantidades es positiva.
	switch in.Kind {
	case entity.KindPurchase, entity.KindReturn:
		entry.QuantityIn = in.Quantity
		entry.CostIn = qty.Mul(unitCost)
	case entity.KindSale:
		entry.QuantityOut = in.Quantity
		entry.CostOut = qty.Mul(unitCost)
	}

	if err := uc.ledgerRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("registrar asiento: %w", err)
	}
	return toEntryResponse(entry), nil
}

// ListEntries devuelve el historial de asientos de un ítem (todos los
// estados), recientes primero, con rango de fechas opcional.
func (uc *SummaryUseCase) ListEntries(itemID string, from, to *time.Time, limit, offset int) ([]dto.LedgerEntryResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.ledgerRepo.ListByItem(itemID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, *toEntryResponse(e))
	}
	return out, nil
}

func toSummaryResponse(s domstock.Summary) *dto.StockSummaryResponse {
	return &dto.StockSummaryResponse{
		ItemID:              s.ItemID,
		ItemName:            s.ItemName,
		CurrentStock:        s.CurrentStock,
		TotalInQty:          s.TotalInQty,
		TotalOutQty:         s.TotalOutQty,
		TotalInCost:         s.TotalInCost,
		TotalOutCost:        s.TotalOutCost,
		LowStockThreshold:   s.LowStockThreshold,
		IsLowStock:          s.IsLowStock,
		LastTransactionDate: s.LastTransactionDate,
		LastPurchaseDate:    s.LastPurchaseDate,
		LastSaleDate:        s.LastSaleDate,
	}
}

func toEntryResponse(e *entity.LedgerEntry) *dto.LedgerEntryResponse {
	return &dto.LedgerEntryResponse{
		ID:              e.ID,
		ItemID:          e.ItemID,
		Kind:            e.Kind,
		QuantityIn:      e.QuantityIn,
		CostIn:          e.CostIn,
		QuantityOut:     e.QuantityOut,
		CostOut:         e.CostOut,
		Status:          e.Status,
		DistributionID:  e.DistributionID,
		TransactionDate: e.TransactionDate,
		CreatedBy:       e.CreatedBy,
	}
}
