package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstock "github.com/jhoicas/Dotacion-api/internal/application/stock"
	"github.com/jhoicas/Dotacion-api/internal/application/dto"
	"github.com/jhoicas/Dotacion-api/internal/domain"
	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
	"github.com/jhoicas/Dotacion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (solo lo que el agregador usa)
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo(items ...*entity.Item) *fakeItemRepo {
	r := &fakeItemRepo{items: make(map[string]*entity.Item)}
	for _, it := range items {
		r.items[it.ID] = it
	}
	return r
}

func (r *fakeItemRepo) Create(item *entity.Item) error { r.items[item.ID] = item; return nil }
func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.items[id], nil
}
func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) { return r.items[id], nil }
func (r *fakeItemRepo) Update(item *entity.Item) error              { r.items[item.ID] = item; return nil }
func (r *fakeItemRepo) List(int, int) ([]*entity.Item, error)       { return nil, nil }
func (r *fakeItemRepo) ListByIDs([]string) ([]*entity.Item, error)  { return nil, nil }
func (r *fakeItemRepo) ListAllIDs() ([]string, error) {
	ids := make([]string, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	return ids, nil
}
func (r *fakeItemRepo) Delete(id string) error { delete(r.items, id); return nil }

type fakeLedgerRepo struct {
	entries []*entity.LedgerEntry
}

func (r *fakeLedgerRepo) Create(e *entity.LedgerEntry) error {
	r.entries = append(r.entries, e)
	return nil
}
func (r *fakeLedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}
func (r *fakeLedgerRepo) ListCompletedByItem(itemID string) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range r.entries {
		if e.ItemID == itemID && e.Status == entity.StatusCompleted {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *fakeLedgerRepo) ListByItem(itemID string, _, _ *time.Time, _, _ int) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range r.entries {
		if e.ItemID == itemID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *fakeLedgerRepo) GetByDistribution(distributionID string) (*entity.LedgerEntry, error) {
	for _, e := range r.entries {
		if e.DistributionID != nil && *e.DistributionID == distributionID {
			return e, nil
		}
	}
	return nil, nil
}
func (r *fakeLedgerRepo) UpdateStatus(id, status string) error {
	for _, e := range r.entries {
		if e.ID == id {
			e.Status = status
		}
	}
	return nil
}
func (r *fakeLedgerRepo) UpdateQuantityOut(id string, qty int64, costOut decimal.Decimal) error {
	for _, e := range r.entries {
		if e.ID == id {
			e.QuantityOut = qty
			e.CostOut = costOut
		}
	}
	return nil
}

type fakeViewRepo struct {
	ids []string
}

func (r *fakeViewRepo) ListLowStockItemIDs() ([]string, error) { return r.ids, nil }

var _ repository.ItemRepository = (*fakeItemRepo)(nil)
var _ repository.LedgerRepository = (*fakeLedgerRepo)(nil)
var _ repository.StockViewRepository = (*fakeViewRepo)(nil)

func catalogItem(id string, threshold int64) *entity.Item {
	return &entity.Item{
		ID:                id,
		Name:              "Kit escolar " + id,
		CostPrice:         decimal.NewFromInt(12_500),
		LowStockThreshold: threshold,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GetSummary / GetBulkSummaries / GetLowStockItems
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSummary_DerivaDelLibro(t *testing.T) {
	item := catalogItem("item-1", 5)
	ledger := &fakeLedgerRepo{entries: []*entity.LedgerEntry{
		{ID: "e1", ItemID: "item-1", Kind: entity.KindPurchase, QuantityIn: 100,
			CostIn: decimal.NewFromInt(1_250_000), Status: entity.StatusCompleted, TransactionDate: time.Now()},
		{ID: "e2", ItemID: "item-1", Kind: entity.KindDistribution, QuantityOut: 30,
			CostOut: decimal.NewFromInt(375_000), Status: entity.StatusCompleted, TransactionDate: time.Now()},
	}}
	uc := appstock.NewSummaryUseCase(newFakeItemRepo(item), ledger, &fakeViewRepo{})

	s, err := uc.GetSummary("item-1")
	require.NoError(t, err)
	assert.Equal(t, int64(70), s.CurrentStock)
	assert.False(t, s.IsLowStock)
}

func TestGetSummary_ItemInexistente(t *testing.T) {
	uc := appstock.NewSummaryUseCase(newFakeItemRepo(), &fakeLedgerRepo{}, &fakeViewRepo{})

	_, err := uc.GetSummary("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetBulkSummaries_ListaVaciaEsTodoElCatalogo(t *testing.T) {
	items := newFakeItemRepo(catalogItem("item-1", 0), catalogItem("item-2", 0))
	uc := appstock.NewSummaryUseCase(items, &fakeLedgerRepo{}, &fakeViewRepo{})

	out, err := uc.GetBulkSummaries(nil)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestGetBulkSummaries_OmiteIdsInexistentes(t *testing.T) {
	items := newFakeItemRepo(catalogItem("item-1", 0))
	uc := appstock.NewSummaryUseCase(items, &fakeLedgerRepo{}, &fakeViewRepo{})

	out, err := uc.GetBulkSummaries([]string{"item-1", "fantasma"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "item-1", out[0].ItemID)
}

func TestGetLowStockItems_RederivaCandidatos(t *testing.T) {
	item := catalogItem("item-1", 10)
	ledger := &fakeLedgerRepo{entries: []*entity.LedgerEntry{
		{ID: "e1", ItemID: "item-1", Kind: entity.KindPurchase, QuantityIn: 8,
			CostIn: decimal.NewFromInt(100_000), Status: entity.StatusCompleted, TransactionDate: time.Now()},
	}}
	uc := appstock.NewSummaryUseCase(newFakeItemRepo(item), ledger, &fakeViewRepo{ids: []string{"item-1"}})

	out, err := uc.GetLowStockItems()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].IsLowStock)
	assert.Equal(t, int64(8), out[0].CurrentStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterEntry
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterEntry_CompraEsEntrada(t *testing.T) {
	item := catalogItem("item-1", 0)
	ledger := &fakeLedgerRepo{}
	uc := appstock.NewSummaryUseCase(newFakeItemRepo(item), ledger, &fakeViewRepo{})

	out, err := uc.RegisterEntry("user-1", dto.RegisterEntryRequest{
		ItemID:   "item-1",
		Kind:     entity.KindPurchase,
		Quantity: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), out.QuantityIn)
	assert.Equal(t, int64(0), out.QuantityOut)
	assert.Equal(t, entity.StatusCompleted, out.Status, "el estado por defecto es completed")
	// Sin unit_cost explícito se usa el costo de catálogo.
	assert.True(t, out.CostIn.Equal(decimal.NewFromInt(1_250_000)))
	assert.Len(t, ledger.entries, 1)
}

func TestRegisterEntry_VentaEsSalida(t *testing.T) {
	item := catalogItem("item-1", 0)
	uc := appstock.NewSummaryUseCase(newFakeItemRepo(item), &fakeLedgerRepo{}, &fakeViewRepo{})

	unitCost := decimal.NewFromInt(15_000)
	out, err := uc.RegisterEntry("user-1", dto.RegisterEntryRequest{
		ItemID:   "item-1",
		Kind:     entity.KindSale,
		Quantity: 4,
		UnitCost: &unitCost,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.QuantityOut)
	assert.Equal(t, int64(0), out.QuantityIn)
	assert.True(t, out.CostOut.Equal(decimal.NewFromInt(60_000)))
}

// Las entregas a curso se escriben solo desde el coordinador: el alta directa
// con kind=distribution se rechaza para no romper el par Distribution/asiento.
func TestRegisterEntry_RechazaKindDistribution(t *testing.T) {
	item := catalogItem("item-1", 0)
	uc := appstock.NewSummaryUseCase(newFakeItemRepo(item), &fakeLedgerRepo{}, &fakeViewRepo{})

	_, err := uc.RegisterEntry("user-1", dto.RegisterEntryRequest{
		ItemID:   "item-1",
		Kind:     entity.KindDistribution,
		Quantity: 10,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterEntry_RechazaCantidadNoPositiva(t *testing.T) {
	uc := appstock.NewSummaryUseCase(newFakeItemRepo(), &fakeLedgerRepo{}, &fakeViewRepo{})

	_, err := uc.RegisterEntry("user-1", dto.RegisterEntryRequest{
		ItemID:   "item-1",
		Kind:     entity.KindPurchase,
		Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un asiento pending se persiste pero no mueve el stock derivado.
func TestRegisterEntry_PendingNoCuentaParaStock(t *testing.T) {
	item := catalogItem("item-1", 0)
	ledger := &fakeLedgerRepo{}
	uc := appstock.NewSummaryUseCase(newFakeItemRepo(item), ledger, &fakeViewRepo{})

	_, err := uc.RegisterEntry("user-1", dto.RegisterEntryRequest{
		ItemID:   "item-1",
		Kind:     entity.KindPurchase,
		Quantity: 50,
		Status:   entity.StatusPending,
	})
	require.NoError(t, err)

	s, err := uc.GetSummary("item-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.CurrentStock)
}
