package distribution_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdist "github.com/jhoicas/Dotacion-api/internal/application/distribution"
	"github.com/jhoicas/Dotacion-api/internal/application/dto"
	"github.com/jhoicas/Dotacion-api/internal/domain"
	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
	"github.com/jhoicas/Dotacion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El fakeTxRunner ejecuta la función directamente sobre los
// mismos fakes: aquí no se prueba el aislamiento de la tx sino la lógica del
// coordinador (chequeo de stock, par Distribution/asiento, propagación).
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	items   *fakeItemRepo
	ledger  *fakeLedgerRepo
	dists   *fakeDistRepo
	classes *fakeClassRepo
	terms   *fakeTermRepo
	users   *fakeUserRepo
	uc      *appdist.UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		items:  &fakeItemRepo{items: map[string]*entity.Item{}},
		ledger: &fakeLedgerRepo{},
		dists:  &fakeDistRepo{dists: map[string]*entity.Distribution{}},
		classes: &fakeClassRepo{classes: map[string]*entity.SchoolClass{
			"class-1": {ID: "class-1", Name: "5°B"},
		}},
		terms: &fakeTermRepo{terms: map[string]*entity.Term{
			"term-1": {ID: "term-1", Name: "2026-1", Year: 2026},
		}},
		users: &fakeUserRepo{users: map[string]*entity.User{
			"teacher-1": {ID: "teacher-1", Name: "Prof. Rojas", Role: entity.RoleDocente},
		}},
	}
	runner := &fakeTxRunner{f: f}
	f.uc = appdist.NewUseCase(runner, f.dists, f.classes, f.terms, f.users)
	return f
}

type fakeTxRunner struct {
	f *fixture
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	ledgerRepo repository.LedgerRepository,
	distRepo repository.DistributionRepository,
) error) error {
	return fn(r.f.items, r.f.ledger, r.f.dists)
}

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func (r *fakeItemRepo) Create(i *entity.Item) error               { r.items[i.ID] = i; return nil }
func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error)   { return r.items[id], nil }
func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.items[id], nil
}
func (r *fakeItemRepo) Update(i *entity.Item) error              { r.items[i.ID] = i; return nil }
func (r *fakeItemRepo) List(int, int) ([]*entity.Item, error)    { return nil, nil }
func (r *fakeItemRepo) ListByIDs([]string) ([]*entity.Item, error) { return nil, nil }
func (r *fakeItemRepo) ListAllIDs() ([]string, error)            { return nil, nil }
func (r *fakeItemRepo) Delete(string) error                      { return nil }

type fakeLedgerRepo struct {
	entries []*entity.LedgerEntry
}

func (r *fakeLedgerRepo) Create(e *entity.LedgerEntry) error { r.entries = append(r.entries, e); return nil }
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
func (r *fakeLedgerRepo) ListByItem(string, *time.Time, *time.Time, int, int) ([]*entity.LedgerEntry, error) {
	return nil, nil
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

type fakeDistRepo struct {
	dists map[string]*entity.Distribution
}

func (r *fakeDistRepo) Create(d *entity.Distribution) error { r.dists[d.ID] = d; return nil }
func (r *fakeDistRepo) GetByID(id string) (*entity.Distribution, error) {
	return r.dists[id], nil
}
func (r *fakeDistRepo) Update(d *entity.Distribution) error { r.dists[d.ID] = d; return nil }
func (r *fakeDistRepo) UpdateStatus(id, status string) error {
	if d, ok := r.dists[id]; ok {
		d.Status = status
	}
	return nil
}
func (r *fakeDistRepo) List(repository.DistributionFilter, int, int) ([]*entity.Distribution, error) {
	return nil, nil
}
func (r *fakeDistRepo) SumByItem(repository.DistributionFilter) ([]repository.DistributionTotal, error) {
	return nil, nil
}

type fakeClassRepo struct {
	classes map[string]*entity.SchoolClass
}

func (r *fakeClassRepo) Create(c *entity.SchoolClass) error { r.classes[c.ID] = c; return nil }
func (r *fakeClassRepo) GetByID(id string) (*entity.SchoolClass, error) {
	return r.classes[id], nil
}
func (r *fakeClassRepo) Update(c *entity.SchoolClass) error           { return nil }
func (r *fakeClassRepo) List(int, int) ([]*entity.SchoolClass, error) { return nil, nil }
func (r *fakeClassRepo) Delete(string) error                          { return nil }

type fakeTermRepo struct {
	terms map[string]*entity.Term
}

func (r *fakeTermRepo) Create(t *entity.Term) error             { r.terms[t.ID] = t; return nil }
func (r *fakeTermRepo) GetByID(id string) (*entity.Term, error) { return r.terms[id], nil }
func (r *fakeTermRepo) Update(*entity.Term) error               { return nil }
func (r *fakeTermRepo) List(int, int) ([]*entity.Term, error)   { return nil, nil }

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error             { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r *fakeUserRepo) FindByEmail(string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Update(*entity.User) error               { return nil }

// seedItem registra un ítem con una compra completed inicial.
func (f *fixture) seedItem(t *testing.T, id string, initialStock int64) {
	t.Helper()
	f.items.items[id] = &entity.Item{
		ID:        id,
		Name:      "Uniforme talla 10",
		CostPrice: decimal.NewFromInt(45_000),
	}
	if initialStock > 0 {
		f.ledger.entries = append(f.ledger.entries, &entity.LedgerEntry{
			ID:              "seed-" + id,
			ItemID:          id,
			Kind:            entity.KindPurchase,
			QuantityIn:      initialStock,
			CostIn:          decimal.NewFromInt(initialStock * 45_000),
			Status:          entity.StatusCompleted,
			TransactionDate: time.Now().Add(-24 * time.Hour),
		})
	}
}

func (f *fixture) distribute(t *testing.T, itemID string, qty int64) (*dto.DistributionResponse, error) {
	t.Helper()
	return f.uc.Distribute(context.Background(), "user-1", dto.CreateDistributionRequest{
		ClassID:   "class-1",
		ItemID:    itemID,
		TermID:    "term-1",
		Quantity:  qty,
		TeacherID: "teacher-1",
	})
}

func (f *fixture) currentStock(t *testing.T, itemID string) int64 {
	t.Helper()
	var total int64
	for _, e := range f.ledger.entries {
		if e.ItemID == itemID && e.Status == entity.StatusCompleted {
			total += e.QuantityIn - e.QuantityOut
		}
	}
	return total
}

// ──────────────────────────────────────────────────────────────────────────────
// Distribute
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: compra de 100, entrega de 30 (ok), intento de 80
// (rechazado por stock), entrega de 70 (ok), stock final 0.
func TestDistribute_SecuenciaConRechazo(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", 100)

	_, err := f.distribute(t, "item-1", 30)
	require.NoError(t, err)
	assert.Equal(t, int64(70), f.currentStock(t, "item-1"))

	_, err = f.distribute(t, "item-1", 80)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(70), f.currentStock(t, "item-1"), "el rechazo no escribe nada")

	_, err = f.distribute(t, "item-1", 70)
	require.NoError(t, err)
	assert.Equal(t, int64(0), f.currentStock(t, "item-1"))
}

func TestDistribute_EscribeElParCompleto(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", 50)

	out, err := f.distribute(t, "item-1", 20)
	require.NoError(t, err)
	assert.Equal(t, entity.DistributionActive, out.Status)

	// Exactamente un asiento pareado, enlazado por distribution_id.
	entry, err := f.ledger.GetByDistribution(out.ID)
	require.NoError(t, err)
	require.NotNil(t, entry, "toda entrega escribe su asiento pareado")
	assert.Equal(t, entity.KindDistribution, entry.Kind)
	assert.Equal(t, entity.StatusCompleted, entry.Status)
	assert.Equal(t, int64(20), entry.QuantityOut)
	assert.Equal(t, int64(0), entry.QuantityIn)
	// Valorizado al costo de catálogo.
	assert.True(t, entry.CostOut.Equal(decimal.NewFromInt(900_000)))
}

func TestDistribute_RechazaStockExacto(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", 10)

	// qty == stock pasa; qty > stock no.
	_, err := f.distribute(t, "item-1", 10)
	require.NoError(t, err)

	_, err = f.distribute(t, "item-1", 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestDistribute_ReferenciasInexistentes(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", 10)

	_, err := f.uc.Distribute(context.Background(), "user-1", dto.CreateDistributionRequest{
		ClassID:   "class-fantasma",
		ItemID:    "item-1",
		TermID:    "term-1",
		Quantity:  5,
		TeacherID: "teacher-1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.dists.dists, "nada se escribe si el curso no existe")
}

func TestDistribute_CantidadNoPositiva(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", 10)

	_, err := f.distribute(t, "item-1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateDistribution
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateDistribution_PropagaCantidadAlAsiento(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", 100)

	created, err := f.distribute(t, "item-1", 30)
	require.NoError(t, err)

	newQty := int64(45)
	updated, err := f.uc.UpdateDistribution(context.Background(), created.ID,
		dto.UpdateDistributionRequest{Quantity: &newQty})
	require.NoError(t, err)
	assert.Equal(t, int64(45), updated.Quantity)

	entry, _ := f.ledger.GetByDistribution(created.ID)
	require.NotNil(t, entry)
	assert.Equal(t, int64(45), entry.QuantityOut, "quantity_out sigue a la entrega")
	assert.Equal(t, int64(55), f.currentStock(t, "item-1"))
}

// Un aumento solo necesita cobertura por el delta: el stock actual ya
// descuenta la salida vieja.
func TestUpdateDistribution_AumentoChequeaSoloElDelta(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", 100)

	created, err := f.distribute(t, "item-1", 90)
	require.NoError(t, err)
	// stock = 10; subir de 90 a 100 pide delta 10: exacto, pasa.
	newQty := int64(100)
	_, err = f.uc.UpdateDistribution(context.Background(), created.ID,
		dto.UpdateDistributionRequest{Quantity: &newQty})
	require.NoError(t, err)
	assert.Equal(t, int64(0), f.currentStock(t, "item-1"))

	// stock = 0; cualquier aumento adicional se rechaza.
	newQty = 101
	_, err = f.uc.UpdateDistribution(context.Background(), created.ID,
		dto.UpdateDistributionRequest{Quantity: &newQty})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestUpdateDistribution_ReduccionLiberaStock(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", 50)

	created, err := f.distribute(t, "item-1", 40)
	require.NoError(t, err)

	newQty := int64(15)
	_, err = f.uc.UpdateDistribution(context.Background(), created.ID,
		dto.UpdateDistributionRequest{Quantity: &newQty})
	require.NoError(t, err)
	assert.Equal(t, int64(35), f.currentStock(t, "item-1"))
}

// Una entrega cuyo asiento pareado desapareció está en estado inconsistente:
// la edición se rechaza en lugar de repararla a medias.
func TestUpdateDistribution_ParRotoEsConflicto(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", 50)

	created, err := f.distribute(t, "item-1", 10)
	require.NoError(t, err)

	// Simular el par roto: eliminar el asiento pareado.
	f.ledger.entries = f.ledger.entries[:1]

	newQty := int64(12)
	_, err = f.uc.UpdateDistribution(context.Background(), created.ID,
		dto.UpdateDistributionRequest{Quantity: &newQty})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateDistribution_Inexistente(t *testing.T) {
	f := newFixture(t)
	newQty := int64(5)
	_, err := f.uc.UpdateDistribution(context.Background(), "no-existe",
		dto.UpdateDistributionRequest{Quantity: &newQty})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// CancelDistribution
// ──────────────────────────────────────────────────────────────────────────────

func TestCancelDistribution_RestauraStock(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", 100)

	created, err := f.distribute(t, "item-1", 60)
	require.NoError(t, err)
	require.Equal(t, int64(40), f.currentStock(t, "item-1"))

	err = f.uc.CancelDistribution(context.Background(), created.ID)
	require.NoError(t, err)

	// Ambos registros quedan cancelados y el stock derivado vuelve solo.
	d, _ := f.dists.GetByID(created.ID)
	assert.Equal(t, entity.DistributionCancelled, d.Status)
	entry, _ := f.ledger.GetByDistribution(created.ID)
	assert.Equal(t, entity.StatusCancelled, entry.Status)
	assert.Equal(t, int64(100), f.currentStock(t, "item-1"))
}

func TestCancelDistribution_DobleAnulacionEsConflicto(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", 20)

	created, err := f.distribute(t, "item-1", 5)
	require.NoError(t, err)

	require.NoError(t, f.uc.CancelDistribution(context.Background(), created.ID))
	err = f.uc.CancelDistribution(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCancelDistribution_LiberaStockParaNuevasEntregas(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", 30)

	created, err := f.distribute(t, "item-1", 30)
	require.NoError(t, err)

	_, err = f.distribute(t, "item-1", 1)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	require.NoError(t, f.uc.CancelDistribution(context.Background(), created.ID))

	_, err = f.distribute(t, "item-1", 30)
	assert.NoError(t, err, "el stock anulado queda disponible de nuevo")
}
