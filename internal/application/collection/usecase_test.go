package collection_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcoll "github.com/jhoicas/Dotacion-api/internal/application/collection"
	"github.com/jhoicas/Dotacion-api/internal/application/dto"
	"github.com/jhoicas/Dotacion-api/internal/domain"
	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
	"github.com/jhoicas/Dotacion-api/internal/domain/repository"
	"github.com/jhoicas/Dotacion-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: el agregador solo usa SumByItem de un lado y SumReceivedByItem/Upsert
// del otro; el resto son no-ops para satisfacer el puerto.
// ──────────────────────────────────────────────────────────────────────────────

type fakeDistRepo struct {
	totals []repository.DistributionTotal
	filter repository.DistributionFilter
}

func (r *fakeDistRepo) Create(*entity.Distribution) error                { return nil }
func (r *fakeDistRepo) GetByID(string) (*entity.Distribution, error)     { return nil, nil }
func (r *fakeDistRepo) Update(*entity.Distribution) error                { return nil }
func (r *fakeDistRepo) UpdateStatus(string, string) error                { return nil }
func (r *fakeDistRepo) List(repository.DistributionFilter, int, int) ([]*entity.Distribution, error) {
	return nil, nil
}
func (r *fakeDistRepo) SumByItem(filter repository.DistributionFilter) ([]repository.DistributionTotal, error) {
	r.filter = filter
	return r.totals, nil
}

type fakeCollRepo struct {
	totals   []repository.CollectionTotal
	upserted []*entity.StudentCollection
}

func (r *fakeCollRepo) Upsert(c *entity.StudentCollection) error {
	r.upserted = append(r.upserted, c)
	return nil
}
func (r *fakeCollRepo) GetByKey(string, string, string) (*entity.StudentCollection, error) {
	return nil, nil
}
func (r *fakeCollRepo) List(repository.DistributionFilter, int, int) ([]*entity.StudentCollection, error) {
	return nil, nil
}
func (r *fakeCollRepo) SumReceivedByItem(repository.DistributionFilter) ([]repository.CollectionTotal, error) {
	return r.totals, nil
}

var _ repository.DistributionRepository = (*fakeDistRepo)(nil)
var _ repository.CollectionRepository = (*fakeCollRepo)(nil)

func newUC(dist *fakeDistRepo, coll *fakeCollRepo) *appcoll.UseCase {
	return appcoll.NewUseCase(dist, coll, logger.NewNop())
}

// ──────────────────────────────────────────────────────────────────────────────
// GetDistributionSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestGetDistributionSummary_BalancePorItem(t *testing.T) {
	fecha := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	dist := &fakeDistRepo{totals: []repository.DistributionTotal{
		{ItemID: "item-1", TotalDistributed: 50, LastDistributionDate: &fecha},
	}}
	coll := &fakeCollRepo{totals: []repository.CollectionTotal{
		{ItemID: "item-1", TotalCollected: 35},
	}}

	rows, err := newUC(dist, coll).GetDistributionSummary(dto.SummaryFilterRequest{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(50), rows[0].TotalDistributed)
	assert.Equal(t, int64(35), rows[0].TotalCollected)
	assert.Equal(t, int64(15), rows[0].Balance)
	assert.Equal(t, fecha, *rows[0].LastDistributionDate)
}

// Un ítem presente en un solo lado aparece con el otro lado en cero, nunca se
// omite de la respuesta.
func TestGetDistributionSummary_RellenaConCero(t *testing.T) {
	dist := &fakeDistRepo{totals: []repository.DistributionTotal{
		{ItemID: "item-solo-entregado", TotalDistributed: 20},
	}}
	coll := &fakeCollRepo{totals: []repository.CollectionTotal{
		{ItemID: "item-solo-retirado", TotalCollected: 8},
	}}

	rows, err := newUC(dist, coll).GetDistributionSummary(dto.SummaryFilterRequest{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := map[string]dto.DistributionSummaryRow{}
	for _, r := range rows {
		byID[r.ItemID] = r
	}
	assert.Equal(t, int64(20), byID["item-solo-entregado"].Balance)
	assert.Equal(t, int64(0), byID["item-solo-entregado"].TotalCollected)
	assert.Equal(t, int64(-8), byID["item-solo-retirado"].Balance)
	assert.Equal(t, int64(0), byID["item-solo-retirado"].TotalDistributed)
}

// Retirado > entregado es dato inconsistente pero visible: la fila se responde
// con balance negativo en vez de ocultarse o truncarse a cero.
func TestGetDistributionSummary_BalanceNegativoSeReporta(t *testing.T) {
	dist := &fakeDistRepo{totals: []repository.DistributionTotal{
		{ItemID: "item-1", TotalDistributed: 10},
	}}
	coll := &fakeCollRepo{totals: []repository.CollectionTotal{
		{ItemID: "item-1", TotalCollected: 25},
	}}

	rows, err := newUC(dist, coll).GetDistributionSummary(dto.SummaryFilterRequest{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(-15), rows[0].Balance)
}

func TestGetDistributionSummary_OrdenEstablePorItem(t *testing.T) {
	dist := &fakeDistRepo{totals: []repository.DistributionTotal{
		{ItemID: "item-c", TotalDistributed: 1},
		{ItemID: "item-a", TotalDistributed: 2},
		{ItemID: "item-b", TotalDistributed: 3},
	}}

	rows, err := newUC(dist, &fakeCollRepo{}).GetDistributionSummary(dto.SummaryFilterRequest{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "item-a", rows[0].ItemID)
	assert.Equal(t, "item-b", rows[1].ItemID)
	assert.Equal(t, "item-c", rows[2].ItemID)
}

func TestGetDistributionSummary_PropagaFiltros(t *testing.T) {
	dist := &fakeDistRepo{}

	_, err := newUC(dist, &fakeCollRepo{}).GetDistributionSummary(dto.SummaryFilterRequest{
		ItemID:  "item-1",
		ClassID: "class-1",
		TermID:  "term-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "item-1", dist.filter.ItemID)
	assert.Equal(t, "class-1", dist.filter.ClassID)
	assert.Equal(t, "term-1", dist.filter.TermID)
}

func TestGetDistributionSummary_SinDatos(t *testing.T) {
	rows, err := newUC(&fakeDistRepo{}, &fakeCollRepo{}).GetDistributionSummary(dto.SummaryFilterRequest{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordCollection
// ──────────────────────────────────────────────────────────────────────────────

func validCollection() dto.RecordCollectionRequest {
	return dto.RecordCollectionRequest{
		StudentID: "student-1",
		ClassID:   "class-1",
		TermID:    "term-1",
		ItemID:    "item-1",
		Quantity:  2,
		Eligible:  true,
		Received:  true,
	}
}

func TestRecordCollection_RegistraConDocente(t *testing.T) {
	coll := &fakeCollRepo{}

	out, err := newUC(&fakeDistRepo{}, coll).RecordCollection("teacher-1", validCollection())
	require.NoError(t, err)
	require.Len(t, coll.upserted, 1)
	assert.Equal(t, "teacher-1", out.TeacherID, "el docente sale del token, no del body")
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.Received)
}

// received=true sin fecha explícita estampa el momento del registro.
func TestRecordCollection_FechaPorDefecto(t *testing.T) {
	coll := &fakeCollRepo{}
	antes := time.Now()

	out, err := newUC(&fakeDistRepo{}, coll).RecordCollection("teacher-1", validCollection())
	require.NoError(t, err)
	require.NotNil(t, out.ReceivedDate)
	assert.False(t, out.ReceivedDate.Before(antes))

	// Con fecha explícita se respeta la del docente.
	explicita := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	in := validCollection()
	in.ReceivedDate = &explicita
	out, err = newUC(&fakeDistRepo{}, coll).RecordCollection("teacher-1", in)
	require.NoError(t, err)
	assert.Equal(t, explicita, *out.ReceivedDate)
}

func TestRecordCollection_NoRecibidoSinFecha(t *testing.T) {
	in := validCollection()
	in.Received = false

	out, err := newUC(&fakeDistRepo{}, &fakeCollRepo{}).RecordCollection("teacher-1", in)
	require.NoError(t, err)
	assert.Nil(t, out.ReceivedDate)
}

func TestRecordCollection_EntradaInvalida(t *testing.T) {
	uc := newUC(&fakeDistRepo{}, &fakeCollRepo{})

	casos := []dto.RecordCollectionRequest{
		func() dto.RecordCollectionRequest { in := validCollection(); in.Quantity = 0; return in }(),
		func() dto.RecordCollectionRequest { in := validCollection(); in.Quantity = -3; return in }(),
		func() dto.RecordCollectionRequest { in := validCollection(); in.StudentID = ""; return in }(),
		func() dto.RecordCollectionRequest { in := validCollection(); in.ItemID = ""; return in }(),
	}
	for _, in := range casos {
		_, err := uc.RecordCollection("teacher-1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
