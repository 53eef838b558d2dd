package entitlement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appent "github.com/jhoicas/Dotacion-api/internal/application/entitlement"
	"github.com/jhoicas/Dotacion-api/internal/application/dto"
	"github.com/jhoicas/Dotacion-api/internal/domain"
	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
	"github.com/jhoicas/Dotacion-api/internal/domain/repository"
)

type fakeEntitlementRepo struct {
	upserted []*entity.Entitlement
	listed   []*entity.Entitlement
}

func (r *fakeEntitlementRepo) Upsert(e *entity.Entitlement) error {
	r.upserted = append(r.upserted, e)
	return nil
}
func (r *fakeEntitlementRepo) GetByKey(string, string, string) (*entity.Entitlement, error) {
	return nil, nil
}
func (r *fakeEntitlementRepo) List(string, string) ([]*entity.Entitlement, error) {
	return r.listed, nil
}

var _ repository.EntitlementRepository = (*fakeEntitlementRepo)(nil)

func validEntitlement() dto.UpsertEntitlementRequest {
	return dto.UpsertEntitlementRequest{
		ClassID:  "class-1",
		ItemID:   "item-1",
		TermID:   "term-1",
		Quantity: 35,
	}
}

func TestUpsert_DeclaraCupo(t *testing.T) {
	repo := &fakeEntitlementRepo{}
	uc := appent.NewUseCase(repo)

	out, err := uc.Upsert(validEntitlement())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, int64(35), out.Quantity)
	require.Len(t, repo.upserted, 1)
}

// Cantidad cero es un cupo válido (el curso no recibe ese ítem este periodo);
// lo inválido es el negativo o la clave incompleta.
func TestUpsert_CantidadCeroEsValida(t *testing.T) {
	uc := appent.NewUseCase(&fakeEntitlementRepo{})

	in := validEntitlement()
	in.Quantity = 0
	out, err := uc.Upsert(in)
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Quantity)
}

func TestUpsert_EntradaInvalida(t *testing.T) {
	uc := appent.NewUseCase(&fakeEntitlementRepo{})

	casos := []dto.UpsertEntitlementRequest{
		func() dto.UpsertEntitlementRequest { in := validEntitlement(); in.ClassID = ""; return in }(),
		func() dto.UpsertEntitlementRequest { in := validEntitlement(); in.ItemID = ""; return in }(),
		func() dto.UpsertEntitlementRequest { in := validEntitlement(); in.TermID = ""; return in }(),
		func() dto.UpsertEntitlementRequest { in := validEntitlement(); in.Quantity = -1; return in }(),
	}
	for _, in := range casos {
		_, err := uc.Upsert(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestBulkUpsert_AplicaTodos(t *testing.T) {
	repo := &fakeEntitlementRepo{}
	uc := appent.NewUseCase(repo)

	segundo := validEntitlement()
	segundo.ItemID = "item-2"
	out, err := uc.BulkUpsert(dto.BulkUpsertEntitlementRequest{
		Entitlements: []dto.UpsertEntitlementRequest{validEntitlement(), segundo},
	})
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Len(t, repo.upserted, 2)
}

// La carga masiva corta al primer error: lo ya aplicado queda (cada upsert es
// idempotente y reintentar el lote completo es seguro).
func TestBulkUpsert_CortaAlPrimerError(t *testing.T) {
	repo := &fakeEntitlementRepo{}
	uc := appent.NewUseCase(repo)

	invalido := validEntitlement()
	invalido.Quantity = -5
	tercero := validEntitlement()
	tercero.ItemID = "item-3"
	_, err := uc.BulkUpsert(dto.BulkUpsertEntitlementRequest{
		Entitlements: []dto.UpsertEntitlementRequest{validEntitlement(), invalido, tercero},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, repo.upserted, 1, "solo el cupo previo al error llegó al repo")
}

func TestList_MapeaRespuestas(t *testing.T) {
	repo := &fakeEntitlementRepo{listed: []*entity.Entitlement{
		{ID: "e1", ClassID: "class-1", ItemID: "item-1", TermID: "term-1", Quantity: 10},
		{ID: "e2", ClassID: "class-1", ItemID: "item-2", TermID: "term-1", Quantity: 20},
	}}
	uc := appent.NewUseCase(repo)

	out, err := uc.List("class-1", "term-1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "item-2", out[1].ItemID)
	assert.Equal(t, int64(20), out[1].Quantity)
}
