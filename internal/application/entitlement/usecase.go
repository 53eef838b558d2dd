// Package entitlement implementa el registro de cupos planificados por
// (curso, ítem, periodo). Planeación pura: nunca reserva stock ni lo chequea.
package entitlement

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Dotacion-api/internal/application/dto"
	"github.com/jhoicas/Dotacion-api/internal/domain"
	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
	"github.com/jhoicas/Dotacion-api/internal/domain/repository"
)

// UseCase upserts de cupos planificados.
type UseCase struct {
	repo repository.EntitlementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.EntitlementRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Upsert declara (o sobrescribe) el cupo de un curso para un ítem y periodo.
// El duplicado de clave se resuelve sobrescribiendo, nunca como error.
func (uc *UseCase) Upsert(in dto.UpsertEntitlementRequest) (*dto.EntitlementResponse, error) {
	if in.ClassID == "" || in.ItemID == "" || in.TermID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	e := &entity.Entitlement{
		ID:        uuid.New().String(),
		ClassID:   in.ClassID,
		ItemID:    in.ItemID,
		TermID:    in.TermID,
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Upsert(e); err != nil {
		return nil, err
	}
	return toResponse(e), nil
}

// BulkUpsert aplica una lista de cupos; falla completa al primer error.
func (uc *UseCase) BulkUpsert(in dto.BulkUpsertEntitlementRequest) ([]dto.EntitlementResponse, error) {
	out := make([]dto.EntitlementResponse, 0, len(in.Entitlements))
	for _, req := range in.Entitlements {
		resp, err := uc.Upsert(req)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// List lista cupos con filtros opcionales de curso y periodo.
func (uc *UseCase) List(classID, termID string) ([]dto.EntitlementResponse, error) {
	list, err := uc.repo.List(classID, termID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntitlementResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toResponse(e))
	}
	return out, nil
}

func toResponse(e *entity.Entitlement) *dto.EntitlementResponse {
	return &dto.EntitlementResponse{
		ID:       e.ID,
		ClassID:  e.ClassID,
		ItemID:   e.ItemID,
		TermID:   e.TermID,
		Quantity: e.Quantity,
	}
}
