// Package distribution implementa el coordinador de entregas a curso: mueve
// stock del depósito común a un curso escribiendo la Distribution y su asiento
// pareado del libro en una sola transacción.
package distribution

import (
	"context"
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

// UseCase coordina entregas a curso. Precondición de toda entrega: el stock
// derivado del ítem debe cubrir la cantidad en el momento del chequeo, y el
// chequeo se hace con la fila del ítem bloqueada (GetForUpdate) dentro de la
// misma transacción que las dos escrituras.
type UseCase struct {
	txRunner  TxRunner
	distRepo  repository.DistributionRepository // lecturas fuera de tx
	classRepo repository.ClassRepository
	termRepo  repository.TermRepository
	userRepo  repository.UserRepository
}

// NewUseCase construye el coordinador.
func NewUseCase(
	txRunner TxRunner,
	distRepo repository.DistributionRepository,
	classRepo repository.ClassRepository,
	termRepo repository.TermRepository,
	userRepo repository.UserRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, distRepo: distRepo, classRepo: classRepo, termRepo: termRepo, userRepo: userRepo}
}

// Distribute entrega qty unidades de un ítem a un curso para un periodo.
// Rechaza con ErrInsufficientStock antes de escribir si qty excede el stock
// derivado. Escribe la Distribution y un asiento kind=distribution,
// status=completed, quantity_out=qty enlazado por distribution_id.
func (uc *UseCase) Distribute(ctx context.Context, userID string, in dto.CreateDistributionRequest) (*dto.DistributionResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.ClassID == "" || in.ItemID == "" || in.TermID == "" || in.TeacherID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkRefs(in.ClassID, in.TermID, in.TeacherID); err != nil {
		return nil, err
	}

	now := time.Now()
	distDate := now
	if in.DistributionDate != nil {
		distDate = *in.DistributionDate
	}

	var created *entity.Distribution
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		ledgerRepo repository.LedgerRepository,
		distRepo repository.DistributionRepository,
	) error {
		// Bloquea la fila del ítem: serializa chequeo + escrituras por ítem.
		item, err := itemRepo.GetForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		current, err := currentStock(ledgerRepo, item)
		if err != nil {
			return err
		}
		if in.Quantity > current {
			return domain.ErrInsufficientStock
		}

		d := &entity.Distribution{
			ID:               uuid.New().String(),
			ClassID:          in.ClassID,
			ItemID:           in.ItemID,
			TermID:           in.TermID,
			Quantity:         in.Quantity,
			DistributionDate: distDate,
			TeacherID:        in.TeacherID,
			Notes:            in.Notes,
			Status:           entity.DistributionActive,
			CreatedAt:        now,
			UpdatedAt:        now,
			CreatedBy:        userID,
		}
		if err := distRepo.Create(d); err != nil {
			return fmt.Errorf("crear entrega: %w", err)
		}

		entry := &entity.LedgerEntry{
			ID:              uuid.New().String(),
			ItemID:          in.ItemID,
			Kind:            entity.KindDistribution,
			QuantityOut:     in.Quantity,
			CostOut:         decimal.NewFromInt(in.Quantity).Mul(item.CostPrice),
			Status:          entity.StatusCompleted,
			DistributionID:  &d.ID,
			TransactionDate: distDate,
			CreatedAt:       now,
			CreatedBy:       userID,
		}
		if err := ledgerRepo.Create(entry); err != nil {
			return fmt.Errorf("crear asiento pareado: %w", err)
		}
		created = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toResponse(created), nil
}

// UpdateDistribution edita una entrega activa. Si cambia la cantidad, el
// quantity_out del asiento pareado se reescribe al mismo valor en la misma
// transacción; un aumento re-chequea el stock derivado por el delta.
func (uc *UseCase) UpdateDistribution(ctx context.Context, id string, in dto.UpdateDistributionRequest) (*dto.DistributionResponse, error) {
	if in.Quantity != nil && *in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.Distribution
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		ledgerRepo repository.LedgerRepository,
		distRepo repository.DistributionRepository,
	) error {
		d, err := distRepo.GetByID(id)
		if err != nil {
			return err
		}
		if d == nil {
			return domain.ErrNotFound
		}
		if d.Status != entity.DistributionActive {
			return domain.ErrConflict
		}
		entry, err := ledgerRepo.GetByDistribution(d.ID)
		if err != nil {
			return err
		}
		if entry == nil {
			// Par roto: la entrega existe sin asiento. No se repara aquí.
			return domain.ErrConflict
		}

		if in.Quantity != nil && *in.Quantity != d.Quantity {
			item, err := itemRepo.GetForUpdate(d.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			current, err := currentStock(ledgerRepo, item)
			if err != nil {
				return err
			}
			// El stock actual ya descuenta la salida vieja: solo el delta
			// adicional necesita cobertura.
			if delta := *in.Quantity - d.Quantity; delta > current {
				return domain.ErrInsufficientStock
			}
			d.Quantity = *in.Quantity
			costOut := decimal.NewFromInt(d.Quantity).Mul(item.CostPrice)
			if err := ledgerRepo.UpdateQuantityOut(entry.ID, d.Quantity, costOut); err != nil {
				return fmt.Errorf("propagar cantidad al asiento: %w", err)
			}
		}
		if in.TeacherID != nil {
			d.TeacherID = *in.TeacherID
		}
		if in.DistributionDate != nil {
			d.DistributionDate = *in.DistributionDate
		}
		if in.Notes != nil {
			d.Notes = *in.Notes
		}
		d.UpdatedAt = time.Now()
		if err := distRepo.Update(d); err != nil {
			return fmt.Errorf("actualizar entrega: %w", err)
		}
		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toResponse(updated), nil
}

// CancelDistribution anula una entrega: marca cancelled la Distribution y su
// asiento pareado. Como solo los asientos completed cuentan, el stock derivado
// se restaura solo.
func (uc *UseCase) CancelDistribution(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		_ repository.ItemRepository,
		ledgerRepo repository.LedgerRepository,
		distRepo repository.DistributionRepository,
	) error {
		d, err := distRepo.GetByID(id)
		if err != nil {
			return err
		}
		if d == nil {
			return domain.ErrNotFound
		}
		if d.Status != entity.DistributionActive {
			return domain.ErrConflict
		}
		entry, err := ledgerRepo.GetByDistribution(d.ID)
		if err != nil {
			return err
		}
		if err := distRepo.UpdateStatus(d.ID, entity.DistributionCancelled); err != nil {
			return fmt.Errorf("anular entrega: %w", err)
		}
		if entry != nil {
			if err := ledgerRepo.UpdateStatus(entry.ID, entity.StatusCancelled); err != nil {
				return fmt.Errorf("anular asiento pareado: %w", err)
			}
		}
		return nil
	})
}

// GetByID obtiene una entrega por ID.
func (uc *UseCase) GetByID(id string) (*dto.DistributionResponse, error) {
	d, err := uc.distRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(d), nil
}

// List lista entregas con filtros opcionales y paginación.
func (uc *UseCase) List(filter repository.DistributionFilter, limit, offset int) ([]dto.DistributionResponse, error) {
	list, err := uc.distRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DistributionResponse, 0, len(list))
	for _, d := range list {
		out = append(out, *toResponse(d))
	}
	return out, nil
}

// checkRefs valida que curso, periodo y docente existan.
func (uc *UseCase) checkRefs(classID, termID, teacherID string) error {
	class, err := uc.classRepo.GetByID(classID)
	if err != nil {
		return err
	}
	term, err2 := uc.termRepo.GetByID(termID)
	if err2 != nil {
		return err2
	}
	teacher, err3 := uc.userRepo.GetByID(teacherID)
	if err3 != nil {
		return err3
	}
	if class == nil || term == nil || teacher == nil {
		return domain.ErrNotFound
	}
	return nil
}

// currentStock pliega los asientos completed del ítem dentro de la tx.
func currentStock(ledgerRepo repository.LedgerRepository, item *entity.Item) (int64, error) {
	entries, err := ledgerRepo.ListCompletedByItem(item.ID)
	if err != nil {
		return 0, err
	}
	return domstock.Compute(item, entries).CurrentStock, nil
}

func toResponse(d *entity.Distribution) *dto.DistributionResponse {
	return &dto.DistributionResponse{
		ID:               d.ID,
		ClassID:          d.ClassID,
		ItemID:           d.ItemID,
		TermID:           d.TermID,
		Quantity:         d.Quantity,
		DistributionDate: d.DistributionDate,
		TeacherID:        d.TeacherID,
		Notes:            d.Notes,
		Status:           d.Status,
		CreatedAt:        d.CreatedAt,
	}
}
