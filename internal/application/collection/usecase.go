// Package collection implementa el agregador de conciliación: cuánto de lo
// entregado a cada curso llegó efectivamente a los estudiantes.
package collection

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Dotacion-api/internal/application/dto"
	"github.com/jhoicas/Dotacion-api/internal/domain"
	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
	"github.com/jhoicas/Dotacion-api/internal/domain/repository"
	"github.com/jhoicas/Dotacion-api/pkg/logger"
)

// UseCase concilia entregas a curso contra retiros de estudiantes. Los dos
// lados se correlacionan solo por (curso, ítem, periodo): es un join por
// atributos, no referencial.
type UseCase struct {
	distRepo repository.DistributionRepository
	collRepo repository.CollectionRepository
	log      *logger.Logger
}

// NewUseCase construye el agregador.
func NewUseCase(
	distRepo repository.DistributionRepository,
	collRepo repository.CollectionRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{distRepo: distRepo, collRepo: collRepo, log: log}
}

// GetDistributionSummary devuelve, por ítem, total entregado vs. total
// retirado y su balance, bajo filtros opcionales (ítem, curso, periodo,
// docente). Un ítem presente en un solo lado aparece con el otro en cero.
// Un balance negativo (más retirado que entregado) es una violación de
// invariante detectable: se responde igual pero se alerta por log.
func (uc *UseCase) GetDistributionSummary(in dto.SummaryFilterRequest) ([]dto.DistributionSummaryRow, error) {
	filter := repository.DistributionFilter{
		ItemID:    in.ItemID,
		ClassID:   in.ClassID,
		TermID:    in.TermID,
		TeacherID: in.TeacherID,
	}

	distributed, err := uc.distRepo.SumByItem(filter)
	if err != nil {
		return nil, err
	}
	collected, err := uc.collRepo.SumReceivedByItem(filter)
	if err != nil {
		return nil, err
	}

	byItem := make(map[string]*dto.DistributionSummaryRow, len(distributed))
	for _, d := range distributed {
		byItem[d.ItemID] = &dto.DistributionSummaryRow{
			ItemID:               d.ItemID,
			TotalDistributed:     d.TotalDistributed,
			LastDistributionDate: d.LastDistributionDate,
		}
	}
	for _, c := range collected {
		row, ok := byItem[c.ItemID]
		if !ok {
			row = &dto.DistributionSummaryRow{ItemID: c.ItemID}
			byItem[c.ItemID] = row
		}
		row.TotalCollected = c.TotalCollected
	}

	out := make([]dto.DistributionSummaryRow, 0, len(byItem))
	for _, row := range byItem {
		row.Balance = row.TotalDistributed - row.TotalCollected
		if row.Balance < 0 && uc.log != nil {
			uc.log.Warn().
				Str("item_id", row.ItemID).
				Int64("total_distributed", row.TotalDistributed).
				Int64("total_collected", row.TotalCollected).
				Msg("conciliación: retirado supera lo entregado")
		}
		out = append(out, *row)
	}
	// Orden estable por ítem para respuestas deterministas.
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

// RecordCollection registra (upsert) el retiro de un estudiante: única por
// estudiante+periodo+ítem, el duplicado sobrescribe en lugar de fallar.
func (uc *UseCase) RecordCollection(teacherID string, in dto.RecordCollectionRequest) (*dto.CollectionResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.StudentID == "" || in.ClassID == "" || in.TermID == "" || in.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	receivedDate := in.ReceivedDate
	if in.Received && receivedDate == nil {
		receivedDate = &now
	}
	c := &entity.StudentCollection{
		ID:           uuid.New().String(),
		StudentID:    in.StudentID,
		ClassID:      in.ClassID,
		TermID:       in.TermID,
		ItemID:       in.ItemID,
		Quantity:     in.Quantity,
		Eligible:     in.Eligible,
		Received:     in.Received,
		ReceivedDate: receivedDate,
		TeacherID:    teacherID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.collRepo.Upsert(c); err != nil {
		return nil, err
	}
	return toCollectionResponse(c), nil
}

func toCollectionResponse(c *entity.StudentCollection) *dto.CollectionResponse {
	return &dto.CollectionResponse{
		ID:           c.ID,
		StudentID:    c.StudentID,
		ClassID:      c.ClassID,
		TermID:       c.TermID,
		ItemID:       c.ItemID,
		Quantity:     c.Quantity,
		Eligible:     c.Eligible,
		Received:     c.Received,
		ReceivedDate: c.ReceivedDate,
		TeacherID:    c.TeacherID,
	}
}
