package dto

import "time"

// SummaryFilterRequest filtros opcionales de la conciliación entregado/retirado.
// El filtro de docente aplica al docente receptor de la entrega o al que
// registró el retiro, según el lado.
type SummaryFilterRequest struct {
	ItemID    string `query:"item_id" validate:"omitempty,uuid4"`
	ClassID   string `query:"class_id" validate:"omitempty,uuid4"`
	TermID    string `query:"term_id" validate:"omitempty,uuid4"`
	TeacherID string `query:"teacher_id" validate:"omitempty,uuid4"`
}

// DistributionSummaryRow balance por ítem: entregado a cursos vs. retirado por
// estudiantes. Un ítem presente en un solo lado aparece con el otro en cero.
type DistributionSummaryRow struct {
	ItemID               string     `json:"item_id"`
	TotalDistributed     int64      `json:"total_distributed"`
	TotalCollected       int64      `json:"total_collected"`
	Balance              int64      `json:"balance"`
	LastDistributionDate *time.Time `json:"last_distribution_date,omitempty"`
}

// RecordCollectionRequest registro (upsert) del retiro de un estudiante.
// Único por estudiante+periodo+ítem.
type RecordCollectionRequest struct {
	StudentID    string     `json:"student_id" validate:"required,uuid4"`
	ClassID      string     `json:"class_id" validate:"required,uuid4"`
	TermID       string     `json:"term_id" validate:"required,uuid4"`
	ItemID       string     `json:"item_id" validate:"required,uuid4"`
	Quantity     int64      `json:"quantity" validate:"required,gt=0"`
	Eligible     bool       `json:"eligible"`
	Received     bool       `json:"received"`
	ReceivedDate *time.Time `json:"received_date,omitempty"`
}

// CollectionResponse retiro de estudiante en respuestas.
type CollectionResponse struct {
	ID           string     `json:"id"`
	StudentID    string     `json:"student_id"`
	ClassID      string     `json:"class_id"`
	TermID       string     `json:"term_id"`
	ItemID       string     `json:"item_id"`
	Quantity     int64      `json:"quantity"`
	Eligible     bool       `json:"eligible"`
	Received     bool       `json:"received"`
	ReceivedDate *time.Time `json:"received_date,omitempty"`
	TeacherID    string     `json:"teacher_id"`
}
