package dto

import "time"

// CreateDistributionRequest alta de una entrega a curso.
type CreateDistributionRequest struct {
	ClassID          string     `json:"class_id" validate:"required,uuid4"`
	ItemID           string     `json:"item_id" validate:"required,uuid4"`
	TermID           string     `json:"term_id" validate:"required,uuid4"`
	Quantity         int64      `json:"quantity" validate:"required,gt=0"`
	TeacherID        string     `json:"teacher_id" validate:"required,uuid4"`
	DistributionDate *time.Time `json:"distribution_date,omitempty"`
	Notes            string     `json:"notes" validate:"omitempty,max=500"`
}

// UpdateDistributionRequest edición de una entrega. La nueva cantidad se
// propaga al asiento pareado del libro.
type UpdateDistributionRequest struct {
	Quantity         *int64     `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	TeacherID        *string    `json:"teacher_id,omitempty" validate:"omitempty,uuid4"`
	DistributionDate *time.Time `json:"distribution_date,omitempty"`
	Notes            *string    `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// DistributionResponse entrega a curso en respuestas.
type DistributionResponse struct {
	ID               string    `json:"id"`
	ClassID          string    `json:"class_id"`
	ItemID           string    `json:"item_id"`
	TermID           string    `json:"term_id"`
	Quantity         int64     `json:"quantity"`
	DistributionDate time.Time `json:"distribution_date"`
	TeacherID        string    `json:"teacher_id"`
	Notes            string    `json:"notes,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// DistributionListResponse listado paginado de entregas.
type DistributionListResponse struct {
	Items []DistributionResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
