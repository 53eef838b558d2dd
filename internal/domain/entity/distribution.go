package entity

import "time"

// Estados de una entrega a curso.
const (
	DistributionActive    = "active"
	DistributionCancelled = "cancelled"
)

// Distribution representa la entrega de una cantidad de un ítem del depósito
// común a un curso, para un periodo académico. Cada Distribution tiene un
// asiento pareado en el libro (kind=distribution) cuyo quantity_out debe
// coincidir siempre con Quantity.
type Distribution struct {
	ID               string
	ClassID          string
	ItemID           string
	TermID           string
	Quantity         int64
	DistributionDate time.Time
	TeacherID        string // docente que recibe por el curso
	Notes            string
	Status           string // active, cancelled
	CreatedAt        time.Time
	UpdatedAt        time.Time
	CreatedBy        string
}
