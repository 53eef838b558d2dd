package entity

import "time"

// Entitlement declara la cantidad planificada de un ítem para un curso en un
// periodo (única por curso+ítem+periodo). Es un registro de planeación, no una
// reserva: el coordinador de entregas nunca lo consulta para el chequeo de stock.
type Entitlement struct {
	ID        string
	ClassID   string
	ItemID    string
	TermID    string
	Quantity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
