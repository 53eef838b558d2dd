package entity

import "time"

// Category agrupa ítems del catálogo (útiles, uniformes, textos).
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
