package entity

import "time"

// SchoolClass representa un curso (ej. "5°B") con su docente titular.
type SchoolClass struct {
	ID        string
	Name      string
	Level     string // primaria, secundaria
	TeacherID string // docente titular (opcional)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Student representa un estudiante matriculado en un curso.
type Student struct {
	ID        string
	ClassID   string
	Code      string // código interno / matrícula
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Term representa un periodo académico (ej. "2026-1").
type Term struct {
	ID        string
	Name      string
	Year      int
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
