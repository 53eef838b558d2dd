package entity

import "time"

// StudentCollection registra que un estudiante retiró (o está habilitado para
// retirar) parte de la dotación entregada a su curso. Única por
// estudiante+periodo+ítem. Se correlaciona con Distribution solo por la tripla
// (curso, ítem, periodo), no por clave foránea.
type StudentCollection struct {
	ID           string
	StudentID    string
	ClassID      string
	TermID       string
	ItemID       string
	Quantity     int64
	Eligible     bool
	Received     bool
	ReceivedDate *time.Time
	TeacherID    string // docente que registra la entrega al estudiante
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
