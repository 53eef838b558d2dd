package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin       = "admin"
	RoleAlmacenista = "almacenista" // gestiona depósito y entregas
	RoleDocente     = "docente"     // registra retiros de estudiantes
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin, almacenista, docente
	Status       string // active, disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
