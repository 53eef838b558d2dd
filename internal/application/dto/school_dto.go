package dto

import "time"

// CreateClassRequest alta de curso.
type CreateClassRequest struct {
	Name      string `json:"name" validate:"required,max=50"`
	Level     string `json:"level" validate:"omitempty,max=50"`
	TeacherID string `json:"teacher_id" validate:"omitempty,uuid4"`
}

// UpdateClassRequest edición parcial de curso.
type UpdateClassRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,max=50"`
	Level     *string `json:"level,omitempty" validate:"omitempty,max=50"`
	TeacherID *string `json:"teacher_id,omitempty" validate:"omitempty,uuid4"`
}

// ClassResponse curso en respuestas.
type ClassResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Level     string `json:"level,omitempty"`
	TeacherID string `json:"teacher_id,omitempty"`
}

// CreateStudentRequest alta de estudiante.
type CreateStudentRequest struct {
	ClassID   string `json:"class_id" validate:"required,uuid4"`
	Code      string `json:"code" validate:"omitempty,max=30"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

// UpdateStudentRequest edición parcial de estudiante.
type UpdateStudentRequest struct {
	ClassID   *string `json:"class_id,omitempty" validate:"omitempty,uuid4"`
	Code      *string `json:"code,omitempty" validate:"omitempty,max=30"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
}

// StudentResponse estudiante en respuestas.
type StudentResponse struct {
	ID        string `json:"id"`
	ClassID   string `json:"class_id"`
	Code      string `json:"code,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CreateTermRequest alta de periodo académico.
type CreateTermRequest struct {
	Name      string    `json:"name" validate:"required,max=50"`
	Year      int       `json:"year" validate:"required,min=2000,max=2100"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
}

// TermResponse periodo académico en respuestas.
type TermResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Year      int       `json:"year"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}
