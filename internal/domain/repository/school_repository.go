package repository

import "github.com/jhoicas/Dotacion-api/internal/domain/entity"

// ClassRepository define el puerto de persistencia para cursos.
type ClassRepository interface {
	Create(c *entity.SchoolClass) error
	GetByID(id string) (*entity.SchoolClass, error)
	Update(c *entity.SchoolClass) error
	List(limit, offset int) ([]*entity.SchoolClass, error)
	Delete(id string) error
}

// StudentRepository define el puerto de persistencia para estudiantes.
type StudentRepository interface {
	Create(s *entity.Student) error
	GetByID(id string) (*entity.Student, error)
	Update(s *entity.Student) error
	ListByClass(classID string, limit, offset int) ([]*entity.Student, error)
	Delete(id string) error
}

// TermRepository define el puerto de persistencia para periodos académicos.
type TermRepository interface {
	Create(t *entity.Term) error
	GetByID(id string) (*entity.Term, error)
	Update(t *entity.Term) error
	List(limit, offset int) ([]*entity.Term, error)
}
