package repository

import "github.com/jhoicas/Dotacion-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(c *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(c *entity.Category) error
	List(limit, offset int) ([]*entity.Category, error)
	Delete(id string) error
}
