package repository

import "github.com/jhoicas/Dotacion-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	// GetForUpdate bloquea la fila del ítem (SELECT FOR UPDATE) para serializar
	// el chequeo de stock y las escrituras del coordinador de entregas.
	GetForUpdate(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	List(limit, offset int) ([]*entity.Item, error)
	ListByIDs(ids []string) ([]*entity.Item, error)
	ListAllIDs() ([]string, error)
	Delete(id string) error
}
