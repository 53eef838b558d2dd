package repository

import "github.com/jhoicas/Dotacion-api/internal/domain/entity"

// CollectionTotal total retirado por estudiantes por ítem (GROUP BY item_id,
// solo registros con received = true).
type CollectionTotal struct {
	ItemID         string
	TotalCollected int64
}

// CollectionRepository define el puerto de persistencia para los retiros de
// estudiantes. El agregador de conciliación solo lee; la escritura viene del
// registro docente (upsert por estudiante+periodo+ítem).
type CollectionRepository interface {
	Upsert(c *entity.StudentCollection) error
	GetByKey(studentID, termID, itemID string) (*entity.StudentCollection, error)
	List(filter DistributionFilter, limit, offset int) ([]*entity.StudentCollection, error)
	// SumReceivedByItem agrega qty por ítem de los retiros received=true que
	// pasen el filtro (lado "retirado" de la conciliación). El filtro de
	// docente aplica sobre el docente que registró el retiro.
	SumReceivedByItem(filter DistributionFilter) ([]CollectionTotal, error)
}
