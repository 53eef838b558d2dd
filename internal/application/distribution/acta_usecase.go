package distribution

import (
	"context"
	"time"

	"github.com/jhoicas/Dotacion-api/internal/domain"
	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
	"github.com/jhoicas/Dotacion-api/internal/domain/repository"
)

// ActaData datos resueltos para el acta de entrega de una Distribution.
type ActaData struct {
	Distribution *entity.Distribution
	Item         *entity.Item
	Class        *entity.SchoolClass
	Term         *entity.Term
	Teacher      *entity.User
	GeneratedAt  time.Time
}

// ActaPDFGenerator puerto del generador del acta (implementado con Maroto).
type ActaPDFGenerator interface {
	GenerateActaPDF(ctx context.Context, data ActaData) ([]byte, error)
}

// ActaUseCase genera el acta de entrega en PDF de una Distribution: el
// documento que firma el docente receptor al retirar la dotación del depósito.
type ActaUseCase struct {
	distRepo  repository.DistributionRepository
	itemRepo  repository.ItemRepository
	classRepo repository.ClassRepository
	termRepo  repository.TermRepository
	userRepo  repository.UserRepository
	generator ActaPDFGenerator
}

// NewActaUseCase construye el caso de uso.
func NewActaUseCase(
	distRepo repository.DistributionRepository,
	itemRepo repository.ItemRepository,
	classRepo repository.ClassRepository,
	termRepo repository.TermRepository,
	userRepo repository.UserRepository,
	generator ActaPDFGenerator,
) *ActaUseCase {
	return &ActaUseCase{
		distRepo:  distRepo,
		itemRepo:  itemRepo,
		classRepo: classRepo,
		termRepo:  termRepo,
		userRepo:  userRepo,
		generator: generator,
	}
}

// Generate resuelve la entrega y sus referencias y devuelve los bytes del PDF.
func (uc *ActaUseCase) Generate(ctx context.Context, distributionID string) ([]byte, error) {
	d, err := uc.distRepo.GetByID(distributionID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	item, err := uc.itemRepo.GetByID(d.ItemID)
	if err != nil {
		return nil, err
	}
	class, err := uc.classRepo.GetByID(d.ClassID)
	if err != nil {
		return nil, err
	}
	term, err := uc.termRepo.GetByID(d.TermID)
	if err != nil {
		return nil, err
	}
	teacher, err := uc.userRepo.GetByID(d.TeacherID)
	if err != nil {
		return nil, err
	}
	if item == nil || class == nil || term == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateActaPDF(ctx, ActaData{
		Distribution: d,
		Item:         item,
		Class:        class,
		Term:         term,
		Teacher:      teacher,
		GeneratedAt:  time.Now(),
	})
}
