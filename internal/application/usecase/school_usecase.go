package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Dotacion-api/internal/application/dto"
	"github.com/jhoicas/Dotacion-api/internal/domain"
	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
	"github.com/jhoicas/Dotacion-api/internal/domain/repository"
)

// SchoolUseCase casos de uso CRUD para cursos, estudiantes y periodos.
type SchoolUseCase struct {
	classRepo   repository.ClassRepository
	studentRepo repository.StudentRepository
	termRepo    repository.TermRepository
}

// NewSchoolUseCase construye el caso de uso.
func NewSchoolUseCase(
	classRepo repository.ClassRepository,
	studentRepo repository.StudentRepository,
	termRepo repository.TermRepository,
) *SchoolUseCase {
	return &SchoolUseCase{classRepo: classRepo, studentRepo: studentRepo, termRepo: termRepo}
}

// ── Cursos ────────────────────────────────────────────────────────────────────

// CreateClass crea un curso.
func (uc *SchoolUseCase) CreateClass(in dto.CreateClassRequest) (*dto.ClassResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.SchoolClass{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Level:     in.Level,
		TeacherID: in.TeacherID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.classRepo.Create(c); err != nil {
		return nil, err
	}
	return toClassResponse(c), nil
}

// GetClass obtiene un curso por ID.
func (uc *SchoolUseCase) GetClass(id string) (*dto.ClassResponse, error) {
	c, err := uc.classRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toClassResponse(c), nil
}

// UpdateClass edita un curso.
func (uc *SchoolUseCase) UpdateClass(id string, in dto.UpdateClassRequest) (*dto.ClassResponse, error) {
	c, err := uc.classRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Level != nil {
		c.Level = *in.Level
	}
	if in.TeacherID != nil {
		c.TeacherID = *in.TeacherID
	}
	c.UpdatedAt = time.Now()
	if err := uc.classRepo.Update(c); err != nil {
		return nil, err
	}
	return toClassResponse(c), nil
}

// ListClasses lista cursos con paginación.
func (uc *SchoolUseCase) ListClasses(limit, offset int) ([]dto.ClassResponse, error) {
	list, err := uc.classRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClassResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClassResponse(c))
	}
	return out, nil
}

// ── Estudiantes ───────────────────────────────────────────────────────────────

// CreateStudent crea un estudiante en un curso existente.
func (uc *SchoolUseCase) CreateStudent(in dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	if in.FirstName == "" || in.LastName == "" || in.ClassID == "" {
		return nil, domain.ErrInvalidInput
	}
	class, err := uc.classRepo.GetByID(in.ClassID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	s := &entity.Student{
		ID:        uuid.New().String(),
		ClassID:   in.ClassID,
		Code:      in.Code,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.studentRepo.Create(s); err != nil {
		return nil, err
	}
	return toStudentResponse(s), nil
}

// GetStudent obtiene un estudiante por ID.
func (uc *SchoolUseCase) GetStudent(id string) (*dto.StudentResponse, error) {
	s, err := uc.studentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toStudentResponse(s), nil
}

// UpdateStudent edita un estudiante (incluye traslado de curso).
func (uc *SchoolUseCase) UpdateStudent(id string, in dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	s, err := uc.studentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.ClassID != nil {
		class, err := uc.classRepo.GetByID(*in.ClassID)
		if err != nil {
			return nil, err
		}
		if class == nil {
			return nil, domain.ErrNotFound
		}
		s.ClassID = *in.ClassID
	}
	if in.Code != nil {
		s.Code = *in.Code
	}
	if in.FirstName != nil {
		s.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		s.LastName = *in.LastName
	}
	s.UpdatedAt = time.Now()
	if err := uc.studentRepo.Update(s); err != nil {
		return nil, err
	}
	return toStudentResponse(s), nil
}

// ListStudents lista los estudiantes de un curso.
func (uc *SchoolUseCase) ListStudents(classID string, limit, offset int) ([]dto.StudentResponse, error) {
	list, err := uc.studentRepo.ListByClass(classID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StudentResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toStudentResponse(s))
	}
	return out, nil
}

// ── Periodos ──────────────────────────────────────────────────────────────────

// CreateTerm crea un periodo académico.
func (uc *SchoolUseCase) CreateTerm(in dto.CreateTermRequest) (*dto.TermResponse, error) {
	if in.Name == "" || !in.EndDate.After(in.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	t := &entity.Term{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Year:      in.Year,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.termRepo.Create(t); err != nil {
		return nil, err
	}
	return toTermResponse(t), nil
}

// GetTerm obtiene un periodo por ID.
func (uc *SchoolUseCase) GetTerm(id string) (*dto.TermResponse, error) {
	t, err := uc.termRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return toTermResponse(t), nil
}

// ListTerms lista periodos con paginación.
func (uc *SchoolUseCase) ListTerms(limit, offset int) ([]dto.TermResponse, error) {
	list, err := uc.termRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TermResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toTermResponse(t))
	}
	return out, nil
}

func toClassResponse(c *entity.SchoolClass) *dto.ClassResponse {
	return &dto.ClassResponse{ID: c.ID, Name: c.Name, Level: c.Level, TeacherID: c.TeacherID}
}

func toStudentResponse(s *entity.Student) *dto.StudentResponse {
	return &dto.StudentResponse{ID: s.ID, ClassID: s.ClassID, Code: s.Code, FirstName: s.FirstName, LastName: s.LastName}
}

func toTermResponse(t *entity.Term) *dto.TermResponse {
	return &dto.TermResponse{ID: t.ID, Name: t.Name, Year: t.Year, StartDate: t.StartDate, EndDate: t.EndDate}
}
