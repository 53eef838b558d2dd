package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
	"github.com/jhoicas/Dotacion-api/internal/domain/repository"
)

var (
	_ repository.ClassRepository   = (*ClassRepo)(nil)
	_ repository.StudentRepository = (*StudentRepo)(nil)
	_ repository.TermRepository    = (*TermRepo)(nil)
)

// ── Cursos ──────────────────────────────────────────────────────────────

// ClassRepo implementación de ClassRepository sobre PostgreSQL.
type ClassRepo struct {
	q Querier
}

func NewClassRepository(q Querier) *ClassRepo {
	return &ClassRepo{q: q}
}

func (r *ClassRepo) Create(c *entity.SchoolClass) error {
	query := `
		INSERT INTO school_classes (id, name, level, teacher_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	teacherID := (*string)(nil)
	if c.TeacherID != "" {
		teacherID = &c.TeacherID
	}
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Level, teacherID, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert class: %w", err)
	}
	return nil
}

func (r *ClassRepo) GetByID(id string) (*entity.SchoolClass, error) {
	query := `
		SELECT id, name, level, teacher_id, created_at, updated_at
		FROM school_classes WHERE id = $1`
	var c entity.SchoolClass
	var teacherID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Level, &teacherID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get class: %w", err)
	}
	if teacherID != nil {
		c.TeacherID = *teacherID
	}
	return &c, nil
}

func (r *ClassRepo) Update(c *entity.SchoolClass) error {
	query := `
		UPDATE school_classes
		SET name = $2, level = $3, teacher_id = $4, updated_at = $5
		WHERE id = $1`
	teacherID := (*string)(nil)
	if c.TeacherID != "" {
		teacherID = &c.TeacherID
	}
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Level, teacherID, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update class: %w", err)
	}
	return nil
}

func (r *ClassRepo) List(limit, offset int) ([]*entity.SchoolClass, error) {
	query := `
		SELECT id, name, level, teacher_id, created_at, updated_at
		FROM school_classes ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	var list []*entity.SchoolClass
	for rows.Next() {
		var c entity.SchoolClass
		var teacherID *string
		if err := rows.Scan(&c.ID, &c.Name, &c.Level, &teacherID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		if teacherID != nil {
			c.TeacherID = *teacherID
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *ClassRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM school_classes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	return nil
}

// ── Estudiantes ─────────────────────────────────────────────────────────

// StudentRepo implementación de StudentRepository sobre PostgreSQL.
type StudentRepo struct {
	q Querier
}

func NewStudentRepository(q Querier) *StudentRepo {
	return &StudentRepo{q: q}
}

func (r *StudentRepo) Create(s *entity.Student) error {
	query := `
		INSERT INTO students (id, class_id, code, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ClassID, s.Code, s.FirstName, s.LastName, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert student: %w", err)
	}
	return nil
}

func (r *StudentRepo) GetByID(id string) (*entity.Student, error) {
	query := `
		SELECT id, class_id, code, first_name, last_name, created_at, updated_at
		FROM students WHERE id = $1`
	var s entity.Student
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ClassID, &s.Code, &s.FirstName, &s.LastName, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get student: %w", err)
	}
	return &s, nil
}

func (r *StudentRepo) Update(s *entity.Student) error {
	query := `
		UPDATE students
		SET class_id = $2, code = $3, first_name = $4, last_name = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ClassID, s.Code, s.FirstName, s.LastName, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	return nil
}

func (r *StudentRepo) ListByClass(classID string, limit, offset int) ([]*entity.Student, error) {
	query := `
		SELECT id, class_id, code, first_name, last_name, created_at, updated_at
		FROM students WHERE class_id = $1
		ORDER BY last_name, first_name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, classID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var list []*entity.Student
	for rows.Next() {
		var s entity.Student
		if err := rows.Scan(&s.ID, &s.ClassID, &s.Code, &s.FirstName, &s.LastName, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *StudentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}

// ── Periodos académicos ─────────────────────────────────────────────────

// TermRepo implementación de TermRepository sobre PostgreSQL.
type TermRepo struct {
	q Querier
}

func NewTermRepository(q Querier) *TermRepo {
	return &TermRepo{q: q}
}

func (r *TermRepo) Create(t *entity.Term) error {
	query := `
		INSERT INTO terms (id, name, year, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Name, t.Year, t.StartDate, t.EndDate, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert term: %w", err)
	}
	return nil
}

func (r *TermRepo) GetByID(id string) (*entity.Term, error) {
	query := `
		SELECT id, name, year, start_date, end_date, created_at, updated_at
		FROM terms WHERE id = $1`
	var t entity.Term
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Name, &t.Year, &t.StartDate, &t.EndDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get term: %w", err)
	}
	return &t, nil
}

func (r *TermRepo) Update(t *entity.Term) error {
	query := `
		UPDATE terms
		SET name = $2, year = $3, start_date = $4, end_date = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Name, t.Year, t.StartDate, t.EndDate, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update term: %w", err)
	}
	return nil
}

func (r *TermRepo) List(limit, offset int) ([]*entity.Term, error) {
	query := `
		SELECT id, name, year, start_date, end_date, created_at, updated_at
		FROM terms ORDER BY start_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	defer rows.Close()

	var list []*entity.Term
	for rows.Next() {
		var t entity.Term
		if err := rows.Scan(&t.ID, &t.Name, &t.Year, &t.StartDate, &t.EndDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan term: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
