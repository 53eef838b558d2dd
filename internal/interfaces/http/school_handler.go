package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Dotacion-api/internal/application/dto"
	"github.com/jhoicas/Dotacion-api/internal/application/usecase"
)

// SchoolHandler maneja cursos, estudiantes y periodos académicos (protegido).
type SchoolHandler struct {
	uc *usecase.SchoolUseCase
}

// NewSchoolHandler construye el handler.
func NewSchoolHandler(uc *usecase.SchoolUseCase) *SchoolHandler {
	return &SchoolHandler{uc: uc}
}

// ── Cursos ──────────────────────────────────────────────────────────────

// CreateClass godoc
// @Summary      Crear curso
// @Tags         school
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClassRequest  true  "Datos del curso"
// @Success      201   {object}  dto.ClassResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/classes [post]
func (h *SchoolHandler) CreateClass(c *fiber.Ctx) error {
	var in dto.CreateClassRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.CreateClass(in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetClass godoc
// @Summary      Obtener curso por ID
// @Tags         school
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del curso"
// @Success      200  {object}  dto.ClassResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/classes/{id} [get]
func (h *SchoolHandler) GetClass(c *fiber.Ctx) error {
	out, err := h.uc.GetClass(c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "curso no encontrado"})
	}
	return c.JSON(out)
}

// UpdateClass godoc
// @Summary      Actualizar curso
// @Tags         school
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del curso"
// @Param        body  body  dto.UpdateClassRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ClassResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/classes/{id} [put]
func (h *SchoolHandler) UpdateClass(c *fiber.Ctx) error {
	var in dto.UpdateClassRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateClass(c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "curso no encontrado"})
	}
	return c.JSON(out)
}

// ListClasses godoc
// @Summary      Listar cursos
// @Tags         school
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.ClassResponse
// @Router       /api/classes [get]
func (h *SchoolHandler) ListClasses(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListClasses(limit, offset)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// ── Estudiantes ─────────────────────────────────────────────────────────

// CreateStudent godoc
// @Summary      Matricular estudiante
// @Tags         school
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStudentRequest  true  "class_id, first_name, last_name"
// @Success      201   {object}  dto.StudentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/students [post]
func (h *SchoolHandler) CreateStudent(c *fiber.Ctx) error {
	var in dto.CreateStudentRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.CreateStudent(in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetStudent godoc
// @Summary      Obtener estudiante por ID
// @Tags         school
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del estudiante"
// @Success      200  {object}  dto.StudentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/students/{id} [get]
func (h *SchoolHandler) GetStudent(c *fiber.Ctx) error {
	out, err := h.uc.GetStudent(c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estudiante no encontrado"})
	}
	return c.JSON(out)
}

// UpdateStudent godoc
// @Summary      Actualizar estudiante
// @Tags         school
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del estudiante"
// @Param        body  body  dto.UpdateStudentRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.StudentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/students/{id} [put]
func (h *SchoolHandler) UpdateStudent(c *fiber.Ctx) error {
	var in dto.UpdateStudentRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateStudent(c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estudiante no encontrado"})
	}
	return c.JSON(out)
}

// ListStudents godoc
// @Summary      Listar estudiantes de un curso
// @Tags         school
// @Security     Bearer
// @Produce      json
// @Param        class_id  query  string  true   "ID del curso"
// @Param        limit     query  int     false  "Límite"   default(20)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200  {array}   dto.StudentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/students [get]
func (h *SchoolHandler) ListStudents(c *fiber.Ctx) error {
	classID := c.Query("class_id")
	if classID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "class_id es requerido"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.ListStudents(classID, limit, offset)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// ── Periodos académicos ─────────────────────────────────────────────────

// CreateTerm godoc
// @Summary      Crear periodo académico
// @Tags         school
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTermRequest  true  "name, year, start_date, end_date"
// @Success      201   {object}  dto.TermResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/terms [post]
func (h *SchoolHandler) CreateTerm(c *fiber.Ctx) error {
	var in dto.CreateTermRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.CreateTerm(in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetTerm godoc
// @Summary      Obtener periodo por ID
// @Tags         school
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del periodo"
// @Success      200  {object}  dto.TermResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/terms/{id} [get]
func (h *SchoolHandler) GetTerm(c *fiber.Ctx) error {
	out, err := h.uc.GetTerm(c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "periodo no encontrado"})
	}
	return c.JSON(out)
}

// ListTerms godoc
// @Summary      Listar periodos académicos
// @Tags         school
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.TermResponse
// @Router       /api/terms [get]
func (h *SchoolHandler) ListTerms(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListTerms(limit, offset)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}
