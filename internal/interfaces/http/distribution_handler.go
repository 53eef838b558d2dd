package http

import (
	"github.com/gofiber/fiber/v2"

	appdist "github.com/jhoicas/Dotacion-api/internal/application/distribution"
	"github.com/jhoicas/Dotacion-api/internal/application/dto"
	"github.com/jhoicas/Dotacion-api/internal/domain/repository"
)

// DistributionHandler maneja las entregas de dotación a cursos (protegido).
type DistributionHandler struct {
	uc     *appdist.UseCase
	actaUC *appdist.ActaUseCase
}

// NewDistributionHandler construye el handler.
func NewDistributionHandler(uc *appdist.UseCase, actaUC *appdist.ActaUseCase) *DistributionHandler {
	return &DistributionHandler{uc: uc, actaUC: actaUC}
}

// Create godoc
// @Summary      Registrar entrega a curso
// @Description  Descuenta stock escribiendo el asiento pareado en el libro, en una sola transacción.
// @Tags         distributions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDistributionRequest  true  "class_id, item_id, term_id, quantity, teacher_id"
// @Success      201   {object}  dto.DistributionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/distributions [post]
func (h *DistributionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDistributionRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Distribute(c.Context(), GetUserID(c), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener entrega por ID
// @Tags         distributions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrega"
// @Success      200  {object}  dto.DistributionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distributions/{id} [get]
func (h *DistributionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar entregas
// @Tags         distributions
// @Security     Bearer
// @Produce      json
// @Param        item_id     query  string  false  "Filtrar por ítem"
// @Param        class_id    query  string  false  "Filtrar por curso"
// @Param        term_id     query  string  false  "Filtrar por periodo"
// @Param        teacher_id  query  string  false  "Filtrar por docente receptor"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.DistributionListResponse
// @Router       /api/distributions [get]
func (h *DistributionHandler) List(c *fiber.Ctx) error {
	filter := repository.DistributionFilter{
		ItemID:    c.Query("item_id"),
		ClassID:   c.Query("class_id"),
		TermID:    c.Query("term_id"),
		TeacherID: c.Query("teacher_id"),
	}
	limit, offset := pageParams(c)
	items, err := h.uc.List(filter, limit, offset)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(dto.DistributionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	})
}

// Update godoc
// @Summary      Editar entrega
// @Description  La nueva cantidad se propaga al asiento pareado del libro en la misma transacción.
// @Tags         distributions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la entrega"
// @Param        body  body  dto.UpdateDistributionRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DistributionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/distributions/{id} [put]
func (h *DistributionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDistributionRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateDistribution(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Anular entrega
// @Description  Marca la entrega y su asiento pareado como cancelados; el stock descontado se restaura.
// @Tags         distributions
// @Security     Bearer
// @Param        id   path  string  true  "ID de la entrega"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/distributions/{id}/cancel [post]
func (h *DistributionHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.CancelDistribution(c.Context(), c.Params("id")); err != nil {
		return handleDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Acta godoc
// @Summary      Acta de entrega en PDF
// @Tags         distributions
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la entrega"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distributions/{id}/acta [get]
func (h *DistributionHandler) Acta(c *fiber.Ctx) error {
	pdfBytes, err := h.actaUC.Generate(c.Context(), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="acta-entrega.pdf"`)
	return c.Send(pdfBytes)
}
