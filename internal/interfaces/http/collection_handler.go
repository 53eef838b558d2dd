package http

import (
	"github.com/gofiber/fiber/v2"

	appcoll "github.com/jhoicas/Dotacion-api/internal/application/collection"
	"github.com/jhoicas/Dotacion-api/internal/application/dto"
)

// CollectionHandler maneja retiros de estudiantes y la conciliación
// entregado/retirado (protegido).
type CollectionHandler struct {
	uc *appcoll.UseCase
}

// NewCollectionHandler construye el handler.
func NewCollectionHandler(uc *appcoll.UseCase) *CollectionHandler {
	return &CollectionHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar retiro de estudiante
// @Description  Upsert único por estudiante+periodo+ítem; reenviar sobrescribe.
// @Tags         collections
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordCollectionRequest  true  "student_id, class_id, term_id, item_id, quantity, received"
// @Success      200   {object}  dto.CollectionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/collections [put]
func (h *CollectionHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordCollectionRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.RecordCollection(GetUserID(c), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Conciliación entregado vs. retirado por ítem
// @Description  Suma entregas activas a cursos contra retiros confirmados de
//
//	estudiantes. Un ítem presente en un solo lado aparece con el otro en cero.
//
// @Tags         collections
// @Security     Bearer
// @Produce      json
// @Param        item_id     query  string  false  "Filtrar por ítem"
// @Param        class_id    query  string  false  "Filtrar por curso"
// @Param        term_id     query  string  false  "Filtrar por periodo"
// @Param        teacher_id  query  string  false  "Filtrar por docente"
// @Success      200  {array}   dto.DistributionSummaryRow
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/collections/summary [get]
func (h *CollectionHandler) Summary(c *fiber.Ctx) error {
	in := dto.SummaryFilterRequest{
		ItemID:    c.Query("item_id"),
		ClassID:   c.Query("class_id"),
		TermID:    c.Query("term_id"),
		TeacherID: c.Query("teacher_id"),
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	out, err := h.uc.GetDistributionSummary(in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}
