package http

import (
	"github.com/gofiber/fiber/v2"

	appent "github.com/jhoicas/Dotacion-api/internal/application/entitlement"
	"github.com/jhoicas/Dotacion-api/internal/application/dto"
)

// EntitlementHandler maneja los cupos planificados por curso/ítem/periodo (protegido).
type EntitlementHandler struct {
	uc *appent.UseCase
}

// NewEntitlementHandler construye el handler.
func NewEntitlementHandler(uc *appent.UseCase) *EntitlementHandler {
	return &EntitlementHandler{uc: uc}
}

// Upsert godoc
// @Summary      Definir cupo planificado
// @Description  Upsert único por curso+ítem+periodo. Cantidad cero anula el cupo.
// @Tags         entitlements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertEntitlementRequest  true  "class_id, item_id, term_id, quantity"
// @Success      200   {object}  dto.EntitlementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/entitlements [put]
func (h *EntitlementHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertEntitlementRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Upsert(in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// BulkUpsert godoc
// @Summary      Carga masiva de cupos
// @Tags         entitlements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkUpsertEntitlementRequest  true  "Lista de cupos"
// @Success      200   {array}   dto.EntitlementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/entitlements/bulk [post]
func (h *EntitlementHandler) BulkUpsert(c *fiber.Ctx) error {
	var in dto.BulkUpsertEntitlementRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.BulkUpsert(in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar cupos planificados
// @Tags         entitlements
// @Security     Bearer
// @Produce      json
// @Param        class_id  query  string  false  "Filtrar por curso"
// @Param        term_id   query  string  false  "Filtrar por periodo"
// @Success      200  {array}  dto.EntitlementResponse
// @Router       /api/entitlements [get]
func (h *EntitlementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("class_id"), c.Query("term_id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}
