package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Dotacion-api/internal/application/dto"
	"github.com/jhoicas/Dotacion-api/internal/application/stock"
)

// StockHandler maneja resúmenes de stock y asientos directos del libro (protegido).
type StockHandler struct {
	uc *stock.SummaryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.SummaryUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen de stock de un ítem
// @Description  Stock actual derivado del libro de asientos (solo completed).
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ítem"
// @Success      200  {object}  dto.StockSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/items/{id}/summary [get]
func (h *StockHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// GetBulkSummaries godoc
// @Summary      Resúmenes de stock en lote
// @Description  Lista de item_ids o vacía para todo el catálogo. Ids inexistentes se omiten.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkSummaryRequest  true  "item_ids (opcional)"
// @Success      200   {array}   dto.StockSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/summaries [post]
func (h *StockHandler) GetBulkSummaries(c *fiber.Ctx) error {
	var in dto.BulkSummaryRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.GetBulkSummaries(in.ItemIDs)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// GetLowStock godoc
// @Summary      Ítems en o bajo su umbral de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockSummaryResponse
// @Router       /api/stock/low [get]
func (h *StockHandler) GetLowStock(c *fiber.Ctx) error {
	out, err := h.uc.GetLowStockItems()
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// RegisterEntry godoc
// @Summary      Registrar asiento directo del libro
// @Description  Compra o devolución (entrada) o venta (salida). Las entregas a curso no pasan por aquí.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterEntryRequest  true  "item_id, kind, quantity, unit_cost (opcional)"
// @Success      201   {object}  dto.LedgerEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/entries [post]
func (h *StockHandler) RegisterEntry(c *fiber.Ctx) error {
	var in dto.RegisterEntryRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.RegisterEntry(GetUserID(c), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListEntries godoc
// @Summary      Historial de asientos de un ítem
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del ítem"
// @Param        from    query  string  false  "Fecha inicial (RFC3339)"
// @Param        to      query  string  false  "Fecha final (RFC3339)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {array}   dto.LedgerEntryResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/stock/items/{id}/entries [get]
func (h *StockHandler) ListEntries(c *fiber.Ctx) error {
	from, ok := dateParam(c, "from")
	if !ok {
		return nil
	}
	to, ok := dateParam(c, "to")
	if !ok {
		return nil
	}
	limit, offset := pageParams(c)
	out, err := h.uc.ListEntries(c.Params("id"), from, to, limit, offset)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// dateParam parsea un query param de fecha RFC3339 opcional. Devuelve una
// respuesta 400 ya escrita (y false) si el formato es inválido.
func dateParam(c *fiber.Ctx, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetro '" + name + "' debe ser RFC3339"})
		return nil, false
	}
	return &t, true
}
