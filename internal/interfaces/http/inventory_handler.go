package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/application/usecase"
)

// InventoryHandler maneja la superficie HTTP de solo lectura de la variante web.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar inventario
// @Tags         inventory
// @Produce      json
// @Param        location_id  query  int  false  "Filtrar por ubicación (alias obsoleto: locationId)"
// @Success      200  {array}   dto.InventoryRowDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	locationID := parseLocationID(c)
	rows, err := h.uc.ListInventory(c.Context(), locationID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// Summary godoc
// @Summary      Agregados del panel
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.SummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Locations godoc
// @Summary      Listar ubicaciones
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   dto.LocationDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /locations [get]
func (h *InventoryHandler) Locations(c *fiber.Ctx) error {
	out, err := h.uc.ListLocations(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Filters godoc
// @Summary      Filtros del catálogo (contrato original del escritorio)
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.FiltersDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /filters [get]
func (h *InventoryHandler) Filters(c *fiber.Ctx) error {
	locations, err := h.uc.ListLocations(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FiltersDTO{Locations: locations})
}

// Categories godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   dto.CategoryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /categories [get]
func (h *InventoryHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Items godoc
// @Summary      Catálogo como filas degradadas (qty/cost/value en cero)
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   dto.InventoryRowDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /items [get]
func (h *InventoryHandler) Items(c *fiber.Ctx) error {
	out, err := h.uc.ListItemsDegraded(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ItemCount godoc
// @Summary      Contador de ítems del catálogo
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.ItemCountDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /item_count [get]
func (h *InventoryHandler) ItemCount(c *fiber.Ctx) error {
	count, err := h.uc.CountItems(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ItemCountDTO{Count: count})
}

// parseLocationID lee el filtro de ubicación. El nombre canónico del
// parámetro es location_id; locationId se mantiene como alias obsoleto.
// Un valor malformado se trata como ausente, nunca como error.
func parseLocationID(c *fiber.Ctx) *int64 {
	raw := c.Query("location_id")
	if raw == "" {
		raw = c.Query("locationId")
	}
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
