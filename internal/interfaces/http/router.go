package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-stock/internal/application/usecase"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *usecase.InventoryUseCase
	Log         *logger.Logger
}

// Router registra las rutas de la API. Toda la superficie es de solo
// lectura y sin autenticación; cada petición es independiente y sin estado.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		app.Use(RequestLogger(deps.Log))
	}

	h := NewInventoryHandler(deps.InventoryUC)

	app.Get("/locations", h.Locations)
	app.Get("/categories", h.Categories)
	app.Get("/items", h.Items)
	app.Get("/item_count", h.ItemCount)
	app.Get("/filters", h.Filters)
	app.Get("/inventory", h.List)
	app.Get("/summary", h.Summary)
	// Alias que el cliente web consulta si /summary no responde.
	app.Get("/reports/summary", h.Summary)
}
