package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-stock/internal/domain/entity"
)

// InventoryRowResult fila canónica del listado de inventario: la línea con
// los nombres de ítem, categoría y ubicación ya resueltos por el join.
// Value es siempre qty × cost_per_unit, calculado en la consulta.
type InventoryRowResult struct {
	ID          int64
	SKU         string
	Item        string
	Category    string // vacío si el ítem no tiene categoría
	Location    string
	Qty         int64
	CostPerUnit decimal.Decimal
	Value       decimal.Decimal
}

// LocationTotalResult agregado de cantidad y valor por ubicación.
type LocationTotalResult struct {
	Location   string
	TotalQty   int64
	TotalValue decimal.Decimal // redondeado a 2 decimales
}

// LowStockResult línea con existencias por debajo del umbral.
type LowStockResult struct {
	SKU      string
	Name     string
	Location string
	Qty      int64
}

// TopItemResult ítem con su valor total sumado sobre todas las ubicaciones.
type TopItemResult struct {
	SKU   string
	Name  string
	Value decimal.Decimal // redondeado a 2 decimales
}

// InventoryReadRepository define el puerto de lectura sobre el Store (DIP).
// Todas las operaciones son de solo lectura; los errores del Store se
// propagan sin transformar.
type InventoryReadRepository interface {
	// ListInventory lista filas de inventario ordenadas por SKU ascendente,
	// opcionalmente filtradas por ubicación y acotadas a limit filas.
	// Un locationID inexistente produce una lista vacía, no un error.
	ListInventory(ctx context.Context, locationID *int64, limit int) ([]InventoryRowResult, error)

	// TotalsByLocation agrupa cantidad y valor total por ubicación,
	// ordenado por nombre de ubicación.
	TotalsByLocation(ctx context.Context) ([]LocationTotalResult, error)

	// LowStock lista líneas con qty < threshold, ascendente por qty,
	// acotado a limit filas.
	LowStock(ctx context.Context, threshold int64, limit int) ([]LowStockResult, error)

	// TopItems lista los limit ítems con mayor valor total
	// (suma de qty × cost_per_unit sobre todas las ubicaciones), descendente.
	TopItems(ctx context.Context, limit int) ([]TopItemResult, error)

	// ListLocations lista las ubicaciones ordenadas por nombre ascendente.
	ListLocations(ctx context.Context) ([]entity.Location, error)

	// ListCategories lista todas las categorías.
	ListCategories(ctx context.Context) ([]entity.Category, error)

	// CountItems devuelve el total de ítems del catálogo.
	CountItems(ctx context.Context) (int64, error)

	// ListItems lista el catálogo completo ordenado por SKU (fuente
	// degradada para el cliente web cuando /inventory no está disponible).
	ListItems(ctx context.Context) ([]entity.Item, error)
}
