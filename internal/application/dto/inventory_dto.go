package dto

import "github.com/shopspring/decimal"

// InventoryRowDTO fila canónica del listado de inventario. Todas las
// variantes de la interfaz (escritorio, web, export) consumen esta misma
// forma; las fuentes heterogéneas se normalizan una sola vez al entrar
// (ver apiclient), no en el renderizado.
type InventoryRowDTO struct {
	ID          int64           `json:"id"`
	SKU         string          `json:"sku"`
	Item        string          `json:"item"`
	Category    string          `json:"category"`
	Location    string          `json:"location"`
	Qty         int64           `json:"qty"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	Value       decimal.Decimal `json:"value"` // siempre qty × cost_per_unit
}

// LocationDTO ubicación para el selector de filtros.
type LocationDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryDTO categoría del catálogo.
type CategoryDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id"`
}

// ItemCountDTO respuesta del contador de ítems del catálogo.
type ItemCountDTO struct {
	Count int64 `json:"count"`
}

// FiltersDTO respuesta del contrato original de filtros del escritorio.
type FiltersDTO struct {
	Locations []LocationDTO `json:"locations"`
}

// LocationTotalDTO agregado de cantidad y valor por ubicación.
type LocationTotalDTO struct {
	Location   string          `json:"location"`
	TotalQty   int64           `json:"total_qty"`
	TotalValue decimal.Decimal `json:"total_value"` // 2 decimales
}

// LowStockDTO línea con existencias bajas (qty < 10).
type LowStockDTO struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Qty      int64  `json:"qty"`
}

// TopItemDTO ítem con mayor valor total acumulado.
type TopItemDTO struct {
	SKU   string          `json:"sku"`
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"` // 2 decimales
}

// SummaryDTO agregados del panel: totales por ubicación, existencias bajas
// y top de ítems por valor, más los contadores que muestran los chips de la
// interfaz. Sobre un Store vacío las listas son vacías, nunca nulas.
type SummaryDTO struct {
	TotalsByLocation []LocationTotalDTO `json:"totalsByLocation"`
	LowStock         []LowStockDTO      `json:"lowStock"`
	TopItems         []TopItemDTO       `json:"topItems"`
	LocationsCount   int64              `json:"locationsCount"`
	ItemsCount       int64              `json:"itemsCount"`
}

// EmptySummary devuelve un resumen vacío bien formado (listas no nulas),
// usado también como forma por defecto en la degradación del cliente web.
func EmptySummary() *SummaryDTO {
	return &SummaryDTO{
		TotalsByLocation: []LocationTotalDTO{},
		LowStock:         []LowStockDTO{},
		TopItems:         []TopItemDTO{},
	}
}
