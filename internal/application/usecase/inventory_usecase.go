package usecase

import (
	"context"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

// Límites fijos de la capa de consulta: acotan el tamaño de las respuestas
// independientemente del tamaño del inventario.
const (
	maxInventoryRows  = 500 // truncado silencioso del listado
	lowStockThreshold = 10
	lowStockLimit     = 25
	topItemsLimit     = 10
)

// InventoryUseCase capa de consulta de solo lectura sobre el Store,
// con la forma que consumen las dos interfaces (escritorio y web).
type InventoryUseCase struct {
	repo repository.InventoryReadRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryReadRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// ListInventory lista filas de inventario ordenadas por SKU, opcionalmente
// filtradas por ubicación. El resultado se trunca a 500 filas sin señalar
// error; un filtro con ubicación inexistente devuelve una lista vacía.
func (uc *InventoryUseCase) ListInventory(ctx context.Context, locationID *int64) ([]dto.InventoryRowDTO, error) {
	rows, err := uc.repo.ListInventory(ctx, locationID, maxInventoryRows)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.InventoryRowDTO{
			ID:          r.ID,
			SKU:         r.SKU,
			Item:        r.Item,
			Category:    r.Category,
			Location:    r.Location,
			Qty:         r.Qty,
			CostPerUnit: r.CostPerUnit,
			Value:       r.Value,
		})
	}
	return out, nil
}

// Summary calcula los agregados del panel. Sobre un Store vacío devuelve
// listas vacías, no un error.
func (uc *InventoryUseCase) Summary(ctx context.Context) (*dto.SummaryDTO, error) {
	totals, err := uc.repo.TotalsByLocation(ctx)
	if err != nil {
		return nil, err
	}
	low, err := uc.repo.LowStock(ctx, lowStockThreshold, lowStockLimit)
	if err != nil {
		return nil, err
	}
	top, err := uc.repo.TopItems(ctx, topItemsLimit)
	if err != nil {
		return nil, err
	}
	locations, err := uc.repo.ListLocations(ctx)
	if err != nil {
		return nil, err
	}
	itemsCount, err := uc.repo.CountItems(ctx)
	if err != nil {
		return nil, err
	}

	summary := dto.EmptySummary()
	for _, t := range totals {
		summary.TotalsByLocation = append(summary.TotalsByLocation, dto.LocationTotalDTO{
			Location:   t.Location,
			TotalQty:   t.TotalQty,
			TotalValue: t.TotalValue,
		})
	}
	for _, l := range low {
		summary.LowStock = append(summary.LowStock, dto.LowStockDTO{
			SKU:      l.SKU,
			Name:     l.Name,
			Location: l.Location,
			Qty:      l.Qty,
		})
	}
	for _, t := range top {
		summary.TopItems = append(summary.TopItems, dto.TopItemDTO{
			SKU:   t.SKU,
			Name:  t.Name,
			Value: t.Value,
		})
	}
	summary.LocationsCount = int64(len(locations))
	summary.ItemsCount = itemsCount
	return summary, nil
}

// ListLocations lista las ubicaciones ordenadas por nombre.
func (uc *InventoryUseCase) ListLocations(ctx context.Context) ([]dto.LocationDTO, error) {
	locations, err := uc.repo.ListLocations(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationDTO, 0, len(locations))
	for _, l := range locations {
		out = append(out, dto.LocationDTO{ID: l.ID, Name: l.Name})
	}
	return out, nil
}

// ListCategories lista todas las categorías del catálogo.
func (uc *InventoryUseCase) ListCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories, err := uc.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryDTO{ID: c.ID, Name: c.Name, ParentID: c.ParentID})
	}
	return out, nil
}

// CountItems devuelve el total de ítems del catálogo.
func (uc *InventoryUseCase) CountItems(ctx context.Context) (int64, error) {
	return uc.repo.CountItems(ctx)
}

// ListItemsDegraded lista el catálogo como filas de inventario degradadas:
// cantidad, costo y valor en cero. Es la fuente alternativa del cliente web
// cuando el listado principal no está disponible.
func (uc *InventoryUseCase) ListItemsDegraded(ctx context.Context) ([]dto.InventoryRowDTO, error) {
	items, err := uc.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryRowDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.InventoryRowDTO{
			ID:   it.ID,
			SKU:  it.SKU,
			Item: it.Name,
		})
	}
	return out, nil
}
