package sqlite

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

var _ repository.InventoryReadRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryReadRepository sobre el
// Store SQLite. Solo lectura: los errores del Store se devuelven envueltos
// pero sin transformar, y nunca se cachean filas entre llamadas.
type InventoryRepo struct {
	store *Store
}

// NewInventoryRepository construye el adaptador de lectura.
func NewInventoryRepository(store *Store) *InventoryRepo {
	return &InventoryRepo{store: store}
}

// ListInventory lista líneas con sus nombres resueltos, ordenadas por SKU.
// El filtro por ubicación es opcional; una ubicación inexistente produce
// una lista vacía. El valor se deriva en la consulta (qty × cost_per_unit)
// y el resultado se acota a limit filas (truncado silencioso).
func (r *InventoryRepo) ListInventory(ctx context.Context, locationID *int64, limit int) ([]repository.InventoryRowResult, error) {
	query := `
	SELECT
	    inv.id,
	    it.sku,
	    it.name                                AS item,
	    COALESCE(c.name, '')                   AS category,
	    l.name                                 AS location,
	    COALESCE(inv.qty, 0)                   AS qty,
	    COALESCE(inv.cost_per_unit, 0)         AS cost_per_unit,
	    COALESCE(inv.qty, 0) * COALESCE(inv.cost_per_unit, 0) AS value
	FROM inventory inv
	JOIN items it        ON it.id = inv.item_id
	LEFT JOIN categories c ON c.id = it.category_id
	JOIN locations l     ON l.id = inv.location_id`

	args := []any{}
	if locationID != nil {
		query += `
	WHERE l.id = ?`
		args = append(args, *locationID)
	}
	query += `
	ORDER BY it.sku
	LIMIT ?`
	args = append(args, limit)

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	list := []repository.InventoryRowResult{}
	for rows.Next() {
		var row repository.InventoryRowResult
		if err := rows.Scan(
			&row.ID, &row.SKU, &row.Item, &row.Category, &row.Location,
			&row.Qty, &row.CostPerUnit, &row.Value,
		); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// TotalsByLocation agrupa cantidad y valor por ubicación, ordenado por
// nombre. El valor se redondea a 2 decimales en la consulta.
func (r *InventoryRepo) TotalsByLocation(ctx context.Context) ([]repository.LocationTotalResult, error) {
	const query = `
	SELECT
	    l.name                                      AS location,
	    SUM(inv.qty)                                AS total_qty,
	    ROUND(SUM(inv.qty * inv.cost_per_unit), 2)  AS total_value
	FROM inventory inv
	JOIN locations l ON l.id = inv.location_id
	GROUP BY l.id
	ORDER BY l.name`

	rows, err := r.store.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("totals by location: %w", err)
	}
	defer rows.Close()

	list := []repository.LocationTotalResult{}
	for rows.Next() {
		var row repository.LocationTotalResult
		if err := rows.Scan(&row.Location, &row.TotalQty, &row.TotalValue); err != nil {
			return nil, fmt.Errorf("scan location total: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// LowStock lista líneas con qty < threshold, ascendente por qty.
func (r *InventoryRepo) LowStock(ctx context.Context, threshold int64, limit int) ([]repository.LowStockResult, error) {
	const query = `
	SELECT it.sku, it.name, l.name AS location, inv.qty
	FROM inventory inv
	JOIN items it     ON it.id = inv.item_id
	JOIN locations l  ON l.id = inv.location_id
	WHERE inv.qty < ?
	ORDER BY inv.qty ASC
	LIMIT ?`

	rows, err := r.store.db.QueryContext(ctx, query, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()

	list := []repository.LowStockResult{}
	for rows.Next() {
		var row repository.LowStockResult
		if err := rows.Scan(&row.SKU, &row.Name, &row.Location, &row.Qty); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// TopItems lista los ítems con mayor valor total sumado sobre todas las
// ubicaciones (los duplicados por par ítem-ubicación también se suman),
// redondeado a 2 decimales, descendente.
func (r *InventoryRepo) TopItems(ctx context.Context, limit int) ([]repository.TopItemResult, error) {
	const query = `
	SELECT
	    it.sku,
	    it.name,
	    ROUND(SUM(inv.qty * inv.cost_per_unit), 2) AS value
	FROM inventory inv
	JOIN items it ON it.id = inv.item_id
	GROUP BY it.id
	ORDER BY value DESC
	LIMIT ?`

	rows, err := r.store.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top items: %w", err)
	}
	defer rows.Close()

	list := []repository.TopItemResult{}
	for rows.Next() {
		var row repository.TopItemResult
		if err := rows.Scan(&row.SKU, &row.Name, &row.Value); err != nil {
			return nil, fmt.Errorf("scan top item: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ListLocations lista las ubicaciones ordenadas por nombre ascendente.
func (r *InventoryRepo) ListLocations(ctx context.Context) ([]entity.Location, error) {
	rows, err := r.store.db.QueryContext(ctx, `SELECT id, name FROM locations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	list := []entity.Location{}
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// ListCategories lista todas las categorías.
func (r *InventoryRepo) ListCategories(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.store.db.QueryContext(ctx, `SELECT id, name, parent_id FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	list := []entity.Category{}
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentID); err != nil {
			return nil, fmt.Errorf("scan categoría: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CountItems devuelve el total de ítems del catálogo.
func (r *InventoryRepo) CountItems(ctx context.Context) (int64, error) {
	var count int64
	if err := r.store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}

// ListItems lista el catálogo completo ordenado por SKU.
func (r *InventoryRepo) ListItems(ctx context.Context) ([]entity.Item, error) {
	rows, err := r.store.db.QueryContext(ctx,
		`SELECT id, sku, name, COALESCE(category_id, 0) FROM items ORDER BY sku`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	list := []entity.Item{}
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.SKU, &it.Name, &it.CategoryID); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
