package sqlite_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

// emptyStore devuelve un Store con esquema creado pero sin filas.
func emptyStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store := openStore(t)
	require.NoError(t, store.Initialize(context.Background()))
	for _, table := range []string{"inventory", "items", "categories", "locations"} {
		_, err := store.DB().Exec(`DELETE FROM ` + table)
		require.NoError(t, err)
	}
	return store
}

// fixtureStore puebla un Store con datos controlados. Incluye una línea
// duplicada para el par (SKU-0002, Katampe): las agregaciones deben sumar,
// no asumir una sola fila por par.
func fixtureStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store := emptyStore(t)
	stmts := []string{
		`INSERT INTO locations(id, name) VALUES (1,'Katampe'), (2,'Niger'), (3,'Ekiti')`,
		`INSERT INTO categories(id, name, parent_id) VALUES (1,'Equipment',NULL), (2,'Drills',1)`,
		`INSERT INTO items(id, sku, name, category_id) VALUES
			(1,'SKU-0001','Widget',2),
			(2,'SKU-0002','Helmet',1),
			(3,'SKU-0003','Rig',2)`,
		`INSERT INTO inventory(id, item_id, location_id, qty, cost_per_unit) VALUES
			(1, 1, 1, 5, 120.5),
			(2, 2, 1, 3, 10.25),
			(3, 2, 1, 4, 10.25),
			(4, 3, 2, 50, 200),
			(5, 1, 3, 0, 120.5)`,
	}
	for _, s := range stmts {
		_, err := store.DB().Exec(s)
		require.NoError(t, err)
	}
	return store
}

// ──────────────────────────────────────────────────────────────────────────────
// ListInventory
// ──────────────────────────────────────────────────────────────────────────────

func TestListInventory_TodasLasUbicaciones(t *testing.T) {
	repo := sqlite.NewInventoryRepository(fixtureStore(t))
	rows, err := repo.ListInventory(context.Background(), nil, 500)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	// Orden por SKU ascendente y valor siempre derivado qty × cost_per_unit.
	for i, r := range rows {
		if i > 0 {
			assert.LessOrEqual(t, rows[i-1].SKU, r.SKU)
		}
		expected := r.CostPerUnit.Mul(decimal.NewFromInt(r.Qty))
		assert.True(t, r.Value.Equal(expected),
			"fila %s: value=%s, esperado %s", r.SKU, r.Value, expected)
	}
}

func TestListInventory_FiltroPorUbicacion(t *testing.T) {
	repo := sqlite.NewInventoryRepository(fixtureStore(t))
	katampe := int64(1)
	rows, err := repo.ListInventory(context.Background(), &katampe, 500)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.Equal(t, "Katampe", r.Location)
	}
}

// Un filtro con ubicación inexistente produce una lista vacía, no un error.
func TestListInventory_UbicacionInexistente(t *testing.T) {
	repo := sqlite.NewInventoryRepository(fixtureStore(t))
	unknown := int64(99)
	rows, err := repo.ListInventory(context.Background(), &unknown, 500)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

// El listado se trunca en silencio al límite indicado.
func TestListInventory_Truncado(t *testing.T) {
	repo := sqlite.NewInventoryRepository(fixtureStore(t))
	rows, err := repo.ListInventory(context.Background(), nil, 2)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestListInventory_ScenarioSembrado(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.Initialize(context.Background()))
	repo := sqlite.NewInventoryRepository(store)

	// 450 líneas sembradas: el listado completo queda acotado a 500.
	rows, err := repo.ListInventory(context.Background(), nil, 500)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(rows), 500)

	locations, err := repo.ListLocations(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 3)

	// Filtrar por Katampe devuelve solo filas de esa ubicación.
	var katampeID int64
	for _, l := range locations {
		if l.Name == "Katampe" {
			katampeID = l.ID
		}
	}
	require.NotZero(t, katampeID)

	filtered, err := repo.ListInventory(context.Background(), &katampeID, 500)
	require.NoError(t, err)
	require.NotEmpty(t, filtered)
	assert.LessOrEqual(t, len(filtered), 500)
	for i, r := range filtered {
		assert.Equal(t, "Katampe", r.Location)
		if i > 0 {
			assert.LessOrEqual(t, filtered[i-1].SKU, r.SKU)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregados
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalsByLocation_SumaYOrden(t *testing.T) {
	repo := sqlite.NewInventoryRepository(fixtureStore(t))
	totals, err := repo.TotalsByLocation(context.Background())
	require.NoError(t, err)
	require.Len(t, totals, 3)

	// Orden alfabético por nombre de ubicación.
	assert.Equal(t, "Ekiti", totals[0].Location)
	assert.Equal(t, "Katampe", totals[1].Location)
	assert.Equal(t, "Niger", totals[2].Location)

	// Katampe: 5×120.5 + 3×10.25 + 4×10.25 = 674.25 (duplicados sumados).
	assert.EqualValues(t, 12, totals[1].TotalQty)
	assert.True(t, totals[1].TotalValue.Equal(decimal.NewFromFloat(674.25)),
		"total Katampe = %s", totals[1].TotalValue)

	assert.EqualValues(t, 50, totals[2].TotalQty)
	assert.True(t, totals[2].TotalValue.Equal(decimal.NewFromInt(10000)))
}

func TestLowStock_UmbralOrdenYTope(t *testing.T) {
	repo := sqlite.NewInventoryRepository(fixtureStore(t))
	low, err := repo.LowStock(context.Background(), 10, 25)
	require.NoError(t, err)
	require.Len(t, low, 4)

	// Solo filas con qty < 10, ascendente por qty.
	for i, r := range low {
		assert.Less(t, r.Qty, int64(10))
		if i > 0 {
			assert.LessOrEqual(t, low[i-1].Qty, r.Qty)
		}
	}
	assert.EqualValues(t, 0, low[0].Qty)

	// El tope acota el resultado.
	capped, err := repo.LowStock(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}

func TestTopItems_ValorAgregadoDescendente(t *testing.T) {
	repo := sqlite.NewInventoryRepository(fixtureStore(t))
	top, err := repo.TopItems(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, top, 3)

	assert.Equal(t, "SKU-0003", top[0].SKU)
	assert.True(t, top[0].Value.Equal(decimal.NewFromInt(10000)))

	assert.Equal(t, "SKU-0001", top[1].SKU)
	assert.True(t, top[1].Value.Equal(decimal.NewFromFloat(602.5)))

	// SKU-0002 suma sus líneas duplicadas: 3×10.25 + 4×10.25 = 71.75.
	assert.Equal(t, "SKU-0002", top[2].SKU)
	assert.True(t, top[2].Value.Equal(decimal.NewFromFloat(71.75)),
		"valor SKU-0002 = %s", top[2].Value)
}

// Los agregados sobre un Store vacío devuelven listas vacías, no errores.
func TestAgregados_StoreVacio(t *testing.T) {
	repo := sqlite.NewInventoryRepository(emptyStore(t))
	ctx := context.Background()

	totals, err := repo.TotalsByLocation(ctx)
	require.NoError(t, err)
	assert.Empty(t, totals)

	low, err := repo.LowStock(ctx, 10, 25)
	require.NoError(t, err)
	assert.Empty(t, low)

	top, err := repo.TopItems(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, top)

	count, err := repo.CountItems(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestListLocations_OrdenPorNombre(t *testing.T) {
	repo := sqlite.NewInventoryRepository(fixtureStore(t))
	locations, err := repo.ListLocations(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 3)
	assert.Equal(t, "Ekiti", locations[0].Name)
	assert.Equal(t, "Katampe", locations[1].Name)
	assert.Equal(t, "Niger", locations[2].Name)
}

func TestListCategories(t *testing.T) {
	repo := sqlite.NewInventoryRepository(fixtureStore(t))
	categories, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)

	byName := map[string]*int64{}
	for _, c := range categories {
		byName[c.Name] = c.ParentID
	}
	assert.Nil(t, byName["Equipment"])
	require.NotNil(t, byName["Drills"])
	assert.EqualValues(t, 1, *byName["Drills"])
}

func TestCountItems(t *testing.T) {
	repo := sqlite.NewInventoryRepository(fixtureStore(t))
	count, err := repo.CountItems(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestListItems_OrdenPorSKU(t *testing.T) {
	repo := sqlite.NewInventoryRepository(fixtureStore(t))
	items, err := repo.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "SKU-0001", items[0].SKU)
	assert.Equal(t, "SKU-0003", items[2].SKU)
}
