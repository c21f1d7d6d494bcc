package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/internal/infrastructure/sqlite"
)

// openStore abre un Store en un archivo temporal del test.
func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "inventory.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func count(t *testing.T, store *sqlite.Store, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, store.DB().QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

// La siembra inicial puebla las cuatro tablas: 3 ubicaciones, 150 ítems y
// una línea de inventario por par ítem×ubicación (450 líneas).
func TestInitialize_SiembraInicial(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.Initialize(context.Background()))

	assert.EqualValues(t, 3, count(t, store, "locations"))
	assert.EqualValues(t, 13, count(t, store, "categories"))
	assert.EqualValues(t, 150, count(t, store, "items"))
	assert.EqualValues(t, 450, count(t, store, "inventory"))
}

// Initialize sobre un Store ya sembrado no inserta nada.
func TestInitialize_Idempotente(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	require.NoError(t, store.Initialize(ctx))
	require.NoError(t, store.Initialize(ctx))

	assert.EqualValues(t, 3, count(t, store, "locations"))
	assert.EqualValues(t, 150, count(t, store, "items"))
	assert.EqualValues(t, 450, count(t, store, "inventory"))
}

// Las cantidades y costos sembrados respetan sus rangos: qty en [0,100) y
// cost_per_unit en [100,1000).
func TestInitialize_RangosDeSiembra(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.Initialize(context.Background()))

	var minQty, maxQty int64
	var minCPU, maxCPU float64
	require.NoError(t, store.DB().QueryRow(
		`SELECT MIN(qty), MAX(qty), MIN(cost_per_unit), MAX(cost_per_unit) FROM inventory`,
	).Scan(&minQty, &maxQty, &minCPU, &maxCPU))

	assert.GreaterOrEqual(t, minQty, int64(0))
	assert.Less(t, maxQty, int64(100))
	assert.GreaterOrEqual(t, minCPU, 100.0)
	assert.Less(t, maxCPU, 1000.0)
}

// Los SKUs sembrados siguen el formato SKU-NNNN y son únicos.
func TestInitialize_SKUs(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.Initialize(context.Background()))

	var distinct int64
	require.NoError(t, store.DB().QueryRow(`SELECT COUNT(DISTINCT sku) FROM items`).Scan(&distinct))
	assert.EqualValues(t, 150, distinct)

	var first, last string
	require.NoError(t, store.DB().QueryRow(`SELECT MIN(sku), MAX(sku) FROM items`).Scan(&first, &last))
	assert.Equal(t, "SKU-0001", first)
	assert.Equal(t, "SKU-0150", last)
}
