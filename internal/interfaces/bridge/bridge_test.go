package bridge_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/internal/application/usecase"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-stock/internal/interfaces/bridge"
)

// newBridge construye un bridge sobre un Store sembrado en un archivo
// temporal, con el prompt indicado.
func newBridge(t *testing.T, prompt bridge.SavePrompt) *bridge.Bridge {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "inventory.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Initialize(context.Background()))

	uc := usecase.NewInventoryUseCase(sqlite.NewInventoryRepository(store))
	return bridge.New(uc, prompt)
}

// Las operaciones de consulta del bridge son un espejo directo de la capa
// de consulta: mismas formas, mismos límites.
func TestBridge_OperacionesDeConsulta(t *testing.T) {
	b := newBridge(t, nil)
	ctx := context.Background()

	rows, err := b.ListInventory(ctx, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, rows)
	assert.LessOrEqual(t, len(rows), 500)

	summary, err := b.Summary(ctx)
	require.NoError(t, err)
	assert.Len(t, summary.TotalsByLocation, 3)
	assert.LessOrEqual(t, len(summary.LowStock), 25)
	assert.LessOrEqual(t, len(summary.TopItems), 10)

	locations, err := b.ListLocations(ctx)
	require.NoError(t, err)
	assert.Len(t, locations, 3)

	filters, err := b.Filters(ctx)
	require.NoError(t, err)
	assert.Len(t, filters.Locations, 3)

	count, err := b.CountItems(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 150, count)
}

// El contenido se escribe tal cual (UTF-8 verbatim) en la ruta elegida.
func TestSaveTextFile_EscrituraVerbatim(t *testing.T) {
	dir := t.TempDir()
	chosen := filepath.Join(dir, "export.csv")
	b := newBridge(t, func(defaultPath string) (string, bool) {
		assert.Equal(t, "inventory-export.csv", defaultPath)
		return chosen, true
	})

	content := "\uFEFF\"SKU\",\"Item\"\n\"SKU-0001\",\"Ñandú 1/2\"\" HD\""
	ok, err := b.SaveTextFile("inventory-export.csv", content)
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := os.ReadFile(chosen)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

// La cancelación del usuario no es un error: (false, nil).
func TestSaveTextFile_Cancelado(t *testing.T) {
	b := newBridge(t, func(string) (string, bool) { return "", false })

	ok, err := b.SaveTextFile("export.csv", "contenido")
	require.NoError(t, err)
	assert.False(t, ok)
}

// Sin prompt inyectado se escribe directamente en la ruta por defecto.
func TestSaveTextFile_SinPrompt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	b := newBridge(t, nil)

	ok, err := b.SaveTextFile(path, "hola")
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hola", string(data))
}
