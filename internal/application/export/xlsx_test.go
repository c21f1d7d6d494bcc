package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/application/export"
)

func TestXLSX_CabeceraYFilas(t *testing.T) {
	data, err := export.XLSX([]dto.InventoryRowDTO{
		row("SKU-0001", "Widget", "Drills", "Katampe", 5, 120.5, 602.5),
		row("SKU-0002", "Helmet", "PPE", "Niger", 3, 10.25, 30.75),
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Inventario")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"SKU", "Item", "Category", "Location", "Qty", "CostPerUnit", "Value"}, rows[0])
	assert.Equal(t, "SKU-0001", rows[1][0])
	assert.Equal(t, "602.5", rows[1][6])
	assert.Equal(t, "Helmet", rows[2][1])
}

func TestXLSX_SinFilas(t *testing.T) {
	data, err := export.XLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Inventario")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
