package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
)

const xlsxSheet = "Inventario"

// XLSX serializa las filas a un libro de Excel con las mismas columnas del
// CSV. Qty, CostPerUnit y Value se escriben como celdas numéricas.
func XLSX(rows []dto.InventoryRowDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return nil, fmt.Errorf("crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("eliminar hoja por defecto: %w", err)
	}

	for col, title := range csvHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("celda de cabecera: %w", err)
		}
		if err := f.SetCellValue(xlsxSheet, cell, title); err != nil {
			return nil, fmt.Errorf("escribir cabecera: %w", err)
		}
	}

	for i, r := range rows {
		cost, _ := r.CostPerUnit.Float64()
		value, _ := r.Value.Float64()
		cells := []any{r.SKU, r.Item, r.Category, r.Location, r.Qty, cost, value}
		for col, v := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("celda de fila: %w", err)
			}
			if err := f.SetCellValue(xlsxSheet, cell, v); err != nil {
				return nil, fmt.Errorf("escribir fila: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
