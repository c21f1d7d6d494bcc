// Package export serializa la vista de inventario renderizada a formatos
// compatibles con hoja de cálculo. El orden de las filas es el del llamador
// (la última tabla renderizada).
package export

import (
	"strconv"
	"strings"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
)

// csvHeader columnas del export, en el orden de la tabla.
var csvHeader = []string{"SKU", "Item", "Category", "Location", "Qty", "CostPerUnit", "Value"}

// utf8BOM marca de orden de bytes inicial, requerida para que las hojas de
// cálculo detecten UTF-8.
const utf8BOM = "\uFEFF"

// CSV serializa las filas al formato de export: cabecera fija sin comillas,
// filas de datos con cada campo entre comillas dobles (comillas internas
// duplicadas), montos sin símbolo de moneda. No se usa encoding/csv porque
// el formato exige todos los campos de datos entrecomillados, no solo los
// que lo necesitan.
func CSV(rows []dto.InventoryRowDTO) string {
	var b strings.Builder
	b.WriteString(utf8BOM)
	b.WriteString(strings.Join(csvHeader, ","))
	for _, r := range rows {
		b.WriteByte('\n')
		b.WriteString(joinQuoted([]string{
			r.SKU,
			r.Item,
			r.Category,
			r.Location,
			strconv.FormatInt(r.Qty, 10),
			r.CostPerUnit.String(),
			r.Value.String(),
		}))
	}
	return b.String()
}

func joinQuoted(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
