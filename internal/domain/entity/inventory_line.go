package entity

import "github.com/shopspring/decimal"

// InventoryLine representa la existencia de un ítem en una ubicación:
// cantidad y costo unitario. El valor de la línea siempre se deriva como
// qty × cost_per_unit y nunca se almacena.
//
// Conceptualmente hay una línea por par (ítem, ubicación), pero la unicidad
// no está garantizada en el esquema: las consultas de agregación suman
// duplicados en lugar de asumir una sola fila.
type InventoryLine struct {
	ID          int64
	ItemID      int64
	LocationID  int64
	Qty         int64           // no negativo
	CostPerUnit decimal.Decimal // no negativo
}

// Value devuelve el valor derivado de la línea (qty × cost_per_unit).
func (l InventoryLine) Value() decimal.Decimal {
	return l.CostPerUnit.Mul(decimal.NewFromInt(l.Qty))
}
