package sqlite

import (
	"context"
	"fmt"
	"math"
	"math/rand"
)

// Datos sintéticos de primera ejecución: 3 ubicaciones, una jerarquía
// pequeña de categorías y 150 ítems repartidos al azar entre ellas.
var seedLocations = []string{"Katampe", "Niger", "Ekiti"}

type seedCategory struct {
	name   string
	parent *int64
}

func ref(id int64) *int64 { return &id }

var seedCategories = []seedCategory{
	{"Equipment", nil},
	{"Drills", ref(1)},
	{"Excavators", ref(1)},
	{"Safety", nil},
	{"PPE", ref(4)},
	{"First Aid", ref(4)},
	{"Materials", nil},
	{"Explosives", ref(7)},
	{"Fuel", ref(7)},
	{"Lubricants", ref(7)},
	{"Spares", nil},
	{"Filters", ref(11)},
	{"Belts", ref(11)},
}

const seedItemCount = 150

// seed puebla el Store vacío: todo o nada dentro de una sola transacción.
// Cada ítem recibe una línea de inventario por ubicación, con cantidad
// aleatoria en [0,100) y costo unitario en [100,1000) con 2 decimales.
func (s *Store) seed(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, name := range seedLocations {
		if _, err := tx.ExecContext(ctx, `INSERT INTO locations(name) VALUES (?)`, name); err != nil {
			return fmt.Errorf("insert location: %w", err)
		}
	}
	for _, c := range seedCategories {
		if _, err := tx.ExecContext(ctx, `INSERT INTO categories(name, parent_id) VALUES (?, ?)`, c.name, c.parent); err != nil {
			return fmt.Errorf("insert category: %w", err)
		}
	}

	catRows, err := tx.QueryContext(ctx, `SELECT id, name FROM categories`)
	if err != nil {
		return fmt.Errorf("leer categorías: %w", err)
	}
	type cat struct {
		id   int64
		name string
	}
	var cats []cat
	for catRows.Next() {
		var c cat
		if err := catRows.Scan(&c.id, &c.name); err != nil {
			catRows.Close()
			return fmt.Errorf("scan categoría: %w", err)
		}
		cats = append(cats, c)
	}
	catRows.Close()
	if err := catRows.Err(); err != nil {
		return fmt.Errorf("leer categorías: %w", err)
	}

	itemIDs := make([]int64, 0, seedItemCount)
	for i := 1; i <= seedItemCount; i++ {
		c := cats[rand.Intn(len(cats))]
		sku := fmt.Sprintf("SKU-%04d", i)
		name := fmt.Sprintf("Item %d (%s)", i, c.name)
		res, err := tx.ExecContext(ctx,
			`INSERT INTO items(sku, name, category_id) VALUES (?, ?, ?)`, sku, name, c.id)
		if err != nil {
			return fmt.Errorf("insert item: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("id de item: %w", err)
		}
		itemIDs = append(itemIDs, id)
	}

	locRows, err := tx.QueryContext(ctx, `SELECT id FROM locations`)
	if err != nil {
		return fmt.Errorf("leer ubicaciones: %w", err)
	}
	var locIDs []int64
	for locRows.Next() {
		var id int64
		if err := locRows.Scan(&id); err != nil {
			locRows.Close()
			return fmt.Errorf("scan ubicación: %w", err)
		}
		locIDs = append(locIDs, id)
	}
	locRows.Close()
	if err := locRows.Err(); err != nil {
		return fmt.Errorf("leer ubicaciones: %w", err)
	}

	for _, itemID := range itemIDs {
		for _, locID := range locIDs {
			qty := rand.Intn(100)
			cpu := math.Round((rand.Float64()*900+100)*100) / 100
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO inventory(item_id, location_id, qty, cost_per_unit) VALUES (?, ?, ?, ?)`,
				itemID, locID, qty, cpu); err != nil {
				return fmt.Errorf("insert línea de inventario: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}
