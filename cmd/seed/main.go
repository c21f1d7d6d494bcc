// seed crea una copia local sembrada de la base de datos en el directorio
// actual, para inspección con cualquier visor de SQLite.
//
// Uso: go run ./cmd/seed [ruta/inventory.sqlite]
// Por defecto escribe inventory.sqlite en el directorio actual.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/inventario-stock/internal/infrastructure/sqlite"
)

func main() {
	path := "inventory.sqlite"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	store, err := sqlite.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir Store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Initialize(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Sembrar: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Seeded:", path)
}
