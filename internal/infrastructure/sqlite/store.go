package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// schemaDDL esquema de las cuatro tablas del Store. Sin metadatos de
// versión: la evolución del esquema no está soportada.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS locations(
		id INTEGER PRIMARY KEY,
		name TEXT UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS categories(
		id INTEGER PRIMARY KEY,
		name TEXT,
		parent_id INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS items(
		id INTEGER PRIMARY KEY,
		sku TEXT UNIQUE,
		name TEXT,
		category_id INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS inventory(
		id INTEGER PRIMARY KEY,
		item_id INTEGER,
		location_id INTEGER,
		qty INTEGER,
		cost_per_unit REAL
	)`,
}

// Store base de datos relacional embebida (SQLite) que contiene todas las
// entidades persistidas. Se abre una sola vez al inicio; después de la
// siembra el único tráfico es de lectura.
type Store struct {
	db   *sql.DB
	path string
}

// DefaultPath resuelve la ruta por defecto del archivo de datos en el
// directorio de configuración del usuario (variante escritorio).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolver directorio de usuario: %w", err)
	}
	return filepath.Join(dir, "inventario-stock", "inventory.sqlite"), nil
}

// Open abre (o crea) el archivo SQLite y activa el modo WAL, que serializa
// escrituras y permite lecturas concurrentes.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("activar WAL: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Initialize crea las tablas si no existen y, si el Store está vacío,
// ejecuta la siembra inicial dentro de una transacción. Es idempotente:
// sobre un Store ya sembrado no inserta nada. Cualquier fallo se devuelve
// y debe tratarse como fatal en el arranque.
func (s *Store) Initialize(ctx context.Context) error {
	for _, ddl := range schemaDDL {
		if _, err := s.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}

	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM locations`).Scan(&count); err != nil {
		return fmt.Errorf("verificar siembra: %w", err)
	}
	if count > 0 {
		return nil
	}
	return s.seed(ctx)
}

// DB expone la conexión subyacente para los repositorios.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path devuelve la ruta del archivo de datos.
func (s *Store) Path() string {
	return s.path
}

// Close cierra la conexión al archivo.
func (s *Store) Close() error {
	return s.db.Close()
}
