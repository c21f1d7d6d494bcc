// Package bridge expone las operaciones de la capa de consulta al shell de
// escritorio como llamadas en proceso, espejo de los canales IPC de la
// variante web. Ninguna operación muta estado; la única utilidad adicional
// es el guardado de texto a archivo.
package bridge

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/application/usecase"
)

// SavePrompt pide al usuario la ruta destino de un guardado. Devuelve
// ok=false si el usuario cancela el diálogo. El shell inyecta aquí su
// diálogo nativo; el bridge no sabe de ventanas.
type SavePrompt func(defaultPath string) (path string, ok bool)

// Bridge fachada en proceso para el shell de escritorio.
type Bridge struct {
	uc     *usecase.InventoryUseCase
	prompt SavePrompt
}

// New construye el bridge. Si prompt es nil, SaveTextFile escribe
// directamente en la ruta por defecto sin preguntar.
func New(uc *usecase.InventoryUseCase, prompt SavePrompt) *Bridge {
	return &Bridge{uc: uc, prompt: prompt}
}

// ListInventory lista filas de inventario, opcionalmente filtradas por
// ubicación (nil = todas las ubicaciones).
func (b *Bridge) ListInventory(ctx context.Context, locationID *int64) ([]dto.InventoryRowDTO, error) {
	return b.uc.ListInventory(ctx, locationID)
}

// Summary devuelve los agregados del panel.
func (b *Bridge) Summary(ctx context.Context) (*dto.SummaryDTO, error) {
	return b.uc.Summary(ctx)
}

// ListLocations devuelve las ubicaciones para el selector.
func (b *Bridge) ListLocations(ctx context.Context) ([]dto.LocationDTO, error) {
	return b.uc.ListLocations(ctx)
}

// Filters devuelve el contrato original de filtros del escritorio.
func (b *Bridge) Filters(ctx context.Context) (*dto.FiltersDTO, error) {
	locations, err := b.uc.ListLocations(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.FiltersDTO{Locations: locations}, nil
}

// CountItems devuelve el total de ítems del catálogo.
func (b *Bridge) CountItems(ctx context.Context) (int64, error) {
	return b.uc.CountItems(ctx)
}

// SaveTextFile guarda contenido de texto UTF-8 tal cual en la ruta elegida
// por el usuario. Una cancelación no es un error: devuelve (false, nil).
func (b *Bridge) SaveTextFile(defaultPath, content string) (bool, error) {
	path := defaultPath
	if b.prompt != nil {
		chosen, ok := b.prompt(defaultPath)
		if !ok || chosen == "" {
			return false, nil
		}
		path = chosen
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("escribir archivo: %w", err)
	}
	return true, nil
}
