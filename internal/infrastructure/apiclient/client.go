// Package apiclient consume la superficie HTTP de la variante web desde el
// shell espejado, incluyendo sus rutas de degradación: un endpoint primario
// ausente se sustituye por el alternativo o por una estructura vacía, sin
// alertar al usuario. Un fallo de transporte real sí se propaga como error.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
)

// Client cliente de solo lectura de la API de inventario.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New construye el cliente. baseURL sin barra final (ej. http://host:8080).
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// rawRow forma heterogénea de las filas según la revisión del backend:
// item/name, cost_per_unit/cpu/unit_cost. Se normaliza una sola vez aquí,
// en el borde, a la fila canónica.
type rawRow struct {
	ID          int64            `json:"id"`
	SKU         string           `json:"sku"`
	Item        string           `json:"item"`
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Location    string           `json:"location"`
	Qty         int64            `json:"qty"`
	CostPerUnit *decimal.Decimal `json:"cost_per_unit"`
	CPU         *decimal.Decimal `json:"cpu"`
	UnitCost    *decimal.Decimal `json:"unit_cost"`
	Value       *decimal.Decimal `json:"value"`
}

func (r rawRow) normalize() dto.InventoryRowDTO {
	name := r.Item
	if name == "" {
		name = r.Name
	}
	cost := decimal.Zero
	switch {
	case r.CostPerUnit != nil:
		cost = *r.CostPerUnit
	case r.CPU != nil:
		cost = *r.CPU
	case r.UnitCost != nil:
		cost = *r.UnitCost
	}
	value := cost.Mul(decimal.NewFromInt(r.Qty))
	if r.Value != nil {
		value = *r.Value
	}
	return dto.InventoryRowDTO{
		ID:          r.ID,
		SKU:         r.SKU,
		Item:        name,
		Category:    r.Category,
		Location:    r.Location,
		Qty:         r.Qty,
		CostPerUnit: cost,
		Value:       value,
	}
}

// FetchInventory lista el inventario, opcionalmente filtrado por ubicación.
// Si /inventory no está disponible, degrada a /items: el catálogo mapeado a
// filas con cantidad, costo y valor en cero. Solo si ambas fuentes fallan
// se devuelve un error.
func (c *Client) FetchInventory(ctx context.Context, locationID *int64) ([]dto.InventoryRowDTO, error) {
	path := "/inventory"
	if locationID != nil {
		path = fmt.Sprintf("/inventory?location_id=%d", *locationID)
	}

	var raw []rawRow
	if err := c.getJSON(ctx, path, &raw); err != nil {
		if err := c.getJSON(ctx, "/items", &raw); err != nil {
			return nil, fmt.Errorf("inventario no disponible: %w", err)
		}
		// Fuente degradada: el catálogo no trae cantidades ni costos.
		rows := make([]dto.InventoryRowDTO, 0, len(raw))
		for _, r := range raw {
			row := r.normalize()
			row.Qty = 0
			row.CostPerUnit = decimal.Zero
			row.Value = decimal.Zero
			rows = append(rows, row)
		}
		return rows, nil
	}

	rows := make([]dto.InventoryRowDTO, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, r.normalize())
	}
	return rows, nil
}

// FetchSummary obtiene los agregados del panel. Si /summary falla consulta
// /reports/summary; si ambos fallan devuelve el resumen vacío por defecto.
// La degradación es silenciosa: nunca devuelve error.
func (c *Client) FetchSummary(ctx context.Context) *dto.SummaryDTO {
	var summary dto.SummaryDTO
	if err := c.getJSON(ctx, "/summary", &summary); err != nil {
		if err := c.getJSON(ctx, "/reports/summary", &summary); err != nil {
			return dto.EmptySummary()
		}
	}
	if summary.TotalsByLocation == nil {
		summary.TotalsByLocation = []dto.LocationTotalDTO{}
	}
	if summary.LowStock == nil {
		summary.LowStock = []dto.LowStockDTO{}
	}
	if summary.TopItems == nil {
		summary.TopItems = []dto.TopItemDTO{}
	}
	return &summary
}

// FetchLocations obtiene las ubicaciones para el selector. Un fallo aquí
// es de nivel de petición y se propaga al llamador.
func (c *Client) FetchLocations(ctx context.Context) ([]dto.LocationDTO, error) {
	var locations []dto.LocationDTO
	if err := c.getJSON(ctx, "/locations", &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// getJSON ejecuta un GET y decodifica la respuesta JSON. Un estado fuera
// de 2xx cuenta como fallo del endpoint.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("construir petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("GET %s: HTTP %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar %s: %w", path, err)
	}
	return nil
}
