package dto

import "github.com/shopspring/decimal"

func init() {
	// Los montos viajan como números JSON, no como cadenas: los clientes
	// (tabla, gráfico, CSV) esperan valores numéricos en qty/cost/value.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse respuesta de error estándar de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
