package dto

import "github.com/shopspring/decimal"

// ActividadRequest alta o modificación de una actividad.
type ActividadRequest struct {
	Nombre string          `json:"nombre" validate:"required,max=100"`
	Costo  decimal.Decimal `json:"costo"`
}

// ActividadResponse salida de una actividad.
type ActividadResponse struct {
	ID     int64           `json:"id"`
	Nombre string          `json:"nombre"`
	Costo  decimal.Decimal `json:"costo"`
}
