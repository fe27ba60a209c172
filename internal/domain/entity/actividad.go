package entity

import "github.com/shopspring/decimal"

// Actividad actividad del club que un no socio puede abonar por única vez.
type Actividad struct {
	ID     int64           `db:"id" json:"id"`
	Nombre string          `db:"nombre" json:"nombre"`
	Costo  decimal.Decimal `db:"costo" json:"costo"` // no negativo
}
