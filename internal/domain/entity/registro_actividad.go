package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
)

// RegistroActividad pago por única vez de un cliente no socio para una actividad.
// FechaExpiracion coincide con FechaPago: el acceso vale solo ese día.
type RegistroActividad struct {
	ID              int64           `db:"id" json:"id"`
	IDCliente       int64           `db:"id_cliente" json:"id_cliente"`
	IDActividad     int64           `db:"id_actividad" json:"id_actividad"`
	FechaPago       fecha.Fecha     `db:"fecha_pago" json:"fecha_pago"`
	Monto           decimal.Decimal `db:"monto" json:"monto"`
	MedioPago       string          `db:"medio_pago" json:"medio_pago"`
	FechaExpiracion fecha.Fecha     `db:"fecha_expiracion" json:"fecha_expiracion"`
}
