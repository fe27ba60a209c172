package entity

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
)

// Cuota pago de cuota social de un socio. Registro de solo inserción.
type Cuota struct {
	ID               int64           `db:"id" json:"id"`
	IDSocio          int64           `db:"id_socio" json:"id_socio"`
	FechaPago        fecha.Fecha     `db:"fecha_pago" json:"fecha_pago"`
	Monto            decimal.Decimal `db:"monto" json:"monto"`
	MedioPago        string          `db:"medio_pago" json:"medio_pago"`
	CantidadCuotas   int             `db:"cantidad_cuotas" json:"cantidad_cuotas"`
	Descuento        decimal.Decimal `db:"descuento" json:"descuento"`
	MontoTotal       decimal.Decimal `db:"monto_total" json:"monto_total"`
	FechaVencimiento fecha.Fecha     `db:"fecha_vencimiento" json:"fecha_vencimiento"`
	Comprobante      sql.NullInt64   `db:"comprobante" json:"-"`
}
