package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
)

// RegistrarCuotaRequest cobro de cuota social. Monto vacío = cuota mensual configurada.
type RegistrarCuotaRequest struct {
	ClienteID      int64            `json:"cliente_id" validate:"required,gt=0"`
	Monto          *decimal.Decimal `json:"monto,omitempty"`
	MedioPago      string           `json:"medio_pago" validate:"required,oneof=EFECTIVO TARJETA TRANSFERENCIA"`
	CantidadCuotas int              `json:"cantidad_cuotas" validate:"omitempty,min=1,max=12"`
	Descuento      decimal.Decimal  `json:"descuento"`
	Comprobante    *int64           `json:"comprobante,omitempty"`
}

// CuotaResponse salida de una cuota.
type CuotaResponse struct {
	ID               int64           `json:"id"`
	ClienteID        int64           `json:"cliente_id"`
	FechaPago        fecha.Fecha     `json:"fecha_pago"`
	Monto            decimal.Decimal `json:"monto"`
	MedioPago        string          `json:"medio_pago"`
	CantidadCuotas   int             `json:"cantidad_cuotas"`
	Descuento        decimal.Decimal `json:"descuento"`
	MontoTotal       decimal.Decimal `json:"monto_total"`
	FechaVencimiento fecha.Fecha     `json:"fecha_vencimiento"`
	Comprobante      *int64          `json:"comprobante,omitempty"`
}

// RegistrarPagoActividadRequest pago por única vez de un no socio.
type RegistrarPagoActividadRequest struct {
	ClienteID   int64  `json:"cliente_id" validate:"required,gt=0"`
	ActividadID int64  `json:"actividad_id" validate:"required,gt=0"`
	MedioPago   string `json:"medio_pago" validate:"required,oneof=EFECTIVO TARJETA TRANSFERENCIA"`
}

// RegistroActividadResponse salida de un pago de actividad.
type RegistroActividadResponse struct {
	ID              int64           `json:"id"`
	ClienteID       int64           `json:"cliente_id"`
	ActividadID     int64           `json:"actividad_id"`
	Actividad       string          `json:"actividad,omitempty"`
	FechaPago       fecha.Fecha     `json:"fecha_pago"`
	Monto           decimal.Decimal `json:"monto"`
	MedioPago       string          `json:"medio_pago"`
	FechaExpiracion fecha.Fecha     `json:"fecha_expiracion"`
}
