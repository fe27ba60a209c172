// Package membresia concentra la regla de morosidad y renovación de socios.
// Listado de clientes, detalle, credencial, pantalla de pagos y reporte de morosos
// la consultan aquí; ninguna otra parte del código compara fechas de vencimiento.
package membresia

import (
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/club-deportivo-api/internal/domain/entity"
	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
)

// DiasRenovacion días corridos que cubre el pago de una cuota.
const DiasRenovacion = 30

// Estado situación de un cliente respecto de la cuota social.
type Estado string

const (
	EstadoActivo        Estado = "ACTIVO"
	EstadoMoroso        Estado = "MOROSO"
	EstadoNoSocio       Estado = "NO_SOCIO"
	EstadoBaja          Estado = "BAJA"
	EstadoFechaInvalida Estado = "FECHA_INVALIDA"
)

// Moroso es true solo para EstadoMoroso.
func (e Estado) Moroso() bool { return e == EstadoMoroso }

// EsMoroso true si vencimiento es una fecha válida estrictamente anterior a hoy.
// Fechas ausentes o ilegibles nunca son morosas.
func EsMoroso(vencimiento, hoy fecha.Fecha) bool {
	return vencimiento.Valid && vencimiento.Before(hoy)
}

// Evaluar clasifica a un socio (nil = no socio) en la fecha hoy.
func Evaluar(socio *entity.Socio, hoy fecha.Fecha) Estado {
	if socio == nil {
		return EstadoNoSocio
	}
	if !socio.FechaBaja.IsZero() {
		return EstadoBaja
	}
	venc := socio.FechaVencimientoCuota
	if !venc.Valid {
		if !venc.IsZero() {
			log.Debug().
				Int64("socio_id", socio.ID).
				Str("fecha_vencimiento_cuota", venc.Raw).
				Msg("fecha de vencimiento ilegible")
		}
		return EstadoFechaInvalida
	}
	if EsMoroso(venc, hoy) {
		return EstadoMoroso
	}
	return EstadoActivo
}

// ProximoVencimiento fecha de vencimiento resultante de pagar en fechaPago.
// Offset fijo, no respeta meses calendario.
func ProximoVencimiento(fechaPago fecha.Fecha) fecha.Fecha {
	return fechaPago.AddDays(DiasRenovacion)
}
