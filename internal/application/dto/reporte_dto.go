package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
)

// MorosoResponse fila del reporte de morosos.
type MorosoResponse struct {
	ClienteID             int64       `json:"cliente_id"`
	DNI                   int64       `json:"dni"`
	Nombre                string      `json:"nombre"`
	Apellido              string      `json:"apellido"`
	Telefono              string      `json:"telefono"`
	FechaVencimientoCuota fecha.Fecha `json:"fecha_vencimiento_cuota"`
	DiasAtraso            int         `json:"dias_atraso"`
}

// ReporteMorososResponse reporte completo a una fecha.
type ReporteMorososResponse struct {
	Fecha   fecha.Fecha      `json:"fecha"`
	Total   int              `json:"total"`
	Morosos []MorosoResponse `json:"morosos"`
}

// CredencialResponse datos impresos en el carnet del cliente.
type CredencialResponse struct {
	Club             string      `json:"club"`
	ClienteID        int64       `json:"cliente_id"`
	NombreCompleto   string      `json:"nombre_completo"`
	DNI              int64       `json:"dni"`
	Tipo             string      `json:"tipo"`
	NumeroCarnet     int64       `json:"numero_carnet,omitempty"`
	Estado           string      `json:"estado"`
	FechaVencimiento fecha.Fecha `json:"fecha_vencimiento"`
	FechaEmision     fecha.Fecha `json:"fecha_emision"`
}

// ActividadRankingResponse actividad del top del resumen.
type ActividadRankingResponse struct {
	ActividadID int64           `json:"actividad_id"`
	Nombre      string          `json:"nombre"`
	Pagos       int             `json:"pagos"`
	Total       decimal.Decimal `json:"total"`
}

// ResumenResponse resumen de caja y padrón del club.
type ResumenResponse struct {
	Fecha                  fecha.Fecha                `json:"fecha"`
	Periodo                string                     `json:"periodo"`
	CuotasHoy              decimal.Decimal            `json:"cuotas_hoy"`
	ActividadesHoy         decimal.Decimal            `json:"actividades_hoy"`
	CuotasMes              decimal.Decimal            `json:"cuotas_mes"`
	CantidadCuotasMes      int                        `json:"cantidad_cuotas_mes"`
	ActividadesMes         decimal.Decimal            `json:"actividades_mes"`
	CantidadActividadesMes int                        `json:"cantidad_actividades_mes"`
	TotalMes               decimal.Decimal            `json:"total_mes"`
	SociosActivos          int                        `json:"socios_activos"`
	SociosMorosos          int                        `json:"socios_morosos"`
	SociosBaja             int                        `json:"socios_baja"`
	NoSocios               int                        `json:"no_socios"`
	TopActividades         []ActividadRankingResponse `json:"top_actividades"`
}
