package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
)

// Recaudacion suma de montos cobrados en un rango de fechas.
type Recaudacion struct {
	Total    decimal.Decimal `db:"total"`
	Cantidad int             `db:"cantidad"`
}

// ActividadRanking actividad con lo cobrado a no socios en un rango.
type ActividadRanking struct {
	ActividadID int64           `db:"id_actividad"`
	Nombre      string          `db:"nombre"`
	Pagos       int             `db:"pagos"`
	Total       decimal.Decimal `db:"total"`
}

// ResumenRepository consultas de solo lectura para el resumen de caja.
// Los rangos son inclusivos y las filas con fecha_pago ilegible se ignoran.
type ResumenRepository interface {
	RecaudacionCuotas(ctx context.Context, desde, hasta fecha.Fecha) (Recaudacion, error)
	RecaudacionActividades(ctx context.Context, desde, hasta fecha.Fecha) (Recaudacion, error)
	TopActividades(ctx context.Context, desde, hasta fecha.Fecha, limite int) ([]ActividadRanking, error)
}
