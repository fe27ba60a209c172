package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
	"github.com/jhoicas/club-deportivo-api/internal/domain/repository"
)

var _ repository.ResumenRepository = (*ResumenRepo)(nil)

// fechaISO filtra textos que no son YYYY-MM-DD antes de comparar por rango.
const fechaISO = `'^[0-9]{4}-[0-9]{2}-[0-9]{2}$'`

const (
	recaudacionCuotasQuery = `
		SELECT COALESCE(SUM(monto_total), 0) AS total, COUNT(*) AS cantidad
		FROM cuotas
		WHERE fecha_pago ~ ` + fechaISO + `
		  AND fecha_pago BETWEEN $1 AND $2`

	recaudacionActividadesQuery = `
		SELECT COALESCE(SUM(monto), 0) AS total, COUNT(*) AS cantidad
		FROM registros_actividad
		WHERE fecha_pago ~ ` + fechaISO + `
		  AND fecha_pago BETWEEN $1 AND $2`

	topActividadesQuery = `
		SELECT r.id_actividad, a.nombre, COUNT(*) AS pagos, COALESCE(SUM(r.monto), 0) AS total
		FROM registros_actividad r
		JOIN actividades a ON a.id = r.id_actividad
		WHERE r.fecha_pago ~ ` + fechaISO + `
		  AND r.fecha_pago BETWEEN $1 AND $2
		GROUP BY r.id_actividad, a.nombre
		ORDER BY total DESC, pagos DESC, a.nombre
		LIMIT $3`
)

// ResumenRepo implementación de ResumenRepository.
type ResumenRepo struct {
	q Querier
}

// NewResumenRepository construye el adaptador.
func NewResumenRepository(q Querier) *ResumenRepo {
	return &ResumenRepo{q: q}
}

// RecaudacionCuotas total cobrado en cuotas sociales entre desde y hasta.
func (r *ResumenRepo) RecaudacionCuotas(ctx context.Context, desde, hasta fecha.Fecha) (repository.Recaudacion, error) {
	var out repository.Recaudacion
	if err := sqlx.GetContext(ctx, r.q, &out, recaudacionCuotasQuery, desde, hasta); err != nil {
		return repository.Recaudacion{}, fmt.Errorf("recaudacion cuotas: %w", err)
	}
	return out, nil
}

// RecaudacionActividades total cobrado a no socios por actividades.
func (r *ResumenRepo) RecaudacionActividades(ctx context.Context, desde, hasta fecha.Fecha) (repository.Recaudacion, error) {
	var out repository.Recaudacion
	if err := sqlx.GetContext(ctx, r.q, &out, recaudacionActividadesQuery, desde, hasta); err != nil {
		return repository.Recaudacion{}, fmt.Errorf("recaudacion actividades: %w", err)
	}
	return out, nil
}

// TopActividades las actividades que más recaudaron, como máximo limite.
func (r *ResumenRepo) TopActividades(ctx context.Context, desde, hasta fecha.Fecha, limite int) ([]repository.ActividadRanking, error) {
	out := []repository.ActividadRanking{}
	if err := sqlx.SelectContext(ctx, r.q, &out, topActividadesQuery, desde, hasta, limite); err != nil {
		return nil, fmt.Errorf("top actividades: %w", err)
	}
	return out, nil
}
