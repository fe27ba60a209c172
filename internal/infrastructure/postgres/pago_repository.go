package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/club-deportivo-api/internal/domain"
	"github.com/jhoicas/club-deportivo-api/internal/domain/entity"
	"github.com/jhoicas/club-deportivo-api/internal/domain/repository"
)

var _ repository.PagoRepository = (*PagoRepo)(nil)

const (
	cuotaColumns    = `id, id_socio, fecha_pago, monto, medio_pago, cantidad_cuotas, descuento, monto_total, fecha_vencimiento, comprobante`
	registroColumns = `id, id_cliente, id_actividad, fecha_pago, monto, medio_pago, fecha_expiracion`
)

// PagoRepo implementación de PagoRepository (cuotas y registros de actividad).
type PagoRepo struct {
	q Querier
}

// NewPagoRepository construye el adaptador.
func NewPagoRepository(q Querier) *PagoRepo {
	return &PagoRepo{q: q}
}

// CreateCuota inserta una cuota y devuelve su id.
func (r *PagoRepo) CreateCuota(ctx context.Context, c *entity.Cuota) (int64, error) {
	query := `
		INSERT INTO cuotas (id_socio, fecha_pago, monto, medio_pago, cantidad_cuotas, descuento, monto_total, fecha_vencimiento, comprobante)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	var id int64
	err := sqlx.GetContext(ctx, r.q, &id, query,
		c.IDSocio, c.FechaPago, c.Monto, c.MedioPago, c.CantidadCuotas,
		c.Descuento, c.MontoTotal, c.FechaVencimiento, c.Comprobante,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return entity.IDInvalido, fmt.Errorf("%w: socio %d", domain.ErrReferenciaInvalida, c.IDSocio)
		}
		return entity.IDInvalido, fmt.Errorf("insert cuota: %w", err)
	}
	c.ID = id
	return id, nil
}

// GetUltimaCuota devuelve la cuota más reciente del socio o (nil, nil).
func (r *PagoRepo) GetUltimaCuota(ctx context.Context, socioID int64) (*entity.Cuota, error) {
	var c entity.Cuota
	err := sqlx.GetContext(ctx, r.q, &c,
		`SELECT `+cuotaColumns+` FROM cuotas WHERE id_socio = $1 ORDER BY fecha_pago DESC, id DESC LIMIT 1`, socioID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ultima cuota: %w", err)
	}
	return &c, nil
}

// ListCuotas historial de cuotas del socio, más reciente primero.
func (r *PagoRepo) ListCuotas(ctx context.Context, socioID int64) ([]*entity.Cuota, error) {
	var list []*entity.Cuota
	err := sqlx.SelectContext(ctx, r.q, &list,
		`SELECT `+cuotaColumns+` FROM cuotas WHERE id_socio = $1 ORDER BY fecha_pago DESC, id DESC`, socioID)
	if err != nil {
		return nil, fmt.Errorf("list cuotas: %w", err)
	}
	return list, nil
}

// CreateRegistroActividad inserta el pago de una actividad y devuelve su id.
func (r *PagoRepo) CreateRegistroActividad(ctx context.Context, ra *entity.RegistroActividad) (int64, error) {
	query := `
		INSERT INTO registros_actividad (id_cliente, id_actividad, fecha_pago, monto, medio_pago, fecha_expiracion)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	var id int64
	err := sqlx.GetContext(ctx, r.q, &id, query,
		ra.IDCliente, ra.IDActividad, ra.FechaPago, ra.Monto, ra.MedioPago, ra.FechaExpiracion,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return entity.IDInvalido, fmt.Errorf("%w: cliente %d / actividad %d", domain.ErrReferenciaInvalida, ra.IDCliente, ra.IDActividad)
		}
		return entity.IDInvalido, fmt.Errorf("insert registro actividad: %w", err)
	}
	ra.ID = id
	return id, nil
}

// ListRegistrosActividad pagos de actividades del cliente, más reciente primero.
func (r *PagoRepo) ListRegistrosActividad(ctx context.Context, clienteID int64) ([]*entity.RegistroActividad, error) {
	var list []*entity.RegistroActividad
	err := sqlx.SelectContext(ctx, r.q, &list,
		`SELECT `+registroColumns+` FROM registros_actividad WHERE id_cliente = $1 ORDER BY fecha_pago DESC, id DESC`, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list registros actividad: %w", err)
	}
	return list, nil
}
