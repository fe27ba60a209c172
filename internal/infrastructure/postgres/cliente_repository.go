package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/club-deportivo-api/internal/domain"
	"github.com/jhoicas/club-deportivo-api/internal/domain/entity"
	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
	"github.com/jhoicas/club-deportivo-api/internal/domain/membresia"
	"github.com/jhoicas/club-deportivo-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const (
	clienteColumns = `id, dni, nombre, apellido, fecha_nacimiento, direccion, telefono, apto_fisico, asociarse, fecha_alta`
	socioColumns   = `id, fecha_inscripcion, fecha_vencimiento_cuota, numero_carnet, carnet_entregado, fecha_baja`

	insertClienteQuery = `
		INSERT INTO clientes (dni, nombre, apellido, fecha_nacimiento, direccion, telefono, apto_fisico, asociarse, fecha_alta)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	insertSocioQuery = `
		INSERT INTO socios (id, fecha_inscripcion, fecha_vencimiento_cuota, numero_carnet, carnet_entregado, fecha_baja)
		VALUES ($1, $2, $3, $4, $5, $6)`
	insertNoSocioQuery = `INSERT INTO no_socios (id, fecha_baja) VALUES ($1, $2)`

	listMorososQuery = `
		SELECT c.id, c.dni, c.nombre, c.apellido, c.fecha_nacimiento, c.direccion, c.telefono,
		       c.apto_fisico, c.asociarse, c.fecha_alta, s.fecha_vencimiento_cuota
		FROM clientes c
		JOIN socios s ON s.id = c.id
		WHERE s.fecha_baja IS NULL
		  AND s.fecha_vencimiento_cuota ~ '^[0-9]{4}-[0-9]{2}-[0-9]{2}$'
		  AND s.fecha_vencimiento_cuota < $1
		ORDER BY c.apellido, c.nombre, c.id`
)

// ClienteRepo implementación de ClienteRepository (usable con DB o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar *sqlx.DB o *sqlx.Tx.
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create inserta cliente + subtipo en una transacción. En error devuelve entity.IDInvalido.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente, socio *entity.Socio, noSocio *entity.NoSocio) (int64, error) {
	var id int64
	err := withTx(ctx, r.q, func(tx Querier) error {
		if err := sqlx.GetContext(ctx, tx, &id, insertClienteQuery,
			c.DNI, c.Nombre, c.Apellido, c.FechaNacimiento, c.Direccion, c.Telefono,
			c.AptoFisico, c.Asociarse, c.FechaAlta,
		); err != nil {
			return fmt.Errorf("insert cliente: %w", err)
		}
		switch {
		case socio != nil:
			if _, err := tx.ExecContext(ctx, insertSocioQuery,
				id, socio.FechaInscripcion, socio.FechaVencimientoCuota,
				socio.NumeroCarnet, socio.CarnetEntregado, socio.FechaBaja,
			); err != nil {
				return fmt.Errorf("insert socio: %w", err)
			}
		case noSocio != nil:
			if _, err := tx.ExecContext(ctx, insertNoSocioQuery, id, noSocio.FechaBaja); err != nil {
				return fmt.Errorf("insert no socio: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("dni", c.DNI).Msg("alta de cliente revertida")
		if isUniqueViolation(err) {
			return entity.IDInvalido, fmt.Errorf("%w: dni %d", domain.ErrDuplicate, c.DNI)
		}
		return entity.IDInvalido, err
	}

	c.ID = id
	if socio != nil {
		socio.ID = id
	} else if noSocio != nil {
		noSocio.ID = id
	}
	return id, nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	var c entity.Cliente
	err := sqlx.GetContext(ctx, r.q, &c, `SELECT `+clienteColumns+` FROM clientes WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// GetByDNI obtiene un cliente por DNI.
func (r *ClienteRepo) GetByDNI(ctx context.Context, dni int64) (*entity.Cliente, error) {
	var c entity.Cliente
	err := sqlx.GetContext(ctx, r.q, &c, `SELECT `+clienteColumns+` FROM clientes WHERE dni = $1`, dni)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente by dni: %w", err)
	}
	return &c, nil
}

// List lista todos los clientes ordenados por apellido.
func (r *ClienteRepo) List(ctx context.Context) ([]*entity.Cliente, error) {
	var list []*entity.Cliente
	err := sqlx.SelectContext(ctx, r.q, &list,
		`SELECT `+clienteColumns+` FROM clientes ORDER BY apellido, nombre, id`)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	return list, nil
}

// Update actualiza los datos base del cliente.
func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente) (int64, error) {
	query := `
		UPDATE clientes SET dni = $2, nombre = $3, apellido = $4, fecha_nacimiento = $5,
		       direccion = $6, telefono = $7, apto_fisico = $8
		WHERE id = $1`
	res, err := r.q.ExecContext(ctx, query,
		c.ID, c.DNI, c.Nombre, c.Apellido, c.FechaNacimiento, c.Direccion, c.Telefono, c.AptoFisico,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: dni %d", domain.ErrDuplicate, c.DNI)
		}
		return 0, fmt.Errorf("update cliente: %w", err)
	}
	return res.RowsAffected()
}

// GetSocio obtiene los datos de socio; (nil, nil) si el cliente no es socio o no existe.
func (r *ClienteRepo) GetSocio(ctx context.Context, clienteID int64) (*entity.Socio, error) {
	var s entity.Socio
	err := sqlx.GetContext(ctx, r.q, &s, `SELECT `+socioColumns+` FROM socios WHERE id = $1`, clienteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get socio: %w", err)
	}
	return &s, nil
}

// ListSocios devuelve todas las filas de socios.
func (r *ClienteRepo) ListSocios(ctx context.Context) ([]*entity.Socio, error) {
	var list []*entity.Socio
	if err := sqlx.SelectContext(ctx, r.q, &list, `SELECT `+socioColumns+` FROM socios ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list socios: %w", err)
	}
	return list, nil
}

// UpdateSocio actualiza carnet y baja del socio.
func (r *ClienteRepo) UpdateSocio(ctx context.Context, s *entity.Socio) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE socios SET numero_carnet = $2, carnet_entregado = $3, fecha_baja = $4 WHERE id = $1`,
		s.ID, s.NumeroCarnet, s.CarnetEntregado, s.FechaBaja,
	)
	if err != nil {
		return 0, fmt.Errorf("update socio: %w", err)
	}
	return res.RowsAffected()
}

// UpdateVencimientoSocio fija la nueva fecha de vencimiento de la cuota.
func (r *ClienteRepo) UpdateVencimientoSocio(ctx context.Context, socioID int64, vencimiento fecha.Fecha) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE socios SET fecha_vencimiento_cuota = $2 WHERE id = $1`, socioID, vencimiento)
	if err != nil {
		return 0, fmt.Errorf("update vencimiento socio: %w", err)
	}
	return res.RowsAffected()
}

// ListMorosos un solo JOIN clientes/socios. Los candidatos se confirman con membresia.EsMoroso
// para que el reporte use la misma regla que el resto de las vistas.
func (r *ClienteRepo) ListMorosos(ctx context.Context, hoy fecha.Fecha) ([]repository.MorosoItem, error) {
	var rows []repository.MorosoItem
	if err := sqlx.SelectContext(ctx, r.q, &rows, listMorososQuery, hoy); err != nil {
		return nil, fmt.Errorf("list morosos: %w", err)
	}
	out := rows[:0]
	for _, m := range rows {
		if membresia.EsMoroso(m.FechaVencimientoCuota, hoy) {
			out = append(out, m)
		}
	}
	return out, nil
}
