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

var _ repository.ActividadRepository = (*ActividadRepo)(nil)

// ActividadRepo implementación de ActividadRepository.
type ActividadRepo struct {
	q Querier
}

// NewActividadRepository construye el adaptador.
func NewActividadRepository(q Querier) *ActividadRepo {
	return &ActividadRepo{q: q}
}

// Create inserta la actividad y devuelve su id (entity.IDInvalido si falla).
func (r *ActividadRepo) Create(ctx context.Context, a *entity.Actividad) (int64, error) {
	var id int64
	err := sqlx.GetContext(ctx, r.q, &id,
		`INSERT INTO actividades (nombre, costo) VALUES ($1, $2) RETURNING id`, a.Nombre, a.Costo)
	if err != nil {
		return entity.IDInvalido, fmt.Errorf("insert actividad: %w", err)
	}
	a.ID = id
	return id, nil
}

// GetByID obtiene una actividad por ID.
func (r *ActividadRepo) GetByID(ctx context.Context, id int64) (*entity.Actividad, error) {
	var a entity.Actividad
	err := sqlx.GetContext(ctx, r.q, &a, `SELECT id, nombre, costo FROM actividades WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get actividad: %w", err)
	}
	return &a, nil
}

// List lista las actividades por nombre.
func (r *ActividadRepo) List(ctx context.Context) ([]*entity.Actividad, error) {
	var list []*entity.Actividad
	if err := sqlx.SelectContext(ctx, r.q, &list, `SELECT id, nombre, costo FROM actividades ORDER BY nombre, id`); err != nil {
		return nil, fmt.Errorf("list actividades: %w", err)
	}
	return list, nil
}

// Update actualiza nombre y costo.
func (r *ActividadRepo) Update(ctx context.Context, a *entity.Actividad) (int64, error) {
	res, err := r.q.ExecContext(ctx, `UPDATE actividades SET nombre = $2, costo = $3 WHERE id = $1`, a.ID, a.Nombre, a.Costo)
	if err != nil {
		return 0, fmt.Errorf("update actividad: %w", err)
	}
	return res.RowsAffected()
}

// Delete elimina la actividad. Con pagos registrados la FK lo impide.
func (r *ActividadRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM actividades WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrActividadEnUso
		}
		return 0, fmt.Errorf("delete actividad: %w", err)
	}
	return res.RowsAffected()
}
