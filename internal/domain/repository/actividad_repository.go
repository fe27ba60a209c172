package repository

import (
	"context"

	"github.com/jhoicas/club-deportivo-api/internal/domain/entity"
)

// ActividadRepository define el puerto de persistencia para Actividad.
type ActividadRepository interface {
	Create(ctx context.Context, actividad *entity.Actividad) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Actividad, error)
	List(ctx context.Context) ([]*entity.Actividad, error)
	Update(ctx context.Context, actividad *entity.Actividad) (int64, error)
	// Delete devuelve domain.ErrActividadEnUso si hay pagos que la referencian.
	Delete(ctx context.Context, id int64) (int64, error)
}
