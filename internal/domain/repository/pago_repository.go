package repository

import (
	"context"

	"github.com/jhoicas/club-deportivo-api/internal/domain/entity"
)

// PagoRepository define el puerto para cuotas de socios y pagos de actividades de no socios.
// Ambos registros son de solo inserción.
type PagoRepository interface {
	CreateCuota(ctx context.Context, cuota *entity.Cuota) (int64, error)
	// GetUltimaCuota la más reciente por fecha_pago (desempata por id).
	GetUltimaCuota(ctx context.Context, socioID int64) (*entity.Cuota, error)
	ListCuotas(ctx context.Context, socioID int64) ([]*entity.Cuota, error)

	CreateRegistroActividad(ctx context.Context, registro *entity.RegistroActividad) (int64, error)
	ListRegistrosActividad(ctx context.Context, clienteID int64) ([]*entity.RegistroActividad, error)
}
