package repository

import (
	"context"

	"github.com/jhoicas/club-deportivo-api/internal/domain/entity"
	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
)

// MorosoItem fila cruda del reporte de morosos (cliente + vencimiento del socio).
type MorosoItem struct {
	entity.Cliente
	FechaVencimientoCuota fecha.Fecha `db:"fecha_vencimiento_cuota"`
}

// ClienteRepository define el puerto de persistencia para Cliente y sus subtipos Socio / NoSocio.
// Las búsquedas sin resultado devuelven (nil, nil).
type ClienteRepository interface {
	// Create inserta el cliente y exactamente un subtipo en una sola transacción.
	// Si socio != nil gana sobre noSocio; con ambos nil solo se inserta el cliente.
	// Ante cualquier fallo devuelve entity.IDInvalido y no deja filas parciales.
	Create(ctx context.Context, cliente *entity.Cliente, socio *entity.Socio, noSocio *entity.NoSocio) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Cliente, error)
	GetByDNI(ctx context.Context, dni int64) (*entity.Cliente, error)
	// List ordena por apellido, nombre e id.
	List(ctx context.Context) ([]*entity.Cliente, error)
	// Update actualiza los datos base (no asociarse ni fecha_alta). Devuelve filas afectadas.
	Update(ctx context.Context, cliente *entity.Cliente) (int64, error)

	GetSocio(ctx context.Context, clienteID int64) (*entity.Socio, error)
	ListSocios(ctx context.Context) ([]*entity.Socio, error)
	UpdateSocio(ctx context.Context, socio *entity.Socio) (int64, error)
	UpdateVencimientoSocio(ctx context.Context, socioID int64, vencimiento fecha.Fecha) (int64, error)

	// ListMorosos socios sin baja con vencimiento anterior a hoy, ordenados por apellido.
	ListMorosos(ctx context.Context, hoy fecha.Fecha) ([]MorosoItem, error)
}
