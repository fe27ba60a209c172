package usecase

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/club-deportivo-api/internal/application/dto"
	"github.com/jhoicas/club-deportivo-api/internal/application/ports"
	"github.com/jhoicas/club-deportivo-api/internal/domain"
	"github.com/jhoicas/club-deportivo-api/internal/domain/entity"
	"github.com/jhoicas/club-deportivo-api/internal/domain/membresia"
	"github.com/jhoicas/club-deportivo-api/internal/domain/repository"
)

// PagoUseCase cobro de cuotas sociales y de actividades de no socios.
type PagoUseCase struct {
	tx           TxRunner
	clientes     repository.ClienteRepository
	actividades  repository.ActividadRepository
	pagos        repository.PagoRepository
	clock        ports.Clock
	cuotaMensual decimal.Decimal
}

// NewPagoUseCase construye el caso de uso. cuotaMensual es el monto por defecto de la cuota.
func NewPagoUseCase(
	tx TxRunner,
	clientes repository.ClienteRepository,
	actividades repository.ActividadRepository,
	pagos repository.PagoRepository,
	clock ports.Clock,
	cuotaMensual decimal.Decimal,
) *PagoUseCase {
	return &PagoUseCase{
		tx:           tx,
		clientes:     clientes,
		actividades:  actividades,
		pagos:        pagos,
		clock:        clock,
		cuotaMensual: cuotaMensual,
	}
}

// RegistrarCuota cobra la cuota de un socio y renueva su vencimiento a hoy + 30 días.
// La inserción de la cuota y la actualización del socio van en la misma transacción.
func (uc *PagoUseCase) RegistrarCuota(ctx context.Context, in dto.RegistrarCuotaRequest) (*dto.CuotaResponse, error) {
	socio, err := uc.socio(ctx, in.ClienteID)
	if err != nil {
		return nil, err
	}
	if !socio.FechaBaja.IsZero() {
		return nil, fmt.Errorf("%w: el socio está dado de baja", domain.ErrConflict)
	}

	monto := uc.cuotaMensual
	if in.Monto != nil {
		monto = *in.Monto
	}
	if monto.IsNegative() || in.Descuento.IsNegative() {
		return nil, fmt.Errorf("%w: monto y descuento no pueden ser negativos", domain.ErrInvalidInput)
	}
	cantidad := in.CantidadCuotas
	if cantidad <= 0 {
		cantidad = 1
	}
	total := monto.Sub(in.Descuento)
	if total.IsNegative() {
		total = decimal.Zero
	}

	hoy := uc.clock.Hoy()
	cuota := &entity.Cuota{
		IDSocio:          socio.ID,
		FechaPago:        hoy,
		Monto:            monto.Round(2),
		MedioPago:        in.MedioPago,
		CantidadCuotas:   cantidad,
		Descuento:        in.Descuento.Round(2),
		MontoTotal:       total.Round(2),
		FechaVencimiento: membresia.ProximoVencimiento(hoy),
	}
	if in.Comprobante != nil {
		cuota.Comprobante = sql.NullInt64{Int64: *in.Comprobante, Valid: true}
	}

	err = uc.tx.Run(ctx, func(clientes repository.ClienteRepository, pagos repository.PagoRepository) error {
		if _, err := pagos.CreateCuota(ctx, cuota); err != nil {
			return err
		}
		n, err := clientes.UpdateVencimientoSocio(ctx, socio.ID, cuota.FechaVencimiento)
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("socio_id", socio.ID).Msg("registrar cuota")
		return nil, err
	}
	log.Info().
		Int64("socio_id", socio.ID).
		Str("monto_total", cuota.MontoTotal.StringFixed(2)).
		Str("vence", cuota.FechaVencimiento.String()).
		Msg("cuota registrada")
	return toCuotaResponse(cuota), nil
}

// UltimaCuota la cuota más reciente del socio. ErrNotFound si nunca pagó.
func (uc *PagoUseCase) UltimaCuota(ctx context.Context, clienteID int64) (*dto.CuotaResponse, error) {
	if _, err := uc.socio(ctx, clienteID); err != nil {
		return nil, err
	}
	c, err := uc.pagos.GetUltimaCuota(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCuotaResponse(c), nil
}

// HistorialCuotas cuotas del socio, más reciente primero.
func (uc *PagoUseCase) HistorialCuotas(ctx context.Context, clienteID int64) ([]dto.CuotaResponse, error) {
	if _, err := uc.socio(ctx, clienteID); err != nil {
		return nil, err
	}
	list, err := uc.pagos.ListCuotas(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CuotaResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCuotaResponse(c))
	}
	return out, nil
}

// RegistrarPagoActividad cobra una actividad a un no socio. El monto es el costo vigente de la
// actividad y el acceso vence el mismo día del pago.
func (uc *PagoUseCase) RegistrarPagoActividad(ctx context.Context, in dto.RegistrarPagoActividadRequest) (*dto.RegistroActividadResponse, error) {
	c, err := uc.clientes.GetByID(ctx, in.ClienteID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	socio, err := uc.clientes.GetSocio(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if socio != nil {
		return nil, domain.ErrNoEsNoSocio
	}
	actividad, err := uc.actividades.GetByID(ctx, in.ActividadID)
	if err != nil {
		return nil, err
	}
	if actividad == nil {
		return nil, fmt.Errorf("%w: actividad %d", domain.ErrNotFound, in.ActividadID)
	}

	hoy := uc.clock.Hoy()
	reg := &entity.RegistroActividad{
		IDCliente:       c.ID,
		IDActividad:     actividad.ID,
		FechaPago:       hoy,
		Monto:           actividad.Costo,
		MedioPago:       in.MedioPago,
		FechaExpiracion: hoy,
	}
	if _, err := uc.pagos.CreateRegistroActividad(ctx, reg); err != nil {
		return nil, err
	}
	log.Info().Int64("cliente_id", c.ID).Str("actividad", actividad.Nombre).Msg("pago de actividad registrado")
	out := toRegistroResponse(reg, actividad.Nombre)
	return &out, nil
}

// HistorialActividades pagos de actividades del cliente, más reciente primero.
func (uc *PagoUseCase) HistorialActividades(ctx context.Context, clienteID int64) ([]dto.RegistroActividadResponse, error) {
	c, err := uc.clientes.GetByID(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.pagos.ListRegistrosActividad(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	nombres := map[int64]string{}
	if len(list) > 0 {
		actividades, err := uc.actividades.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, a := range actividades {
			nombres[a.ID] = a.Nombre
		}
	}
	out := make([]dto.RegistroActividadResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRegistroResponse(r, nombres[r.IDActividad]))
	}
	return out, nil
}

// socio devuelve el socio del cliente; ErrNotFound si el cliente no existe, ErrNoEsSocio si no es socio.
func (uc *PagoUseCase) socio(ctx context.Context, clienteID int64) (*entity.Socio, error) {
	s, err := uc.clientes.GetSocio(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}
	c, err := uc.clientes.GetByID(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrNoEsSocio
}
