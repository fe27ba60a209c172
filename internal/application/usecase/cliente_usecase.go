package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/club-deportivo-api/internal/application/dto"
	"github.com/jhoicas/club-deportivo-api/internal/application/ports"
	"github.com/jhoicas/club-deportivo-api/internal/domain"
	"github.com/jhoicas/club-deportivo-api/internal/domain/entity"
	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
	"github.com/jhoicas/club-deportivo-api/internal/domain/membresia"
	"github.com/jhoicas/club-deportivo-api/internal/domain/repository"
)

// ClienteUseCase alta, consulta y modificación de clientes (socios y no socios).
type ClienteUseCase struct {
	clientes    repository.ClienteRepository
	actividades repository.ActividadRepository
	pagos       repository.PagoRepository
	clock       ports.Clock
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(
	clientes repository.ClienteRepository,
	actividades repository.ActividadRepository,
	pagos repository.PagoRepository,
	clock ports.Clock,
) *ClienteUseCase {
	return &ClienteUseCase{clientes: clientes, actividades: actividades, pagos: pagos, clock: clock}
}

// Create da de alta el cliente y su subtipo. Fecha de alta e inscripción = hoy.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	nacimiento, err := parseFechaOpcional("fecha_nacimiento", in.FechaNacimiento)
	if err != nil {
		return nil, err
	}
	vencimiento, err := parseFechaOpcional("fecha_vencimiento_cuota", in.FechaVencimientoCuota)
	if err != nil {
		return nil, err
	}
	if err := validarDatosBase(in.DNI, in.Nombre, in.Apellido); err != nil {
		return nil, err
	}

	hoy := uc.clock.Hoy()
	if vencimiento.IsZero() {
		vencimiento = membresia.ProximoVencimiento(hoy)
	}
	c := &entity.Cliente{
		DNI:             in.DNI,
		Nombre:          strings.TrimSpace(in.Nombre),
		Apellido:        strings.TrimSpace(in.Apellido),
		FechaNacimiento: nacimiento,
		Direccion:       strings.TrimSpace(in.Direccion),
		Telefono:        strings.TrimSpace(in.Telefono),
		AptoFisico:      in.AptoFisico,
		Asociarse:       in.Asociarse,
		FechaAlta:       hoy,
	}
	m := entity.NuevaMembresia(in.Asociarse, entity.Socio{
		FechaInscripcion:      hoy,
		FechaVencimientoCuota: vencimiento,
		NumeroCarnet:          in.NumeroCarnet,
		CarnetEntregado:       in.CarnetEntregado,
	})

	if _, err := uc.clientes.Create(ctx, c, m.Socio, m.NoSocio); err != nil {
		return nil, err
	}
	log.Info().Int64("cliente_id", c.ID).Str("tipo", string(m.Tipo)).Msg("cliente registrado")
	return toClienteResponse(c, m.Socio, hoy), nil
}

// Get detalle del cliente con su estado de cuota. ErrNotFound si no existe.
func (uc *ClienteUseCase) Get(ctx context.Context, id int64) (*dto.ClienteResponse, error) {
	c, socio, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toClienteResponse(c, socio, uc.clock.Hoy()), nil
}

// List todos los clientes, con el estado evaluado con la misma regla que el detalle.
func (uc *ClienteUseCase) List(ctx context.Context) ([]dto.ClienteResponse, error) {
	list, err := uc.clientes.List(ctx)
	if err != nil {
		return nil, err
	}
	socios, err := uc.clientes.ListSocios(ctx)
	if err != nil {
		return nil, err
	}
	porID := make(map[int64]*entity.Socio, len(socios))
	for _, s := range socios {
		porID[s.ID] = s
	}

	hoy := uc.clock.Hoy()
	out := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClienteResponse(c, porID[c.ID], hoy))
	}
	return out, nil
}

// Update modifica los datos base. Cambiar de socio a no socio (o al revés) no está permitido.
func (uc *ClienteUseCase) Update(ctx context.Context, id int64, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	nacimiento, err := parseFechaOpcional("fecha_nacimiento", in.FechaNacimiento)
	if err != nil {
		return nil, err
	}
	if err := validarDatosBase(in.DNI, in.Nombre, in.Apellido); err != nil {
		return nil, err
	}
	c, socio, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Asociarse != nil && *in.Asociarse != c.Asociarse {
		return nil, fmt.Errorf("%w: no se puede cambiar el tipo de membresía", domain.ErrConflict)
	}

	c.DNI = in.DNI
	c.Nombre = strings.TrimSpace(in.Nombre)
	c.Apellido = strings.TrimSpace(in.Apellido)
	c.FechaNacimiento = nacimiento
	c.Direccion = strings.TrimSpace(in.Direccion)
	c.Telefono = strings.TrimSpace(in.Telefono)
	c.AptoFisico = in.AptoFisico

	n, err := uc.clientes.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(c, socio, uc.clock.Hoy()), nil
}

// ActualizarSocio modifica carnet y baja de un socio.
func (uc *ClienteUseCase) ActualizarSocio(ctx context.Context, id int64, in dto.UpdateSocioRequest) (*dto.ClienteResponse, error) {
	baja, err := parseFechaOpcional("fecha_baja", in.FechaBaja)
	if err != nil {
		return nil, err
	}
	if in.NumeroCarnet < 0 {
		return nil, fmt.Errorf("%w: numero_carnet negativo", domain.ErrInvalidInput)
	}
	c, socio, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if socio == nil {
		return nil, domain.ErrNoEsSocio
	}
	socio.NumeroCarnet = in.NumeroCarnet
	socio.CarnetEntregado = in.CarnetEntregado
	socio.FechaBaja = baja

	n, err := uc.clientes.UpdateSocio(ctx, socio)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(c, socio, uc.clock.Hoy()), nil
}

// BuscarPorDNI búsqueda de la pantalla de pagos: cliente, estado y, según el tipo,
// la última cuota (socio) o las actividades disponibles (no socio).
func (uc *ClienteUseCase) BuscarPorDNI(ctx context.Context, dniText string) (*dto.BusquedaPagoResponse, error) {
	dni, err := strconv.ParseInt(strings.TrimSpace(dniText), 10, 64)
	if err != nil || dni <= 0 {
		return nil, fmt.Errorf("%w: el DNI debe ser numérico", domain.ErrInvalidInput)
	}
	c, err := uc.clientes.GetByDNI(ctx, dni)
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

	out := &dto.BusquedaPagoResponse{Cliente: *toClienteResponse(c, socio, uc.clock.Hoy())}
	if socio != nil {
		ultima, err := uc.pagos.GetUltimaCuota(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		if ultima != nil {
			out.UltimaCuota = toCuotaResponse(ultima)
		}
		return out, nil
	}

	actividades, err := uc.actividades.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range actividades {
		out.Actividades = append(out.Actividades, toActividadResponse(a))
	}
	return out, nil
}

func (uc *ClienteUseCase) load(ctx context.Context, id int64) (*entity.Cliente, *entity.Socio, error) {
	c, err := uc.clientes.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return nil, nil, domain.ErrNotFound
	}
	socio, err := uc.clientes.GetSocio(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return c, socio, nil
}

func validarDatosBase(dni int64, nombre, apellido string) error {
	if dni <= 0 {
		return fmt.Errorf("%w: dni debe ser positivo", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(nombre) == "" || strings.TrimSpace(apellido) == "" {
		return fmt.Errorf("%w: nombre y apellido son requeridos", domain.ErrInvalidInput)
	}
	return nil
}

// parseFechaOpcional vacío = fecha nula; texto no YYYY-MM-DD = ErrInvalidInput.
func parseFechaOpcional(campo, s string) (fecha.Fecha, error) {
	f := fecha.Parse(s)
	if !f.IsZero() && !f.Valid {
		return fecha.Fecha{}, fmt.Errorf("%w: %s debe tener formato AAAA-MM-DD", domain.ErrInvalidInput, campo)
	}
	return f, nil
}
