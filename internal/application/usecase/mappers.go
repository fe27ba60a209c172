package usecase

import (
	"github.com/jhoicas/club-deportivo-api/internal/application/dto"
	"github.com/jhoicas/club-deportivo-api/internal/domain/entity"
	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
	"github.com/jhoicas/club-deportivo-api/internal/domain/membresia"
)

func toClienteResponse(c *entity.Cliente, socio *entity.Socio, hoy fecha.Fecha) *dto.ClienteResponse {
	out := &dto.ClienteResponse{
		ID:              c.ID,
		DNI:             c.DNI,
		Nombre:          c.Nombre,
		Apellido:        c.Apellido,
		FechaNacimiento: c.FechaNacimiento,
		Direccion:       c.Direccion,
		Telefono:        c.Telefono,
		AptoFisico:      c.AptoFisico,
		FechaAlta:       c.FechaAlta,
		Tipo:            string(entity.TipoNoSocio),
		Estado:          string(membresia.Evaluar(socio, hoy)),
	}
	if socio != nil {
		out.Tipo = string(entity.TipoSocio)
		out.Socio = &dto.SocioResponse{
			FechaInscripcion:      socio.FechaInscripcion,
			FechaVencimientoCuota: socio.FechaVencimientoCuota,
			NumeroCarnet:          socio.NumeroCarnet,
			CarnetEntregado:       socio.CarnetEntregado,
			FechaBaja:             socio.FechaBaja,
		}
	}
	return out
}

func toActividadResponse(a *entity.Actividad) dto.ActividadResponse {
	return dto.ActividadResponse{ID: a.ID, Nombre: a.Nombre, Costo: a.Costo}
}

func toCuotaResponse(c *entity.Cuota) *dto.CuotaResponse {
	out := &dto.CuotaResponse{
		ID:               c.ID,
		ClienteID:        c.IDSocio,
		FechaPago:        c.FechaPago,
		Monto:            c.Monto,
		MedioPago:        c.MedioPago,
		CantidadCuotas:   c.CantidadCuotas,
		Descuento:        c.Descuento,
		MontoTotal:       c.MontoTotal,
		FechaVencimiento: c.FechaVencimiento,
	}
	if c.Comprobante.Valid {
		n := c.Comprobante.Int64
		out.Comprobante = &n
	}
	return out
}

func toRegistroResponse(r *entity.RegistroActividad, actividad string) dto.RegistroActividadResponse {
	return dto.RegistroActividadResponse{
		ID:              r.ID,
		ClienteID:       r.IDCliente,
		ActividadID:     r.IDActividad,
		Actividad:       actividad,
		FechaPago:       r.FechaPago,
		Monto:           r.Monto,
		MedioPago:       r.MedioPago,
		FechaExpiracion: r.FechaExpiracion,
	}
}
