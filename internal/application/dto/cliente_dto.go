package dto

import "github.com/jhoicas/club-deportivo-api/internal/domain/fecha"

// CreateClienteRequest alta de cliente. Asociarse decide si se crea como socio o no socio.
type CreateClienteRequest struct {
	DNI                   int64  `json:"dni" validate:"required,gt=0"`
	Nombre                string `json:"nombre" validate:"required,max=100"`
	Apellido              string `json:"apellido" validate:"required,max=100"`
	FechaNacimiento       string `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
	Direccion             string `json:"direccion" validate:"max=200"`
	Telefono              string `json:"telefono" validate:"max=50"`
	AptoFisico            bool   `json:"apto_fisico"`
	Asociarse             bool   `json:"asociarse"`
	FechaVencimientoCuota string `json:"fecha_vencimiento_cuota" validate:"omitempty,datetime=2006-01-02"` // solo socios; vacío = hoy + 30 días
	NumeroCarnet          int64  `json:"numero_carnet" validate:"gte=0"`
	CarnetEntregado       bool   `json:"carnet_entregado"`
}

// UpdateClienteRequest modificación de los datos base. Asociarse solo se acepta si no cambia el tipo.
type UpdateClienteRequest struct {
	DNI             int64  `json:"dni" validate:"required,gt=0"`
	Nombre          string `json:"nombre" validate:"required,max=100"`
	Apellido        string `json:"apellido" validate:"required,max=100"`
	FechaNacimiento string `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
	Direccion       string `json:"direccion" validate:"max=200"`
	Telefono        string `json:"telefono" validate:"max=50"`
	AptoFisico      bool   `json:"apto_fisico"`
	Asociarse       *bool  `json:"asociarse,omitempty"`
}

// UpdateSocioRequest datos de carnet y baja del socio.
type UpdateSocioRequest struct {
	NumeroCarnet    int64  `json:"numero_carnet" validate:"gte=0"`
	CarnetEntregado bool   `json:"carnet_entregado"`
	FechaBaja       string `json:"fecha_baja" validate:"omitempty,datetime=2006-01-02"`
}

// SocioResponse datos de membresía de un socio.
type SocioResponse struct {
	FechaInscripcion      fecha.Fecha `json:"fecha_inscripcion"`
	FechaVencimientoCuota fecha.Fecha `json:"fecha_vencimiento_cuota"`
	NumeroCarnet          int64       `json:"numero_carnet"`
	CarnetEntregado       bool        `json:"carnet_entregado"`
	FechaBaja             fecha.Fecha `json:"fecha_baja"`
}

// ClienteResponse cliente con su tipo y estado de cuota calculado para hoy.
type ClienteResponse struct {
	ID              int64          `json:"id"`
	DNI             int64          `json:"dni"`
	Nombre          string         `json:"nombre"`
	Apellido        string         `json:"apellido"`
	FechaNacimiento fecha.Fecha    `json:"fecha_nacimiento"`
	Direccion       string         `json:"direccion"`
	Telefono        string         `json:"telefono"`
	AptoFisico      bool           `json:"apto_fisico"`
	FechaAlta       fecha.Fecha    `json:"fecha_alta"`
	Tipo            string         `json:"tipo"`   // SOCIO | NO_SOCIO
	Estado          string         `json:"estado"` // ACTIVO | MOROSO | NO_SOCIO | BAJA | FECHA_INVALIDA
	Socio           *SocioResponse `json:"socio,omitempty"`
}

// BusquedaPagoResponse resultado de buscar un cliente por DNI en la pantalla de pagos.
type BusquedaPagoResponse struct {
	Cliente     ClienteResponse     `json:"cliente"`
	UltimaCuota *CuotaResponse      `json:"ultima_cuota,omitempty"`
	Actividades []ActividadResponse `json:"actividades,omitempty"` // solo no socios
}
