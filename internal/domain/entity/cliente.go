package entity

import "github.com/jhoicas/club-deportivo-api/internal/domain/fecha"

// IDInvalido valor centinela que devuelven las inserciones fallidas.
const IDInvalido int64 = -1

// Cliente representa a cualquier persona registrada en el club (socio o no socio).
type Cliente struct {
	ID              int64       `db:"id" json:"id"`
	DNI             int64       `db:"dni" json:"dni"` // único entre todos los clientes
	Nombre          string      `db:"nombre" json:"nombre"`
	Apellido        string      `db:"apellido" json:"apellido"`
	FechaNacimiento fecha.Fecha `db:"fecha_nacimiento" json:"fecha_nacimiento"`
	Direccion       string      `db:"direccion" json:"direccion"`
	Telefono        string      `db:"telefono" json:"telefono"`
	AptoFisico      bool        `db:"apto_fisico" json:"apto_fisico"`
	Asociarse       bool        `db:"asociarse" json:"asociarse"` // decide el subtipo al crear
	FechaAlta       fecha.Fecha `db:"fecha_alta" json:"fecha_alta"`
}

// NombreCompleto "Apellido, Nombre" como se muestra en los listados.
func (c *Cliente) NombreCompleto() string {
	return c.Apellido + ", " + c.Nombre
}

// Socio datos de membresía de un cliente asociado. Comparte el ID con Cliente.
type Socio struct {
	ID                    int64       `db:"id" json:"id"`
	FechaInscripcion      fecha.Fecha `db:"fecha_inscripcion" json:"fecha_inscripcion"`
	FechaVencimientoCuota fecha.Fecha `db:"fecha_vencimiento_cuota" json:"fecha_vencimiento_cuota"`
	NumeroCarnet          int64       `db:"numero_carnet" json:"numero_carnet"`
	CarnetEntregado       bool        `db:"carnet_entregado" json:"carnet_entregado"`
	FechaBaja             fecha.Fecha `db:"fecha_baja" json:"fecha_baja"`
}

// NoSocio cliente que paga por actividad. Comparte el ID con Cliente.
type NoSocio struct {
	ID        int64       `db:"id" json:"id"`
	FechaBaja fecha.Fecha `db:"fecha_baja" json:"fecha_baja"`
}

// TipoMembresia etiqueta del subtipo de un cliente.
type TipoMembresia string

const (
	TipoSocio   TipoMembresia = "SOCIO"
	TipoNoSocio TipoMembresia = "NO_SOCIO"
)

// Membresia unión etiquetada {Socio, NoSocio}: exactamente uno de los punteros es no nulo
// y coincide con Tipo.
type Membresia struct {
	Tipo    TipoMembresia
	Socio   *Socio
	NoSocio *NoSocio
}

// NuevaMembresia elige el subtipo según el flag asociarse del cliente.
func NuevaMembresia(asociarse bool, socio Socio) Membresia {
	if asociarse {
		return Membresia{Tipo: TipoSocio, Socio: &socio}
	}
	return Membresia{Tipo: TipoNoSocio, NoSocio: &NoSocio{}}
}
