package entity

// Roles válidos para Usuario.
const (
	RolAdministrador = "administrador"
	RolRecepcion     = "recepcion"
)

// Usuario operador del sistema (login del personal del club).
type Usuario struct {
	ID        int64  `db:"id"`
	Usuario   string `db:"usuario"`
	ClaveHash string `db:"clave_hash"` // bcrypt, nunca la clave en texto plano
	Rol       string `db:"rol"`
}
