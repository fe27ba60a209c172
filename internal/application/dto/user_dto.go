package dto

// LoginRequest credenciales del operador.
type LoginRequest struct {
	Usuario string `json:"usuario" validate:"required"`
	Clave   string `json:"clave" validate:"required"`
}

// CrearUsuarioRequest alta de operador (la clave se hashea en el use case).
type CrearUsuarioRequest struct {
	Usuario string `json:"usuario" validate:"required,min=3,max=50"`
	Clave   string `json:"clave" validate:"required,min=5"`
	Rol     string `json:"rol" validate:"omitempty,oneof=administrador recepcion"`
}

// UserResponse salida de un usuario (sin clave).
type UserResponse struct {
	ID      int64  `json:"id"`
	Usuario string `json:"usuario"`
	Rol     string `json:"rol"`
}

// LoginResponse token JWT + usuario.
type LoginResponse struct {
	Token   string       `json:"token"`
	Usuario UserResponse `json:"usuario"`
}
