package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrActividadEnUso     = errors.New("la actividad tiene pagos registrados")
	ErrReferenciaInvalida = errors.New("referencia a un registro inexistente")
	ErrNoEsSocio          = errors.New("el cliente no es socio")
	ErrNoEsNoSocio        = errors.New("el cliente es socio, no paga por actividad")
)
