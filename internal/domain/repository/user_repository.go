package repository

import (
	"context"

	"github.com/jhoicas/club-deportivo-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para los operadores del sistema.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entity.Usuario) (int64, error)
	GetByUsuario(ctx context.Context, usuario string) (*entity.Usuario, error)
}
