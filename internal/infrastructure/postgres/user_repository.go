package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/club-deportivo-api/internal/domain"
	"github.com/jhoicas/club-deportivo-api/internal/domain/entity"
	"github.com/jhoicas/club-deportivo-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) (int64, error) {
	var id int64
	err := sqlx.GetContext(ctx, r.q, &id,
		`INSERT INTO usuarios (usuario, clave_hash, rol) VALUES ($1, $2, $3) RETURNING id`,
		u.Usuario, u.ClaveHash, u.Rol,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.IDInvalido, domain.ErrDuplicate
		}
		return entity.IDInvalido, fmt.Errorf("insert usuario: %w", err)
	}
	u.ID = id
	return id, nil
}

// GetByUsuario obtiene un usuario por nombre de login.
func (r *UsuarioRepo) GetByUsuario(ctx context.Context, usuario string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := sqlx.GetContext(ctx, r.q, &u,
		`SELECT id, usuario, clave_hash, rol FROM usuarios WHERE usuario = $1`, usuario)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
