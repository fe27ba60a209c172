package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/club-deportivo-api/internal/application/dto"
	"github.com/jhoicas/club-deportivo-api/internal/domain"
	"github.com/jhoicas/club-deportivo-api/internal/domain/entity"
	"github.com/jhoicas/club-deportivo-api/internal/domain/repository"
	"github.com/jhoicas/club-deportivo-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: alta de operadores y login.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarios repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, jwtCfg: jwtCfg}
}

// CrearUsuario hashea la clave con bcrypt y persiste el operador. Rol por defecto: recepcion.
// Devuelve ErrDuplicate si el nombre de usuario ya existe.
func (uc *AuthUseCase) CrearUsuario(ctx context.Context, in dto.CrearUsuarioRequest) (*dto.UserResponse, error) {
	nombre := strings.TrimSpace(in.Usuario)
	if nombre == "" || in.Clave == "" {
		return nil, fmt.Errorf("%w: usuario y clave son requeridos", domain.ErrInvalidInput)
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolRecepcion
	}
	if rol != entity.RolAdministrador && rol != entity.RolRecepcion {
		return nil, fmt.Errorf("%w: rol %q desconocido", domain.ErrInvalidInput, rol)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Clave), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.Usuario{Usuario: nombre, ClaveHash: string(hash), Rol: rol}
	if _, err := uc.usuarios.Create(ctx, u); err != nil {
		return nil, err
	}
	log.Info().Str("usuario", u.Usuario).Str("rol", u.Rol).Msg("usuario creado")
	return toUserResponse(u), nil
}

// Login verifica usuario/clave, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarios.GetByUsuario(ctx, strings.TrimSpace(in.Usuario))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.ClaveHash), []byte(in.Clave)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Usuario, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *toUserResponse(u),
	}, nil
}

func toUserResponse(u *entity.Usuario) *dto.UserResponse {
	return &dto.UserResponse{ID: u.ID, Usuario: u.Usuario, Rol: u.Rol}
}
