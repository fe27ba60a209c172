package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/club-deportivo-api/internal/application/dto"
	"github.com/jhoicas/club-deportivo-api/internal/domain"
	"github.com/jhoicas/club-deportivo-api/internal/domain/entity"
	"github.com/jhoicas/club-deportivo-api/internal/domain/repository"
)

// ActividadUseCase casos de uso CRUD para actividades.
type ActividadUseCase struct {
	repo repository.ActividadRepository
}

// NewActividadUseCase construye el caso de uso.
func NewActividadUseCase(repo repository.ActividadRepository) *ActividadUseCase {
	return &ActividadUseCase{repo: repo}
}

// Create crea una actividad.
func (uc *ActividadUseCase) Create(ctx context.Context, in dto.ActividadRequest) (*dto.ActividadResponse, error) {
	a, err := actividadFromRequest(in)
	if err != nil {
		return nil, err
	}
	if _, err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	out := toActividadResponse(a)
	return &out, nil
}

// Get obtiene una actividad por ID.
func (uc *ActividadUseCase) Get(ctx context.Context, id int64) (*dto.ActividadResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	out := toActividadResponse(a)
	return &out, nil
}

// List lista las actividades por nombre.
func (uc *ActividadUseCase) List(ctx context.Context) ([]dto.ActividadResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActividadResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toActividadResponse(a))
	}
	return out, nil
}

// Update reemplaza nombre y costo.
func (uc *ActividadUseCase) Update(ctx context.Context, id int64, in dto.ActividadRequest) (*dto.ActividadResponse, error) {
	a, err := actividadFromRequest(in)
	if err != nil {
		return nil, err
	}
	a.ID = id
	n, err := uc.repo.Update(ctx, a)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrNotFound
	}
	out := toActividadResponse(a)
	return &out, nil
}

// Delete elimina la actividad. Falla con ErrActividadEnUso si ya tiene pagos.
func (uc *ActividadUseCase) Delete(ctx context.Context, id int64) error {
	n, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func actividadFromRequest(in dto.ActividadRequest) (*entity.Actividad, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrInvalidInput)
	}
	if in.Costo.IsNegative() {
		return nil, fmt.Errorf("%w: costo no puede ser negativo", domain.ErrInvalidInput)
	}
	return &entity.Actividad{Nombre: nombre, Costo: in.Costo.Round(2)}, nil
}
