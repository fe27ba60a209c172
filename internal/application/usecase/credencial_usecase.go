package usecase

import (
	"context"

	"github.com/jhoicas/club-deportivo-api/internal/application/dto"
	"github.com/jhoicas/club-deportivo-api/internal/application/ports"
	"github.com/jhoicas/club-deportivo-api/internal/domain"
	"github.com/jhoicas/club-deportivo-api/internal/domain/entity"
	"github.com/jhoicas/club-deportivo-api/internal/domain/membresia"
	"github.com/jhoicas/club-deportivo-api/internal/domain/repository"
)

// CredencialUseCase datos del carnet del cliente.
type CredencialUseCase struct {
	clientes repository.ClienteRepository
	clock    ports.Clock
	pdf      PDFGenerator
	club     string
}

// NewCredencialUseCase construye el caso de uso.
func NewCredencialUseCase(clientes repository.ClienteRepository, clock ports.Clock, pdf PDFGenerator, club string) *CredencialUseCase {
	return &CredencialUseCase{clientes: clientes, clock: clock, pdf: pdf, club: club}
}

// Credencial arma la credencial con el estado de cuota a hoy.
func (uc *CredencialUseCase) Credencial(ctx context.Context, clienteID int64) (*dto.CredencialResponse, error) {
	c, err := uc.clientes.GetByID(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	socio, err := uc.clientes.GetSocio(ctx, clienteID)
	if err != nil {
		return nil, err
	}

	hoy := uc.clock.Hoy()
	out := &dto.CredencialResponse{
		Club:           uc.club,
		ClienteID:      c.ID,
		NombreCompleto: c.Nombre + " " + c.Apellido,
		DNI:            c.DNI,
		Tipo:           string(entity.TipoNoSocio),
		Estado:         string(membresia.Evaluar(socio, hoy)),
		FechaEmision:   hoy,
	}
	if socio != nil {
		out.Tipo = string(entity.TipoSocio)
		out.NumeroCarnet = socio.NumeroCarnet
		out.FechaVencimiento = socio.FechaVencimientoCuota
	}
	return out, nil
}

// CredencialPDF la credencial en PDF.
func (uc *CredencialUseCase) CredencialPDF(ctx context.Context, clienteID int64) ([]byte, error) {
	cred, err := uc.Credencial(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.CredencialPDF(ctx, uc.club, *cred)
}
