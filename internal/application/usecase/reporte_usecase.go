package usecase

import (
	"context"

	"github.com/jhoicas/club-deportivo-api/internal/application/dto"
	"github.com/jhoicas/club-deportivo-api/internal/application/ports"
	"github.com/jhoicas/club-deportivo-api/internal/domain/repository"
)

// ReporteUseCase reporte de socios morosos.
type ReporteUseCase struct {
	clientes repository.ClienteRepository
	clock    ports.Clock
	pdf      PDFGenerator
	club     string
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(clientes repository.ClienteRepository, clock ports.Clock, pdf PDFGenerator, club string) *ReporteUseCase {
	return &ReporteUseCase{clientes: clientes, clock: clock, pdf: pdf, club: club}
}

// Morosos socios sin baja con la cuota vencida a hoy, ordenados por apellido.
func (uc *ReporteUseCase) Morosos(ctx context.Context) (*dto.ReporteMorososResponse, error) {
	hoy := uc.clock.Hoy()
	items, err := uc.clientes.ListMorosos(ctx, hoy)
	if err != nil {
		return nil, err
	}
	out := &dto.ReporteMorososResponse{
		Fecha:   hoy,
		Total:   len(items),
		Morosos: make([]dto.MorosoResponse, 0, len(items)),
	}
	for _, m := range items {
		out.Morosos = append(out.Morosos, dto.MorosoResponse{
			ClienteID:             m.ID,
			DNI:                   m.DNI,
			Nombre:                m.Nombre,
			Apellido:              m.Apellido,
			Telefono:              m.Telefono,
			FechaVencimientoCuota: m.FechaVencimientoCuota,
			DiasAtraso:            int(hoy.Time().Sub(m.FechaVencimientoCuota.Time()).Hours() / 24),
		})
	}
	return out, nil
}

// MorososPDF el mismo reporte en PDF.
func (uc *ReporteUseCase) MorososPDF(ctx context.Context) ([]byte, error) {
	reporte, err := uc.Morosos(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.MorososPDF(ctx, uc.club, *reporte)
}
