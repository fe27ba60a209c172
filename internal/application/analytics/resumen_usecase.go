// Package analytics contiene el resumen de caja y padrón del club.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/club-deportivo-api/internal/application/dto"
	"github.com/jhoicas/club-deportivo-api/internal/application/ports"
	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
	"github.com/jhoicas/club-deportivo-api/internal/domain/membresia"
	"github.com/jhoicas/club-deportivo-api/internal/domain/repository"
)

const resumenTopActividades = 5

// ResumenUseCase recaudación del día y del mes en curso, más el estado del padrón.
type ResumenUseCase struct {
	resumen  repository.ResumenRepository
	clientes repository.ClienteRepository
	clock    ports.Clock
}

// NewResumenUseCase construye el caso de uso.
func NewResumenUseCase(resumen repository.ResumenRepository, clientes repository.ClienteRepository, clock ports.Clock) *ResumenUseCase {
	return &ResumenUseCase{resumen: resumen, clientes: clientes, clock: clock}
}

// Resumen arma el tablero del día.
//
// Consultas en paralelo:
//  1. cuotas y actividades de hoy
//  2. cuotas y actividades del mes (día 1 a hoy)
//  3. top de actividades del mes
//  4. padrón: socios por estado y no socios
func (uc *ResumenUseCase) Resumen(ctx context.Context) (*dto.ResumenResponse, error) {
	hoy := uc.clock.Hoy()
	t := hoy.Time()
	inicioMes := fecha.New(t.Year(), t.Month(), 1)

	type topResult struct {
		top []repository.ActividadRanking
		err error
	}
	type padronResult struct {
		activos, morosos, bajas, noSocios int
		err                               error
	}

	hoyCh := make(chan recaudacionResult, 1)
	mesCh := make(chan recaudacionResult, 1)
	topCh := make(chan topResult, 1)
	padronCh := make(chan padronResult, 1)

	go func() { hoyCh <- uc.recaudacion(ctx, hoy, hoy) }()
	go func() { mesCh <- uc.recaudacion(ctx, inicioMes, hoy) }()
	go func() {
		top, err := uc.resumen.TopActividades(ctx, inicioMes, hoy, resumenTopActividades)
		topCh <- topResult{top, err}
	}()
	go func() {
		var p padronResult
		p.activos, p.morosos, p.bajas, p.noSocios, p.err = uc.padron(ctx, hoy)
		padronCh <- p
	}()

	dia := <-hoyCh
	mes := <-mesCh
	top := <-topCh
	padron := <-padronCh

	if dia.err != nil {
		return nil, fmt.Errorf("resumen: recaudación de hoy: %w", dia.err)
	}
	if mes.err != nil {
		return nil, fmt.Errorf("resumen: recaudación del mes: %w", mes.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("resumen: top actividades: %w", top.err)
	}
	if padron.err != nil {
		return nil, fmt.Errorf("resumen: padrón: %w", padron.err)
	}

	ranking := make([]dto.ActividadRankingResponse, 0, len(top.top))
	for _, a := range top.top {
		ranking = append(ranking, dto.ActividadRankingResponse{
			ActividadID: a.ActividadID,
			Nombre:      a.Nombre,
			Pagos:       a.Pagos,
			Total:       a.Total.Round(2),
		})
	}

	return &dto.ResumenResponse{
		Fecha:                  hoy,
		Periodo:                monthLabel(hoy),
		CuotasHoy:              dia.cuotas.Total.Round(2),
		ActividadesHoy:         dia.actividades.Total.Round(2),
		CuotasMes:              mes.cuotas.Total.Round(2),
		CantidadCuotasMes:      mes.cuotas.Cantidad,
		ActividadesMes:         mes.actividades.Total.Round(2),
		CantidadActividadesMes: mes.actividades.Cantidad,
		TotalMes:               mes.cuotas.Total.Add(mes.actividades.Total).Round(2),
		SociosActivos:          padron.activos,
		SociosMorosos:          padron.morosos,
		SociosBaja:             padron.bajas,
		NoSocios:               padron.noSocios,
		TopActividades:         ranking,
	}, nil
}

type recaudacionResult struct {
	cuotas      repository.Recaudacion
	actividades repository.Recaudacion
	err         error
}

func (uc *ResumenUseCase) recaudacion(ctx context.Context, desde, hasta fecha.Fecha) (r recaudacionResult) {
	r.cuotas, r.err = uc.resumen.RecaudacionCuotas(ctx, desde, hasta)
	if r.err != nil {
		return r
	}
	r.actividades, r.err = uc.resumen.RecaudacionActividades(ctx, desde, hasta)
	return r
}

// padron cuenta socios por estado. Los socios con fecha ilegible no suman en ninguna columna.
func (uc *ResumenUseCase) padron(ctx context.Context, hoy fecha.Fecha) (activos, morosos, bajas, noSocios int, err error) {
	socios, err := uc.clientes.ListSocios(ctx)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	clientes, err := uc.clientes.List(ctx)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	for _, s := range socios {
		switch membresia.Evaluar(s, hoy) {
		case membresia.EstadoActivo:
			activos++
		case membresia.EstadoMoroso:
			morosos++
		case membresia.EstadoBaja:
			bajas++
		}
	}
	noSocios = len(clientes) - len(socios)
	if noSocios < 0 {
		noSocios = 0
	}
	return activos, morosos, bajas, noSocios, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(f fecha.Fecha) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	t := f.Time()
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
