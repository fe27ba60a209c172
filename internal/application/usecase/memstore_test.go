package usecase_test

import (
	"context"
	"sort"

	"github.com/jhoicas/club-deportivo-api/internal/domain"
	"github.com/jhoicas/club-deportivo-api/internal/domain/entity"
	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
	"github.com/jhoicas/club-deportivo-api/internal/domain/membresia"
	"github.com/jhoicas/club-deportivo-api/internal/domain/repository"
)

// memStore base en memoria compartida por los tres repositorios de prueba.
type memStore struct {
	nextID      int64
	clientes    map[int64]entity.Cliente
	socios      map[int64]entity.Socio
	noSocios    map[int64]entity.NoSocio
	actividades map[int64]entity.Actividad
	cuotas      []entity.Cuota
	registros   []entity.RegistroActividad
}

func newMemStore() *memStore {
	return &memStore{
		clientes:    map[int64]entity.Cliente{},
		socios:      map[int64]entity.Socio{},
		noSocios:    map[int64]entity.NoSocio{},
		actividades: map[int64]entity.Actividad{},
	}
}

func (s *memStore) id() int64 { s.nextID++; return s.nextID }

type memClientes struct{ s *memStore }
type memActividades struct{ s *memStore }
type memPagos struct{ s *memStore }

var (
	_ repository.ClienteRepository   = memClientes{}
	_ repository.ActividadRepository = memActividades{}
	_ repository.PagoRepository      = memPagos{}
)

func (r memClientes) Create(_ context.Context, c *entity.Cliente, socio *entity.Socio, noSocio *entity.NoSocio) (int64, error) {
	for _, o := range r.s.clientes {
		if o.DNI == c.DNI {
			return entity.IDInvalido, domain.ErrDuplicate
		}
	}
	c.ID = r.s.id()
	r.s.clientes[c.ID] = *c
	if socio != nil {
		socio.ID = c.ID
		r.s.socios[c.ID] = *socio
	} else if noSocio != nil {
		noSocio.ID = c.ID
		r.s.noSocios[c.ID] = *noSocio
	}
	return c.ID, nil
}

func (r memClientes) GetByID(_ context.Context, id int64) (*entity.Cliente, error) {
	c, ok := r.s.clientes[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r memClientes) GetByDNI(_ context.Context, dni int64) (*entity.Cliente, error) {
	for _, c := range r.s.clientes {
		if c.DNI == dni {
			return &c, nil
		}
	}
	return nil, nil
}

func (r memClientes) List(_ context.Context) ([]*entity.Cliente, error) {
	var out []*entity.Cliente
	for _, c := range r.s.clientes {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Apellido < out[j].Apellido })
	return out, nil
}

func (r memClientes) Update(_ context.Context, c *entity.Cliente) (int64, error) {
	if _, ok := r.s.clientes[c.ID]; !ok {
		return 0, nil
	}
	r.s.clientes[c.ID] = *c
	return 1, nil
}

func (r memClientes) GetSocio(_ context.Context, id int64) (*entity.Socio, error) {
	s, ok := r.s.socios[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r memClientes) ListSocios(_ context.Context) ([]*entity.Socio, error) {
	var out []*entity.Socio
	for _, s := range r.s.socios {
		s := s
		out = append(out, &s)
	}
	return out, nil
}

func (r memClientes) UpdateSocio(_ context.Context, s *entity.Socio) (int64, error) {
	if _, ok := r.s.socios[s.ID]; !ok {
		return 0, nil
	}
	r.s.socios[s.ID] = *s
	return 1, nil
}

func (r memClientes) UpdateVencimientoSocio(_ context.Context, id int64, v fecha.Fecha) (int64, error) {
	s, ok := r.s.socios[id]
	if !ok {
		return 0, nil
	}
	s.FechaVencimientoCuota = v
	r.s.socios[id] = s
	return 1, nil
}

func (r memClientes) ListMorosos(ctx context.Context, hoy fecha.Fecha) ([]repository.MorosoItem, error) {
	list, _ := r.List(ctx)
	var out []repository.MorosoItem
	for _, c := range list {
		s, ok := r.s.socios[c.ID]
		if ok && s.FechaBaja.IsZero() && membresia.EsMoroso(s.FechaVencimientoCuota, hoy) {
			out = append(out, repository.MorosoItem{Cliente: *c, FechaVencimientoCuota: s.FechaVencimientoCuota})
		}
	}
	return out, nil
}

func (r memActividades) Create(_ context.Context, a *entity.Actividad) (int64, error) {
	a.ID = r.s.id()
	r.s.actividades[a.ID] = *a
	return a.ID, nil
}

func (r memActividades) GetByID(_ context.Context, id int64) (*entity.Actividad, error) {
	a, ok := r.s.actividades[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r memActividades) List(_ context.Context) ([]*entity.Actividad, error) {
	var out []*entity.Actividad
	for _, a := range r.s.actividades {
		a := a
		out = append(out, &a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r memActividades) Update(_ context.Context, a *entity.Actividad) (int64, error) {
	if _, ok := r.s.actividades[a.ID]; !ok {
		return 0, nil
	}
	r.s.actividades[a.ID] = *a
	return 1, nil
}

func (r memActividades) Delete(_ context.Context, id int64) (int64, error) {
	for _, reg := range r.s.registros {
		if reg.IDActividad == id {
			return 0, domain.ErrActividadEnUso
		}
	}
	if _, ok := r.s.actividades[id]; !ok {
		return 0, nil
	}
	delete(r.s.actividades, id)
	return 1, nil
}

func (r memPagos) CreateCuota(_ context.Context, c *entity.Cuota) (int64, error) {
	c.ID = r.s.id()
	r.s.cuotas = append(r.s.cuotas, *c)
	return c.ID, nil
}

func (r memPagos) GetUltimaCuota(ctx context.Context, id int64) (*entity.Cuota, error) {
	list, _ := r.ListCuotas(ctx, id)
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (r memPagos) ListCuotas(_ context.Context, id int64) ([]*entity.Cuota, error) {
	var out []*entity.Cuota
	for i := len(r.s.cuotas) - 1; i >= 0; i-- {
		if c := r.s.cuotas[i]; c.IDSocio == id {
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r memPagos) CreateRegistroActividad(_ context.Context, reg *entity.RegistroActividad) (int64, error) {
	reg.ID = r.s.id()
	r.s.registros = append(r.s.registros, *reg)
	return reg.ID, nil
}

func (r memPagos) ListRegistrosActividad(_ context.Context, id int64) ([]*entity.RegistroActividad, error) {
	var out []*entity.RegistroActividad
	for i := len(r.s.registros) - 1; i >= 0; i-- {
		if reg := r.s.registros[i]; reg.IDCliente == id {
			out = append(out, &reg)
		}
	}
	return out, nil
}
