package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/club-deportivo-api/internal/application/dto"
	"github.com/jhoicas/club-deportivo-api/internal/domain/entity"
	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
	"github.com/jhoicas/club-deportivo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks de repositorios (testify/mock)
// ──────────────────────────────────────────────────────────────────────────────

type mockClientes struct{ mock.Mock }

func (m *mockClientes) Create(ctx context.Context, c *entity.Cliente, s *entity.Socio, ns *entity.NoSocio) (int64, error) {
	args := m.Called(ctx, c, s, ns)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockClientes) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Cliente)
	return c, args.Error(1)
}

func (m *mockClientes) GetByDNI(ctx context.Context, dni int64) (*entity.Cliente, error) {
	args := m.Called(ctx, dni)
	c, _ := args.Get(0).(*entity.Cliente)
	return c, args.Error(1)
}

func (m *mockClientes) List(ctx context.Context) ([]*entity.Cliente, error) {
	args := m.Called(ctx)
	l, _ := args.Get(0).([]*entity.Cliente)
	return l, args.Error(1)
}

func (m *mockClientes) Update(ctx context.Context, c *entity.Cliente) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockClientes) GetSocio(ctx context.Context, id int64) (*entity.Socio, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*entity.Socio)
	return s, args.Error(1)
}

func (m *mockClientes) ListSocios(ctx context.Context) ([]*entity.Socio, error) {
	args := m.Called(ctx)
	l, _ := args.Get(0).([]*entity.Socio)
	return l, args.Error(1)
}

func (m *mockClientes) UpdateSocio(ctx context.Context, s *entity.Socio) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockClientes) UpdateVencimientoSocio(ctx context.Context, id int64, v fecha.Fecha) (int64, error) {
	args := m.Called(ctx, id, v)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockClientes) ListMorosos(ctx context.Context, hoy fecha.Fecha) ([]repository.MorosoItem, error) {
	args := m.Called(ctx, hoy)
	l, _ := args.Get(0).([]repository.MorosoItem)
	return l, args.Error(1)
}

type mockActividades struct{ mock.Mock }

func (m *mockActividades) Create(ctx context.Context, a *entity.Actividad) (int64, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockActividades) GetByID(ctx context.Context, id int64) (*entity.Actividad, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*entity.Actividad)
	return a, args.Error(1)
}

func (m *mockActividades) List(ctx context.Context) ([]*entity.Actividad, error) {
	args := m.Called(ctx)
	l, _ := args.Get(0).([]*entity.Actividad)
	return l, args.Error(1)
}

func (m *mockActividades) Update(ctx context.Context, a *entity.Actividad) (int64, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockActividades) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockPagos struct{ mock.Mock }

func (m *mockPagos) CreateCuota(ctx context.Context, c *entity.Cuota) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPagos) GetUltimaCuota(ctx context.Context, id int64) (*entity.Cuota, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Cuota)
	return c, args.Error(1)
}

func (m *mockPagos) ListCuotas(ctx context.Context, id int64) ([]*entity.Cuota, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).([]*entity.Cuota)
	return l, args.Error(1)
}

func (m *mockPagos) CreateRegistroActividad(ctx context.Context, r *entity.RegistroActividad) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPagos) ListRegistrosActividad(ctx context.Context, id int64) ([]*entity.RegistroActividad, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).([]*entity.RegistroActividad)
	return l, args.Error(1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dobles simples
// ──────────────────────────────────────────────────────────────────────────────

type fixedClock struct{ hoy fecha.Fecha }

func (c fixedClock) Hoy() fecha.Fecha { return c.hoy }

func clockEn(s string) fixedClock { return fixedClock{hoy: fecha.MustParse(s)} }

// txDirecto ejecuta fn sobre los mismos repositorios, sin transacción real.
type txDirecto struct {
	clientes repository.ClienteRepository
	pagos    repository.PagoRepository
}

func (t txDirecto) Run(_ context.Context, fn func(repository.ClienteRepository, repository.PagoRepository) error) error {
	return fn(t.clientes, t.pagos)
}

type fakePDF struct {
	credencial *dto.CredencialResponse
	reporte    *dto.ReporteMorososResponse
}

func (f *fakePDF) CredencialPDF(_ context.Context, _ string, c dto.CredencialResponse) ([]byte, error) {
	f.credencial = &c
	return []byte("%PDF-credencial"), nil
}

func (f *fakePDF) MorososPDF(_ context.Context, _ string, r dto.ReporteMorososResponse) ([]byte, error) {
	f.reporte = &r
	return []byte("%PDF-morosos"), nil
}
