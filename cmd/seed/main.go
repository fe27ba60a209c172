// seed carga los datos de prueba del club o importa clientes desde un CSV.
//
// Uso:
//
//	go run ./cmd/seed                                  # usuario admin, socios, no socios y actividades de prueba
//	go run ./cmd/seed --csv clientes.csv --encoding latin1 --sep ';'
//	go run ./cmd/seed --csv historico.csv --fecha 2024-03-01    # fecha de alta fija para la carga
//
// Es idempotente: los DNI y usuarios existentes se saltean.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/jhoicas/club-deportivo-api/internal/application/auth"
	"github.com/jhoicas/club-deportivo-api/internal/application/dto"
	"github.com/jhoicas/club-deportivo-api/internal/application/ports"
	"github.com/jhoicas/club-deportivo-api/internal/domain/entity"
	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
	"github.com/jhoicas/club-deportivo-api/internal/domain/membresia"
	"github.com/jhoicas/club-deportivo-api/internal/domain/repository"
	"github.com/jhoicas/club-deportivo-api/internal/infrastructure/clock"
	"github.com/jhoicas/club-deportivo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/club-deportivo-api/pkg/config"
	"github.com/jhoicas/club-deportivo-api/pkg/logger"
)

func main() {
	csvPath := pflag.String("csv", "", "archivo CSV de clientes a importar (vacío = datos de prueba)")
	codificacion := pflag.String("encoding", "latin1", "codificación del CSV: utf8, latin1, windows1252")
	sep := pflag.String("sep", ";", "separador de columnas del CSV")
	fechaCarga := pflag.String("fecha", "", "fecha de alta de los clientes importados, YYYY-MM-DD (vacío = hoy)")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	db := postgres.Open(pool)
	defer db.Close()

	if err := postgres.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	clientes := postgres.NewClienteRepository(db)

	if *csvPath != "" {
		hoy, err := relojCarga(*fechaCarga, cfg.App.Timezone)
		if err != nil {
			log.Fatal().Err(err).Msg("fecha de carga")
		}
		sepRunes := []rune(*sep)
		if len(sepRunes) != 1 {
			log.Fatal().Str("sep", *sep).Msg("el separador debe ser un único carácter")
		}
		if err := importarCSV(ctx, clientes, *csvPath, *codificacion, sepRunes[0], hoy.Hoy()); err != nil {
			log.Fatal().Err(err).Msg("importar CSV")
		}
		return
	}

	authUC := auth.NewAuthUseCase(postgres.NewUsuarioRepository(db), auth.JWTConfig{Secret: cfg.JWT.Secret})
	if err := seedDemo(ctx, authUC, clientes, postgres.NewActividadRepository(db)); err != nil {
		log.Fatal().Err(err).Msg("datos de prueba")
	}
}

func relojCarga(fijada, timezone string) (ports.Clock, error) {
	if fijada == "" {
		return clock.NewSystemClock(timezone)
	}
	f := fecha.Parse(fijada)
	if !f.Valid {
		return nil, fmt.Errorf("--fecha %q no es YYYY-MM-DD", fijada)
	}
	return clock.Fixed(f), nil
}

// Datos de prueba: 6 socios al día, 4 morosos y 5 no socios.
var (
	vencimientoActivo = fecha.MustParse("2026-06-30")
	vencimientoMoroso = fecha.MustParse("2025-06-30")
	altaDemo          = fecha.MustParse("2024-01-01")
)

type clienteDemo struct {
	nombre, apellido string
	dni              int64
	vence            fecha.Fecha
	socio            bool
}

var clientesDemo = []clienteDemo{
	{"Ana", "Gomez", 11111111, vencimientoActivo, true},
	{"Luis", "Perez", 22222222, vencimientoActivo, true},
	{"Maria", "Lopez", 33333333, vencimientoActivo, true},
	{"Carlos", "Diaz", 44444444, vencimientoActivo, true},
	{"Elena", "Ruiz", 55555555, vencimientoActivo, true},
	{"Juan", "Mendez", 66666666, vencimientoActivo, true},
	{"Sofia", "Castro", 77777777, vencimientoMoroso, true},
	{"Pedro", "Gil", 88888888, vencimientoMoroso, true},
	{"Laura", "Vidal", 99999999, vencimientoMoroso, true},
	{"Andres", "Rojas", 10101010, vencimientoMoroso, true},
	{"Marta", "Nuñez", 11122233, fecha.Fecha{}, false},
	{"Diego", "Sosa", 22334455, fecha.Fecha{}, false},
	{"Paula", "Vazquez", 33445566, fecha.Fecha{}, false},
	{"Javier", "Morales", 44556677, fecha.Fecha{}, false},
	{"Noelia", "Flores", 55667788, fecha.Fecha{}, false},
}

var actividadesDemo = []struct {
	nombre string
	costo  string
}{
	{"Natación", "1800.00"},
	{"Fútbol", "1200.00"},
	{"Tenis", "2000.00"},
	{"Yoga", "1500.00"},
}

func seedDemo(ctx context.Context, authUC *auth.AuthUseCase, clientes repository.ClienteRepository, actividades repository.ActividadRepository) error {
	if _, err := authUC.CrearUsuario(ctx, dto.CrearUsuarioRequest{Usuario: "admin", Clave: "12345", Rol: entity.RolAdministrador}); err != nil {
		log.Warn().Err(err).Msg("usuario admin no creado")
	}

	creados := 0
	for _, d := range clientesDemo {
		c := &entity.Cliente{
			DNI:             d.dni,
			Nombre:          d.nombre,
			Apellido:        d.apellido,
			FechaNacimiento: fecha.MustParse("1990-01-01"),
			Direccion:       "Calle Falsa 123",
			Telefono:        "1155551234",
			AptoFisico:      true,
			Asociarse:       d.socio,
			FechaAlta:       altaDemo,
		}
		ok, err := altaSiNoExiste(ctx, clientes, c, entity.Socio{
			FechaInscripcion:      altaDemo,
			FechaVencimientoCuota: d.vence,
			CarnetEntregado:       true,
		})
		if err != nil {
			return err
		}
		if ok {
			creados++
		}
	}
	log.Info().Int("creados", creados).Int("total", len(clientesDemo)).Msg("clientes de prueba")

	existentes, err := actividades.List(ctx)
	if err != nil {
		return err
	}
	nombres := map[string]bool{}
	for _, a := range existentes {
		nombres[a.Nombre] = true
	}
	for _, a := range actividadesDemo {
		if nombres[a.nombre] {
			continue
		}
		if _, err := actividades.Create(ctx, &entity.Actividad{Nombre: a.nombre, Costo: decimal.RequireFromString(a.costo)}); err != nil {
			return fmt.Errorf("actividad %s: %w", a.nombre, err)
		}
	}
	return nil
}

// altaSiNoExiste crea el cliente con su subtipo salvo que el DNI ya esté cargado.
// El carnet de un socio nuevo es id * 100.
func altaSiNoExiste(ctx context.Context, clientes repository.ClienteRepository, c *entity.Cliente, socio entity.Socio) (bool, error) {
	existente, err := clientes.GetByDNI(ctx, c.DNI)
	if err != nil {
		return false, err
	}
	if existente != nil {
		return false, nil
	}
	m := entity.NuevaMembresia(c.Asociarse, socio)
	id, err := clientes.Create(ctx, c, m.Socio, m.NoSocio)
	if err != nil {
		return false, fmt.Errorf("cliente dni %d: %w", c.DNI, err)
	}
	if m.Socio != nil {
		m.Socio.NumeroCarnet = id * 100
		if _, err := clientes.UpdateSocio(ctx, m.Socio); err != nil {
			return false, err
		}
	}
	return true, nil
}

func importarCSV(ctx context.Context, clientes repository.ClienteRepository, path, codificacion string, sep rune, hoy fecha.Fecha) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	filas, errs, err := leerClientesCSV(f, codificacion, sep)
	if err != nil {
		return err
	}
	for _, e := range errs {
		log.Warn().Err(e).Msg("fila descartada")
	}

	creados := 0
	for _, fila := range filas {
		vence := fila.Vencimiento
		if fila.Asociarse && !vence.Valid {
			vence = membresia.ProximoVencimiento(hoy)
		}
		ok, err := altaSiNoExiste(ctx, clientes, &entity.Cliente{
			DNI:             fila.DNI,
			Nombre:          fila.Nombre,
			Apellido:        fila.Apellido,
			FechaNacimiento: fila.FechaNacimiento,
			Direccion:       fila.Direccion,
			Telefono:        fila.Telefono,
			Asociarse:       fila.Asociarse,
			FechaAlta:       hoy,
		}, entity.Socio{FechaInscripcion: hoy, FechaVencimientoCuota: vence})
		if err != nil {
			log.Warn().Err(err).Int("linea", fila.Linea).Msg("cliente no importado")
			continue
		}
		if ok {
			creados++
		}
	}
	log.Info().
		Str("archivo", path).
		Int("filas", len(filas)).
		Int("creados", creados).
		Int("descartadas", len(errs)).
		Msg("importación terminada")
	return nil
}
