package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/club-deportivo-api/internal/application/analytics"
	"github.com/jhoicas/club-deportivo-api/internal/application/auth"
	"github.com/jhoicas/club-deportivo-api/internal/application/usecase"
	"github.com/jhoicas/club-deportivo-api/internal/infrastructure/clock"
	infrapdf "github.com/jhoicas/club-deportivo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/club-deportivo-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/club-deportivo-api/internal/interfaces/http"
	"github.com/jhoicas/club-deportivo-api/pkg/config"
	"github.com/jhoicas/club-deportivo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("club", cfg.Club.Nombre).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	db := postgres.Open(pool)
	defer db.Close()

	if cfg.DB.Migrate {
		if err := postgres.RunMigrations(db); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	hoy, err := clock.NewSystemClock(cfg.App.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.App.Timezone).Msg("zona horaria")
	}

	clienteRepo := postgres.NewClienteRepository(db)
	actividadRepo := postgres.NewActividadRepository(db)
	pagoRepo := postgres.NewPagoRepository(db)
	usuarioRepo := postgres.NewUsuarioRepository(db)
	resumenRepo := postgres.NewResumenRepository(db)
	txRunner := postgres.NewTxRunner(db)

	// PDF: credenciales y reporte de morosos
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	clienteUC := usecase.NewClienteUseCase(clienteRepo, actividadRepo, pagoRepo, hoy)
	actividadUC := usecase.NewActividadUseCase(actividadRepo)
	pagoUC := usecase.NewPagoUseCase(txRunner, clienteRepo, actividadRepo, pagoRepo, hoy, cfg.Club.CuotaMensual)
	reporteUC := usecase.NewReporteUseCase(clienteRepo, hoy, pdfGenerator, cfg.Club.Nombre)
	credencialUC := usecase.NewCredencialUseCase(clienteRepo, hoy, pdfGenerator, cfg.Club.Nombre)
	resumenUC := analytics.NewResumenUseCase(resumenRepo, clienteRepo, hoy)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger())

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.DocsPath != "" {
		if _, err := os.Stat(cfg.App.DocsPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.App.DocsPath,
				Path:     "docs",
				Title:    cfg.App.Name,
			}))
		} else {
			log.Warn().Str("path", cfg.App.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ClienteUC:    clienteUC,
		ActividadUC:  actividadUC,
		PagoUC:       pagoUC,
		ReporteUC:    reporteUC,
		CredencialUC: credencialUC,
		ResumenUC:    resumenUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
