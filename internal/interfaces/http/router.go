package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/club-deportivo-api/internal/application/analytics"
	"github.com/jhoicas/club-deportivo-api/internal/application/auth"
	"github.com/jhoicas/club-deportivo-api/internal/application/usecase"
	"github.com/jhoicas/club-deportivo-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ClienteUC    *usecase.ClienteUseCase
	ActividadUC  *usecase.ActividadUseCase
	PagoUC       *usecase.PagoUseCase
	ReporteUC    *usecase.ReporteUseCase
	CredencialUC *usecase.CredencialUseCase
	ResumenUC    *analytics.ResumenUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", Health)
	app.Get("/metrics", Metrics())

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	soloAdmin := RequireRole(entity.RolAdministrador)

	protected.Post("/usuarios", soloAdmin, authHandler.CrearUsuario)

	clienteHandler := NewClienteHandler(deps.ClienteUC)
	pagoHandler := NewPagoHandler(deps.PagoUC)
	reporteHandler := NewReporteHandler(deps.ReporteUC, deps.CredencialUC, deps.ResumenUC)

	clientes := protected.Group("/clientes")
	clientes.Get("/", clienteHandler.List)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/dni/:dni", clienteHandler.BuscarPorDNI)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Put("/:id/socio", clienteHandler.ActualizarSocio)
	clientes.Get("/:id/credencial", reporteHandler.Credencial)
	clientes.Get("/:id/credencial/pdf", reporteHandler.CredencialPDF)
	clientes.Get("/:id/cuotas", pagoHandler.HistorialCuotas)
	clientes.Get("/:id/cuotas/ultima", pagoHandler.UltimaCuota)
	clientes.Get("/:id/actividades", pagoHandler.HistorialActividades)

	// Actividades: lectura para todos, escritura solo administrador
	actividadHandler := NewActividadHandler(deps.ActividadUC)
	actividades := protected.Group("/actividades")
	actividades.Get("/", actividadHandler.List)
	actividades.Get("/:id", actividadHandler.GetByID)
	actividades.Post("/", soloAdmin, actividadHandler.Create)
	actividades.Put("/:id", soloAdmin, actividadHandler.Update)
	actividades.Delete("/:id", soloAdmin, actividadHandler.Delete)

	pagos := protected.Group("/pagos")
	pagos.Post("/cuotas", pagoHandler.RegistrarCuota)
	pagos.Post("/actividades", pagoHandler.RegistrarPagoActividad)

	reportes := protected.Group("/reportes")
	reportes.Get("/morosos", reporteHandler.Morosos)
	reportes.Get("/morosos/pdf", reporteHandler.MorososPDF)
	reportes.Get("/resumen", soloAdmin, reporteHandler.Resumen)
}
