package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/club-deportivo-api/internal/application/analytics"
	"github.com/jhoicas/club-deportivo-api/internal/application/usecase"
	"github.com/jhoicas/club-deportivo-api/internal/infrastructure/metrics"
)

// ReporteHandler reporte de morosos, resumen de caja y credenciales (JSON y PDF).
type ReporteHandler struct {
	reportes     *usecase.ReporteUseCase
	credenciales *usecase.CredencialUseCase
	resumen      *analytics.ResumenUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(reportes *usecase.ReporteUseCase, credenciales *usecase.CredencialUseCase, resumen *analytics.ResumenUseCase) *ReporteHandler {
	return &ReporteHandler{reportes: reportes, credenciales: credenciales, resumen: resumen}
}

// Morosos godoc
// @Summary      Socios con la cuota vencida a hoy
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReporteMorososResponse
// @Router       /api/reportes/morosos [get]
func (h *ReporteHandler) Morosos(c *fiber.Ctx) error {
	out, err := h.reportes.Morosos(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	metrics.SetSociosMorosos(out.Total)
	return c.JSON(out)
}

// MorososPDF godoc
// @Summary      Reporte de morosos en PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reportes/morosos/pdf [get]
func (h *ReporteHandler) MorososPDF(c *fiber.Ctx) error {
	b, err := h.reportes.MorososPDF(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, "morosos.pdf", b)
}

// Resumen godoc
// @Summary      Recaudación del día y del mes, padrón por estado y top de actividades
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResumenResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reportes/resumen [get]
func (h *ReporteHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.resumen.Resumen(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	metrics.SetSociosMorosos(out.SociosMorosos)
	return c.JSON(out)
}

// Credencial godoc
// @Summary      Datos de la credencial del cliente
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.CredencialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id}/credencial [get]
func (h *ReporteHandler) Credencial(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	out, err := h.credenciales.Credencial(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CredencialPDF godoc
// @Summary      Credencial del cliente en PDF
// @Tags         clientes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id}/credencial/pdf [get]
func (h *ReporteHandler) CredencialPDF(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	b, err := h.credenciales.CredencialPDF(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, fmt.Sprintf("credencial-%d.pdf", id), b)
}

func sendPDF(c *fiber.Ctx, nombre string, b []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+nombre+`"`)
	return c.Send(b)
}
