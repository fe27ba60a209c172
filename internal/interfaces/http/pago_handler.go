package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/club-deportivo-api/internal/application/dto"
	"github.com/jhoicas/club-deportivo-api/internal/application/usecase"
	"github.com/jhoicas/club-deportivo-api/internal/infrastructure/metrics"
)

// PagoHandler cobro de cuotas y actividades, e historiales de pago.
type PagoHandler struct {
	uc *usecase.PagoUseCase
}

// NewPagoHandler construye el handler.
func NewPagoHandler(uc *usecase.PagoUseCase) *PagoHandler {
	return &PagoHandler{uc: uc}
}

// RegistrarCuota godoc
// @Summary      Cobrar cuota social (renueva el vencimiento a hoy + 30 días)
// @Tags         pagos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarCuotaRequest  true  "Datos del pago"
// @Success      201   {object}  dto.CuotaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pagos/cuotas [post]
func (h *PagoHandler) RegistrarCuota(c *fiber.Ctx) error {
	var in dto.RegistrarCuotaRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.RegistrarCuota(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	metrics.RecordCuota(out.MedioPago)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegistrarPagoActividad godoc
// @Summary      Cobrar una actividad a un no socio
// @Tags         pagos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarPagoActividadRequest  true  "cliente, actividad, medio de pago"
// @Success      201   {object}  dto.RegistroActividadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pagos/actividades [post]
func (h *PagoHandler) RegistrarPagoActividad(c *fiber.Ctx) error {
	var in dto.RegistrarPagoActividadRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.RegistrarPagoActividad(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	metrics.RecordPagoActividad(out.Actividad)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UltimaCuota godoc
// @Summary      Última cuota pagada por el socio
// @Tags         pagos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.CuotaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id}/cuotas/ultima [get]
func (h *PagoHandler) UltimaCuota(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	out, err := h.uc.UltimaCuota(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// HistorialCuotas godoc
// @Summary      Cuotas pagadas por el socio, más reciente primero
// @Tags         pagos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {array}  dto.CuotaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id}/cuotas [get]
func (h *PagoHandler) HistorialCuotas(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	out, err := h.uc.HistorialCuotas(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// HistorialActividades godoc
// @Summary      Actividades pagadas por el cliente, más reciente primero
// @Tags         pagos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {array}  dto.RegistroActividadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id}/actividades [get]
func (h *PagoHandler) HistorialActividades(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	out, err := h.uc.HistorialActividades(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
