package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/club-deportivo-api/internal/application/dto"
	"github.com/jhoicas/club-deportivo-api/internal/application/usecase"
)

// ActividadHandler CRUD de actividades.
type ActividadHandler struct {
	uc *usecase.ActividadUseCase
}

// NewActividadHandler construye el handler.
func NewActividadHandler(uc *usecase.ActividadUseCase) *ActividadHandler {
	return &ActividadHandler{uc: uc}
}

// Create godoc
// @Summary      Crear actividad
// @Tags         actividades
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ActividadRequest  true  "nombre, costo"
// @Success      201   {object}  dto.ActividadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/actividades [post]
func (h *ActividadHandler) Create(c *fiber.Ctx) error {
	var in dto.ActividadRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar actividades
// @Tags         actividades
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ActividadResponse
// @Router       /api/actividades [get]
func (h *ActividadHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener actividad
// @Tags         actividades
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la actividad"
// @Success      200  {object}  dto.ActividadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/actividades/{id} [get]
func (h *ActividadHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modificar actividad
// @Tags         actividades
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID de la actividad"
// @Param        body  body  dto.ActividadRequest  true  "nombre, costo"
// @Success      200   {object}  dto.ActividadResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/actividades/{id} [put]
func (h *ActividadHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	var in dto.ActividadRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar actividad (solo si no tiene pagos)
// @Tags         actividades
// @Security     Bearer
// @Param        id   path  int  true  "ID de la actividad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/actividades/{id} [delete]
func (h *ActividadHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
