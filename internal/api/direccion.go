package api

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"mokkilicores-api/internal/entity"
	"mokkilicores-api/internal/service"
)

type DireccionHandler struct {
	direccionService *service.DireccionService
}

// NewDireccionHandler creates a new instance of DireccionHandler
func NewDireccionHandler(direccionService *service.DireccionService) *DireccionHandler {
	return &DireccionHandler{direccionService: direccionService}
}

// List returns all direcciones --> GET /api/direccion
func (h *DireccionHandler) List(c echo.Context) error {
	direcciones, err := h.direccionService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(200, direcciones)
}

// Get retrieves a direccion by ID --> GET /api/direccion/:id
func (h *DireccionHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	direccion, err := h.direccionService.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Dirección no encontrada."})
		}
		return err
	}
	return c.JSON(200, direccion)
}

// ListByUsuario lists direcciones for a cliente identificacion --> GET /api/direccion/Usuario/:identificacion
// 404 when the identificacion matches no cliente.
func (h *DireccionHandler) ListByUsuario(c echo.Context) error {
	identificacion := c.Param("identificacion")

	direcciones, err := h.direccionService.ListByUsuario(c.Request().Context(), identificacion)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Cliente no encontrado"})
		}
		return err
	}
	return c.JSON(200, direcciones)
}

// ListByCliente lists direcciones for a raw cliente key --> GET /api/direccion/Cliente/:clienteId
// Always 200; an unknown key yields an empty list.
func (h *DireccionHandler) ListByCliente(c echo.Context) error {
	clienteID, err := strconv.Atoi(c.Param("clienteId"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	direcciones, err := h.direccionService.ListByClienteID(c.Request().Context(), clienteID)
	if err != nil {
		return err
	}
	return c.JSON(200, direcciones)
}

// Create creates a new direccion --> POST /api/direccion
func (h *DireccionHandler) Create(c echo.Context) error {
	direccion := entity.Direccion{}
	if err := c.Bind(&direccion); err != nil {
		return c.JSON(400, map[string]string{"message": "Datos de dirección no válidos."})
	}

	created, err := h.direccionService.Create(c.Request().Context(), &direccion)
	if err != nil {
		if errors.Is(err, service.ErrInvalidData) {
			return c.JSON(400, map[string]string{"message": "Datos de dirección no válidos."})
		}
		return err
	}

	return c.JSON(201, created)
}

// Update updates a direccion --> PUT /api/direccion/:id
func (h *DireccionHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	updated := entity.Direccion{}
	if err := c.Bind(&updated); err != nil {
		return c.JSON(400, map[string]string{"message": "Datos de dirección no válidos."})
	}

	if err := h.direccionService.Update(c.Request().Context(), id, &updated); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Dirección no encontrada."})
		}
		return err
	}

	return c.NoContent(204)
}

// Delete removes a direccion --> DELETE /api/direccion/:id
func (h *DireccionHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.direccionService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Dirección no encontrada."})
		}
		return err
	}

	return c.JSON(200, map[string]string{"message": "Dirección eliminada correctamente."})
}
