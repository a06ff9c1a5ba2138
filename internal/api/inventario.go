package api

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"mokkilicores-api/internal/entity"
	"mokkilicores-api/internal/service"
)

type InventarioHandler struct {
	inventarioService *service.InventarioService
}

// NewInventarioHandler creates a new instance of InventarioHandler
func NewInventarioHandler(inventarioService *service.InventarioService) *InventarioHandler {
	return &InventarioHandler{inventarioService: inventarioService}
}

// List returns all inventarios --> GET /api/inventario
func (h *InventarioHandler) List(c echo.Context) error {
	inventarios, err := h.inventarioService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(200, inventarios)
}

// Get retrieves an inventario by ID --> GET /api/inventario/:id
func (h *InventarioHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	inventario, err := h.inventarioService.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": fmt.Sprintf("Inventario con ID %d no encontrado", id)})
		}
		return err
	}
	return c.JSON(200, inventario)
}

// Create creates a new inventario --> POST /api/inventario (User or Admin)
func (h *InventarioHandler) Create(c echo.Context) error {
	inventario := entity.Inventario{}
	if err := c.Bind(&inventario); err != nil {
		return c.JSON(400, map[string]string{"message": "Inventario no puede ser nulo"})
	}

	created, err := h.inventarioService.Create(c.Request().Context(), &inventario)
	if err != nil {
		if errors.Is(err, service.ErrInvalidData) {
			return c.JSON(400, map[string]string{"message": "Inventario no puede ser nulo"})
		}
		return err
	}

	return c.JSON(201, created)
}

// Update updates an inventario --> PUT /api/inventario/:id (User or Admin)
func (h *InventarioHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	updated := entity.Inventario{}
	if err := c.Bind(&updated); err != nil {
		return c.JSON(400, map[string]string{"message": "Inventario no puede ser nulo"})
	}

	if err := h.inventarioService.Update(c.Request().Context(), id, &updated); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": fmt.Sprintf("Inventario con ID %d no encontrado", id)})
		}
		return err
	}

	return c.NoContent(204)
}

// Delete removes an inventario --> DELETE /api/inventario/:id (Admin only)
func (h *InventarioHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.inventarioService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": fmt.Sprintf("Inventario con ID %d no encontrado", id)})
		}
		return err
	}

	return c.NoContent(204)
}
