package api

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"mokkilicores-api/internal/entity"
	"mokkilicores-api/internal/service"
)

type ClienteHandler struct {
	clienteService *service.ClienteService
}

// NewClienteHandler creates a new instance of ClienteHandler
func NewClienteHandler(clienteService *service.ClienteService) *ClienteHandler {
	return &ClienteHandler{clienteService: clienteService}
}

// List returns all clientes --> GET /api/cliente
func (h *ClienteHandler) List(c echo.Context) error {
	clientes, err := h.clienteService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(200, clientes)
}

// Get retrieves a cliente by ID --> GET /api/cliente/:id
func (h *ClienteHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	cliente, err := h.clienteService.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Cliente no encontrado"})
		}
		return err
	}
	return c.JSON(200, cliente)
}

// Create creates a new cliente --> POST /api/cliente (Admin only)
func (h *ClienteHandler) Create(c echo.Context) error {
	cliente := entity.Cliente{}
	if err := c.Bind(&cliente); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	created, err := h.clienteService.Create(c.Request().Context(), &cliente)
	if err != nil {
		if errors.Is(err, service.ErrInvalidData) {
			return c.JSON(400, map[string]string{"message": "Datos de cliente no válidos."})
		}
		return err
	}

	return c.JSON(201, created)
}

// Update updates a cliente --> PUT /api/cliente/:id (owner or Admin)
func (h *ClienteHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	updated := entity.Cliente{}
	if err := c.Bind(&updated); err != nil {
		return c.JSON(400, map[string]string{"message": "Datos de cliente no válidos."})
	}

	ctx := c.Request().Context()
	cliente, err := h.clienteService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Cliente no encontrado"})
		}
		return err
	}

	claims := ClaimsFrom(c)
	if claims == nil || (claims.Role != service.RoleAdmin && cliente.Identificacion != claims.Identificacion) {
		return c.JSON(401, map[string]string{"message": "No autorizado"})
	}

	if err := h.clienteService.Update(ctx, id, &updated); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Cliente no encontrado"})
		}
		return err
	}

	return c.NoContent(204)
}

// Delete removes a cliente --> DELETE /api/cliente/:id (authenticated; the 404
// check deliberately runs before the admin check, as in the system this replaces)
func (h *ClienteHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	ctx := c.Request().Context()
	if _, err := h.clienteService.GetByID(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Cliente no encontrado"})
		}
		return err
	}

	claims := ClaimsFrom(c)
	if claims == nil || claims.Role != service.RoleAdmin {
		return c.JSON(401, map[string]string{"message": "No autorizado"})
	}

	if err := h.clienteService.Delete(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Cliente no encontrado"})
		}
		return err
	}

	return c.NoContent(204)
}
