package api

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"mokkilicores-api/internal/entity"
	"mokkilicores-api/internal/service"
)

type PedidoHandler struct {
	pedidoService *service.PedidoService
}

// NewPedidoHandler creates a new instance of PedidoHandler
func NewPedidoHandler(pedidoService *service.PedidoService) *PedidoHandler {
	return &PedidoHandler{pedidoService: pedidoService}
}

// List returns all pedidos --> GET /api/pedido
func (h *PedidoHandler) List(c echo.Context) error {
	pedidos, err := h.pedidoService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(200, pedidos)
}

// Get retrieves a pedido by ID --> GET /api/pedido/:id
func (h *PedidoHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	pedido, err := h.pedidoService.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Pedido no encontrado"})
		}
		return err
	}
	return c.JSON(200, pedido)
}

// Create creates a new pedido --> POST /api/pedido
// CostoTotal is recomputed server-side; the cliente/inventario/direccion
// references and direccion ownership are verified before anything is persisted.
func (h *PedidoHandler) Create(c echo.Context) error {
	pedido := entity.Pedido{}
	if err := c.Bind(&pedido); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	created, err := h.pedidoService.Create(c.Request().Context(), &pedido)
	if err != nil {
		if errors.Is(err, service.ErrInvalidData) {
			return c.JSON(400, map[string]string{"message": "Cliente, Inventario, o Dirección no encontrados o no válidos."})
		}
		return err
	}

	return c.JSON(201, created)
}

// Update updates a pedido --> PUT /api/pedido/:id
// Recomputes CostoTotal but does not revalidate the references.
func (h *PedidoHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	updated := entity.Pedido{}
	if err := c.Bind(&updated); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	if err := h.pedidoService.Update(c.Request().Context(), id, &updated); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Pedido no encontrado"})
		}
		return err
	}

	return c.NoContent(204)
}

// Delete removes a pedido --> DELETE /api/pedido/:id
func (h *PedidoHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.pedidoService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Pedido no encontrado"})
		}
		return err
	}

	return c.NoContent(204)
}
