package api

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"mokkilicores-api/internal/service"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type Handlers struct {
	Account    *AccountHandler
	Cliente    *ClienteHandler
	Direccion  *DireccionHandler
	Inventario *InventarioHandler
	Pedido     *PedidoHandler
}

// Register wires every route, the per-route auth middleware and the global error
// handler onto the Echo instance. Shared between main and the handler tests.
func Register(e *echo.Echo, tokens *service.TokenService, h Handlers) {
	e.HTTPErrorHandler = errorHandler

	auth := RequireToken(tokens)
	userOrAdmin := RequireRoles(service.RoleUser, service.RoleAdmin)
	adminOnly := RequireRoles(service.RoleAdmin)

	g := e.Group("/api")

	g.POST("/account/login", h.Account.Login)

	g.GET("/cliente", h.Cliente.List)
	g.GET("/cliente/:id", h.Cliente.Get)
	g.POST("/cliente", h.Cliente.Create, auth, adminOnly)
	g.PUT("/cliente/:id", h.Cliente.Update, auth)
	g.DELETE("/cliente/:id", h.Cliente.Delete, auth)

	// Direccion routes carry no authorization on purpose; see the system notes.
	g.GET("/direccion", h.Direccion.List)
	g.GET("/direccion/:id", h.Direccion.Get)
	g.GET("/direccion/Usuario/:identificacion", h.Direccion.ListByUsuario)
	g.GET("/direccion/Cliente/:clienteId", h.Direccion.ListByCliente)
	g.POST("/direccion", h.Direccion.Create)
	g.PUT("/direccion/:id", h.Direccion.Update)
	g.DELETE("/direccion/:id", h.Direccion.Delete)

	g.GET("/inventario", h.Inventario.List)
	g.GET("/inventario/:id", h.Inventario.Get)
	g.POST("/inventario", h.Inventario.Create, auth, userOrAdmin)
	g.PUT("/inventario/:id", h.Inventario.Update, auth, userOrAdmin)
	g.DELETE("/inventario/:id", h.Inventario.Delete, auth, adminOnly)

	// Pedido routes are likewise open to any caller.
	g.GET("/pedido", h.Pedido.List)
	g.GET("/pedido/:id", h.Pedido.Get)
	g.POST("/pedido", h.Pedido.Create)
	g.PUT("/pedido/:id", h.Pedido.Update)
	g.DELETE("/pedido/:id", h.Pedido.Delete)

	g.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "mokkilicores-api",
			"time":    time.Now().Format(time.RFC3339),
		})
	})
}

// errorHandler keeps client errors (4xx from middleware and route matching)
// intact and collapses everything else into a generic 500 body, discarding the
// original detail.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		message := he.Message
		if s, ok := message.(string); ok {
			message = map[string]string{"message": s}
		}
		if jsonErr := c.JSON(he.Code, message); jsonErr != nil {
			logger.Error().Err(jsonErr).Msg("Error writing error response")
		}
		return
	}

	logger.Error().Err(err).Msg("Unhandled error")
	if jsonErr := c.JSON(http.StatusInternalServerError, map[string]string{
		"error": "An error occurred while processing your request.",
	}); jsonErr != nil {
		logger.Error().Err(jsonErr).Msg("Error writing error response")
	}
}
