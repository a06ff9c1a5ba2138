package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"mokkilicores-api/internal/entity"
	"mokkilicores-api/internal/service"
)

type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new instance of AccountHandler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Login authenticates a caller --> POST /api/account/login
func (h *AccountHandler) Login(c echo.Context) error {
	login := entity.LoginRequest{}
	if err := c.Bind(&login); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	resp, err := h.accountService.Login(c.Request().Context(), login.Identificacion, login.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(401, map[string]string{"message": "Credenciales inválidas"})
		}
		return err
	}

	return c.JSON(200, resp)
}
