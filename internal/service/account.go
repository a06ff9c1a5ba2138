package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"mokkilicores-api/internal/entity"
)

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Hardcoded superuser kept for behavioral compatibility with the system this API
// replaces. Known security defect, do not extend.
const (
	adminIdentificacion = "admin"
	adminPassword       = "admin"
)

// AccountService validates credentials and issues session tokens.
type AccountService struct {
	clientes   ClienteStore
	tokens     *TokenService
	rdb        *redis.Client
	sessionTTL time.Duration
}

// NewAccountService creates a new instance of AccountService. rdb may be nil, in
// which case sessions are not mirrored to Redis.
func NewAccountService(clientes ClienteStore, tokens *TokenService, rdb *redis.Client, sessionTTL time.Duration) *AccountService {
	return &AccountService{clientes: clientes, tokens: tokens, rdb: rdb, sessionTTL: sessionTTL}
}

// Login authenticates the admin account or a cliente by derived password and
// returns a signed token with the matching role.
func (s *AccountService) Login(ctx context.Context, identificacion, password string) (*entity.LoginResponse, error) {
	if identificacion == adminIdentificacion && password == adminPassword {
		token, err := s.tokens.Generate(adminIdentificacion, RoleAdmin)
		if err != nil {
			return nil, err
		}
		s.storeSession(ctx, adminIdentificacion, token)
		return &entity.LoginResponse{Token: token, Identificacion: adminIdentificacion, Role: RoleAdmin}, nil
	}

	cliente, err := s.clientes.GetByIdentificacion(ctx, identificacion)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	expected, err := derivedPassword(cliente)
	if err != nil {
		return nil, err
	}
	if password != expected {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(cliente.Identificacion, RoleUser)
	if err != nil {
		return nil, err
	}
	s.storeSession(ctx, cliente.Identificacion, token)

	return &entity.LoginResponse{Token: token, Identificacion: cliente.Identificacion, Role: RoleUser}, nil
}

// derivedPassword reconstructs the expected password from profile fields:
// identificacion + lowercase first two letters of the first name + uppercase first
// letter of the last name. Compatibility requirement, not a credential scheme to
// imitate.
func derivedPassword(cliente *entity.Cliente) (string, error) {
	nombre := []rune(cliente.Nombre)
	apellido := []rune(cliente.Apellido)
	if len(nombre) < 2 || len(apellido) < 1 {
		return "", fmt.Errorf("cliente %d has a name too short to derive a password", cliente.ID)
	}
	return cliente.Identificacion +
		strings.ToLower(string(nombre[:2])) +
		strings.ToUpper(string(apellido[:1])), nil
}

// storeSession mirrors the issued token to Redis under the identification key.
// Best effort: a Redis outage must not fail a login.
func (s *AccountService) storeSession(ctx context.Context, identificacion, token string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Set(ctx, identificacion, token, s.sessionTTL).Err(); err != nil {
		logger.Error().Err(err).Msgf("Error storing session for %s", identificacion)
	}
}
