package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims is the claim set carried by every issued session token.
type AuthClaims struct {
	Identificacion string `json:"identificacion"`
	Role           string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens bound to a subject and role.
type TokenService struct {
	secretKey []byte
	issuer    string
	audience  string
	expiry    time.Duration
}

// NewTokenService creates a new instance of TokenService.
func NewTokenService(secretKey, issuer, audience string, expiry time.Duration) *TokenService {
	return &TokenService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		audience:  audience,
		expiry:    expiry,
	}
}

// Generate signs a token for the given subject carrying the role claim.
func (s *TokenService) Generate(identificacion, role string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Identificacion: identificacion,
		Role:           role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identificacion,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := tkn.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return t, nil
}

// Parse verifies signature, issuer, audience and expiry (no clock-skew leeway) and
// returns the embedded claims.
func (s *TokenService) Parse(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return s.secretKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}
