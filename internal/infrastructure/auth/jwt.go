// Package auth implements operator authentication: bcrypt credential
// checks and the JWT tokens that carry the audit user identity.
package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/gerSanzag/mibanco/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Common errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrInvalidClaims      = errors.New("invalid token claims")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Claims represents the custom JWT claims of an operator session
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// JWTService issues and validates operator session tokens
type JWTService struct {
	secret     []byte
	expiration time.Duration
	issuer     string
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{
		secret:     []byte(cfg.Secret),
		expiration: cfg.TokenExpiration,
		issuer:     cfg.Issuer,
	}
}

// GenerateToken issues a signed token for the given username
func (s *JWTService) GenerateToken(username string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiration)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateToken parses and validates a token, returning its claims
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Username == "" {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}

// Credentials checks login attempts against the configured operator account
type Credentials struct {
	username     string
	passwordHash string
	password     string
}

// NewCredentials creates a credential checker from configuration
func NewCredentials(cfg config.AuthConfig) *Credentials {
	return &Credentials{
		username:     cfg.Username,
		passwordHash: cfg.PasswordHash,
		password:     cfg.Password,
	}
}

// Check verifies a username/password pair. The bcrypt hash takes
// precedence; the plain-text password is a development convenience.
func (c *Credentials) Check(username, password string) error {
	if subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) != 1 {
		return ErrInvalidCredentials
	}
	if c.passwordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(c.passwordHash), []byte(password)); err != nil {
			return ErrInvalidCredentials
		}
		return nil
	}
	if c.password == "" || subtle.ConstantTimeCompare([]byte(password), []byte(c.password)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}
