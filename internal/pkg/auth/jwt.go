package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/upslabs/reservalab/internal/pkg/apperrors"
)

// AdminSubjectPrefix distinguishes administrator subjects from user IDs.
const AdminSubjectPrefix = "admin:"

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	SecretKey      string
	AccessTokenExp time.Duration
	TokenIssuer    string
}

// JWTService issues and validates signed access tokens
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{config: config}
}

// Claims defines the token content: the subject identifies the account,
// correo and nombre are display-only, is_admin gates the admin surface.
type Claims struct {
	Correo  string `json:"correo"`
	Nombre  string `json:"nombre"`
	IsAdmin bool   `json:"is_admin,omitempty"`
	jwt.RegisteredClaims
}

// UserID parses the subject as a regular user ID. Admin subjects and
// malformed subjects are rejected.
func (c *Claims) UserID() (int64, error) {
	if strings.HasPrefix(c.Subject, AdminSubjectPrefix) {
		return 0, apperrors.ErrInvalidIdentity
	}
	var id int64
	if _, err := fmt.Sscanf(c.Subject, "%d", &id); err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidIdentity
	}
	return id, nil
}

// GenerateToken creates a signed access token for the given subject.
func (s *JWTService) GenerateToken(subject, correo, nombre string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := &Claims{
		Correo:  correo,
		Nombre:  nombre,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessTokenExp)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
			Subject:   subject,
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a token string
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" || claims.ID == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}

// ExtractBearerToken extracts the token from an Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", apperrors.ErrTokenMissing
	}
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}
	return authHeader, nil
}
