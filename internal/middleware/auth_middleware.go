// Package middleware contains the Gin middleware shared by all routes.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/upslabs/reservalab/internal/app/models/dto"
	"github.com/upslabs/reservalab/internal/app/repositories"
	"github.com/upslabs/reservalab/internal/pkg/apperrors"
	"github.com/upslabs/reservalab/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextClaims  = "claims"
	ContextSubject = "subject"
)

// AuthMiddleware validates access tokens and enforces the admin claim.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	tokenRepo  repositories.ITokenRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, tokenRepo repositories.ITokenRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokenRepo:  tokenRepo,
	}
}

// JWTAuth validates the bearer token, rejects revoked jtis and stores the
// claims in the request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse("Token requerido"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "Token invalido"
			if err == apperrors.ErrTokenExpired {
				message = "Token expirado"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(message))
			return
		}

		// Revocation makes a token unusable regardless of its expiry.
		revoked, err := m.tokenRepo.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse("Error interno"))
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse("Token revocado"))
			return
		}

		c.Set(ContextClaims, claims)
		c.Set(ContextSubject, claims.Subject)

		c.Next()
	}
}

// AdminRequired rejects any valid token that lacks the elevated claim. This
// is a 403, not a 401: the caller is authenticated, just not an admin.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse("Token requerido"))
			return
		}

		if !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse("Acceso solo para administradores"))
			return
		}

		c.Next()
	}
}

// GetClaims returns the token claims stored by JWTAuth.
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
