package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upslabs/reservalab/internal/pkg/auth"
)

type fakeTokenRepository struct {
	revoked map[string]bool
}

func (f *fakeTokenRepository) Revoke(ctx context.Context, jti string) error {
	f.revoked[jti] = true
	return nil
}

func (f *fakeTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return f.revoked[jti], nil
}

func newTestRouter(exp time.Duration) (*gin.Engine, *auth.JWTService, *fakeTokenRepository) {
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "reservalab.test",
	})
	tokenRepo := &fakeTokenRepository{revoked: map[string]bool{}}
	m := NewAuthMiddleware(jwtService, tokenRepo)

	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		claims, _ := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"subject": claims.Subject})
	})
	router.GET("/admin", m.JWTAuth(), m.AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, jwtService, tokenRepo
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	router, jwtService, _ := newTestRouter(time.Hour)

	token, err := jwtService.GenerateToken("123", "juan@est.ups.edu.ec", "Juan", false)
	require.NoError(t, err)

	w := doRequest(router, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subject":"123"`)
}

func TestJWTAuthMissingToken(t *testing.T) {
	router, _, _ := newTestRouter(time.Hour)

	w := doRequest(router, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token requerido")
}

func TestJWTAuthGarbageToken(t *testing.T) {
	router, _, _ := newTestRouter(time.Hour)

	w := doRequest(router, "/protected", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token invalido")
}

func TestJWTAuthExpiredToken(t *testing.T) {
	router, jwtService, _ := newTestRouter(-time.Minute)

	token, err := jwtService.GenerateToken("123", "juan@est.ups.edu.ec", "Juan", false)
	require.NoError(t, err)

	w := doRequest(router, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expirado")
}

func TestJWTAuthRevokedToken(t *testing.T) {
	router, jwtService, tokenRepo := newTestRouter(time.Hour)

	token, err := jwtService.GenerateToken("123", "juan@est.ups.edu.ec", "Juan", false)
	require.NoError(t, err)

	// Works until its jti is revoked.
	w := doRequest(router, "/protected", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	require.NoError(t, tokenRepo.Revoke(context.Background(), claims.ID))

	w = doRequest(router, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token revocado")
}

func TestAdminRequired(t *testing.T) {
	router, jwtService, _ := newTestRouter(time.Hour)

	userToken, err := jwtService.GenerateToken("123", "juan@est.ups.edu.ec", "Juan", false)
	require.NoError(t, err)
	adminToken, err := jwtService.GenerateToken(auth.AdminSubjectPrefix+"7", "admin@ups.edu.ec", "Admin", true)
	require.NoError(t, err)

	w := doRequest(router, "/admin", "Bearer "+userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Acceso solo para administradores")

	w = doRequest(router, "/admin", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
