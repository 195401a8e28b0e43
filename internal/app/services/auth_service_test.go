package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upslabs/reservalab/internal/app/models/dto"
	"github.com/upslabs/reservalab/internal/pkg/apperrors"
	"github.com/upslabs/reservalab/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "reservalab.test",
	})
}

func newAuthServiceForTest() (*AuthService, *fakeUserRepository, *fakeTokenRepository) {
	userRepo := newFakeUserRepository()
	tokenRepo := newFakeTokenRepository()
	svc := NewAuthService(userRepo, tokenRepo, newTestJWTService(), zerolog.Nop())
	return svc, userRepo, tokenRepo
}

func validRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Nombre:     strPtr("Juan"),
		Apellido:   strPtr("Perez"),
		Correo:     strPtr("juan@est.ups.edu.ec"),
		Contrasena: strPtr("abc12345"),
		Cedula:     strPtr("1712345678"),
		Carrera:    strPtr("Computacion"),
	}
}

func TestAuthRegister(t *testing.T) {
	svc, userRepo, _ := newAuthServiceForTest()

	user, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "juan@est.ups.edu.ec", user.Correo)
	assert.NotEqual(t, "abc12345", user.PasswordHash, "password must be stored hashed")
	assert.True(t, auth.CheckPassword(user.PasswordHash, "abc12345"))
	assert.Len(t, userRepo.users, 1)
}

func TestAuthRegisterNormalizesCorreo(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	req := validRegisterRequest()
	req.Correo = strPtr("  JUAN@EST.UPS.EDU.EC ")
	user, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "juan@est.ups.edu.ec", user.Correo)
}

func TestAuthRegisterMissingFields(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	req := validRegisterRequest()
	req.Apellido = nil
	req.Cedula = nil

	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"apellido", "cedula"}, verr.Faltantes)
}

func TestAuthRegisterRejectsForeignDomain(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	req := validRegisterRequest()
	req.Correo = strPtr("juan@gmail.com")
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAuthRegisterRejectsWeakPassword(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	for _, pw := range []string{"abc123", "abcdefgh", "12345678", "abc12345!"} {
		req := validRegisterRequest()
		req.Contrasena = strPtr(pw)
		_, err := svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrValidation, pw)
	}
}

func TestAuthRegisterDuplicateCorreo(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestAuthLogin(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	registered, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	token, user, err := svc.Login(context.Background(), &dto.LoginRequest{
		Correo:     "juan@est.ups.edu.ec",
		Contrasena: "abc12345",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, registered.ID, user.ID)

	claims, err := newTestJWTService().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.Subject)
	assert.False(t, claims.IsAdmin)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, registered.ID, id)
}

func TestAuthLoginFailuresAreUniform(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	// Unknown email and wrong password must be the same error.
	_, _, errUnknown := svc.Login(context.Background(), &dto.LoginRequest{
		Correo:     "nadie@est.ups.edu.ec",
		Contrasena: "abc12345",
	})
	_, _, errWrongPw := svc.Login(context.Background(), &dto.LoginRequest{
		Correo:     "juan@est.ups.edu.ec",
		Contrasena: "wrong1234",
	})
	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPw)
}

func TestAuthLoginEmptyCredentials(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{Correo: "", Contrasena: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAuthLogoutRevokesJTI(t *testing.T) {
	svc, _, tokenRepo := newAuthServiceForTest()

	require.NoError(t, svc.Logout(context.Background(), "some-jti"))

	revoked, err := tokenRepo.IsRevoked(context.Background(), "some-jti")
	require.NoError(t, err)
	assert.True(t, revoked)

	// Revoking again is a no-op, not an error.
	assert.NoError(t, svc.Logout(context.Background(), "some-jti"))
}
