// Package services contains the business logic between controllers and
// repositories.
package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/upslabs/reservalab/internal/app/models"
	"github.com/upslabs/reservalab/internal/app/models/dto"
	"github.com/upslabs/reservalab/internal/app/repositories"
	"github.com/upslabs/reservalab/internal/pkg/apperrors"
	"github.com/upslabs/reservalab/internal/pkg/auth"
	"github.com/upslabs/reservalab/internal/pkg/validation"
)

// AuthService handles user registration, login and logout.
type AuthService struct {
	userRepo   repositories.IUserRepository
	tokenRepo  repositories.ITokenRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	tokenRepo repositories.ITokenRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register validates and persists a new user account.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if missing := req.MissingFields(false); len(missing) > 0 {
		return nil, apperrors.NewValidationError("Campos requeridos faltantes").
			WithFaltantes(missing)
	}

	correo, err := validation.ValidateCorreo(*req.Correo)
	if err != nil {
		return nil, apperrors.NewValidationError("Correo no autorizado").
			WithDetalle("Use dominio @est.ups.edu.ec o @ups.edu.ec")
	}

	if err := validation.ValidateContrasena(*req.Contrasena); err != nil {
		return nil, err
	}

	// Fast path; the unique constraint on correo still guards the race.
	exists, err := s.userRepo.CorreoExists(ctx, correo, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailTaken
	}

	hash, err := auth.HashPassword(*req.Contrasena)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Nombre:       strings.TrimSpace(*req.Nombre),
		Apellido:     strings.TrimSpace(*req.Apellido),
		Correo:       correo,
		PasswordHash: hash,
		Cedula:       strings.TrimSpace(*req.Cedula),
		Carrera:      strings.TrimSpace(*req.Carrera),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("correo", user.Correo).Msg("User registered")
	return user, nil
}

// Login checks credentials and issues an access token. Unknown email and
// wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	correo := validation.NormalizeCorreo(req.Correo)
	if correo == "" || req.Contrasena == "" {
		return "", nil, apperrors.NewValidationError("Correo y contrasena son requeridos")
	}

	user, err := s.userRepo.GetByCorreo(ctx, correo)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Contrasena) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(
		strconv.FormatInt(user.ID, 10), user.Correo, user.Nombre, false)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Logout revokes the presented token by its jti. Every later verification of
// a token bearing that jti fails, expiry notwithstanding.
func (s *AuthService) Logout(ctx context.Context, jti string) error {
	if err := s.tokenRepo.Revoke(ctx, jti); err != nil {
		return err
	}
	s.logger.Info().Str("jti", jti).Msg("Token revoked")
	return nil
}
