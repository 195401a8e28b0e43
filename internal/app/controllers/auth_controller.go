// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/upslabs/reservalab/internal/app/models/dto"
	"github.com/upslabs/reservalab/internal/app/services"
	"github.com/upslabs/reservalab/internal/middleware"
)

// AuthController handles user registration, login and logout
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /api/auth/register
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Cuerpo de la solicitud invalido"))
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("User registration rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterUserResponse{
		Message: "Usuario registrado",
		Usuario: dto.NewUserResponse(user),
	})
}

// Login handles POST /api/auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Cuerpo de la solicitud invalido"))
		return
	}

	token, user, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("correo", req.Correo).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginUserResponse{
		Message: "Inicio de sesion exitoso",
		Token:   token,
		Usuario: dto.NewUserResponse(user),
	})
}

// Logout handles POST /api/auth/logout. The token's jti goes into the
// revoked set; later requests with the same token fail verification.
func (c *AuthController) Logout(ctx *gin.Context) {
	claims, ok := middleware.GetClaims(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Token requerido"))
		return
	}

	if err := c.authService.Logout(ctx.Request.Context(), claims.ID); err != nil {
		c.logger.Error().Err(err).Msg("Logout failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Sesion cerrada"})
}
