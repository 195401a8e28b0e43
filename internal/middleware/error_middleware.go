package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/upslabs/reservalab/internal/app/models/dto"
	"github.com/upslabs/reservalab/internal/pkg/apperrors"
	"github.com/upslabs/reservalab/internal/pkg/logger"
)

// HandleAPIError recovers a service error at the request boundary and turns
// it into a structured response. Nothing here is fatal to the process.
func HandleAPIError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, &dto.ErrorResponse{
			Message:    validationErr.Message,
			Detalle:    validationErr.Detalle,
			Faltantes:  validationErr.Faltantes,
			Permitidos: validationErr.Permitidos,
			Maximo:     validationErr.Maximo,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Credenciales invalidas"))
	case errors.Is(err, apperrors.ErrInvalidIdentity):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Identidad de usuario invalida"))
	case apperrors.Is(err, apperrors.ErrTokenExpired, apperrors.ErrTokenInvalid,
		apperrors.ErrTokenMissing, apperrors.ErrTokenRevoked):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrAdminOnly):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("Acceso solo para administradores"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Usuario no encontrado"))
	case errors.Is(err, apperrors.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Administrador no encontrado"))
	case errors.Is(err, apperrors.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Reserva no encontrada"))
	case errors.Is(err, apperrors.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("El correo ya esta registrado"))
	case errors.Is(err, apperrors.ErrAdminEmailTaken):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("El correo ya esta registrado en administradores"))
	case errors.Is(err, apperrors.ErrScheduleTaken):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Horario ya reservado").
			WithDetalle("Existe una solicitud para el mismo laboratorio, fecha y horario"))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled service error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Error interno"))
	}
}
