package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/upslabs/reservalab/internal/app/models/dto"
	"github.com/upslabs/reservalab/internal/app/services"
	"github.com/upslabs/reservalab/internal/middleware"
)

// ReservationController handles reservation submission and listing
type ReservationController struct {
	reservationService *services.ReservationService
	logger             zerolog.Logger
}

// NewReservationController creates a new ReservationController
func NewReservationController(reservationService *services.ReservationService, logger zerolog.Logger) *ReservationController {
	return &ReservationController{
		reservationService: reservationService,
		logger:             logger,
	}
}

// actingUserID resolves the caller as a regular user from the token subject.
func actingUserID(ctx *gin.Context) (int64, bool) {
	claims, ok := middleware.GetClaims(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Token requerido"))
		return 0, false
	}
	userID, err := claims.UserID()
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Identidad de usuario invalida"))
		return 0, false
	}
	return userID, true
}

// Create handles POST /api/auth/laboratory
func (c *ReservationController) Create(ctx *gin.Context) {
	userID, ok := actingUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Cuerpo de la solicitud invalido"))
		return
	}

	record, err := c.reservationService.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Msg("Reservation rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateReservationResponse{
		Message:   "Solicitud registrada",
		Solicitud: dto.NewReservationResponse(record),
	})
}

// ListOwn handles GET /api/auth/laboratory/reservations
func (c *ReservationController) ListOwn(ctx *gin.Context) {
	userID, ok := actingUserID(ctx)
	if !ok {
		return
	}

	records, err := c.reservationService.ListByUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ReservationListResponse{
		Reservas: dto.NewReservationResponses(records),
		Total:    len(records),
	})
}
