package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/upslabs/reservalab/internal/app/models/dto"
	"github.com/upslabs/reservalab/internal/app/services"
	"github.com/upslabs/reservalab/internal/middleware"
)

// AdminController handles administrator accounts and the admin mutation
// surface over users and reservations.
type AdminController struct {
	adminService *services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Identificador invalido"))
		return 0, false
	}
	return id, true
}

// Register handles POST /api/auth/register-admin
func (c *AdminController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Cuerpo de la solicitud invalido"))
		return
	}

	admin, err := c.adminService.Register(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Admin registration rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.NewAdminResponse(admin)
	resp.Admin = true

	ctx.JSON(http.StatusCreated, dto.RegisterAdminResponse{
		Message:       "Administrador registrado",
		Administrador: resp,
	})
}

// Login handles POST /api/auth/login-admin
func (c *AdminController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Cuerpo de la solicitud invalido"))
		return
	}

	token, admin, err := c.adminService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("correo", req.Correo).Msg("Admin login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginAdminResponse{
		Message:       "Inicio de sesion administrador exitoso",
		Token:         token,
		Administrador: dto.NewAdminResponse(admin),
	})
}

// ListUsers handles GET /api/admin/users
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.adminService.ListUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewMaskedUserResponse(user))
	}

	ctx.JSON(http.StatusOK, dto.UserListResponse{
		Usuarios: responses,
		Total:    len(responses),
	})
}

// UpdateUser handles PATCH /api/admin/users/:id
func (c *AdminController) UpdateUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Cuerpo de la solicitud invalido"))
		return
	}

	user, err := c.adminService.UpdateUser(ctx.Request.Context(), id, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", id).Msg("User update rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateUserResponse{
		Message: "Usuario actualizado",
		Usuario: dto.NewMaskedUserResponse(user),
	})
}

// DeleteUser handles DELETE /api/admin/users/:id
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.DeleteUser(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Usuario eliminado"})
}

// ListReservations handles GET /api/admin/laboratories
func (c *AdminController) ListReservations(ctx *gin.Context) {
	records, err := c.adminService.ListReservations(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ReservationListResponse{
		Reservas: dto.NewReservationResponses(records),
		Total:    len(records),
	})
}

// UpdateReservation handles PATCH /api/admin/laboratories/:id
func (c *AdminController) UpdateReservation(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Cuerpo de la solicitud invalido"))
		return
	}

	record, err := c.adminService.UpdateReservation(ctx.Request.Context(), id, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("reservationID", id).Msg("Reservation update rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateReservationResponse{
		Message: "Reserva actualizada",
		Reserva: dto.NewReservationResponse(record),
	})
}

// DeleteReservation handles DELETE /api/admin/laboratories/:id
func (c *AdminController) DeleteReservation(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.DeleteReservation(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Reserva eliminada"})
}
