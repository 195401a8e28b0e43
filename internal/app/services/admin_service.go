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
	"github.com/upslabs/reservalab/internal/pkg/choices"
	"github.com/upslabs/reservalab/internal/pkg/validation"
)

// AdminService handles administrator accounts and the admin mutation surface
// over users and reservations.
type AdminService struct {
	adminRepo       repositories.IAdminRepository
	userRepo        repositories.IUserRepository
	reservationRepo repositories.IReservationRepository
	jwtService      *auth.JWTService
	logger          zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	adminRepo repositories.IAdminRepository,
	userRepo repositories.IUserRepository,
	reservationRepo repositories.IReservationRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{
		adminRepo:       adminRepo,
		userRepo:        userRepo,
		reservationRepo: reservationRepo,
		jwtService:      jwtService,
		logger:          logger,
	}
}

// Register validates and persists a new administrator. The payload must
// assert the admin flag explicitly.
func (s *AdminService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Admin, error) {
	if missing := req.MissingFields(true); len(missing) > 0 {
		return nil, apperrors.NewValidationError("Campos requeridos faltantes").
			WithFaltantes(missing)
	}

	if !*req.Admin {
		return nil, apperrors.NewValidationError("Debe establecer admin en true")
	}

	correo, err := validation.ValidateCorreo(*req.Correo)
	if err != nil {
		return nil, apperrors.NewValidationError("Correo no autorizado").
			WithDetalle("Use dominio @est.ups.edu.ec o @ups.edu.ec")
	}

	if err := validation.ValidateContrasena(*req.Contrasena); err != nil {
		return nil, err
	}

	exists, err := s.adminRepo.CorreoExists(ctx, correo)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAdminEmailTaken
	}

	hash, err := auth.HashPassword(*req.Contrasena)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Nombre:       strings.TrimSpace(*req.Nombre),
		Apellido:     strings.TrimSpace(*req.Apellido),
		Correo:       correo,
		PasswordHash: hash,
		Cedula:       strings.TrimSpace(*req.Cedula),
		Carrera:      strings.TrimSpace(*req.Carrera),
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("adminID", admin.ID).Str("correo", admin.Correo).Msg("Administrator registered")
	return admin, nil
}

// Login checks administrator credentials and issues a token carrying the
// elevated claim. Failures are indistinguishable between unknown email and
// wrong password.
func (s *AdminService) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.Admin, error) {
	correo := validation.NormalizeCorreo(req.Correo)
	if correo == "" || req.Contrasena == "" {
		return "", nil, apperrors.NewValidationError("Correo y contrasena son requeridos")
	}

	admin, err := s.adminRepo.GetByCorreo(ctx, correo)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(admin.PasswordHash, req.Contrasena) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	subject := auth.AdminSubjectPrefix + strconv.FormatInt(admin.ID, 10)
	token, err := s.jwtService.GenerateToken(subject, admin.Correo, admin.Nombre, true)
	if err != nil {
		return "", nil, err
	}

	return token, admin, nil
}

// ListUsers returns every user, newest first.
func (s *AdminService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}

// UpdateUser applies a partial update: only fields present in the payload
// are validated and written, with the same rules as registration. The email
// uniqueness check excludes the record's own id.
func (s *AdminService) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set := map[string]interface{}{}

	if req.Correo != nil {
		correo, err := validation.ValidateCorreo(*req.Correo)
		if err != nil {
			return nil, apperrors.NewValidationError("Correo no autorizado")
		}
		exists, err := s.userRepo.CorreoExists(ctx, correo, user.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrEmailTaken
		}
		set["correo"] = correo
	}

	if req.Nombre != nil && strings.TrimSpace(*req.Nombre) != "" {
		set["nombre"] = strings.TrimSpace(*req.Nombre)
	}
	if req.Apellido != nil && strings.TrimSpace(*req.Apellido) != "" {
		set["apellido"] = strings.TrimSpace(*req.Apellido)
	}
	if req.Cedula != nil && strings.TrimSpace(*req.Cedula) != "" {
		set["cedula"] = strings.TrimSpace(*req.Cedula)
	}
	if req.Carrera != nil && strings.TrimSpace(*req.Carrera) != "" {
		set["carrera"] = strings.TrimSpace(*req.Carrera)
	}

	if req.Contrasena != nil && *req.Contrasena != "" {
		if err := validation.ValidateContrasena(*req.Contrasena); err != nil {
			return nil, apperrors.NewValidationError("Contrasena invalida")
		}
		hash, err := auth.HashPassword(*req.Contrasena)
		if err != nil {
			return nil, err
		}
		set["password_hash"] = hash
	}

	if err := s.userRepo.UpdateFields(ctx, user.ID, set); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, user.ID)
}

// DeleteUser removes a user; the FK cascade removes its reservations.
func (s *AdminService) DeleteUser(ctx context.Context, id int64) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("userID", id).Msg("User deleted")
	return nil
}

// ListReservations returns every reservation, newest first.
func (s *AdminService) ListReservations(ctx context.Context) ([]*models.LaboratoryRequest, error) {
	return s.reservationRepo.List(ctx)
}

// UpdateReservation applies a partial update with the same per-field rules
// as creation. A triple change that collides with another reservation is
// rejected by the unique constraint and reported as the usual conflict.
func (s *AdminService) UpdateReservation(ctx context.Context, id int64, req *dto.UpdateReservationRequest) (*models.LaboratoryRequest, error) {
	record, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set := map[string]interface{}{}

	if req.CorreoInstitucional != nil {
		correo, err := validation.ValidateCorreo(*req.CorreoInstitucional)
		if err != nil {
			return nil, apperrors.NewValidationError("Correo institucional invalido")
		}
		set["correo_institucional"] = correo
	}

	for _, choice := range []struct {
		value  *string
		table  choices.Table
		field  string
		column string
	}{
		{req.Cargo, choices.Cargo, "cargo", "cargo"},
		{req.Carrera, choices.Carrera, "carrera", "carrera"},
		{req.Nivel, choices.Nivel, "nivel", "nivel"},
		{req.Discapacidad, choices.Discapacidad, "discapacidad", "discapacidad"},
		{req.Laboratorio, choices.Laboratorio, "laboratorio", "laboratorio"},
		{req.Equipo, choices.Equipo, "equipo", "equipo"},
	} {
		if choice.value == nil {
			continue
		}
		display, err := choices.Validate(*choice.value, choice.table, choice.field)
		if err != nil {
			return nil, err
		}
		set[choice.column] = display
	}

	if req.NombresCompletos != nil && strings.TrimSpace(*req.NombresCompletos) != "" {
		set["nombres_completos"] = strings.TrimSpace(*req.NombresCompletos)
	}
	if req.MateriaMotivo != nil && strings.TrimSpace(*req.MateriaMotivo) != "" {
		set["materia_motivo"] = strings.TrimSpace(*req.MateriaMotivo)
	}
	if req.DescripcionActividades != nil && strings.TrimSpace(*req.DescripcionActividades) != "" {
		set["descripcion_actividades"] = strings.TrimSpace(*req.DescripcionActividades)
	}

	if req.HorarioUso != nil {
		horario, err := validation.ValidateHorario(*req.HorarioUso)
		if err != nil {
			return nil, err
		}
		set["horario_uso"] = horario
	}

	if req.NumeroEstudiantes != nil {
		if err := validation.ValidateEstudiantes(*req.NumeroEstudiantes); err != nil {
			return nil, err
		}
		set["numero_estudiantes"] = *req.NumeroEstudiantes
	}

	if req.FechaPrestamo != nil {
		fecha, err := validation.ValidateFecha(*req.FechaPrestamo)
		if err != nil {
			return nil, err
		}
		set["fecha_prestamo"] = fecha
	}

	if err := s.reservationRepo.UpdateFields(ctx, record.ID, set); err != nil {
		return nil, err
	}

	return s.reservationRepo.GetByID(ctx, record.ID)
}

// DeleteReservation removes a reservation once found.
func (s *AdminService) DeleteReservation(ctx context.Context, id int64) error {
	if _, err := s.reservationRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("reservationID", id).Msg("Reservation deleted")
	return nil
}
