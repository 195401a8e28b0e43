package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/upslabs/reservalab/internal/app/models"
	"github.com/upslabs/reservalab/internal/app/models/dto"
	"github.com/upslabs/reservalab/internal/app/repositories"
	"github.com/upslabs/reservalab/internal/pkg/apperrors"
	"github.com/upslabs/reservalab/internal/pkg/choices"
	"github.com/upslabs/reservalab/internal/pkg/validation"
)

// ReservationService runs the reservation validation pipeline and enforces
// the schedule uniqueness invariant.
type ReservationService struct {
	reservationRepo repositories.IReservationRepository
	userRepo        repositories.IUserRepository
	logger          zerolog.Logger
}

// NewReservationService creates a new ReservationService
func NewReservationService(
	reservationRepo repositories.IReservationRepository,
	userRepo repositories.IUserRepository,
	logger zerolog.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

// validated holds the canonical field values after the pipeline has run.
type validated struct {
	correo       string
	nombres      string
	cargo        string
	carrera      string
	nivel        string
	discapacidad string
	materia      string
	estudiantes  int
	fecha        time.Time
	horario      string
	descripcion  string
	laboratorio  string
	equipo       string
}

// validate runs every field rule in declaration order, failing on the first
// violation.
func (s *ReservationService) validate(req *dto.CreateReservationRequest) (*validated, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return nil, apperrors.NewValidationError("Campos requeridos faltantes").
			WithFaltantes(missing)
	}

	v := &validated{}
	var err error

	if v.correo, err = validation.ValidateCorreo(*req.CorreoInstitucional); err != nil {
		return nil, err
	}
	if v.cargo, err = choices.Validate(*req.Cargo, choices.Cargo, "cargo"); err != nil {
		return nil, err
	}
	if v.carrera, err = choices.Validate(*req.Carrera, choices.Carrera, "carrera"); err != nil {
		return nil, err
	}
	if v.nivel, err = choices.Validate(*req.Nivel, choices.Nivel, "nivel"); err != nil {
		return nil, err
	}
	if v.discapacidad, err = choices.Validate(*req.Discapacidad, choices.Discapacidad, "discapacidad"); err != nil {
		return nil, err
	}
	if v.laboratorio, err = choices.Validate(*req.Laboratorio, choices.Laboratorio, "laboratorio"); err != nil {
		return nil, err
	}
	if v.equipo, err = choices.Validate(*req.Equipo, choices.Equipo, "equipo"); err != nil {
		return nil, err
	}

	v.nombres = strings.TrimSpace(*req.NombresCompletos)
	v.materia = strings.TrimSpace(*req.MateriaMotivo)
	v.descripcion = strings.TrimSpace(*req.DescripcionActividades)
	horario := strings.TrimSpace(*req.HorarioUso)
	if v.nombres == "" || v.materia == "" || v.descripcion == "" || horario == "" {
		return nil, apperrors.NewValidationError("Los campos de texto no pueden estar vacios")
	}

	if v.horario, err = validation.ValidateHorario(horario); err != nil {
		return nil, err
	}
	if err = validation.ValidateEstudiantes(*req.NumeroEstudiantes); err != nil {
		return nil, err
	}
	v.estudiantes = *req.NumeroEstudiantes
	if v.fecha, err = validation.ValidateFecha(*req.FechaPrestamo); err != nil {
		return nil, err
	}

	return v, nil
}

// Create validates a reservation payload, resolves the acting user and
// persists the record. The existence pre-check rejects an occupied slot
// without attempting a write; the unique constraint remains the
// authoritative guard when two submissions race past the pre-check.
func (s *ReservationService) Create(ctx context.Context, userID int64, req *dto.CreateReservationRequest) (*models.LaboratoryRequest, error) {
	v, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	taken, err := s.reservationRepo.ExistsSchedule(ctx, v.laboratorio, v.fecha, v.horario, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrScheduleTaken
	}

	record := &models.LaboratoryRequest{
		UserID:                 user.ID,
		CorreoInstitucional:    v.correo,
		NombresCompletos:       v.nombres,
		Cargo:                  v.cargo,
		Carrera:                v.carrera,
		Nivel:                  v.nivel,
		Discapacidad:           v.discapacidad,
		MateriaMotivo:          v.materia,
		NumeroEstudiantes:      v.estudiantes,
		FechaPrestamo:          v.fecha,
		HorarioUso:             v.horario,
		DescripcionActividades: v.descripcion,
		Laboratorio:            v.laboratorio,
		Equipo:                 v.equipo,
	}

	if err := s.reservationRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("reservationID", record.ID).
		Int64("userID", user.ID).
		Str("laboratorio", record.Laboratorio).
		Str("horario", record.HorarioUso).
		Msg("Reservation created")

	return record, nil
}

// ListByUser returns the acting user's reservations, newest first.
func (s *ReservationService) ListByUser(ctx context.Context, userID int64) ([]*models.LaboratoryRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.reservationRepo.ListByUser(ctx, userID)
}
