package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upslabs/reservalab/internal/app/models"
	"github.com/upslabs/reservalab/internal/app/models/dto"
	"github.com/upslabs/reservalab/internal/pkg/apperrors"
)

func newReservationServiceForTest() (*ReservationService, *fakeReservationRepository, *fakeUserRepository) {
	reservationRepo := newFakeReservationRepository()
	userRepo := newFakeUserRepository()
	svc := NewReservationService(reservationRepo, userRepo, zerolog.Nop())
	return svc, reservationRepo, userRepo
}

func seedUser(t *testing.T, userRepo *fakeUserRepository) *models.User {
	t.Helper()
	user := &models.User{
		Nombre:   "Juan",
		Apellido: "Perez",
		Correo:   "juan@est.ups.edu.ec",
		Cedula:   "1712345678",
		Carrera:  "Computacion",
	}
	require.NoError(t, userRepo.Create(context.Background(), user))
	return user
}

func validReservationRequest() *dto.CreateReservationRequest {
	return &dto.CreateReservationRequest{
		CorreoInstitucional:    strPtr("juan@est.ups.edu.ec"),
		NombresCompletos:       strPtr("Juan Perez"),
		Cargo:                  strPtr("Estudiante"),
		Carrera:                strPtr("Computacion"),
		Nivel:                  strPtr("5to"),
		Discapacidad:           strPtr("NO"),
		MateriaMotivo:          strPtr("Redes de computadoras"),
		NumeroEstudiantes:      intPtr(20),
		FechaPrestamo:          strPtr("15/10/2026"),
		HorarioUso:             strPtr("07:00 - 09:00"),
		DescripcionActividades: strPtr("Practica de enrutamiento"),
		Laboratorio:            strPtr("Laboratorio Networking 1"),
		Equipo:                 strPtr("Router 2800"),
	}
}

func TestReservationCreate(t *testing.T) {
	svc, repo, userRepo := newReservationServiceForTest()
	user := seedUser(t, userRepo)

	record, err := svc.Create(context.Background(), user.ID, validReservationRequest())
	require.NoError(t, err)
	assert.NotZero(t, record.ID)
	assert.Equal(t, user.ID, record.UserID)
	assert.Equal(t, "Laboratorio Networking 1", record.Laboratorio)
	assert.Equal(t, time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC), record.FechaPrestamo)
	assert.Len(t, repo.records, 1)
}

func TestReservationCreateCanonicalizesChoices(t *testing.T) {
	svc, _, userRepo := newReservationServiceForTest()
	user := seedUser(t, userRepo)

	req := validReservationRequest()
	req.Cargo = strPtr("  estudiante ")
	req.Carrera = strPtr("computación")
	req.Laboratorio = strPtr("LABORATORIO NETWORKING 1")
	req.Equipo = strPtr("router 2800")
	req.Discapacidad = strPtr("no")

	record, err := svc.Create(context.Background(), user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Estudiante", record.Cargo)
	assert.Equal(t, "Computacion", record.Carrera)
	assert.Equal(t, "Laboratorio Networking 1", record.Laboratorio)
	assert.Equal(t, "Router 2800", record.Equipo)
	assert.Equal(t, "NO", record.Discapacidad)
}

func TestReservationCreateMissingFields(t *testing.T) {
	svc, _, userRepo := newReservationServiceForTest()
	user := seedUser(t, userRepo)

	req := validReservationRequest()
	req.Laboratorio = nil
	req.Equipo = nil

	_, err := svc.Create(context.Background(), user.ID, req)
	require.Error(t, err)

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"equipo", "laboratorio"}, verr.Faltantes)
}

func TestReservationCreateValidationOrder(t *testing.T) {
	svc, _, userRepo := newReservationServiceForTest()
	user := seedUser(t, userRepo)

	// Both cargo and laboratorio are invalid; the cargo rule runs first.
	req := validReservationRequest()
	req.Cargo = strPtr("presidente")
	req.Laboratorio = strPtr("gimnasio")

	_, err := svc.Create(context.Background(), user.ID, req)
	require.Error(t, err)

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Valor no permitido para cargo", verr.Message)
}

func TestReservationCreateRejectsBlankTextFields(t *testing.T) {
	svc, _, userRepo := newReservationServiceForTest()
	user := seedUser(t, userRepo)

	req := validReservationRequest()
	req.MateriaMotivo = strPtr("   ")

	_, err := svc.Create(context.Background(), user.ID, req)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestReservationCreateStudentBounds(t *testing.T) {
	svc, _, userRepo := newReservationServiceForTest()
	user := seedUser(t, userRepo)

	for _, n := range []int{0, -1, 36} {
		req := validReservationRequest()
		req.NumeroEstudiantes = intPtr(n)
		req.HorarioUso = strPtr("09:00 - 11:00")
		_, err := svc.Create(context.Background(), user.ID, req)
		assert.ErrorIs(t, err, apperrors.ErrValidation, n)
	}

	req := validReservationRequest()
	req.NumeroEstudiantes = intPtr(35)
	_, err := svc.Create(context.Background(), user.ID, req)
	assert.NoError(t, err)
}

func TestReservationCreateUnknownUser(t *testing.T) {
	svc, _, _ := newReservationServiceForTest()

	_, err := svc.Create(context.Background(), 99, validReservationRequest())
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestReservationCreateScheduleConflict(t *testing.T) {
	svc, _, userRepo := newReservationServiceForTest()
	user := seedUser(t, userRepo)

	_, err := svc.Create(context.Background(), user.ID, validReservationRequest())
	require.NoError(t, err)

	// Same laboratory, date and window: rejected.
	_, err = svc.Create(context.Background(), user.ID, validReservationRequest())
	assert.ErrorIs(t, err, apperrors.ErrScheduleTaken)

	// Changing any element of the triple frees the slot.
	otherLab := validReservationRequest()
	otherLab.Laboratorio = strPtr("Laboratorio Networking 2")
	_, err = svc.Create(context.Background(), user.ID, otherLab)
	assert.NoError(t, err)

	otherDate := validReservationRequest()
	otherDate.FechaPrestamo = strPtr("16/10/2026")
	_, err = svc.Create(context.Background(), user.ID, otherDate)
	assert.NoError(t, err)

	otherWindow := validReservationRequest()
	otherWindow.HorarioUso = strPtr("09:00 - 11:00")
	_, err = svc.Create(context.Background(), user.ID, otherWindow)
	assert.NoError(t, err)
}

func TestReservationListByUser(t *testing.T) {
	svc, _, userRepo := newReservationServiceForTest()
	owner := seedUser(t, userRepo)

	other := &models.User{Correo: "maria@ups.edu.ec", Nombre: "Maria"}
	require.NoError(t, userRepo.Create(context.Background(), other))

	_, err := svc.Create(context.Background(), owner.ID, validReservationRequest())
	require.NoError(t, err)

	otherReq := validReservationRequest()
	otherReq.Laboratorio = strPtr("Laboratorio IHM")
	_, err = svc.Create(context.Background(), other.ID, otherReq)
	require.NoError(t, err)

	mine, err := svc.ListByUser(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, owner.ID, mine[0].UserID)

	_, err = svc.ListByUser(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
