package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/upslabs/reservalab/internal/app/models"
	"github.com/upslabs/reservalab/internal/db"
	"github.com/upslabs/reservalab/internal/pkg/apperrors"
	"github.com/upslabs/reservalab/internal/pkg/dberrors"
)

// ScheduleConstraint is the unique constraint guarding the
// (laboratorio, fecha_prestamo, horario_uso) triple.
const ScheduleConstraint = "uq_lab_schedule"

// IReservationRepository defines the reservation database operations
type IReservationRepository interface {
	Create(ctx context.Context, record *models.LaboratoryRequest) error
	GetByID(ctx context.Context, id int64) (*models.LaboratoryRequest, error)
	ExistsSchedule(ctx context.Context, laboratorio string, fecha time.Time, horario string, excludeID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.LaboratoryRequest, error)
	List(ctx context.Context) ([]*models.LaboratoryRequest, error)
	UpdateFields(ctx context.Context, id int64, set map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

// ReservationRepository handles reservation database operations
type ReservationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReservationRepository creates a new ReservationRepository
func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const reservationColumns = `id, user_id, correo_institucional, nombres_completos, cargo, carrera,
		nivel, discapacidad, materia_motivo, numero_estudiantes, fecha_prestamo,
		horario_uso, descripcion_actividades, laboratorio, equipo, created_at`

func scanReservation(row pgx.Row) (*models.LaboratoryRequest, error) {
	record := &models.LaboratoryRequest{}
	err := row.Scan(
		&record.ID, &record.UserID, &record.CorreoInstitucional, &record.NombresCompletos,
		&record.Cargo, &record.Carrera, &record.Nivel, &record.Discapacidad,
		&record.MateriaMotivo, &record.NumeroEstudiantes, &record.FechaPrestamo,
		&record.HorarioUso, &record.DescripcionActividades, &record.Laboratorio,
		&record.Equipo, &record.CreatedAt)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Create persists a reservation inside a transaction. A unique violation on
// the schedule constraint means a concurrent writer took the slot between
// the caller's pre-check and this insert; it surfaces as ErrScheduleTaken.
func (r *ReservationRepository) Create(ctx context.Context, record *models.LaboratoryRequest) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		return tx.QueryRow(ctx, `
			INSERT INTO laboratory_requests (
				user_id, correo_institucional, nombres_completos, cargo, carrera,
				nivel, discapacidad, materia_motivo, numero_estudiantes,
				fecha_prestamo, horario_uso, descripcion_actividades, laboratorio, equipo)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING id, created_at`,
			record.UserID, record.CorreoInstitucional, record.NombresCompletos,
			record.Cargo, record.Carrera, record.Nivel, record.Discapacidad,
			record.MateriaMotivo, record.NumeroEstudiantes, record.FechaPrestamo,
			record.HorarioUso, record.DescripcionActividades, record.Laboratorio,
			record.Equipo).
			Scan(&record.ID, &record.CreatedAt)
	})

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, ScheduleConstraint) {
			return apperrors.ErrScheduleTaken
		}
		return fmt.Errorf("error creating reservation: %w", err)
	}

	return nil
}

// GetByID retrieves a reservation by ID
func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*models.LaboratoryRequest, error) {
	record, err := scanReservation(r.db.QueryRow(ctx, `
		SELECT `+reservationColumns+`
		FROM laboratory_requests
		WHERE id = $1`,
		id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReservationNotFound
		}
		return nil, fmt.Errorf("error retrieving reservation: %w", err)
	}

	return record, nil
}

// ExistsSchedule is the fast-path existence pre-check on the exact triple.
// excludeID skips the record's own row during updates.
func (r *ReservationRepository) ExistsSchedule(ctx context.Context, laboratorio string, fecha time.Time, horario string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM laboratory_requests
			WHERE laboratorio = $1 AND fecha_prestamo = $2 AND horario_uso = $3 AND id <> $4)`,
		laboratorio, fecha, horario, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking schedule: %w", err)
	}

	return exists, nil
}

// ListByUser returns a user's reservations, newest first
func (r *ReservationRepository) ListByUser(ctx context.Context, userID int64) ([]*models.LaboratoryRequest, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM laboratory_requests
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("error listing reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

// List returns all reservations, newest first
func (r *ReservationRepository) List(ctx context.Context) ([]*models.LaboratoryRequest, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM laboratory_requests
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func collectReservations(rows pgx.Rows) ([]*models.LaboratoryRequest, error) {
	var records []*models.LaboratoryRequest
	for rows.Next() {
		record, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning reservation row: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// UpdateFields applies a partial update inside a transaction. The schedule
// constraint stays authoritative: a violation rolls back and surfaces as
// ErrScheduleTaken, same as on creation.
func (r *ReservationRepository) UpdateFields(ctx context.Context, id int64, set map[string]interface{}) error {
	if len(set) == 0 {
		return nil
	}

	builder := r.sb.Update("laboratory_requests").Where(squirrel.Eq{"id": id})
	for column, value := range set {
		builder = builder.Set(column, value)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrReservationNotFound
		}
		return nil
	})

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, ScheduleConstraint) {
			return apperrors.ErrScheduleTaken
		}
		if errors.Is(err, apperrors.ErrReservationNotFound) {
			return err
		}
		return fmt.Errorf("error updating reservation: %w", err)
	}

	return nil
}

// Delete removes a reservation
func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM laboratory_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrReservationNotFound
	}
	return nil
}
