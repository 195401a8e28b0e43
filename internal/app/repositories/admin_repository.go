package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/upslabs/reservalab/internal/app/models"
	"github.com/upslabs/reservalab/internal/pkg/apperrors"
	"github.com/upslabs/reservalab/internal/pkg/dberrors"
)

// IAdminRepository defines the administrator database operations
type IAdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByCorreo(ctx context.Context, correo string) (*models.Admin, error)
	CorreoExists(ctx context.Context, correo string) (bool, error)
}

// AdminRepository handles administrator database operations
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create inserts an administrator and fills in its generated ID
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO admins (nombre, apellido, correo, password_hash, cedula, carrera)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		admin.Nombre, admin.Apellido, admin.Correo, admin.PasswordHash, admin.Cedula, admin.Carrera).
		Scan(&admin.ID, &admin.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_admins_correo") {
			return apperrors.ErrAdminEmailTaken
		}
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}

// GetByCorreo retrieves an administrator by email
func (r *AdminRepository) GetByCorreo(ctx context.Context, correo string) (*models.Admin, error) {
	admin := &models.Admin{}
	err := r.db.QueryRow(ctx, `
		SELECT id, nombre, apellido, correo, password_hash, cedula, carrera, created_at
		FROM admins
		WHERE correo = $1`,
		correo).Scan(
		&admin.ID, &admin.Nombre, &admin.Apellido, &admin.Correo,
		&admin.PasswordHash, &admin.Cedula, &admin.Carrera, &admin.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return admin, nil
}

// CorreoExists checks whether an admin email is already registered
func (r *AdminRepository) CorreoExists(ctx context.Context, correo string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM admins WHERE correo = $1)`,
		correo).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking admin email: %w", err)
	}

	return exists, nil
}
