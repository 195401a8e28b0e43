package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/upslabs/reservalab/internal/app/models"
	"github.com/upslabs/reservalab/internal/pkg/apperrors"
	"github.com/upslabs/reservalab/internal/pkg/dberrors"
)

// IUserRepository defines the user database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByCorreo(ctx context.Context, correo string) (*models.User, error)
	CorreoExists(ctx context.Context, correo string, excludeID int64) (bool, error)
	List(ctx context.Context) ([]*models.User, error)
	UpdateFields(ctx context.Context, id int64, set map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a user and fills in its generated ID
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (nombre, apellido, correo, password_hash, cedula, carrera)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		user.Nombre, user.Apellido, user.Correo, user.PasswordHash, user.Cedula, user.Carrera).
		Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_users_correo") {
			return apperrors.ErrEmailTaken
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, nombre, apellido, correo, password_hash, cedula, carrera, created_at
		FROM users
		WHERE id = $1`,
		id).Scan(
		&user.ID, &user.Nombre, &user.Apellido, &user.Correo,
		&user.PasswordHash, &user.Cedula, &user.Carrera, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByCorreo retrieves a user by email
func (r *UserRepository) GetByCorreo(ctx context.Context, correo string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, nombre, apellido, correo, password_hash, cedula, carrera, created_at
		FROM users
		WHERE correo = $1`,
		correo).Scan(
		&user.ID, &user.Nombre, &user.Apellido, &user.Correo,
		&user.PasswordHash, &user.Cedula, &user.Carrera, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// CorreoExists checks for an email collision, optionally excluding one
// record (its own id during updates).
func (r *UserRepository) CorreoExists(ctx context.Context, correo string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE correo = $1 AND id <> $2)`,
		correo, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// List returns all users, newest first
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, nombre, apellido, correo, password_hash, cedula, carrera, created_at
		FROM users
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Nombre, &user.Apellido, &user.Correo,
			&user.PasswordHash, &user.Cedula, &user.Carrera, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// UpdateFields applies a partial update built from the present columns only.
func (r *UserRepository) UpdateFields(ctx context.Context, id int64, set map[string]interface{}) error {
	if len(set) == 0 {
		return nil
	}

	builder := r.sb.Update("users").Where(squirrel.Eq{"id": id})
	for column, value := range set {
		builder = builder.Set(column, value)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_users_correo") {
			return apperrors.ErrEmailTaken
		}
		return fmt.Errorf("error updating user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete removes a user; owned reservations go with it via the FK cascade.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
