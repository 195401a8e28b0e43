package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/upslabs/reservalab/internal/pkg/dberrors"
)

// ITokenRepository defines the revoked-token operations
type ITokenRepository interface {
	Revoke(ctx context.Context, jti string) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// TokenRepository records revoked token identifiers. The table is
// append-only; rows are never updated or removed.
type TokenRepository struct {
	db *pgxpool.Pool
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{db: db}
}

// Revoke stores a token's jti. Revoking the same jti twice is a no-op.
func (r *TokenRepository) Revoke(ctx context.Context, jti string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO revoked_tokens (jti) VALUES ($1)`,
		jti)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_revoked_tokens_jti") {
			return nil
		}
		return fmt.Errorf("error revoking token: %w", err)
	}
	return nil
}

// IsRevoked checks whether a jti has been revoked
func (r *TokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE jti = $1)`,
		jti).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking token revocation: %w", err)
	}
	return exists, nil
}
