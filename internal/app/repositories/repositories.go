// Package repositories contains the database access layer.
package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository for dependency wiring.
type Repositories struct {
	UserRepository        *UserRepository
	AdminRepository       *AdminRepository
	TokenRepository       *TokenRepository
	ReservationRepository *ReservationRepository
}

// NewRepositories creates all repositories over a shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		AdminRepository:       NewAdminRepository(db),
		TokenRepository:       NewTokenRepository(db),
		ReservationRepository: NewReservationRepository(db),
	}
}
