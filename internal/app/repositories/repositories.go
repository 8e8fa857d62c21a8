package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories aggregates all repository instances
type Repositories struct {
	UserRepository        *UserRepository
	ScholarshipRepository *ScholarshipRepository
	ApplicationRepository *ApplicationRepository
}

// NewRepositories creates all repositories sharing a single connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		ScholarshipRepository: NewScholarshipRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
	}
}
