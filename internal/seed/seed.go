package seed

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/scholarhub/internal/app/models"
	appRepos "github.com/yigit/scholarhub/internal/app/repositories"
	"github.com/yigit/scholarhub/internal/pkg/auth"
)

// Default admin credentials, overridable through the environment
const (
	defaultAdminName     = "Administrator"
	defaultAdminEmail    = "admin@scholarhub.app"
	defaultAdminPassword = "changeme"
)

// CreateDefaultData creates a default admin account when no admin exists yet.
// Scholarships can only be created by admins, so a fresh database needs one
// to be usable at all.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.RoleExists(ctx, appModels.RoleAdmin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for existing admin account")
		return err
	}
	if exists {
		return nil
	}

	email := defaultAdminEmail
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		email = v
	}
	password := defaultAdminPassword
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		password = v
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &appModels.User{
		Name:     defaultAdminName,
		Email:    email,
		Password: hashed,
		Role:     appModels.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Str("email", email).Msg("Default admin account created")
	return nil
}
