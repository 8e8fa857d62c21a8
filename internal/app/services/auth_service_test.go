package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/scholarhub/internal/app/models"
	"github.com/yigit/scholarhub/internal/app/models/dto"
	"github.com/yigit/scholarhub/internal/pkg/apperrors"
	"github.com/yigit/scholarhub/internal/pkg/auth"
)

func newTestAuthService() (AuthService, *fakeUserRepo, *auth.JWTService) {
	userRepo := newFakeUserRepo()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "scholarhub.test",
	})
	return NewAuthService(userRepo, jwtService, zerolog.Nop()), userRepo, jwtService
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _, jwtService := newTestAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "s3cret",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "Bearer", registered.TokenType)
	assert.Equal(t, 3600, registered.ExpiresIn)

	logged, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	claims, err := jwtService.ValidateAndExtractClaims(logged.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Positive(t, claims.UserID)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "s3cret",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)

	user, err := userRepo.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "s3cret"))
}

func TestRegisterRejectsInvalidRole(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "s3cret",
		Role:     models.RoleType("superuser"),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegisterDuplicateEmailIsOpaque(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	req := &dto.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "s3cret",
		Role:     models.RoleStudent,
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	// The second attempt fails, but not with anything a caller could use to
	// tell a duplicate email apart from any other persistence failure.
	_, err = svc.Register(ctx, req)
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "s3cret",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, &dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "not-the-password",
	})
	_, unknownEmail := svc.Login(ctx, &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret",
	})

	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, apperrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginRequiresEmailAndPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "a@b.c", Password: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
