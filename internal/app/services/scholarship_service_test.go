package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/scholarhub/internal/app/models/dto"
	"github.com/yigit/scholarhub/internal/pkg/apperrors"
)

func strPtr(s string) *string        { return &s }
func floatPtr(f float64) *float64    { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func newCreateScholarshipRequest() *dto.CreateScholarshipRequest {
	return &dto.CreateScholarshipRequest{
		Title:       "Merit Award",
		Description: "Awarded for academic excellence",
		Eligibility: "GPA above 3.5",
		Deadline:    time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		Amount:      5000,
	}
}

func TestScholarshipCreateSetsCreator(t *testing.T) {
	svc := NewScholarshipService(newFakeScholarshipRepo())

	scholarship, err := svc.Create(context.Background(), newCreateScholarshipRequest(), 7)
	require.NoError(t, err)

	assert.Positive(t, scholarship.ID)
	assert.Equal(t, int64(7), scholarship.CreatedByID)
	assert.Equal(t, "Merit Award", scholarship.Title)
}

func TestScholarshipGetAllEmpty(t *testing.T) {
	svc := NewScholarshipService(newFakeScholarshipRepo())

	scholarships, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, scholarships)
	assert.Empty(t, scholarships)
}

func TestScholarshipGetByIDNotFound(t *testing.T) {
	svc := NewScholarshipService(newFakeScholarshipRepo())

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrScholarshipNotFound)
}

func TestScholarshipUpdateAppliesOnlySuppliedFields(t *testing.T) {
	repo := newFakeScholarshipRepo()
	svc := NewScholarshipService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, newCreateScholarshipRequest(), 7)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &dto.UpdateScholarshipRequest{
		Title:  strPtr("Merit Award 2026"),
		Amount: floatPtr(7500),
	})
	require.NoError(t, err)

	assert.Equal(t, "Merit Award 2026", updated.Title)
	assert.Equal(t, 7500.0, updated.Amount)
	// Untouched fields keep their values and ownership never changes.
	assert.Equal(t, "Awarded for academic excellence", updated.Description)
	assert.Equal(t, "GPA above 3.5", updated.Eligibility)
	assert.Equal(t, int64(7), updated.CreatedByID)

	stored, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Merit Award 2026", stored.Title)
	assert.Equal(t, int64(7), stored.CreatedByID)
}

func TestScholarshipUpdateDeadline(t *testing.T) {
	svc := NewScholarshipService(newFakeScholarshipRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, newCreateScholarshipRequest(), 7)
	require.NoError(t, err)

	newDeadline := time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateScholarshipRequest{
		Deadline: timePtr(newDeadline),
	})
	require.NoError(t, err)
	assert.True(t, updated.Deadline.Equal(newDeadline))
}

func TestScholarshipUpdateRejectsEmptyPatch(t *testing.T) {
	svc := NewScholarshipService(newFakeScholarshipRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, newCreateScholarshipRequest(), 7)
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, &dto.UpdateScholarshipRequest{})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestScholarshipUpdateNotFound(t *testing.T) {
	svc := NewScholarshipService(newFakeScholarshipRepo())

	_, err := svc.Update(context.Background(), 99, &dto.UpdateScholarshipRequest{
		Title: strPtr("anything"),
	})
	assert.ErrorIs(t, err, apperrors.ErrScholarshipNotFound)
}

func TestScholarshipDelete(t *testing.T) {
	svc := NewScholarshipService(newFakeScholarshipRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, newCreateScholarshipRequest(), 7)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrScholarshipNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), apperrors.ErrScholarshipNotFound)
}
