package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/scholarhub/internal/app/models"
	"github.com/yigit/scholarhub/internal/pkg/apperrors"
)

func newTestApplicationService(t *testing.T) (ApplicationService, ScholarshipService, *fakeApplicationRepo) {
	t.Helper()
	scholarshipRepo := newFakeScholarshipRepo()
	applicationRepo := newFakeApplicationRepo(scholarshipRepo)
	return NewApplicationService(applicationRepo, scholarshipRepo),
		NewScholarshipService(scholarshipRepo),
		applicationRepo
}

func TestApplyCreatesPendingApplication(t *testing.T) {
	appSvc, schSvc, _ := newTestApplicationService(t)
	ctx := context.Background()

	scholarship, err := schSvc.Create(ctx, newCreateScholarshipRequest(), 1)
	require.NoError(t, err)

	application, err := appSvc.Apply(ctx, 42, scholarship.ID)
	require.NoError(t, err)

	assert.Positive(t, application.ID)
	assert.Equal(t, int64(42), application.StudentID)
	assert.Equal(t, scholarship.ID, application.ScholarshipID)
	assert.Equal(t, models.StatusPending, application.Status)
}

func TestApplyToMissingScholarship(t *testing.T) {
	appSvc, _, applicationRepo := newTestApplicationService(t)

	_, err := appSvc.Apply(context.Background(), 42, 99)
	assert.ErrorIs(t, err, apperrors.ErrScholarshipNotFound)
	assert.Empty(t, applicationRepo.applications)
}

func TestApplyTwiceIsAllowed(t *testing.T) {
	appSvc, schSvc, _ := newTestApplicationService(t)
	ctx := context.Background()

	scholarship, err := schSvc.Create(ctx, newCreateScholarshipRequest(), 1)
	require.NoError(t, err)

	first, err := appSvc.Apply(ctx, 42, scholarship.ID)
	require.NoError(t, err)
	second, err := appSvc.Apply(ctx, 42, scholarship.ID)
	require.NoError(t, err)

	// No uniqueness rule exists on (student, scholarship); both rows stand.
	assert.NotEqual(t, first.ID, second.ID)

	mine, err := appSvc.ListByStudent(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestListByStudentToleratesDeletedScholarship(t *testing.T) {
	appSvc, schSvc, _ := newTestApplicationService(t)
	ctx := context.Background()

	scholarship, err := schSvc.Create(ctx, newCreateScholarshipRequest(), 1)
	require.NoError(t, err)

	_, err = appSvc.Apply(ctx, 42, scholarship.ID)
	require.NoError(t, err)

	require.NoError(t, schSvc.Delete(ctx, scholarship.ID))

	mine, err := appSvc.ListByStudent(ctx, 42)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	// The application survives the deletion; the joined scholarship is simply
	// absent.
	assert.Nil(t, mine[0].Scholarship)
	assert.Equal(t, scholarship.ID, mine[0].ScholarshipID)
}

func TestListByScholarship(t *testing.T) {
	appSvc, schSvc, _ := newTestApplicationService(t)
	ctx := context.Background()

	scholarship, err := schSvc.Create(ctx, newCreateScholarshipRequest(), 1)
	require.NoError(t, err)

	_, err = appSvc.Apply(ctx, 42, scholarship.ID)
	require.NoError(t, err)
	_, err = appSvc.Apply(ctx, 43, scholarship.ID)
	require.NoError(t, err)

	applications, err := appSvc.ListByScholarship(ctx, scholarship.ID)
	require.NoError(t, err)
	assert.Len(t, applications, 2)

	none, err := appSvc.ListByScholarship(ctx, scholarship.ID+1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateStatus(t *testing.T) {
	appSvc, schSvc, _ := newTestApplicationService(t)
	ctx := context.Background()

	scholarship, err := schSvc.Create(ctx, newCreateScholarshipRequest(), 1)
	require.NoError(t, err)
	application, err := appSvc.Apply(ctx, 42, scholarship.ID)
	require.NoError(t, err)

	updated, err := appSvc.UpdateStatus(ctx, application.ID, models.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)

	// Reversals are allowed; the status simply follows the latest decision.
	updated, err = appSvc.UpdateStatus(ctx, application.ID, models.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, updated.Status)
}

func TestUpdateStatusIsIdempotent(t *testing.T) {
	appSvc, schSvc, applicationRepo := newTestApplicationService(t)
	ctx := context.Background()

	scholarship, err := schSvc.Create(ctx, newCreateScholarshipRequest(), 1)
	require.NoError(t, err)
	application, err := appSvc.Apply(ctx, 42, scholarship.ID)
	require.NoError(t, err)

	first, err := appSvc.UpdateStatus(ctx, application.ID, models.StatusApproved)
	require.NoError(t, err)
	second, err := appSvc.UpdateStatus(ctx, application.ID, models.StatusApproved)
	require.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.Len(t, applicationRepo.applications, 1)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	appSvc, _, _ := newTestApplicationService(t)

	_, err := appSvc.UpdateStatus(context.Background(), 1, models.ApplicationStatus("withdrawn"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestUpdateStatusNotFound(t *testing.T) {
	appSvc, _, _ := newTestApplicationService(t)

	_, err := appSvc.UpdateStatus(context.Background(), 99, models.StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}
