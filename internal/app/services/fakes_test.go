package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/scholarhub/internal/app/models"
	"github.com/yigit/scholarhub/internal/pkg/apperrors"
)

// In-memory repository fakes. They mirror the persistence contracts closely
// enough for service tests: sentinel not-found errors, unique-violation on
// duplicate email, and a LEFT-JOIN-like nil scholarship for dangling
// application references.

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) RoleExists(_ context.Context, role models.RoleType) (bool, error) {
	for _, user := range r.users {
		if user.Role == role {
			return true, nil
		}
	}
	return false, nil
}

type fakeScholarshipRepo struct {
	nextID       int64
	scholarships map[int64]*models.Scholarship
}

func newFakeScholarshipRepo() *fakeScholarshipRepo {
	return &fakeScholarshipRepo{scholarships: make(map[int64]*models.Scholarship)}
}

func (r *fakeScholarshipRepo) Create(_ context.Context, scholarship *models.Scholarship) error {
	r.nextID++
	scholarship.ID = r.nextID
	scholarship.CreatedAt = time.Now()
	scholarship.UpdatedAt = scholarship.CreatedAt
	clone := *scholarship
	r.scholarships[scholarship.ID] = &clone
	return nil
}

func (r *fakeScholarshipRepo) GetAll(_ context.Context) ([]*models.Scholarship, error) {
	result := make([]*models.Scholarship, 0, len(r.scholarships))
	for _, scholarship := range r.scholarships {
		clone := *scholarship
		result = append(result, &clone)
	}
	return result, nil
}

func (r *fakeScholarshipRepo) GetByID(_ context.Context, id int64) (*models.Scholarship, error) {
	scholarship, ok := r.scholarships[id]
	if !ok {
		return nil, apperrors.ErrScholarshipNotFound
	}
	clone := *scholarship
	return &clone, nil
}

func (r *fakeScholarshipRepo) Update(_ context.Context, scholarship *models.Scholarship) error {
	stored, ok := r.scholarships[scholarship.ID]
	if !ok {
		return apperrors.ErrScholarshipNotFound
	}
	stored.Title = scholarship.Title
	stored.Description = scholarship.Description
	stored.Eligibility = scholarship.Eligibility
	stored.Deadline = scholarship.Deadline
	stored.Amount = scholarship.Amount
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *fakeScholarshipRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.scholarships[id]; !ok {
		return apperrors.ErrScholarshipNotFound
	}
	delete(r.scholarships, id)
	return nil
}

func (r *fakeScholarshipRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.scholarships[id]
	return ok, nil
}

type fakeApplicationRepo struct {
	nextID       int64
	applications map[int64]*models.Application
	scholarships *fakeScholarshipRepo
}

func newFakeApplicationRepo(scholarships *fakeScholarshipRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		applications: make(map[int64]*models.Application),
		scholarships: scholarships,
	}
}

func (r *fakeApplicationRepo) Create(_ context.Context, application *models.Application) error {
	r.nextID++
	application.ID = r.nextID
	application.Status = models.StatusPending
	application.AppliedAt = time.Now()
	clone := *application
	r.applications[application.ID] = &clone
	return nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id int64) (*models.Application, error) {
	application, ok := r.applications[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	clone := *application
	return &clone, nil
}

func (r *fakeApplicationRepo) GetByStudent(_ context.Context, studentID int64) ([]*models.Application, error) {
	result := make([]*models.Application, 0)
	for _, application := range r.applications {
		if application.StudentID != studentID {
			continue
		}
		clone := *application
		// LEFT JOIN semantics: the scholarship stays nil when it no longer exists
		if scholarship, ok := r.scholarships.scholarships[application.ScholarshipID]; ok {
			scholarshipClone := *scholarship
			clone.Scholarship = &scholarshipClone
		}
		result = append(result, &clone)
	}
	return result, nil
}

func (r *fakeApplicationRepo) GetByScholarship(_ context.Context, scholarshipID int64) ([]*models.Application, error) {
	result := make([]*models.Application, 0)
	for _, application := range r.applications {
		if application.ScholarshipID == scholarshipID {
			clone := *application
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id int64, status models.ApplicationStatus) (*models.Application, error) {
	application, ok := r.applications[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	application.Status = status
	clone := *application
	return &clone, nil
}
