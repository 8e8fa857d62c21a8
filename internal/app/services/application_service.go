package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/scholarhub/internal/app/models"
	"github.com/yigit/scholarhub/internal/app/repositories"
	"github.com/yigit/scholarhub/internal/pkg/apperrors"
)

// ApplicationService defines the interface for application operations
type ApplicationService interface {
	Apply(ctx context.Context, studentID, scholarshipID int64) (*models.Application, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Application, error)
	ListByScholarship(ctx context.Context, scholarshipID int64) ([]*models.Application, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error)
}

// applicationServiceImpl implements the ApplicationService interface
type applicationServiceImpl struct {
	applicationRepo repositories.IApplicationRepository
	scholarshipRepo repositories.IScholarshipRepository
}

// NewApplicationService creates a new application service instance
func NewApplicationService(applicationRepo repositories.IApplicationRepository, scholarshipRepo repositories.IScholarshipRepository) ApplicationService {
	return &applicationServiceImpl{
		applicationRepo: applicationRepo,
		scholarshipRepo: scholarshipRepo,
	}
}

// Apply files an application for a student against an existing scholarship.
// The existence check and the insert are two separate store calls; a
// scholarship deleted in between leaves a dangling reference, which readers
// tolerate. Duplicate applications and applications past the deadline are
// accepted.
func (s *applicationServiceImpl) Apply(ctx context.Context, studentID, scholarshipID int64) (*models.Application, error) {
	if scholarshipID <= 0 {
		return nil, fmt.Errorf("%w: invalid scholarship ID", apperrors.ErrValidationFailed)
	}

	exists, err := s.scholarshipRepo.Exists(ctx, scholarshipID)
	if err != nil {
		return nil, fmt.Errorf("error checking scholarship: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrScholarshipNotFound
	}

	application := &models.Application{
		StudentID:     studentID,
		ScholarshipID: scholarshipID,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("error creating application: %w", err)
	}

	return application, nil
}

// ListByStudent retrieves a student's applications with each scholarship joined
func (s *applicationServiceImpl) ListByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	applications, err := s.applicationRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications: %w", err)
	}
	return applications, nil
}

// ListByScholarship retrieves all applications for a scholarship with student
// name and email joined
func (s *applicationServiceImpl) ListByScholarship(ctx context.Context, scholarshipID int64) ([]*models.Application, error) {
	if scholarshipID <= 0 {
		return nil, fmt.Errorf("%w: invalid scholarship ID", apperrors.ErrValidationFailed)
	}

	applications, err := s.applicationRepo.GetByScholarship(ctx, scholarshipID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications: %w", err)
	}
	return applications, nil
}

// UpdateStatus moves an application to the given status. The status must be a
// known one; beyond that the transition policy is whatever
// ApplicationStatus.CanTransitionTo allows.
func (s *applicationServiceImpl) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid application ID", apperrors.ErrValidationFailed)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: status must be pending, approved or rejected", apperrors.ErrInvalidStatus)
	}

	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	if !application.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: cannot move from %s to %s", apperrors.ErrInvalidStatus, application.Status, status)
	}

	updated, err := s.applicationRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, apperrors.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error updating application status: %w", err)
	}

	return updated, nil
}
