package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/scholarhub/internal/app/models"
	"github.com/yigit/scholarhub/internal/app/models/dto"
	"github.com/yigit/scholarhub/internal/app/repositories"
	"github.com/yigit/scholarhub/internal/pkg/apperrors"
)

// ScholarshipService defines the interface for scholarship operations
type ScholarshipService interface {
	Create(ctx context.Context, req *dto.CreateScholarshipRequest, creatorID int64) (*models.Scholarship, error)
	GetAll(ctx context.Context) ([]*models.Scholarship, error)
	GetByID(ctx context.Context, id int64) (*models.Scholarship, error)
	Update(ctx context.Context, id int64, req *dto.UpdateScholarshipRequest) (*models.Scholarship, error)
	Delete(ctx context.Context, id int64) error
}

// scholarshipServiceImpl implements the ScholarshipService interface
type scholarshipServiceImpl struct {
	scholarshipRepo repositories.IScholarshipRepository
}

// NewScholarshipService creates a new scholarship service instance
func NewScholarshipService(scholarshipRepo repositories.IScholarshipRepository) ScholarshipService {
	return &scholarshipServiceImpl{
		scholarshipRepo: scholarshipRepo,
	}
}

// Create persists a new scholarship posting owned by the calling admin
func (s *scholarshipServiceImpl) Create(ctx context.Context, req *dto.CreateScholarshipRequest, creatorID int64) (*models.Scholarship, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", apperrors.ErrValidationFailed)
	}

	scholarship := &models.Scholarship{
		Title:       req.Title,
		Description: req.Description,
		Eligibility: req.Eligibility,
		Deadline:    req.Deadline,
		Amount:      req.Amount,
		CreatedByID: creatorID,
	}

	if err := s.scholarshipRepo.Create(ctx, scholarship); err != nil {
		return nil, fmt.Errorf("error creating scholarship: %w", err)
	}

	return scholarship, nil
}

// GetAll retrieves all scholarships with creator name and email joined in
func (s *scholarshipServiceImpl) GetAll(ctx context.Context) ([]*models.Scholarship, error) {
	scholarships, err := s.scholarshipRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving scholarships: %w", err)
	}
	return scholarships, nil
}

// GetByID retrieves a single scholarship by ID
func (s *scholarshipServiceImpl) GetByID(ctx context.Context, id int64) (*models.Scholarship, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid scholarship ID", apperrors.ErrValidationFailed)
	}

	scholarship, err := s.scholarshipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrScholarshipNotFound) {
			return nil, apperrors.ErrScholarshipNotFound
		}
		return nil, fmt.Errorf("error retrieving scholarship: %w", err)
	}
	return scholarship, nil
}

// Update applies a partial update restricted to the mutable fields
// (title, description, eligibility, deadline, amount). Fields absent from the
// request keep their current value; created_by is never touched.
func (s *scholarshipServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateScholarshipRequest) (*models.Scholarship, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid scholarship ID", apperrors.ErrValidationFailed)
	}
	if req == nil || req.Empty() {
		return nil, fmt.Errorf("%w: no updatable fields supplied", apperrors.ErrValidationFailed)
	}

	scholarship, err := s.scholarshipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrScholarshipNotFound) {
			return nil, apperrors.ErrScholarshipNotFound
		}
		return nil, fmt.Errorf("error retrieving scholarship: %w", err)
	}

	if req.Title != nil {
		scholarship.Title = *req.Title
	}
	if req.Description != nil {
		scholarship.Description = *req.Description
	}
	if req.Eligibility != nil {
		scholarship.Eligibility = *req.Eligibility
	}
	if req.Deadline != nil {
		scholarship.Deadline = *req.Deadline
	}
	if req.Amount != nil {
		scholarship.Amount = *req.Amount
	}

	if err := s.scholarshipRepo.Update(ctx, scholarship); err != nil {
		if errors.Is(err, apperrors.ErrScholarshipNotFound) {
			return nil, apperrors.ErrScholarshipNotFound
		}
		return nil, fmt.Errorf("error updating scholarship: %w", err)
	}

	return scholarship, nil
}

// Delete removes a scholarship. Any admin may delete any posting; existing
// applications referencing it are left untouched.
func (s *scholarshipServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid scholarship ID", apperrors.ErrValidationFailed)
	}

	err := s.scholarshipRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrScholarshipNotFound) {
			return apperrors.ErrScholarshipNotFound
		}
		return fmt.Errorf("error deleting scholarship: %w", err)
	}
	return nil
}
