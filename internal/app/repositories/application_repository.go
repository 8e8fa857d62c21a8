package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/scholarhub/internal/app/models"
	"github.com/yigit/scholarhub/internal/pkg/apperrors"
)

// IApplicationRepository defines the interface for application database operations
type IApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Application, error)
	GetByScholarship(ctx context.Context, scholarshipID int64) ([]*models.Application, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error)
}

// ApplicationRepository handles application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

// Create inserts a new application with the default pending status and fills
// in the generated ID, status and timestamp
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO applications (student_id, scholarship_id)
		VALUES ($1, $2)
		RETURNING id, status, applied_at`,
		application.StudentID, application.ScholarshipID).Scan(
		&application.ID, &application.Status, &application.AppliedAt)

	if err != nil {
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	application := &models.Application{}
	err := r.db.QueryRow(ctx, `
		SELECT id, student_id, scholarship_id, status, applied_at
		FROM applications
		WHERE id = $1`,
		id).Scan(
		&application.ID, &application.StudentID, &application.ScholarshipID,
		&application.Status, &application.AppliedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return application, nil
}

// GetByStudent retrieves all applications of a student with the scholarship
// fully joined. The join is a LEFT JOIN: the scholarship may have been deleted
// since the application was filed, in which case the field stays nil.
func (r *ApplicationRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.student_id, a.scholarship_id, a.status, a.applied_at,
		       s.id, s.title, s.description, s.eligibility, s.deadline, s.amount,
		       s.created_by, s.created_at, s.updated_at
		FROM applications a
		LEFT JOIN scholarships s ON s.id = a.scholarship_id
		WHERE a.student_id = $1
		ORDER BY a.applied_at DESC`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications: %w", err)
	}
	defer rows.Close()

	applications := make([]*models.Application, 0)
	for rows.Next() {
		application := &models.Application{}
		var sID, sCreatedBy *int64
		var sTitle, sDescription, sEligibility *string
		var sDeadline, sCreatedAt, sUpdatedAt *time.Time
		var sAmount *float64

		err := rows.Scan(
			&application.ID, &application.StudentID, &application.ScholarshipID,
			&application.Status, &application.AppliedAt,
			&sID, &sTitle, &sDescription, &sEligibility, &sDeadline, &sAmount,
			&sCreatedBy, &sCreatedAt, &sUpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning application: %w", err)
		}

		if sID != nil {
			application.Scholarship = &models.Scholarship{
				ID:          *sID,
				Title:       *sTitle,
				Description: *sDescription,
				Eligibility: *sEligibility,
				Deadline:    *sDeadline,
				Amount:      *sAmount,
				CreatedByID: *sCreatedBy,
				CreatedAt:   *sCreatedAt,
				UpdatedAt:   *sUpdatedAt,
			}
		}

		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applications: %w", err)
	}

	return applications, nil
}

// GetByScholarship retrieves all applications for a scholarship with the
// student's name and email joined in
func (r *ApplicationRepository) GetByScholarship(ctx context.Context, scholarshipID int64) ([]*models.Application, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.student_id, a.scholarship_id, a.status, a.applied_at,
		       u.id, u.name, u.email
		FROM applications a
		LEFT JOIN users u ON u.id = a.student_id
		WHERE a.scholarship_id = $1
		ORDER BY a.applied_at DESC`,
		scholarshipID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications: %w", err)
	}
	defer rows.Close()

	applications := make([]*models.Application, 0)
	for rows.Next() {
		application := &models.Application{}
		var uID *int64
		var uName, uEmail *string

		err := rows.Scan(
			&application.ID, &application.StudentID, &application.ScholarshipID,
			&application.Status, &application.AppliedAt,
			&uID, &uName, &uEmail)
		if err != nil {
			return nil, fmt.Errorf("error scanning application: %w", err)
		}

		if uID != nil {
			application.Student = &models.UserRef{
				ID:    *uID,
				Name:  *uName,
				Email: *uEmail,
			}
		}

		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applications: %w", err)
	}

	return applications, nil
}

// UpdateStatus sets the status of an application and returns the updated record
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error) {
	application := &models.Application{}
	err := r.db.QueryRow(ctx, `
		UPDATE applications
		SET status = $1
		WHERE id = $2
		RETURNING id, student_id, scholarship_id, status, applied_at`,
		status, id).Scan(
		&application.ID, &application.StudentID, &application.ScholarshipID,
		&application.Status, &application.AppliedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error updating application status: %w", err)
	}

	return application, nil
}
