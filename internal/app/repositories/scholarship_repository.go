package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/scholarhub/internal/app/models"
	"github.com/yigit/scholarhub/internal/pkg/apperrors"
)

// IScholarshipRepository defines the interface for scholarship database operations
type IScholarshipRepository interface {
	Create(ctx context.Context, scholarship *models.Scholarship) error
	GetAll(ctx context.Context) ([]*models.Scholarship, error)
	GetByID(ctx context.Context, id int64) (*models.Scholarship, error)
	Update(ctx context.Context, scholarship *models.Scholarship) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// ScholarshipRepository handles scholarship database operations
type ScholarshipRepository struct {
	db *pgxpool.Pool
}

// NewScholarshipRepository creates a new ScholarshipRepository
func NewScholarshipRepository(db *pgxpool.Pool) *ScholarshipRepository {
	return &ScholarshipRepository{
		db: db,
	}
}

// Create inserts a new scholarship and fills in the generated ID and timestamps
func (r *ScholarshipRepository) Create(ctx context.Context, scholarship *models.Scholarship) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO scholarships (title, description, eligibility, deadline, amount, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		scholarship.Title, scholarship.Description, scholarship.Eligibility,
		scholarship.Deadline, scholarship.Amount, scholarship.CreatedByID).Scan(
		&scholarship.ID, &scholarship.CreatedAt, &scholarship.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating scholarship: %w", err)
	}

	return nil
}

// GetAll retrieves every scholarship with the creator's name and email joined in.
// The creator join is a LEFT JOIN: a missing user must not hide the posting.
func (r *ScholarshipRepository) GetAll(ctx context.Context) ([]*models.Scholarship, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.title, s.description, s.eligibility, s.deadline, s.amount,
		       s.created_by, s.created_at, s.updated_at,
		       u.id, u.name, u.email
		FROM scholarships s
		LEFT JOIN users u ON u.id = s.created_by
		ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving scholarships: %w", err)
	}
	defer rows.Close()

	scholarships := make([]*models.Scholarship, 0)
	for rows.Next() {
		scholarship, err := scanScholarshipWithCreator(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning scholarship: %w", err)
		}
		scholarships = append(scholarships, scholarship)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scholarships: %w", err)
	}

	return scholarships, nil
}

// GetByID retrieves a scholarship by ID with the creator's name and email joined in
func (r *ScholarshipRepository) GetByID(ctx context.Context, id int64) (*models.Scholarship, error) {
	row := r.db.QueryRow(ctx, `
		SELECT s.id, s.title, s.description, s.eligibility, s.deadline, s.amount,
		       s.created_by, s.created_at, s.updated_at,
		       u.id, u.name, u.email
		FROM scholarships s
		LEFT JOIN users u ON u.id = s.created_by
		WHERE s.id = $1`,
		id)

	scholarship, err := scanScholarshipWithCreator(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScholarshipNotFound
		}
		return nil, fmt.Errorf("error retrieving scholarship: %w", err)
	}

	return scholarship, nil
}

// Update replaces the mutable columns of an existing scholarship.
// created_by is deliberately not part of the SET list.
func (r *ScholarshipRepository) Update(ctx context.Context, scholarship *models.Scholarship) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE scholarships
		SET title = $1, description = $2, eligibility = $3, deadline = $4, amount = $5,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $6`,
		scholarship.Title, scholarship.Description, scholarship.Eligibility,
		scholarship.Deadline, scholarship.Amount, scholarship.ID)

	if err != nil {
		return fmt.Errorf("error updating scholarship: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrScholarshipNotFound
	}

	return nil
}

// Delete removes a scholarship. Applications referencing it are left in place.
func (r *ScholarshipRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM scholarships WHERE id = $1`,
		id)

	if err != nil {
		return fmt.Errorf("error deleting scholarship: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrScholarshipNotFound
	}

	return nil
}

// Exists checks whether a scholarship with the given ID exists
func (r *ScholarshipRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM scholarships WHERE id = $1)`,
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking scholarship existence: %w", err)
	}

	return exists, nil
}

// scanScholarshipWithCreator scans a scholarship row with its LEFT JOINed creator
func scanScholarshipWithCreator(row pgx.Row) (*models.Scholarship, error) {
	scholarship := &models.Scholarship{}
	var creatorID *int64
	var creatorName, creatorEmail *string

	err := row.Scan(
		&scholarship.ID, &scholarship.Title, &scholarship.Description,
		&scholarship.Eligibility, &scholarship.Deadline, &scholarship.Amount,
		&scholarship.CreatedByID, &scholarship.CreatedAt, &scholarship.UpdatedAt,
		&creatorID, &creatorName, &creatorEmail)
	if err != nil {
		return nil, err
	}

	if creatorID != nil {
		scholarship.CreatedBy = &models.UserRef{
			ID:    *creatorID,
			Name:  *creatorName,
			Email: *creatorEmail,
		}
	}

	return scholarship, nil
}
