package dto

import "time"

// CreateScholarshipRequest represents a scholarship creation request
type CreateScholarshipRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Eligibility string    `json:"eligibility" binding:"required"`
	Deadline    time.Time `json:"deadline" binding:"required"`
	Amount      float64   `json:"amount" binding:"required"`
}

// UpdateScholarshipRequest represents a partial scholarship update.
// Pointer fields form the allow-list of mutable columns: only the supplied
// ones are written, and createdBy can never be overwritten through this path.
type UpdateScholarshipRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Eligibility *string    `json:"eligibility,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Amount      *float64   `json:"amount,omitempty"`
}

// Empty reports whether the update carries no fields at all
func (r *UpdateScholarshipRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Eligibility == nil &&
		r.Deadline == nil && r.Amount == nil
}
