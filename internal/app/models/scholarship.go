package models

import (
	"time"
)

// Scholarship defines the scholarship model based on the 'scholarships' table
type Scholarship struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Title       string    `json:"title" db:"title" example:"Merit Scholarship 2025"`
	Description string    `json:"description" db:"description"`
	Eligibility string    `json:"eligibility" db:"eligibility" example:"GPA above 3.0"`
	Deadline    time.Time `json:"deadline" db:"deadline" example:"2025-12-31T23:59:59Z"`
	Amount      float64   `json:"amount" db:"amount" example:"5000"`
	CreatedByID int64     `json:"createdById" db:"created_by"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
	CreatedBy   *UserRef  `json:"createdBy,omitempty"` // Relation, no db tag
}
