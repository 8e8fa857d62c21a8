package models

import (
	"time"
)

// Application defines the application model based on the 'applications' table.
// ScholarshipID is not a foreign key: deleting a scholarship leaves its
// applications in place, so the joined Scholarship and Student relations are
// nullable and readers must tolerate their absence.
type Application struct {
	ID            int64             `json:"id" db:"id" example:"1"`
	StudentID     int64             `json:"studentId" db:"student_id"`
	ScholarshipID int64             `json:"scholarshipId" db:"scholarship_id"`
	Status        ApplicationStatus `json:"status" db:"status" example:"pending"`
	AppliedAt     time.Time         `json:"appliedAt" db:"applied_at"`
	Scholarship   *Scholarship      `json:"scholarship,omitempty"` // Relation, no db tag
	Student       *UserRef          `json:"student,omitempty"`     // Relation, no db tag
}
