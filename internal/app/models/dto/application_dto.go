package dto

import "github.com/yigit/scholarhub/internal/app/models"

// ApplyRequest represents a student's application to a scholarship
type ApplyRequest struct {
	ScholarshipID int64 `json:"scholarshipId" binding:"required"`
}

// UpdateApplicationStatusRequest represents an admin's status decision
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required"`
}
