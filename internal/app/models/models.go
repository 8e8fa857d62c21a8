package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleAdmin   RoleType = "admin"
)

// IsValid reports whether the role is one of the known roles
func (r RoleType) IsValid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// ApplicationStatus defines the review state of an application
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

// IsValid reports whether the status is one of the known statuses
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether an admin may move an application from the
// current status to next. The policy is flat: any valid status is reachable
// from any other at any time. A restricted transition graph only needs to
// change this function.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	return next.IsValid()
}
