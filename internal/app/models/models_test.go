package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleTypeIsValid(t *testing.T) {
	assert.True(t, RoleStudent.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, RoleType("instructor").IsValid())
	assert.False(t, RoleType("").IsValid())
}

func TestApplicationStatusIsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusApproved.IsValid())
	assert.True(t, StatusRejected.IsValid())
	assert.False(t, ApplicationStatus("withdrawn").IsValid())
	assert.False(t, ApplicationStatus("").IsValid())
}

func TestCanTransitionToIsFlat(t *testing.T) {
	statuses := []ApplicationStatus{StatusPending, StatusApproved, StatusRejected}

	// Any valid status is reachable from any other, including itself.
	for _, from := range statuses {
		for _, to := range statuses {
			assert.True(t, from.CanTransitionTo(to), "%s -> %s should be allowed", from, to)
		}
	}

	for _, from := range statuses {
		assert.False(t, from.CanTransitionTo(ApplicationStatus("withdrawn")))
	}
}
