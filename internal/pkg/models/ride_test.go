package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		name    string
		from    RideStatus
		to      RideStatus
		allowed bool
	}{
		{"pending to assigned", RideStatusPending, RideStatusAssigned, true},
		{"pending to cancelled", RideStatusPending, RideStatusCancelled, true},
		{"pending to completed", RideStatusPending, RideStatusCompleted, false},
		{"assigned to completed", RideStatusAssigned, RideStatusCompleted, true},
		{"assigned to transferred", RideStatusAssigned, RideStatusTransferred, true},
		{"assigned to pending", RideStatusAssigned, RideStatusPending, false},
		{"transferred to assigned", RideStatusTransferred, RideStatusAssigned, true},
		{"transferred to completed", RideStatusTransferred, RideStatusCompleted, false},
		{"completed is terminal", RideStatusCompleted, RideStatusCancelled, false},
		{"cancelled is terminal", RideStatusCancelled, RideStatusAssigned, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to))
		})
	}
}

func TestRideStatusIsTerminal(t *testing.T) {
	assert.True(t, RideStatusCompleted.IsTerminal())
	assert.True(t, RideStatusCancelled.IsTerminal())
	assert.False(t, RideStatusPending.IsTerminal())
	assert.False(t, RideStatusAssigned.IsTerminal())
	assert.False(t, RideStatusTransferred.IsTerminal())
}

func TestDriverDisplayRating(t *testing.T) {
	unrated := &Driver{}
	assert.Equal(t, DefaultDisplayRating, unrated.DisplayRating())

	rating := 3.7
	rated := &Driver{Rating: &rating}
	assert.Equal(t, 3.7, rated.DisplayRating())
}

func TestDriverEligible(t *testing.T) {
	assert.True(t, (&Driver{Available: true, IsActive: true}).Eligible())
	assert.False(t, (&Driver{Available: true, IsActive: false}).Eligible())
	assert.False(t, (&Driver{Available: false, IsActive: true}).Eligible())
}
