package models

import (
	"time"
)

// RideStatus represents the status of a ride
type RideStatus string

const (
	RideStatusPending     RideStatus = "pending"
	RideStatusAssigned    RideStatus = "assigned"
	RideStatusTransferred RideStatus = "transferred"
	RideStatusCompleted   RideStatus = "completed"
	RideStatusCancelled   RideStatus = "cancelled"
)

// rideTransitions lists the legal status edges. Completed and cancelled are
// terminal. A transferred ride goes back to assigned when the new driver
// accepts.
var rideTransitions = map[RideStatus][]RideStatus{
	RideStatusPending:     {RideStatusAssigned, RideStatusTransferred, RideStatusCancelled},
	RideStatusAssigned:    {RideStatusCompleted, RideStatusCancelled, RideStatusTransferred},
	RideStatusTransferred: {RideStatusAssigned},
}

// CanTransition reports whether moving from one ride status to another is
// allowed by the lifecycle state machine.
func CanTransition(from, to RideStatus) bool {
	for _, next := range rideTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a ride status admits no further transitions
func (s RideStatus) IsTerminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// Ride represents a ride booking record
type Ride struct {
	ID               string           `json:"id" db:"id"`
	RiderID          string           `json:"riderId,omitempty" db:"rider_id"`
	RiderName        string           `json:"name" db:"rider_name"`
	RiderPhone       string           `json:"phone" db:"rider_phone"`
	Pickup           string           `json:"pickup" db:"pickup"`
	Dropoff          string           `json:"dropoff" db:"dropoff"`
	LocationID       string           `json:"locationId" db:"location_id"`
	Status           RideStatus       `json:"status" db:"status"`
	DriverID         string           `json:"driverId,omitempty" db:"driver_id"`
	PreviousDriverID string           `json:"previousDriverId,omitempty" db:"previous_driver_id"`
	AvailableDrivers []DriverSnapshot `json:"availableDrivers,omitempty"`
	Version          int              `json:"-" db:"version"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
	TransferredAt    *time.Time       `json:"transferred_at,omitempty" db:"transferred_at"`
}

// CreateRideRequest is the payload for booking a ride
type CreateRideRequest struct {
	RiderID          string `json:"riderId,omitempty"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Pickup           string `json:"pickup"`
	Dropoff          string `json:"dropoff"`
	LocationID       string `json:"locationId"`
	SelectedDriverID string `json:"selectedDriverId,omitempty"`
}

// ScheduledRide represents a ride booked for a future time. Cancelling a
// scheduled ride deletes the record outright, unlike regular rides which are
// marked cancelled.
type ScheduledRide struct {
	ID          string    `json:"id" db:"id"`
	RiderID     string    `json:"riderId,omitempty" db:"rider_id"`
	RiderName   string    `json:"name" db:"rider_name"`
	RiderPhone  string    `json:"phone" db:"rider_phone"`
	DriverID    string    `json:"driverId" db:"driver_id"`
	Pickup      string    `json:"pickup" db:"pickup"`
	Dropoff     string    `json:"dropoff" db:"dropoff"`
	LocationID  string    `json:"locationId" db:"location_id"`
	ScheduledAt time.Time `json:"scheduledAt" db:"scheduled_at"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
