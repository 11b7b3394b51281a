package models

import (
	"time"
)

// ConnectionStatus represents the status of a driver-rider connection
type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusRejected ConnectionStatus = "rejected"
)

// Connection gates messaging and scheduling between a driver and a rider.
// Removal deletes the record rather than setting a status.
type Connection struct {
	ID        string           `json:"id" db:"id"`
	DriverID  string           `json:"driverId" db:"driver_id"`
	RiderID   string           `json:"riderId" db:"rider_id"`
	Status    ConnectionStatus `json:"status" db:"status"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" db:"updated_at"`
}

// SavedRider is a driver's bookmark of a rider they work with regularly
type SavedRider struct {
	ID        string    `json:"id" db:"id"`
	DriverID  string    `json:"driverId" db:"driver_id"`
	RiderID   string    `json:"riderId" db:"rider_id"`
	Nickname  string    `json:"nickname,omitempty" db:"nickname"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
