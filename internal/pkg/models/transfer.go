package models

import (
	"time"
)

// TransferStatus represents the status of a ride transfer request
type TransferStatus string

const (
	TransferStatusPending  TransferStatus = "pending"
	TransferStatusAccepted TransferStatus = "accepted"
	TransferStatusRejected TransferStatus = "rejected"
)

// RideTransfer represents a handshake moving a ride between two drivers.
// It references the ride by id but holds no lock on it; acceptance performs
// the ride mutation and the status update in one transaction.
type RideTransfer struct {
	ID                string         `json:"id" db:"id"`
	RideID            string         `json:"rideId" db:"ride_id"`
	OriginalDriverID  string         `json:"originalDriverId" db:"original_driver_id"`
	NewDriverID       string         `json:"newDriverId" db:"new_driver_id"`
	TransferFeeAmount float64        `json:"transferFeeAmount" db:"transfer_fee_amount"`
	Status            TransferStatus `json:"status" db:"status"`
	CreatedAt         time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at" db:"updated_at"`
}

// CreateTransferRequest is the payload for initiating a ride transfer
type CreateTransferRequest struct {
	RideID            string  `json:"rideId"`
	NewDriverID       string  `json:"newDriverId"`
	TransferFeeAmount float64 `json:"transferFeeAmount"`
}
