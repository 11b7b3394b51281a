package rides

import "errors"

var (
	// ErrRideNotFound indicates the ride record does not exist
	ErrRideNotFound = errors.New("ride not found")

	// ErrRideConflict indicates a concurrent writer won the version check
	ErrRideConflict = errors.New("ride was modified concurrently")

	// ErrNotRideOwner indicates the caller is not the assigned driver
	ErrNotRideOwner = errors.New("caller is not the assigned driver")

	// ErrDriverUnavailable indicates the target driver cannot take the ride
	ErrDriverUnavailable = errors.New("target driver is not available")

	// ErrInvalidTransition indicates a status change outside the lifecycle
	ErrInvalidTransition = errors.New("invalid ride status transition")

	// ErrTransferNotFound indicates the transfer request does not exist
	ErrTransferNotFound = errors.New("transfer request not found")

	// ErrTransferClosed indicates the transfer request was already decided
	ErrTransferClosed = errors.New("transfer request already decided")

	// ErrNotTransferTarget indicates the caller is not the requested driver
	ErrNotTransferTarget = errors.New("caller is not the transfer target")

	// ErrScheduledRideNotFound indicates the scheduled ride does not exist
	ErrScheduledRideNotFound = errors.New("scheduled ride not found")
)
