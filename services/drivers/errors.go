package drivers

import "errors"

var (
	// ErrDriverNotFound indicates the driver record does not exist
	ErrDriverNotFound = errors.New("driver not found")

	// ErrDriverInactive indicates the driver has not been approved yet
	ErrDriverInactive = errors.New("driver is not active")
)
