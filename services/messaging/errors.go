package messaging

import "errors"

var (
	// ErrConnectionNotFound indicates the connection record does not exist
	ErrConnectionNotFound = errors.New("connection not found")

	// ErrConnectionExists indicates a connection between the pair already exists
	ErrConnectionExists = errors.New("connection already exists")

	// ErrConnectionClosed indicates the connection request was already decided
	ErrConnectionClosed = errors.New("connection request already decided")

	// ErrNotConnectionParty indicates the caller is not part of the connection
	ErrNotConnectionParty = errors.New("caller is not part of this connection")

	// ErrNotConnected indicates messaging requires an accepted connection
	ErrNotConnected = errors.New("no accepted connection between the parties")

	// ErrNotificationNotFound indicates the notification does not exist
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrSavedRiderNotFound indicates the saved rider entry does not exist
	ErrSavedRiderNotFound = errors.New("saved rider not found")

	// ErrSavedRiderExists indicates the rider is already saved by the driver
	ErrSavedRiderExists = errors.New("rider already saved")
)
