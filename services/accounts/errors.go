package accounts

import "errors"

var (
	// ErrRiderNotFound indicates the rider record does not exist
	ErrRiderNotFound = errors.New("rider not found")

	// ErrAccountNotFound indicates no account matches the credential
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidRole indicates a role outside driver/rider
	ErrInvalidRole = errors.New("role must be driver or rider")
)
