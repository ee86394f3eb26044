package errors

import (
	"errors"
	"fmt"
)

// Common error types for the aqua client
var (
	// Session errors
	ErrNoToken      = errors.New("no session token")
	ErrUnauthorized = errors.New("unauthorized")

	// Backend errors
	ErrUnexpectedStatus = errors.New("unexpected status")

	// Input errors
	ErrInvalidGoal   = errors.New("invalid goal")
	ErrInvalidAmount = errors.New("invalid amount")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
