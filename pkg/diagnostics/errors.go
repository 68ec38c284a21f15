package diagnostics

import "errors"

// Sentinel errors for observer registration and dispatch.
var (
	ErrObserverPanic            = errors.New("observer panic")
	ErrObserverFailed           = errors.New("observer execution failed")
	ErrInvalidObserver          = errors.New("invalid observer")
	ErrObserverNotFound         = errors.New("observer not found")
	ErrObserverAlreadyRegistered = errors.New("observer already registered")
	ErrRegistrationFailed       = errors.New("observer registration failed")
)
