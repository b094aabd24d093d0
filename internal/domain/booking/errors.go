package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("booking not found")
	ErrItemNotFound      = errors.New("booked item not found")
	ErrNotBookable       = errors.New("item cannot be booked")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrStatusChanged is returned by the repository when the row no longer
	// has the expected status.
	ErrStatusChanged = errors.New("booking status changed concurrently")
)
