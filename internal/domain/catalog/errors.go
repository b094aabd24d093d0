package catalog

import "errors"

var (
	ErrNotFound           = errors.New("catalog item not found")
	ErrUnknownDestination = errors.New("destination does not exist")
	ErrNotBookable        = errors.New("item cannot be booked")
	ErrUnknownKind        = errors.New("unknown catalog kind")
)
