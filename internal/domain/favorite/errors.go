package favorite

import "errors"

var (
	ErrAlreadyFavorite = errors.New("item already in favorites")
	ErrNotFound        = errors.New("favorite not found")
	ErrItemNotFound    = errors.New("catalog item not found")
	ErrUnknownKind     = errors.New("unknown item type")
)
