package armory

import "errors"

var (
	// ErrInvalidItem is returned when an item fails construction-time validation.
	ErrInvalidItem = errors.New("invalid armor item")
	// ErrTooManyItems is returned when the exhaustive solver is given a
	// collection too large for its subset enumeration.
	ErrTooManyItems = errors.New("too many items for exhaustive search")
)
