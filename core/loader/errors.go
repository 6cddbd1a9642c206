package loader

import "errors"

var (
	// ErrNotController is returned when a namespace export does not
	// implement the Controller contract.
	ErrNotController = errors.New("export is not a controller")
	// ErrInvalidRoute is returned for a malformed route declaration.
	ErrInvalidRoute = errors.New("invalid route")
	// ErrDuplicateRoute is returned when two routes resolve to the same
	// method and path.
	ErrDuplicateRoute = errors.New("duplicate route")
)
