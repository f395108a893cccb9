package scene

import "errors"

// Entity lifecycle errors
var (
	ErrNotPlaced     = errors.New("entity is not placed in the host scene")
	ErrAlreadyPlaced = errors.New("entity is already placed in the host scene")
)
