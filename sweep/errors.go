package sweep

import "errors"

// Sentinel errors for sweep operations.
var (
	// ErrNoDimensions indicates a space or definition without dimensions.
	ErrNoDimensions = errors.New("sweep: at least one dimension is required")
	// ErrDuplicateDimension indicates two dimensions share a name.
	ErrDuplicateDimension = errors.New("sweep: duplicate dimension name")
	// ErrBadDefinition indicates a malformed definition (missing names,
	// unsupported values, decode failures).
	ErrBadDefinition = errors.New("sweep: invalid definition")
	// ErrFilter indicates a filter expression failed to compile or evaluate.
	ErrFilter = errors.New("sweep: filter expression failed")
	// ErrUnknownFormat indicates a definition file with an unsupported extension.
	ErrUnknownFormat = errors.New("sweep: unknown definition format")
)
