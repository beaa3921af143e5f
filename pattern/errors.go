package pattern

import "errors"

var (
	// ErrMissingMeasurement is returned when a draft needs a measurement that
	// the model doesn't provide.
	ErrMissingMeasurement = errors.New("pattern: missing measurement")

	// ErrUnknownPoint is returned when a construction step or path refers to a
	// point that hasn't been created in the part.
	ErrUnknownPoint = errors.New("pattern: unknown point")

	// ErrDuplicatePoint is returned when a point id is used twice. Points are
	// immutable once created.
	ErrDuplicatePoint = errors.New("pattern: point already exists")

	// ErrInvalidPath is returned for paths that don't start with a move.
	ErrInvalidPath = errors.New("pattern: invalid path")

	ErrUnknownPath   = errors.New("pattern: unknown path")
	ErrDuplicatePath = errors.New("pattern: path already exists")
	ErrUnknownPart   = errors.New("pattern: unknown part")
	ErrDuplicatePart = errors.New("pattern: part already exists")
)
