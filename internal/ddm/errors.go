package ddm

import "errors"

var (
	// ErrParameterBounds indicates a parameter outside the model's valid range.
	ErrParameterBounds = errors.New("ddm: parameter out of valid bounds")

	// ErrUnknownParam indicates a parameter name other than a, v, z, s, dt.
	ErrUnknownParam = errors.New("ddm: unknown parameter")
)
