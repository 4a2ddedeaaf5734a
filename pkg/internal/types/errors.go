package types

import "errors"

var (
	// ErrInvalidArgument marks a bad call: malformed input, unsupported mode
	// or mismatched array shapes.
	ErrInvalidArgument = errors.New("incorrect argument")

	// ErrDomain marks an operation that is well formed but not permitted on
	// the data it was given, e.g. combining anisotropic layers.
	ErrDomain = errors.New("operation not permitted on model")
)
