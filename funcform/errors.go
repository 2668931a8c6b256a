package funcform

import "errors"

// Error types for the funcform package.
var (
	// ErrRange is returned when a generated index or value falls outside its
	// declared bit range.
	ErrRange = errors.New("value outside declared bit range")

	// ErrMalformedTable is returned when a lookup table is incomplete or has
	// out-of-range keys or values.
	ErrMalformedTable = errors.New("malformed lookup table")

	// ErrConfiguration is returned when an operation is disabled or a
	// configured bound is exceeded.
	ErrConfiguration = errors.New("operation not permitted by configuration")

	// ErrUnsupportedForm is returned when the compiler encounters a function
	// form outside the closed set it knows how to lower.
	ErrUnsupportedForm = errors.New("unsupported function form")
)
