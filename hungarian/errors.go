package hungarian

import (
	"errors"
	"fmt"
)

// ErrInvalidMode is returned when the mode is neither Minimize nor Maximize.
// It is detected before any input is inspected.
var ErrInvalidMode = errors.New("hungarian: invalid mode")

// ErrMalformedInput is the umbrella for every input-shape or value problem.
// The more specific sentinels below wrap it, so
// errors.Is(err, ErrMalformedInput) matches all of them.
var ErrMalformedInput = errors.New("hungarian: malformed input")

// ErrShapeMismatch is returned when n or m disagree with the supplied matrix,
// a row has the wrong length, or n/m is negative.
var ErrShapeMismatch = fmt.Errorf("%w: shape mismatch", ErrMalformedInput)

// ErrNonFinite is returned when a cost is NaN or ±Inf, or when the total
// cost of the optimal pairing overflows the element type.
var ErrNonFinite = fmt.Errorf("%w: non-finite cost", ErrMalformedInput)

// ErrDimensionLimit is returned when max(n, m) exceeds the WithMaxDim bound.
var ErrDimensionLimit = errors.New("hungarian: dimension exceeds limit")
