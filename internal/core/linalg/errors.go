package linalg

import "errors"

// Math errors. All of them indicate bad input; none are retryable.
var (
	ErrDimension        = errors.New("operand has wrong dimensions")
	ErrDegenerateVector = errors.New("zero-length vector")
	ErrNoCommonAxis     = errors.New("points share no common principal axis")
)
