package almanac

import "errors"

var (
	// ErrMalformedRule indicates a rule whose source or destination span
	// does not describe at least one value.
	ErrMalformedRule = errors.New("malformed rule")

	// ErrEmptyInput indicates a run over zero seed ranges, for which no
	// minimum exists.
	ErrEmptyInput = errors.New("empty input")
)
