package article

import "errors"

var (
	ErrEmptyInput = errors.New("empty input")
	ErrNotANumber = errors.New("not a number")
	ErrOutOfRange = errors.New("value out of range")
	ErrSkipped    = errors.New("skipped after an earlier failure")
)
