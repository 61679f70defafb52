package either

import "fmt"

// PanicError carries a recovered panic value that was not an error itself.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprint(e.Value)
}

// Catch calls f once. Its return value becomes a Right; a panic raised by f
// becomes a Left. Panic values that are errors are kept as is, anything else
// is wrapped in *PanicError.
func Catch[R any](f func() R) (result Either[error, R]) {
	defer func() {
		if r := recover(); r != nil {
			result = Left[error, R](asError(r))
		}
	}()

	return Right[error](f())
}

// CatchError calls f once. A non-nil error or a panic becomes a Left,
// otherwise the value becomes a Right.
func CatchError[R any](f func() (R, error)) (result Either[error, R]) {
	defer func() {
		if r := recover(); r != nil {
			result = Left[error, R](asError(r))
		}
	}()

	value, err := f()
	return FromError(value, err)
}

// FromError converts a (value, error) pair.
func FromError[R any](value R, err error) Either[error, R] {
	if IsNil(err) {
		return Right[error](value)
	}
	return Left[error, R](err)
}

// ToError converts back to a (value, error) pair. On a Left the value is the
// zero R.
func ToError[R any](input Either[error, R]) (R, error) {
	if input.isRight {
		return input.right, nil
	}
	var zero R
	return zero, input.left
}
