package either

import "fmt"

// Either holds exactly one of a Left value of type L or a Right value of type R.
// The variant is decided by the tag only; the unused slot keeps its zero value
// and is never observed.
//
// The zero value is a Left carrying the zero L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{
		right:   value,
		isRight: true,
	}
}

func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{
		left:    value,
		isRight: false,
	}
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// RightValue returns the success payload; ok is false on a Left.
func (e Either[L, R]) RightValue() (value R, ok bool) {
	if e.isRight {
		return e.right, true
	}
	return value, false
}

// LeftValue returns the error payload; ok is false on a Right.
func (e Either[L, R]) LeftValue() (value L, ok bool) {
	if !e.isRight {
		return e.left, true
	}
	return value, false
}

// MustRight returns the success payload or panics on a Left.
func (e Either[L, R]) MustRight() R {
	if !e.isRight {
		panic(fmt.Sprintf("either: MustRight called on %s", e))
	}
	return e.right
}

// MustLeft returns the error payload or panics on a Right.
func (e Either[L, R]) MustLeft() L {
	if e.isRight {
		panic(fmt.Sprintf("either: MustLeft called on %s", e))
	}
	return e.left
}

// RightOr returns the success payload or def on a Left.
func (e Either[L, R]) RightOr(def R) R {
	if e.isRight {
		return e.right
	}
	return def
}

// GetOrElse returns the success payload or the value computed from the error.
func (e Either[L, R]) GetOrElse(onLeft func(L) R) R {
	if e.isRight {
		return e.right
	}
	return onLeft(e.left)
}

func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Equal reports whether a and b carry the same variant and payload.
func Equal[L, R comparable](a, b Either[L, R]) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return a.right == b.right
	}
	return a.left == b.left
}
