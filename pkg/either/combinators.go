package either

// Map applies onRight to the success payload. A Left is passed through with
// its error unchanged and onRight is never called.
func Map[L, R, R2 any](input Either[L, R], onRight func(R) R2) Either[L, R2] {
	if input.isRight {
		return Right[L](onRight(input.right))
	}
	return Left[L, R2](input.left)
}

// MapLeft is the dual of Map: it transforms the error payload and passes a
// Right through.
func MapLeft[L, R, L2 any](input Either[L, R], onLeft func(L) L2) Either[L2, R] {
	if input.isRight {
		return Right[L2](input.right)
	}
	return Left[L2, R](onLeft(input.left))
}

// Bimap transforms whichever channel is populated.
func Bimap[L, R, L2, R2 any](input Either[L, R],
	onLeft func(L) L2,
	onRight func(R) R2) Either[L2, R2] {

	if input.isRight {
		return Right[L2](onRight(input.right))
	}
	return Left[L2, R2](onLeft(input.left))
}

// Chain hands the success payload to onRight and returns its result as is.
// A Left is passed through and onRight is never called.
func Chain[L, R, R2 any](input Either[L, R], onRight func(R) Either[L, R2]) Either[L, R2] {
	if input.isRight {
		return onRight(input.right)
	}
	return Left[L, R2](input.left)
}

// FlatMap is an alias for Chain.
func FlatMap[L, R, R2 any](input Either[L, R], onRight func(R) Either[L, R2]) Either[L, R2] {
	return Chain(input, onRight)
}

// OrElse hands the error payload to onLeft, letting the caller recover or
// replace the error. A Right is passed through.
func OrElse[L, R, L2 any](input Either[L, R], onLeft func(L) Either[L2, R]) Either[L2, R] {
	if input.isRight {
		return Right[L2](input.right)
	}
	return onLeft(input.left)
}

// Fold collapses input into a single value.
func Fold[L, R, T any](input Either[L, R],
	onLeft func(L) T,
	onRight func(R) T) T {

	if input.isRight {
		return onRight(input.right)
	}
	return onLeft(input.left)
}
