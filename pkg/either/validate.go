package either

import "errors"

// Validate starts on the success track and applies validate to value.
func Validate[L, R any](value R, validate func(R) (valid bool, reason L)) Either[L, R] {
	return AndValidate(Right[L](value), validate)
}

// AndValidate turns a Right into a Left carrying reason when validate rejects
// its payload. A Left is passed through.
func AndValidate[L, R any](input Either[L, R], validate func(R) (valid bool, reason L)) Either[L, R] {
	if !input.isRight {
		return input
	}

	if valid, reason := validate(input.right); !valid {
		return Left[L, R](reason)
	}
	return input
}

// FailOnError turns a Right into a Left when maybeErr returns an error.
func FailOnError[R any](input Either[error, R], maybeErr func(R) error) Either[error, R] {
	if !input.isRight {
		return input
	}

	if err := maybeErr(input.right); !IsNil(err) {
		return Left[error, R](err)
	}
	return input
}

// ValidateAll runs every validator against the payload of input and joins
// their errors with errors.Join. With breakOnError it stops at the first
// failing validator. A Left input is returned unchanged.
func ValidateAll[R any](input Either[error, R], breakOnError bool, validators ...func(R) error) Either[error, R] {
	value, ok := input.RightValue()
	if !ok {
		return input
	}

	steps := make([]func(Either[error, R]) Either[error, R], 0, len(validators))
	for _, validate := range validators {
		validate := validate
		steps = append(steps, func(Either[error, R]) Either[error, R] {
			return FailOnError(Right[error](value), validate)
		})
	}

	var err error
	return Join(input, breakOnError,
		func(current Either[error, R]) Either[error, R] {
			if current.IsLeft() {
				e := GetErrors(err)
				e = append(e, current.left)
				err = errors.Join(e...)
			}

			if IsNil(err) {
				return current
			}
			return Left[error, R](err)
		},
		steps...)
}

// Join feeds input through steps in order, passing every outcome through
// concat. With breakOnError the first Left produced by concat ends the run.
func Join[L, R any](input Either[L, R],
	breakOnError bool,
	concat func(current Either[L, R]) Either[L, R],
	steps ...func(in Either[L, R]) Either[L, R]) Either[L, R] {

	if len(steps) == 0 || concat == nil {
		return input
	}

	finalResult := concat(steps[0](input))

	if finalResult.isRight || !breakOnError {
		for _, step := range steps[1:] {
			nextRes := concat(step(finalResult))
			if !nextRes.isRight && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}

// TeeIf runs sideEffect on the payload of a Right when condition holds. The
// input is returned unchanged.
func TeeIf[L, R any](input Either[L, R], condition func(R) bool, sideEffect func(R)) Either[L, R] {
	if input.isRight && condition(input.right) {
		sideEffect(input.right)
	}
	return input
}
