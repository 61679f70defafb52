package either

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codeError struct {
	code int
}

func (e *codeError) Error() string { return "code error" }

func TestCatch_Right(t *testing.T) {
	t.Parallel()

	out := Catch(func() int { return 42 })
	assert.Equal(t, 42, out.MustRight())
}

func TestCatch_ErrorPanic(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	out := Catch(func() int { panic(boom) })

	require.True(t, out.IsLeft())
	assert.ErrorIs(t, out.MustLeft(), boom)
	assert.EqualError(t, out.MustLeft(), "boom")
}

func TestCatch_ValuePanic(t *testing.T) {
	t.Parallel()

	out := Catch(func() string { panic("boom") })

	require.True(t, out.IsLeft())
	var pe *PanicError
	require.ErrorAs(t, out.MustLeft(), &pe)
	assert.Equal(t, "boom", pe.Value)
	assert.EqualError(t, out.MustLeft(), "boom")
}

func TestCatch_CallsOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	_ = Catch(func() int {
		calls++
		panic("boom")
	})
	_ = Catch(func() int {
		calls++
		return 1
	})
	assert.Equal(t, 2, calls)
}

func TestCatch_DoesNotSwallowOuterPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "outer", func() {
		out := Catch(func() int { return 1 })
		if out.IsRight() {
			panic("outer")
		}
	})
}

func TestCatchError(t *testing.T) {
	t.Parallel()

	t.Run("value", func(t *testing.T) {
		t.Parallel()
		out := CatchError(func() (string, error) { return "ok", nil })
		assert.Equal(t, "ok", out.MustRight())
	})

	t.Run("returned error", func(t *testing.T) {
		t.Parallel()
		ce := &codeError{code: 7}
		out := CatchError(func() (string, error) { return "", ce })

		var target *codeError
		require.ErrorAs(t, out.MustLeft(), &target)
		assert.Equal(t, 7, target.code)
	})

	t.Run("panic", func(t *testing.T) {
		t.Parallel()
		out := CatchError(func() (string, error) { panic("boom") })
		assert.EqualError(t, out.MustLeft(), "boom")
	})
}

func TestFromError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, FromError(42, nil).MustRight())

	err := errors.New("failed")
	assert.ErrorIs(t, FromError(0, err).MustLeft(), err)

	var typedNil *codeError
	assert.True(t, FromError[int](1, typedNil).IsRight())
}

func TestToError(t *testing.T) {
	t.Parallel()

	v, err := ToError(Right[error](42))
	assert.NoError(t, err)
	assert.Equal(t, 42, v)

	orig := errors.New("failed")
	v, err = ToError(Left[error, int](orig))
	assert.ErrorIs(t, err, orig)
	assert.Equal(t, 0, v)
}
