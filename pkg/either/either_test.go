package either

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRight_ReportsRightForFalsyValues(t *testing.T) {
	t.Parallel()

	cases := []Inspector{
		Right[string](0),
		Right[string](""),
		Right[string](false),
		Right[string, *int](nil),
	}

	for _, e := range cases {
		assert.True(t, e.IsRight(), "%v", e)
		assert.False(t, e.IsLeft(), "%v", e)
	}
}

func TestLeft_ReportsLeft(t *testing.T) {
	t.Parallel()

	cases := []Inspector{
		Left[string, int]("err"),
		Left[string, int](""),
		Left[int, string](0),
		Left[error, int](nil),
	}

	for _, e := range cases {
		assert.True(t, e.IsLeft(), "%v", e)
		assert.False(t, e.IsRight(), "%v", e)
	}
}

func TestZeroValue_IsLeft(t *testing.T) {
	t.Parallel()

	var e Either[string, int]
	assert.True(t, e.IsLeft())

	l, ok := e.LeftValue()
	assert.True(t, ok)
	assert.Equal(t, "", l)
}

func TestValues(t *testing.T) {
	t.Parallel()

	r := Right[string](5)
	v, ok := r.RightValue()
	require.True(t, ok)
	assert.Equal(t, 5, v)
	_, ok = r.LeftValue()
	assert.False(t, ok)

	l := Left[string, int]("err")
	lv, ok := l.LeftValue()
	require.True(t, ok)
	assert.Equal(t, "err", lv)
	_, ok = l.RightValue()
	assert.False(t, ok)
}

func TestMust(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, Right[string](5).MustRight())
	assert.Equal(t, "err", Left[string, int]("err").MustLeft())

	assert.Panics(t, func() { Left[string, int]("err").MustRight() })
	assert.Panics(t, func() { Right[string](5).MustLeft() })
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, Right[string](5).RightOr(100))
	assert.Equal(t, 100, Left[string, int]("err").RightOr(100))

	length := func(s string) int { return len(s) }
	assert.Equal(t, 5, Right[string](5).GetOrElse(length))
	assert.Equal(t, 3, Left[string, int]("err").GetOrElse(length))
}

func TestSwap(t *testing.T) {
	t.Parallel()

	swapped := Right[string](42).Swap()
	assert.True(t, swapped.IsLeft())
	assert.Equal(t, 42, swapped.MustLeft())

	swapped2 := Left[string, int]("err").Swap()
	assert.True(t, swapped2.IsRight())
	assert.Equal(t, "err", swapped2.MustRight())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Right(5)", Right[string](5).String())
	assert.Equal(t, "Left(err)", Left[string, int]("err").String())
}

func TestEqual_IgnoresUnusedSlot(t *testing.T) {
	t.Parallel()

	assert.True(t, Equal(Right[string](1), Right[string](1)))
	assert.False(t, Equal(Right[string](1), Right[string](2)))
	assert.True(t, Equal(Left[string, int]("a"), Left[string, int]("a")))
	assert.False(t, Equal(Left[string, int]("a"), Left[string, int]("b")))

	// same payloads in both slots, different tags
	assert.False(t, Equal(Left[int, int](1), Right[int](1)))
	assert.False(t, Equal(Left[string, int](""), Right[string](0)))
}
