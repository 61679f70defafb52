package either

// Inspector is implemented by values that report which channel they carry.
type Inspector interface {
	// IsLeft returns true if the value carries the error channel
	IsLeft() bool
	// IsRight returns true if the value carries the success channel
	IsRight() bool
}

// RightProvider exposes the success payload of a value
type RightProvider[R any] interface {
	Inspector
	// RightValue returns the success payload and whether it is present
	RightValue() (R, bool)
}

// LeftProvider exposes the error payload of a value
type LeftProvider[L any] interface {
	Inspector
	// LeftValue returns the error payload and whether it is present
	LeftValue() (L, bool)
}

var (
	_ RightProvider[int]   = Either[string, int]{}
	_ LeftProvider[string] = Either[string, int]{}
)
