package article

// Formatter renders a processed value. It may return an error or panic; both
// end up on the error track.
type Formatter func(n int) (string, error)

type Option func(p *Pipeline)

const DefaultMultiplier = 2

// WithMultiplier scales every parsed value before formatting.
func WithMultiplier(m int) Option {
	return func(p *Pipeline) {
		p.multiplier = m
	}
}

// WithFailFast makes RunAll skip every input after the first failure.
func WithFailFast(failFast bool) Option {
	return func(p *Pipeline) {
		p.failFast = failFast
	}
}

func WithFormatter(f Formatter) Option {
	return func(p *Pipeline) {
		if f != nil {
			p.format = f
		}
	}
}
