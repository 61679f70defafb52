package article

import (
	"context"
	"fmt"

	"github.com/ib-77/either/pkg/either"
	"github.com/ib-77/either/pkg/either/chain"
	"go.uber.org/zap"
)

// Pipeline chains Convert and Process. It is read-only after New and safe for
// concurrent use.
type Pipeline struct {
	logger     *zap.Logger
	multiplier int
	failFast   bool
	format     Formatter
}

func New(logger *zap.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Pipeline{
		logger:     logger.Named("article"),
		multiplier: DefaultMultiplier,
		format:     formatInt,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process parses s, applies the multiplier and formats the outcome.
func (p *Pipeline) Process(s string) either.Either[error, string] {
	scaled := either.Chain(Parse(s), func(n int) either.Either[error, int] {
		out, ok := multiply(n, p.multiplier)
		if !ok {
			return either.Left[error, int](fmt.Errorf("%w: %d * %d", ErrOutOfRange, n, p.multiplier))
		}
		return either.Right[error](out)
	})

	return either.Chain(scaled, func(n int) either.Either[error, string] {
		return either.CatchError(func() (string, error) {
			return p.format(n)
		})
	})
}

// Run converts raw and processes the result. The outcome is always a flat
// Either[error, string].
func (p *Pipeline) Run(ctx context.Context, raw any) either.Either[error, string] {
	c := chain.Then(chain.Start(ctx, Convert(raw)),
		func(ctx context.Context, s string) either.Either[error, string] {
			if err := ctx.Err(); err != nil {
				return either.Left[error, string](err)
			}
			return p.Process(s)
		})

	logger := p.logger.With(zap.String("chain_id", c.Id().String()), zap.Any("input", raw))

	return c.
		Ensure(func(_ context.Context, out string) {
			logger.Debug("input processed", zap.String("output", out))
		}).
		OnLeft(func(_ context.Context, err error) {
			logger.Warn("input rejected", zap.Error(err))
		}).
		Result()
}

// RunAll runs every input in order and returns one result per input. Once ctx
// is done the remaining inputs get its error; with fail-fast enabled, inputs
// after the first failure get ErrSkipped.
func (p *Pipeline) RunAll(ctx context.Context, raws []any) []either.Either[error, string] {
	results := make([]either.Either[error, string], 0, len(raws))

	var stop error
	for _, raw := range raws {
		if stop == nil {
			stop = ctx.Err()
		}
		if stop != nil {
			results = append(results, either.Left[error, string](stop))
			continue
		}

		res := p.Run(ctx, raw)
		results = append(results, res)

		if res.IsLeft() && p.failFast {
			stop = ErrSkipped
		}
	}

	if stop != nil {
		p.logger.Info("run stopped early", zap.Error(stop), zap.Int("inputs", len(raws)))
	}
	return results
}
