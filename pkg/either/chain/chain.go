package chain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/either/pkg/either"
)

// Chain wraps an either.Either with context to enable fluent chaining
type Chain[L, R any] struct {
	ctx       context.Context
	res       either.Either[L, R]
	id        uuid.UUID
	createdAt time.Time
}

// Start creates a new chain from an either.Either
func Start[L, R any](ctx context.Context, res either.Either[L, R]) Chain[L, R] {
	return Chain[L, R]{
		ctx:       ctx,
		res:       res,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// FromValue creates a new chain from a success value
func FromValue[L, R any](ctx context.Context, value R) Chain[L, R] {
	return Start(ctx, either.Right[L](value))
}

// FromError creates a new chain that is already on the error track
func FromError[L, R any](ctx context.Context, value L) Chain[L, R] {
	return Start(ctx, either.Left[L, R](value))
}

func next[L, R, L2, R2 any](c Chain[L, R], res either.Either[L2, R2]) Chain[L2, R2] {
	return Chain[L2, R2]{
		ctx:       c.ctx,
		res:       res,
		id:        c.id,
		createdAt: c.createdAt,
	}
}

// Result returns the underlying either.Either
func (c Chain[L, R]) Result() either.Either[L, R] {
	return c.res
}

// Id identifies the chain; it is shared by every step derived from Start
func (c Chain[L, R]) Id() uuid.UUID {
	return c.id
}

// CreatedAt time creation (UTC)
func (c Chain[L, R]) CreatedAt() time.Time {
	return c.createdAt
}

// Context returns the context handed to every step
func (c Chain[L, R]) Context() context.Context {
	return c.ctx
}

// Then composes functions that already return either.Either[L, R]
func (c Chain[L, R]) Then(onRight func(ctx context.Context, r R) either.Either[L, R]) Chain[L, R] {
	return Then(c, onRight)
}

// Map transforms the success value
func (c Chain[L, R]) Map(onRight func(ctx context.Context, r R) R) Chain[L, R] {
	return Map(c, onRight)
}

// RepeatUntil applies onRight at least once and keeps applying it until done
// reports true or a step returns a Left
func (c Chain[L, R]) RepeatUntil(onRight func(ctx context.Context, r R) either.Either[L, R],
	done func(ctx context.Context, r R) bool) Chain[L, R] {

	if c.res.IsLeft() {
		return c
	}

	for {
		c = c.Then(onRight)

		r, ok := c.res.RightValue()
		if !ok || done(c.ctx, r) {
			return c
		}
	}
}

// While applies onRight as long as the chain is on the success track and
// while reports true
func (c Chain[L, R]) While(onRight func(ctx context.Context, r R) either.Either[L, R],
	while func(ctx context.Context, r R) bool) Chain[L, R] {

	for {
		r, ok := c.res.RightValue()
		if !ok || !while(c.ctx, r) {
			return c
		}
		c = c.Then(onRight)
	}
}

// Or returns the first chain, starting with c, that is on the success track.
// When none is, c is returned.
func (c Chain[L, R]) Or(alternatives ...Chain[L, R]) Chain[L, R] {
	if c.res.IsRight() {
		return c
	}

	for _, alt := range alternatives {
		if alt.res.IsRight() {
			return alt
		}
	}
	return c
}

// And returns the first chain, starting with c, that is on the error track.
// When all succeed, the last one is returned.
func (c Chain[L, R]) And(required ...Chain[L, R]) Chain[L, R] {
	if c.res.IsLeft() {
		return c
	}

	last := c
	for _, req := range required {
		if req.res.IsLeft() {
			return req
		}
		last = req
	}
	return last
}

// Recover gives a Left a chance to return to the success track
func (c Chain[L, R]) Recover(onLeft func(ctx context.Context, l L) either.Either[L, R]) Chain[L, R] {
	return next(c, either.OrElse(c.res, func(l L) either.Either[L, R] {
		return onLeft(c.ctx, l)
	}))
}

// Ensure performs a side effect on success without changing the result
func (c Chain[L, R]) Ensure(onRight func(ctx context.Context, r R)) Chain[L, R] {
	if r, ok := c.res.RightValue(); ok {
		onRight(c.ctx, r)
	}
	return c
}

// OnLeft performs a side effect on failure without changing the result
func (c Chain[L, R]) OnLeft(onLeft func(ctx context.Context, l L)) Chain[L, R] {
	if l, ok := c.res.LeftValue(); ok {
		onLeft(c.ctx, l)
	}
	return c
}

// Then chains a function that returns either.Either[L, U]
func Then[L, R, U any](c Chain[L, R], onRight func(ctx context.Context, r R) either.Either[L, U]) Chain[L, U] {
	return next(c, either.Chain(c.res, func(r R) either.Either[L, U] {
		return onRight(c.ctx, r)
	}))
}

// Map chains a pure transformation function
func Map[L, R, U any](c Chain[L, R], onRight func(ctx context.Context, r R) U) Chain[L, U] {
	return next(c, either.Map(c.res, func(r R) U {
		return onRight(c.ctx, r)
	}))
}

// MapLeft transforms the error value
func MapLeft[L, R, L2 any](c Chain[L, R], onLeft func(ctx context.Context, l L) L2) Chain[L2, R] {
	return next(c, either.MapLeft(c.res, func(l L) L2 {
		return onLeft(c.ctx, l)
	}))
}

// ThenTry chains a function that returns (U, error). Panics raised by the
// function are turned into a Left as well.
func ThenTry[R, U any](c Chain[error, R], tryOnRight func(ctx context.Context, r R) (U, error)) Chain[error, U] {
	return next(c, either.Chain(c.res, func(r R) either.Either[error, U] {
		return either.CatchError(func() (U, error) {
			return tryOnRight(c.ctx, r)
		})
	}))
}

// Finally collapses the chain into a final value
func Finally[L, R, T any](c Chain[L, R],
	onLeft func(ctx context.Context, l L) T,
	onRight func(ctx context.Context, r R) T) T {

	return either.Fold(c.res,
		func(l L) T { return onLeft(c.ctx, l) },
		func(r R) T { return onRight(c.ctx, r) })
}
