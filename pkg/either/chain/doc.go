// Package chain provides a fluent wrapper around either.Either[L, R] for
// building synchronous railway-style pipelines.
//
// A Chain carries a context, an identifier and a creation time through every
// step, so a pipeline can be traced from Start to Finally. Every step
// delegates to the combinators in package either; a Left short-circuits all
// forward steps.
//
// Key operations:
// - Start/FromValue/FromError: begin a chain
// - Then: switch to a new Either via a function (bind)
// - ThenTry: call a function (U, error) and turn the error into a Left
// - Map/MapLeft: transform one channel
// - Recover: replace a Left with the outcome of a handler
// - Ensure/OnLeft: run side effects without changing the result
// - RepeatUntil/While: loop a step while the chain stays on the success track
// - Or/And: pick the first success or the first failure among chains
// - Finally: collapse the chain into a final value
package chain
