// Package either provides Either[L, R], an immutable two-variant container
// holding exactly one of a Left value (the error channel) or a Right value
// (the success channel), together with the combinators used to transform,
// chain and recover from it.
//
// Highlights:
// - Left/Right: the only constructors
// - IsLeft/IsRight: tag based inspection
// - Map/MapLeft/Bimap: transform one channel, pass the other through
// - Chain/FlatMap: compose steps that may themselves fail, without nesting
// - OrElse/Fold/GetOrElse: recover from or collapse a Left
// - Validate/AndValidate/ValidateAll/FailOnError: move a Right to the error track
// - Join/TeeIf: run several steps, conditional side effects
// - Catch/CatchError/FromError: bridge panics and (T, error) returns
//
// For fluent, context-carrying pipelines see package chain.
package either
