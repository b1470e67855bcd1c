// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` (see builderErrorf).
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).
//
// Priority when several validations fail:
//   ErrTooFewVertices, then ErrInvalidProbability, then ErrNeedRandSource,
//   then ErrConstructFailed.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a graph could not be assembled, for
// example because a nil constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a wrapped error with the constructor name:
// "<Method>: <formatted message>". Use %w in format to keep sentinels visible
// to errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
