// SPDX-License-Identifier: MIT
// Package: gamma/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`:
//       fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).
package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, degree)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted permitted attempts
// (e.g. stub-matching retries for RandomRegular) or received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an invalid enumerated parameter, such as an
// unknown Platonic solid.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrInvalidEdge indicates an edge with an endpoint out of range or a loop.
var ErrInvalidEdge = errors.New("builder: invalid edge")

// ErrBadPermutation indicates that a relabelling is not a bijection on 0..n-1.
var ErrBadPermutation = errors.New("builder: not a permutation")
