// SPDX-License-Identifier: MIT
// Package: gamma/planarity
//
// options.go — functional options and the resolved run configuration.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     the decision procedure itself never panics on user input.
//   • Defaults are deterministic: two-contact tie-break, union symmetry
//     policy, no Euler pre-check, discarding logger.
package planarity

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Option customises a single Check / IsPlanar call.
type Option func(*config)

// config is resolved once per call and passed by value.
type config struct {
	tieBreak       TieBreak
	strictSymmetry bool
	eulerBound     bool
	logger         *log.Logger
}

// newConfig applies opts in order over the defaults (last wins).
func newConfig(opts ...Option) config {
	cfg := config{
		tieBreak: TieBreakTwoContact,
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithTieBreak sets the rule used among bridges of equal minimum gamma.
// Panics on an unknown value.
func WithTieBreak(t TieBreak) Option {
	switch t {
	case TieBreakTwoContact, TieBreakFirst, TieBreakLast:
	default:
		panic(fmt.Sprintf("planarity: WithTieBreak(%d)", int(t)))
	}

	return func(c *config) { c.tieBreak = t }
}

// WithStrictSymmetry rejects graphs where u lists v but v does not list u.
// Without it the union of both lists is used.
func WithStrictSymmetry() Option {
	return func(c *config) { c.strictSymmetry = true }
}

// WithEulerBound rejects a piece up front when it has more than 3n-6 edges
// (n ≥ 3). The verdict is unchanged; only the work done to reach it shrinks.
func WithEulerBound() Option {
	return func(c *config) { c.eulerBound = true }
}

// WithLogger routes debug tracing of the embedding to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("planarity: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}
