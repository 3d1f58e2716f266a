// SPDX-License-Identifier: MIT
// Package: gamma/builder
//
// impl_random_regular.go — implementation of RandomRegular(n, d) constructor.
//
// Canonical model: stub-matching (pairing). Each vertex contributes d stubs,
// the stub list is shuffled and consecutive stubs are paired. A pairing with a
// loop or a repeated pair is discarded and reshuffled, up to a fixed bound.
//
// Contract:
//   • n ≥ 1, 0 ≤ d < n, n·d even (else ErrTooFewVertices).
//   • RNG required (else ErrNeedRandSource).
//   • ErrConstructFailed after maxStubMatchingAttempts rejected pairings.
//
// Complexity: ~O(n·d) per attempt.
package builder

import "fmt"

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 256
)

// RandomRegular returns a Constructor that builds a simple d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(a *Adjacency, cfg builderConfig) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}

			base := a.AddVertices(n)
			for i := 0; i < len(stubs); i += 2 {
				if err := a.AddEdge(base+stubs[i], base+stubs[i+1]); err != nil {
					return fmt.Errorf("%s: %w", methodRandomRegular, err)
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a simple graph.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		key := [2]int{min(u, v), max(u, v)}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
