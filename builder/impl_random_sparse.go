// SPDX-License-Identifier: MIT
// Package: gamma/builder
//
// impl_random_sparse.go — implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • An RNG is required only when 0 < p < 1 (else ErrNeedRandSource);
//     p = 0 and p = 1 are deterministic (empty / complete).
//   • Each unordered pair {i,j}, i<j, is kept independently with probability p.
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism: fixed trial order (i asc, j asc) ⇒ identical output per seed.
package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi graph G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(a *Adjacency, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := a.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch {
				case p == probMax:
					keep = true
				case p == probMin:
					keep = false
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := a.AddEdge(base+i, base+j); err != nil {
					return fmt.Errorf("%s: %w", methodRandomSparse, err)
				}
			}
		}

		return nil
	}
}
