// SPDX-License-Identifier: MIT
// Package: gamma/planarity
//
// engine.go — the planarity engine: public entry points and orchestration.
//
// Flow per piece (the input graph first, then every detached piece):
//  1. optional Euler pre-check (m > 3n-6 ⇒ not planar);
//  2. for each unvisited vertex, extract a cycle from its component; an
//     acyclic component is planar and is skipped;
//  3. embed the cycle, then loop: find bridges → evaluate gamma → embed the
//     winner, until no bridge remains (planar) or a bridge has gamma 0
//     (not planar: the whole run stops).
package planarity

import (
	"fmt"
	"slices"
)

// IsPlanar reports whether g can be drawn in the plane without crossings.
// The only error is ErrInvalidGraph for malformed input.
//
// Complexity: Time O(V·E) bridge rescans in the worst case, Memory O(V+E).
func IsPlanar(g Graph, opts ...Option) (bool, error) {
	rep, err := Check(g, opts...)

	return rep.Planar, err
}

// Check runs the decision procedure and returns its verdict with counters
// describing the work done. A non-planar graph yields Report.Planar == false
// and a nil error.
func Check(g Graph, opts ...Option) (Report, error) {
	cfg := newConfig(opts...)

	adj, edges, err := normalize(g, cfg.strictSymmetry)
	if err != nil {
		return Report{}, err
	}

	ids := make([]int, len(adj))
	for i := range ids {
		ids[i] = i
	}
	r := &runner{
		cfg:    cfg,
		report: Report{Planar: true, Vertices: len(adj), Edges: edges},
	}
	if err = r.run(piece{adj: adj, ids: ids}); err != nil {
		return Report{}, fmt.Errorf("%s: %w", methodCheck, err)
	}
	cfg.logger.Debug("verdict",
		"planar", r.report.Planar,
		"vertices", r.report.Vertices,
		"edges", r.report.Edges,
		"faces", r.report.Faces,
		"bridges", r.report.Bridges)

	return r.report, nil
}

// runner owns all mutable state of one Check call.
type runner struct {
	cfg    config
	report Report
	queue  []piece
}

// run tests root and every piece detached from it, stopping at the first
// non-planar one.
func (r *runner) run(root piece) error {
	r.queue = append(r.queue[:0], root)
	for first := true; len(r.queue) > 0; first = false {
		p := r.queue[0]
		r.queue = r.queue[1:]

		ok, err := r.testPiece(p, first)
		if err != nil {
			return err
		}
		if !ok {
			r.report.Planar = false
			return nil
		}
	}

	return nil
}

// testPiece decides one piece. Components are counted for the root only.
func (r *runner) testPiece(p piece, root bool) (bool, error) {
	n, m := len(p.adj), 0
	for _, nbrs := range p.adj {
		m += len(nbrs)
	}
	m /= 2
	if r.cfg.eulerBound && n >= 3 && m > 3*n-6 {
		r.cfg.logger.Debug("euler bound exceeded", "vertices", n, "edges", m)
		return false, nil
	}

	st := newEmbedding(p.adj)
	for v := range p.adj {
		if st.embedded(v) {
			continue
		}
		if root {
			r.report.Components++
		}

		cycle, reached := extractCycle(st, v)
		if cycle == nil {
			// A tree: nothing to split, nothing to check.
			for _, u := range reached {
				st.markEmbedded(u)
			}
			continue
		}

		r.report.CyclicPieces++
		ok, err := r.embedComponent(st, p, cycle)
		if err != nil || !ok {
			return ok, err
		}
	}
	r.report.Faces += st.nextFace

	return true, nil
}

// embedComponent grows the embedding of one component from its cycle.
func (r *runner) embedComponent(st *embedding, p piece, cycle []int) (bool, error) {
	log := r.cfg.logger

	st.embedCycle(cycle)
	log.Debug("cycle embedded", "length", len(cycle), "vertices", p.global(cycle))

	active := findBridges(st, cycle)
	for len(active) > 0 {
		idx, gamma, witness := selectBridge(st, active, r.cfg.tieBreak)
		b := active[idx]
		if gamma == 0 {
			log.Debug("bridge fits no face", "contacts", p.global(b.contacts), "interior", len(b.interior))
			return false, nil
		}
		active = slices.Delete(active, idx, idx+1)

		inner, detached, err := st.embedBridge(b, witness)
		if err != nil {
			return false, err
		}
		r.report.Bridges++
		log.Debug("bridge embedded",
			"gamma", gamma,
			"face", witness,
			"contacts", p.global(b.contacts),
			"path", p.global(inner),
			"boundary", len(st.boundaries[witness]))

		if detached != nil {
			detached.ids = p.global(detached.ids)
			r.queue = append(r.queue, *detached)
			r.report.Detached++
			log.Debug("detached piece queued", "vertices", detached.ids)
		}
		if len(inner) > 0 {
			active = append(active, findBridges(st, inner)...)
		}
	}

	return true, nil
}

// global maps local vertex ids of p back to input ids.
func (p piece) global(local []int) []int {
	out := make([]int, len(local))
	for i, v := range local {
		out[i] = p.ids[v]
	}

	return out
}
