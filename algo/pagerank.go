package algo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/paiml/trueno-graph/csr"
)

// PageRankOptions configures the power iteration. The zero value is not
// usable directly; construct options via NewPageRankOptions and the With*
// functions below.
type PageRankOptions struct {
	maxIterations int
	tolerance     float64
	damping       float64
}

// PageRankOption mutates a PageRankOptions in place.
type PageRankOption func(*PageRankOptions)

// WithMaxIterations overrides the default cap of 20 power-iteration steps.
func WithMaxIterations(k int) PageRankOption {
	return func(o *PageRankOptions) { o.maxIterations = k }
}

// WithTolerance overrides the default convergence tolerance of 1e-6.
func WithTolerance(eps float64) PageRankOption {
	return func(o *PageRankOptions) { o.tolerance = eps }
}

// WithDamping overrides the default damping factor of 0.85.
func WithDamping(d float64) PageRankOption {
	return func(o *PageRankOptions) { o.damping = d }
}

// NewPageRankOptions builds a PageRankOptions starting from the standard
// PageRank defaults (K=20, ε=1e-6, d=0.85) and applying opts in order.
func NewPageRankOptions(opts ...PageRankOption) PageRankOptions {
	o := PageRankOptions{
		maxIterations: 20,
		tolerance:     1e-6,
		damping:       0.85,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

/*
PageRank computes node rank by power iteration over the reverse CSR:
reading incoming(v) to accumulate contributions is what keeps each
iteration O(N+E) rather than O(N²).

Steps, per iteration:
 1. dangling mass D = Σ pr[v] over nodes with out_degree(v)=0.
 2. base term b = (1-d)/N + d·D/N.
 3. for each v: pr_new[v] = b + d · Σ over u ∈ incoming(v) : pr[u]/out_degree(u).
 4. δ = Σ |pr_new[v] - pr[v]|; replace pr with pr_new.
 5. stop if δ < ε·N or the iteration cap is reached.

Returns ErrNumericOverflow if any score goes non-finite, which can only
happen on a pathological graph or parameter combination.
*/
func PageRank(g *csr.Graph, opts ...PageRankOption) ([]float64, error) {
	o := NewPageRankOptions(opts...)
	n := int(g.NodeCount())
	if n == 0 {
		return nil, nil
	}

	outDeg := make([]uint32, n)
	var danglingIdx []int
	for v := 0; v < n; v++ {
		d, err := g.OutDegree(uint32(v))
		if err != nil {
			return nil, err
		}
		outDeg[v] = d
		if d == 0 {
			danglingIdx = append(danglingIdx, v)
		}
	}

	pr := make([]float64, n)
	for v := range pr {
		pr[v] = 1.0 / float64(n)
	}
	next := make([]float64, n)

	for iter := 0; iter < o.maxIterations; iter++ {
		var dangling float64
		for _, v := range danglingIdx {
			dangling += pr[v]
		}
		base := (1-o.damping)/float64(n) + o.damping*dangling/float64(n)

		for v := 0; v < n; v++ {
			sources, err := g.Incoming(uint32(v))
			if err != nil {
				return nil, err
			}
			var contribution float64
			for _, u := range sources {
				contribution += pr[u] / float64(outDeg[u])
			}
			score := base + o.damping*contribution
			if math.IsNaN(score) || math.IsInf(score, 0) {
				return nil, fmt.Errorf("%w: node %d", ErrNumericOverflow, v)
			}
			next[v] = score
		}

		delta := floats.Distance(next, pr, 1)
		copy(pr, next)
		if delta < o.tolerance*float64(n) {
			break
		}
	}

	return pr, nil
}
