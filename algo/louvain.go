package algo

import (
	"sort"

	"github.com/paiml/trueno-graph/csr"
)

// LouvainResult is the outcome of one Louvain() run.
type LouvainResult struct {
	// Community[v] is v's community ID, compacted to a dense range
	// [0, NumCommunities).
	Community []uint32
	// NumCommunities is len(set(Community)).
	NumCommunities uint32
	// Modularity is the modularity of the returned partition.
	Modularity float64
}

/*
Louvain runs a single-pass greedy local-moving modularity optimization,
treating the graph as undirected and edge weights as 1.0 when the graph
is unweighted.

This is deliberately the "local moving" phase of Blondel et al. without
the aggregation phase: no super-node contraction and re-run. A full
multi-level Louvain would converge to a different (usually better)
partition on graphs with nested community structure, but the single-pass
variant is simpler to reason about and keeps the equivalence guarantees
this package makes elsewhere (O(N+E)-ish cost, no hidden recursion).

Steps, each pass (in ascending node ID order) until no node moves:
 1. Remove v from its current community, weakening that community's
    total degree by v's own degree.
 2. For every neighboring community (via either outgoing or incoming
    edges), compute the modularity gain of moving v there.
 3. Move v to the community with the largest strictly positive gain;
    ties break toward the lowest community ID; if no gain is positive,
    v returns to the community it started this step in.
 4. Add v's degree back into the chosen community's total.

Returns the partition compacted to dense community IDs plus the final
modularity score.
*/
func Louvain(g *csr.Graph) (*LouvainResult, error) {
	n := int(g.NodeCount())
	if n == 0 {
		return &LouvainResult{}, nil
	}

	degree := make([]float64, n)
	var totalWeight float64 // m: sum of edge weights, counted once per edge
	neighborWeight := make([]map[uint32]float64, n)

	for v := 0; v < n; v++ {
		neighborWeight[v] = make(map[uint32]float64)

		outs, err := g.Outgoing(uint32(v))
		if err != nil {
			return nil, err
		}
		outW, err := g.OutgoingWeights(uint32(v))
		if err != nil {
			return nil, err
		}
		for i, u := range outs {
			w := float64(outW[i])
			degree[v] += w
			totalWeight += w
			neighborWeight[v][u] += w
		}

		ins, err := g.Incoming(uint32(v))
		if err != nil {
			return nil, err
		}
		inW, err := g.IncomingWeights(uint32(v))
		if err != nil {
			return nil, err
		}
		for i, u := range ins {
			w := float64(inW[i])
			degree[v] += w
			neighborWeight[v][u] += w
		}
	}

	if totalWeight == 0 {
		return identityPartition(n), nil
	}
	twoM := 2 * totalWeight

	community := make([]uint32, n)
	communityDegree := make([]float64, n)
	for v := 0; v < n; v++ {
		community[v] = uint32(v)
		communityDegree[v] = degree[v]
	}

	for {
		moved := false
		for v := 0; v < n; v++ {
			current := community[v]
			communityDegree[current] -= degree[v]

			gains := make(map[uint32]float64)
			for u, w := range neighborWeight[v] {
				if u == uint32(v) {
					continue
				}
				c := community[u]
				gains[c] += w
			}
			for c := range gains {
				gains[c] -= communityDegree[c] * degree[v] / twoM
			}

			best := current
			bestGain := 0.0
			for _, c := range sortedKeys(gains) {
				// Ascending iteration plus a strict ">" means the first
				// community to reach a given gain value keeps it, which is
				// exactly the "lowest community ID wins ties" rule.
				if gains[c] > bestGain {
					bestGain = gains[c]
					best = c
				}
			}

			community[v] = best
			communityDegree[best] += degree[v]
			if best != current {
				moved = true
			}
		}
		if !moved {
			break
		}
	}

	compacted, numCommunities := compactCommunities(community)
	modularity := computeModularity(neighborWeight, compacted, twoM)

	return &LouvainResult{
		Community:      compacted,
		NumCommunities: numCommunities,
		Modularity:     modularity,
	}, nil
}

func identityPartition(n int) *LouvainResult {
	community := make([]uint32, n)
	for v := range community {
		community[v] = uint32(v)
	}
	return &LouvainResult{Community: community, NumCommunities: uint32(n)}
}

func sortedKeys(m map[uint32]float64) []uint32 {
	keys := make([]uint32, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// compactCommunities relabels community IDs to a dense [0, k) range in
// order of first appearance by node ID.
func compactCommunities(community []uint32) ([]uint32, uint32) {
	remap := make(map[uint32]uint32)
	out := make([]uint32, len(community))
	var next uint32
	for v, c := range community {
		id, ok := remap[c]
		if !ok {
			id = next
			remap[c] = id
			next++
		}
		out[v] = id
	}
	return out, next
}

// computeModularity evaluates Q = Σ_c [ e_c/2m - (tot_c/2m)^2 ] over the
// compacted partition, where e_c is twice the internal edge weight of
// community c (each internal edge, self-loops included, is counted from
// both endpoints) and tot_c is the community's total degree (summing both
// edge directions).
func computeModularity(neighborWeight []map[uint32]float64, community []uint32, twoM float64) float64 {
	if twoM == 0 {
		return 0
	}
	numCommunities := 0
	for _, c := range community {
		if int(c)+1 > numCommunities {
			numCommunities = int(c) + 1
		}
	}
	internal := make([]float64, numCommunities)
	tot := make([]float64, numCommunities)

	for v, neighbors := range neighborWeight {
		cv := community[v]
		for u, w := range neighbors {
			tot[cv] += w
			if community[u] == cv {
				internal[cv] += w
			}
		}
	}

	var q float64
	for c := 0; c < numCommunities; c++ {
		q += internal[c]/twoM - (tot[c]/twoM)*(tot[c]/twoM)
	}
	return q
}
