package network

import (
	"sort"

	"github.com/paulmach/osm"
)

// SimplifySummary counts the outcome of a Simplify pass for the caller's
// end-of-stage report (see pkg/pipeline.RegionResult).
type SimplifySummary struct {
	NodesCoalesced   int // intermediate degree-2 nodes removed
	RunsCollapsed    int // maximal consecutive-segment runs merged into one edge
	SelfLoopsDropped int
}

// Simplify coalesces chains of intermediate degree-2 nodes within a single
// way into single edges, per §4.3. It mutates g in place and is idempotent:
// a second call finds no eligible candidates because coalesced nodes are no
// longer degree-2 endpoints of distinct edges afterward.
func (g *Graph) Simplify() SimplifySummary {
	var summary SimplifySummary

	type cand struct {
		node osm.NodeID
		in   *Edge
		out  *Edge
	}

	groups := make(map[osm.WayID][]cand)
	for id, n := range g.Nodes {
		if n.Retained {
			// Eligibility rule 1: a retained-feature (kerb) node is never coalesced.
			continue
		}
		if g.InDegree(id) != 1 || g.OutDegree(id) != 1 {
			continue
		}
		in := g.in[id][0]
		out := g.out[id][0]
		if in.WayID != out.WayID {
			continue
		}
		groups[in.WayID] = append(groups[in.WayID], cand{node: id, in: in, out: out})
	}

	for wayID, cands := range groups {
		sort.Slice(cands, func(i, j int) bool { return cands[i].in.Segment < cands[j].in.Segment })

		var runs [][]cand
		for _, c := range cands {
			if len(runs) == 0 {
				runs = append(runs, []cand{c})
				continue
			}
			last := runs[len(runs)-1]
			if c.in.Segment == last[len(last)-1].in.Segment+1 {
				runs[len(runs)-1] = append(last, c)
			} else {
				runs = append(runs, []cand{c})
			}
		}

		for _, run := range runs {
			seed := run[0].in
			if !g.HasEdge(seed) {
				// Seed already consumed by a prior run in this pass (can
				// happen if two candidate runs on the same way overlap at
				// a boundary); skip silently per §4.3 edge cases.
				continue
			}

			ndref := append([]osm.NodeID{}, seed.NDRef...)
			p0 := seed.From
			sLast := seed.To
			ok := true
			wrapped := false
			coalesced := 0

			for _, c := range run {
				if !g.HasEdge(c.out) {
					ok = false
					break
				}
				if c.out == seed {
					// The run walks all the way around a closed way and
					// consumes its own seed edge: an entirely circular,
					// otherwise-disconnected way. Drop it per §4.3d rather
					// than materialize a spurious non-loop edge.
					g.RemoveEdge(c.out)
					summary.SelfLoopsDropped++
					coalesced++
					wrapped = true
					break
				}
				ndref = append(ndref, c.out.To)
				sLast = c.out.To
				g.RemoveEdge(c.out)
				coalesced++
			}
			if !ok || wrapped {
				if ok && wrapped {
					summary.NodesCoalesced += coalesced
				}
				continue
			}

			g.RemoveEdge(seed)

			merged := &Edge{
				From:    p0,
				To:      sLast,
				WayID:   wayID,
				Segment: seed.Segment,
				NDRef:   ndref,
				Tags:    seed.Tags,
			}

			if merged.From == merged.To {
				// Entirely circular, otherwise-disconnected way: drop the
				// resulting self-loop rather than carry it into geometry
				// construction (§4.3d).
				summary.SelfLoopsDropped++
				continue
			}

			g.AddEdge(merged)
			summary.NodesCoalesced += coalesced
			summary.RunsCollapsed++
		}
	}

	return summary
}
