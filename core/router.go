package core

import (
	"github.com/encodeous/dvsim/state"
)

// RelaxNode runs one synchronous Bellman-Ford round for a single node,
// recomputing its table entry for every destination from the direct link and
// from the vectors received at the start of the round.
//
// Neighbours are considered in sorted order so that ties resolve
// deterministically: a direct link beats any equal-cost relayed path, and
// among relayed paths the first neighbour wins.
//
// Returns whether any table entry changed. The neighbour map is never
// mutated here, and no other node's state is touched.
func RelaxNode(n *state.Node, dests []state.NodeId) bool {
	changed := false
	neighbours := n.SortedNeighbours()
	for _, dest := range dests {
		if dest == n.Id {
			continue
		}
		best := state.RouteEntry{Cost: state.Unreachable}
		if link, ok := n.Neighbours[dest]; ok {
			best = state.RouteEntry{Nh: dest, Cost: state.Finite(link)}
		}
		for _, nb := range neighbours {
			vec, ok := n.LastReceived[nb]
			if !ok {
				continue
			}
			adv, ok := vec[dest]
			if !ok || !adv.IsFinite() {
				continue
			}
			cand := state.Finite(n.Neighbours[nb]).Add(adv)
			if cand.Less(best.Cost) {
				best = state.RouteEntry{Nh: nb, Cost: cand}
			}
		}
		if !best.Cost.IsFinite() {
			best.Nh = ""
		}
		if prev := n.Table[dest]; prev != best {
			n.Table[dest] = best
			changed = true
		}
	}
	return changed
}
