package state

import "fmt"

// Validate checks the structural invariants of the network: link symmetry,
// table completeness, the unreachable/next-hop pairing, and the absence of
// self entries.
func (w *Network) Validate() error {
	for id, n := range w.Nodes {
		for nb, cost := range n.Neighbours {
			peer, ok := w.Nodes[nb]
			if !ok {
				return fmt.Errorf("node %v has unknown neighbour %v", id, nb)
			}
			back, ok := peer.Neighbours[id]
			if !ok {
				return fmt.Errorf("asymmetric link: %v-%v exists, %v-%v does not", id, nb, nb, id)
			}
			if back != cost {
				return fmt.Errorf("asymmetric cost on link %v-%v: %d vs %d", id, nb, cost, back)
			}
		}
		if _, ok := n.Table[id]; ok {
			return fmt.Errorf("node %v has a table entry for itself", id)
		}
		if !w.initialised {
			continue
		}
		if len(n.Table) != len(w.Nodes)-1 {
			return fmt.Errorf("node %v table has %d entries, want %d", id, len(n.Table), len(w.Nodes)-1)
		}
		for dest, entry := range n.Table {
			if _, ok := w.Nodes[dest]; !ok {
				return fmt.Errorf("node %v routes to unknown destination %v", id, dest)
			}
			if entry.Cost.IsFinite() != (entry.Nh != "") {
				return fmt.Errorf("node %v entry for %v pairs cost %v with next hop %q", id, dest, entry.Cost, entry.Nh)
			}
		}
	}
	return nil
}
