package state

import (
	"fmt"
	"maps"
	"slices"
)

// RemoveCost is the sentinel edge cost meaning "delete this link".
const RemoveCost = -1

type Edge struct {
	U, V NodeId
	Cost int
}

// Network is the authoritative collection of all known nodes. The key set is
// the universe of destinations; it grows when an update references a new
// name, and never shrinks.
type Network struct {
	Nodes map[NodeId]*Node

	initialised bool
}

func NewNetwork(names ...NodeId) *Network {
	w := &Network{Nodes: make(map[NodeId]*Node, len(names))}
	for _, name := range names {
		w.Nodes[name] = NewNode(name)
	}
	return w
}

// Build materialises the declared node set and applies the initial edge
// sequence. Edges referencing undeclared nodes are rejected; implicit
// creation is reserved for the update phase.
func Build(names []NodeId, edges []Edge) (*Network, error) {
	w := NewNetwork(names...)
	for _, e := range edges {
		if _, ok := w.Nodes[e.U]; !ok {
			return nil, fmt.Errorf("edge %v-%v references undeclared node %v", e.U, e.V, e.U)
		}
		if _, ok := w.Nodes[e.V]; !ok {
			return nil, fmt.Errorf("edge %v-%v references undeclared node %v", e.U, e.V, e.V)
		}
		if err := w.ApplyEdge(e.U, e.V, e.Cost); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// GetOrCreate resolves a name to a node, creating it when unknown. A node
// created after initialisation receives a fresh all-unreachable row, and
// every other node gains an all-unreachable entry for it, keeping tables
// complete for the next round.
func (w *Network) GetOrCreate(id NodeId) *Node {
	if n, ok := w.Nodes[id]; ok {
		return n
	}
	n := NewNode(id)
	w.Nodes[id] = n
	if w.initialised {
		for _, other := range w.Nodes {
			if other.Id == id {
				continue
			}
			other.Table[id] = RouteEntry{Cost: Unreachable}
			n.Table[other.Id] = RouteEntry{Cost: Unreachable}
		}
	}
	return n
}

// ApplyEdge sets or removes the undirected link between u and v. A
// non-negative cost overwrites both directions (last write wins); RemoveCost
// deletes the link, and removing an absent link is a no-op.
func (w *Network) ApplyEdge(u, v NodeId, cost int) error {
	if u == v {
		return fmt.Errorf("self edge on node %v", u)
	}
	if cost < RemoveCost {
		return fmt.Errorf("invalid cost %d for edge %v-%v", cost, u, v)
	}
	nu := w.GetOrCreate(u)
	nv := w.GetOrCreate(v)
	if cost == RemoveCost {
		delete(nu.Neighbours, v)
		delete(nv.Neighbours, u)
		return nil
	}
	nu.Neighbours[v] = cost
	nv.Neighbours[u] = cost
	return nil
}

// ApplyUpdates applies a batch of link mutations. Unknown node names are
// created implicitly. Convergence is not triggered here; the caller re-runs
// the driver afterwards.
func (w *Network) ApplyUpdates(updates []Edge) error {
	for _, e := range updates {
		if err := w.ApplyEdge(e.U, e.V, e.Cost); err != nil {
			return err
		}
	}
	return nil
}

// InitTables seeds every node's table: direct neighbours at their link cost,
// everything else unreachable. Called once before the first convergence run.
// Re-convergence after updates starts from the previously converged tables,
// never from a reset.
func (w *Network) InitTables() {
	for _, n := range w.Nodes {
		for _, other := range w.Nodes {
			if other.Id == n.Id {
				continue
			}
			if c, ok := n.Neighbours[other.Id]; ok {
				n.Table[other.Id] = RouteEntry{Nh: other.Id, Cost: Finite(c)}
			} else {
				n.Table[other.Id] = RouteEntry{Cost: Unreachable}
			}
		}
	}
	w.initialised = true
}

func (w *Network) SortedIds() []NodeId {
	return slices.Sorted(maps.Keys(w.Nodes))
}
