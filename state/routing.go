package state

import (
	"maps"
	"slices"
)

type NodeId string

// Vector is what a node advertises to its neighbours: its current table
// projected down to destination and cost, next hop stripped.
type Vector map[NodeId]Cost

type RouteEntry struct {
	Nh   NodeId // next hop node, empty iff Cost is unreachable
	Cost Cost
}

type Node struct {
	Id         NodeId
	Neighbours map[NodeId]int // direct link costs, absent = no link
	Table      map[NodeId]RouteEntry
	// LastReceived holds the most recent vector advertised by each current
	// neighbour. Rebuilt on every exchange, so vectors from removed
	// neighbours never leak into relaxation.
	LastReceived map[NodeId]Vector
}

func NewNode(id NodeId) *Node {
	return &Node{
		Id:           id,
		Neighbours:   make(map[NodeId]int),
		Table:        make(map[NodeId]RouteEntry),
		LastReceived: make(map[NodeId]Vector),
	}
}

// Advertise projects the node's table to a distance vector.
func (n *Node) Advertise() Vector {
	v := make(Vector, len(n.Table))
	for dest, entry := range n.Table {
		v[dest] = entry.Cost
	}
	return v
}

func (n *Node) SortedNeighbours() []NodeId {
	return slices.Sorted(maps.Keys(n.Neighbours))
}
