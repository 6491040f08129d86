package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/encodeous/dvsim/state"
)

// Reporter consumes read-only snapshots of the network: distance tables
// after every round, routing tables after convergence.
type Reporter interface {
	DistanceTables(w *state.Network, round int)
	RoutingTables(w *state.Network)
}

// TextReporter renders the canonical textual report.
type TextReporter struct {
	W io.Writer
}

const cellWidth = 5

// viaCost is the cost of reaching dest by forwarding through via
// specifically: the direct link cost when dest is the via column itself,
// otherwise the link cost plus via's advertised cost to dest, as received at
// the start of the round being reported.
func viaCost(n *state.Node, dest, via state.NodeId) state.Cost {
	link, ok := n.Neighbours[via]
	if !ok {
		return state.Unreachable
	}
	if via == dest {
		return state.Finite(link)
	}
	vec, ok := n.LastReceived[via]
	if !ok {
		return state.Unreachable
	}
	adv, ok := vec[dest]
	if !ok {
		return state.Unreachable
	}
	return state.Finite(link).Add(adv)
}

func row(cells ...string) string {
	var b strings.Builder
	for i, c := range cells {
		if i == len(cells)-1 {
			b.WriteString(c)
			break
		}
		b.WriteString(fmt.Sprintf("%-*s", cellWidth, c))
	}
	return strings.TrimRight(b.String(), " ")
}

func (r *TextReporter) DistanceTables(w *state.Network, round int) {
	ids := w.SortedIds()
	for _, id := range ids {
		n := w.Nodes[id]
		fmt.Fprintf(r.W, "Distance Table of router %v at t=%d:\n", id, round)
		others := make([]state.NodeId, 0, len(ids)-1)
		for _, o := range ids {
			if o != id {
				others = append(others, o)
			}
		}
		header := make([]string, 0, len(others)+1)
		header = append(header, "")
		for _, o := range others {
			header = append(header, string(o))
		}
		fmt.Fprintln(r.W, row(header...))
		for _, dest := range others {
			cells := make([]string, 0, len(others)+1)
			cells = append(cells, string(dest))
			for _, via := range others {
				cells = append(cells, viaCost(n, dest, via).String())
			}
			fmt.Fprintln(r.W, row(cells...))
		}
		fmt.Fprintln(r.W)
	}
}

func (r *TextReporter) RoutingTables(w *state.Network) {
	ids := w.SortedIds()
	for _, id := range ids {
		n := w.Nodes[id]
		fmt.Fprintf(r.W, "Routing Table of router %v:\n", id)
		for _, dest := range ids {
			if dest == id {
				continue
			}
			entry := n.Table[dest]
			if entry.Cost.IsFinite() {
				fmt.Fprintf(r.W, "%v,%v,%d\n", dest, entry.Nh, entry.Cost.Value())
			} else {
				fmt.Fprintf(r.W, "%v,INF,INF\n", dest)
			}
		}
		fmt.Fprintln(r.W)
	}
}
