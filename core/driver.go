package core

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/encodeous/dvsim/state"
	"github.com/jellydator/ttlcache/v3"
)

type ConvState int

const (
	Running ConvState = iota
	Converged
)

// ErrRoundLimit is returned when an optional safety cap aborts a run before
// the fixpoint. There is no cap by default; count-to-infinity is a faithful,
// reproducible behaviour of the protocol.
var ErrRoundLimit = errors.New("round limit reached before convergence")

// Driver executes synchronous rounds across all nodes until no node reports
// a change. It can be invoked again after a topology update; the round
// counter then continues and tables are not reinitialised.
type Driver struct {
	Net      *state.Network
	Reporter Reporter
	Log      *slog.Logger

	// MaxRounds, when non-zero, caps a single Run. Never alters output for
	// inputs that converge within the cap.
	MaxRounds int
	// Parallel relaxes nodes concurrently within a round. Legal because no
	// two nodes ever write the same table and all reads go through the
	// previous round's published vectors.
	Parallel bool

	Round int
	state ConvState

	prev    map[pairKey]state.Cost
	streaks map[pairKey]int
	warned  *ttlcache.Cache[pairKey, struct{}]
}

type pairKey struct {
	node, dest state.NodeId
}

func NewDriver(net *state.Network, log *slog.Logger, rep Reporter) *Driver {
	d := &Driver{
		Net:      net,
		Reporter: rep,
		Log:      log,
		prev:     make(map[pairKey]state.Cost),
		streaks:  make(map[pairKey]int),
		warned: ttlcache.New[pairKey, struct{}](
			ttlcache.WithTTL[pairKey, struct{}](state.CountWarnTTL),
			ttlcache.WithDisableTouchOnHit[pairKey, struct{}](),
		),
	}
	go d.warned.Start()
	return d
}

func (d *Driver) Close() {
	d.warned.Stop()
}

func (d *Driver) State() ConvState {
	return d.state
}

// Run drives rounds to a fixpoint, reporting a distance-table snapshot for
// the starting round and after every subsequent round up to and including
// the converged round, then the final routing tables.
func (d *Driver) Run() error {
	if d.state == Converged {
		// re-run after an update batch; the counter continues
		d.state = Running
		d.Round++
	}
	d.snapshot()
	rounds := 0
	for d.state == Running {
		if d.MaxRounds > 0 && rounds >= d.MaxRounds {
			return fmt.Errorf("%w (%d rounds)", ErrRoundLimit, rounds)
		}
		d.exchange()
		changed := d.relaxAll()
		d.Round++
		rounds++
		d.snapshot()
		if !changed {
			d.state = Converged
		}
	}
	d.Log.Info("converged", "round", d.Round, "nodes", len(d.Net.Nodes))
	if d.Reporter != nil {
		d.Reporter.RoutingTables(d.Net)
	}
	return nil
}

// exchange publishes every node's vector from the same table snapshot, then
// lets each node retain vectors for its current neighbours only. No node
// observes another's mid-round update.
func (d *Driver) exchange() {
	vectors := make(map[state.NodeId]state.Vector, len(d.Net.Nodes))
	for id, n := range d.Net.Nodes {
		vectors[id] = n.Advertise()
	}
	for _, n := range d.Net.Nodes {
		recv := make(map[state.NodeId]state.Vector, len(n.Neighbours))
		for nb := range n.Neighbours {
			recv[nb] = vectors[nb]
		}
		n.LastReceived = recv
	}
}

func (d *Driver) relaxAll() bool {
	ids := d.Net.SortedIds()
	changed := false
	if d.Parallel {
		results := make([]bool, len(ids))
		var wg sync.WaitGroup
		for i, id := range ids {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = RelaxNode(d.Net.Nodes[id], ids)
			}()
		}
		wg.Wait()
		for _, r := range results {
			changed = changed || r
		}
	} else {
		for _, id := range ids {
			if RelaxNode(d.Net.Nodes[id], ids) {
				changed = true
			}
		}
	}
	d.observe(ids)
	if changed {
		d.Log.Debug("round complete", "round", d.Round+1)
	}
	return changed
}

// observe watches for destinations whose finite cost keeps rising round
// after round, the signature of count-to-infinity. This only logs; the
// pathology itself runs unmodified, as the protocol has no split-horizon or
// poison-reverse suppression.
func (d *Driver) observe(ids []state.NodeId) {
	for _, id := range ids {
		n := d.Net.Nodes[id]
		for dest, entry := range n.Table {
			key := pairKey{node: id, dest: dest}
			prev, tracked := d.prev[key]
			d.prev[key] = entry.Cost
			switch {
			case !tracked || !prev.IsFinite() || !entry.Cost.IsFinite() || entry.Cost.Less(prev):
				delete(d.streaks, key)
			case prev.Less(entry.Cost):
				// a plateau keeps the streak; the count climbs in steps
				d.streaks[key]++
				if d.streaks[key] >= state.CountStreakThreshold && d.warned.Get(key) == nil {
					d.warned.Set(key, struct{}{}, ttlcache.DefaultTTL)
					d.Log.Warn("possible count-to-infinity",
						"node", id, "dest", dest, "cost", entry.Cost, "rising", d.streaks[key])
				}
			}
		}
	}
}

func (d *Driver) snapshot() {
	if d.Reporter != nil {
		d.Reporter.DistanceTables(d.Net, d.Round)
	}
}
