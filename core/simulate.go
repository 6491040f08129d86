package core

import (
	"log/slog"

	"github.com/encodeous/dvsim/state"
)

// Simulate runs a full session: build the topology, converge, and if the
// scenario carries an update batch, apply it and converge again with a
// continued round counter.
func Simulate(sc *state.Scenario, cfg *state.SimCfg, log *slog.Logger, rep Reporter) error {
	if cfg == nil {
		cfg = &state.SimCfg{}
	}
	net, err := state.Build(sc.Nodes, sc.Edges)
	if err != nil {
		return err
	}
	net.InitTables()
	err = net.Validate()
	if err != nil {
		return err
	}

	d := NewDriver(net, log, rep)
	defer d.Close()
	d.MaxRounds = cfg.MaxRounds
	d.Parallel = cfg.Parallel

	err = d.Run()
	if err != nil {
		return err
	}
	if sc.HasUpdates {
		err = net.ApplyUpdates(sc.Updates)
		if err != nil {
			return err
		}
		err = net.Validate()
		if err != nil {
			return err
		}
		err = d.Run()
		if err != nil {
			return err
		}
	}
	return nil
}
