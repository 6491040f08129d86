package state

import (
	"fmt"
	"strconv"
	"strings"
)

// Scenario is the parsed form of the line-oriented input format: declared
// node names until START, initial edges until UPDATE or END, and an optional
// update batch until END.
type Scenario struct {
	Nodes      []NodeId
	Edges      []Edge
	Updates    []Edge
	HasUpdates bool
}

func parseEdge(line string, lineNo int) (Edge, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Edge{}, fmt.Errorf("line %d: expected 'u v cost', got %d fields", lineNo, len(fields))
	}
	cost, err := strconv.Atoi(fields[2])
	if err != nil {
		return Edge{}, fmt.Errorf("line %d: cost %q is not an integer", lineNo, fields[2])
	}
	if cost < RemoveCost {
		return Edge{}, fmt.Errorf("line %d: invalid cost %d", lineNo, cost)
	}
	return Edge{U: NodeId(fields[0]), V: NodeId(fields[1]), Cost: cost}, nil
}

const (
	secNodes = iota
	secEdges
	secUpdates
	secDone
)

// ParseScenario parses the input lines. Malformed lines are fatal; there is
// no partial recovery.
func ParseScenario(lines []string) (*Scenario, error) {
	sc := &Scenario{}
	seen := make(map[NodeId]bool)

	section := secNodes

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		lineNo := i + 1
		if line == "" || section == secDone {
			continue
		}
		switch section {
		case secNodes:
			if line == "START" {
				section = secEdges
				continue
			}
			if len(strings.Fields(line)) != 1 {
				return nil, fmt.Errorf("line %d: node name must be a single token", lineNo)
			}
			name := NodeId(line)
			if seen[name] {
				return nil, fmt.Errorf("line %d: duplicate node name %v", lineNo, name)
			}
			seen[name] = true
			sc.Nodes = append(sc.Nodes, name)
		case secEdges:
			if line == "UPDATE" {
				sc.HasUpdates = true
				section = secUpdates
				continue
			}
			if line == "END" {
				section = secDone
				continue
			}
			e, err := parseEdge(line, lineNo)
			if err != nil {
				return nil, err
			}
			sc.Edges = append(sc.Edges, e)
		case secUpdates:
			if line == "END" {
				section = secDone
				continue
			}
			e, err := parseEdge(line, lineNo)
			if err != nil {
				return nil, err
			}
			sc.Updates = append(sc.Updates, e)
		}
	}
	if section != secDone {
		return nil, fmt.Errorf("unexpected end of input, missing %s", missingTerminator(section))
	}
	return sc, nil
}

func missingTerminator(section int) string {
	if section == secNodes {
		return "START"
	}
	return "END"
}
