package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/encodeous/dvsim/state"
	"github.com/stretchr/testify/assert"
)

func simulateText(t *testing.T, input string) string {
	t.Helper()
	sc, err := state.ParseScenario(strings.Split(input, "\n"))
	assert.NoError(t, err)
	var buf bytes.Buffer
	err = Simulate(sc, nil, discardLog(), &TextReporter{W: &buf})
	assert.NoError(t, err)
	return buf.String()
}

// Locks down the snapshot semantics: the via-costs of the table reported at
// t=k are computed from the vectors received at the start of round k. B's
// t=2 row for A shows the detour cost 8 (3 + C's freshly advertised 5) even
// though B's own route never changed.
func TestReportPathTopology(t *testing.T) {
	out := simulateText(t, `A
B
C
START
A B 2
B C 3
END`)
	assert.Equal(t, `Distance Table of router A at t=0:
     B    C
B    2    INF
C    INF  INF

Distance Table of router B at t=0:
     A    C
A    2    INF
C    INF  3

Distance Table of router C at t=0:
     A    B
A    INF  INF
B    INF  3

Distance Table of router A at t=1:
     B    C
B    2    INF
C    5    INF

Distance Table of router B at t=1:
     A    C
A    2    INF
C    INF  3

Distance Table of router C at t=1:
     A    B
A    INF  5
B    INF  3

Distance Table of router A at t=2:
     B    C
B    2    INF
C    5    INF

Distance Table of router B at t=2:
     A    C
A    2    8
C    7    3

Distance Table of router C at t=2:
     A    B
A    INF  5
B    INF  3

Routing Table of router A:
B,B,2
C,B,5

Routing Table of router B:
A,A,2
C,C,3

Routing Table of router C:
A,B,5
B,B,3

`, out)
}

// The round counter continues across the update batch: the first post-update
// snapshot is one past the converged round of the first phase.
func TestReportUpdatePhaseContinuesRounds(t *testing.T) {
	out := simulateText(t, `A
B
START
A B 1
UPDATE
A B 3
END`)
	assert.Equal(t, `Distance Table of router A at t=0:
     B
B    1

Distance Table of router B at t=0:
     A
A    1

Distance Table of router A at t=1:
     B
B    1

Distance Table of router B at t=1:
     A
A    1

Routing Table of router A:
B,B,1

Routing Table of router B:
A,A,1

Distance Table of router A at t=2:
     B
B    3

Distance Table of router B at t=2:
     A
A    3

Distance Table of router A at t=3:
     B
B    3

Distance Table of router B at t=3:
     A
A    3

Distance Table of router A at t=4:
     B
B    3

Distance Table of router B at t=4:
     A
A    3

Routing Table of router A:
B,B,3

Routing Table of router B:
A,A,3

`, out)
}

func TestReportUnreachableRow(t *testing.T) {
	out := simulateText(t, `A
B
C
START
A B 1
END`)
	// C is isolated: everything is INF both ways
	assert.Contains(t, out, `Routing Table of router C:
A,INF,INF
B,INF,INF`)
	assert.Contains(t, out, "C,INF,INF")
}
