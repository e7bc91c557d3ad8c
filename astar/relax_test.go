package astar

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// relaxFixture places current at the origin and n five units away, behind a
// multiplier of 10. The goal sits on n, so h(n, goal) = 0.
func relaxFixture(model CostModel) (r *runner, current, n *Node) {
	start := NewNode(orb.Point{-1, 0}, true, 1)
	current = NewNode(orb.Point{0, 0}, true, 1)
	n = NewNode(orb.Point{3, 4}, true, 10)
	goal := NewNode(orb.Point{3, 4}, true, 1)

	cfg := DefaultOptions()
	cfg.CostModel = model

	return newRunner(start, goal, make(sideTable), cfg), current, n
}

func TestRelax_CompatArithmetic(t *testing.T) {
	cases := []struct {
		name      string
		cur       scratch // current.currentCost, current.estimatedCost
		old       scratch // n.currentCost, n.estimatedCost
		adopt     bool
		wantCost  float64
		wantTotal float64
	}{
		// newCurrent = 2 + 5 = 7 (multiplier ignored), newTotal = 7 + 1 = 8 < 150.
		{"AdoptsOnLowerTotal", scratch{currentCost: 2, estimatedCost: 1}, scratch{currentCost: 100, estimatedCost: 50}, true, 7, 57},
		// newCurrent 7 ≥ 6, but newTotal 8 < 106: the total decides.
		{"AdoptsDespiteHigherCurrent", scratch{currentCost: 2, estimatedCost: 1}, scratch{currentCost: 6, estimatedCost: 100}, true, 7, 107},
		// newCurrent 7 < 10, but newTotal 27 ≥ 10.
		{"KeepsOnHigherTotal", scratch{currentCost: 2, estimatedCost: 20}, scratch{currentCost: 10, estimatedCost: 0}, false, 10, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, current, n := relaxFixture(CostModelCompat)
			previous := NewNode(orb.Point{9, 9}, true, 1)

			cs := r.book.entry(current)
			*cs = tc.cur
			cs.state = Explored
			s := r.book.entry(n)
			*s = tc.old
			s.parent = previous
			s.state = Open

			r.relax(n, s, current, cs)

			if tc.adopt {
				assert.Same(t, current, s.parent)
			} else {
				assert.Same(t, previous, s.parent)
			}
			assert.InDelta(t, tc.wantCost, s.currentCost, 1e-9)
			assert.InDelta(t, tc.old.estimatedCost, s.estimatedCost, 1e-9, "estimatedCost must stay as queued")
			assert.InDelta(t, tc.wantTotal, s.currentCost+s.estimatedCost, 1e-9)
			assert.Equal(t, Open, s.state)
			assert.Zero(t, r.frontier.Len(), "compat relaxation never re-queues")
		})
	}
}

func TestRelax_StandardArithmetic(t *testing.T) {
	r, current, n := relaxFixture(CostModelStandard)

	cs := r.book.entry(current)
	cs.currentCost, cs.estimatedCost, cs.state = 2, 1, Explored
	s := r.book.entry(n)
	s.currentCost, s.estimatedCost, s.state = 100, 100, Open

	// newCurrent = 2 + 5*10 = 52 < 100; h = 0.
	r.relax(n, s, current, cs)
	assert.Same(t, current, s.parent)
	assert.InDelta(t, 52.0, s.currentCost, 1e-9)
	assert.InDelta(t, 52.0, s.estimatedCost, 1e-9)
	require.Equal(t, 1, r.frontier.Len())
	item, _ := r.frontier.Peek()
	assert.Same(t, n, item.node)
	assert.InDelta(t, 52.0, item.priority, 1e-9)

	// A second, worse route changes nothing.
	cs.currentCost = 60
	r.relax(n, s, current, cs)
	assert.InDelta(t, 52.0, s.currentCost, 1e-9)
	assert.Equal(t, 1, r.frontier.Len())
}
