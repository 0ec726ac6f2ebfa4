package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/production"
)

func TestStart(t *testing.T) {
	s := production.Start(24)
	assert.Equal(t, 0, s.Time)
	assert.Equal(t, 24, s.Horizon)
	assert.Equal(t, 24, s.Remaining())
	assert.Equal(t, production.Amounts{}, s.Materials)
	assert.Equal(t, production.Amounts{1, 0, 0, 0}, s.Robots)
	// 0 geodes, 0 geode robots, 24*23/2 from hypothetical builds.
	assert.Equal(t, 276, s.Priority())
}

func TestWait(t *testing.T) {
	s := production.State{Time: 3, Horizon: 24, Materials: production.Amounts{1, 2, 3, 4}, Robots: production.Amounts{1, 1, 0, 2}}
	next := production.Wait(s)
	assert.Equal(t, 4, next.Time)
	assert.Equal(t, production.Amounts{2, 3, 3, 6}, next.Materials)
	assert.Equal(t, s.Robots, next.Robots)
	// The input is untouched.
	assert.Equal(t, 3, s.Time)
}

func TestBuy(t *testing.T) {
	bp := sample(t)[0]
	s := production.State{Time: 10, Horizon: 24, Materials: production.Amounts{17, 0, 0, 0}, Robots: production.Amounts{1, 0, 0, 0}}

	next := production.Buy(s, bp, production.Clay)
	assert.Equal(t, 11, next.Time)
	assert.Equal(t, production.Amounts{16, 0, 0, 0}, next.Materials)
	assert.Equal(t, production.Amounts{1, 1, 0, 0}, next.Robots)

	// The new robot mines from the following tick on.
	after := production.Wait(next)
	assert.Equal(t, production.Amounts{17, 1, 0, 0}, after.Materials)

	assert.Equal(t, next, s.Apply(bp, production.BuyStep(production.Clay)))
	assert.Equal(t, production.Wait(s), s.Apply(bp, production.WaitStep()))
}

func TestTransitions_NothingAffordable(t *testing.T) {
	bp := sample(t)[0]
	moves := production.Transitions(production.Start(24), bp)
	assert.Equal(t, []production.Transition{production.WaitStep()}, moves)
}

func TestTransitions_Order(t *testing.T) {
	bp := sample(t)[0]
	s := production.State{Time: 5, Horizon: 24, Materials: production.Amounts{4, 20, 7, 0}, Robots: production.Amounts{1, 1, 1, 0}}
	want := []production.Transition{
		production.BuyStep(production.Ore),
		production.BuyStep(production.Clay),
		production.BuyStep(production.Obsidian),
		production.BuyStep(production.Geode),
		production.WaitStep(),
	}
	assert.Equal(t, want, production.Transitions(s, bp))
	assert.Len(t, production.Successors(s, bp), len(want))
}

func TestTransitions_MaxNeededPrune(t *testing.T) {
	bp := sample(t)[0]
	// Four ore robots already cover the most expensive ore recipe.
	s := production.State{Time: 5, Horizon: 24, Materials: production.Amounts{10, 0, 0, 0}, Robots: production.Amounts{4, 0, 0, 0}}
	want := []production.Transition{production.BuyStep(production.Clay), production.WaitStep()}
	assert.Equal(t, want, production.Transitions(s, bp))
}

func TestTransitions_LastTick(t *testing.T) {
	bp := sample(t)[0]
	// On the last tick only a geode robot could still change the outcome.
	s := production.State{Time: 23, Horizon: 24, Materials: production.Amounts{10, 20, 10, 0}, Robots: production.Amounts{1, 1, 1, 0}}
	want := []production.Transition{production.BuyStep(production.Geode), production.WaitStep()}
	assert.Equal(t, want, production.Transitions(s, bp))

	// At the horizon there is nothing left to do.
	assert.Empty(t, production.Transitions(production.Wait(s), bp))
	assert.Empty(t, production.Successors(production.Wait(s), bp))
}

func TestSuccessors_Invariants(t *testing.T) {
	bp := sample(t)[1]
	const horizon = 12

	// Breadth-first sweep over every reachable state.
	seen := map[production.State]bool{}
	layer := []production.State{production.Start(horizon)}
	for len(layer) > 0 {
		var next []production.State
		for _, s := range layer {
			for _, n := range production.Successors(s, bp) {
				require.Equal(t, s.Time+1, n.Time)
				require.LessOrEqual(t, n.Time, n.Horizon)
				for _, k := range production.Kinds {
					require.GreaterOrEqual(t, n.Materials[k], 0, "state %v", n)
					require.GreaterOrEqual(t, n.Robots[k], s.Robots[k])
				}
				require.LessOrEqual(t, n.Priority(), s.Priority(), "bound grew from %v to %v", s, n)
				if !seen[n] {
					seen[n] = true
					next = append(next, n)
				}
			}
		}
		layer = next
	}
	assert.NotEmpty(t, seen)
}

func TestPlanOf(t *testing.T) {
	bp := sample(t)[0]
	s0 := production.State{Horizon: 5, Materials: production.Amounts{4, 0, 0, 0}, Robots: production.Amounts{1, 0, 0, 0}}
	s1 := production.Buy(s0, bp, production.Clay)
	s2 := production.Wait(s1)
	plan := production.PlanOf([]production.State{s0, s1, s2})
	assert.Equal(t, []production.Transition{production.BuyStep(production.Clay), production.WaitStep()}, plan)
	assert.Nil(t, production.PlanOf([]production.State{s0}))
}

func TestTransition_String(t *testing.T) {
	assert.Equal(t, "wait", production.WaitStep().String())
	assert.Equal(t, "buy obsidian robot", production.BuyStep(production.Obsidian).String())
}

func TestState_String(t *testing.T) {
	s := production.State{Time: 3, Horizon: 5, Materials: production.Amounts{1, 0, 0, 1}, Robots: production.Amounts{1, 0, 0, 1}}
	assert.Equal(t, "03min | Bound: 4 | Materials: [1 0 0 1] | Robots: [1 0 0 1]", s.String())
}

func TestBuy_SingleRobotBlueprint(t *testing.T) {
	bp, err := production.ParseBlueprint("Blueprint 0: Each ore robot costs 1 ore.")
	require.NoError(t, err)
	s := production.State{Time: 3, Horizon: 24, Materials: production.Amounts{17, 0, 0, 0}}
	next := production.Buy(s, bp, production.Ore)
	assert.Equal(t, 4, next.Time)
	assert.Equal(t, production.Amounts{16, 0, 0, 0}, next.Materials)
	assert.Equal(t, production.Amounts{1, 0, 0, 0}, next.Robots)
}
