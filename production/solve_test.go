package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/bestfirst"
	"github.com/katalvlaran/lvsearch/production"
)

// bruteForce returns the best Target stock reachable from s by trying
// every affordable robot and Wait on every tick, with no pruning at all.
func bruteForce(s production.State, bp *production.Blueprint) int {
	if s.Time == s.Horizon {
		return s.Materials[production.Target]
	}
	best := bruteForce(production.Wait(s), bp)
	for _, k := range bp.Affordable(s.Materials) {
		if v := bruteForce(production.Buy(s, bp, k), bp); v > best {
			best = v
		}
	}

	return best
}

// tiny blueprints small enough for exhaustive enumeration.
var (
	// ore and geode robots only.
	tinyA = production.NewBlueprint(1, map[production.Kind]production.Amounts{
		production.Ore:   {1, 0, 0, 0},
		production.Geode: {2, 0, 0, 0},
	})
	// geode robots need clay.
	tinyB = production.NewBlueprint(2, map[production.Kind]production.Amounts{
		production.Ore:   {2, 0, 0, 0},
		production.Clay:  {1, 0, 0, 0},
		production.Geode: {1, 2, 0, 0},
	})
	// the full four-stage chain.
	tinyC = production.NewBlueprint(3, map[production.Kind]production.Amounts{
		production.Ore:      {2, 0, 0, 0},
		production.Clay:     {1, 0, 0, 0},
		production.Obsidian: {1, 2, 0, 0},
		production.Geode:    {1, 0, 2, 0},
	})
)

func TestMaxGeodes_TinyTables(t *testing.T) {
	cases := []struct {
		name string
		bp   *production.Blueprint
		want []int // indexed by horizon
	}{
		{"OreAndGeode", tinyA, []int{0, 0, 0, 0, 1, 2, 4, 6, 10, 15, 21}},
		{"ClayGeode", tinyB, []int{0, 0, 0, 0, 0, 0, 1, 3, 6, 10, 15}},
		{"FullChain", tinyC, []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for h, want := range tc.want {
				got, err := production.MaxGeodes(tc.bp, h)
				require.NoError(t, err)
				assert.Equalf(t, want, got, "horizon %d", h)
			}
		})
	}
}

func TestSolve_MatchesBruteForce(t *testing.T) {
	bps := append(sample(t), tinyA, tinyB, tinyC)
	for _, bp := range bps {
		for _, h := range []int{0, 3, 7, 10} {
			want := bruteForce(production.Start(h), bp)
			got, err := production.MaxGeodes(bp, h)
			require.NoError(t, err)
			assert.Equalf(t, want, got, "blueprint %d horizon %d", bp.ID, h)
		}
	}
}

func TestPriority_IsAdmissible(t *testing.T) {
	// Along an optimal path the bound never drops below the final answer,
	// and on every reachable state it is at least the true best from there.
	bp := tinyB
	const horizon = 9
	res, err := production.Solve(bp, horizon)
	require.NoError(t, err)
	for _, s := range res.Path {
		assert.GreaterOrEqual(t, s.Priority(), res.Geodes())
	}

	var walk func(s production.State)
	walk = func(s production.State) {
		require.GreaterOrEqual(t, s.Priority(), bruteForce(s, bp), "state %v", s)
		for _, n := range production.Successors(s, bp) {
			walk(n)
		}
	}
	walk(production.Start(7))
}

func TestSolve_PlanReplays(t *testing.T) {
	bp := sample(t)[0]
	res, err := production.Solve(bp, 24)
	require.NoError(t, err)
	require.Len(t, res.Path, 25)
	require.Len(t, res.Plan, 24)

	s := production.Start(24)
	assert.Equal(t, s, res.Path[0])
	for i, move := range res.Plan {
		if move.Op == production.OpBuy {
			require.True(t, s.Materials.Covers(bp.Costs[move.Robot]), "tick %d: %s not affordable", i, move)
		}
		s = s.Apply(bp, move)
		require.Equal(t, res.Path[i+1], s)
	}
	assert.Equal(t, res.Best, s)
	assert.Equal(t, 9, res.Geodes())
	assert.Equal(t, 9, res.QualityLevel())
	assert.Positive(t, res.Expanded)
	assert.GreaterOrEqual(t, res.Pushed, res.Expanded)
}

func TestSolve_Sample24(t *testing.T) {
	bps := sample(t)
	total := 0
	for i, want := range []int{9, 12} {
		q, err := production.QualityLevel(bps[i], 24)
		require.NoError(t, err)
		assert.Equal(t, bps[i].ID*want, q)
		total += q
	}
	assert.Equal(t, 33, total)
}

func TestSolve_Sample32(t *testing.T) {
	if testing.Short() {
		t.Skip("explores a few million states")
	}
	bps := sample(t)
	product := 1
	for i, want := range []int{56, 62} {
		got, err := production.MaxGeodes(bps[i], 32)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		product *= got
	}
	assert.Equal(t, 56*62, product)
}

func TestSolve_Errors(t *testing.T) {
	_, err := production.Solve(nil, 24)
	assert.ErrorIs(t, err, production.ErrNilBlueprint)

	_, err = production.Solve(tinyA, -1)
	assert.ErrorIs(t, err, production.ErrBadHorizon)

	_, err = production.MaxGeodes(sample(t)[0], 24, bestfirst.WithMaxExpansions(10))
	assert.ErrorIs(t, err, bestfirst.ErrBudgetExceeded)
	assert.ErrorContains(t, err, "blueprint 1")

	// The caller cannot turn the search into a minimisation.
	got, err := production.MaxGeodes(tinyA, 8, bestfirst.WithOrder(bestfirst.Minimize))
	require.NoError(t, err)
	assert.Equal(t, 10, got)
}
