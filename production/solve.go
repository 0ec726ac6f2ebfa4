package production

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/bestfirst"
)

// Result is the outcome of searching one blueprint.
type Result struct {
	Blueprint *Blueprint
	Best      State        // terminal state, Time == Horizon
	Path      []State      // start → Best inclusive
	Plan      []Transition // one move per tick along Path
	Expanded  int          // states settled by the engine
	Pushed    int          // states pushed onto the frontier
}

// Geodes returns the Target stock at the horizon.
func (r *Result) Geodes() int { return r.Best.Materials[Target] }

// QualityLevel returns the blueprint ID times the best Target stock.
func (r *Result) QualityLevel() int { return r.Blueprint.ID * r.Geodes() }

// Solve finds a schedule maximising the Target stock at the horizon,
// starting from Start(horizon).
//
// The search runs bestfirst.Solve under Maximize with State.Priority as the
// score, so the first terminal state popped is optimal. Extra options (a
// budget, a time limit, a context) are passed through; the order cannot be
// overridden.
func Solve(bp *Blueprint, horizon int, opts ...bestfirst.Option) (*Result, error) {
	if bp == nil {
		return nil, ErrNilBlueprint
	}
	if horizon < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadHorizon, horizon)
	}

	successors := func(s State) []State { return Successors(s, bp) }
	goal := func(s State) bool { return s.Time == horizon }
	opts = append(opts[:len(opts):len(opts)], bestfirst.WithOrder(bestfirst.Maximize))

	res, err := bestfirst.Solve(successors, Start(horizon), goal, State.Priority, opts...)
	if err != nil {
		return nil, fmt.Errorf("production: blueprint %d: %w", bp.ID, err)
	}

	return &Result{
		Blueprint: bp,
		Best:      res.Goal(),
		Path:      res.Path,
		Plan:      PlanOf(res.Path),
		Expanded:  res.Expanded,
		Pushed:    res.Pushed,
	}, nil
}

// MaxGeodes returns the largest Target stock reachable by the horizon.
func MaxGeodes(bp *Blueprint, horizon int, opts ...bestfirst.Option) (int, error) {
	res, err := Solve(bp, horizon, opts...)
	if err != nil {
		return 0, err
	}

	return res.Geodes(), nil
}

// QualityLevel returns bp.ID times MaxGeodes(bp, horizon).
func QualityLevel(bp *Blueprint, horizon int, opts ...bestfirst.Option) (int, error) {
	res, err := Solve(bp, horizon, opts...)
	if err != nil {
		return 0, err
	}

	return res.QualityLevel(), nil
}
