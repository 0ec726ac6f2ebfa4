package production

import "fmt"

// State is one tick of the resource economy. It is a plain comparable
// value: every transition returns a fresh State and never mutates its input.
//
// Invariants on every state reachable through Successors:
//   - 0 <= Time <= Horizon
//   - every Materials entry is non-negative
type State struct {
	Time      int     // current tick
	Horizon   int     // tick at which the simulation ends
	Materials Amounts // stock of each resource
	Robots    Amounts // robots mining each resource, one unit per tick each
}

// Start returns the state at tick 0: one ore robot and nothing else.
func Start(horizon int) State {
	return State{Horizon: horizon, Robots: Amounts{Ore: 1}}
}

// Remaining returns the number of ticks left before the horizon.
func (s State) Remaining() int { return s.Horizon - s.Time }

// Priority is an upper bound on the Target stock reachable from s:
// the current stock, plus what existing robots mine until the horizon,
// plus r(r-1)/2 for a new Target robot built on every remaining tick.
// No schedule can beat it, which makes it safe to prune against.
func (s State) Priority() int {
	r := s.Remaining()

	return s.Materials[Target] + r*s.Robots[Target] + r*(r-1)/2
}

// String implements fmt.Stringer.
func (s State) String() string {
	return fmt.Sprintf("%02dmin | Bound: %d | Materials: %v | Robots: %v", s.Time, s.Priority(), s.Materials, s.Robots)
}

// Wait advances s by one tick: every robot mines one unit.
func Wait(s State) State {
	s.Time++
	s.Materials = s.Materials.Add(s.Robots)

	return s
}

// Buy advances s by one tick during which a robot of the given kind is
// built: the cost is paid up front, existing robots mine, and the new robot
// joins at the end of the tick. kind must be affordable; Buy does not check.
func Buy(s State, bp *Blueprint, kind Kind) State {
	s.Time++
	s.Materials = s.Materials.Add(s.Robots).Sub(bp.Costs[kind])
	s.Robots[kind]++

	return s
}

// Op is the tag of a Transition.
type Op uint8

const (
	// OpWait lets one tick pass without building.
	OpWait Op = iota
	// OpBuy builds one robot during the tick.
	OpBuy
)

// Transition is one legal move from a state: Wait, or Buy(Robot).
type Transition struct {
	Op    Op
	Robot Kind // meaningful only when Op == OpBuy
}

// WaitStep is the Wait transition.
func WaitStep() Transition { return Transition{Op: OpWait} }

// BuyStep is the Buy(kind) transition.
func BuyStep(kind Kind) Transition { return Transition{Op: OpBuy, Robot: kind} }

// String implements fmt.Stringer.
func (t Transition) String() string {
	if t.Op == OpBuy {
		return "buy " + t.Robot.String() + " robot"
	}

	return "wait"
}

// Apply returns the state after performing t on s.
func (s State) Apply(bp *Blueprint, t Transition) State {
	switch t.Op {
	case OpBuy:
		return Buy(s, bp, t.Robot)
	default:
		return Wait(s)
	}
}

// Transitions lists the moves worth exploring from s, buys first in Kind
// order and Wait last:
//   - Buy(k) for every affordable k, except non-Target kinds whose robot
//     count already meets bp.MaxNeeded(k), and except non-Target kinds on
//     the last tick before the horizon, when they could no longer pay off.
//   - Wait, always.
//
// A state at or past its horizon has no transitions.
func Transitions(s State, bp *Blueprint) []Transition {
	if s.Time >= s.Horizon {
		return nil
	}
	lastTick := s.Time+1 >= s.Horizon
	out := make([]Transition, 0, NumKinds+1)
	for _, k := range bp.Affordable(s.Materials) {
		if k != Target && (lastTick || s.Robots[k] >= bp.MaxNeeded(k)) {
			continue
		}
		out = append(out, BuyStep(k))
	}

	return append(out, WaitStep())
}

// Successors returns the states one tick after s, in Transitions order.
func Successors(s State, bp *Blueprint) []State {
	moves := Transitions(s, bp)
	out := make([]State, len(moves))
	for i, t := range moves {
		out[i] = s.Apply(bp, t)
	}

	return out
}

// PlanOf recovers the transitions taken along a path of consecutive states.
func PlanOf(path []State) []Transition {
	if len(path) < 2 {
		return nil
	}
	plan := make([]Transition, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		t := WaitStep()
		for _, k := range Kinds {
			if path[i].Robots[k] > path[i-1].Robots[k] {
				t = BuyStep(k)
				break
			}
		}
		plan = append(plan, t)
	}

	return plan
}
