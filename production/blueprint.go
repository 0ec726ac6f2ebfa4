package production

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for blueprint handling and searches.
var (
	// ErrMalformedBlueprint indicates a blueprint record that does not follow
	// "Blueprint <id>: Each <kind> robot costs <n> <resource> [and ...]." form.
	ErrMalformedBlueprint = errors.New("production: malformed blueprint")

	// ErrUnknownResource indicates a resource name outside ore, clay,
	// obsidian and geode.
	ErrUnknownResource = errors.New("production: unknown resource")

	// ErrDuplicateRobot indicates a blueprint listing the same robot twice.
	ErrDuplicateRobot = errors.New("production: robot listed twice")

	// ErrNilBlueprint indicates a nil *Blueprint passed to a search.
	ErrNilBlueprint = errors.New("production: blueprint is nil")

	// ErrBadHorizon indicates a negative time horizon.
	ErrBadHorizon = errors.New("production: horizon must be non-negative")
)

// Blueprint is the cost table of one puzzle instance: Costs[robot][material]
// is how much of material one robot of that kind consumes. Robots not listed
// in the blueprint cannot be built. A Blueprint is read-only once built and
// is shared by pointer across every state of a search.
type Blueprint struct {
	ID        int
	Costs     [NumKinds]Amounts
	Buildable [NumKinds]bool
}

// NewBlueprint builds a blueprint from the robots it lists.
func NewBlueprint(id int, costs map[Kind]Amounts) *Blueprint {
	bp := &Blueprint{ID: id}
	for k, c := range costs {
		bp.Costs[k] = c
		bp.Buildable[k] = true
	}

	return bp
}

// Cost returns how much of material one robot of kind robot costs.
func (bp *Blueprint) Cost(robot, material Kind) int {
	return bp.Costs[robot][material]
}

// Affordable returns, in Kind order, every buildable robot whose full cost
// is covered by materials.
func (bp *Blueprint) Affordable(materials Amounts) []Kind {
	out := make([]Kind, 0, NumKinds)
	for _, k := range Kinds {
		if bp.Buildable[k] && materials.Covers(bp.Costs[k]) {
			out = append(out, k)
		}
	}

	return out
}

// MaxNeeded returns the highest amount of material any single recipe
// consumes. Since at most one robot is built per tick, more than that many
// robots mining material can never be put to use.
func (bp *Blueprint) MaxNeeded(material Kind) int {
	m := 0
	for _, k := range Kinds {
		if bp.Buildable[k] && bp.Costs[k][material] > m {
			m = bp.Costs[k][material]
		}
	}

	return m
}

// String renders the blueprint in its input form, one robot per sentence.
func (bp *Blueprint) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Blueprint %d:", bp.ID)
	for _, k := range Kinds {
		if !bp.Buildable[k] {
			continue
		}
		fmt.Fprintf(&sb, " Each %s robot costs", k)
		first := true
		for _, m := range Kinds {
			if n := bp.Costs[k][m]; n > 0 {
				if !first {
					sb.WriteString(" and")
				}
				fmt.Fprintf(&sb, " %d %s", n, m)
				first = false
			}
		}
		if first {
			sb.WriteString(" 0 ore")
		}
		sb.WriteByte('.')
	}

	return sb.String()
}
