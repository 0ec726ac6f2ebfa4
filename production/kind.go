package production

import (
	"fmt"
	"strings"
)

// Kind identifies a resource and the robot that mines it.
type Kind int

const (
	// Ore is the base resource every robot is paid with.
	Ore Kind = iota
	// Clay is the first intermediate resource.
	Clay
	// Obsidian is the second intermediate resource.
	Obsidian
	// Geode is the target resource whose final stock is maximised.
	Geode
)

// NumKinds is the number of resource kinds.
const NumKinds = 4

// Target is the resource a search maximises.
const Target = Geode

// Kinds lists every kind in index order.
var Kinds = [NumKinds]Kind{Ore, Clay, Obsidian, Geode}

var kindNames = [NumKinds]string{"ore", "clay", "obsidian", "geode"}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= NumKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind maps a resource name ("ore", "clay", "obsidian", "geode"),
// case-insensitively, to its Kind.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(name, n) {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownResource, name)
}

// Amounts holds one quantity per Kind, indexed by Kind.
type Amounts [NumKinds]int

// Covers reports whether a holds at least b of every kind.
func (a Amounts) Covers(b Amounts) bool {
	for i := range a {
		if a[i] < b[i] {
			return false
		}
	}

	return true
}

// Add returns a + b.
func (a Amounts) Add(b Amounts) Amounts {
	for i := range a {
		a[i] += b[i]
	}

	return a
}

// Sub returns a - b.
func (a Amounts) Sub(b Amounts) Amounts {
	for i := range a {
		a[i] -= b[i]
	}

	return a
}
