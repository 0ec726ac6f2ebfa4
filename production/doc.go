// Package production models a robot-factory economy and finds the build
// schedule that maximises the final stock of one target resource.
//
// A Blueprint lists, for each robot kind, what it costs in ore, clay and
// obsidian. Every tick, each robot mines one unit of its own resource, and
// the factory may build at most one robot, paying its cost up front; the new
// robot starts mining on the following tick. Starting with a single ore
// robot, the question is how many geodes can be open when the horizon is
// reached.
//
// Search:
//
//	Solve runs bestfirst.Solve under Maximize. A State's score is an upper
//	bound on the geodes it can still reach (State.Priority), so the first
//	state popped at the horizon is optimal. Two sound prunes keep the tree
//	small: no more robots of a kind than the largest recipe consumes, and
//	no non-geode robot on the last tick.
//
// Typical use:
//
//	bps, err := production.ParseBlueprints(f)
//	...
//	for _, bp := range bps {
//	    q, err := production.QualityLevel(bp, 24)
//	    ...
//	}
package production
