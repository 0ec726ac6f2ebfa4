// Package lvsearch is a small toolbox of best-first search and the puzzles
// built on it: from a generic priority-queue engine to robot factories,
// heightmaps and lava droplets.
//
// What is in the box?
//
//	bestfirst/  — generic best-first engine: node-scored Solve (minimise or
//	              maximise an admissible bound), A* ShortestPath, and a
//	              Stepper for driving a search one expansion at a time
//	production/ — robot-factory economy: blueprints, states, transitions
//	              and the geode-maximising schedule search
//	bfs/        — generic breadth-first walk over implicit graphs, with
//	              hooks, depth limits and neighbor filters
//	heightmap/  — letter-coded elevation grids: fewest-step climbs with A*,
//	              reverse searches, and terminal rendering
//	lavadrop/   — voxel droplets: total and exterior surface area via
//	              flood fill
//	cmd/lvsearch — command-line driver for all of the above
//
// Guarantees:
//
//   - Searches are deterministic: equal priorities pop in insertion order.
//   - Every callback-driven search accepts a context, an expansion budget
//     and a time limit through functional options.
//   - Errors are sentinel values wrapped with context; test with errors.Is.
//
//	go get github.com/katalvlaran/lvsearch/bestfirst
package lvsearch
