// Package gridlab is a playground for path-finding on 2-D grids: draw walls
// and terrain, carve mazes, run BFS, DFS, Dijkstra or A* and watch what
// each one explores.
//
// What is in the box?
//
//	grid/            the board: walls, terrain (1/3/5), start/end, search marks,
//	                 text codec and render bytes
//	search/          BFS, DFS, Dijkstra, A*, path reconstruction, Stats
//	maze/            Recursive Backtracker and Prim's generators, seeded sources
//	lab/             a session owning one board: tools, timed runs, comparisons
//	render/          boards and comparisons as image.Image / PNG
//	bench/           many seeded mazes, all algorithms, summary statistics
//	internal/config/ YAML + .env + GRIDLAB_* settings
//	cmd/gridlab/     the command-line front end
//
// Quick ASCII example:
//
//	S..#....
//	.#.#.##.
//	.#...#.E
//
// '#' is a wall, 'S' and 'E' the endpoints; ':' and '~' paint mud and water.
// After a run, '+' marks explored cells and '*' the route found.
//
//	go install github.com/katalvlaran/gridlab/cmd/gridlab@latest
package gridlab
