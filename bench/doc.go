// Package bench measures the four search algorithms over a series of
// generated mazes and summarizes the results.
//
// For run i in [0, Runs) the runner carves a maze with seed Seed+i, then
// runs every requested algorithm on that same maze. Per algorithm it keeps
// three samples per run (nodes explored, path length, elapsed
// milliseconds) and reduces each series to a Summary with
// github.com/montanaflynn/stats.
//
// The context is checked between runs; a cancelled run returns the
// context error and no report.
package bench
