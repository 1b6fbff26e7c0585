// Package pathfind implements the shared shortest-path primitives used by
// every generation strategy: a configurable A*/Dijkstra/JPS pathfinder over
// a grid.Grid, a multi-source Dijkstra distance field, and the minimum
// spanning tree plus redundant-edge algorithm used to wire rooms together.
//
// All three algorithms share one tie-break contract so that results are
// byte-identical across runs: nodes are ordered by the total order
// (f, h, y, x), f = g + h.
package pathfind
