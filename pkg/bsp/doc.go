// Package bsp implements the space-partition ("room-and-corridor")
// dungeon generation strategy: a recursive binary partition of the
// grid into leaf regions, one rectangular room carved per leaf, the
// rooms wired together by a corridor spanning tree, and an
// entrance/exit placed by Manhattan distance. It mirrors pkg/cellular's
// pass contract and artifact shape; the two strategies are
// interchangeable from a caller's point of view.
package bsp
