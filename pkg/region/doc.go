// Package region extracts connected components ("regions") of a chosen
// cell kind from a grid, via two independent, equally valid algorithms —
// BFS flood-fill and union-find over row-major indices — that agree on
// region identity and size but diverge in point ordering. It also
// exposes the pooled BFS flood-fill primitive used directly by
// reachability checks that only need a visited mask, not a Region list.
package region
