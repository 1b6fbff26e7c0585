// Package grid provides the dense terrain grid and packed-bit visited-set
// primitives that every generation strategy is built on: bounds-checked and
// unchecked cell access, rectangular fills, neighbor counting, the
// double-buffered cellular-automaton step, and a pooled BitGrid used by
// flood-fill and reachability passes to avoid repeated large zeroings.
package grid
