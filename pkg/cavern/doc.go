// Package cavern classifies and relates the floor regions a flood-fill
// or union-find pass discovers: fill-ratio-based suitability filtering,
// and the center-to-center Manhattan distance bookkeeping the cellular
// strategy's connectRegions pass uses to build its spanning tree.
package cavern
