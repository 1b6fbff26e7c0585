// Package cellular implements the cave-generation strategy: a fixed chain
// of pipeline.Pass stages — initializeRandom, applyCellularRules,
// keepLargestRegion, connectRegions, placeEntranceExit, finalize — driven
// by repeated application of the standard 4-5 cellular automaton rule
// over a DungeonStateArtifact workbench.
package cellular
