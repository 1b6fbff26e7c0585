package cellular

import "github.com/aldenfall/dungeonkernel/pkg/pathfind"

// Config configures one cellular-strategy generation run.
type Config struct {
	Width, Height int

	InitialFillRatio  float64
	Iterations        int
	BirthLimit        int
	DeathLimit        int
	MinRegionSize     int
	ConnectAllRegions bool

	Pathfinding pathfind.Config
}

// DefaultConfig returns the cellular strategy's documented defaults:
// initialFillRatio 0.45, 4 iterations, birth/death limit 4, minRegionSize
// 25, connectAllRegions false.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:             width,
		Height:            height,
		InitialFillRatio:  0.45,
		Iterations:        4,
		BirthLimit:        4,
		DeathLimit:        4,
		MinRegionSize:     25,
		ConnectAllRegions: false,
		Pathfinding:       pathfind.DefaultConfig(),
	}
}
