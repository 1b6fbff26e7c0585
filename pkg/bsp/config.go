package bsp

import "github.com/aldenfall/dungeonkernel/pkg/pathfind"

// Config holds every knob the partitioning strategy's passes read.
// RoomCount is a target, not a guarantee: partitioning stops early once
// no remaining leaf is large enough to split further, which can leave
// fewer leaves (and therefore fewer rooms) than requested.
type Config struct {
	Width, Height   int
	RoomCount       int
	MinRoomSize     int
	MaxRoomSize     int
	MinPartitionSize int
	CorridorWidth   int
	Pathfinding     pathfind.Config
}

// DefaultConfig returns the documented baseline for the given grid size
// and room target: room edges in [6,12], a minimum partition size large
// enough to always fit a MinRoomSize room with a 1-cell margin, and
// single-width corridors routed by A* with light wall-tunneling allowed
// so corridors can cross partition seams.
func DefaultConfig(width, height, roomCount int) Config {
	pfCfg := pathfind.DefaultConfig()
	pfCfg.TunnelWallCost = 2
	pfCfg.MaxPathLength = 1 << 30

	return Config{
		Width:            width,
		Height:           height,
		RoomCount:        roomCount,
		MinRoomSize:      6,
		MaxRoomSize:      12,
		MinPartitionSize: 8,
		CorridorWidth:    1,
		Pathfinding:      pfCfg,
	}
}
