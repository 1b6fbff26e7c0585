package dungeon

import (
	"crypto/sha256"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aldenfall/dungeonkernel/pkg/dungeonerr"
	"github.com/aldenfall/dungeonkernel/pkg/pathfind"
)

// Algorithm selects which generation strategy DungeonConfig.Algorithm
// names.
type Algorithm string

const (
	AlgorithmCellular Algorithm = "cellular"
	AlgorithmBSP      Algorithm = "bsp"
)

// DungeonConfig specifies every recognized generation parameter (spec
// §6's DungeonConfig key table). It is YAML-tagged and loadable via
// LoadConfig/LoadConfigFromBytes, following the teacher's config.go
// pattern.
type DungeonConfig struct {
	Width         int             `yaml:"width" json:"width"`
	Height        int             `yaml:"height" json:"height"`
	RoomCount     int             `yaml:"roomCount" json:"roomCount"`
	RoomSizeRange [2]int          `yaml:"roomSizeRange" json:"roomSizeRange"`
	Algorithm     Algorithm       `yaml:"algorithm" json:"algorithm"`
	Cellular      CellularConfig  `yaml:"cellular,omitempty" json:"cellular,omitempty"`
	BSP           BSPConfig       `yaml:"bsp,omitempty" json:"bsp,omitempty"`
	Pathfinding   PathfindingCfg  `yaml:"pathfinding,omitempty" json:"pathfinding,omitempty"`
}

// CellularConfig holds the cellular strategy's knobs (spec §4.8
// defaults), YAML-tagged for DungeonConfig.Cellular.
type CellularConfig struct {
	InitialFillRatio  float64 `yaml:"initialFillRatio" json:"initialFillRatio"`
	Iterations        int     `yaml:"iterations" json:"iterations"`
	BirthLimit        int     `yaml:"birthLimit" json:"birthLimit"`
	DeathLimit        int     `yaml:"deathLimit" json:"deathLimit"`
	MinRegionSize     int     `yaml:"minRegionSize" json:"minRegionSize"`
	ConnectAllRegions bool    `yaml:"connectAllRegions" json:"connectAllRegions"`
}

// BSPConfig holds the partitioning strategy's knobs beyond what it
// shares with DungeonConfig (width/height/roomCount/roomSizeRange).
type BSPConfig struct {
	MinPartitionSize int `yaml:"minPartitionSize" json:"minPartitionSize"`
	CorridorWidth    int `yaml:"corridorWidth" json:"corridorWidth"`
}

// PathfindingCfg mirrors pathfind.Config with YAML tags, since
// pathfind.Config itself carries no serialization concern.
type PathfindingCfg struct {
	Algorithm           pathfind.Algorithm `yaml:"algorithm" json:"algorithm"`
	Heuristic           pathfind.Heuristic `yaml:"heuristic" json:"heuristic"`
	AllowDiagonal       bool               `yaml:"allowDiagonal" json:"allowDiagonal"`
	MaxPathLength       int                `yaml:"maxPathLength" json:"maxPathLength"`
	PathSmoothingPasses int                `yaml:"pathSmoothingPasses" json:"pathSmoothingPasses"`
	TunnelWallCost      int                `yaml:"tunnelWallCost" json:"tunnelWallCost"`
	CorridorWidth       int                `yaml:"corridorWidth" json:"corridorWidth"`
	PreferJPS           bool               `yaml:"preferJps" json:"preferJps"`
}

func (p PathfindingCfg) toPathfindConfig() pathfind.Config {
	return pathfind.Config{
		Algorithm:           p.Algorithm,
		Heuristic:           p.Heuristic,
		AllowDiagonal:       p.AllowDiagonal,
		MaxPathLength:       p.MaxPathLength,
		PathSmoothingPasses: p.PathSmoothingPasses,
		TunnelWallCost:      p.TunnelWallCost,
		CorridorWidth:       p.CorridorWidth,
		PreferJPS:           p.PreferJPS,
	}
}

func pathfindingFromConfig(c pathfind.Config) PathfindingCfg {
	return PathfindingCfg{
		Algorithm:           c.Algorithm,
		Heuristic:           c.Heuristic,
		AllowDiagonal:       c.AllowDiagonal,
		MaxPathLength:       c.MaxPathLength,
		PathSmoothingPasses: c.PathSmoothingPasses,
		TunnelWallCost:      c.TunnelWallCost,
		CorridorWidth:       c.CorridorWidth,
		PreferJPS:           c.PreferJPS,
	}
}

// DefaultDungeonConfig returns a validated baseline config for the
// cellular strategy at the given grid size, matching
// cellular.DefaultConfig's own documented defaults.
func DefaultDungeonConfig(width, height int) DungeonConfig {
	return DungeonConfig{
		Width:         width,
		Height:        height,
		RoomCount:     6,
		RoomSizeRange: [2]int{5, 12},
		Algorithm:     AlgorithmCellular,
		Cellular: CellularConfig{
			InitialFillRatio: 0.45,
			Iterations:       4,
			BirthLimit:       4,
			DeathLimit:       4,
			MinRegionSize:    25,
		},
		BSP: BSPConfig{
			MinPartitionSize: 12,
			CorridorWidth:    1,
		},
		Pathfinding: pathfindingFromConfig(pathfind.DefaultConfig()),
	}
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*DungeonConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, dungeonerr.Wrap(dungeonerr.ConfigInvalid, "reading config file", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses and validates YAML configuration from a
// byte slice.
func LoadConfigFromBytes(data []byte) (*DungeonConfig, error) {
	var cfg DungeonConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, dungeonerr.Wrap(dungeonerr.ConfigInvalid, "parsing YAML", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every DungeonConfig constraint, returning the first
// violation found as a *dungeonerr.Error of kind CONFIG_INVALID.
func (c *DungeonConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return dungeonerr.New(dungeonerr.ConfigInvalid,
			fmt.Sprintf("width and height must be > 0, got %dx%d", c.Width, c.Height), nil)
	}
	if c.RoomCount < 0 {
		return dungeonerr.New(dungeonerr.ConfigInvalid,
			fmt.Sprintf("roomCount must be >= 0, got %d", c.RoomCount), nil)
	}
	if c.RoomSizeRange[0] <= 0 || c.RoomSizeRange[0] > c.RoomSizeRange[1] {
		return dungeonerr.New(dungeonerr.ConfigInvalid,
			fmt.Sprintf("roomSizeRange %v must have 0 < min <= max", c.RoomSizeRange), nil)
	}

	switch c.Algorithm {
	case AlgorithmCellular:
		if err := c.Cellular.validate(); err != nil {
			return err
		}
	case AlgorithmBSP:
		if err := c.BSP.validate(c.RoomSizeRange[1]); err != nil {
			return err
		}
	default:
		return dungeonerr.New(dungeonerr.ConfigInvalid,
			fmt.Sprintf("algorithm must be %q or %q, got %q", AlgorithmCellular, AlgorithmBSP, c.Algorithm), nil)
	}

	return c.Pathfinding.validate()
}

func (c CellularConfig) validate() error {
	if c.InitialFillRatio < 0 || c.InitialFillRatio > 1 {
		return dungeonerr.New(dungeonerr.ConfigInvalid,
			fmt.Sprintf("cellular.initialFillRatio must be in [0,1], got %f", c.InitialFillRatio), nil)
	}
	if c.Iterations < 0 {
		return dungeonerr.New(dungeonerr.ConfigInvalid, "cellular.iterations must be >= 0", nil)
	}
	if c.MinRegionSize < 0 {
		return dungeonerr.New(dungeonerr.ConfigInvalid, "cellular.minRegionSize must be >= 0", nil)
	}
	return nil
}

func (b BSPConfig) validate(maxRoomSize int) error {
	if b.MinPartitionSize <= 0 {
		return dungeonerr.New(dungeonerr.ConfigInvalid, "bsp.minPartitionSize must be > 0", nil)
	}
	if b.MinPartitionSize < maxRoomSize {
		return dungeonerr.New(dungeonerr.ConfigInvalid,
			fmt.Sprintf("bsp.minPartitionSize (%d) must be >= roomSizeRange max (%d) so every leaf can fit a room",
				b.MinPartitionSize, maxRoomSize), nil)
	}
	if b.CorridorWidth <= 0 {
		return dungeonerr.New(dungeonerr.ConfigInvalid, "bsp.corridorWidth must be > 0", nil)
	}
	return nil
}

func (p PathfindingCfg) validate() error {
	switch p.Algorithm {
	case "", pathfind.AStar, pathfind.Dijkstra, pathfind.JPS:
	default:
		return dungeonerr.New(dungeonerr.ConfigInvalid,
			fmt.Sprintf("pathfinding.algorithm %q not recognized", p.Algorithm), nil)
	}
	switch p.Heuristic {
	case "", pathfind.Manhattan, pathfind.Euclidean, pathfind.Chebyshev:
	default:
		return dungeonerr.New(dungeonerr.ConfigInvalid,
			fmt.Sprintf("pathfinding.heuristic %q not recognized", p.Heuristic), nil)
	}
	if p.MaxPathLength < 0 {
		return dungeonerr.New(dungeonerr.ConfigInvalid, "pathfinding.maxPathLength must be >= 0", nil)
	}
	if p.PathSmoothingPasses < 0 {
		return dungeonerr.New(dungeonerr.ConfigInvalid, "pathfinding.pathSmoothingPasses must be >= 0", nil)
	}
	if p.TunnelWallCost < 0 {
		return dungeonerr.New(dungeonerr.ConfigInvalid, "pathfinding.tunnelWallCost must be >= 0", nil)
	}
	return nil
}

// ToYAML serializes the config to YAML bytes.
func (c *DungeonConfig) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic fingerprint of the configuration,
// suitable for trace/observability correlation (e.g. tagging a trace
// sink's events with the config that produced them). It is
// deliberately NOT mixed into RNG stream seed derivation: spec §8
// scenario 4 fixes the exact layout/rooms/connections/details seeds
// derived from a primary seed alone, so config content must never
// perturb that derivation.
func (c *DungeonConfig) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.New()
		h.Write([]byte(fmt.Sprintf("%+v", c)))
		return h.Sum(nil)
	}
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}
