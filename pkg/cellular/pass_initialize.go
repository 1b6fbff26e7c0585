package cellular

import (
	"github.com/aldenfall/dungeonkernel/pkg/artifact"
	"github.com/aldenfall/dungeonkernel/pkg/grid"
	"github.com/aldenfall/dungeonkernel/pkg/pipeline"
	"github.com/aldenfall/dungeonkernel/pkg/rng"
)

// initializeRandomPass draws the wall-probability seed for the initial
// noise grid: border cells are always Wall; interior cells are Wall with
// probability cfg.InitialFillRatio, else Floor. Uses only the layout
// stream.
type initializeRandomPass struct {
	cfg Config
}

func (p initializeRandomPass) ID() string                        { return "initializeRandom" }
func (p initializeRandomPass) InputType() pipeline.ArtifactKind   { return pipeline.KindEmpty }
func (p initializeRandomPass) OutputType() pipeline.ArtifactKind  { return pipeline.KindDungeonState }
func (p initializeRandomPass) RequiredStreams() []rng.StreamName {
	return []rng.StreamName{rng.StreamLayout}
}

func (p initializeRandomPass) Run(ctx *pipeline.Context, _ any) (any, error) {
	layout := ctx.Streams.Get(rng.StreamLayout)
	g := grid.New(p.cfg.Width, p.cfg.Height, grid.Floor)

	for y := 0; y < p.cfg.Height; y++ {
		for x := 0; x < p.cfg.Width; x++ {
			if x == 0 || y == 0 || x == p.cfg.Width-1 || y == p.cfg.Height-1 {
				g.SetUnchecked(x, y, grid.Wall)
				continue
			}
			if layout.Next() < p.cfg.InitialFillRatio {
				g.SetUnchecked(x, y, grid.Wall)
			}
		}
	}

	ctx.Trace.Decision("initializeRandom", "fillRatio", nil,
		"applied", "border forced to wall, interior drawn from layout stream")

	return &artifact.DungeonState{
		Width:  p.cfg.Width,
		Height: p.cfg.Height,
		Grid:   g,
	}, nil
}
