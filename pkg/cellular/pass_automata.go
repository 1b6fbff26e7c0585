package cellular

import (
	"github.com/aldenfall/dungeonkernel/pkg/artifact"
	"github.com/aldenfall/dungeonkernel/pkg/grid"
	"github.com/aldenfall/dungeonkernel/pkg/pipeline"
	"github.com/aldenfall/dungeonkernel/pkg/rng"
)

// applyCellularRulesPass runs the 4-5 cellular automaton step
// cfg.Iterations times over two ping-pong Grid buffers, terminating early
// once an iteration (after the first) produces output identical to its
// input. Uses no RNG stream.
type applyCellularRulesPass struct {
	cfg Config
}

func (p applyCellularRulesPass) ID() string                       { return "applyCellularRules" }
func (p applyCellularRulesPass) InputType() pipeline.ArtifactKind  { return pipeline.KindDungeonState }
func (p applyCellularRulesPass) OutputType() pipeline.ArtifactKind { return pipeline.KindDungeonState }
func (p applyCellularRulesPass) RequiredStreams() []rng.StreamName { return nil }

func (p applyCellularRulesPass) Run(ctx *pipeline.Context, input any) (any, error) {
	state := input.(*artifact.DungeonState)
	current := state.Grid
	next := grid.New(p.cfg.Width, p.cfg.Height, grid.Floor)

	for i := 0; i < p.cfg.Iterations; i++ {
		if ctx.Cancel.IsCancelled() {
			return nil, cancelledDuringAutomaton()
		}
		current.ApplyCellularAutomataInto(p.cfg.DeathLimit, p.cfg.BirthLimit, next)
		if i > 0 && current.Equals(next) {
			ctx.Trace.Decision("applyCellularRules", "earlyStop", nil, "stabilized",
				"iteration output matched previous iteration's grid")
			current = next
			break
		}
		current, next = next, current
	}

	state.Grid = current
	return state, nil
}
