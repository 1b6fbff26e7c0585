package pipeline

import (
	"fmt"
	"time"

	"github.com/aldenfall/dungeonkernel/pkg/dungeonerr"
)

// Runner holds a validated, ordered chain of passes and executes them
// against a Context. The chain's type contract is checked once, at
// construction, rather than on every Run.
type Runner struct {
	passes  []Pass
	timings map[string]time.Duration
}

// NewRunner validates passes and returns a Runner ready to execute them
// in order. It verifies that the first pass consumes KindEmpty and that
// every adjacent pair's output/input kinds agree; a violation is
// reported as PIPELINE_TYPE_MISMATCH.
func NewRunner(passes ...Pass) (*Runner, error) {
	if len(passes) == 0 {
		return nil, dungeonerr.New(dungeonerr.PipelineTypeMismatch, "pipeline must have at least one pass", nil)
	}
	if passes[0].InputType() != KindEmpty {
		return nil, dungeonerr.New(dungeonerr.PipelineTypeMismatch,
			fmt.Sprintf("first pass %q must accept %q, got %q", passes[0].ID(), KindEmpty, passes[0].InputType()), nil)
	}
	for i := 0; i < len(passes)-1; i++ {
		out := passes[i].OutputType()
		in := passes[i+1].InputType()
		if out != in {
			return nil, dungeonerr.New(dungeonerr.PipelineTypeMismatch,
				fmt.Sprintf("pass %q outputs %q but pass %q expects %q", passes[i].ID(), out, passes[i+1].ID(), in), nil)
		}
	}
	return &Runner{passes: passes, timings: make(map[string]time.Duration)}, nil
}

// Timings returns per-pass wall-clock duration from the most recent Run.
func (r *Runner) Timings() map[string]time.Duration {
	return r.timings
}

// Run threads input through every pass in order, checking the
// cancellation token and required-stream declarations before each pass,
// and reporting coarse progress after each pass completes. A pass error
// is surfaced unchanged (wrapped with GENERATION_FAILED context) and
// stops the run; the Runner never retries.
func (r *Runner) Run(ctx *Context, input any) (any, error) {
	total := len(r.passes)
	current := input

	for i, p := range r.passes {
		if ctx.Cancel.IsCancelled() {
			return nil, dungeonerr.New(dungeonerr.GenerationCancelled,
				fmt.Sprintf("cancelled before pass %q", p.ID()), nil)
		}

		if err := r.checkStreams(ctx, p); err != nil {
			return nil, err
		}

		start := time.Now()
		out, err := p.Run(ctx, current)
		r.timings[p.ID()] = time.Since(start)
		if err != nil {
			return nil, dungeonerr.Wrap(dungeonerr.GenerationFailed, fmt.Sprintf("pass %q failed", p.ID()), err)
		}

		current = out
		ctx.Progress.Report((i + 1) * 100 / total)
	}

	return current, nil
}

func (r *Runner) checkStreams(ctx *Context, p Pass) error {
	for _, name := range p.RequiredStreams() {
		if !ctx.Streams.Has(name) {
			return dungeonerr.New(dungeonerr.PipelineStreamMissing,
				fmt.Sprintf("pass %q requires stream %q which is not present", p.ID(), name), name)
		}
	}
	return nil
}
