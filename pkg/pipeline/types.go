package pipeline

import "github.com/aldenfall/dungeonkernel/pkg/rng"

// ArtifactKind tags the type of value flowing between passes. The
// Runner checks these tags at wiring time rather than relying on a
// compile-time generic parameter, mirroring the spec's own contract: a
// Pass declares its input/output kinds and the Runner verifies the
// chain, not the type system.
type ArtifactKind string

// The three artifact kinds a pipeline run passes through, in order.
const (
	KindEmpty        ArtifactKind = "empty"
	KindDungeonState ArtifactKind = "dungeon-state"
	KindDungeon      ArtifactKind = "dungeon"
)

// Pass is one deterministic transformation step in a generation
// pipeline. ID is used in trace events and error messages.
// RequiredStreams declares the subset of named RNG streams this pass is
// permitted to touch; the Runner checks that every declared stream is
// present in the context before the pass runs. It does not detect a pass
// drawing from a stream it did not declare.
type Pass interface {
	ID() string
	InputType() ArtifactKind
	OutputType() ArtifactKind
	RequiredStreams() []rng.StreamName
	Run(ctx *Context, input any) (any, error)
}
