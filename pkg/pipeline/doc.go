// Package pipeline implements the typed pass framework every generation
// strategy is built from: an ArtifactKind-tagged Pass interface, a
// Context carrying the RNG streams and collaborator sinks, and a Runner
// that validates the pass chain's type contract and required-stream
// declarations before threading a mutable artifact through the passes
// in order.
package pipeline
