package pipeline

import "github.com/aldenfall/dungeonkernel/pkg/rng"

// Context is threaded through every pass in a run. Streams are
// exclusively owned by the context and mutably borrowed by at most one
// pass at a time; Meta carries ad-hoc values a pass wants to leave for
// a later pass (e.g. an intermediate region list) without widening the
// artifact shape.
type Context struct {
	Streams  *rng.Streams
	Trace    TraceSink
	Cancel   CancelToken
	Progress ProgressSink
	Meta     map[string]any
}

// NewContext builds a Context with sensible no-op defaults for any
// collaborator left nil.
func NewContext(streams *rng.Streams, trace TraceSink, cancel CancelToken, progress ProgressSink) *Context {
	if trace == nil {
		trace = NullSink{}
	}
	if cancel == nil {
		cancel = NoCancel{}
	}
	if progress == nil {
		progress = NullProgress{}
	}
	return &Context{
		Streams:  streams,
		Trace:    trace,
		Cancel:   cancel,
		Progress: progress,
		Meta:     make(map[string]any),
	}
}
