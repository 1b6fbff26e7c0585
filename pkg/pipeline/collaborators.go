package pipeline

// TraceEvent records one decision or warning emitted by a pass.
type TraceEvent struct {
	Pass       string
	Topic      string
	Considered []string
	Chosen     string
	Rationale  string
	Warning    bool
	Message    string
}

// TraceSink is a collaborator interface consumed by passes to explain
// their choices; the core defines the interface but never requires a
// particular logging framework.
type TraceSink interface {
	Decision(pass, topic string, considered []string, chosen, rationale string)
	Warning(pass, message string)
}

// NullSink discards every event; the default when no tracing is wanted.
type NullSink struct{}

// Decision implements TraceSink by discarding the event.
func (NullSink) Decision(pass, topic string, considered []string, chosen, rationale string) {}

// Warning implements TraceSink by discarding the event.
func (NullSink) Warning(pass, message string) {}

// SliceSink collects every event in memory, in emission order. Used by
// tests that assert on trace content and by callers that want to render
// a post-hoc generation report.
type SliceSink struct {
	Events []TraceEvent
}

// NewSliceSink creates an empty SliceSink.
func NewSliceSink() *SliceSink {
	return &SliceSink{}
}

// Decision appends a decision event.
func (s *SliceSink) Decision(pass, topic string, considered []string, chosen, rationale string) {
	s.Events = append(s.Events, TraceEvent{
		Pass: pass, Topic: topic, Considered: considered, Chosen: chosen, Rationale: rationale,
	})
}

// Warning appends a warning event.
func (s *SliceSink) Warning(pass, message string) {
	s.Events = append(s.Events, TraceEvent{Pass: pass, Warning: true, Message: message})
}

// CancelToken is polled between passes (and between automaton
// iterations) to support cooperative cancellation.
type CancelToken interface {
	IsCancelled() bool
}

// NoCancel never reports cancellation.
type NoCancel struct{}

// IsCancelled always returns false.
func (NoCancel) IsCancelled() bool { return false }

// ProgressSink receives coarse percent-complete reports at pass
// boundaries.
type ProgressSink interface {
	Report(percent int)
}

// NullProgress discards every report.
type NullProgress struct{}

// Report implements ProgressSink by discarding the value.
func (NullProgress) Report(percent int) {}
