package pipeline

import (
	"errors"
	"testing"

	"github.com/aldenfall/dungeonkernel/pkg/rng"
)

type fakePass struct {
	id       string
	in, out  ArtifactKind
	required []rng.StreamName
	run      func(ctx *Context, input any) (any, error)
}

func (f *fakePass) ID() string                         { return f.id }
func (f *fakePass) InputType() ArtifactKind            { return f.in }
func (f *fakePass) OutputType() ArtifactKind           { return f.out }
func (f *fakePass) RequiredStreams() []rng.StreamName  { return f.required }
func (f *fakePass) Run(ctx *Context, input any) (any, error) {
	if f.run != nil {
		return f.run(ctx, input)
	}
	return input, nil
}

func newTestStreams() *rng.Streams {
	return rng.NewStreams(1, 2, 3, 4)
}

func TestNewRunnerRejectsBadFirstInput(t *testing.T) {
	p := &fakePass{id: "p1", in: KindDungeonState, out: KindDungeon}
	if _, err := NewRunner(p); err == nil {
		t.Fatal("expected error when first pass does not accept KindEmpty")
	}
}

func TestNewRunnerRejectsMismatchedChain(t *testing.T) {
	p1 := &fakePass{id: "p1", in: KindEmpty, out: KindDungeonState}
	p2 := &fakePass{id: "p2", in: KindDungeon, out: KindDungeon}
	if _, err := NewRunner(p1, p2); err == nil {
		t.Fatal("expected error when adjacent pass kinds mismatch")
	}
}

func TestNewRunnerRejectsEmptyChain(t *testing.T) {
	if _, err := NewRunner(); err == nil {
		t.Fatal("expected error for empty pass chain")
	}
}

func TestRunnerExecutesInOrder(t *testing.T) {
	var order []string
	p1 := &fakePass{id: "p1", in: KindEmpty, out: KindDungeonState, run: func(ctx *Context, input any) (any, error) {
		order = append(order, "p1")
		return "stateful", nil
	}}
	p2 := &fakePass{id: "p2", in: KindDungeonState, out: KindDungeon, run: func(ctx *Context, input any) (any, error) {
		order = append(order, "p2")
		return "final", nil
	}}
	runner, err := NewRunner(p1, p2)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	ctx := NewContext(newTestStreams(), nil, nil, nil)
	out, err := runner.Run(ctx, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != "final" {
		t.Fatalf("Run() = %v, want final", out)
	}
	if len(order) != 2 || order[0] != "p1" || order[1] != "p2" {
		t.Fatalf("passes ran out of order: %v", order)
	}
}

func TestRunnerStopsOnPassError(t *testing.T) {
	boom := errors.New("boom")
	p1 := &fakePass{id: "p1", in: KindEmpty, out: KindDungeonState, run: func(ctx *Context, input any) (any, error) {
		return nil, boom
	}}
	runner, err := NewRunner(p1)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	_, err = runner.Run(NewContext(newTestStreams(), nil, nil, nil), nil)
	if err == nil {
		t.Fatal("expected Run to surface the pass error")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error to unwrap to the original cause, got %v", err)
	}
}

func TestRunnerRejectsMissingStream(t *testing.T) {
	p1 := &fakePass{id: "p1", in: KindEmpty, out: KindDungeon, required: []rng.StreamName{"bogus-stream"}}
	runner, err := NewRunner(p1)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	if _, err := runner.Run(NewContext(newTestStreams(), nil, nil, nil), nil); err == nil {
		t.Fatal("expected Run to reject a pass requiring an unrecognized stream")
	}
}

type cancelAfterFirst struct{ calls int }

func (c *cancelAfterFirst) IsCancelled() bool {
	c.calls++
	return c.calls > 1
}

func TestRunnerHonorsCancellation(t *testing.T) {
	p1 := &fakePass{id: "p1", in: KindEmpty, out: KindDungeonState}
	p2 := &fakePass{id: "p2", in: KindDungeonState, out: KindDungeon}
	runner, err := NewRunner(p1, p2)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	cancel := &cancelAfterFirst{}
	ctx := NewContext(newTestStreams(), nil, cancel, nil)
	if _, err := runner.Run(ctx, nil); err == nil {
		t.Fatal("expected cancellation to surface an error")
	}
}

// TestStreamDiscipline verifies that a pass not declaring a stream in
// RequiredStreams leaves that stream's draw count untouched, per the
// pipeline stream discipline property.
func TestStreamDiscipline(t *testing.T) {
	p1 := &fakePass{
		id: "p1", in: KindEmpty, out: KindDungeon,
		required: []rng.StreamName{rng.StreamLayout},
		run: func(ctx *Context, input any) (any, error) {
			ctx.Streams.Get(rng.StreamLayout).Float64()
			return input, nil
		},
	}
	runner, err := NewRunner(p1)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	streams := newTestStreams()
	before := streams.Get(rng.StreamRooms).DrawCount()

	ctx := NewContext(streams, nil, nil, nil)
	if _, err := runner.Run(ctx, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	after := streams.Get(rng.StreamRooms).DrawCount()
	if before != after {
		t.Fatalf("pass did not declare stream %q but its draw count changed: %d -> %d", rng.StreamRooms, before, after)
	}
}

func TestRunnerReportsProgress(t *testing.T) {
	var reports []int
	progress := progressFunc(func(p int) { reports = append(reports, p) })

	p1 := &fakePass{id: "p1", in: KindEmpty, out: KindDungeonState}
	p2 := &fakePass{id: "p2", in: KindDungeonState, out: KindDungeon}
	runner, err := NewRunner(p1, p2)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	ctx := NewContext(newTestStreams(), nil, nil, progress)
	if _, err := runner.Run(ctx, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(reports) != 2 || reports[0] != 50 || reports[1] != 100 {
		t.Fatalf("progress reports = %v, want [50 100]", reports)
	}
}

type progressFunc func(int)

func (f progressFunc) Report(percent int) { f(percent) }
