package hologram

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func newTestScheduler() (*Scheduler, *ManualClock) {
	clock := NewManualClock(epoch)
	return NewScheduler(clock, log.New(&bytes.Buffer{}, "", 0)), clock
}

// --- Sample ---

func TestSchedulerSampleDefault(t *testing.T) {
	s, _ := newTestScheduler()
	assertNear(t, "empty channel", s.Sample("x", PropOpacity, 0.7), 0.7)
}

func TestSchedulerSampleLinearHalfway(t *testing.T) {
	s, clock := newTestScheduler()
	s.Add("btn", Animate(PropOpacity).From(0).To(10).Duration(time.Second).Ease(Linear).Build())
	clock.Advance(500 * time.Millisecond)
	assertNear(t, "halfway", s.Sample("btn", PropOpacity, -1), 5)
}

func TestSchedulerSampleDuringDelayReturnsFrom(t *testing.T) {
	s, clock := newTestScheduler()
	s.Add("btn", Animate(PropScale).From(3).To(4).Delay(time.Second).Build())
	clock.Advance(500 * time.Millisecond)
	assertNear(t, "delayed", s.Sample("btn", PropScale, 1), 3)
	if !s.Has("btn", PropScale) {
		t.Error("delayed clip should still be live")
	}
}

func TestSchedulerSampleCompletionFiresOnce(t *testing.T) {
	s, clock := newTestScheduler()
	calls := 0
	clip := Animate(PropOpacity).Duration(100 * time.Millisecond).OnComplete(func() { calls++ }).Build()
	s.Add("btn", clip)
	clock.Advance(200 * time.Millisecond)

	assertNear(t, "end value", s.Sample("btn", PropOpacity, -1), 1)
	assertNear(t, "after removal", s.Sample("btn", PropOpacity, -1), -1)
	s.Tick()
	if calls != 1 {
		t.Errorf("OnComplete calls = %d, want 1", calls)
	}
	if !clip.Completed() || s.Len() != 0 {
		t.Errorf("completed=%t len=%d", clip.Completed(), s.Len())
	}
}

// --- channels ---

func TestSchedulerAddReplacesChannel(t *testing.T) {
	s, clock := newTestScheduler()
	first := Animate(PropScale).From(0).To(1).Duration(time.Second).Ease(Linear).Build()
	second := Animate(PropScale).From(5).To(6).Duration(time.Second).Ease(Linear).Build()
	s.Add("btn", first)
	s.Add("btn", second)

	if !first.Cancelled() {
		t.Error("replaced clip should be cancelled")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
	clock.Advance(500 * time.Millisecond)
	assertNear(t, "second clip", s.Sample("btn", PropScale, 0), 5.5)
}

func TestSchedulerChannelsIndependent(t *testing.T) {
	s, _ := newTestScheduler()
	s.Add("a", Animate(PropScale).From(2).To(2).Duration(time.Second).Build())
	s.Add("a", Animate(PropOpacity).From(0.5).To(0.5).Duration(time.Second).Build())
	s.Add("b", Animate(PropScale).From(7).To(7).Duration(time.Second).Build())
	assertNear(t, "a scale", s.Sample("a", PropScale, 0), 2)
	assertNear(t, "a opacity", s.Sample("a", PropOpacity, 0), 0.5)
	assertNear(t, "b scale", s.Sample("b", PropScale, 0), 7)
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
}

// --- Cancel ---

func TestSchedulerCancelProperty(t *testing.T) {
	s, _ := newTestScheduler()
	called := false
	s.Add("btn", Animate(PropScale).OnComplete(func() { called = true }).Build())
	s.Add("btn", Animate(PropOpacity).Build())
	s.Cancel("btn", PropScale)

	if s.Has("btn", PropScale) {
		t.Error("cancelled channel still live")
	}
	if !s.Has("btn", PropOpacity) {
		t.Error("other channel should survive")
	}
	assertNear(t, "cancelled sample", s.Sample("btn", PropScale, 9), 9)
	s.Tick()
	if called {
		t.Error("cancelled clip fired OnComplete")
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	s, _ := newTestScheduler()
	s.Add("btn", Animate(PropScale).Build())
	s.Add("btn", Animate(PropOpacity).Build())
	s.Add("other", Animate(PropOpacity).Build())
	s.Cancel("btn")
	s.Tick()
	if s.Len() != 1 {
		t.Errorf("Len after cancel all = %d, want 1", s.Len())
	}
	s.Cancel("missing") // no-op
}

// --- Tick ---

func TestSchedulerTickCompletesAndPrunes(t *testing.T) {
	s, clock := newTestScheduler()
	done := 0
	s.Add("a", Animate(PropScale).Duration(100*time.Millisecond).OnComplete(func() { done++ }).Build())
	s.Add("b", Animate(PropScale).Duration(time.Second).OnComplete(func() { done++ }).Build())
	clock.Advance(200 * time.Millisecond)
	s.Tick()
	if done != 1 {
		t.Errorf("completions = %d, want 1", done)
	}
	if s.Len() != 1 || !s.Has("b", PropScale) {
		t.Errorf("unexpected remaining clips: len=%d", s.Len())
	}
}

func TestSchedulerCallbackMayAddClip(t *testing.T) {
	s, clock := newTestScheduler()
	s.Add("btn", Animate(PropHoverScale).Duration(10*time.Millisecond).OnComplete(func() {
		s.Add("btn", HoverShrink())
	}).Build())
	clock.Advance(20 * time.Millisecond)
	s.Tick()
	if !s.Has("btn", PropHoverScale) {
		t.Error("clip added from completion callback is missing")
	}
}

func TestSchedulerCallbackPanicIsolated(t *testing.T) {
	var buf bytes.Buffer
	clock := NewManualClock(epoch)
	s := NewScheduler(clock, log.New(&buf, "", 0))
	ok := false
	s.Add("bad", Animate(PropScale).Duration(time.Millisecond).OnComplete(func() { panic("boom") }).Build())
	s.Add("good", Animate(PropScale).Duration(time.Millisecond).OnComplete(func() { ok = true }).Build())
	clock.Advance(time.Second)
	s.Tick()
	if !ok {
		t.Error("good callback did not run")
	}
	if !strings.Contains(buf.String(), "panicked") {
		t.Errorf("panic not logged: %q", buf.String())
	}
}

func TestSchedulerClear(t *testing.T) {
	s, _ := newTestScheduler()
	c := Animate(PropScale).Build()
	s.Add("btn", c)
	s.Clear()
	if s.Len() != 0 || !c.Cancelled() {
		t.Errorf("Len=%d cancelled=%t", s.Len(), c.Cancelled())
	}
}

func TestSchedulerAddNil(t *testing.T) {
	s, _ := newTestScheduler()
	s.Add("btn", nil)
	if s.Len() != 0 {
		t.Error("nil clip was stored")
	}
}
