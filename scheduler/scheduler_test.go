package scheduler

import (
	"errors"
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

type vec struct{ v []float64 }

func (h *vec) get() []float64 {
	out := make([]float64, len(h.v))
	copy(out, h.v)
	return out
}

func (h *vec) set(v []float64) { h.v = v }

func TestScheduleRejectsInvalidDuration(t *testing.T) {
	s := New(0)
	h := &vec{v: []float64{0}}
	tests := []struct {
		name     string
		kind     Kind
		duration float64
		payload  Payload
	}{
		{"negative delay", DelayThenFire, -0.1, Payload{}},
		{"open delay", DelayThenFire, Open, Payload{}},
		{"negative lerp", LerpToTarget, -1, Payload{Get: h.get, Set: h.set, Target: []float64{1}}},
		{"negative toggle", PeriodicToggle, -2, Payload{Toggle: func(bool) {}, Period: 0.1}},
		{"nan", DelayThenFire, math.NaN(), Payload{}},
		{"negative converge other than open", RepeatUntilConverged, -3, Payload{Get: h.get, Set: h.set, Target: []float64{1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := s.Schedule(tt.kind, tt.duration, tt.payload, nil)
			if !errors.Is(err, ErrInvalidDuration) {
				t.Errorf("expected ErrInvalidDuration, got %v", err)
			}
			if id != 0 {
				t.Errorf("expected zero id, got %d", id)
			}
		})
	}
	if s.Len() != 0 {
		t.Errorf("expected no active actions, got %d", s.Len())
	}
}

func TestScheduleRejectsInvalidPayload(t *testing.T) {
	s := New(0)
	h := &vec{v: []float64{0, 0}}
	tests := []struct {
		name    string
		kind    Kind
		payload Payload
	}{
		{"lerp without accessors", LerpToTarget, Payload{Target: []float64{1, 1}}},
		{"lerp without target", LerpToTarget, Payload{Get: h.get, Set: h.set}},
		{"converge with mismatched thresholds", RepeatUntilConverged, Payload{Get: h.get, Set: h.set, Target: []float64{1, 1}, Thresholds: []float64{1}}},
		{"toggle without period", PeriodicToggle, Payload{Toggle: func(bool) {}}},
		{"tween without start", Tween, Payload{Set: h.set, Target: []float64{1, 1}}},
		{"unknown kind", Kind(42), Payload{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Schedule(tt.kind, 1, tt.payload, nil); !errors.Is(err, ErrInvalidPayload) {
				t.Errorf("expected ErrInvalidPayload, got %v", err)
			}
		})
	}
}

func TestDelayFiresOnceAfterDuration(t *testing.T) {
	s := New(0)
	fired := 0
	id, err := s.Delay(0.5, func() { fired++ })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 4; i++ {
		s.Tick(0.125)
	}
	if fired != 1 {
		t.Fatalf("expected one completion at 0.5s, got %d", fired)
	}
	if s.Active(id) {
		t.Error("expected action to be inactive after firing")
	}
	s.Tick(1)
	if fired != 1 {
		t.Errorf("expected no second completion, got %d", fired)
	}
}

func TestDelayFiresOnTheExpectedTickAt60Hz(t *testing.T) {
	s := New(0)
	tick, firedAt := 0, 0
	_, _ = s.Delay(0.5, func() { firedAt = tick })
	for tick = 1; tick <= 31 && firedAt == 0; tick++ {
		s.Tick(1.0 / 60)
	}
	if firedAt != 30 {
		t.Errorf("expected a 0.5s delay to fire on tick 30 at 60Hz, got tick %d", firedAt)
	}
}

func TestPeriodicToggleAt60Hz(t *testing.T) {
	s := New(0)
	flips := 0
	done := 0
	_, _ = s.Schedule(PeriodicToggle, 1, Payload{
		Toggle: func(bool) { flips++ }, Period: 0.1,
	}, func() { done++ })
	for i := 0; i < 60; i++ {
		s.Tick(1.0 / 60)
	}
	// ten flips inside the second plus the resting toggle
	if flips != 11 || done != 1 {
		t.Errorf("expected 11 toggles and one completion after 60 ticks, got %d and %d", flips, done)
	}
}

func TestLerpConvergesWithoutOvershoot(t *testing.T) {
	for _, dt := range []float64{0, 0.001, 1.0 / 60, 0.1, 0.5, 2} {
		s := New(0)
		h := &vec{v: []float64{0}}
		completions := 0
		_, err := s.Schedule(LerpToTarget, 100, Payload{
			Get: h.get, Set: h.set, Target: []float64{10}, Rate: 5, Threshold: 0.01,
		}, func() { completions++ })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		prev := h.v[0]
		for i := 0; i < 2000 && completions == 0; i++ {
			s.Tick(dt)
			if h.v[0] < prev || h.v[0] > 10 {
				t.Fatalf("dt=%v: value moved from %v to %v", dt, prev, h.v[0])
			}
			prev = h.v[0]
			if completions == 0 && 10-h.v[0] <= 0.01 {
				t.Fatalf("dt=%v: within threshold but not completed", dt)
			}
		}
		if dt > 0 && completions != 1 {
			t.Errorf("dt=%v: expected exactly one completion, got %d", dt, completions)
		}
		s.Tick(dt)
		if completions > 1 {
			t.Errorf("dt=%v: completed %d times", dt, completions)
		}
	}
}

func TestLerpBoundedBySnapsToTarget(t *testing.T) {
	s := New(0)
	h := &vec{v: []float64{0, 0}}
	done := false
	_, _ = s.Schedule(LerpToTarget, 0.5, Payload{
		Get: h.get, Set: h.set, Target: []float64{4, -4}, Rate: 1, Snap: true,
	}, func() { done = true })
	for i := 0; i < 5; i++ {
		s.Tick(0.125)
	}
	if !done {
		t.Fatal("expected completion once the duration elapsed")
	}
	if h.v[0] != 4 || h.v[1] != -4 {
		t.Errorf("expected snapped value (4, -4), got %v", h.v)
	}
}

func TestLerpFollowReadsTargetEveryTick(t *testing.T) {
	s := New(0)
	h := &vec{v: []float64{0}}
	target := 10.0
	_, _ = s.Schedule(LerpToTarget, 10, Payload{
		Get: h.get, Set: h.set, Follow: func() []float64 { return []float64{target} }, Rate: 5,
	}, nil)
	s.Tick(0.1)
	if math.Abs(h.v[0]-5) > 1e-9 {
		t.Fatalf("expected 5, got %v", h.v[0])
	}
	target = -3
	s.Tick(0.1)
	if math.Abs(h.v[0]-1) > 1e-9 {
		t.Errorf("expected halfway toward the new target, got %v", h.v[0])
	}
}

func TestRepeatUntilConvergedChecksBeforeStepping(t *testing.T) {
	s := New(0)
	h := &vec{v: []float64{0.5, 0}}
	done := 0
	_, _ = s.Schedule(RepeatUntilConverged, Open, Payload{
		Get: h.get, Set: h.set, Target: []float64{0, 0}, Rate: 5, Threshold: 1,
	}, func() { done++ })
	s.Tick(0.1)
	if done != 1 {
		t.Fatalf("expected immediate completion, got %d", done)
	}
	if h.v[0] != 0.5 {
		t.Errorf("expected value untouched, got %v", h.v[0])
	}
}

func TestRepeatUntilConvergedPerComponentThresholds(t *testing.T) {
	s := New(0)
	h := &vec{v: []float64{100, 2}}
	done := false
	_, _ = s.Schedule(RepeatUntilConverged, Open, Payload{
		Get: h.get, Set: h.set, Target: []float64{20, 1}, Thresholds: []float64{10, 0.2}, Rate: 5, Snap: true,
	}, func() { done = true })
	ticks := 0
	for !done && ticks < 1000 {
		s.Tick(1.0 / 60)
		ticks++
	}
	if !done {
		t.Fatal("expected convergence")
	}
	if h.v[0] != 20 || h.v[1] != 1 {
		t.Errorf("expected snap to baseline (20, 1), got %v", h.v)
	}
}

func TestRepeatUntilConvergedCap(t *testing.T) {
	s := New(1)
	h := &vec{v: []float64{0}}
	done := 0
	id, _ := s.Schedule(RepeatUntilConverged, Open, Payload{
		Get: h.get, Set: h.set, Target: []float64{10}, Rate: 0, Threshold: 1,
	}, func() { done++ })
	for i := 0; i < 7; i++ {
		s.Tick(0.125)
	}
	if done != 0 {
		t.Fatal("expected no completion before the cap")
	}
	s.Tick(0.125)
	if done != 1 {
		t.Fatalf("expected capped completion, got %d", done)
	}
	if s.Active(id) {
		t.Error("expected capped action to be inactive")
	}

	h.v = []float64{0}
	_, _ = s.Schedule(RepeatUntilConverged, Open, Payload{
		Get: h.get, Set: h.set, Target: []float64{10}, Threshold: 1, MaxDuration: 0.25,
	}, func() { done++ })
	s.Tick(0.125)
	s.Tick(0.125)
	if done != 2 {
		t.Errorf("expected payload MaxDuration to cap first, got %d completions", done)
	}
}

func TestPeriodicToggle(t *testing.T) {
	s := New(0)
	var got []bool
	done := false
	_, _ = s.Schedule(PeriodicToggle, 1, Payload{
		Toggle: func(v bool) { got = append(got, v) }, Period: 0.25, Resting: true,
	}, func() { done = true })
	for i := 0; i < 8; i++ {
		s.Tick(0.125)
	}
	want := []bool{false, true, false, true, true}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("toggle %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if !done {
		t.Error("expected completion after the duration")
	}
}

func TestTweenEasesToTarget(t *testing.T) {
	s := New(0)
	h := &vec{v: []float64{0}}
	done := false
	_, _ = s.Schedule(Tween, 1, Payload{
		Set: h.set, From: []float64{0}, Target: []float64{10}, Ease: ease.Linear,
	}, func() { done = true })
	want := []float64{2.5, 5, 7.5, 10}
	for i, w := range want {
		s.Tick(0.25)
		if math.Abs(h.v[0]-w) > 1e-4 {
			t.Errorf("tick %d: expected %v, got %v", i, w, h.v[0])
		}
	}
	if !done {
		t.Error("expected tween to complete")
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	s := New(0)
	fired := false
	id, _ := s.Delay(0.1, func() { fired = true })
	s.Cancel(id)
	s.Cancel(id)
	s.Cancel(ID(999))
	s.Tick(1)
	if fired {
		t.Error("expected cancelled action not to fire")
	}
	if s.Len() != 0 {
		t.Errorf("expected empty scheduler, got %d", s.Len())
	}
}

func TestCancelKeepsAppliedEffects(t *testing.T) {
	s := New(0)
	h := &vec{v: []float64{0}}
	id, _ := s.Schedule(LerpToTarget, 10, Payload{Get: h.get, Set: h.set, Target: []float64{10}, Rate: 1}, nil)
	s.Tick(0.5)
	moved := h.v[0]
	s.Cancel(id)
	s.Tick(0.5)
	if moved == 0 || h.v[0] != moved {
		t.Errorf("expected value to stay at %v, got %v", moved, h.v[0])
	}
}

func TestTickAppliesSameDeltaToAllActions(t *testing.T) {
	s := New(0)
	a := &vec{v: []float64{0}}
	b := &vec{v: []float64{100}}
	_, _ = s.Schedule(LerpToTarget, 10, Payload{Get: a.get, Set: a.set, Target: []float64{10}, Rate: 2}, nil)
	_, _ = s.Schedule(LerpToTarget, 10, Payload{Get: b.get, Set: b.set, Target: []float64{110}, Rate: 2}, nil)
	s.Tick(0.1)
	if math.Abs(a.v[0]-2) > 1e-9 || math.Abs(b.v[0]-102) > 1e-9 {
		t.Errorf("expected (2, 102), got (%v, %v)", a.v[0], b.v[0])
	}
}

func TestActionsScheduledDuringTickStartNextTick(t *testing.T) {
	s := New(0)
	secondFired := false
	_, _ = s.Delay(0, func() {
		_, _ = s.Delay(0, func() { secondFired = true })
	})
	s.Tick(0.1)
	if secondFired {
		t.Fatal("expected chained action to wait for the next tick")
	}
	if s.Len() != 1 {
		t.Fatalf("expected chained action pending, got %d", s.Len())
	}
	s.Tick(0.1)
	if !secondFired {
		t.Error("expected chained action to fire on the next tick")
	}
}

func TestCompletionsRunInSchedulingOrder(t *testing.T) {
	s := New(0)
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		_, _ = s.Delay(0.1, func() { order = append(order, i) })
	}
	s.Tick(0.2)
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("expected [0 1 2], got %v", order)
	}
}

func TestCancelFromCallbackSuppressesLaterCompletion(t *testing.T) {
	s := New(0)
	var second ID
	secondFired := false
	_, _ = s.Delay(0.1, func() { s.Cancel(second) })
	second, _ = s.Delay(0.1, func() { secondFired = true })
	s.Tick(0.1)
	if secondFired {
		t.Error("expected cancelled completion to be skipped")
	}
}

func TestCancelAll(t *testing.T) {
	s := New(0)
	fired := 0
	for i := 0; i < 4; i++ {
		_, _ = s.Delay(float64(i)*0.1, func() { fired++ })
	}
	s.CancelAll()
	s.Tick(1)
	if fired != 0 || s.Len() != 0 {
		t.Errorf("expected nothing to fire, got %d fired and %d active", fired, s.Len())
	}
}
