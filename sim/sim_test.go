package sim

import (
	stdmath "math"
	"testing"
	"time"

	"github.com/automoto/nightlight/gameplay"
	"github.com/automoto/nightlight/player"
	"github.com/automoto/nightlight/shared/leveldata"
)

// quietLevel has no spawners so runs are decided by the pilot alone.
func quietLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:          "quiet",
		Width:         32,
		Height:        18,
		PixelsPerUnit: 32,
		PlayerSpawn:   leveldata.Point{X: 16, Y: 9},
		Nodes:         map[int]leveldata.Node{},
	}
}

func TestEveryStep(t *testing.T) {
	tests := []struct {
		name   string
		tick   int
		period float64
		want   bool
	}{
		{"first tick", 0, 1, true},
		{"mid period", 30, 1, false},
		{"next period", 60, 1, true},
		{"disabled", 0, 0, false},
		{"shorter than a step", 7, 0.001, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := everyStep(tt.tick, tt.period, 1.0/60); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSessionStopsAtMaxTicks(t *testing.T) {
	s := NewSession(quietLevel(), DefaultScript(), 60, 30, 1)

	ticks := 0
	for s.Tick() {
		ticks++
		if ticks > 100 {
			t.Fatal("session did not stop")
		}
	}

	r := s.Report()
	if r.Ticks != 30 {
		t.Errorf("expected 30 ticks, got %d", r.Ticks)
	}
	if r.Mode == player.Dead || r.Completed {
		t.Errorf("expected the player alive on an empty level, got %s", r)
	}
	if r.Lives != 3 {
		t.Errorf("expected 3 lives, got %d", r.Lives)
	}
}

func TestPilotSweepsAroundThePlayer(t *testing.T) {
	script := DefaultScript()
	script.WanderEvery = 0
	s := NewSession(quietLevel(), script, 60, 0, 1)

	for i := 0; i < 20; i++ {
		s.Tick()
		screen, ok := gameplay.PlayerScreenPosition(s.World())
		if !ok {
			t.Fatal("expected a player")
		}
		pointer := gameplay.Input(s.World()).Pointer
		d := stdmath.Hypot(pointer.X-screen.X, pointer.Y-screen.Y)
		// the flash knockback may move the player after the pointer was set
		if stdmath.Abs(d-script.SweepRadius) > 10 {
			t.Fatalf("tick %d: expected the pointer %v px from the player, got %v", i, script.SweepRadius, d)
		}
	}
}

func TestPilotFlashes(t *testing.T) {
	s := NewSession(quietLevel(), DefaultScript(), 60, 0, 1)

	s.Tick()
	if mode := gameplay.PlayerMode(s.World()); mode != player.Flashing {
		t.Errorf("expected the first tick to start a flash, got %s", mode)
	}
}

func TestLoopFastForward(t *testing.T) {
	s := NewSession(quietLevel(), DefaultScript(), 60, 120, 7)
	r := NewLoop(s, 60, true).Run()

	if r.Ticks != 120 {
		t.Errorf("expected 120 ticks, got %d", r.Ticks)
	}
	if stdmath.Abs(r.Elapsed-2) > 1e-6 {
		t.Errorf("expected 2s survived, got %v", r.Elapsed)
	}
}

func TestLoopStopReportsNotRunning(t *testing.T) {
	l := NewLoop(NewSession(quietLevel(), DefaultScript(), 60, 1_000_000, 7), 240, false)
	if l.IsRunning() {
		t.Fatal("expected a fresh loop not to be running")
	}

	done := make(chan Report)
	go func() { done <- l.Run() }()

	deadline := time.Now().Add(2 * time.Second)
	for !l.IsRunning() {
		if time.Now().After(deadline) {
			t.Fatal("loop never started")
		}
		time.Sleep(time.Millisecond)
	}
	l.Stop()

	select {
	case r := <-done:
		if r.Ticks >= 1_000_000 {
			t.Errorf("expected Stop to end the run early, got %d ticks", r.Ticks)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
	if l.IsRunning() {
		t.Error("expected the loop to report stopped after Run returns")
	}
}

func TestSessionsAreDeterministic(t *testing.T) {
	level := &leveldata.Level{
		Name:          "busy",
		Width:         32,
		Height:        18,
		PixelsPerUnit: 32,
		PlayerSpawn:   leveldata.Point{X: 16, Y: 9},
		Spawners: []leveldata.Spawner{
			{ID: 1, Position: leveldata.Point{X: 4, Y: 9}, SpawnWait: 0.2, SpawnInterval: 0.5},
			{ID: 2, Position: leveldata.Point{X: 28, Y: 9}, SpawnWait: 0.2, SpawnInterval: 0.5},
		},
		Nodes: map[int]leveldata.Node{},
	}

	run := func() Report {
		return NewLoop(NewSession(level, DefaultScript(), 60, 600, 3), 60, true).Run()
	}
	a, b := run(), run()
	if a != b {
		t.Errorf("expected identical runs, got %s and %s", a, b)
	}
}
