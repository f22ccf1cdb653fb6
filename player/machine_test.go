package player

import (
	"errors"
	"testing"

	"github.com/yohamta/donburi/features/math"
)

func TestNewMachinePushesInitialPresentation(t *testing.T) {
	m, w := newTestMachine(testConfig())
	s := m.State()
	if s.Mode != Normal || s.Lives != 3 || s.Invincible {
		t.Fatalf("expected Normal with 3 lives, got %+v", s)
	}
	if w.cone != 20 || w.spot != 1 {
		t.Errorf("expected baseline lights (20, 1), got (%v, %v)", w.cone, w.spot)
	}
	if w.camPos != (math.Vec2{X: 16, Y: 9}) || w.camSize != 5 {
		t.Errorf("expected camera at home with zoom 5, got %v %v", w.camPos, w.camSize)
	}
	if !w.visible || !w.movement || !w.flashlight {
		t.Error("expected sprite visible and controls enabled")
	}
}

func TestTickUpdatesAimAndFacing(t *testing.T) {
	m, w := newTestMachine(testConfig())
	m.Tick(step)
	if got := m.State().Facing; got != Right {
		t.Fatalf("expected Right, got %s", got)
	}
	w.pointer = math.Vec2{X: 100, Y: 300}
	m.Tick(step)
	if got := m.State().Facing; got != Up {
		t.Errorf("expected Up, got %s", got)
	}
	m.Tick(step)
	if len(w.facings) != 3 {
		t.Errorf("expected facing pushed only on change (3 calls), got %v", w.facings)
	}
}

func TestFlashScenario(t *testing.T) {
	m, w := newTestMachine(testConfig())
	w.inBox = []EnemyHandle{7, 7, 9}
	w.press = true

	m.Tick(step)
	if !m.State().IsFlashing() {
		t.Fatal("expected flash to start")
	}

	run(m, 30)
	if len(w.queries) != 0 {
		t.Fatal("expected no kill-check before the charge completes")
	}
	if w.cone <= 20 || w.cone >= 80 {
		t.Errorf("expected charge glow between baseline and max, got %v", w.cone)
	}

	m.Tick(step) // t = 0.5
	if len(w.queries) != 1 {
		t.Fatalf("expected one kill-check at 0.5s, got %d", len(w.queries))
	}
	if w.cone != 80 || w.spot != 4 {
		t.Errorf("expected max intensity at 0.5s, got (%v, %v)", w.cone, w.spot)
	}
	q := w.queries[0]
	if q.Center.X < 2.99 || q.Center.X > 3.01 || q.Rotation > 1e-6 && q.Rotation < 359.99 {
		t.Errorf("expected box 3 units right with rotation 0, got %+v", q)
	}
	if len(w.destroyed) != 2 || m.State().Kills != 2 {
		t.Errorf("expected 2 distinct enemies banished, got %v (kills %d)", w.destroyed, m.State().Kills)
	}

	endTick := 0
	for i := 33; i <= 400; i++ {
		m.Tick(step)
		if !m.State().IsFlashing() {
			endTick = i
			break
		}
	}
	if endTick == 0 {
		t.Fatal("expected flash to finish")
	}
	if float64(endTick)*step <= 0.8 {
		t.Errorf("expected decay to finish after 0.8s, finished at %vs", float64(endTick)*step)
	}
	if w.cone != 20 || w.spot != 1 {
		t.Errorf("expected lights back at baseline, got (%v, %v)", w.cone, w.spot)
	}
	if len(w.queries) != 1 {
		t.Errorf("expected exactly one kill-check, got %d", len(w.queries))
	}
	if w.pos.X > -1 || w.pos.X < -2 {
		t.Errorf("expected knockback to within 1 unit of x=-2, got %v", w.pos.X)
	}
}

func TestKnockbackAgainstAWallFinishes(t *testing.T) {
	m, w := newTestMachine(testConfig())
	w.walled = true
	w.press = true

	run(m, 128) // 2s: charge, knockback and decay all done
	if m.State().IsFlashing() {
		t.Fatal("expected the flash to finish")
	}
	if n := m.Scheduler().Len(); n != 0 {
		t.Errorf("expected no pending actions, got %d", n)
	}
	if w.pos != (math.Vec2{}) {
		t.Errorf("expected the walled body to stay put, got %v", w.pos)
	}
}

func TestTimersLandOnTheExpectedTickAt60Hz(t *testing.T) {
	const dt = 1.0 / 60

	m, w := newTestMachine(testConfig())
	w.press = true
	checkedAt := 0
	for tick := 1; tick <= 31 && checkedAt == 0; tick++ {
		m.Tick(dt)
		if len(w.queries) > 0 {
			checkedAt = tick
		}
	}
	if checkedAt != 30 {
		t.Errorf("expected the kill-check on tick 30 (0.5s), got tick %d", checkedAt)
	}

	m, _ = newTestMachine(testConfig())
	m.Tick(dt)
	m.ReportContact(42)
	recoveredAt := 0
	for tick := 1; tick <= 121 && recoveredAt == 0; tick++ {
		m.Tick(dt)
		if m.State().Mode == Normal {
			recoveredAt = tick
		}
	}
	if recoveredAt != 120 {
		t.Errorf("expected Scared to end on tick 120 (2s), got tick %d", recoveredAt)
	}
}

func TestFlashIsNotReentrant(t *testing.T) {
	m, w := newTestMachine(testConfig())
	w.press = true
	m.Tick(step)
	before := m.Scheduler().Len()

	err := m.TriggerFlash()
	if !errors.Is(err, ErrAlreadyActive) {
		t.Errorf("expected ErrAlreadyActive, got %v", err)
	}
	if got := m.Scheduler().Len(); got != before {
		t.Errorf("expected %d scheduled actions, got %d", before, got)
	}

	w.press = true
	m.Tick(step)
	if m.State().Mode != Flashing {
		t.Errorf("expected still Flashing, got %s", m.State().Mode)
	}
}

func TestContactScaresThenRecovers(t *testing.T) {
	m, w := newTestMachine(testConfig())
	m.Tick(step)
	aim := m.State().AimAngle

	m.ReportContact(42)
	m.Tick(step)
	s := m.State()
	if s.Mode != Scared || s.Lives != 2 {
		t.Fatalf("expected Scared with 2 lives, got %+v", s)
	}
	if w.movement || w.flashlight {
		t.Error("expected controls disabled while scared")
	}
	if len(w.attacked) != 1 || w.attacked[0] != 42 {
		t.Errorf("expected enemy 42 to attack, got %v", w.attacked)
	}
	if last := w.sounds[len(w.sounds)-1]; last != "gasp" && last != "shriek" {
		t.Errorf("expected a scared sound, got %q", last)
	}

	w.pointer = math.Vec2{X: 0, Y: 100}
	m.ReportContact(43)
	run(m, 64)
	if m.State().AimAngle != aim {
		t.Error("expected aim frozen while scared")
	}
	if m.State().Lives != 2 {
		t.Errorf("expected contact while scared to be ignored, got %d lives", m.State().Lives)
	}
	if w.camSize >= 5 {
		t.Errorf("expected camera to zoom in, got size %v", w.camSize)
	}

	run(m, 63) // 128 ticks since contact = ScaredTime
	s = m.State()
	if s.Mode != Normal || !s.Invincible {
		t.Fatalf("expected Normal and invincible after scaredTime, got %+v", s)
	}
	if !w.movement || !w.flashlight {
		t.Error("expected controls re-enabled")
	}
	if w.facings[len(w.facings)-1] != Left {
		t.Errorf("expected facing reset to Left, got %v", w.facings[len(w.facings)-1])
	}

	m.ReportContact(44)
	run(m, 8)
	if m.State().Lives != 2 {
		t.Errorf("expected contact while invincible to be ignored, got %d lives", m.State().Lives)
	}
	if w.hidden == 0 {
		t.Error("expected sprite to flicker while invincible")
	}

	run(m, 64)
	s = m.State()
	if s.Invincible {
		t.Error("expected invincibility to clear after invincibleTime")
	}
	if !w.visible {
		t.Error("expected sprite visible after flicker")
	}
	if w.camPos != (math.Vec2{X: 16, Y: 9}) || w.camSize != 5 {
		t.Errorf("expected camera snapped home, got %v %v", w.camPos, w.camSize)
	}
}

func TestContactOnLastLifeIsTerminal(t *testing.T) {
	cfg := testConfig()
	cfg.Lives = 1
	m, w := newTestMachine(cfg)
	w.pos = math.Vec2{X: 3, Y: 4}
	w.press = true
	m.Tick(step)

	m.ReportContact(1)
	m.Tick(step)
	s := m.State()
	if s.Mode != Dead || s.Lives != 0 || s.Invincible {
		t.Fatalf("expected Dead with 0 lives, got %+v", s)
	}
	if m.Scheduler().Len() != 0 {
		t.Errorf("expected every action cancelled, got %d", m.Scheduler().Len())
	}
	if w.camPos != (math.Vec2{X: 3, Y: 4}) || w.camSize != 2.5 {
		t.Errorf("expected camera on player at max zoom, got %v %v", w.camPos, w.camSize)
	}
	if w.sounds[len(w.sounds)-1] != "wail" {
		t.Errorf("expected death sound, got %v", w.sounds)
	}

	m.ReportContact(2)
	w.press = true
	run(m, 200)
	if err := m.TriggerFlash(); !errors.Is(err, ErrGuardViolation) {
		t.Errorf("expected ErrGuardViolation, got %v", err)
	}
	s = m.State()
	if s.Mode != Dead || s.Lives != 0 {
		t.Errorf("expected Dead to be terminal, got %+v", s)
	}
	if len(w.queries) != 0 {
		t.Error("expected cancelled flash never to reach its kill-check")
	}
	if w.movement || w.flashlight {
		t.Error("expected controls to stay disabled")
	}
}

func TestContactCancelsFlash(t *testing.T) {
	m, w := newTestMachine(testConfig())
	w.press = true
	run(m, 10)
	if w.cone <= 20 {
		t.Fatalf("expected charge glow, got %v", w.cone)
	}

	m.ReportContact(5)
	m.Tick(step)
	if m.State().Mode != Scared {
		t.Fatalf("expected Scared, got %s", m.State().Mode)
	}
	if w.cone != 20 || w.spot != 1 {
		t.Errorf("expected lights restored, got (%v, %v)", w.cone, w.spot)
	}
	run(m, 60)
	if len(w.queries) != 0 {
		t.Error("expected cancelled flash not to fire")
	}
}

func TestFlashWhileScaredIsGuarded(t *testing.T) {
	m, _ := newTestMachine(testConfig())
	m.ReportContact(1)
	m.Tick(step)
	before := m.Scheduler().Len()
	if err := m.TriggerFlash(); !errors.Is(err, ErrGuardViolation) {
		t.Errorf("expected ErrGuardViolation, got %v", err)
	}
	if m.Scheduler().Len() != before {
		t.Error("expected no new actions")
	}
}

func TestDeathDuringInvincibilityWindowCancelsFlicker(t *testing.T) {
	cfg := testConfig()
	cfg.Lives = 2
	m, w := newTestMachine(cfg)

	m.ReportContact(1)
	run(m, 128)
	if !m.State().Invincible {
		t.Fatal("expected invincible after first scare")
	}
	run(m, 64)
	if m.State().Invincible {
		t.Fatal("expected invincibility to end")
	}

	m.ReportContact(2)
	m.Tick(step)
	if m.State().Mode != Dead {
		t.Fatalf("expected Dead, got %s", m.State().Mode)
	}
	if m.Scheduler().Len() != 0 {
		t.Errorf("expected no actions after death, got %d", m.Scheduler().Len())
	}
	if !w.visible {
		t.Error("expected sprite left visible on death")
	}
}
