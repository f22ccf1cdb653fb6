// Package player runs the player's flash and fear choreography on top of a
// timed action scheduler. Everything engine specific is reached through Ports.
package player

import (
	"log"
	"math/rand"
	"time"

	"github.com/automoto/nightlight/scheduler"
	"github.com/yohamta/donburi/features/math"
)

// Machine is the player state machine. It is driven from a single goroutine
// by calling Tick once per fixed step.
type Machine struct {
	cfg   Config
	ports Ports
	sched *scheduler.Scheduler
	rng   *rand.Rand

	state    State
	contacts []EnemyHandle

	// flash slot: every action of the running flash cycle
	flash              []scheduler.ID
	baseCone, baseSpot float64

	camPos  math.Vec2
	camSize float64
}

// NewMachine returns a machine in Normal mode with full lives and pushes the
// initial presentation. A nil rng seeds one from the clock.
func NewMachine(cfg Config, ports Ports, rng *rand.Rand) *Machine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	m := &Machine{
		cfg:   cfg,
		ports: ports,
		sched: scheduler.New(cfg.ConvergenceCap),
		rng:   rng,
		state: State{
			Mode:          Normal,
			Lives:         cfg.Lives,
			Facing:        Left,
			ConeIntensity: cfg.ConeIntensity,
			SpotIntensity: cfg.SpotIntensity,
		},
		baseCone: cfg.ConeIntensity,
		baseSpot: cfg.SpotIntensity,
		camPos:   cfg.CameraHome,
		camSize:  cfg.MinCameraZoom,
	}

	p := ports.Presenter
	p.SetLightIntensity(m.state.ConeIntensity, m.state.SpotIntensity)
	p.SetSpriteVisible(true)
	p.SetCameraPose(m.camPos, m.camSize)
	p.SetFacingAnimation(Left)
	p.SetModeAnimation(Normal)
	ports.Controls.SetMovementEnabled(true)
	ports.Controls.SetFlashlightEnabled(true)
	return m
}

// State returns a snapshot of the player.
func (m *Machine) State() State {
	return m.state
}

// Scheduler exposes the machine's scheduler for inspection.
func (m *Machine) Scheduler() *scheduler.Scheduler {
	return m.sched
}

// Retune swaps the tuning used by actions scheduled from now on.
func (m *Machine) Retune(cfg Config) {
	m.cfg = cfg
}

// ReportContact queues an enemy touching the player. Contacts are handled at
// the start of the next Tick.
func (m *Machine) ReportContact(enemy EnemyHandle) {
	if m.state.Mode == Dead {
		return
	}
	m.contacts = append(m.contacts, enemy)
}

// Tick handles queued contacts, then aim and the flash trigger while the
// player is in control, then advances every timed action by dt.
func (m *Machine) Tick(dt float64) {
	for _, e := range m.contacts {
		m.contact(e)
	}
	m.contacts = m.contacts[:0]

	if m.state.Mode != Scared && m.state.Mode != Dead {
		m.aim()
		if m.ports.Input.FlashTriggerPressed() {
			// a press during a flash is swallowed
			_ = m.TriggerFlash()
		}
	}

	m.sched.Tick(dt)
}

func (m *Machine) aim() {
	angle := AimAngle(m.ports.Input.PointerPosition(), m.ports.Body.ScreenPosition())
	m.state.AimAngle = angle
	if f := FacingFor(angle); f != m.state.Facing {
		m.state.Facing = f
		m.ports.Presenter.SetFacingAnimation(f)
	}
}

func (m *Machine) setMode(mode Mode) {
	if mode == m.state.Mode {
		return
	}
	if m.cfg.LogTransitions {
		log.Printf("player: %s -> %s (lives %d, invincible %t)", m.state.Mode, mode, m.state.Lives, m.state.Invincible)
	}
	m.state.Mode = mode
	m.ports.Presenter.SetModeAnimation(mode)
}

func (m *Machine) lights() []float64 {
	return []float64{m.state.ConeIntensity, m.state.SpotIntensity}
}

func (m *Machine) setLights(v []float64) {
	m.state.ConeIntensity, m.state.SpotIntensity = v[0], v[1]
	m.ports.Presenter.SetLightIntensity(v[0], v[1])
}

func (m *Machine) camera() []float64 {
	return []float64{m.camPos.X, m.camPos.Y, m.camSize}
}

func (m *Machine) setCamera(v []float64) {
	m.camPos = math.Vec2{X: v[0], Y: v[1]}
	m.camSize = v[2]
	m.ports.Presenter.SetCameraPose(m.camPos, m.camSize)
}

// nudgeBody moves the body by the step from push to v and records v in push.
// Convergence is measured on push, so a body held back by a wall or moved by
// the player during the push still lets the action finish.
func (m *Machine) nudgeBody(push, v []float64) {
	p := m.ports.Body.Position()
	m.ports.Body.SetPosition(math.Vec2{X: p.X + v[0] - push[0], Y: p.Y + v[1] - push[1]})
	push[0], push[1] = v[0], v[1]
}

func (m *Machine) playRandom(clips []string) {
	if len(clips) == 0 {
		return
	}
	m.ports.Presenter.PlaySound(clips[m.rng.Intn(len(clips))])
}
