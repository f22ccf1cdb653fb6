package player

import (
	"github.com/automoto/nightlight/scheduler"
	"github.com/yohamta/donburi/features/math"
)

func (m *Machine) contact(enemy EnemyHandle) {
	if m.state.Invincible {
		return
	}
	if m.state.Mode != Normal && m.state.Mode != Flashing {
		return
	}

	if m.state.Mode == Flashing {
		m.cancelFlash()
	}
	m.setMode(Scared)
	m.ports.Controls.SetFlashlightEnabled(false)
	m.ports.Controls.SetMovementEnabled(false)
	m.state.Lives--
	m.ports.Enemies.Attack(enemy)

	if m.state.Lives <= 0 {
		m.state.Lives = 0
		m.die()
		return
	}

	m.playRandom(m.cfg.ScaredSounds)
	_, _ = m.sched.Schedule(scheduler.LerpToTarget, m.cfg.ScaredTime, scheduler.Payload{
		Get: m.camera,
		Set: m.setCamera,
		Follow: func() []float64 {
			p := m.ports.Body.Position()
			return []float64{p.X, p.Y, m.cfg.MaxCameraZoom}
		},
		Rate: m.cfg.CameraZoomSpeed,
	}, nil)
	_, _ = m.sched.Delay(m.cfg.ScaredTime, m.scaredTimeout)
}

func (m *Machine) scaredTimeout() {
	if m.state.Mode != Scared {
		return
	}
	m.setMode(Normal)
	m.state.Facing = Left
	m.ports.Presenter.SetFacingAnimation(Left)
	m.ports.Controls.SetFlashlightEnabled(true)
	m.ports.Controls.SetMovementEnabled(true)

	home := m.cfg.CameraHome
	_, _ = m.sched.Schedule(scheduler.LerpToTarget, m.cfg.InvincibleTime, scheduler.Payload{
		Get:    m.camera,
		Set:    m.setCamera,
		Target: []float64{home.X, home.Y, m.cfg.MinCameraZoom},
		Rate:   m.cfg.CameraZoomSpeed,
		Snap:   true,
	}, nil)

	m.state.Invincible = true
	_, _ = m.sched.Schedule(scheduler.PeriodicToggle, m.cfg.InvincibleTime, scheduler.Payload{
		Toggle:  m.ports.Presenter.SetSpriteVisible,
		Period:  m.cfg.FlashingInvincibleRate,
		Resting: true,
	}, nil)
	_, _ = m.sched.Delay(m.cfg.InvincibleTime, func() {
		m.state.Invincible = false
	})
}

// die is terminal: every timed action stops and the camera settles on the
// player at full zoom.
func (m *Machine) die() {
	m.sched.CancelAll()
	m.flash = m.flash[:0]
	m.contacts = m.contacts[:0]
	m.state.Invincible = false
	m.setMode(Dead)

	p := m.ports.Body.Position()
	m.setCamera([]float64{p.X, p.Y, m.cfg.MaxCameraZoom})
	m.ports.Presenter.SetSpriteVisible(true)
	m.playRandom(m.cfg.DeathSounds)
}

// CameraPose returns the camera position and orthographic size the machine
// last pushed.
func (m *Machine) CameraPose() (math.Vec2, float64) {
	return m.camPos, m.camSize
}
