package player

import (
	"fmt"

	"github.com/automoto/nightlight/scheduler"
	"github.com/tanema/gween/ease"
)

// TriggerFlash starts a flash cycle: the light charges for ChargeTime, then
// flashes at full power, knocks the player back, banishes every enemy in the
// detection box and decays back to the intensities it started from.
func (m *Machine) TriggerFlash() error {
	switch m.state.Mode {
	case Flashing:
		return ErrAlreadyActive
	case Scared, Dead:
		return fmt.Errorf("flash while %s: %w", m.state.Mode, ErrGuardViolation)
	}

	m.baseCone, m.baseSpot = m.state.ConeIntensity, m.state.SpotIntensity
	glowCone := m.baseCone + (m.cfg.MaxConeIntensity-m.baseCone)*m.cfg.ChargeGlow
	glowSpot := m.baseSpot + (m.cfg.MaxSpotIntensity-m.baseSpot)*m.cfg.ChargeGlow

	glow, err := m.sched.Schedule(scheduler.Tween, m.cfg.ChargeTime, scheduler.Payload{
		Get:    m.lights,
		Set:    m.setLights,
		Target: []float64{glowCone, glowSpot},
		Ease:   ease.InQuad,
	}, nil)
	if err != nil {
		return fmt.Errorf("charge glow: %w", err)
	}
	charge, err := m.sched.Delay(m.cfg.ChargeTime, m.fire)
	if err != nil {
		m.sched.Cancel(glow)
		return fmt.Errorf("charge: %w", err)
	}

	m.flash = append(m.flash[:0], glow, charge)
	m.setMode(Flashing)
	if m.cfg.ChargeSound != "" {
		m.ports.Presenter.PlaySound(m.cfg.ChargeSound)
	}
	return nil
}

func (m *Machine) fire() {
	m.setLights([]float64{m.cfg.MaxConeIntensity, m.cfg.MaxSpotIntensity})
	if m.cfg.FlashSound != "" {
		m.ports.Presenter.PlaySound(m.cfg.FlashSound)
	}

	// the knockback point is fixed now and not re-evaluated if the aim moves
	origin := m.ports.Body.Position()
	back := PointAlong(origin, m.state.AimAngle, false, m.cfg.KnockbackForce)
	push := []float64{origin.X, origin.Y}
	if id, err := m.sched.Schedule(scheduler.RepeatUntilConverged, scheduler.Open, scheduler.Payload{
		Get:       func() []float64 { return []float64{push[0], push[1]} },
		Set:       func(v []float64) { m.nudgeBody(push, v) },
		Target:    []float64{back.X, back.Y},
		Rate:      m.cfg.KnockbackSpeed,
		Threshold: m.cfg.KnockbackThreshold,
	}, nil); err == nil {
		m.flash = append(m.flash, id)
	}

	m.banishInBox()

	id, err := m.sched.Delay(m.cfg.DecayDelay, m.decay)
	if err != nil {
		m.endFlash()
		return
	}
	m.flash = append(m.flash, id)
}

func (m *Machine) banishInBox() {
	box := DetectionBox(m.ports.Body.Position(), m.state.AimAngle, m.cfg)
	found := m.ports.Query.QueryEnemiesInBox(box.Center, box.Size, box.Rotation)
	seen := make(map[EnemyHandle]struct{}, len(found))
	for _, e := range found {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		m.ports.Remover.Destroy(e)
		m.state.Kills++
	}
	if len(seen) > 0 && m.cfg.BanishSound != "" {
		m.ports.Presenter.PlaySound(m.cfg.BanishSound)
	}
}

func (m *Machine) decay() {
	id, err := m.sched.Schedule(scheduler.RepeatUntilConverged, scheduler.Open, scheduler.Payload{
		Get:        m.lights,
		Set:        m.setLights,
		Target:     []float64{m.baseCone, m.baseSpot},
		Thresholds: []float64{m.cfg.ConeThreshold, m.cfg.SpotThreshold},
		Rate:       m.cfg.DecayRate,
		Snap:       true,
	}, m.endFlash)
	if err != nil {
		m.setLights([]float64{m.baseCone, m.baseSpot})
		m.endFlash()
		return
	}
	m.flash = append(m.flash, id)
}

func (m *Machine) endFlash() {
	m.flash = m.flash[:0]
	if m.state.Mode == Flashing {
		m.setMode(Normal)
	}
}

// cancelFlash stops the running flash and puts the lights back where the
// flash found them.
func (m *Machine) cancelFlash() {
	for _, id := range m.flash {
		m.sched.Cancel(id)
	}
	m.flash = m.flash[:0]
	m.setLights([]float64{m.baseCone, m.baseSpot})
}
