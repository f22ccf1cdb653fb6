package gameplay

import (
	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/player"
	"github.com/yohamta/donburi"
)

// UpdateSession mirrors the machine's kill count into the session, keeps the
// best score and marks the run over a short while after death.
func UpdateSession(w donburi.World, dt float64) {
	entry := sessionOf(w)
	m := Machine(w)
	if entry == nil || m == nil {
		return
	}
	s := components.Session.Get(entry)
	state := m.State()

	s.Kills = state.Kills
	if s.Kills > s.BestKills {
		s.BestKills = s.Kills
	}
	if state.Mode != player.Dead {
		s.Elapsed += dt
		return
	}
	s.DeadTimer += dt
	if s.DeadTimer >= cfg.GameOver.Delay {
		s.Over = true
	}
}

// Session returns the run stats, or nil before Setup.
func Session(w donburi.World) *components.SessionData {
	entry := sessionOf(w)
	if entry == nil {
		return nil
	}
	return components.Session.Get(entry)
}

// Input returns the input state the rules read, or nil before Setup.
func Input(w donburi.World) *components.InputData {
	entry := sessionOf(w)
	if entry == nil {
		return nil
	}
	return components.Input.Get(entry)
}

// Step runs every rule once, in the order the client registers them as
// systems.
func Step(w donburi.World, dt float64) {
	UpdateMovement(w, dt)
	UpdateContacts(w)
	UpdatePlayer(w, dt)
	UpdateSpawners(w, dt)
	UpdateGhosts(w, dt)
	UpdateEffects(w, dt)
	UpdateSession(w, dt)
}
