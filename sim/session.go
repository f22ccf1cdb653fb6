// Package sim runs the game rules without a window: a scripted pilot sweeps
// the pointer around the player, flashes periodically and wanders with the
// movement keys.
package sim

import (
	"fmt"
	"log"
	stdmath "math"
	"math/rand"

	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/gameplay"
	"github.com/automoto/nightlight/player"
	"github.com/automoto/nightlight/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Script tunes the pilot.
type Script struct {
	SweepRate   float64 // pointer revolutions per second
	SweepRadius float64 // pixels from the player
	FlashEvery  float64 // seconds between flash presses
	WanderEvery float64 // seconds between changes of walking direction
}

func DefaultScript() Script {
	return Script{
		SweepRate:   0.25,
		SweepRadius: 120,
		FlashEvery:  1.5,
		WanderEvery: 2,
	}
}

// Report summarises a run.
type Report struct {
	Ticks     int
	Elapsed   float64
	Kills     int
	Lives     int
	Mode      player.Mode
	Ghosts    int
	Scares    int
	Completed bool // the run ended with the player dead
}

func (r Report) String() string {
	return fmt.Sprintf("ticks=%d elapsed=%.2fs kills=%d lives=%d mode=%s ghosts=%d scares=%d",
		r.Ticks, r.Elapsed, r.Kills, r.Lives, r.Mode, r.Ghosts, r.Scares)
}

// Session owns a world and the pilot driving it.
type Session struct {
	world    donburi.World
	script   Script
	rng      *rand.Rand
	dt       float64
	maxTicks int

	ticks    int
	lastMode player.Mode
	scares   int
	walk     [4]bool
}

// NewSession sets up level in a fresh world. maxTicks <= 0 runs until death.
func NewSession(level *leveldata.Level, script Script, tickRate, maxTicks int, seed int64) *Session {
	w := donburi.NewWorld()
	gameplay.Setup(w, level, gameplay.Options{
		LevelNames: []string{level.Name},
		SFXVolume:  cfg.Audio.DefaultSFXVol,
		Rand:       rand.New(rand.NewSource(seed)),
	})
	return &Session{
		world:    w,
		script:   script,
		rng:      rand.New(rand.NewSource(seed + 1)),
		dt:       1 / float64(tickRate),
		maxTicks: maxTicks,
		lastMode: player.Normal,
	}
}

// World exposes the simulated world.
func (s *Session) World() donburi.World {
	return s.world
}

// Tick advances the world one fixed step and reports whether the run goes on.
func (s *Session) Tick() bool {
	s.pilot()
	gameplay.Step(s.world, s.dt)
	s.ticks++

	mode := gameplay.PlayerMode(s.world)
	if mode != s.lastMode {
		if mode == player.Scared {
			s.scares++
		}
		log.Printf("tick %d: player %s -> %s", s.ticks, s.lastMode, mode)
		s.lastMode = mode
	}

	if session := gameplay.Session(s.world); session != nil && session.Over {
		return false
	}
	return s.maxTicks <= 0 || s.ticks < s.maxTicks
}

// pilot writes this step's input.
func (s *Session) pilot() {
	input := gameplay.Input(s.world)
	if input == nil {
		return
	}
	input.Advance()
	t := float64(s.ticks) * s.dt

	if screen, ok := gameplay.PlayerScreenPosition(s.world); ok {
		a := 2 * stdmath.Pi * s.script.SweepRate * t
		input.Pointer = math.Vec2{
			X: screen.X + stdmath.Cos(a)*s.script.SweepRadius,
			Y: screen.Y + stdmath.Sin(a)*s.script.SweepRadius,
		}
	}

	if everyStep(s.ticks, s.script.FlashEvery, s.dt) {
		input.Current[cfg.ActionFlash] = true
	}

	if everyStep(s.ticks, s.script.WanderEvery, s.dt) {
		for i := range s.walk {
			s.walk[i] = s.rng.Intn(3) == 0
		}
	}
	input.Current[cfg.ActionMoveLeft] = s.walk[0]
	input.Current[cfg.ActionMoveRight] = s.walk[1]
	input.Current[cfg.ActionMoveUp] = s.walk[2]
	input.Current[cfg.ActionMoveDown] = s.walk[3]
}

// everyStep reports whether tick is the first step of a new period.
func everyStep(tick int, period, dt float64) bool {
	if period <= 0 {
		return false
	}
	n := int(stdmath.Round(period / dt))
	if n < 1 {
		n = 1
	}
	return tick%n == 0
}

// Report snapshots the run.
func (s *Session) Report() Report {
	r := Report{
		Ticks:  s.ticks,
		Mode:   gameplay.PlayerMode(s.world),
		Ghosts: gameplay.CountGhosts(s.world),
		Scares: s.scares,
	}
	if session := gameplay.Session(s.world); session != nil {
		r.Elapsed = session.Elapsed
		r.Kills = session.Kills
		r.Completed = session.Over
	}
	if m := gameplay.Machine(s.world); m != nil {
		r.Lives = m.State().Lives
	}
	return r
}
