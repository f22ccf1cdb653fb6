package gameplay

import (
	"math/rand"

	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/player"
	"github.com/automoto/nightlight/shared/leveldata"
	"github.com/automoto/nightlight/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Options carries what a new run inherits from outside the world.
type Options struct {
	LevelIndex int
	LevelNames []string
	BestKills  int
	SFXVolume  float64
	Rand       *rand.Rand // nil seeds from the clock
}

// Setup fills w with a level: collision space, camera, session, spawners and
// the player with its state machine. It returns the player entry.
func Setup(w donburi.World, level *leveldata.Level, opts Options) *donburi.Entry {
	space := components.Space.Get(factory.CreateSpace(w, level.Width, level.Height))
	factory.CreateLevel(w, level, opts.LevelIndex, opts.LevelNames)

	home := cameraHome(level)
	factory.CreateCamera(w, home, cfg.Camera.MinZoom)
	factory.CreateSession(w, opts.BestKills, opts.SFXVolume)

	for _, s := range level.Spawners {
		factory.CreateSpawner(w, space, s)
	}

	spawn := math.Vec2{X: level.PlayerSpawn.X, Y: level.PlayerSpawn.Y}
	p := factory.CreatePlayer(w, space, spawn)
	ports := NewPorts(w, p)
	components.Player.Get(p).Machine = player.NewMachine(machineConfig(level), ports.Bundle(), opts.Rand)
	return p
}

// Retune pushes the current global configuration into the player machine.
func Retune(w donburi.World) {
	level := levelOf(w)
	if level == nil {
		return
	}
	if m := Machine(w); m != nil {
		m.Retune(machineConfig(level))
	}
}

// Machine returns the player's state machine, or nil.
func Machine(w donburi.World) *player.Machine {
	entry, ok := components.Player.First(w)
	if !ok {
		return nil
	}
	return components.Player.Get(entry).Machine
}

func machineConfig(level *leveldata.Level) player.Config {
	c := player.DefaultConfig()
	c.CameraHome = cameraHome(level)
	return c
}

func cameraHome(level *leveldata.Level) math.Vec2 {
	c := level.Center()
	return math.Vec2{X: c.X, Y: c.Y}
}
