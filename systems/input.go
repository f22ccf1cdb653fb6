package systems

import (
	"log"

	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/gameplay"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// resolved key bindings, rebuilt after the config is reloaded
var boundKeys map[cfg.ActionID][]ebiten.Key

// ReloadBindings resolves the configured key names again.
func ReloadBindings() {
	boundKeys = make(map[cfg.ActionID][]ebiten.Key, len(cfg.Input.Bindings))
	for action, binding := range cfg.Input.Bindings {
		for _, name := range binding.Keys {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				log.Printf("Warning: unknown key %q bound to action %d: %v", name, action, err)
				continue
			}
			boundKeys[action] = append(boundKeys[action], key)
		}
	}
}

// UpdateInput polls the keyboard and mouse into the session's InputData.
func UpdateInput(e *ecs.ECS) {
	input := GetOrCreateInput(e)
	if boundKeys == nil {
		ReloadBindings()
	}

	// Swap buffers: current becomes previous, then zero out current
	input.Advance()

	mouse := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	for action, binding := range cfg.Input.Bindings {
		if binding.MouseButton && mouse {
			input.Current[action] = true
			continue
		}
		for _, key := range boundKeys[action] {
			if ebiten.IsKeyPressed(key) {
				input.Current[action] = true
				break
			}
		}
	}

	// the rules expect the pointer with Y growing upward
	x, y := ebiten.CursorPosition()
	input.Pointer = math.Vec2{X: float64(x), Y: float64(cfg.C.Height - y)}
}

// GetOrCreateInput returns the InputData of the session singleton, or a
// standalone one in worlds without a session (the menus).
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	if input := gameplay.Input(e.World); input != nil {
		return input
	}
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
