package components

import (
	cfg "github.com/automoto/nightlight/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Pointer is in screen pixels with Y growing upward.
	Pointer math.Vec2
}

// Pressed reports whether action is held this frame.
func (d *InputData) Pressed(action cfg.ActionID) bool {
	return d.Current[action]
}

// JustPressed reports whether action went down this frame.
func (d *InputData) JustPressed(action cfg.ActionID) bool {
	return d.Current[action] && !d.Previous[action]
}

// Advance moves the current frame into the previous one and clears it.
func (d *InputData) Advance() {
	d.Previous = d.Current
	d.Current = [cfg.ActionCount]bool{}
}

var Input = donburi.NewComponentType[InputData]()
