package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionFlash
	ActionConfirm
	ActionToggleDebug
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// InputBinding lists the keys bound to an action by their ebiten names
// ("A", "ArrowLeft", "Space"). Names are resolved by the input system so the
// config package stays free of the graphics stack.
type InputBinding struct {
	Keys        []string
	MouseButton bool // left mouse button also triggers the action
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:    {Keys: []string{"A", "ArrowLeft"}},
			ActionMoveRight:   {Keys: []string{"D", "ArrowRight"}},
			ActionMoveUp:      {Keys: []string{"W", "ArrowUp"}},
			ActionMoveDown:    {Keys: []string{"S", "ArrowDown"}},
			ActionFlash:       {Keys: []string{"Space"}, MouseButton: true},
			ActionConfirm:     {Keys: []string{"Enter", "NumpadEnter"}},
			ActionToggleDebug: {Keys: []string{"F3"}},
			ActionPause:       {Keys: []string{"Escape", "P"}},
		},
	}
}
