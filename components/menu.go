package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MenuData stores the title screen animation
type MenuData struct {
	Pulse *gween.Tween
	Glow  float32 // 0.0 - 1.0, title brightness
	Up    bool    // pulse direction
	Best  int     // saved best score
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
