package systems

import (
	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/fonts"
	"github.com/automoto/nightlight/gameplay"
	"github.com/automoto/nightlight/player"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause on ESC or P. A dead player cannot pause.
// This system should run AFTER UpdateInput but BEFORE the gameplay systems.
func UpdatePause(e *ecs.ECS) {
	session := gameplay.Session(e.World)
	if session == nil || gameplay.PlayerMode(e.World) == player.Dead {
		return
	}
	if GetOrCreateInput(e).JustPressed(cfg.ActionPause) {
		session.Paused = !session.Paused
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	session := gameplay.Session(ecs.World)
	if session == nil || !session.Paused {
		return
	}
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.GameOver.OverlayColor, false)

	face := fonts.Bold.Get()
	label := "PAUSED"
	bounds := text.BoundString(face, label)
	text.Draw(screen, label, face, (int(width)-bounds.Dx())/2, int(height)/2, cfg.Menu.TitleColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if session := gameplay.Session(e.World); session != nil && session.Paused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or once
// the run is over.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(func(e *ecs.ECS) {
		if IsRunOver(e) {
			return
		}
		system(e)
	})
}
