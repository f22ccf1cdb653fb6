package systems

import (
	"fmt"

	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/fonts"
	"github.com/automoto/nightlight/gameplay"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders lives in the top-left corner and the run stats on the right.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	m := gameplay.Machine(ecs.World)
	session := gameplay.Session(ecs.World)
	if m == nil || session == nil {
		return
	}
	state := m.State()
	margin := float32(cfg.UI.HUDMargin)
	r := float32(cfg.UI.LifeIconRadius)

	for i := 0; i < cfg.Fear.Lives; i++ {
		x := margin + r + float32(i)*(r*2+4)
		y := margin + r
		if i < state.Lives {
			vector.FillCircle(screen, x, y, r, cfg.UI.PlayerColor, true)
		} else {
			vector.StrokeCircle(screen, x, y, r, 1, cfg.UI.PlayerColor, true)
		}
	}

	face := fonts.Regular.Get()
	stats := fmt.Sprintf("BANISHED %d   BEST %d   %ds", session.Kills, session.BestKills, int(session.Elapsed))
	bounds := text.BoundString(face, stats)
	x := cfg.C.Width - int(cfg.UI.HUDMargin) - bounds.Dx()
	text.Draw(screen, stats, face, x, int(cfg.UI.HUDMargin)+bounds.Dy(), cfg.UI.HUDTextColor)
}
