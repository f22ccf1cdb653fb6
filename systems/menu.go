package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

const (
	pulseLow  = 0.35
	pulseHigh = 1.0
)

// NewUpdateMenu creates an UpdateMenu system that starts a run on confirm.
func NewUpdateMenu(sceneChanger SceneChanger, createWorldScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)

		glow, done := menu.Pulse.Update(float32(step()))
		menu.Glow = glow
		if done {
			menu.Up = !menu.Up
			menu.Pulse = newPulse(menu.Up)
		}

		input := GetOrCreateInput(e)
		if input.JustPressed(cfg.ActionConfirm) || input.JustPressed(cfg.ActionFlash) {
			PlaySFX(e, cfg.ClipMenu)
			sceneChanger.ChangeScene(createWorldScene())
		}
	}
}

// DrawMenu renders the title screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Menu.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	title := cfg.Menu.Title
	bounds := text.BoundString(titleFont, title)
	titleX := (int(width) - bounds.Dx()) / 2
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), scaleColor(cfg.Menu.TitleColor, menu.Glow))

	hintFont := fonts.Regular.Get()
	bounds = text.BoundString(hintFont, cfg.Menu.Hint)
	hintX := (int(width) - bounds.Dx()) / 2
	text.Draw(screen, cfg.Menu.Hint, hintFont, hintX, int(cfg.Menu.HintY), cfg.Menu.TextColor)

	if menu.Best > 0 {
		label := fmt.Sprintf("BEST %d", menu.Best)
		smallFont := fonts.Small.Get()
		bounds = text.BoundString(smallFont, label)
		text.Draw(screen, label, smallFont, (int(width)-bounds.Dx())/2, int(height)-12, cfg.Menu.TextColor)
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			Pulse: newPulse(true),
			Glow:  pulseLow,
			Up:    true,
			Best:  BestKills(),
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}

func newPulse(up bool) *gween.Tween {
	if up {
		return gween.New(pulseLow, pulseHigh, cfg.Menu.PulseDuration, ease.InOutSine)
	}
	return gween.New(pulseHigh, pulseLow, cfg.Menu.PulseDuration, ease.InOutSine)
}

func scaleColor(c color.RGBA, k float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * k),
		G: uint8(float32(c.G) * k),
		B: uint8(float32(c.B) * k),
		A: c.A,
	}
}
