package systems

import (
	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability.
// The overlay buttons and the keyboard both end up here: confirm retries and
// pause goes back to the title.
func NewUpdateGameOver(sceneChanger SceneChanger, createWorldScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		input := GetOrCreateInput(e)

		if !gameOver.Chosen {
			switch {
			case input.JustPressed(cfg.ActionConfirm):
				ChooseGameOver(gameOver, components.GameOverRetry)
			case input.JustPressed(cfg.ActionPause):
				ChooseGameOver(gameOver, components.GameOverMenu)
			default:
				return
			}
		}

		PlaySFX(e, cfg.ClipMenu)
		switch gameOver.Selected {
		case components.GameOverRetry:
			sceneChanger.ChangeScene(createWorldScene())
		case components.GameOverMenu:
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// ChooseGameOver records the player's choice; the transition happens on the
// next UpdateGameOver.
func ChooseGameOver(gameOver *components.GameOverData, option components.GameOverOption) {
	gameOver.Selected = option
	gameOver.Chosen = true
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			Selected: components.GameOverRetry,
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
