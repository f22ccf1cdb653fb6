package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/nightlight/components"
	"github.com/automoto/nightlight/systems"
	"github.com/automoto/nightlight/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene shows the result of a run over a dark overlay
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	result       components.GameOverData
	gameOverUI   *ui.GameOverUI
	once         sync.Once
}

// NewGameOverScene creates a new game over scene for a finished run
func NewGameOverScene(sc SceneChanger, levelIndex int, result components.GameOverData) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, levelIndex: levelIndex, result: result}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)

	// ebitenui first so a click is seen by the system in the same frame
	gs.gameOverUI.Update()
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.gameOverUI.UI.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createWorldScene := func() interface{} {
		return NewWorldScene(gs.sceneChanger, gs.levelIndex)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger, gs.levelIndex)
	}

	gameOver := systems.GetOrCreateGameOver(gs.ecs)
	*gameOver = gs.result
	gs.gameOverUI = ui.NewGameOverUI(gs.result, func(option components.GameOverOption) {
		systems.ChooseGameOver(systems.GetOrCreateGameOver(gs.ecs), option)
	})

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createWorldScene, createMenuScene))
}
