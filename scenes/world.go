package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/nightlight/assets"
	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/gameplay"
	"github.com/automoto/nightlight/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene plays one run of a level
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	once         sync.Once
}

// NewWorldScene creates a new run on the level at levelIndex
func NewWorldScene(sc SceneChanger, levelIndex int) *WorldScene {
	return &WorldScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.IsRunOver(ws.ecs) {
		ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, ws.levelIndex, ws.result()))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// Retune applies a reloaded tuning file to the running world.
func (ws *WorldScene) Retune() {
	if ws.ecs == nil {
		return
	}
	gameplay.Retune(ws.ecs.World)
	systems.ReloadBindings()
	systems.ReloadSFX()
}

func (ws *WorldScene) result() components.GameOverData {
	session := gameplay.Session(ws.ecs.World)
	return components.GameOverData{
		Kills:     session.Kills,
		BestKills: session.BestKills,
		Survived:  session.Elapsed,
		NewBest:   session.Kills > 0 && session.Kills == session.BestKills,
		Selected:  components.GameOverRetry,
	}
}

func (ws *WorldScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	levels, names := assets.MustLoadLevels()
	if ws.levelIndex < 0 || ws.levelIndex >= len(names) {
		log.Printf("Warning: level %d does not exist, playing %s", ws.levelIndex, names[0])
		ws.levelIndex = 0
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateDebug)

	// Game systems wrapped with pause and game over checks, in gameplay.Step order
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMovement))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawners))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateGhosts))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSession))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawSpawners)
	ecs.AddRenderer(cfg.Default, systems.DrawGhosts)
	ecs.AddRenderer(cfg.Default, systems.DrawEffects)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ws.ecs = ecs

	gameplay.Setup(ws.ecs.World, levels[names[ws.levelIndex]], gameplay.Options{
		LevelIndex: ws.levelIndex,
		LevelNames: names,
		BestKills:  systems.BestKills(),
		SFXVolume:  systems.GetSFXVolume(),
	})
}
