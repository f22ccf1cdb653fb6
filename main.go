package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/fonts"
	"github.com/automoto/nightlight/scenes"
	"github.com/automoto/nightlight/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// retuner is implemented by scenes that hold tuned state
type retuner interface {
	Retune()
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	watcher *config.Watcher
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levelIndex int, watcher *config.Watcher) *Game {
	g := &Game{
		bounds:  image.Rectangle{},
		watcher: watcher,
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g, levelIndex)
	} else {
		g.scene = scenes.NewMenuScene(g, levelIndex)
	}

	return g
}

func (g *Game) Update() error {
	g.pollTuning()
	g.scene.Update()
	return nil
}

// pollTuning applies a changed tuning file between frames
func (g *Game) pollTuning() {
	if g.watcher == nil {
		return
	}
	reloaded, err := g.watcher.Poll()
	if err != nil {
		log.Printf("Warning: Could not reload tuning: %v", err)
		return
	}
	if !reloaded {
		return
	}
	log.Printf("Tuning reloaded")
	if r, ok := g.scene.(retuner); ok {
		r.Retune()
	} else {
		systems.ReloadBindings()
		systems.ReloadSFX()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("config", "", "YAML tuning file applied over the defaults")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	levelIndex := flag.Int("level", 0, "Index of the level to play")
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "Skip the title screen")
	flag.BoolVar(&config.Debug.ShowBoxes, "boxes", false, "Draw detection boxes and collision shapes")
	flag.BoolVar(&config.Debug.LogTransitions, "debug", false, "Log player mode changes")
	flag.Parse()

	var watcher *config.Watcher
	if *tuningPath != "" {
		if err := config.LoadFile(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		if *watch {
			w, err := config.Watch(*tuningPath)
			if err != nil {
				log.Printf("Warning: Could not watch %s: %v", *tuningPath, err)
			} else {
				watcher = w
				defer watcher.Close()
			}
		}
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetTPS(config.C.TickRate)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	if err := ebiten.RunGame(NewGame(*levelIndex, watcher)); err != nil {
		log.Fatal(err)
	}
}
