package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// GameOverUI holds the ebitenui interface shown after the player died
type GameOverUI struct {
	UI       *ebitenui.UI
	GameOver components.GameOverData

	// Callbacks
	OnChoose func(option components.GameOverOption)

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewGameOverUI creates the overlay for a finished run. The buttons only
// report the choice; the game over system performs the transition.
func NewGameOverUI(gameOver components.GameOverData, onChoose func(option components.GameOverOption)) *GameOverUI {
	gui := &GameOverUI{GameOver: gameOver, OnChoose: onChoose}

	gui.loadFonts()
	gui.buildUI()

	return gui
}

// Update runs the ebitenui input handling
func (gui *GameOverUI) Update() {
	gui.UI.Update()
}

func (gui *GameOverUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	gui.titleFace = &text.GoTextFace{Source: fontSource, Size: 22}
	gui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	gui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (gui *GameOverUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.GameOver.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.GameOver.Title, &gui.titleFace, &widget.LabelColor{
			Idle: cfg.GameOver.TitleColor,
		}),
	))

	for _, line := range gui.statLines() {
		contentContainer.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &gui.normalFace, &widget.LabelColor{
				Idle: cfg.GameOver.TextColor,
			}),
		))
	}

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	buttons.AddChild(gui.button("Try again", components.GameOverRetry))
	buttons.AddChild(gui.button("Title", components.GameOverMenu))
	contentContainer.AddChild(buttons)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.GameOver.Hint, &gui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)

	gui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (gui *GameOverUI) statLines() []string {
	g := gui.GameOver
	lines := []string{
		fmt.Sprintf("Ghosts banished: %d", g.Kills),
		fmt.Sprintf("Survived: %.1fs", g.Survived),
	}
	if g.NewBest {
		return append(lines, "New best!")
	}
	return append(lines, fmt.Sprintf("Best: %d", g.BestKills))
}

func (gui *GameOverUI) button(label string, option components.GameOverOption) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 22)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &gui.normalFace, &widget.ButtonTextColor{
			Idle:  color.RGBA{230, 230, 230, 255},
			Hover: color.RGBA{255, 255, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			gui.OnChoose(option)
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}
