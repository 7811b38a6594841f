// Package title provides the start screen.
package title

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/younwookim/letsmime/internal/application/scene"
	"github.com/younwookim/letsmime/internal/application/scene/widget"
)

var (
	colorBG    = color.RGBA{26, 26, 46, 255}
	colorStart = color.RGBA{80, 170, 90, 255}
)

// Title waits for the player to start a round
type Title struct {
	nav      scene.Navigator
	screenW  int
	screenH  int
	startBtn widget.Button
	wordPack string

	readInput func() bool
}

// New creates the title screen
func New(nav scene.Navigator, screenW, screenH int, wordPack string) *Title {
	t := &Title{
		nav:      nav,
		screenW:  screenW,
		screenH:  screenH,
		wordPack: wordPack,
		startBtn: widget.Button{X: screenW/2 - 80, Y: screenH/2 + 40, W: 160, H: 60, Label: "PLAY", Color: colorStart},
	}
	t.readInput = t.pollInput
	return t
}

// Update starts a round on input (implements scene.Scene)
func (t *Title) Update(float64) (scene.Scene, error) {
	if !t.readInput() {
		return nil, nil
	}
	log.Info().Str("word_pack", t.wordPack).Msg("Good luck!")
	return t.nav.Play(), nil
}

func (t *Title) pollInput() bool {
	return widget.AnyKeyJustPressed(ebiten.KeySpace, ebiten.KeyEnter) ||
		t.startBtn.Pressed(widget.JustPressedPoints())
}

// Draw renders the scene (implements scene.Scene)
func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	widget.DrawCentered(screen, "LET'S MIME", t.screenW/2, t.screenH/3)
	widget.DrawCentered(screen, "Act out the word. No talking!", t.screenW/2, t.screenH/3+24)
	if t.wordPack != "" {
		widget.DrawCentered(screen, "Words: "+t.wordPack, t.screenW/2, t.screenH/3+48)
	}
	t.startBtn.Draw(screen)
}

// OnEnter is called when entering this scene
func (t *Title) OnEnter() {}

// OnExit is called when leaving this scene
func (t *Title) OnExit() {}
