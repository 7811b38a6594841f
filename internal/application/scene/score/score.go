// Package score provides the end of round screen.
package score

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/letsmime/internal/application/scene"
	"github.com/younwookim/letsmime/internal/application/scene/widget"
)

var (
	colorBG    = color.RGBA{26, 26, 46, 255}
	colorAgain = color.RGBA{80, 170, 90, 255}
	colorMenu  = color.RGBA{80, 80, 100, 255}
)

// Input is what the player asked for this frame
type Input struct {
	PlayAgain bool
	Menu      bool
}

// Score shows the result of a round
type Score struct {
	nav      scene.Navigator
	score    int
	screenW  int
	screenH  int
	againBtn widget.Button
	menuBtn  widget.Button

	readInput func() Input
}

// New creates the score screen for a finished round
func New(nav scene.Navigator, score, screenW, screenH int) *Score {
	s := &Score{
		nav:      nav,
		score:    score,
		screenW:  screenW,
		screenH:  screenH,
		againBtn: widget.Button{X: screenW/2 - 80, Y: screenH/2 + 40, W: 160, H: 60, Label: "PLAY AGAIN", Color: colorAgain},
		menuBtn:  widget.Button{X: screenW/2 - 80, Y: screenH/2 + 120, W: 160, H: 40, Label: "MENU", Color: colorMenu},
	}
	s.readInput = s.pollInput
	return s
}

// Update handles the replay and menu choices (implements scene.Scene)
func (s *Score) Update(float64) (scene.Scene, error) {
	in := s.readInput()
	switch {
	case in.PlayAgain:
		return s.nav.Play(), nil
	case in.Menu:
		return s.nav.Title(), nil
	}
	return nil, nil
}

func (s *Score) pollInput() Input {
	points := widget.JustPressedPoints()
	return Input{
		PlayAgain: widget.AnyKeyJustPressed(ebiten.KeySpace, ebiten.KeyEnter) || s.againBtn.Pressed(points),
		Menu:      widget.AnyKeyJustPressed(ebiten.KeyEscape, ebiten.KeyBackspace) || s.menuBtn.Pressed(points),
	}
}

// Result returns the score shown
func (s *Score) Result() int {
	return s.score
}

// Draw renders the scene (implements scene.Scene)
func (s *Score) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	widget.DrawCentered(screen, "TIME'S UP", s.screenW/2, s.screenH/3)
	widget.DrawCentered(screen, fmt.Sprintf("Score: %d", s.score), s.screenW/2, s.screenH/3+32)
	s.againBtn.Draw(screen)
	s.menuBtn.Draw(screen)
}

// OnEnter is called when entering this scene
func (s *Score) OnEnter() {}

// OnExit is called when leaving this scene
func (s *Score) OnExit() {}
