// Package playing provides the scene where a round is played.
package playing

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/younwookim/letsmime/internal/application/replay"
	"github.com/younwookim/letsmime/internal/application/round"
	"github.com/younwookim/letsmime/internal/application/scene"
	"github.com/younwookim/letsmime/internal/application/scene/widget"
	"github.com/younwookim/letsmime/internal/application/state"
	"github.com/younwookim/letsmime/internal/infrastructure/haptic"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorTimerBG   = color.RGBA{60, 60, 80, 255}
	colorTimerHot  = color.RGBA{200, 50, 50, 255}
	colorCorrect   = color.RGBA{80, 170, 90, 255}
	colorSkip      = color.RGBA{170, 90, 60, 255}
	colorPause     = color.RGBA{80, 80, 100, 255}
	colorFlashGood = color.RGBA{100, 200, 100, 255}
	colorFlashBad  = color.RGBA{220, 40, 40, 255}
	colorFlashNext = color.RGBA{200, 200, 220, 255}
)

const flashSeconds = 0.4

// Input is what the player asked for this frame
type Input struct {
	Correct     bool
	Skip        bool
	TogglePause bool
	Quit        bool
}

// Options configures the scene
type Options struct {
	ScreenW, ScreenH int
	// Clock measures action offsets for the recording
	Clock clockwork.Clock
	// Buzzer plays the cue waveforms. Nil disables haptics.
	Buzzer *haptic.Buzzer
	// RecordPath enables recording when not empty
	RecordPath string
	WordPack   string
}

// Playing shows the word to mime and turns input into round actions
type Playing struct {
	ctrl    *round.Controller
	nav     scene.Navigator
	buzzer  *haptic.Buzzer
	clock   clockwork.Clock
	start   time.Time
	state   state.GameState
	screenW int
	screenH int

	// Displayed values, fed by the controller's observables
	word     string
	score    int
	timeText string
	hot      bool

	flash      *gween.Tween
	flashAlpha float32
	flashColor color.RGBA

	correctBtn widget.Button
	skipBtn    widget.Button
	pauseBtn   widget.Button

	readInput func() Input
	cancels   []func()
	next      scene.Scene

	recorder       *Recorder
	recordFilename string
}

// New creates the scene for a round that has already started.
func New(ctrl *round.Controller, nav scene.Navigator, opts Options) *Playing {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	w, h := opts.ScreenW, opts.ScreenH
	btnW := w/2 - 30
	p := &Playing{
		ctrl:       ctrl,
		nav:        nav,
		buzzer:     opts.Buzzer,
		clock:      opts.Clock,
		start:      opts.Clock.Now(),
		state:      state.StatePlaying,
		screenW:    w,
		screenH:    h,
		correctBtn: widget.Button{X: w/2 + 10, Y: h - 120, W: btnW, H: 80, Label: "CORRECT", Color: colorCorrect},
		skipBtn:    widget.Button{X: 20, Y: h - 120, W: btnW, H: 80, Label: "SKIP", Color: colorSkip},
		pauseBtn:   widget.Button{X: 20, Y: 20, W: 80, H: 32, Label: "PAUSE", Color: colorPause},

		recordFilename: opts.RecordPath,
	}
	p.readInput = p.pollInput

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(ctrl.RoundID(), ctrl.Settings(), opts.WordPack, p.start)
		log.Info().Str("path", opts.RecordPath).Int64("seed", ctrl.Settings().Seed).Msg("recording enabled")
	}

	return p
}

// OnEnter subscribes to the round
func (p *Playing) OnEnter() {
	p.cancels = append(p.cancels,
		p.ctrl.Word().Subscribe(func(w string) { p.word = w }),
		p.ctrl.Score().Subscribe(func(s int) { p.score = s }),
		p.ctrl.TimeText().Subscribe(func(t string) { p.timeText = t }),
		p.ctrl.Buzz().Subscribe(p.onBuzz),
		p.ctrl.Finished().Subscribe(p.onFinished),
	)
}

// OnExit ends the round and saves the recording
func (p *Playing) OnExit() {
	for _, cancel := range p.cancels {
		cancel()
	}
	p.cancels = nil
	p.ctrl.Close()
	p.saveRecording()
}

// Update applies the frame's input (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.flash != nil {
		alpha, done := p.flash.Update(float32(dt))
		p.flashAlpha = alpha
		if done {
			p.flash = nil
			p.flashAlpha = 0
		}
	}

	if p.next == nil && p.state != state.StateFinished {
		p.apply(p.readInput())
	}

	return p.next, nil
}

func (p *Playing) apply(in Input) {
	switch {
	case in.Quit:
		log.Info().Str("round_id", p.ctrl.RoundID()).Msg("round abandoned")
		p.next = p.nav.Title()
	case in.Correct:
		p.record(replay.ActionCorrect)
		p.state = state.StatePlaying
		p.ctrl.OnCorrect()
	case in.Skip:
		p.record(replay.ActionSkip)
		p.state = state.StatePlaying
		p.ctrl.OnSkip()
	case in.TogglePause && p.state == state.StatePlaying:
		p.record(replay.ActionPause)
		p.state = state.StatePaused
		p.ctrl.OnPause()
	case in.TogglePause && p.state == state.StatePaused:
		p.record(replay.ActionResume)
		p.state = state.StatePlaying
		p.ctrl.OnResume()
	}
}

// onBuzz plays the cue and acknowledges it
func (p *Playing) onBuzz(b round.Buzz) {
	if b == round.BuzzNone {
		return
	}
	if p.buzzer != nil {
		p.buzzer.Buzz(b.Pattern())
	}

	switch b {
	case round.BuzzCorrect:
		p.startFlash(colorFlashGood)
	case round.BuzzPanic, round.BuzzGameOver:
		p.hot = true
		p.startFlash(colorFlashBad)
	case round.BuzzTimesUp:
		p.hot = false
		p.startFlash(colorFlashNext)
	}
	p.ctrl.OnBuzzComplete()
}

func (p *Playing) onFinished(done bool) {
	if !done {
		return
	}
	p.state = state.StateFinished
	if p.recorder != nil {
		p.recorder.Finish(p.clock.Since(p.start), p.ctrl.CurrentScore(), true)
	}
	p.next = p.nav.Score(p.ctrl.CurrentScore())
	p.ctrl.OnGameFinishComplete()
}

func (p *Playing) startFlash(c color.RGBA) {
	p.flashColor = c
	p.flash = gween.New(0.5, 0, flashSeconds, ease.OutQuad)
	p.flashAlpha = 0.5
}

func (p *Playing) record(a replay.Action) {
	if p.recorder != nil {
		p.recorder.Record(a, p.clock.Since(p.start))
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}
	p.recorder.Finish(p.clock.Since(p.start), p.ctrl.CurrentScore(), p.ctrl.Over())

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Error().Err(err).Str("path", filename).Msg("failed to save recording")
		return
	}
	log.Info().Str("path", filename).Int("actions", p.recorder.ActionCount()).Msg("recording saved")
	p.recorder = nil
}

// pollInput reads keyboard, mouse and touch
func (p *Playing) pollInput() Input {
	points := widget.JustPressedPoints()
	return Input{
		Correct:     widget.AnyKeyJustPressed(ebiten.KeySpace, ebiten.KeyEnter) || p.correctBtn.Pressed(points),
		Skip:        widget.AnyKeyJustPressed(ebiten.KeyS, ebiten.KeyArrowRight) || p.skipBtn.Pressed(points),
		TogglePause: widget.AnyKeyJustPressed(ebiten.KeyP, ebiten.KeyEscape) || p.pauseBtn.Pressed(points),
		Quit:        widget.AnyKeyJustPressed(ebiten.KeyBackspace),
	}
}

// State returns whether the round is running, paused or finished
func (p *Playing) State() state.GameState {
	return p.state
}

// Draw renders the scene (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	// Timer
	timerBG := colorTimerBG
	if p.hot {
		timerBG = colorTimerHot
	}
	ebitenutil.DrawRect(screen, float64(p.screenW/2-40), 20, 80, 32, timerBG)
	widget.DrawCentered(screen, p.timeText, p.screenW/2, 28)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", p.score), p.screenW-90, 28)

	pause := p.pauseBtn
	if p.state == state.StatePaused {
		pause.Label = "RESUME"
	}
	pause.Draw(screen)

	widget.DrawCentered(screen, p.word, p.screenW/2, p.screenH/2-60)

	p.skipBtn.Draw(screen)
	p.correctBtn.Draw(screen)

	if p.flashAlpha > 0 {
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), fade(p.flashColor, p.flashAlpha))
	}

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

// fade scales an opaque color to alpha, keeping it premultiplied
func fade(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 60, float64(p.screenW), float64(p.screenH-200), overlay)

	widget.DrawCentered(screen, "PAUSED", p.screenW/2, p.screenH/2-20)
	widget.DrawCentered(screen, "Press P to resume", p.screenW/2, p.screenH/2+4)
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
