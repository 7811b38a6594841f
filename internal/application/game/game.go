// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/younwookim/letsmime/internal/application/scene"
)

// Pump runs deferred work that is due, such as countdown ticks.
type Pump interface {
	RunDue() int
}

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	pump    Pump
	screenW int
	screenH int
	dt      float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// SetPump sets the deferred work runner pumped before each scene update.
func (g *Game) SetPump(p Pump) {
	g.pump = p
}

// Update runs due deferred work, updates the current scene and handles
// scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.pump != nil {
		g.pump.RunDue()
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		log.Debug().Msgf("scene transition %T -> %T", g.current, next)
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
