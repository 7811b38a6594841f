// Package widget has the few UI pieces the screens share.
package widget

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Debug font cell size used by ebitenutil.DebugPrint
const (
	CharWidth  = 6
	CharHeight = 16
)

// Button is a labelled rectangle that reacts to clicks and taps
type Button struct {
	X, Y, W, H int
	Label      string
	Color      color.RGBA
}

// Contains reports whether the point lies inside the button
func (b Button) Contains(p image.Point) bool {
	return p.In(image.Rect(b.X, b.Y, b.X+b.W, b.Y+b.H))
}

// Pressed reports whether any of the points hits the button
func (b Button) Pressed(points []image.Point) bool {
	for _, p := range points {
		if b.Contains(p) {
			return true
		}
	}
	return false
}

// Draw renders the button with its label centred
func (b Button) Draw(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, float64(b.X), float64(b.Y), float64(b.W), float64(b.H), b.Color)
	DrawCentered(screen, b.Label, b.X+b.W/2, b.Y+b.H/2-CharHeight/2)
}

// DrawCentered prints text horizontally centred on cx
func DrawCentered(screen *ebiten.Image, text string, cx, y int) {
	ebitenutil.DebugPrintAt(screen, text, cx-len(text)*CharWidth/2, y)
}

// JustPressedPoints returns the positions of mouse clicks and touches that
// began this frame
func JustPressedPoints() []image.Point {
	var points []image.Point
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		points = append(points, image.Pt(x, y))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		points = append(points, image.Pt(x, y))
	}
	return points
}

// AnyKeyJustPressed reports whether one of keys was pressed this frame
func AnyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
