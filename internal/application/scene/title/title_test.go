package title

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/younwookim/letsmime/internal/application/scene"
)

type stubScene struct{}

func (stubScene) Update(float64) (scene.Scene, error) { return nil, nil }
func (stubScene) Draw(*ebiten.Image)                  {}
func (stubScene) OnEnter()                            {}
func (stubScene) OnExit()                             {}

type stubNavigator struct {
	plays int
}

func (n *stubNavigator) Title() scene.Scene { return stubScene{} }
func (n *stubNavigator) Play() scene.Scene {
	n.plays++
	return stubScene{}
}
func (n *stubNavigator) Score(int) scene.Scene { return stubScene{} }

func TestTitle_WaitsForInput(t *testing.T) {
	nav := &stubNavigator{}
	s := New(nav, 360, 640, "default")
	s.readInput = func() bool { return false }

	for i := 0; i < 10; i++ {
		next, err := s.Update(1.0 / 60.0)
		assert.NoError(t, err)
		assert.Nil(t, next)
	}
	assert.Zero(t, nav.plays)
}

func TestTitle_StartsRound(t *testing.T) {
	nav := &stubNavigator{}
	s := New(nav, 360, 640, "default")
	s.readInput = func() bool { return true }

	next, err := s.Update(1.0 / 60.0)

	assert.NoError(t, err)
	assert.Equal(t, stubScene{}, next)
	assert.Equal(t, 1, nav.plays)
}
