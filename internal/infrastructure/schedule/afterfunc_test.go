package schedule

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestAfterFunc_RunsAfterDelay(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewAfterFunc(clock)

	done := make(chan struct{})
	s.PostDelayed(&owner{}, time.Second, func() { close(done) })
	assert.Equal(t, 1, s.Pending())

	clock.Advance(time.Second)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not run")
	}
	assert.Eventually(t, func() bool { return s.Pending() == 0 }, time.Second, 5*time.Millisecond)
}

func TestAfterFunc_RemoveAll(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewAfterFunc(clock)
	a := &owner{name: "a"}
	b := &owner{name: "b"}

	ranA := make(chan struct{}, 1)
	ranB := make(chan struct{}, 1)
	s.PostDelayed(a, time.Second, func() { ranA <- struct{}{} })
	s.PostDelayed(b, time.Second, func() { ranB <- struct{}{} })

	s.RemoveAll(a)
	assert.Equal(t, 1, s.Pending())

	clock.Advance(2 * time.Second)

	select {
	case <-ranB:
	case <-time.After(time.Second):
		t.Fatal("task for b did not run")
	}
	select {
	case <-ranA:
		t.Fatal("removed task ran")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestAfterFunc_RealClock(t *testing.T) {
	s := NewAfterFunc(clockwork.NewRealClock())

	done := make(chan struct{})
	s.PostDelayed(&owner{}, 5*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not run")
	}
}
