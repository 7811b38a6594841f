// Package haptic plays vibration waveforms.
package haptic

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/younwookim/letsmime/internal/infrastructure/schedule"
)

// Vibrator drives the vibration hardware for a single pulse.
type Vibrator interface {
	Vibrate(d time.Duration)
}

// Buzzer plays waveforms through a Vibrator.
//
// A waveform alternates off and on durations, starting with off:
// {0, 200} vibrates for 200ms straight away, {100, 100} waits 100ms and then
// vibrates for 100ms.
type Buzzer struct {
	sched   schedule.Scheduler
	vib     Vibrator
	enabled bool
}

// NewBuzzer creates a Buzzer. A disabled Buzzer ignores every waveform.
func NewBuzzer(sched schedule.Scheduler, vib Vibrator, enabled bool) *Buzzer {
	return &Buzzer{sched: sched, vib: vib, enabled: enabled}
}

// Buzz replaces any waveform still playing with pattern.
func (b *Buzzer) Buzz(pattern []time.Duration) {
	if !b.enabled {
		return
	}
	b.sched.RemoveAll(b)

	var at time.Duration
	for i, d := range pattern {
		if i%2 == 1 && d > 0 {
			pulse := d
			b.sched.PostDelayed(b, at, func() { b.vib.Vibrate(pulse) })
		}
		at += d
	}
}

// Stop cancels the waveform still playing
func (b *Buzzer) Stop() {
	b.sched.RemoveAll(b)
}

// EbitenVibrator vibrates the device through Ebitengine. It only has an
// effect on mobile platforms.
type EbitenVibrator struct {
	Magnitude float64
}

// Vibrate implements Vibrator.
func (v EbitenVibrator) Vibrate(d time.Duration) {
	ebiten.Vibrate(&ebiten.VibrateOptions{
		Duration:  d,
		Magnitude: v.Magnitude,
	})
}

// LogVibrator reports pulses to the log instead of vibrating.
type LogVibrator struct{}

// Vibrate implements Vibrator.
func (LogVibrator) Vibrate(d time.Duration) {
	log.Debug().Dur("pulse", d).Msg("bzzz")
}
