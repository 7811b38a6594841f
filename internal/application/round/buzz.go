package round

import "time"

// Buzz is a haptic cue emitted by the controller.
type Buzz int

const (
	BuzzNone Buzz = iota
	BuzzCorrect
	BuzzGameOver
	BuzzPanic
	// BuzzTimesUp signals a fresh word is ready.
	BuzzTimesUp
)

// String returns the string representation of the buzz
func (b Buzz) String() string {
	switch b {
	case BuzzNone:
		return "None"
	case BuzzCorrect:
		return "Correct"
	case BuzzGameOver:
		return "GameOver"
	case BuzzPanic:
		return "Panic"
	case BuzzTimesUp:
		return "TimesUp"
	default:
		return "Unknown"
	}
}

func ms(v ...int) []time.Duration {
	p := make([]time.Duration, len(v))
	for i, n := range v {
		p[i] = time.Duration(n) * time.Millisecond
	}
	return p
}

var patterns = map[Buzz][]time.Duration{
	BuzzNone:     ms(0),
	BuzzCorrect:  ms(100, 100, 100, 100, 100, 100),
	BuzzGameOver: ms(0, 2000),
	BuzzPanic:    ms(0, 200),
	BuzzTimesUp:  ms(100, 100),
}

// Pattern returns the vibration waveform for the cue: alternating off and on
// durations, starting with off.
func (b Buzz) Pattern() []time.Duration {
	p, ok := patterns[b]
	if !ok {
		p = patterns[BuzzNone]
	}
	return append([]time.Duration(nil), p...)
}
