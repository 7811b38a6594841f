package round

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuzz_String(t *testing.T) {
	tests := []struct {
		buzz     Buzz
		expected string
	}{
		{BuzzNone, "None"},
		{BuzzCorrect, "Correct"},
		{BuzzGameOver, "GameOver"},
		{BuzzPanic, "Panic"},
		{BuzzTimesUp, "TimesUp"},
		{Buzz(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.buzz.String())
		})
	}
}

func TestBuzz_Pattern(t *testing.T) {
	ms := time.Millisecond
	assert.Equal(t, []time.Duration{100 * ms, 100 * ms, 100 * ms, 100 * ms, 100 * ms, 100 * ms}, BuzzCorrect.Pattern())
	assert.Equal(t, []time.Duration{0, 2000 * ms}, BuzzGameOver.Pattern())
	assert.Equal(t, []time.Duration{0, 200 * ms}, BuzzPanic.Pattern())
	assert.Equal(t, []time.Duration{0}, BuzzNone.Pattern())
	assert.Equal(t, []time.Duration{100 * ms, 100 * ms}, BuzzTimesUp.Pattern())
	assert.Equal(t, []time.Duration{0}, Buzz(99).Pattern())
}

func TestBuzz_PatternIsACopy(t *testing.T) {
	p := BuzzPanic.Pattern()
	p[1] = time.Hour
	assert.Equal(t, 200*time.Millisecond, BuzzPanic.Pattern()[1])
}

func TestWordQueue(t *testing.T) {
	words := []string{"a", "b", "c", "d"}
	q := NewWordQueue(words, rand.New(rand.NewSource(1)))
	assert.Equal(t, 4, q.Len())

	var got []string
	for {
		w, ok := q.Pop()
		if !ok {
			break
		}
		got = append(got, w)
	}
	assert.Equal(t, 0, q.Len())

	sort.Strings(got)
	assert.Equal(t, words, got)
	assert.Equal(t, []string{"a", "b", "c", "d"}, words, "input is not shuffled in place")
}
