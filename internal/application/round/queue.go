package round

import "math/rand"

// WordQueue hands out a shuffled word list front to back. It is not safe
// for concurrent use; the controller guards it.
type WordQueue struct {
	words []string
}

// NewWordQueue copies words and shuffles the copy with rng.
func NewWordQueue(words []string, rng *rand.Rand) *WordQueue {
	q := &WordQueue{words: append([]string(nil), words...)}
	rng.Shuffle(len(q.words), func(i, j int) {
		q.words[i], q.words[j] = q.words[j], q.words[i]
	})
	return q
}

// Pop removes and returns the front word. ok is false once the queue is
// empty.
func (q *WordQueue) Pop() (word string, ok bool) {
	if len(q.words) == 0 {
		return "", false
	}
	word = q.words[0]
	q.words = q.words[1:]
	return word, true
}

// Len returns the number of words left
func (q *WordQueue) Len() int {
	return len(q.words)
}
