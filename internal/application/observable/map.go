package observable

type mapped[S, T any] struct {
	src Observable[S]
	fn  func(S) T
}

// Map derives a read-only Observable whose value is fn applied to src's.
// fn runs on every Get and every notification.
func Map[S, T any](src Observable[S], fn func(S) T) Observable[T] {
	return &mapped[S, T]{src: src, fn: fn}
}

func (m *mapped[S, T]) Get() (T, bool) {
	v, ok := m.src.Get()
	if !ok {
		var zero T
		return zero, false
	}
	return m.fn(v), true
}

func (m *mapped[S, T]) Subscribe(fn func(T)) func() {
	return m.src.Subscribe(func(v S) { fn(m.fn(v)) })
}
