// Package observable provides values that notify subscribers when set.
//
// It is the glue between the round controller and the screens: the
// controller owns Values and hands out read-only Observables; the screens
// subscribe and react.
package observable

import "sync"

// Observable is a read-only view of a value.
type Observable[T any] interface {
	// Get returns the current value and whether one has been set.
	Get() (T, bool)
	// Subscribe registers fn and, if a value has been set, calls it with the
	// current value before returning. The returned func unsubscribes.
	Subscribe(fn func(T)) (cancel func())
}

type listener[T any] struct {
	fn func(T)
}

// Value holds a T and notifies listeners on every Set, even when the new
// value equals the old one.
//
// Listeners run synchronously on the goroutine calling Set, after the
// value's lock is released, so a listener may Set the same Value again.
type Value[T any] struct {
	mu        sync.Mutex
	v         T
	set       bool
	listeners []*listener[T]
}

// NewValue creates a Value already holding v.
func NewValue[T any](v T) *Value[T] {
	return &Value[T]{v: v, set: true}
}

// Get returns the current value
func (o *Value[T]) Get() (T, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.v, o.set
}

// Value returns the current value, or the zero value when unset.
func (o *Value[T]) Value() T {
	v, _ := o.Get()
	return v
}

// Set stores v and notifies listeners.
func (o *Value[T]) Set(v T) {
	o.mu.Lock()
	o.v = v
	o.set = true
	ls := o.snapshot()
	o.mu.Unlock()

	for _, l := range ls {
		l.fn(v)
	}
}

// Update replaces the value with fn(current) atomically, notifies listeners
// and returns the new value.
func (o *Value[T]) Update(fn func(T) T) T {
	o.mu.Lock()
	v := fn(o.v)
	o.v = v
	o.set = true
	ls := o.snapshot()
	o.mu.Unlock()

	for _, l := range ls {
		l.fn(v)
	}
	return v
}

// Subscribe implements Observable.
func (o *Value[T]) Subscribe(fn func(T)) func() {
	l := &listener[T]{fn: fn}

	o.mu.Lock()
	o.listeners = append(o.listeners, l)
	v, set := o.v, o.set
	o.mu.Unlock()

	if set {
		fn(v)
	}

	var once sync.Once
	return func() {
		once.Do(func() { o.remove(l) })
	}
}

// Listeners returns the number of subscribers
func (o *Value[T]) Listeners() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.listeners)
}

func (o *Value[T]) remove(l *listener[T]) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i, x := range o.listeners {
		if x == l {
			o.listeners = append(o.listeners[:i:i], o.listeners[i+1:]...)
			return
		}
	}
}

func (o *Value[T]) snapshot() []*listener[T] {
	return append([]*listener[T](nil), o.listeners...)
}
