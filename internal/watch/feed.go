// Package watch provides a latest-value broadcast primitive for observable
// game state.
package watch

// Feed caches the most recently published value and hands it to every
// subscriber the moment they attach, so an observer never starts blind.
// Publishes run synchronously on the calling goroutine and reach
// subscribers in subscription order. There is no history: a late
// subscriber sees the then-current value and everything after it.
//
// Feed is not safe for concurrent use. The game loop owns it; anything
// else synchronizes externally.
type Feed[T any] struct {
	latest  T
	entries []entry[T]
	nextID  int
}

type entry[T any] struct {
	id int
	fn func(T)
}

// New creates a feed primed with an initial value.
func New[T any](initial T) *Feed[T] {
	return &Feed[T]{latest: initial}
}

// Latest returns the most recently published value.
func (f *Feed[T]) Latest() T {
	return f.latest
}

// Subscribe invokes fn immediately with the latest value, then registers it
// for every future publish. The returned cancel function removes the
// subscription and keeps the order of the remaining subscribers intact.
func (f *Feed[T]) Subscribe(fn func(T)) (cancel func()) {
	fn(f.latest)

	id := f.nextID
	f.nextID++
	f.entries = append(f.entries, entry[T]{id: id, fn: fn})

	return func() {
		for i, e := range f.entries {
			if e.id == id {
				f.entries = append(f.entries[:i], f.entries[i+1:]...)
				return
			}
		}
	}
}

// Publish caches v as the latest value and delivers it to every subscriber,
// in subscription order, before returning. A subscriber cancelled from
// inside a callback is skipped for the rest of the publish; a subscriber
// added from inside a callback first hears the next one.
func (f *Feed[T]) Publish(v T) {
	f.latest = v
	// Deliver from a snapshot so callbacks may subscribe or cancel without
	// shifting the slice under the loop.
	snapshot := make([]entry[T], len(f.entries))
	copy(snapshot, f.entries)
	for _, e := range snapshot {
		if f.active(e.id) {
			e.fn(v)
		}
	}
}

func (f *Feed[T]) active(id int) bool {
	for _, e := range f.entries {
		if e.id == id {
			return true
		}
	}
	return false
}

// Len returns the number of active subscriptions.
func (f *Feed[T]) Len() int {
	return len(f.entries)
}
