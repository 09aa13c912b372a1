// Package ring provides the fixed-capacity history buffer shared by the
// game outcome histories and the dice score log. Oldest entries are evicted
// first once the buffer is full.
package ring

type Ring[T any] struct {
	cap   int
	items []T
}

func New[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{cap: capacity}
}

// Push appends v as the newest entry, dropping the oldest on overflow.
func (r *Ring[T]) Push(v T) {
	r.items = append(r.items, v)
	if len(r.items) > r.cap {
		r.items = r.items[1:]
	}
}

// Last returns up to n of the most recent entries, oldest first.
func (r *Ring[T]) Last(n int) []T {
	if n > len(r.items) {
		n = len(r.items)
	}
	out := make([]T, n)
	copy(out, r.items[len(r.items)-n:])
	return out
}

// Recent returns all entries, newest first.
func (r *Ring[T]) Recent() []T {
	out := make([]T, len(r.items))
	for i, v := range r.items {
		out[len(r.items)-1-i] = v
	}
	return out
}

func (r *Ring[T]) Len() int {
	return len(r.items)
}

func (r *Ring[T]) Clear() {
	r.items = nil
}
