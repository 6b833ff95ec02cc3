package selection

// Entry holds the selected result, or nothing when no result is selectable.
type Entry[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value
func Some[T any](v T) Entry[T] {
	return Entry[T]{value: v, ok: true}
}

// None returns the absent entry
func None[T any]() Entry[T] {
	return Entry[T]{}
}

// Get returns the value and whether it is present
func (e Entry[T]) Get() (T, bool) {
	return e.value, e.ok
}

// IsPresent reports whether the entry holds a value
func (e Entry[T]) IsPresent() bool {
	return e.ok
}

// OrElse returns the value, or fallback when absent
func (e Entry[T]) OrElse(fallback T) T {
	if !e.ok {
		return fallback
	}
	return e.value
}
