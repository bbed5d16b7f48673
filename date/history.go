package date

import (
	"iter"
	"slices"
	"sort"
)

// History stores a chronological series of values, each associated with a specific date.
// It ensures that dates are unique and the series is always sorted.
type History[T float32 | float64 | string] struct {
	days   []Date
	values []T
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, *new(T)
	}
	return h.days[last], h.values[last]
}

// Oldest returns the earliest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Oldest() (day Date, value T) {
	if len(h.days) == 0 {
		return Date{}, *new(T)
	}
	return h.days[0], h.values[0]
}

// At returns the i-th point in chronological order.
// Negative indexes count back from the latest point: At(-1) is the latest.
// Out-of-range indexes are clamped to the nearest end.
func (h *History[T]) At(i int) (day Date, value T) {
	if len(h.days) == 0 {
		return Date{}, *new(T)
	}
	if i < 0 {
		i += len(h.days)
	}
	if i < 0 {
		i = 0
	}
	if i >= len(h.days) {
		i = len(h.days) - 1
	}
	return h.days[i], h.values[i]
}

// Clear removes all items from the history.
func (h *History[T]) Clear() {
	h.days = h.days[:0]
	h.values = h.values[:0]
}

// chronological is a private implementation to make this history chronologically sorted.
type chronological[T float32 | float64 | string] struct{ *History[T] }

func (s chronological[T]) Less(i, j int) bool { return s.days[i].time().Before(s.days[j].time()) }

func (s chronological[T]) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

func (h *History[T]) sort() { sort.Sort(chronological[T]{h}) }

// Append adds a point to the history.
//
// An existing value at that date is overwritten, last data wins.
func (h *History[T]) Append(on Date, q T) *History[T] {
	if i := slices.Index(h.days, on); i >= 0 {
		h.values[i] = q
		return h
	}
	h.days, h.values = append(h.days, on), append(h.values, q)
	h.sort()
	return h
}

// Values returns an iterator over all date/value pairs in the history, in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Get returns the value at 'day' and true, or the zero value and false.
func (h *History[T]) Get(day Date) (T, bool) {
	var value T
	if i := slices.Index(h.days, day); i >= 0 {
		return h.values[i], true
	}
	return value, false
}

// Since returns the first point whose date is on or after 'day'.
// It returns false if every point in the history is before 'day'.
func (h *History[T]) Since(day Date) (on Date, value T, ok bool) {
	for i, d := range h.days {
		if !d.Before(day) {
			return d, h.values[i], true
		}
	}
	return Date{}, *new(T), false
}
