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

// Clear removes all items from the history.
func (h *History[T]) Clear() {
	h.days = h.days[:0]
	h.values = h.values[:0]
}

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, *new(T)
	}
	return h.days[last], h.values[last]
}

// Get returns the value at exactly that date.
func (h *History[T]) Get(on Date) (value T, ok bool) {
	if i := slices.Index(h.days, on); i >= 0 {
		return h.values[i], true
	}
	return *new(T), false
}

// AsOf returns the latest date and value on or before the given date.
// It returns ok=false when the history has no observation on or before that date.
func (h *History[T]) AsOf(on Date) (day Date, value T, ok bool) {
	// first index strictly after 'on'
	i := sort.Search(len(h.days), func(i int) bool { return h.days[i].After(on) })
	if i == 0 {
		return Date{}, *new(T), false
	}
	return h.days[i-1], h.values[i-1], true
}

// chronological is a private implementation to make this history chronologically sorted.
type chronological[T float32 | float64 | string] struct{ *History[T] }

func (s chronological[T]) Less(i, j int) bool { return s.days[i].time().Before(s.days[j].time()) }

func (s chronological[T]) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

func (s chronological[T]) Len() int { return len(s.days) }

// sort sorts the history in chronological order.
func (h *History[T]) sort() { sort.Sort(chronological[T]{h}) }

// Append adds a point to the history.
//
// Existing value at that date is overwritten.
func (h *History[T]) Append(on Date, q T) *History[T] {
	if i := slices.Index(h.days, on); i >= 0 {
		// Found a point at that exact same instant.
		// We choose to replace, because it will give higher priority to the last data
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
