// Package sequence provides an ordered FIFO container backed by a growable
// ring buffer. Elements are appended at the tail and removed from the head,
// and traversal always visits them in insertion order.
package sequence

import "iter"

// minCapacity is the initial backing array size for a non-empty sequence.
const minCapacity = 8

// Sequence is an ordered collection supporting O(1) tail append, head
// inspection and head removal. The zero value is an empty, ready-to-use
// sequence. A Sequence is not safe for concurrent use.
type Sequence[T any] struct {
	buf  []T
	head int // Index of the first element in buf
	n    int // Number of stored elements
}

// New returns an empty sequence with room for at least capacity elements.
func New[T any](capacity int) *Sequence[T] {
	s := &Sequence[T]{}
	if capacity > 0 {
		s.buf = make([]T, capacity)
	}
	return s
}

// Len returns the number of elements in the sequence.
func (s *Sequence[T]) Len() int {
	return s.n
}

// Empty reports whether the sequence holds no elements.
func (s *Sequence[T]) Empty() bool {
	return s.n == 0
}

// PushBack appends v at the tail.
func (s *Sequence[T]) PushBack(v T) {
	if s.n == len(s.buf) {
		s.grow()
	}
	s.buf[s.index(s.n)] = v
	s.n++
}

// Front returns the head element without removing it.
// ok is false if the sequence is empty.
func (s *Sequence[T]) Front() (v T, ok bool) {
	if s.n == 0 {
		return v, false
	}
	return s.buf[s.head], true
}

// Back returns the tail element without removing it.
// ok is false if the sequence is empty.
func (s *Sequence[T]) Back() (v T, ok bool) {
	if s.n == 0 {
		return v, false
	}
	return s.buf[s.index(s.n-1)], true
}

// PopFront removes and returns the head element.
// Panics if the sequence is empty; callers must check Empty first.
func (s *Sequence[T]) PopFront() T {
	if s.n == 0 {
		panic("sequence: PopFront on empty sequence")
	}
	var zero T
	v := s.buf[s.head]
	s.buf[s.head] = zero // Drop the reference so the element can be collected
	s.head = (s.head + 1) % len(s.buf)
	s.n--
	if s.n == 0 {
		s.head = 0
	}
	return v
}

// At returns the i-th element counting from the head.
// Panics if i is out of range.
func (s *Sequence[T]) At(i int) T {
	if i < 0 || i >= s.n {
		panic("sequence: index out of range")
	}
	return s.buf[s.index(i)]
}

// All returns an iterator over the elements from head to tail.
// The sequence must not be modified during iteration.
func (s *Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(s.buf[s.index(i)]) {
				return
			}
		}
	}
}

// Clear removes all elements, keeping the allocated storage.
func (s *Sequence[T]) Clear() {
	clear(s.buf)
	s.head = 0
	s.n = 0
}

// index maps a logical position to a slot in buf.
func (s *Sequence[T]) index(i int) int {
	return (s.head + i) % len(s.buf)
}

// grow doubles the backing array and unwraps the elements to start at 0.
func (s *Sequence[T]) grow() {
	newCap := len(s.buf) * 2
	if newCap < minCapacity {
		newCap = minCapacity
	}
	buf := make([]T, newCap)
	for i := 0; i < s.n; i++ {
		buf[i] = s.buf[s.index(i)]
	}
	s.buf = buf
	s.head = 0
}
