package vec

import (
	"bytes"
	"iter"
	"slices"
	"unsafe"
)

// Vec is the typed layer over the same growth semantics as Raw. The element
// size is implied by T, so stored and read elements can never disagree on
// width. The backing buffer is a []T, which keeps pointer-bearing element
// types visible to the garbage collector.
type Vec[T any] struct {
	buf []T // len(buf) == capacity
	n   int // length in elements
}

// New returns an empty typed vector.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// WithCapacity returns an empty typed vector pre-reserved for n elements.
func WithCapacity[T any](n int) *Vec[T] {
	v := New[T]()
	v.Reserve(n)
	return v
}

// Zeroed returns a typed vector of n zero-value elements.
func Zeroed[T any](n int) *Vec[T] {
	v := WithCapacity[T](n)
	if n > 0 {
		v.n = n
	}
	return v
}

// From returns a typed vector holding a copy of elems.
func From[T any](elems []T) *Vec[T] {
	v := New[T]()
	// Insert at 0 into an empty vector cannot fail.
	_ = v.InsertN(elems, 0)
	return v
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int { return v.n }

// Cap returns the number of element slots allocated.
func (v *Vec[T]) Cap() int { return len(v.buf) }

// Reserve grows the capacity to hold at least n elements, following the
// growth policy. No-op if n is already within capacity.
func (v *Vec[T]) Reserve(n int) {
	if n > len(v.buf) {
		v.resize(n)
	}
}

// ShrinkToFit reallocates so that capacity equals length exactly.
func (v *Vec[T]) ShrinkToFit() {
	if len(v.buf) > 0 {
		v.resize(v.n)
	}
}

// Push appends one element.
func (v *Vec[T]) Push(elem T) {
	// Appending at the end cannot be out of bounds.
	_ = v.Insert(elem, v.n)
}

// Insert places elem at pos, shifting elements at [pos, len) right. Valid
// positions are 0 through Len inclusive.
func (v *Vec[T]) Insert(elem T, pos int) error {
	if pos < 0 || pos > v.n {
		return outOfBounds(pos, v.n)
	}
	v.Reserve(v.n + 1)
	copy(v.buf[pos+1:v.n+1], v.buf[pos:v.n])
	v.buf[pos] = elem
	v.n++
	return nil
}

// InsertN places elems starting at pos, shifting the tail right.
func (v *Vec[T]) InsertN(elems []T, pos int) error {
	if pos < 0 || pos > v.n {
		return outOfBounds(pos, v.n)
	}
	n := len(elems)
	if n == 0 {
		return nil
	}
	v.Reserve(v.n + n)
	copy(v.buf[pos+n:v.n+n], v.buf[pos:v.n])
	copy(v.buf[pos:], elems)
	v.n += n
	return nil
}

// Pop removes and returns the last element.
func (v *Vec[T]) Pop() (T, error) {
	var zero T
	if v.n == 0 {
		return zero, ErrEmpty
	}
	elem := v.buf[v.n-1]
	v.buf[v.n-1] = zero // release for GC
	v.n--
	return elem, nil
}

// Remove deletes and returns the element at pos, shifting the tail left.
func (v *Vec[T]) Remove(pos int) (T, error) {
	var zero T
	if pos < 0 || pos >= v.n {
		return zero, outOfBounds(pos, v.n)
	}
	elem := v.buf[pos]
	v.removeRange(pos, 1)
	return elem, nil
}

// RemoveN deletes n elements starting at pos and returns them. The whole
// range [pos, pos+n) must be within the current length.
func (v *Vec[T]) RemoveN(pos, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if pos < 0 || pos+n > v.n {
		return nil, outOfBounds(pos+n-1, v.n)
	}
	removed := make([]T, n)
	copy(removed, v.buf[pos:pos+n])
	v.removeRange(pos, n)
	return removed, nil
}

// Get returns a copy of the element at pos.
func (v *Vec[T]) Get(pos int) (T, error) {
	var zero T
	if pos < 0 || pos >= v.n {
		return zero, outOfBounds(pos, v.n)
	}
	return v.buf[pos], nil
}

// Set overwrites the element at pos.
func (v *Vec[T]) Set(elem T, pos int) error {
	if pos < 0 || pos >= v.n {
		return outOfBounds(pos, v.n)
	}
	v.buf[pos] = elem
	return nil
}

// At returns a pointer to the element at pos. The pointer is invalidated by
// any mutating call.
func (v *Vec[T]) At(pos int) (*T, error) {
	if pos < 0 || pos >= v.n {
		return nil, outOfBounds(pos, v.n)
	}
	return &v.buf[pos], nil
}

// Data returns a view of all elements, or nil when the vector is empty. The
// view is invalidated by any mutating call.
func (v *Vec[T]) Data() []T {
	if v.n == 0 {
		return nil
	}
	return v.buf[:v.n]
}

// Swap exchanges the elements at i and j.
func (v *Vec[T]) Swap(i, j int) error {
	if i < 0 || i >= v.n {
		return outOfBounds(i, v.n)
	}
	if j < 0 || j >= v.n {
		return outOfBounds(j, v.n)
	}
	v.buf[i], v.buf[j] = v.buf[j], v.buf[i]
	return nil
}

// Sort reorders the elements using cmp, which must return a negative value
// when a orders before b, zero when equal, positive otherwise. The sort is
// O(n log n) and not stable.
func (v *Vec[T]) Sort(cmp func(a, b T) int) {
	slices.SortFunc(v.buf[:v.n], cmp)
}

// SortBytes reorders the elements by lexicographic comparison of their
// in-memory byte representation. The same layout caveats as Raw.Sort apply,
// and padding bytes within T take part in the comparison.
func (v *Vec[T]) SortBytes(order Order) {
	v.Sort(func(a, b T) int {
		c := bytes.Compare(elemBytes(&a), elemBytes(&b))
		if order == Descending {
			return -c
		}
		return c
	})
}

// TypedIterator walks a Vec in index order. Each iterator owns its own
// cursor; independent and nested iterations do not interfere.
type TypedIterator[T any] struct {
	v   *Vec[T]
	pos int
}

// Iter returns a fresh iterator positioned before the first element.
func (v *Vec[T]) Iter() *TypedIterator[T] {
	return &TypedIterator[T]{v: v, pos: -1}
}

// Next advances the iterator and reports whether an element is available.
func (it *TypedIterator[T]) Next() bool {
	if it.pos+1 >= it.v.n {
		return false
	}
	it.pos++
	return true
}

// Index returns the position of the current element.
func (it *TypedIterator[T]) Index() int { return it.pos }

// Value returns a copy of the current element. Only valid after Next has
// returned true.
func (it *TypedIterator[T]) Value() T { return it.v.buf[it.pos] }

// All returns a sequence over (index, element) pairs, usable with a range
// statement.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

func (v *Vec[T]) removeRange(pos, n int) {
	var zero T
	copy(v.buf[pos:], v.buf[pos+n:v.n])
	for i := v.n - n; i < v.n; i++ {
		v.buf[i] = zero // release for GC
	}
	v.n -= n
}

func (v *Vec[T]) resize(n int) {
	c := nextCap(len(v.buf), n)
	if c == len(v.buf) {
		return
	}
	if c == 0 {
		v.buf = nil
		return
	}
	buf := make([]T, c)
	copy(buf, v.buf[:v.n])
	v.buf = buf
}

func elemBytes[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}
