package vec

import "iter"

// Iterator walks a Raw vector in index order. Each Iterator owns its own
// cursor, so independent and nested iterations over the same vector do not
// interfere. Mutating the vector mid-iteration invalidates the iterator's
// current view (the iterator does not snapshot).
type Iterator struct {
	v   *Raw
	pos int
}

// Iter returns a fresh iterator positioned before the first element.
func (v *Raw) Iter() *Iterator {
	return &Iterator{v: v, pos: -1}
}

// Next advances the iterator and reports whether an element is available.
func (it *Iterator) Next() bool {
	if it.pos+1 >= it.v.n {
		return false
	}
	it.pos++
	return true
}

// Index returns the position of the current element.
func (it *Iterator) Index() int { return it.pos }

// Bytes returns a view of the current element. Only valid after Next has
// returned true.
func (it *Iterator) Bytes() []byte { return it.v.slot(it.pos) }

// All returns a sequence over (index, element view) pairs, usable with a
// range statement. The element view follows the same borrowing rules as At.
func (v *Raw) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.slot(i)) {
				return
			}
		}
	}
}
