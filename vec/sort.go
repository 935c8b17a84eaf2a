package vec

import (
	"bytes"
	"sort"
)

// Order selects the direction of a byte-order sort.
type Order int

const (
	// Ascending sorts elements in increasing byte-lexicographic order.
	Ascending Order = iota
	// Descending sorts elements in decreasing byte-lexicographic order.
	Descending
)

// Sort reorders the elements by lexicographic comparison of their raw bytes.
// The sort is O(n log n) and not stable. Byte order coincides with numeric
// order only for layouts such as big-endian unsigned integers or plain byte
// strings; signed or little-endian multi-byte values need the typed layer's
// comparator sort instead.
func (v *Raw) Sort(order Order) {
	sort.Sort(rawSorter{v: v, order: order})
}

type rawSorter struct {
	v     *Raw
	order Order
}

func (s rawSorter) Len() int { return s.v.n }

func (s rawSorter) Less(i, j int) bool {
	c := bytes.Compare(s.v.slot(i), s.v.slot(j))
	if s.order == Descending {
		return c > 0
	}
	return c < 0
}

func (s rawSorter) Swap(i, j int) { s.v.swap(i, j) }
