package vec

// growthFactor is the capacity multiplier applied when a growth request does
// not exceed double the current capacity.
const growthFactor = 2

// nextCap returns the capacity a buffer of current capacity c must have to
// hold n elements. Growth doubles unless n exceeds double (then exact); the
// first allocation from zero is max(n, growthFactor); shrink requests are
// exact. Returns c when no reallocation is needed.
func nextCap(c, n int) int {
	if c == 0 {
		if n > growthFactor {
			return n
		}
		return growthFactor
	}
	if n < c || n > c*growthFactor {
		return n
	}
	if n > c {
		return c * growthFactor
	}
	return c
}

// Raw is a growable array of opaque fixed-size elements. The element size is
// set at construction and never changes. Raw knows nothing about what the
// bytes mean; callers own any resources the stored bytes refer to.
type Raw struct {
	buf  []byte
	elem int // element size in bytes
	n    int // length in elements
	c    int // capacity in elements

	// scratch is allocated lazily for swaps.
	scratch []byte
}

// NewRaw returns an empty vector of elemSize-byte elements. Panics if
// elemSize is not positive: the element size is a static property of the
// caller's type, not runtime input.
func NewRaw(elemSize int) *Raw {
	if elemSize <= 0 {
		panic("vec: element size must be positive")
	}
	return &Raw{elem: elemSize}
}

// NewRawWithCapacity returns an empty vector pre-reserved for n elements.
func NewRawWithCapacity(elemSize, n int) *Raw {
	v := NewRaw(elemSize)
	v.Reserve(n)
	return v
}

// NewRawZeroed returns a vector of n zeroed elements.
func NewRawZeroed(elemSize, n int) *Raw {
	v := NewRawWithCapacity(elemSize, n)
	if n > 0 {
		v.n = n
	}
	return v
}

// NewRawFrom returns a vector holding a copy of data, which must be a whole
// number of elemSize-byte elements.
func NewRawFrom(elemSize int, data []byte) (*Raw, error) {
	v := NewRaw(elemSize)
	if err := v.InsertN(data, 0); err != nil {
		return nil, err
	}
	return v, nil
}

// Len returns the number of elements.
func (v *Raw) Len() int { return v.n }

// Cap returns the number of element slots allocated.
func (v *Raw) Cap() int { return v.c }

// ElemSize returns the fixed element size in bytes.
func (v *Raw) ElemSize() int { return v.elem }

// Reserve grows the capacity to hold at least n elements, following the
// growth policy. No-op if n is already within capacity.
func (v *Raw) Reserve(n int) {
	if n > v.c {
		v.resize(n)
	}
}

// ShrinkToFit reallocates so that capacity equals length exactly. No-op when
// nothing is allocated.
func (v *Raw) ShrinkToFit() {
	if v.c > 0 {
		v.resize(v.n)
	}
}

// Push appends one element.
func (v *Raw) Push(elem []byte) error {
	return v.Insert(elem, v.n)
}

// Insert places one element at pos, shifting elements at [pos, len) right.
// Valid positions are 0 through Len inclusive.
func (v *Raw) Insert(elem []byte, pos int) error {
	if len(elem) != v.elem {
		return sizeMismatch(v.elem, len(elem))
	}
	return v.InsertN(elem, pos)
}

// InsertN places len(elems)/ElemSize elements starting at pos, shifting the
// tail right. elems must be a whole number of elements.
func (v *Raw) InsertN(elems []byte, pos int) error {
	if len(elems)%v.elem != 0 {
		return sizeMismatch(v.elem * (len(elems)/v.elem + 1), len(elems))
	}
	if pos < 0 || pos > v.n {
		return outOfBounds(pos, v.n)
	}

	n := len(elems) / v.elem
	if n == 0 {
		return nil
	}

	v.Reserve(v.n + n)
	// Shift the tail; copy is overlap-safe for a rightward move within the
	// same buffer.
	copy(v.buf[(pos+n)*v.elem:(v.n+n)*v.elem], v.buf[pos*v.elem:v.n*v.elem])
	copy(v.buf[pos*v.elem:], elems)
	v.n += n

	return nil
}

// Pop removes the last element. If out is non-nil the element is copied into
// it first, so resources the bytes refer to can be released by the caller.
func (v *Raw) Pop(out []byte) error {
	if v.n == 0 {
		return ErrEmpty
	}
	return v.RemoveN(v.n-1, 1, out)
}

// Remove deletes the element at pos, optionally copying it into out.
func (v *Raw) Remove(pos int, out []byte) error {
	return v.RemoveN(pos, 1, out)
}

// RemoveN deletes n elements starting at pos, shifting the tail left. If out
// is non-nil the removed elements are copied into it first. The whole range
// [pos, pos+n) must be within the current length.
func (v *Raw) RemoveN(pos, n int, out []byte) error {
	if n <= 0 {
		return nil
	}
	if pos < 0 || pos+n > v.n {
		return outOfBounds(pos+n-1, v.n)
	}
	if out != nil && len(out) < n*v.elem {
		return sizeMismatch(n*v.elem, len(out))
	}

	if out != nil {
		copy(out, v.buf[pos*v.elem:(pos+n)*v.elem])
	}
	copy(v.buf[pos*v.elem:], v.buf[(pos+n)*v.elem:v.n*v.elem])
	v.n -= n

	return nil
}

// Get copies the element at pos into out. On failure out is untouched.
func (v *Raw) Get(pos int, out []byte) error {
	if pos < 0 || pos >= v.n {
		return outOfBounds(pos, v.n)
	}
	if len(out) < v.elem {
		return sizeMismatch(v.elem, len(out))
	}
	copy(out, v.slot(pos))
	return nil
}

// Set overwrites the element at pos.
func (v *Raw) Set(elem []byte, pos int) error {
	if len(elem) != v.elem {
		return sizeMismatch(v.elem, len(elem))
	}
	if pos < 0 || pos >= v.n {
		return outOfBounds(pos, v.n)
	}
	copy(v.slot(pos), elem)
	return nil
}

// Data returns a view of all elements, or nil when the vector is empty. The
// view is invalidated by any mutating call.
func (v *Raw) Data() []byte {
	if v.n == 0 {
		return nil
	}
	return v.buf[:v.n*v.elem]
}

// At returns a view of the element at pos. The view is invalidated by any
// mutating call.
func (v *Raw) At(pos int) ([]byte, error) {
	if pos < 0 || pos >= v.n {
		return nil, outOfBounds(pos, v.n)
	}
	return v.slot(pos), nil
}

// Swap exchanges the elements at i and j.
func (v *Raw) Swap(i, j int) error {
	if i < 0 || i >= v.n {
		return outOfBounds(i, v.n)
	}
	if j < 0 || j >= v.n {
		return outOfBounds(j, v.n)
	}
	v.swap(i, j)
	return nil
}

func (v *Raw) swap(i, j int) {
	if i == j {
		return
	}
	if v.scratch == nil {
		v.scratch = make([]byte, v.elem)
	}
	copy(v.scratch, v.slot(i))
	copy(v.slot(i), v.slot(j))
	copy(v.slot(j), v.scratch)
}

func (v *Raw) slot(i int) []byte {
	return v.buf[i*v.elem : (i+1)*v.elem]
}

func (v *Raw) resize(n int) {
	c := nextCap(v.c, n)
	if c == v.c {
		return
	}
	if c == 0 {
		v.buf = nil
		v.c = 0
		return
	}
	buf := make([]byte, c*v.elem)
	copy(buf, v.buf[:v.n*v.elem])
	v.buf = buf
	v.c = c
}
