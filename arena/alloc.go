package arena

import "unsafe"

// Alloc allocates a zeroed T inside the arena and returns it with the handle
// of its block. The pointer is valid until the block is reallocated or the
// arena is freed. T must not contain pointers: the backing memory is untyped
// and the garbage collector will not trace it.
func Alloc[T any](a *Arena) (*T, Handle) {
	var zero T
	h, b := a.Alloc(int(unsafe.Sizeof(zero)))
	if b == nil {
		return nil, h
	}
	return (*T)(unsafe.Pointer(&b[0])), h
}

// AllocSlice allocates a zeroed slice of n elements of type T inside the
// arena. Returns nil and a zero Handle for n <= 0. The pointer-free
// restriction of Alloc applies.
func AllocSlice[T any](a *Arena, n int) ([]T, Handle) {
	if n <= 0 {
		return nil, Handle{}
	}
	var zero T
	h, b := a.Alloc(n * int(unsafe.Sizeof(zero)))
	if b == nil {
		// Zero-sized element type.
		return nil, Handle{}
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), h
}
