// Package vec implements growable arrays with an exact growth policy.
//
// Two layers share the same semantics:
//
//   - Raw stores opaque fixed-size byte elements. Element identity is reduced
//     to a byte width fixed at construction; all operations copy whole
//     elements in and out as []byte.
//   - Vec[T] stores typed elements, with the element size implied by T.
//
// # Growth Policy
//
// When an operation needs more capacity, the buffer doubles unless the request
// exceeds double, in which case it grows to exactly the request. From zero the
// first allocation is max(request, 2). Shrink requests (including ShrinkToFit)
// reallocate to exactly the requested size. Pushing one element at a time
// yields the capacity sequence 0, 2, 2, 4, 4, 8, 8, 8, 8, 16, ...
//
// # Failure Model
//
// Out-of-range positions and element-size mismatches are typed errors
// (ErrOutOfBounds, ErrSizeMismatch); the failing call never mutates the
// container or the caller's destination buffer.
//
// # Borrowed Views
//
// Data and At return slices into the backing buffer. Any mutating call may
// reallocate the buffer and invalidate them.
//
// Neither Raw nor Vec is safe for concurrent use.
package vec
