// Package arena implements a block arena with handle-checked reallocation.
//
// Unlike a bump allocator, every Alloc creates its own block, and any block
// can later be resized with Realloc while the rest of the arena stays put.
// FreeAll releases everything at once and leaves the arena ready for reuse.
//
// # Handles
//
// Alloc returns an opaque Handle alongside the payload. The handle carries the
// issuing arena's identity, the block's slab index, and the arena generation
// at allocation time, so misuse is a typed, checked failure instead of
// undefined behavior:
//
//   - a handle from another arena (or a zero Handle) fails with ErrForeignHandle
//   - a handle issued before the last FreeAll fails with ErrStaleHandle
//
// # Basic Usage
//
//	a := arena.New()
//
//	h, buf := a.Alloc(1024)
//	copy(buf, payload)
//
//	// Grow the block later; contents are preserved.
//	buf, err := a.Realloc(h, 4096)
//
//	// Release everything at once. All handles become stale.
//	a.FreeAll()
//
// Payload slices returned by Alloc, Bytes, and Realloc are borrows: a Realloc
// of the same block or a FreeAll invalidates them.
//
// # Thread Safety
//
// An Arena is not safe for concurrent use. Callers needing shared access must
// serialize externally.
package arena
