// Package mem provides raw buffer allocation for the arena.
//
// Arena payloads are handed out as byte slices that callers reinterpret as
// typed values, so every payload must start at an address aligned for the
// widest primitive type. AllocAligned over-allocates by one alignment unit and
// reslices to the first aligned byte; the backing array stays reachable
// through the returned slice.
package mem
