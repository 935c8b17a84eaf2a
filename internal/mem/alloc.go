package mem

import (
	"unsafe"
)

// Alignment is the byte alignment guaranteed for allocated buffers. Eight
// bytes covers every Go primitive type on 64-bit and 32-bit platforms.
const Alignment = 8

// AllocAligned returns a zeroed byte slice of exactly size bytes whose first
// byte sits at an Alignment-aligned address. Returns nil for size <= 0.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0]))
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}
