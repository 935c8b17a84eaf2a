package arena

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/hupe1980/memkit/internal/mem"
)

var (
	// ErrForeignHandle is returned when a handle was not issued by this arena.
	ErrForeignHandle = errors.New("arena: handle not issued by this arena")
	// ErrStaleHandle is returned when a handle was invalidated by FreeAll.
	ErrStaleHandle = errors.New("arena: handle invalidated by FreeAll")
	// ErrInvalidSize is returned when a reallocation size is not positive.
	ErrInvalidSize = errors.New("arena: invalid size")
)

// nextArenaID distinguishes arenas so a handle can never be mistaken for one
// issued by another arena, even when slab index and generation line up.
var nextArenaID atomic.Uint32

// Handle is an opaque reference to one arena block. The zero Handle is never
// valid. Handles stay valid across Realloc and become stale after FreeAll.
type Handle struct {
	arena uint32
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

type block struct {
	buf []byte
}

// Arena owns a slab of independently sized blocks. The zero value is not
// ready for use; call New.
type Arena struct {
	blocks []block
	id     uint32
	gen    uint32

	// Cumulative counters, kept across FreeAll.
	allocs   uint64
	reallocs uint64
}

// New returns an empty arena.
func New() *Arena {
	// Generation 0 is reserved so the zero Handle is always invalid.
	return &Arena{id: nextArenaID.Add(1), gen: 1}
}

// Alloc allocates a block of size bytes and returns its handle together with
// a zeroed payload view. Returns a zero Handle and nil view for size <= 0.
// Allocation itself cannot fail short of the runtime aborting on exhaustion.
func (a *Arena) Alloc(size int) (Handle, []byte) {
	if size <= 0 {
		return Handle{}, nil
	}

	buf := mem.AllocAligned(size)
	a.blocks = append(a.blocks, block{buf: buf})
	a.allocs++

	return Handle{arena: a.id, index: uint32(len(a.blocks) - 1), gen: a.gen}, buf
}

// Bytes returns the payload view of the block referenced by h.
func (a *Arena) Bytes(h Handle) ([]byte, error) {
	b, err := a.lookup(h)
	if err != nil {
		return nil, err
	}
	return b.buf, nil
}

// Realloc resizes the block referenced by h to size bytes and returns the new
// payload view. Contents are preserved up to the smaller of the old and new
// sizes; growth beyond the old size is zeroed. The block keeps its slab
// position and h stays valid. On failure nothing is modified.
func (a *Arena) Realloc(h Handle, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	b, err := a.lookup(h)
	if err != nil {
		return nil, err
	}

	if size == len(b.buf) {
		return b.buf, nil
	}

	buf := mem.AllocAligned(size)
	copy(buf, b.buf)
	b.buf = buf
	a.reallocs++

	return buf, nil
}

// FreeAll releases every block and bumps the arena generation, invalidating
// all outstanding handles and payload views. The arena is immediately
// reusable.
func (a *Arena) FreeAll() {
	a.blocks = nil
	a.gen++
}

// NumBlocks returns the number of live blocks.
func (a *Arena) NumBlocks() int {
	return len(a.blocks)
}

func (a *Arena) lookup(h Handle) (*block, error) {
	switch {
	case h.gen == 0 || h.arena != a.id:
		return nil, fmt.Errorf("%w (arena %d)", ErrForeignHandle, h.arena)
	case h.gen < a.gen:
		return nil, fmt.Errorf("%w (generation %d, current %d)", ErrStaleHandle, h.gen, a.gen)
	case h.gen > a.gen || int(h.index) >= len(a.blocks):
		// Unreachable for genuinely issued handles; fail closed anyway.
		return nil, fmt.Errorf("%w (index %d)", ErrForeignHandle, h.index)
	}
	return &a.blocks[h.index], nil
}
