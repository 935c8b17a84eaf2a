package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlloc(t *testing.T) {
	type header struct {
		Magic uint32
		Count uint64
	}

	a := New()

	hdr, h := Alloc[header](a)
	require.NotNil(t, hdr)
	require.False(t, h.IsZero())

	assert.Zero(t, hdr.Magic)
	assert.Zero(t, hdr.Count)

	hdr.Magic = 0xfeedbeef
	hdr.Count = 7

	buf, err := a.Bytes(h)
	require.NoError(t, err)
	assert.NotZero(t, buf[0]) // little- or big-endian, some magic byte lands first
}

func TestAllocSlice(t *testing.T) {
	t.Run("zeroed elements", func(t *testing.T) {
		a := New()

		s, h := AllocSlice[uint64](a, 16)
		require.Len(t, s, 16)
		require.False(t, h.IsZero())

		for i, v := range s {
			require.Zero(t, v, "element %d", i)
		}
	})

	t.Run("writes land in the block", func(t *testing.T) {
		a := New()

		s, h := AllocSlice[byte](a, 4)
		copy(s, "abcd")

		buf, err := a.Bytes(h)
		require.NoError(t, err)
		assert.Equal(t, []byte("abcd"), buf)
	})

	t.Run("non-positive count", func(t *testing.T) {
		a := New()

		s, h := AllocSlice[uint32](a, 0)
		assert.Nil(t, s)
		assert.True(t, h.IsZero())
		assert.Equal(t, 0, a.NumBlocks())
	})
}

func TestStats(t *testing.T) {
	a := New()
	assert.Equal(t, Stats{Generation: 1}, a.Stats())

	h, _ := a.Alloc(100)
	a.Alloc(50)
	_, err := a.Realloc(h, 150)
	require.NoError(t, err)

	s := a.Stats()
	assert.Equal(t, 2, s.NumBlocks)
	assert.Equal(t, 200, s.BytesInUse)
	assert.Equal(t, uint64(2), s.TotalAllocs)
	assert.Equal(t, uint64(1), s.TotalReallocs)
	assert.Equal(t, uint32(1), s.Generation)
	assert.InDelta(t, 100.0, s.AvgBlockSize, 0.001)

	a.FreeAll()

	s = a.Stats()
	assert.Equal(t, 0, s.NumBlocks)
	assert.Equal(t, 0, s.BytesInUse)
	assert.Equal(t, uint64(2), s.TotalAllocs) // historical counters survive
	assert.Equal(t, uint32(2), s.Generation)
	assert.Zero(t, s.AvgBlockSize)
}
