package vec

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec_Constructors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		v := New[int]()
		assert.Equal(t, 0, v.Len())
		assert.Equal(t, 0, v.Cap())
		assert.Nil(t, v.Data())
	})

	t.Run("with capacity", func(t *testing.T) {
		v := WithCapacity[int](10)
		assert.Equal(t, 0, v.Len())
		assert.Equal(t, 10, v.Cap())
	})

	t.Run("zeroed", func(t *testing.T) {
		v := Zeroed[int](3)
		assert.Equal(t, []int{0, 0, 0}, v.Data())
	})

	t.Run("from slice copies", func(t *testing.T) {
		src := []int{1, 2, 3}
		v := From(src)
		src[0] = 99
		assert.Equal(t, []int{1, 2, 3}, v.Data())
	})
}

func TestVec_GrowthPolicy(t *testing.T) {
	v := New[int]()

	want := []int{2, 2, 4, 4, 8, 8, 8, 8, 16}
	for i, w := range want {
		v.Push(i)
		assert.Equal(t, w, v.Cap(), "after push %d", i+1)
	}

	v.ShrinkToFit()
	assert.Equal(t, v.Len(), v.Cap())
}

func TestVec_PushPop(t *testing.T) {
	v := New[string]()
	v.Push("a")
	v.Push("b")

	got, err := v.Pop()
	require.NoError(t, err)
	assert.Equal(t, "b", got)
	assert.Equal(t, 1, v.Len())

	got, err = v.Pop()
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	_, err = v.Pop()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestVec_InsertRemove(t *testing.T) {
	t.Run("insert at position", func(t *testing.T) {
		v := From([]int{1, 3})
		require.NoError(t, v.Insert(2, 1))
		assert.Equal(t, []int{1, 2, 3}, v.Data())
	})

	t.Run("insert past length fails without mutation", func(t *testing.T) {
		v := From([]int{1})
		var oob *ErrOutOfBounds
		require.ErrorAs(t, v.Insert(9, 5), &oob)
		assert.Equal(t, []int{1}, v.Data())
	})

	t.Run("bulk round-trip", func(t *testing.T) {
		v := From([]int{1, 2, 5, 6})
		require.NoError(t, v.InsertN([]int{3, 4}, 2))
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, v.Data())

		removed, err := v.RemoveN(2, 2)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 4}, removed)
		assert.Equal(t, []int{1, 2, 5, 6}, v.Data())
	})

	t.Run("remove past end fails without mutation", func(t *testing.T) {
		v := From([]int{1, 2, 3})
		_, err := v.RemoveN(2, 2)
		var oob *ErrOutOfBounds
		require.ErrorAs(t, err, &oob)
		assert.Equal(t, []int{1, 2, 3}, v.Data())
	})

	t.Run("remove single", func(t *testing.T) {
		v := From([]string{"a", "b", "c"})
		got, err := v.Remove(1)
		require.NoError(t, err)
		assert.Equal(t, "b", got)
		assert.Equal(t, []string{"a", "c"}, v.Data())
	})
}

func TestVec_GetSetAt(t *testing.T) {
	v := From([]int{10, 20})

	got, err := v.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 20, got)

	require.NoError(t, v.Set(99, 0))
	assert.Equal(t, []int{99, 20}, v.Data())

	p, err := v.At(1)
	require.NoError(t, err)
	*p = 21
	assert.Equal(t, []int{99, 21}, v.Data())

	var oob *ErrOutOfBounds
	_, err = v.Get(2)
	assert.ErrorAs(t, err, &oob)
	_, err = v.At(-1)
	assert.ErrorAs(t, err, &oob)
	assert.ErrorAs(t, v.Set(0, 2), &oob)
}

func TestVec_Swap(t *testing.T) {
	v := From([]int{1, 2, 3})
	require.NoError(t, v.Swap(0, 2))
	assert.Equal(t, []int{3, 2, 1}, v.Data())

	var oob *ErrOutOfBounds
	assert.ErrorAs(t, v.Swap(0, 3), &oob)
}

func TestVec_Sort(t *testing.T) {
	t.Run("comparator handles signed values", func(t *testing.T) {
		v := From([]int{3, -1, 2, -7})
		v.Sort(cmp.Compare[int])
		assert.Equal(t, []int{-7, -1, 2, 3}, v.Data())
	})

	t.Run("struct comparator", func(t *testing.T) {
		type pair struct{ key, val int }
		v := From([]pair{{2, 0}, {1, 0}, {3, 0}})
		v.Sort(func(a, b pair) int { return cmp.Compare(a.key, b.key) })
		assert.Equal(t, []pair{{1, 0}, {2, 0}, {3, 0}}, v.Data())
	})

	t.Run("byte order on byte arrays", func(t *testing.T) {
		v := From([][2]byte{{2, 0}, {0, 9}, {1, 5}})
		v.SortBytes(Ascending)
		assert.Equal(t, [][2]byte{{0, 9}, {1, 5}, {2, 0}}, v.Data())

		v.SortBytes(Descending)
		assert.Equal(t, [][2]byte{{2, 0}, {1, 5}, {0, 9}}, v.Data())
	})
}

func TestVec_Iter(t *testing.T) {
	v := From([]string{"x", "y"})

	var got []string
	it := v.Iter()
	for it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []string{"x", "y"}, got)

	var idx []int
	got = got[:0]
	for i, s := range v.All() {
		idx = append(idx, i)
		got = append(got, s)
	}
	assert.Equal(t, []int{0, 1}, idx)
	assert.Equal(t, []string{"x", "y"}, got)
}

func TestVec_PointerElements(t *testing.T) {
	// Pointer-bearing element types live in a typed buffer, so the GC keeps
	// their referents alive and removed slots are cleared.
	v := New[*int]()
	x, y := 1, 2
	v.Push(&x)
	v.Push(&y)

	got, err := v.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, &x, got)

	last, err := v.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 2, *last)
}
