package probemap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewSet(t *testing.T) {
	ss := MustNewSet[uint64](4096)

	require.Len(t, ss.slots, 4096)
	require.Equal(t, 4096, ss.Capacity())

	_, err := NewSet[uint64](0)
	require.ErrorIs(t, err, ErrInvalidCapacity)
}

func Test_Put(t *testing.T) {
	ss := MustNewSet[uint64](4096)

	ok, err := ss.Put(1)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = ss.Put(1)
	require.NoError(t, err)
	require.False(t, ok)

	require.Equal(t, 1, ss.Len())
}

func Test_Put_Fill(t *testing.T) {
	ss := MustNewSet[uint64](4096)

	for i := range uint64(ss.Capacity()) {
		ok, err := ss.Put(i)
		require.NoError(t, err)
		require.True(t, ok)
	}

	ok, err := ss.Put(uint64(ss.Capacity()) + 1)
	require.False(t, ok)
	require.ErrorIs(t, err, ErrTableFull)
}

func TestSet_Tombstones(t *testing.T) {
	ss := MustNewSet(16, WithHashFunc[string, struct{}](collisionHash[string]))

	ok, err := ss.Put("A") // Slot 0
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = ss.Put("B") // Slot 1 (via probe)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = ss.Put("C") // Slot 2 (via probe)
	require.NoError(t, err)
	require.True(t, ok)

	// Delete the "bridge" element
	require.True(t, ss.Delete("B"))

	// Verify we can still find "C" even though there's a hole at "B"
	require.True(t, ss.Has("C"), "Probe chain broken: could not find 'C' after deleting 'B'")
	require.Equal(t, 1, ss.Stats().Tombstones)
}

func TestSet_Compact(t *testing.T) {
	const capacity = 32
	ss := MustNewSet[int](capacity)

	// 1. Fill it up to the capacity
	for i := 0; i < capacity; i++ {
		_, err := ss.Put(i)
		require.NoError(t, err)
	}

	// 2. Delete almost everything to create many tombstones
	for i := 0; i < capacity-1; i++ {
		ss.Delete(i)
	}

	// 3. Compact
	ss.Compact()

	// 4. Verify the one remaining element
	lastIdx := capacity - 1
	require.Truef(t, ss.Has(lastIdx), "Lost key %d after compaction", lastIdx)

	// 5. Verify no tombstones remain in the ctrls
	for i := range ss.slots {
		require.NotEqualf(t, uint8(slotDeleted), ss.slots[i].ctrl, "Found tombstone at index %d after compaction", i)
	}
}

func TestSet_All(t *testing.T) {
	ss := MustNewSet[string](8)

	for _, k := range []string{"a", "b", "c"} {
		_, err := ss.Put(k)
		require.NoError(t, err)
	}

	ss.Delete("b")

	keys := slices.Sorted(ss.All())
	assert.Equal(t, []string{"a", "c"}, keys)
}

func TestSet_Reset(t *testing.T) {
	ss := MustNewSet[int](8)

	for i := range 8 {
		_, err := ss.Put(i)
		require.NoError(t, err)
	}

	ss.Reset()

	assert.Equal(t, 0, ss.Len())
	assert.False(t, ss.Has(0))

	ok, err := ss.Put(100)
	require.NoError(t, err)
	assert.True(t, ok)
}
