package sparsearena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndGet(t *testing.T) {
	a := New[int]()

	key := a.Insert(42)

	v, ok := a.Get(key)
	require.True(t, ok)
	assert.Equal(t, 42, *v)
	assert.True(t, a.Contains(key))
	assert.Equal(t, 1, a.Len())
}

func TestInsertWithReservedSlotReadsEmptyWhileFRuns(t *testing.T) {
	a := New[int]()

	var sawOccupied bool
	key := a.InsertWith(func(arena *Arena[int], k Key) int {
		sawOccupied = arena.Contains(k)
		return 42
	})

	assert.False(t, sawOccupied, "slot must read as reserved-empty while f runs")
	v, ok := a.Get(key)
	require.True(t, ok)
	assert.Equal(t, 42, *v)
}

func TestInsertWithCanBackReferenceItsOwnKey(t *testing.T) {
	a := New[Key]()

	key := a.InsertWith(func(arena *Arena[Key], k Key) Key {
		return k
	})

	v, ok := a.Get(key)
	require.True(t, ok)
	assert.Equal(t, key, *v)
}

func TestInsertAndInsertWithBehaveEquivalently(t *testing.T) {
	a := New[int]()

	k1 := a.Insert(1)
	k2 := a.InsertWith(func(*Arena[int], Key) int { return 2 })

	assert.Equal(t, uint32(0), k1.Slot)
	assert.Equal(t, uint32(1), k2.Slot)
}

func TestRemoveInvalidatesKey(t *testing.T) {
	a := New[int]()

	key := a.Insert(10)
	removed, ok := a.Remove(key)

	require.True(t, ok)
	assert.Equal(t, 10, removed)
	_, ok = a.Get(key)
	assert.False(t, ok)
	assert.False(t, a.Contains(key))
	assert.Equal(t, 0, a.Len())
}

func TestInsertReuseBumpsGeneration(t *testing.T) {
	a := New[int]()

	k1 := a.Insert(1)
	a.Remove(k1)
	k2 := a.Insert(2)

	assert.Equal(t, k1.Slot, k2.Slot)
	assert.NotEqual(t, k1.Generation, k2.Generation)

	_, ok := a.Get(k1)
	assert.False(t, ok)
	v, ok := a.Get(k2)
	require.True(t, ok)
	assert.Equal(t, 2, *v)
}

func TestInsertWithReuseBumpsGeneration(t *testing.T) {
	a := New[int]()

	k1 := a.InsertWith(func(*Arena[int], Key) int { return 1 })
	a.Remove(k1)
	k2 := a.InsertWith(func(*Arena[int], Key) int { return 2 })

	assert.Equal(t, k1.Slot, k2.Slot)
	assert.NotEqual(t, k1.Generation, k2.Generation)
}

func TestGetMutatesThroughPointer(t *testing.T) {
	a := New[int]()

	key := a.Insert(5)
	v, _ := a.Get(key)
	*v = 99

	got, _ := a.Get(key)
	assert.Equal(t, 99, *got)
}

func TestRemovingTwiceIsSafe(t *testing.T) {
	a := New[int]()

	key := a.Insert(7)
	removed, ok := a.Remove(key)
	require.True(t, ok)
	assert.Equal(t, 7, removed)

	_, ok = a.Remove(key)
	assert.False(t, ok)
}

func TestRemoveTwiceDuplicatesFreeListEntry(t *testing.T) {
	// Remove always pushes the slot index onto the free list, even on a
	// second remove of the same key. Documented, unguarded behavior.
	a := New[int]()

	key := a.Insert(1)
	a.Remove(key)
	a.Remove(key)

	assert.Len(t, a.freeSlots, 2)
}

func TestInvalidKeyReturnsNotFound(t *testing.T) {
	a := New[int]()

	fake := Key{Slot: 999, Generation: 0}
	_, ok := a.Get(fake)
	assert.False(t, ok)
	assert.False(t, a.Contains(fake))
}

func TestScopeAllowsMutatingWhileTraversingArena(t *testing.T) {
	a := New[[]int]()

	sibling := a.Insert([]int{1, 2, 3})
	key := a.Insert(nil)

	sum, ok := Scope(a, key, func(arena *Arena[[]int], value *[]int) int {
		siblingValue, _ := arena.Get(sibling)
		total := 0
		for _, n := range *siblingValue {
			total += n
		}
		*value = append(*value, total)
		return total
	})

	require.True(t, ok)
	assert.Equal(t, 6, sum)

	v, _ := a.Get(key)
	assert.Equal(t, []int{6}, *v)
}

func TestScopeOnDeadKeyReturnsFalse(t *testing.T) {
	a := New[int]()
	key := a.Insert(1)
	a.Remove(key)

	called := false
	_, ok := Scope(a, key, func(*Arena[int], *int) int {
		called = true
		return 0
	})

	assert.False(t, ok)
	assert.False(t, called)
}
