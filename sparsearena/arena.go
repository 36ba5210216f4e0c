// Package sparsearena implements a generationally-versioned slot map: O(1)
// insert/lookup/remove with handle invalidation after removal, and slot
// reuse via a free list.
package sparsearena

// Key identifies a value stored in an Arena. Two keys are equal only if
// both Slot and Generation match; a Key is valid in its arena iff the slot
// currently holds a value and the slot's current generation equals
// Generation.
type Key struct {
	Slot       uint32
	Generation uint32
}

type item[T any] struct {
	value      T
	generation uint32
	occupied   bool
}

// Arena is a growable slot map of values of type T, keyed by generational
// Key. The zero value is ready to use.
type Arena[T any] struct {
	slots     []item[T]
	freeSlots []uint32
}

// New creates an empty Arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores value in a reused or freshly-allocated slot and returns its
// Key. O(1).
func (a *Arena[T]) Insert(value T) Key {
	if n := len(a.freeSlots); n > 0 {
		slot := a.freeSlots[n-1]
		a.freeSlots = a.freeSlots[:n-1]
		it := &a.slots[slot]
		it.generation++
		it.value = value
		it.occupied = true
		return Key{Slot: slot, Generation: it.generation}
	}
	slot := uint32(len(a.slots))
	a.slots = append(a.slots, item[T]{value: value, occupied: true})
	return Key{Slot: slot, Generation: 0}
}

// InsertWith reserves a slot, computes the key, then invokes f with the
// arena and the reserved key to produce the value to store. f may mutate
// the arena (for example to write the key into a sibling record) but the
// reserved slot itself reads as empty (Contains/Get return false/zero)
// until InsertWith returns and writes the produced value into it — this is
// how a value can hold its own key, or a sibling can reference it, before
// it's fully built.
func (a *Arena[T]) InsertWith(f func(a *Arena[T], key Key) T) Key {
	var key Key
	if n := len(a.freeSlots); n > 0 {
		slot := a.freeSlots[n-1]
		a.freeSlots = a.freeSlots[:n-1]
		it := &a.slots[slot]
		it.generation++
		it.occupied = false
		key = Key{Slot: slot, Generation: it.generation}
	} else {
		slot := uint32(len(a.slots))
		a.slots = append(a.slots, item[T]{})
		key = Key{Slot: slot, Generation: 0}
	}

	value := f(a, key)
	it := &a.slots[key.Slot]
	it.value = value
	it.occupied = true
	return key
}

// Remove takes the value out of key's slot and pushes the slot onto the
// free list for reuse. Returns the removed value and true if the key was
// live, or the zero value and false otherwise.
//
// The slot index is pushed onto the free list unconditionally — even when
// the slot was already empty — which can produce duplicate free-list
// entries on a double remove. This is documented, not guarded against.
func (a *Arena[T]) Remove(key Key) (T, bool) {
	var zero T
	if int(key.Slot) >= len(a.slots) {
		return zero, false
	}
	it := &a.slots[key.Slot]
	a.freeSlots = append(a.freeSlots, key.Slot)
	if !it.occupied || it.generation != key.Generation {
		return zero, false
	}
	value := it.value
	it.value = zero
	it.occupied = false
	return value, true
}

// Get returns a pointer to the value for key if key is live, or nil
// otherwise. The pointer aliases the arena's internal storage and is
// invalidated by any subsequent Insert/InsertWith/Remove/Scope call.
func (a *Arena[T]) Get(key Key) (*T, bool) {
	if int(key.Slot) >= len(a.slots) {
		return nil, false
	}
	it := &a.slots[key.Slot]
	if !it.occupied || it.generation != key.Generation {
		return nil, false
	}
	return &it.value, true
}

// Contains reports whether key currently refers to a live value.
func (a *Arena[T]) Contains(key Key) bool {
	if int(key.Slot) >= len(a.slots) {
		return false
	}
	it := &a.slots[key.Slot]
	return it.occupied && it.generation == key.Generation
}

// Scope temporarily removes the value at key out of its slot (leaving the
// slot reserved-empty), runs f with mutable access to both the arena and
// the extracted value, then reinserts the value into the same slot with
// its generation unchanged. This lets f traverse/mutate other entries in
// the arena while holding a mutable reference to key's value. Returns the
// zero value and false if key was not live; f is not invoked in that case.
//
// Scope is a free function rather than a method because its result type R
// is independent of the Arena's element type T, and Go methods cannot
// introduce type parameters beyond the receiver's.
func Scope[T any, R any](a *Arena[T], key Key, f func(a *Arena[T], value *T) R) (R, bool) {
	var zero R
	if !a.Contains(key) {
		return zero, false
	}
	it := &a.slots[key.Slot]
	value := it.value
	var zeroT T
	it.value = zeroT
	it.occupied = false

	result := f(a, &value)

	it = &a.slots[key.Slot]
	it.value = value
	it.occupied = true
	return result, true
}

// Len returns the number of live values in the arena.
func (a *Arena[T]) Len() int {
	n := 0
	for i := range a.slots {
		if a.slots[i].occupied {
			n++
		}
	}
	return n
}
