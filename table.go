package probemap

import (
	"fmt"
	"hash/maphash"
	"iter"
)

type table[K comparable, V any] struct {
	slots []slot[K, V]

	capacity   uintptr
	size       uintptr
	tombstones uintptr

	hashFunc HashFunc[K]

	// Deleted slots are reset to empty instead of being marked
	// with a tombstone. Lookups may miss keys afterwards, see WithLegacyDelete.
	legacyDelete bool

	emptyV V
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// WithLegacyDelete makes Delete reset the slot to empty instead of leaving
// a tombstone. A key that was placed past the deleted slot by probing
// becomes unreachable until Compact is called, and setting it again stores
// a second copy. Use it only when the exact layout of a tombstone-free
// table is required.
func WithLegacyDelete[K comparable, V any]() Option[K, V] {
	return func(t *table[K, V]) {
		t.legacyDelete = true
	}
}

func (t *table[K, V]) init(capacity int, opts ...Option[K, V]) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	t.slots = make([]slot[K, V], capacity)
	t.capacity = uintptr(capacity)

	// Initialize all control bytes to Empty
	t.Reset()

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	return nil
}

func (t *table[K, V]) next(idx uintptr) uintptr {
	idx++
	if idx == t.capacity {
		return 0
	}

	return idx
}

// find looks the key up. It skips tombstones and stops at the first
// empty slot, so a missing key costs no more than a miss in the probe chain.
func (t *table[K, V]) find(key K) (uintptr, bool) {
	idx := startIndex(t.hashFunc(key), t.capacity)

	for range t.capacity {
		s := &t.slots[idx]

		switch s.ctrl {
		case slotEmpty:
			return idx, false
		case slotFull:
			if s.key == key {
				return idx, true
			}
		}

		idx = t.next(idx)
	}

	return 0, false
}

// resolve returns the slot of the key if it's present, or the slot a new
// key must be written to otherwise: the first tombstone on the probe path,
// or the empty slot that ends it.
//
// Every slot is visited at most once, so ErrTableFull is returned only when
// all of them hold other keys.
func (t *table[K, V]) resolve(key K) (uintptr, bool, error) {
	var (
		idx = startIndex(t.hashFunc(key), t.capacity)

		reusable   uintptr
		foundReuse bool
	)

	for range t.capacity {
		s := &t.slots[idx]

		switch s.ctrl {
		case slotEmpty:
			if foundReuse {
				return reusable, false, nil
			}

			return idx, false, nil
		case slotDeleted:
			if !foundReuse {
				reusable = idx
				foundReuse = true
			}
		default:
			if s.key == key {
				return idx, true, nil
			}
		}

		idx = t.next(idx)
	}

	if foundReuse {
		return reusable, false, nil
	}

	return 0, false, ErrTableFull
}

func (t *table[K, V]) occupy(idx uintptr, key K, value V) {
	s := &t.slots[idx]
	if s.ctrl == slotDeleted {
		t.tombstones--
	}

	s.occupy(key, value)
	t.size++
}

func (t *table[K, V]) get(key K) (V, bool) {
	idx, ok := t.find(key)
	if !ok {
		return t.emptyV, false
	}

	return t.slots[idx].value, true
}

// set inserts the key or overwrites the value of an existing one.
func (t *table[K, V]) set(key K, value V) error {
	idx, found, err := t.resolve(key)
	if err != nil {
		return fmt.Errorf("failed to set key %v: %w", key, err)
	}

	if found {
		t.slots[idx].value = value
		return nil
	}

	t.occupy(idx, key, value)

	return nil
}

// put inserts the key only if it's not present yet.
// Returns whether the key is new.
func (t *table[K, V]) put(key K, value V) (bool, error) {
	idx, found, err := t.resolve(key)
	if err != nil {
		return false, fmt.Errorf("failed to put key %v: %w", key, err)
	}

	if found {
		return false, nil
	}

	t.occupy(idx, key, value)

	return true, nil
}

func (t *table[K, V]) delete(key K) bool {
	idx, ok := t.find(key)
	if !ok {
		return false
	}

	if t.legacyDelete {
		t.slots[idx].clear(slotEmpty)
	} else {
		// Mark as Deleted to preserve the probe chain
		t.slots[idx].clear(slotDeleted)
		t.tombstones++
	}

	t.size--

	return true
}

func (t *table[K, V]) Reset() {
	for i := range t.slots {
		t.slots[i].clear(slotEmpty)
	}

	t.size = 0
	t.tombstones = 0
}

// Compact drops all tombstones in place and moves every key as close to its
// natural slot as the probe chain allows. It also reconnects chains broken
// by deletes made with WithLegacyDelete.
func (t *table[K, V]) Compact() {
	// We first walk over the control bytes and mark every DELETED slot as
	// EMPTY and every FULL slot as DELETED. Marking the DELETED slots as
	// EMPTY drops the tombstones, but fouls up the probe invariant. Marking
	// the FULL slots as DELETED gives us a marker to locate the previously
	// FULL slots, which are reinserted one by one below.
	for i := range t.slots {
		s := &t.slots[i]

		switch s.ctrl {
		case slotFull:
			s.ctrl = slotDeleted
		case slotDeleted:
			s.clear(slotEmpty)
		}
	}

	for i := uintptr(0); i < t.capacity; i++ {
		s := &t.slots[i]

		// Only process slots we marked as Deleted (which were originally Full)
		if s.ctrl != slotDeleted {
			continue
		}

		// Reinserted slots are FULL, so the walk stops at the first EMPTY
		// or not yet processed slot. The slot `i` itself is one of the
		// latter, so the walk always terminates.
		dst := startIndex(t.hashFunc(s.key), t.capacity)
		for t.slots[dst].ctrl == slotFull {
			dst = t.next(dst)
		}

		target := &t.slots[dst]

		switch {
		case dst == i:
			s.ctrl = slotFull
		case target.ctrl == slotEmpty:
			target.occupy(s.key, s.value)
			s.clear(slotEmpty)
		default:
			// SWAP: the target holds a key that is not processed yet.
			// Keep our slot marked, so the swapped key is processed next.
			s.key, target.key = target.key, s.key
			s.value, target.value = target.value, s.value
			target.ctrl = slotFull

			i--
		}
	}

	t.tombstones = 0
}

// all yields the occupied slots in physical order.
func (t *table[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range t.slots {
			s := &t.slots[i]
			if s.ctrl != slotFull {
				continue
			}

			if !yield(s.key, s.value) {
				return
			}
		}
	}
}

// probeDistance returns how many slots the key at idx is past its natural slot.
func (t *table[K, V]) probeDistance(idx uintptr) uintptr {
	start := startIndex(t.hashFunc(t.slots[idx].key), t.capacity)
	if idx >= start {
		return idx - start
	}

	return t.capacity - start + idx
}
