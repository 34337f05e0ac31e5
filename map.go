package probemap

import (
	"fmt"
	"iter"
	"strings"
)

// Map is a hash map with a fixed number of slots. It uses open addressing
// with linear probing: a key is stored at hash(key) mod capacity, or at the
// first free slot after it, wrapping around at the end.
//
// The map never grows. It holds at most Capacity() keys, inserting one more
// distinct key fails with ErrTableFull. Deleted slots are marked with
// tombstones, which are reused by inserts and dropped by Compact.
//
// A Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	table[K, V]
}

// Returns a new map with exactly `capacity` slots.
func NewMap[K comparable, V any](capacity int, opts ...Option[K, V]) (*Map[K, V], error) {
	var m Map[K, V]
	if err := m.init(capacity, opts...); err != nil {
		return nil, err
	}

	return &m, nil
}

// Like NewMap, but panics on invalid capacity.
func MustNewMap[K comparable, V any](capacity int, opts ...Option[K, V]) *Map[K, V] {
	m, err := NewMap(capacity, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// Returns the value of the key and whether it's present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

// At returns the value of the key, or ErrKeyNotFound if it's not present.
func (m *Map[K, V]) At(key K) (V, error) {
	v, ok := m.get(key)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return v, nil
}

// Checks whether a key is in the map.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.find(key)
	return ok
}

// Sets the value of the key, inserting the key if it's new.
// Returns ErrTableFull if the key is new and there's no free slot left.
func (m *Map[K, V]) Set(key K, value V) error {
	return m.set(key, value)
}

// Update is an alias for Set.
func (m *Map[K, V]) Update(key K, value V) error {
	return m.set(key, value)
}

// Puts a key in the map, unless it's already there.
// Returns whether a key is new.
func (m *Map[K, V]) Put(key K, value V) (bool, error) {
	return m.put(key, value)
}

// Deletes a key from the map. Returns false if the key was not present.
func (m *Map[K, V]) Delete(key K) bool {
	return m.delete(key)
}

// Removes all keys. Capacity is unchanged.
func (m *Map[K, V]) Clear() {
	m.Reset()
}

// Number of keys in the map.
func (m *Map[K, V]) Len() int {
	return int(m.size)
}

// Number of slots, which is also the maximum number of keys.
func (m *Map[K, V]) Capacity() int {
	return int(m.capacity)
}

// All yields key-value pairs in slot order, not in insertion order.
// Two maps with the same contents but different capacities or histories
// may yield them in a different order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.all()
}

// Keys yields keys in slot order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.all() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields values in slot order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.all() {
			if !yield(v) {
				return
			}
		}
	}
}

// ToMap copies the contents into a builtin map.
func (m *Map[K, V]) ToMap() map[K]V {
	res := make(map[K]V, m.size)
	for k, v := range m.all() {
		res[k] = v
	}

	return res
}

func (m *Map[K, V]) Stats() Stats {
	return m.stats()
}

// ProbeDistances returns, for every key in slot order, how far it's stored
// from its natural slot.
func (m *Map[K, V]) ProbeDistances() []int {
	return m.probeDistances()
}

// String renders the map as `key: value,` lines in slot order.
func (m *Map[K, V]) String() string {
	var b strings.Builder

	b.WriteString("{\n")
	for k, v := range m.all() {
		fmt.Fprintf(&b, "\t%v: %v,\n", k, v)
	}
	b.WriteString("}")

	return b.String()
}
