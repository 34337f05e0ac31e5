package probemap

import "iter"

// Set is a set-like data structure on top of the same fixed-capacity table
// as Map. It doesn't store values, only keys.
type Set[K comparable] struct {
	table[K, struct{}]
}

type SetOption[K comparable] = Option[K, struct{}]

func NewSet[K comparable](capacity int, opts ...SetOption[K]) (*Set[K], error) {
	var ss Set[K]
	if err := ss.init(capacity, opts...); err != nil {
		return nil, err
	}

	return &ss, nil
}

func MustNewSet[K comparable](capacity int, opts ...SetOption[K]) *Set[K] {
	ss, err := NewSet(capacity, opts...)
	if err != nil {
		panic(err)
	}

	return ss
}

func (ss *Set[K]) Has(key K) bool {
	_, ok := ss.find(key)
	return ok
}

// Puts a key in the set.
// Returns whether a key is new, or ErrTableFull if there's no slot left for it.
func (ss *Set[K]) Put(key K) (bool, error) {
	return ss.put(key, struct{}{})
}

func (ss *Set[K]) Delete(key K) bool {
	return ss.delete(key)
}

func (ss *Set[K]) Len() int {
	return int(ss.size)
}

func (ss *Set[K]) Capacity() int {
	return int(ss.capacity)
}

// All yields keys in slot order.
func (ss *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range ss.all() {
			if !yield(k) {
				return
			}
		}
	}
}

func (ss *Set[K]) Stats() Stats {
	return ss.stats()
}
