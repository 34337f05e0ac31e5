package probemap

import "iter"

// Equal reports whether both maps hold the same key-value pairs.
// Slot order and capacity are ignored.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	return EqualFunc(a, b, func(v1, v2 V) bool { return v1 == v2 })
}

// EqualFunc is like Equal, but compares values with eq.
func EqualFunc[K comparable, V1, V2 any](a *Map[K, V1], b *Map[K, V2], eq func(V1, V2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	for k, v1 := range a.All() {
		v2, ok := b.Get(k)
		if !ok || !eq(v1, v2) {
			return false
		}
	}

	return true
}

// EqualLayout reports whether both maps yield the same pairs in the same slot order.
// Maps with equal contents may differ here, when collisions placed keys differently.
func EqualLayout[K, V comparable](a, b *Map[K, V]) bool {
	next, stop := iter.Pull2(b.All())
	defer stop()

	for k1, v1 := range a.All() {
		k2, v2, ok := next()
		if !ok || k1 != k2 || v1 != v2 {
			return false
		}
	}

	_, _, ok := next()

	return !ok
}
