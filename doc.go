/*
Package probemap provides a hash map and a hash set with a fixed number of
slots, built on open addressing with linear probing.

	m, err := probemap.NewMap[string, int](10)
	if err != nil {
		log.Fatal(err)
	}

	_ = m.Set("hello", 5)
	v, ok := m.Get("hello")

The capacity is set once and never changes: inserting a new key into a full
map returns ErrTableFull. Deleting a key leaves a tombstone, so keys that were
probed past it stay reachable. Tombstones are reused by later inserts and can
be dropped with Compact.

Iteration order is the slot order, which depends on the hash function, the
capacity and the history of inserts and deletes.
*/
package probemap
