package probemap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

type HashFunc[K comparable] func(K) uint64

func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// StringHashFunc hashes string keys with xxhash.
// Unlike the default hash function it's unseeded, so the slot layout
// is the same across runs and processes.
func StringHashFunc[K ~string]() HashFunc[K] {
	return func(k K) uint64 {
		return xxhash.Sum64String(string(k))
	}
}

// UUIDHashFunc hashes 16-byte keys (e.g. uuid.UUID) with xxhash.
func UUIDHashFunc[K ~[16]byte]() HashFunc[K] {
	return func(k K) uint64 {
		b := [16]byte(k)
		return xxhash.Sum64(b[:])
	}
}

// startIndex returns the natural slot of the hash in a table of the given capacity.
func startIndex(hash uint64, capacity uintptr) uintptr {
	return uintptr(hash % uint64(capacity))
}
