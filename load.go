package probemap

import (
	"iter"

	"go.uber.org/multierr"
)

// SetAll sets every pair of the sequence. It doesn't stop on failure,
// the returned error combines the failures of all keys that could not be set.
func (m *Map[K, V]) SetAll(seq iter.Seq2[K, V]) error {
	var result error

	for k, v := range seq {
		if err := m.set(k, v); err != nil {
			result = multierr.Append(result, err)
		}
	}

	return result
}
