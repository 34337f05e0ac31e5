package probemap

const (
	slotEmpty   = 0x80
	slotFull    = 0x01
	slotDeleted = 0xFE
)

type slot[K comparable, V any] struct {
	// Control byte: slotEmpty, slotFull or slotDeleted.
	// Key and value are only meaningful when the slot is full.
	ctrl uint8

	key   K
	value V
}

func (s *slot[K, V]) occupy(key K, value V) {
	s.ctrl = slotFull
	s.key = key
	s.value = value
}

// clear drops the key and value so they can be garbage collected,
// and marks the slot with the given control byte.
func (s *slot[K, V]) clear(ctrl uint8) {
	var zero slot[K, V]

	*s = zero
	s.ctrl = ctrl
}
