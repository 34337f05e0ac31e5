package probemap

type Stats struct {
	Size                    int
	Capacity                int
	Tombstones              int
	LoadFactor              float32
	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32

	// Longest distance between a key's natural slot and the slot it's stored in.
	MaxProbeDistance int
}

func (t *table[K, V]) stats() Stats {
	s := Stats{
		Size:       int(t.size),
		Capacity:   int(t.capacity),
		Tombstones: int(t.tombstones),
		LoadFactor: float32(t.size) / float32(t.capacity),

		TombstonesCapacityRatio: float32(t.tombstones) / float32(t.capacity),
	}

	if t.size > 0 {
		s.TombstonesSizeRatio = float32(t.tombstones) / float32(t.size)
	}

	for _, d := range t.probeDistances() {
		s.MaxProbeDistance = max(s.MaxProbeDistance, d)
	}

	return s
}

// probeDistances returns the probe distance of every occupied slot, in physical order.
func (t *table[K, V]) probeDistances() []int {
	distances := make([]int, 0, t.size)

	for i := range t.slots {
		if t.slots[i].ctrl != slotFull {
			continue
		}

		distances = append(distances, int(t.probeDistance(uintptr(i))))
	}

	return distances
}
