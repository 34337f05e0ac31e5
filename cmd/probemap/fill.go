package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/homier/probemap"
)

const histogramWidth = 40

func hashOptions(name string) ([]probemap.Option[uuid.UUID, int], error) {
	switch name {
	case "", "maphash":
		return nil, nil
	case "xxhash":
		return []probemap.Option[uuid.UUID, int]{
			probemap.WithHashFunc[uuid.UUID, int](probemap.UUIDHashFunc[uuid.UUID]()),
		}, nil
	default:
		return nil, fmt.Errorf("unknown hash function %q", name)
	}
}

func runFill(w io.Writer, cfg *config) error {
	if cfg.DeleteRatio < 0 || cfg.DeleteRatio > 1 {
		return fmt.Errorf("delete ratio must be within [0, 1], got %v", cfg.DeleteRatio)
	}

	if cfg.Bins < 1 {
		return fmt.Errorf("number of bins must be positive, got %d", cfg.Bins)
	}

	opts, err := hashOptions(cfg.Hash)
	if err != nil {
		return err
	}

	m, err := probemap.NewMap(cfg.Capacity, opts...)
	if err != nil {
		return fmt.Errorf("failed to create map: %w", err)
	}

	keys := make([]uuid.UUID, 0, cfg.Capacity)

	for {
		key := uuid.New()

		if err := m.Set(key, len(keys)); err != nil {
			if !errors.Is(err, probemap.ErrTableFull) {
				return err
			}

			log.WithField("keys", len(keys)).Debug("map is full")
			break
		}

		keys = append(keys, key)
	}

	toDelete := int(float64(len(keys)) * cfg.DeleteRatio)
	for _, key := range keys[:toDelete] {
		m.Delete(key)
	}

	log.WithFields(log.Fields{
		"inserted": len(keys),
		"deleted":  toDelete,
	}).Info("filled map")

	if cfg.Compact {
		m.Compact()
		log.Debug("compacted map")
	}

	printStats(w, m.Stats())

	return printProbeHistogram(w, m.ProbeDistances(), cfg.Bins)
}

func printStats(w io.Writer, s probemap.Stats) {
	fmt.Fprintf(w, "size:        %d/%d (load factor %.3f)\n", s.Size, s.Capacity, s.LoadFactor)
	fmt.Fprintf(w, "tombstones:  %d (%.3f of capacity)\n", s.Tombstones, s.TombstonesCapacityRatio)
	fmt.Fprintf(w, "max probe:   %d\n", s.MaxProbeDistance)
}

func printProbeHistogram(w io.Writer, distances []int, bins int) error {
	var (
		values = make([]float64, 0, len(distances))
		spread bool
	)

	for _, d := range distances {
		values = append(values, float64(d))
		spread = spread || d != distances[0]
	}

	if !spread {
		// A histogram of a single value has no width.
		fmt.Fprintf(w, "all %d keys are at their natural slot or at the same distance\n", len(values))
		return nil
	}

	fmt.Fprintln(w, "probe distances:")

	h := histogram.Hist(bins, values)

	return histogram.Fprint(w, h, histogram.Linear(histogramWidth))
}
