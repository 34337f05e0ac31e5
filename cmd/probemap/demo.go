package main

import (
	"errors"
	"fmt"
	"io"
	"slices"

	log "github.com/sirupsen/logrus"

	"github.com/homier/probemap"
)

func runDemo(w io.Writer, capacity int) error {
	ht, err := probemap.NewMap[any, any](capacity)
	if err != nil {
		return fmt.Errorf("failed to create map: %w", err)
	}

	log.WithField("capacity", capacity).Debug("created demo map")

	if err := ht.SetAll(func(yield func(any, any) bool) {
		_ = yield("hello", 5) && yield("h", 7)
	}); err != nil {
		return err
	}

	fmt.Fprintln(w, ht)

	if err := ht.Set("h", []int{1, 2, 3}); err != nil {
		return err
	}

	if err := ht.Set([3]int{1, 3, 4}, 2); err != nil {
		return err
	}

	ht.Delete("hello")
	fmt.Fprintln(w, ht)

	for k, v := range ht.All() {
		fmt.Fprintf(w, "(%v, %v)\n", k, v)
	}

	fmt.Fprintln(w, slices.Collect(ht.Values()))

	if _, err := ht.At("hwe"); err != nil {
		fmt.Fprintln(w, err)
	}

	v, ok := ht.Get("hwe")
	fmt.Fprintln(w, v, ok)
	fmt.Fprintln(w, ht.Has("h"), ht.Has("a"))

	h1, err := probemap.NewMap[int, string](1)
	if err != nil {
		return err
	}

	h2, err := probemap.NewMap[int, string](5)
	if err != nil {
		return err
	}

	if err := h1.Set(1, "Hello"); err != nil {
		return err
	}

	if err := h1.Set(2, "Hell"); errors.Is(err, probemap.ErrTableFull) {
		fmt.Fprintln(w, err)
	}

	if err := h2.Set(1, "Hello"); err != nil {
		return err
	}

	fmt.Fprintln(w, probemap.Equal(h1, h2), probemap.EqualLayout(h1, h2))
	fmt.Fprintln(w, ht.Len())

	if err := h1.Update(1, "World"); err != nil {
		return err
	}

	fmt.Fprintln(w, h1)

	h2.Clear()
	fmt.Fprintln(w, h2)
	fmt.Fprintln(w, ht.ToMap())

	return nil
}
