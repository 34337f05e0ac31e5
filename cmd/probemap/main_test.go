package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homier/probemap"
)

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, runDemo(&buf, 10))

	out := buf.String()
	assert.Contains(t, out, "\thello: 5,\n")
	assert.Contains(t, out, "\th: [1 2 3],\n")
	assert.Contains(t, out, "\t[1 3 4]: 2,\n")
	assert.Contains(t, out, "probemap: key not found: hwe\n")
	assert.Contains(t, out, "<nil> false\n")
	assert.Contains(t, out, "true false\n")
	assert.Contains(t, out, "failed to set key 2: probemap: table is full\n")
	assert.Contains(t, out, "true true\n")
	assert.Contains(t, out, "{\n\t1: World,\n}\n")
	assert.Contains(t, out, "{\n}\n")
}

func TestRunDemo_InvalidCapacity(t *testing.T) {
	err := runDemo(&bytes.Buffer{}, 0)
	require.ErrorIs(t, err, probemap.ErrInvalidCapacity)
}

func TestRunFill(t *testing.T) {
	for _, hash := range []string{"maphash", "xxhash"} {
		t.Run(hash, func(t *testing.T) {
			var buf bytes.Buffer

			err := runFill(&buf, &config{
				Capacity:    64,
				Hash:        hash,
				DeleteRatio: 0.5,
				Bins:        4,
			})
			require.NoError(t, err)

			out := buf.String()
			assert.Contains(t, out, "size:        32/64")
			assert.Contains(t, out, "tombstones:  32")
			assert.Contains(t, out, "probe distances:")
		})
	}
}

func TestRunFill_Compact(t *testing.T) {
	var buf bytes.Buffer

	err := runFill(&buf, &config{
		Capacity:    16,
		DeleteRatio: 1,
		Compact:     true,
		Bins:        4,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "size:        0/16")
	assert.Contains(t, out, "tombstones:  0 ")
	assert.True(t, strings.HasSuffix(out, "at their natural slot or at the same distance\n"))
}

func TestRunFill_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config
	}{
		{"unknown hash", config{Capacity: 8, Hash: "md5", Bins: 4}},
		{"negative ratio", config{Capacity: 8, DeleteRatio: -1, Bins: 4}},
		{"no bins", config{Capacity: 8}},
		{"zero capacity", config{Bins: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, runFill(&bytes.Buffer{}, &tt.cfg))
		})
	}
}
