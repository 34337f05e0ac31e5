package probemap

import "errors"

var (
	// Capacity passed to a constructor is not a positive number.
	ErrInvalidCapacity = errors.New("probemap: capacity must be positive")

	// Every slot is occupied by another key, a new key can't be placed.
	// Delete some keys or pick a larger capacity up front.
	ErrTableFull = errors.New("probemap: table is full")

	// Returned by At for a key that is not present.
	ErrKeyNotFound = errors.New("probemap: key not found")
)
