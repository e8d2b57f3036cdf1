// Package map2d: central type, sentinel errors, options, and constructor.
//
// This file declares Map2D, Option, the sentinel errors, and New.
// The backing store is a nested map rows[R]map[C]V; inner maps are
// allocated lazily on first write to a row and pruned when their last
// entry is removed, so an outer entry always owns a non-empty inner map.

package map2d

import (
	"errors"
	"reflect"
)

// Sentinel errors for map2d operations.
var (
	// ErrNilKey indicates a nil row or column key was passed to a write.
	ErrNilKey = errors.New("map2d: nil row or column key")

	// ErrNilTarget indicates a nil destination map was passed to a fill operation.
	ErrNilTarget = errors.New("map2d: nil target map")

	// ErrNilFunc indicates a nil conversion function was passed to CopyWithConversion.
	ErrNilFunc = errors.New("map2d: nil conversion function")
)

// Map2D is a two-dimensional associative container mapping an ordered
// (row key, column key) pair to a value.
//
// It is not internally synchronized; callers requiring concurrent access
// must provide external mutual exclusion. Iteration order of views, keys,
// and Range is unspecified.
type Map2D[R comparable, C comparable, V any] struct {
	rows    map[R]map[C]V // row key → (column key → value); inner maps never empty
	entries int           // running total of stored (row, col) pairs
	colCap  int           // capacity hint for newly allocated inner maps
}

// Option configures a Map2D before first use.
type Option func(*config)

// config collects constructor tuning knobs.
type config struct {
	rowCap int
	colCap int
}

// WithRowCapacity pre-sizes the outer row map for n rows.
func WithRowCapacity(n int) Option {
	return func(c *config) { c.rowCap = n }
}

// WithColumnCapacity pre-sizes each inner column map for n entries
// at the moment it is allocated.
func WithColumnCapacity(n int) Option {
	return func(c *config) { c.colCap = n }
}

// New creates an empty Map2D with the given options.
// Complexity: O(1).
func New[R comparable, C comparable, V any](opts ...Option) *Map2D[R, C, V] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Map2D[R, C, V]{
		rows:   make(map[R]map[C]V, cfg.rowCap),
		colCap: cfg.colCap,
	}
}

// newInner allocates an inner column map honoring the capacity hint.
func (m *Map2D[R, C, V]) newInner() map[C]V {
	return make(map[C]V, m.colCap)
}

// isNilKey reports whether k is a nil value of a nilable comparable kind
// (pointer, interface, channel). Value kinds can never be nil and always
// pass. This is the write-side key validation behind ErrNilKey.
func isNilKey(k any) bool {
	if k == nil {
		return true
	}
	switch rv := reflect.ValueOf(k); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}

	return false
}
