package map2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matiroza/map2d"
)

// TestMap2D_PutAll verifies whole-container merge with overwrite on
// collision, Len accounting, and source independence afterwards.
func TestMap2D_PutAll(t *testing.T) {
	dst := seedScenario(t) // {r1c1:10, r1c2:20, r2c1:30}

	src := map2d.New[string, string, int]()
	mustPut(t, src, rowR1, colC1, 11) // collides with dst
	mustPut(t, src, rowR3, colC2, 40) // fresh row

	self := dst.PutAll(src)
	assert.Same(t, dst, self, "PutAll must return the container itself")
	assert.Equal(t, 4, dst.Len(), "one overwrite, one fresh entry")

	got, _ := dst.Get(rowR1, colC1)
	assert.Equal(t, 11, got, "source value wins on collision")
	got, _ = dst.Get(rowR3, colC2)
	assert.Equal(t, 40, got)

	// Merged entries are copies: mutating src must not move dst.
	mustPut(t, src, rowR3, colC2, -1)
	got, _ = dst.Get(rowR3, colC2)
	assert.Equal(t, 40, got)
}

// TestMap2D_PutAllDegenerate verifies nil-source and self-merge no-ops.
func TestMap2D_PutAllDegenerate(t *testing.T) {
	m := seedScenario(t)

	assert.Same(t, m, m.PutAll(nil))
	assert.Equal(t, 3, m.Len())

	assert.Same(t, m, m.PutAll(m), "self-merge must not corrupt the container")
	assert.Equal(t, 3, m.Len())
}

// TestMap2D_PutAllToRow verifies the contract scenario: merging
// {a:1, b:2} under row "x" on an empty container.
func TestMap2D_PutAllToRow(t *testing.T) {
	m := map2d.New[string, string, int]()

	self, err := m.PutAllToRow(map[string]int{"a": 1, "b": 2}, "x")
	require.NoError(t, err)
	assert.Same(t, m, self)

	got, _ := m.Get("x", "a")
	assert.Equal(t, 1, got)
	got, _ = m.Get("x", "b")
	assert.Equal(t, 2, got)
	assert.Equal(t, 2, m.Len())

	// Colliding column overwrites, fresh column extends.
	_, err = m.PutAllToRow(map[string]int{"a": 9, "c": 3}, "x")
	require.NoError(t, err)
	got, _ = m.Get("x", "a")
	assert.Equal(t, 9, got)
	assert.Equal(t, 3, m.Len())
}

// TestMap2D_PutAllToColumn verifies each source key becomes the row part
// of an entry under the fixed column.
func TestMap2D_PutAllToColumn(t *testing.T) {
	m := seedScenario(t)

	_, err := m.PutAllToColumn(map[string]int{rowR1: 99, rowR3: 70}, colC1)
	require.NoError(t, err)

	got, _ := m.Get(rowR1, colC1)
	assert.Equal(t, 99, got, "existing (r1,c1) overwritten")
	got, _ = m.Get(rowR3, colC1)
	assert.Equal(t, 70, got, "fresh row created")
	assert.Equal(t, 4, m.Len())
}

// TestMap2D_BulkNilKey verifies key validation on bulk writes: a nil fixed
// key is rejected up front, and a nil source key fails mid-iteration
// without rolling back entries already written.
func TestMap2D_BulkNilKey(t *testing.T) {
	m := map2d.New[*string, string, int]()
	_, err := m.PutAllToRow(map[string]int{"a": 1}, nil)
	assert.ErrorIs(t, err, map2d.ErrNilKey, "nil fixed row key must be rejected")
	assert.True(t, m.IsEmpty())

	n := map2d.New[string, *string, int]()
	_, err = n.PutAllToColumn(map[string]int{"r": 1}, nil)
	assert.ErrorIs(t, err, map2d.ErrNilKey, "nil fixed column key must be rejected")

	// Non-transactional: a single poisoned source key (nil *string column)
	// fails the call, but valid entries from the same source may remain.
	p := map2d.New[string, *string, int]()
	_, err = p.PutAllToRow(map[*string]int{nil: 1}, "x")
	assert.ErrorIs(t, err, map2d.ErrNilKey)
	assert.True(t, p.IsEmpty(), "the only source key was poisoned, nothing stored")

	q := map2d.New[string, *string, int]()
	_, err = q.PutAllToRow(map[*string]int{nil: 1, ptr("ok"): 2}, "x")
	assert.ErrorIs(t, err, map2d.ErrNilKey)
	assert.LessOrEqual(t, q.Len(), 1, "no rollback, but nothing beyond the valid entry")
}
