// Package map2d: entry-level operations on the Map2D container.
//
// This file provides the single-entry lifecycle (Put/Get/Remove),
// counting, membership queries, iteration, and cloning. Row-local
// operations are O(1) amortized; column- and value-oriented queries scan,
// since columns are not a top-level index.

package map2d

import "reflect"

// Put stores value at (row, col), overwriting any existing entry.
// The inner column map is created on demand.
//
// Returns the previously stored value and whether one existed, in the
// manner of sync.Map.Swap. Returns ErrNilKey if row or col is a nil
// pointer, interface, or channel key.
// Complexity: O(1) amortized.
func (m *Map2D[R, C, V]) Put(row R, col C, value V) (prev V, replaced bool, err error) {
	if isNilKey(row) || isNilKey(col) {
		return prev, false, ErrNilKey
	}

	inner, ok := m.rows[row]
	if !ok {
		inner = m.newInner()
		m.rows[row] = inner
	}

	prev, replaced = inner[col]
	inner[col] = value
	if !replaced {
		m.entries++
	}

	return prev, replaced, nil
}

// Get returns the value stored at (row, col), comma-ok style.
// Absent keys are not an error: ok is false and value is the zero V.
// Complexity: O(1).
func (m *Map2D[R, C, V]) Get(row R, col C) (V, bool) {
	value, ok := m.rows[row][col]

	return value, ok
}

// GetOrDefault returns the value stored at (row, col), or def exactly when
// no entry exists there. A stored value that happens to equal def is
// returned as-is, not substituted.
// Complexity: O(1).
func (m *Map2D[R, C, V]) GetOrDefault(row R, col C, def V) V {
	if value, ok := m.rows[row][col]; ok {
		return value
	}

	return def
}

// Remove deletes the entry at (row, col) if present, returning the removed
// value comma-ok style. Removing an absent key is a no-op with ok=false.
// When the row's last entry is removed, the row itself is pruned so that
// HasRow reports false.
// Complexity: O(1).
func (m *Map2D[R, C, V]) Remove(row R, col C) (V, bool) {
	inner, ok := m.rows[row]
	if !ok {
		var zero V
		return zero, false
	}

	prev, ok := inner[col]
	if !ok {
		var zero V
		return zero, false
	}

	delete(inner, col)
	m.entries--
	if len(inner) == 0 {
		delete(m.rows, row)
	}

	return prev, true
}

// Len returns the total number of stored (row, col) entries.
// Overwrites do not change Len. Complexity: O(1).
func (m *Map2D[R, C, V]) Len() int {
	return m.entries
}

// IsEmpty reports whether the container holds no entries. Complexity: O(1).
func (m *Map2D[R, C, V]) IsEmpty() bool {
	return m.entries == 0
}

// NonEmpty reports whether the container holds at least one entry.
// Complexity: O(1).
func (m *Map2D[R, C, V]) NonEmpty() bool {
	return m.entries != 0
}

// Clear removes all rows and entries, preserving configuration.
// Complexity: O(1) (old maps are left to the garbage collector).
func (m *Map2D[R, C, V]) Clear() {
	m.rows = make(map[R]map[C]V)
	m.entries = 0
}

// HasKey reports whether an entry exists at (row, col). Complexity: O(1).
func (m *Map2D[R, C, V]) HasKey(row R, col C) bool {
	_, ok := m.rows[row][col]

	return ok
}

// HasRow reports whether at least one entry exists within row.
// Relies on the prune-on-delete invariant: a present row is never empty.
// Complexity: O(1).
func (m *Map2D[R, C, V]) HasRow(row R) bool {
	_, ok := m.rows[row]

	return ok
}

// HasColumn reports whether at least one entry exists within col.
// Columns are not a top-level index, so this scans every row.
// Complexity: O(rows).
func (m *Map2D[R, C, V]) HasColumn(col C) bool {
	for _, inner := range m.rows {
		if _, ok := inner[col]; ok {
			return true
		}
	}

	return false
}

// HasValue reports whether any stored value equals value. Equality is
// structural (reflect.DeepEqual), since V carries no comparable
// constraint. Complexity: O(entries).
func (m *Map2D[R, C, V]) HasValue(value V) bool {
	for _, inner := range m.rows {
		for _, stored := range inner {
			if reflect.DeepEqual(stored, value) {
				return true
			}
		}
	}

	return false
}

// RowKeys returns a snapshot slice of all row keys, in unspecified order.
// Complexity: O(rows).
func (m *Map2D[R, C, V]) RowKeys() []R {
	keys := make([]R, 0, len(m.rows))
	for row := range m.rows {
		keys = append(keys, row)
	}

	return keys
}

// ColumnKeys returns a snapshot slice of all distinct column keys, in
// unspecified order. Complexity: O(entries).
func (m *Map2D[R, C, V]) ColumnKeys() []C {
	seen := make(map[C]struct{})
	for _, inner := range m.rows {
		for col := range inner {
			seen[col] = struct{}{}
		}
	}
	keys := make([]C, 0, len(seen))
	for col := range seen {
		keys = append(keys, col)
	}

	return keys
}

// Range calls fn for every stored (row, col, value) triple until fn
// returns false or the entries are exhausted. Iteration order is
// unspecified. fn must not mutate the container. Complexity: O(entries).
func (m *Map2D[R, C, V]) Range(fn func(row R, col C, value V) bool) {
	for row, inner := range m.rows {
		for col, value := range inner {
			if !fn(row, col, value) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the container: mutating either side after
// the call never affects the other. The column-capacity hint is carried
// over. Complexity: O(entries).
func (m *Map2D[R, C, V]) Clone() *Map2D[R, C, V] {
	clone := &Map2D[R, C, V]{
		rows:    make(map[R]map[C]V, len(m.rows)),
		entries: m.entries,
		colCap:  m.colCap,
	}
	for row, inner := range m.rows {
		copied := make(map[C]V, len(inner))
		for col, value := range inner {
			copied[col] = value
		}
		clone.rows[row] = copied
	}

	return clone
}
