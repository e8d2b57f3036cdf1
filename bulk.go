// Package map2d: bulk merge operations.
//
// All bulk operations overwrite on key collision and return the container
// itself for chaining. They are not transactional: when a malformed source
// key fails validation mid-iteration, entries already written remain.

package map2d

// PutAll copies every entry of src into m, overwriting on collision.
// Entries stored in a Map2D have already passed key validation, so this
// operation cannot fail. src may be m itself or nil (both no-ops beyond
// self-overwrite). Returns the container itself for chaining.
// Complexity: O(entries of src).
func (m *Map2D[R, C, V]) PutAll(src *Map2D[R, C, V]) *Map2D[R, C, V] {
	if src == nil || src == m {
		return m
	}
	for row, inner := range src.rows {
		dst, ok := m.rows[row]
		if !ok {
			dst = make(map[C]V, len(inner))
			m.rows[row] = dst
		}
		for col, value := range inner {
			if _, exists := dst[col]; !exists {
				m.entries++
			}
			dst[col] = value
		}
	}

	return m
}

// PutAllToRow stores every (col, value) entry of src at (row, col),
// overwriting on collision. Returns ErrNilKey if row — or any source
// column key — is nil; entries written before such a failure remain.
// Returns the container itself for chaining. Complexity: O(len(src)).
func (m *Map2D[R, C, V]) PutAllToRow(src map[C]V, row R) (*Map2D[R, C, V], error) {
	if isNilKey(row) {
		return m, ErrNilKey
	}
	for col, value := range src {
		if _, _, err := m.Put(row, col, value); err != nil {
			return m, err
		}
	}

	return m, nil
}

// PutAllToColumn stores every (row, value) entry of src at (row, col),
// overwriting on collision. Returns ErrNilKey if col — or any source row
// key — is nil; entries written before such a failure remain.
// Returns the container itself for chaining. Complexity: O(len(src)).
func (m *Map2D[R, C, V]) PutAllToColumn(src map[R]V, col C) (*Map2D[R, C, V], error) {
	if isNilKey(col) {
		return m, ErrNilKey
	}
	for row, value := range src {
		if _, _, err := m.Put(row, col, value); err != nil {
			return m, err
		}
	}

	return m, nil
}
