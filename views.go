// Package map2d: snapshot views and fill operations.
//
// Every view is materialized at call time and disconnected from the live
// container: later mutation of the container does not affect a previously
// returned view, and mutating a returned map does not affect the
// container. Views are never nil — a row or column with no entries yields
// an empty map, in contrast with Get's comma-ok absence.

package map2d

// RowView returns a snapshot of the column→value mapping stored under row.
// The result is an empty, non-nil map when the row has no entries.
// Complexity: O(len(row)).
func (m *Map2D[R, C, V]) RowView(row R) map[C]V {
	inner, ok := m.rows[row]
	if !ok {
		return map[C]V{}
	}

	view := make(map[C]V, len(inner))
	for col, value := range inner {
		view[col] = value
	}

	return view
}

// ColumnView returns a snapshot of the row→value mapping for col,
// collected by scanning every row. The result is an empty, non-nil map
// when no row holds the column. Complexity: O(rows).
func (m *Map2D[R, C, V]) ColumnView(col C) map[R]V {
	view := map[R]V{}
	for row, inner := range m.rows {
		if value, ok := inner[col]; ok {
			view[row] = value
		}
	}

	return view
}

// RowMapView returns a full row-major snapshot: row → (column → value).
// The outer map is empty (non-nil) when the container is empty, and no
// inner map is shared with the live container. Complexity: O(entries).
func (m *Map2D[R, C, V]) RowMapView() map[R]map[C]V {
	view := make(map[R]map[C]V, len(m.rows))
	for row, inner := range m.rows {
		copied := make(map[C]V, len(inner))
		for col, value := range inner {
			copied[col] = value
		}
		view[row] = copied
	}

	return view
}

// ColumnMapView returns a full column-major snapshot: column → (row →
// value), built by transposing every stored entry. For every stored
// (r, c, v), RowMapView()[r][c] == v == ColumnMapView()[c][r].
// Complexity: O(entries).
func (m *Map2D[R, C, V]) ColumnMapView() map[C]map[R]V {
	view := map[C]map[R]V{}
	for row, inner := range m.rows {
		for col, value := range inner {
			byRow, ok := view[col]
			if !ok {
				byRow = map[R]V{}
				view[col] = byRow
			}
			byRow[row] = value
		}
	}

	return view
}

// FillMapFromRow writes every (column, value) entry of row into target,
// overwriting colliding keys. A no-op when the row has no entries.
// Returns the container itself for chaining, or ErrNilTarget when target
// is a nil map (writes to it would panic). Complexity: O(len(row)).
func (m *Map2D[R, C, V]) FillMapFromRow(target map[C]V, row R) (*Map2D[R, C, V], error) {
	if target == nil {
		return m, ErrNilTarget
	}
	for col, value := range m.rows[row] {
		target[col] = value
	}

	return m, nil
}

// FillMapFromColumn writes every (row, value) entry of col into target,
// overwriting colliding keys. A no-op when no row holds the column.
// Returns the container itself for chaining, or ErrNilTarget when target
// is a nil map. Complexity: O(rows).
func (m *Map2D[R, C, V]) FillMapFromColumn(target map[R]V, col C) (*Map2D[R, C, V], error) {
	if target == nil {
		return m, ErrNilTarget
	}
	for row, inner := range m.rows {
		if value, ok := inner[col]; ok {
			target[row] = value
		}
	}

	return m, nil
}
