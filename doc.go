// Package map2d provides a generic two-dimensional associative container:
// a mapping keyed by an ordered (row key, column key) pair, with row- and
// column-oriented snapshot views, bulk merge operations, and
// type-converting copies.
//
// What:
//
//   - Map2D[R, C, V] indexes values by two independent axes, like a sparse
//     matrix or a multi-level lookup table, without committing to a single
//     composite key.
//   - Backed by a nested map rows[R]map[C]V with lazy inner allocation and
//     prune-on-delete, plus an O(1) entry counter.
//   - Views (RowView, ColumnView, RowMapView, ColumnMapView) are
//     materialized snapshots: later mutation of the container never leaks
//     into a previously returned view, and vice versa.
//   - Bulk operations (PutAll, PutAllToRow, PutAllToColumn) merge with
//     last-write-wins overwrite semantics and are not transactional.
//   - CopyWithConversion rebuilds the container under row/column/value
//     transformations; key collisions after conversion resolve to a single
//     surviving value (implementation's choice, see the function docs).
//
// Why:
//
//   - Sparse matrices: store only occupied (row, col) cells.
//   - Routing / pricing tables: look up by (origin, destination).
//   - Pivoting: transpose a row-major dataset to column-major in one call.
//
// Complexity:
//
//   - Put / Get / Remove / HasKey / HasRow: O(1) amortized.
//   - ColumnView / HasColumn / HasValue: O(rows) or O(entries) scans,
//     since columns are not a top-level index.
//   - RowMapView / ColumnMapView / Clone / CopyWithConversion: O(entries).
//
// Concurrency:
//
//   - Map2D is not internally synchronized. Callers needing concurrent
//     access must wrap every call in external mutual exclusion.
//
// Errors:
//
//   - ErrNilKey    — nil row or column key passed to a write.
//   - ErrNilTarget — nil destination map passed to FillMapFromRow/Column.
//   - ErrNilFunc   — nil conversion function passed to CopyWithConversion.
//
// Lookups on absent keys are never errors: Get and friends report
// absence comma-ok style.
package map2d
