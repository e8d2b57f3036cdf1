// Package map2d: type-converting copies.

package map2d

// CopyWithConversion builds a new container by applying rowFn, colFn, and
// valFn to every stored (row, col, value) triple of src and inserting the
// transformed triple into the result. The source is not mutated.
//
// It is a package-level function because Go methods cannot introduce new
// type parameters.
//
// Collision policy: when two distinct source keys convert to the same
// (R2, C2) pair, the result holds exactly one value for that pair — the
// survivor is last-write-wins under Go's unspecified map iteration order,
// so which source entry wins is an implementation choice, not a contract.
// The result's Len is therefore at most src.Len().
//
// Returns ErrNilFunc when any conversion function is nil, and ErrNilKey
// when a converted row or column key is nil (the result then holds the
// entries converted before the failure). The conversion functions must be
// pure: correctness does not tolerate side effects or order dependence.
// Complexity: O(entries of src).
func CopyWithConversion[R comparable, C comparable, V any, R2 comparable, C2 comparable, V2 any](
	src *Map2D[R, C, V],
	rowFn func(R) R2,
	colFn func(C) C2,
	valFn func(V) V2,
) (*Map2D[R2, C2, V2], error) {
	if rowFn == nil || colFn == nil || valFn == nil {
		return nil, ErrNilFunc
	}

	out := New[R2, C2, V2](WithRowCapacity(len(src.rows)))
	for row, inner := range src.rows {
		row2 := rowFn(row)
		for col, value := range inner {
			if _, _, err := out.Put(row2, colFn(col), valFn(value)); err != nil {
				return out, err
			}
		}
	}

	return out, nil
}
