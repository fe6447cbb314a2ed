// Matrix dense storage: a flat-slice, kind-tagged array in the spirit of
// the teacher's matrix/dense.go, generalized from float64-only to the
// full ElementKind set (spec §4.1).
package storage

import (
	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/dtype"
	"gonum.org/v1/gonum/mat"
)

// denseMatrix is a contiguous, major-axis-tagged array of a single
// element kind. Indexing always goes through majorIndex so the same flat
// buffer serves both row-major and column-major declared layouts without
// a transposing copy (spec §4.1: layout is metadata, not memory shape).
type denseMatrix struct {
	kind  dtype.ElementKind
	rows  int
	cols  int
	major dtype.Major
	data  interface{} // flat slice, length rows*cols
}

func newDenseMatrix(kind dtype.ElementKind, rows, cols int, major dtype.Major) *denseMatrix {
	return &denseMatrix{kind: kind, rows: rows, cols: cols, major: major, data: makeElementSlice(kind, rows*cols)}
}

// majorIndex computes the flat offset of logical (row, col) given the
// matrix's declared major axis.
func (d *denseMatrix) majorIndex(row, col int) int {
	if d.major == dtype.RowMajor {
		return row*d.cols + col
	}
	return col*d.rows + row
}

func (d *denseMatrix) At(row, col int) (interface{}, error) {
	return elementAt(d.kind, d.data, d.majorIndex(row, col))
}

func (d *denseMatrix) Float64At(row, col int) (float64, error) {
	return elementFloat64At(d.kind, d.data, d.majorIndex(row, col))
}

func (d *denseMatrix) Set(row, col int, value interface{}) error {
	return setElementAt(d.kind, d.data, d.majorIndex(row, col), value)
}

// gonum returns a zero-copy gonum mat.Matrix view over this dense matrix's
// backing array. Only valid for Float64 matrices: gonum's mat.Dense is
// always row-major internally, so a column-major backing array is wrapped
// as a (cols, rows) mat.Dense and returned through mat.Dense.T(), which
// is still zero-copy and has the logical (rows, cols) shape.
func (d *denseMatrix) gonum() (mat.Matrix, error) {
	if d.kind != dtype.Float64 {
		return nil, daferr.TypeMismatchf("dense matrix gonum view", d.kind.String(), dtype.Float64.String())
	}
	values := d.data.([]float64)
	if d.major == dtype.RowMajor {
		return mat.NewDense(d.rows, d.cols, values), nil
	}
	return mat.NewDense(d.cols, d.rows, values).T(), nil
}

// relayout materializes the transpose of d: shape swaps (rows become cols
// and vice versa), major axis flips, and relayout(d)[j,i] == d[i,j] (spec
// §8 invariant 9). Its resulting layout is exactly d's layout run through
// dtype.MatrixLayout.Transpose() — relayout is the materialized copy that
// metadata-only descriptor describes.
func (d *denseMatrix) relayout() *denseMatrix {
	out := newDenseMatrix(d.kind, d.cols, d.rows, d.major.Flip())
	for i := 0; i < d.rows; i++ {
		for j := 0; j < d.cols; j++ {
			value, _ := d.At(i, j) // d was built by this package; At cannot fail here
			_ = out.Set(j, i, value)
		}
	}
	return out
}

func (d *denseMatrix) clone() *denseMatrix {
	out := newDenseMatrix(d.kind, d.rows, d.cols, d.major)
	for i := 0; i < d.rows*d.cols; i++ {
		value, _ := elementAt(d.kind, d.data, i)
		_ = setElementAt(d.kind, out.data, i, value)
	}
	return out
}
