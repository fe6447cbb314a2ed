// Matrix sparse storage: compressed per-major-axis arrays, grounded
// directly on james-bowman-sparse/compressed.go's indptr/ind/data triple,
// which is exactly the row-indices/column-offsets/values contract spec §3
// and §4.3 describe.
package storage

import (
	"github.com/james-bowman/sparse"
	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/dtype"
)

// sparseMatrix is a compressed-per-major-axis array: indptr has
// majorDim+1 entries, ind and data each have nnz entries.
type sparseMatrix struct {
	kind   dtype.ElementKind
	rows   int
	cols   int
	major  dtype.Major
	index  dtype.IndexKind // the declared on-disk/reported width of indptr/ind
	indptr []int
	ind    []int
	data   interface{} // flat typed slice, length nnz
	nnz    int
}

// majorDim returns the size of the compressed (outer) dimension: rows for
// row-major, cols for column-major.
func (s *sparseMatrix) majorDim() int {
	if s.major == dtype.RowMajor {
		return s.rows
	}
	return s.cols
}

// newEmptySparseMatrix allocates the indptr skeleton for an empty sparse
// matrix of the declared shape, ready for the "fill in place" protocol:
// the caller appends to ind/data and indptr as it fills each major slice,
// then calls seal (spec §4.3).
func newEmptySparseMatrix(kind dtype.ElementKind, rows, cols int, major dtype.Major, index dtype.IndexKind, nnz int) *sparseMatrix {
	// index governs only the width Layout() reports; in memory indptr/ind
	// are always platform int regardless of the declared index kind.
	s := &sparseMatrix{kind: kind, rows: rows, cols: cols, major: major, index: index, nnz: nnz}
	s.indptr = make([]int, s.majorDim()+1)
	s.ind = make([]int, 0, nnz)
	s.data = makeElementSlice(kind, 0)

	return s
}

// at performs a linear scan of the compressed major slice containing
// (majorIdx, minorIdx); absent entries are the kind's zero value.
func (s *sparseMatrix) at(majorIdx, minorIdx int) (interface{}, error) {
	start, end := s.indptr[majorIdx], s.indptr[majorIdx+1]
	for k := start; k < end; k++ {
		if s.ind[k] == minorIdx {
			return elementAt(s.kind, s.data, k)
		}
	}
	return elementAt(s.kind, makeElementSlice(s.kind, 1), 0) // zero value of kind
}

// At returns the element at logical (row, col), translating to
// (major, minor) per the declared major axis.
func (s *sparseMatrix) At(row, col int) (interface{}, error) {
	if s.major == dtype.RowMajor {
		return s.at(row, col)
	}
	return s.at(col, row)
}

// csrFloat64 returns a zero-copy *sparse.CSR view, valid only for Float64,
// row-major matrices.
func (s *sparseMatrix) csrFloat64() (*sparse.CSR, error) {
	if s.kind != dtype.Float64 || s.major != dtype.RowMajor {
		return nil, daferr.TypeMismatchf("sparse matrix CSR view", s.kind.String(), dtype.Float64.String())
	}
	return sparse.NewCSR(s.rows, s.cols, s.indptr, s.ind, s.data.([]float64)), nil
}

// cscFloat64 returns a zero-copy *sparse.CSC view, valid only for Float64,
// column-major matrices.
func (s *sparseMatrix) cscFloat64() (*sparse.CSC, error) {
	if s.kind != dtype.Float64 || s.major != dtype.ColumnMajor {
		return nil, daferr.TypeMismatchf("sparse matrix CSC view", s.kind.String(), dtype.Float64.String())
	}
	return sparse.NewCSC(s.rows, s.cols, s.indptr, s.ind, s.data.([]float64)), nil
}

// relayout materializes the transpose of s: shape swaps and
// relayout(s)[j,i] == s[i,j] (spec §8 invariant 9). Float64 matrices route
// through sparse.CSR/CSC's own T(), since a CSR and a CSC sharing the same
// indptr/ind/data are each other's transpose; every other kind falls back
// to a dense scan, since the vendored sparse package only carries
// float64 data.
func (s *sparseMatrix) relayout() *sparseMatrix {
	if s.kind == dtype.Float64 {
		if out, ok := s.relayoutFloat64(); ok {
			return out
		}
	}
	return s.relayoutGeneric()
}

// transposeCOO hands back s, transposed, as a COO triplet: CSR.T() (and
// CSC.T()) return a CSC (resp. CSR) sharing the same indptr/ind/data, so
// this is the library doing the actual relayout; COO is just the exported
// shape that lets us read the result back out.
func (s *sparseMatrix) transposeCOO() (*sparse.COO, bool) {
	if s.major == dtype.RowMajor {
		csr, err := s.csrFloat64()
		if err != nil {
			return nil, false
		}
		csc, ok := csr.T().(*sparse.CSC)
		if !ok {
			return nil, false
		}
		return csc.ToCOO(), true
	}
	csc, err := s.cscFloat64()
	if err != nil {
		return nil, false
	}
	csr, ok := csc.T().(*sparse.CSR)
	if !ok {
		return nil, false
	}
	return csr.ToCOO(), true
}

// relayoutFloat64 rebuilds s's compressed triple for the flipped major
// axis from transposeCOO's triplets via a counting sort, O(nnz) rather
// than the O(rows*cols) generic fallback.
func (s *sparseMatrix) relayoutFloat64() (*sparseMatrix, bool) {
	coo, ok := s.transposeCOO()
	if !ok {
		return nil, false
	}

	out := &sparseMatrix{kind: dtype.Float64, rows: s.cols, cols: s.rows, major: s.major.Flip(), index: s.index, nnz: coo.NNZ()}
	major := out.majorDim()

	majorOf := func(i, j int) int {
		if out.major == dtype.RowMajor {
			return i
		}
		return j
	}
	minorOf := func(i, j int) int {
		if out.major == dtype.RowMajor {
			return j
		}
		return i
	}

	counts := make([]int, major)
	coo.DoNonZero(func(i, j int, v float64) { counts[majorOf(i, j)]++ })

	out.indptr = make([]int, major+1)
	for m := 0; m < major; m++ {
		out.indptr[m+1] = out.indptr[m] + counts[m]
	}

	cursor := append([]int(nil), out.indptr[:major]...)
	ind := make([]int, coo.NNZ())
	data := make([]float64, coo.NNZ())
	coo.DoNonZero(func(i, j int, v float64) {
		m := majorOf(i, j)
		ind[cursor[m]] = minorOf(i, j)
		data[cursor[m]] = v
		cursor[m]++
	})
	out.ind = ind
	out.data = data

	return out, true
}

// relayoutGeneric rebuilds the compressed triple with a dense scan,
// for kinds the vendored sparse package does not carry.
func (s *sparseMatrix) relayoutGeneric() *sparseMatrix {
	out := &sparseMatrix{kind: s.kind, rows: s.cols, cols: s.rows, major: s.major.Flip(), index: s.index, nnz: s.nnz}
	out.indptr = make([]int, out.majorDim()+1)
	out.ind = make([]int, 0, s.nnz)
	out.data = makeElementSlice(s.kind, 0)

	zero, _ := elementAt(s.kind, makeElementSlice(s.kind, 1), 0)
	count := 0
	for major := 0; major < out.majorDim(); major++ {
		for minor := 0; minor < out.minorDim(); minor++ {
			var outRow, outCol int
			if out.major == dtype.RowMajor {
				outRow, outCol = major, minor
			} else {
				outRow, outCol = minor, major
			}
			// out[outRow, outCol] == s[outCol, outRow]
			value, _ := s.At(outCol, outRow)
			if value != zero {
				out.ind = append(out.ind, minor)
				out.data = appendElement(s.kind, out.data, value)
				count++
			}
		}
		out.indptr[major+1] = count
	}

	return out
}

// clone returns an independent copy of s sharing no backing arrays.
func (s *sparseMatrix) clone() *sparseMatrix {
	out := &sparseMatrix{kind: s.kind, rows: s.rows, cols: s.cols, major: s.major, index: s.index, nnz: s.nnz}
	out.indptr = append([]int(nil), s.indptr...)
	out.ind = append([]int(nil), s.ind...)
	out.data = cloneElementSlice(s.kind, s.data)
	return out
}

func (s *sparseMatrix) minorDim() int {
	if s.major == dtype.RowMajor {
		return s.cols
	}
	return s.rows
}

// appendElement appends value to the typed slice data and returns the
// (possibly reallocated) slice.
func appendElement(kind dtype.ElementKind, data interface{}, value interface{}) interface{} {
	switch kind {
	case dtype.Int8:
		return append(data.([]int8), value.(int8))
	case dtype.Int16:
		return append(data.([]int16), value.(int16))
	case dtype.Int32:
		return append(data.([]int32), value.(int32))
	case dtype.Int64:
		return append(data.([]int64), value.(int64))
	case dtype.Uint8:
		return append(data.([]uint8), value.(uint8))
	case dtype.Uint16:
		return append(data.([]uint16), value.(uint16))
	case dtype.Uint32:
		return append(data.([]uint32), value.(uint32))
	case dtype.Uint64:
		return append(data.([]uint64), value.(uint64))
	case dtype.Float32:
		return append(data.([]float32), value.(float32))
	case dtype.Float64:
		return append(data.([]float64), value.(float64))
	case dtype.Bool:
		return append(data.([]bool), value.(bool))
	case dtype.String:
		return append(data.([]string), value.(string))
	default:
		return data
	}
}
