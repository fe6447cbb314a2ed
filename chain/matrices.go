package chain

import (
	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/dtype"
	"github.com/tanaylab/daf-go/storage"
)

func matrixLabel(rowsAxis, colsAxis, name string) string {
	return rowsAxis + "," + colsAxis + ":" + name
}

// HasMatrix reports whether any member has matrix (rowsAxis, colsAxis, name).
func (c *Chain) HasMatrix(rowsAxis, colsAxis, name string, forRelayout bool) bool {
	for _, member := range c.members {
		if member.HasMatrix(rowsAxis, colsAxis, name, forRelayout) {
			return true
		}
	}
	return false
}

// GetMatrix traverses members in reverse and returns the first one that
// has matrix (rowsAxis, colsAxis, name).
func (c *Chain) GetMatrix(rowsAxis, colsAxis, name string) (storage.Matrix, error) {
	for i := len(c.members) - 1; i >= 0; i-- {
		if c.members[i].HasMatrix(rowsAxis, colsAxis, name, false) {
			return c.members[i].GetMatrix(rowsAxis, colsAxis, name)
		}
	}
	return storage.Matrix{}, daferr.NotFoundf("matrix", matrixLabel(rowsAxis, colsAxis, name), c.name)
}

// SetMatrix writes matrix (rowsAxis, colsAxis, name) to the tail member,
// implicitly adding either axis the tail lacks (spec §4.5).
func (c *Chain) SetMatrix(rowsAxis, colsAxis, name string, value storage.Matrix) error {
	if err := c.ensureTailAxis(rowsAxis); err != nil {
		return err
	}
	if err := c.ensureTailAxis(colsAxis); err != nil {
		return err
	}
	return c.tail().SetMatrix(rowsAxis, colsAxis, name, value)
}

// DeleteMatrix removes matrix (rowsAxis, colsAxis, name) from the tail
// member, subject to earlier-member protection (spec §4.5).
func (c *Chain) DeleteMatrix(rowsAxis, colsAxis, name string, forSet bool) error {
	label := matrixLabel(rowsAxis, colsAxis, name)
	earlier := c.earlierHolders(func(m storage.Format) bool { return m.HasMatrix(rowsAxis, colsAxis, name, false) })
	if !forSet && len(earlier) > 0 {
		return daferr.ForbiddenDeletef("matrix", label, earlier[0].Name())
	}
	if c.tail().HasMatrix(rowsAxis, colsAxis, name, false) {
		return c.tail().DeleteMatrix(rowsAxis, colsAxis, name, forSet)
	}
	if !forSet {
		return daferr.NotFoundf("matrix", label, c.name)
	}
	return nil
}

// MatrixNames returns the union of matrix names over (rowsAxis,
// colsAxis) across every member that carries both axes.
func (c *Chain) MatrixNames(rowsAxis, colsAxis string) ([]string, error) {
	var lists [][]string
	found := false
	for _, member := range c.members {
		if !member.HasAxis(rowsAxis, false) || !member.HasAxis(colsAxis, false) {
			continue
		}
		found = true
		names, err := member.MatrixNames(rowsAxis, colsAxis)
		if err != nil {
			return nil, err
		}
		lists = append(lists, names)
	}
	if !found {
		return nil, daferr.NotFoundf("axis", rowsAxis+","+colsAxis, c.name)
	}
	return unionSorted(lists...), nil
}

// GetEmptyDenseMatrix allocates a pending dense matrix on the tail member.
func (c *Chain) GetEmptyDenseMatrix(rowsAxis, colsAxis, name string, kind dtype.ElementKind, major dtype.Major) (storage.PendingMatrix, error) {
	if err := c.ensureTailAxis(rowsAxis); err != nil {
		return storage.PendingMatrix{}, err
	}
	if err := c.ensureTailAxis(colsAxis); err != nil {
		return storage.PendingMatrix{}, err
	}
	return c.tail().GetEmptyDenseMatrix(rowsAxis, colsAxis, name, kind, major)
}

// GetEmptySparseMatrix allocates a pending sparse matrix on the tail member.
func (c *Chain) GetEmptySparseMatrix(rowsAxis, colsAxis, name string, kind dtype.ElementKind, major dtype.Major, nnz int, index dtype.IndexKind) (storage.PendingSparseMatrix, error) {
	if err := c.ensureTailAxis(rowsAxis); err != nil {
		return storage.PendingSparseMatrix{}, err
	}
	if err := c.ensureTailAxis(colsAxis); err != nil {
		return storage.PendingSparseMatrix{}, err
	}
	return c.tail().GetEmptySparseMatrix(rowsAxis, colsAxis, name, kind, major, nnz, index)
}

// Relayout materializes the transpose of matrix (rowsAxis, colsAxis,
// name), resolved via the chain's normal last-writer-wins read.
func (c *Chain) Relayout(rowsAxis, colsAxis, name string) (storage.Matrix, error) {
	value, err := c.GetMatrix(rowsAxis, colsAxis, name)
	if err != nil {
		return storage.Matrix{}, err
	}
	return value.Relayout(), nil
}
