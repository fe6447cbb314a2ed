package dataset

import "github.com/tanaylab/daf-go/storage"

// Reader is the read-only subset of Dataset's method set. ReadOnly and
// *Dataset both satisfy it; view and query compose against this interface
// (chain composes storage.Format members instead) so a mutable Dataset can
// never be required where only reading is
// intended (spec §9's design note on enforcing read-only statically).
type Reader interface {
	Name() string
	HasScalar(name string) bool
	GetScalar(name string) (interface{}, error)
	ScalarNames() []string
	HasAxis(name string) bool
	AxisLength(name string) (int, error)
	AxisEntries(name string) ([]string, error)
	AxisNames() []string
	HasVector(axis, name string) bool
	GetVector(axis, name string) (storage.Vector, error)
	VectorNames(axis string) ([]string, error)
	HasMatrix(rowsAxis, colsAxis, name string) bool
	GetMatrix(rowsAxis, colsAxis, name string) (storage.Matrix, error)
	MatrixNames(rowsAxis, colsAxis string) ([]string, error)
}

// ReadOnly forwards only Reader's non-mutating methods, in the spirit of
// the teacher's core.UnweightedView/InducedSubgraph: it borrows a source
// under the source's own locking and never exposes a path back to
// mutation, rather than relying on callers to self-restrict.
type ReadOnly struct {
	source *Dataset
}

// NewReadOnly wraps source as a statically read-only view.
func NewReadOnly(source *Dataset) ReadOnly {
	return ReadOnly{source: source}
}

func (r ReadOnly) Name() string                  { return r.source.Name() }
func (r ReadOnly) HasScalar(name string) bool    { return r.source.HasScalar(name) }
func (r ReadOnly) ScalarNames() []string         { return r.source.ScalarNames() }
func (r ReadOnly) HasAxis(name string) bool      { return r.source.HasAxis(name) }
func (r ReadOnly) AxisNames() []string           { return r.source.AxisNames() }

func (r ReadOnly) GetScalar(name string) (interface{}, error) { return r.source.GetScalar(name) }
func (r ReadOnly) AxisLength(name string) (int, error)        { return r.source.AxisLength(name) }
func (r ReadOnly) AxisEntries(name string) ([]string, error)  { return r.source.AxisEntries(name) }

func (r ReadOnly) HasVector(axis, name string) bool { return r.source.HasVector(axis, name) }
func (r ReadOnly) GetVector(axis, name string) (storage.Vector, error) {
	return r.source.GetVector(axis, name)
}
func (r ReadOnly) VectorNames(axis string) ([]string, error) { return r.source.VectorNames(axis) }

func (r ReadOnly) HasMatrix(rowsAxis, colsAxis, name string) bool {
	return r.source.HasMatrix(rowsAxis, colsAxis, name)
}
func (r ReadOnly) GetMatrix(rowsAxis, colsAxis, name string) (storage.Matrix, error) {
	return r.source.GetMatrix(rowsAxis, colsAxis, name)
}
func (r ReadOnly) MatrixNames(rowsAxis, colsAxis string) ([]string, error) {
	return r.source.MatrixNames(rowsAxis, colsAxis)
}

var _ Reader = (*Dataset)(nil)
var _ Reader = ReadOnly{}
