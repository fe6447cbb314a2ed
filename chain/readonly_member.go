package chain

import (
	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/daflock"
	"github.com/tanaylab/daf-go/dtype"
	"github.com/tanaylab/daf-go/storage"
)

// readOnlyFormat marks a storage.Format wrapper as never accepting a
// write; NewForWriting uses it to enforce "the last member of a write
// chain must be a writer" (spec §4.5).
type readOnlyFormat interface {
	isChainReadOnly() bool
}

// ReadOnlyMember wraps a storage.Format so every mutating method fails,
// for use as a non-tail (or deliberately read-only) chain member.
type ReadOnlyMember struct {
	storage.Format
}

// NewReadOnlyMember wraps source as a read-only chain member.
func NewReadOnlyMember(source storage.Format) ReadOnlyMember {
	return ReadOnlyMember{Format: source}
}

func (ReadOnlyMember) isChainReadOnly() bool { return true }

func errReadOnlyMember(name string) error {
	return daferr.LockMisusef("the daf data: " + name + " is read-only")
}

func (r ReadOnlyMember) SetScalar(name string, value interface{}) error {
	return errReadOnlyMember(r.Name())
}
func (r ReadOnlyMember) DeleteScalar(name string, forSet bool) error {
	return errReadOnlyMember(r.Name())
}
func (r ReadOnlyMember) AddAxis(name string, entries []string) error {
	return errReadOnlyMember(r.Name())
}
func (r ReadOnlyMember) DeleteAxis(name string, forSet bool) error {
	return errReadOnlyMember(r.Name())
}
func (r ReadOnlyMember) SetVector(axis, name string, value storage.Vector) error {
	return errReadOnlyMember(r.Name())
}
func (r ReadOnlyMember) DeleteVector(axis, name string, forSet bool) error {
	return errReadOnlyMember(r.Name())
}
func (r ReadOnlyMember) GetEmptyDenseVector(axis, name string, kind dtype.ElementKind) (storage.PendingVector, error) {
	return storage.PendingVector{}, errReadOnlyMember(r.Name())
}
func (r ReadOnlyMember) GetEmptySparseVector(axis, name string, kind dtype.ElementKind, nnz int, index dtype.IndexKind) (storage.PendingSparseVector, error) {
	return storage.PendingSparseVector{}, errReadOnlyMember(r.Name())
}
func (r ReadOnlyMember) SetMatrix(rowsAxis, colsAxis, name string, value storage.Matrix) error {
	return errReadOnlyMember(r.Name())
}
func (r ReadOnlyMember) DeleteMatrix(rowsAxis, colsAxis, name string, forSet bool) error {
	return errReadOnlyMember(r.Name())
}
func (r ReadOnlyMember) GetEmptyDenseMatrix(rowsAxis, colsAxis, name string, kind dtype.ElementKind, major dtype.Major) (storage.PendingMatrix, error) {
	return storage.PendingMatrix{}, errReadOnlyMember(r.Name())
}
func (r ReadOnlyMember) GetEmptySparseMatrix(rowsAxis, colsAxis, name string, kind dtype.ElementKind, major dtype.Major, nnz int, index dtype.IndexKind) (storage.PendingSparseMatrix, error) {
	return storage.PendingSparseMatrix{}, errReadOnlyMember(r.Name())
}
func (r ReadOnlyMember) IncrementVersionCounter(key daflock.DataKey) uint32 {
	return r.Format.VersionCounter(key)
}

var _ storage.Format = ReadOnlyMember{}
var _ readOnlyFormat = ReadOnlyMember{}

// NewForWriting constructs a Chain like New, additionally requiring the
// tail member to accept writes ("the last data: <name> is read-only" if
// not, spec §4.5).
func NewForWriting(name string, members ...storage.Format) (*Chain, error) {
	c, err := New(name, members...)
	if err != nil {
		return nil, err
	}
	if ro, ok := c.tail().(readOnlyFormat); ok && ro.isChainReadOnly() {
		return nil, daferr.LastMemberNotWriter(c.tail().Name())
	}
	return c, nil
}
