// MemoryDataset: the one concrete Format backend the core ships, guarded
// by a single daflock.RWMutex in the style of the teacher's
// core.Graph (muVert/muEdgeAdj split collapsed here into one lock, since
// axes/vectors/matrices here are not independently contended the way
// vertex and adjacency maps are in a graph).
package storage

import (
	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/daflock"
)

// axisData is one named, ordered, unique-entries axis.
type axisData struct {
	entries []string
	index   map[string]int // entry -> position, for O(1) membership/lookup
}

func newAxisData(entries []string) *axisData {
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e] = i
	}
	return &axisData{entries: entries, index: index}
}

// matrixKey identifies one matrix by its axis pair and name.
type matrixKey struct {
	rowsAxis, colsAxis, name string
}

var _ Format = (*MemoryDataset)(nil)

// MemoryDataset is an in-memory Format backend.
type MemoryDataset struct {
	name   string
	header string
	footer string

	lock *daflock.RWMutex

	scalars  map[string]interface{}
	axes     map[string]*axisData
	vectors  map[string]map[string]Vector // axis -> name -> vector
	matrices map[matrixKey]Matrix

	versions *daflock.VersionCounters
}

// NewMemoryDataset constructs an empty in-memory dataset named name.
func NewMemoryDataset(name string) *MemoryDataset {
	return &MemoryDataset{
		name:     name,
		lock:     daflock.NewRWMutex(),
		scalars:  make(map[string]interface{}),
		axes:     make(map[string]*axisData),
		vectors:  make(map[string]map[string]Vector),
		matrices: make(map[matrixKey]Matrix),
		versions: daflock.NewVersionCounters(),
	}
}

// Name returns the dataset's name.
func (m *MemoryDataset) Name() string { return m.name }

// DescriptionHeader returns the free-text header set via SetDescription.
func (m *MemoryDataset) DescriptionHeader() string { return m.header }

// DescriptionFooter returns the free-text footer set via SetDescription.
func (m *MemoryDataset) DescriptionFooter() string { return m.footer }

// SetDescription sets the free-text header/footer shown by description
// tooling (spec §6).
func (m *MemoryDataset) SetDescription(header, footer string) {
	_ = m.lock.WithWriteLock(func() error {
		m.header, m.footer = header, footer
		return nil
	})
}

// VersionCounter returns the current version of key, without
// incrementing it (cold artifacts read as 1, per spec §4.2).
func (m *MemoryDataset) VersionCounter(key daflock.DataKey) uint32 {
	return m.versions.Get(key)
}

// IncrementVersionCounter bumps key's version and returns the new value.
func (m *MemoryDataset) IncrementVersionCounter(key daflock.DataKey) uint32 {
	var next uint32
	_ = m.lock.WithWriteLock(func() error {
		next = m.versions.Increment(key)
		return nil
	})
	return next
}

func (m *MemoryDataset) notFound(component, name string) error {
	return daferr.NotFoundf(component, name, m.name)
}
