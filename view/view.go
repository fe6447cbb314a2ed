package view

import (
	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/dataset"
	"github.com/tanaylab/daf-go/storage"
)

var _ dataset.Reader = View{}

// View wraps a dataset.Reader-shaped source and renames the axes and
// artifacts it exposes. It never mutates source, and it never stores
// data of its own: every read resolves an alias and delegates (spec
// §4.6).
type View struct {
	name    string
	source  dataset.Reader
	axes    map[string]string // axis alias -> source axis name
	scalars map[string]string // scalar alias -> source scalar name
	vectors map[string]string // vector alias -> source vector name
	matrices map[string]string // matrix alias -> source matrix name
}

// Builder accumulates alias registrations before New freezes them into
// a View. A zero Builder has no aliases; unregistered names are simply
// not visible through the resulting view.
type Builder struct {
	axes     map[string]string
	scalars  map[string]string
	vectors  map[string]string
	matrices map[string]string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		axes:     map[string]string{},
		scalars:  map[string]string{},
		vectors:  map[string]string{},
		matrices: map[string]string{},
	}
}

// Axis aliases sourceAxis as alias.
func (b *Builder) Axis(alias, sourceAxis string) *Builder {
	b.axes[alias] = sourceAxis
	return b
}

// Scalar aliases sourceScalar as alias.
func (b *Builder) Scalar(alias, sourceScalar string) *Builder {
	b.scalars[alias] = sourceScalar
	return b
}

// Vector aliases sourceVector as alias. The vector's axis is resolved
// independently through the view's axis aliases at read time.
func (b *Builder) Vector(alias, sourceVector string) *Builder {
	b.vectors[alias] = sourceVector
	return b
}

// Matrix aliases sourceMatrix as alias. The matrix's axes are resolved
// independently through the view's axis aliases at read time.
func (b *Builder) Matrix(alias, sourceMatrix string) *Builder {
	b.matrices[alias] = sourceMatrix
	return b
}

// New freezes the builder's aliases into a View named name over source.
func (b *Builder) New(name string, source dataset.Reader) View {
	return View{
		name:     name,
		source:   source,
		axes:     copyMap(b.axes),
		scalars:  copyMap(b.scalars),
		vectors:  copyMap(b.vectors),
		matrices: copyMap(b.matrices),
	}
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Name returns the view's own name, used in error message context.
func (v View) Name() string { return v.name }

func (v View) resolveAxis(alias string) (string, error) {
	name, ok := v.axes[alias]
	if !ok {
		return "", daferr.NotFoundf("axis", alias, v.name)
	}
	return name, nil
}

// HasScalar reports whether alias names a scalar exposed by this view.
func (v View) HasScalar(alias string) bool {
	name, ok := v.scalars[alias]
	return ok && v.source.HasScalar(name)
}

// GetScalar returns the scalar named by alias.
func (v View) GetScalar(alias string) (interface{}, error) {
	name, ok := v.scalars[alias]
	if !ok {
		return nil, daferr.NotFoundf("scalar", alias, v.name)
	}
	return v.source.GetScalar(name)
}

// ScalarNames returns every scalar alias this view exposes.
func (v View) ScalarNames() []string {
	names := make([]string, 0, len(v.scalars))
	for alias, source := range v.scalars {
		if v.source.HasScalar(source) {
			names = append(names, alias)
		}
	}
	return sortedCopy(names)
}

// HasAxis reports whether alias names an axis exposed by this view.
func (v View) HasAxis(alias string) bool {
	name, ok := v.axes[alias]
	return ok && v.source.HasAxis(name)
}

// AxisLength returns the length of the axis named by alias.
func (v View) AxisLength(alias string) (int, error) {
	name, err := v.resolveAxis(alias)
	if err != nil {
		return 0, err
	}
	return v.source.AxisLength(name)
}

// AxisEntries returns the entries of the axis named by alias.
func (v View) AxisEntries(alias string) ([]string, error) {
	name, err := v.resolveAxis(alias)
	if err != nil {
		return nil, err
	}
	return v.source.AxisEntries(name)
}

// AxisNames returns every axis alias this view exposes.
func (v View) AxisNames() []string {
	names := make([]string, 0, len(v.axes))
	for alias, source := range v.axes {
		if v.source.HasAxis(source) {
			names = append(names, alias)
		}
	}
	return sortedCopy(names)
}

// HasVector reports whether (axisAlias, nameAlias) names a vector
// exposed by this view.
func (v View) HasVector(axisAlias, nameAlias string) bool {
	axis, ok := v.axes[axisAlias]
	if !ok {
		return false
	}
	name, ok := v.vectors[nameAlias]
	if !ok {
		return false
	}
	return v.source.HasVector(axis, name)
}

// GetVector returns the vector named by (axisAlias, nameAlias).
func (v View) GetVector(axisAlias, nameAlias string) (storage.Vector, error) {
	axis, err := v.resolveAxis(axisAlias)
	if err != nil {
		return storage.Vector{}, err
	}
	name, ok := v.vectors[nameAlias]
	if !ok {
		return storage.Vector{}, daferr.NotFoundf("vector", axisAlias+":"+nameAlias, v.name)
	}
	return v.source.GetVector(axis, name)
}

// VectorNames returns every vector alias exposed on axisAlias.
func (v View) VectorNames(axisAlias string) ([]string, error) {
	axis, err := v.resolveAxis(axisAlias)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(v.vectors))
	for alias, source := range v.vectors {
		if v.source.HasVector(axis, source) {
			names = append(names, alias)
		}
	}
	return sortedCopy(names), nil
}

// HasMatrix reports whether (rowsAlias, colsAlias, nameAlias) names a
// matrix exposed by this view.
func (v View) HasMatrix(rowsAlias, colsAlias, nameAlias string) bool {
	rows, ok := v.axes[rowsAlias]
	if !ok {
		return false
	}
	cols, ok := v.axes[colsAlias]
	if !ok {
		return false
	}
	name, ok := v.matrices[nameAlias]
	if !ok {
		return false
	}
	return v.source.HasMatrix(rows, cols, name)
}

// GetMatrix returns the matrix named by (rowsAlias, colsAlias, nameAlias).
func (v View) GetMatrix(rowsAlias, colsAlias, nameAlias string) (storage.Matrix, error) {
	rows, err := v.resolveAxis(rowsAlias)
	if err != nil {
		return storage.Matrix{}, err
	}
	cols, err := v.resolveAxis(colsAlias)
	if err != nil {
		return storage.Matrix{}, err
	}
	name, ok := v.matrices[nameAlias]
	if !ok {
		return storage.Matrix{}, daferr.NotFoundf("matrix", rowsAlias+","+colsAlias+":"+nameAlias, v.name)
	}
	return v.source.GetMatrix(rows, cols, name)
}

// MatrixNames returns every matrix alias exposed on (rowsAlias, colsAlias).
func (v View) MatrixNames(rowsAlias, colsAlias string) ([]string, error) {
	rows, err := v.resolveAxis(rowsAlias)
	if err != nil {
		return nil, err
	}
	cols, err := v.resolveAxis(colsAlias)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(v.matrices))
	for alias, source := range v.matrices {
		if v.source.HasMatrix(rows, cols, source) {
			names = append(names, alias)
		}
	}
	return sortedCopy(names), nil
}
