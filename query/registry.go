package query

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/tanaylab/daf-go/daferr"
)

// EltwiseOp is a shape-preserving transform over numeric arrays,
// polymorphic over {apply-to-number, apply-to-vector, apply-to-matrix}
// (spec §4.7).
type EltwiseOp interface {
	ApplyScalar(value interface{}) (interface{}, error)
	ApplyVector(value PipelineVector) (PipelineVector, error)
	ApplyMatrix(value PipelineMatrix) (PipelineMatrix, error)
}

// ReductionOp collapses one dimension of an array (spec §4.7): a vector
// reduces to a scalar, a matrix reduces to a vector over the
// non-reduced axis (per-column, for a column-major matrix).
type ReductionOp interface {
	ReduceVector(value PipelineVector) (interface{}, error)
	ReduceMatrix(value PipelineMatrix) (PipelineVector, error)
}

// EltwiseConstructor builds an EltwiseOp from a query's parsed parameter
// dictionary.
type EltwiseConstructor func(params map[string]string) (EltwiseOp, error)

// ReductionConstructor builds a ReductionOp from a query's parsed
// parameter dictionary.
type ReductionConstructor func(params map[string]string) (ReductionOp, error)

type registration struct {
	ctor interface{}
	site string
}

// Registry is a process-wide dictionary mapping operation names to
// constructors within one operation kind ("eltwise" or "reduction").
// Registration from the same call site is idempotent; a conflicting
// site is a hard error (spec §4.7).
type Registry struct {
	kind    string
	entries sync.Map // name -> registration
}

func newRegistry(kind string) *Registry {
	return &Registry{kind: kind}
}

func (r *Registry) register(name string, ctor interface{}, site string) error {
	entry := registration{ctor: ctor, site: site}
	actual, loaded := r.entries.LoadOrStore(name, entry)
	if !loaded {
		return nil
	}
	existing := actual.(registration)
	if existing.site != site {
		return daferr.ConflictingRegistration(r.kind, name)
	}
	return nil
}

func (r *Registry) lookup(name string) (interface{}, bool) {
	actual, ok := r.entries.Load(name)
	if !ok {
		return nil, false
	}
	return actual.(registration).ctor, true
}

// callerSite identifies the source location skip frames above
// callerSite itself (skip 2 from inside an exported Register function is
// that function's caller), so repeated registration from the same init()
// is recognized as the same site.
func callerSite(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// Eltwise is the process-wide registry of element-wise operations.
var Eltwise = newRegistry("eltwise")

// Reduction is the process-wide registry of reduction operations.
var Reduction = newRegistry("reduction")

// RegisterEltwise registers name's constructor with Eltwise.
func RegisterEltwise(name string, ctor EltwiseConstructor) error {
	return Eltwise.register(name, ctor, callerSite(2))
}

// RegisterReduction registers name's constructor with Reduction.
func RegisterReduction(name string, ctor ReductionConstructor) error {
	return Reduction.register(name, ctor, callerSite(2))
}

func lookupEltwise(name string, params map[string]string) (EltwiseOp, error) {
	ctor, ok := Eltwise.lookup(name)
	if !ok {
		return nil, daferr.UnknownOperationf("eltwise", name)
	}
	return ctor.(EltwiseConstructor)(params)
}

func lookupReduction(name string, params map[string]string) (ReductionOp, error) {
	ctor, ok := Reduction.lookup(name)
	if !ok {
		return nil, daferr.UnknownOperationf("reduction", name)
	}
	return ctor.(ReductionConstructor)(params)
}
