package daferr

import (
	"errors"
	"fmt"
)

// Kind classifies an Error without requiring callers to match on its
// rendered message. Every Error carries exactly one Kind.
type Kind int

// The closed set of error kinds defined by the storage contract (spec §7).
const (
	// NotFound: a scalar/axis/vector/matrix does not exist where required.
	NotFound Kind = iota
	// AlreadyExists: attempt to create over an existing artifact without overwrite.
	AlreadyExists
	// ShapeMismatch: vector length vs axis length, or matrix shape vs axes.
	ShapeMismatch
	// InconsistentAxis: a chain member has different entries for the same axis name.
	InconsistentAxis
	// InvalidChain: empty chain, or a write chain whose last member is not a writer.
	InvalidChain
	// ForbiddenDelete: a chain delete is blocked by an earlier member holding the artifact.
	ForbiddenDelete
	// LockMisuse: attempted write lock while only holding read, or an unmatched unlock.
	LockMisuse
	// TypeMismatch: element type incompatible with the requested operation.
	TypeMismatch
	// QueryParseError: a query expression could not be parsed.
	QueryParseError
	// UnknownOperation: a query referenced an operation the registry does not know,
	// or two call sites tried to register conflicting operations under one name.
	UnknownOperation
	// InvalidArgument: a caller-supplied name or entry sequence violates a
	// storage-contract invariant (spec §3) independent of any existing state.
	InvalidArgument
)

// String renders the Kind's name, used only for diagnostics.
func (k Kind) String() string {
	switch k {
	case NotFound:
		return "NotFound"
	case AlreadyExists:
		return "AlreadyExists"
	case ShapeMismatch:
		return "ShapeMismatch"
	case InconsistentAxis:
		return "InconsistentAxis"
	case InvalidChain:
		return "InvalidChain"
	case ForbiddenDelete:
		return "ForbiddenDelete"
	case LockMisuse:
		return "LockMisuse"
	case TypeMismatch:
		return "TypeMismatch"
	case QueryParseError:
		return "QueryParseError"
	case UnknownOperation:
		return "UnknownOperation"
	case InvalidArgument:
		return "InvalidArgument"
	default:
		return "Unknown"
	}
}

// sentinel returns the package-level sentinel for k, used as Error's
// Unwrap target so errors.Is(err, daferr.ErrNotFound) works regardless
// of the rendered message.
func (k Kind) sentinel() error {
	switch k {
	case NotFound:
		return ErrNotFound
	case AlreadyExists:
		return ErrAlreadyExists
	case ShapeMismatch:
		return ErrShapeMismatch
	case InconsistentAxis:
		return ErrInconsistentAxis
	case InvalidChain:
		return ErrInvalidChain
	case ForbiddenDelete:
		return ErrForbiddenDelete
	case LockMisuse:
		return ErrLockMisuse
	case TypeMismatch:
		return ErrTypeMismatch
	case QueryParseError:
		return ErrQueryParseError
	case InvalidArgument:
		return ErrInvalidArgument
	default:
		return ErrUnknownOperation
	}
}

// Sentinel errors, one per Kind. errors.Is(err, daferr.ErrNotFound) is the
// supported way to branch on failure class.
var (
	ErrNotFound         = errors.New("daferr: not found")
	ErrAlreadyExists    = errors.New("daferr: already exists")
	ErrShapeMismatch    = errors.New("daferr: shape mismatch")
	ErrInconsistentAxis = errors.New("daferr: inconsistent axis")
	ErrInvalidChain     = errors.New("daferr: invalid chain")
	ErrForbiddenDelete  = errors.New("daferr: forbidden delete")
	ErrLockMisuse       = errors.New("daferr: lock misuse")
	ErrTypeMismatch     = errors.New("daferr: type mismatch")
	ErrQueryParseError  = errors.New("daferr: query parse error")
	ErrUnknownOperation = errors.New("daferr: unknown operation")
	ErrInvalidArgument  = errors.New("daferr: invalid argument")
)

// Error is the one exported error type every daf-go layer returns.
// Message already holds the fully rendered, template-exact text; Kind
// lets callers branch via errors.Is/errors.As without parsing it.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface, returning the exact template text.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the Kind's sentinel so errors.Is(err, daferr.ErrNotFound)
// succeeds even though the message text varies per call site.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

func newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds the fixed "missing <component>: <name>\nin the daf data: <dataset>"
// template (spec §6), e.g. NotFoundf("scalar", "version", "cells").
func NotFoundf(component, name, dataset string) *Error {
	return newf(NotFound, "missing %s: %s\nin the daf data: %s", component, name, dataset)
}

// AlreadyExistsf reports an attempt to create an existing artifact without overwrite.
func AlreadyExistsf(component, name, dataset string) *Error {
	return newf(AlreadyExists, "%s: %s already exists\nin the daf data: %s", component, name, dataset)
}

// VectorLengthMismatch builds the fixed "value length: N is different from
// axis: A length: M" template (spec §4.4, §8 scenario 2).
func VectorLengthMismatch(valueLength int, axis string, axisLength int) *Error {
	return newf(ShapeMismatch, "value length: %d is different from axis: %s length: %d", valueLength, axis, axisLength)
}

// MatrixShapeMismatch reports a matrix whose shape disagrees with its declared axes.
func MatrixShapeMismatch(rows, cols int, rowsAxis string, rowsLen int, colsAxis string, colsLen int) *Error {
	return newf(ShapeMismatch,
		"matrix shape: (%d, %d) is different from axes: (%s: %d, %s: %d)",
		rows, cols, rowsAxis, rowsLen, colsAxis, colsLen)
}

// InconsistentAxisEntries builds the "different entries for the axis: <name>"
// template (spec §8 scenario 4), naming the two members that disagree.
func InconsistentAxisEntries(axis, memberA, memberB string) *Error {
	return newf(InconsistentAxis,
		"different entries for the axis: %s\nbetween the daf data: %s\nand the daf data: %s",
		axis, memberA, memberB)
}

// EmptyChain reports construction of a chain with zero members.
func EmptyChain() *Error {
	return newf(InvalidChain, "empty chain")
}

// LastMemberNotWriter reports a write chain whose tail member cannot be written to.
func LastMemberNotWriter(name string) *Error {
	return newf(InvalidChain, "the last data: %s is read-only", name)
}

// ForbiddenDeletef builds the "because it exists in the earlier: <name>"
// template (spec §4.5, §8 scenario 3).
func ForbiddenDeletef(component, name, earlierMember string) *Error {
	return newf(ForbiddenDelete,
		"cannot delete %s: %s\nbecause it exists in the earlier: %s", component, name, earlierMember)
}

// LockMisusef reports a forbidden read-to-write upgrade or an unmatched unlock.
func LockMisusef(reason string) *Error {
	return newf(LockMisuse, "lock misuse: %s", reason)
}

// TypeMismatchf reports an element type incompatible with a requested operation.
func TypeMismatchf(context, got, want string) *Error {
	return newf(TypeMismatch, "%s: type: %s is different from expected type: %s", context, got, want)
}

// QueryParseErrorf reports a malformed query expression.
func QueryParseErrorf(expression, reason string) *Error {
	return newf(QueryParseError, "failed to parse query: %s\n%s", expression, reason)
}

// UnknownOperationf reports a query referencing an unregistered operation.
func UnknownOperationf(kind, name string) *Error {
	return newf(UnknownOperation, "unknown %s operation: %s", kind, name)
}

// ConflictingRegistration builds the "conflicting registrations for the
// <kind> operation: <name>" template (spec §8 scenario 5).
func ConflictingRegistration(kind, name string) *Error {
	return newf(UnknownOperation, "conflicting registrations for the %s operation: %s", kind, name)
}

// InvalidNamef reports a caller-supplied component name that is empty
// (spec §3 invariant 1).
func InvalidNamef(component, dataset string) *Error {
	return newf(InvalidArgument, "%s name must not be empty\nin the daf data: %s", component, dataset)
}

// InvalidAxisEntriesf reports an axis's entries violating spec §3
// invariant 2: an empty entry string, or a duplicate entry.
func InvalidAxisEntriesf(axis, reason, dataset string) *Error {
	return newf(InvalidArgument, "invalid entries for axis: %s\n%s\nin the daf data: %s", axis, reason, dataset)
}
