package daflock

import (
	"bytes"
	"runtime"
	"strconv"
)

// goroutineID identifies the calling goroutine for lock-ownership
// bookkeeping. Goroutine IDs are never zero, so 0 doubles as "no owner".
type goroutineID uint64

// goidStackBufSize is the size of the stack buffer: the header line
// "goroutine 123 [running]:\n" always fits in it, so one runtime.Stack call
// is enough to read the id.
const goidStackBufSize = 64

// currentGoroutineID extracts the calling goroutine's runtime ID by
// parsing the header line of its own stack trace.
//
// No repo in the pack and no well-known ecosystem library provides
// goroutine identity (Go deliberately omits it from the language), so
// this is the one component of daf-go built directly on the standard
// library rather than an adopted dependency; see DESIGN.md.
func currentGoroutineID() goroutineID {
	var buf [goidStackBufSize]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]

	const prefix = "goroutine "
	b = bytes.TrimPrefix(b, []byte(prefix))
	if end := bytes.IndexByte(b, ' '); end >= 0 {
		b = b[:end]
	}

	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		// Should be unreachable: runtime.Stack's format is stable across
		// supported Go versions. Fail loudly rather than silently sharing
		// lock-ownership state across goroutines.
		panic("daflock: could not parse goroutine id: " + err.Error())
	}

	return goroutineID(id)
}
