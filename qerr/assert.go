package qerr

import (
	"fmt"
	"os"
)

// Error is a detected input-legality or environment violation, carrying the
// failure kind and the operation that detected it.
type Error struct {
	// Op names the originating operation, e.g. "RotateAroundAxis".
	Op string
	// Code is the failure kind; also the exit status under Exit.
	Code Code
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("qerr: %s: %s", e.Op, e.Code.Message())
}

// Is reports whether target names the same failure kind, so that
// errors.Is(err, qerr.InvalidRotation) matches any *Error with that code.
func (e *Error) Is(target error) bool {
	if c, ok := target.(Code); ok {
		return e.Code == c
	}
	t, ok := target.(*Error)
	return ok && t.Code == e.Code && (t.Op == "" || t.Op == e.Op)
}

// Assert returns nil when ok holds, otherwise a typed *Error with the given
// code and originating operation. It never terminates: the caller (or its
// caller) decides whether a failure is fatal.
//
// Complexity: O(1).
func Assert(ok bool, code Code, op string) error {
	if ok {
		return nil
	}
	return &Error{Op: op, Code: code}
}

// exit is swapped out by tests; the default terminates the process.
var exit = os.Exit

// Exit prints the fixed three-line diagnostic banner for err on stdout and
// terminates the process with err's code as exit status. A nil err is a
// no-op; an error that is not a *Error exits with status 1 and its own text
// as the message.
//
// There is no recovery path and no unwinding: callers holding resources
// must not rely on cleanup running.
func Exit(err error) {
	if err == nil {
		return
	}
	op, msg, status := "unknown", err.Error(), 1
	if e, ok := err.(*Error); ok {
		op, msg, status = e.Op, e.Code.Message(), int(e.Code)
	}
	fmt.Println("!!!")
	fmt.Printf("QuEST Error in function %s: %s\n", op, msg)
	fmt.Println("!!!")
	fmt.Println("exiting..")
	exit(status)
}

// AssertOrExit is the historical fail-fast form: validate ok and abort the
// whole process on failure, banner and exit status as in Exit.
func AssertOrExit(ok bool, code Code, op string) {
	if !ok {
		Exit(&Error{Op: op, Code: code})
	}
}
