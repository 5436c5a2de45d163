// Package util collects small helpers shared across the analytics engine:
// assertion/panic-to-error helpers, lazy log-argument evaluation and
// formatting, in the style used throughout the teacher codebase.
package util

import (
	"fmt"
)

// Assertf panics with a formatted message if cond is false.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("assertion failed: "+format, EvalLazyArgs(args...)...))
	}
}

// AssertNoError panics if err is non-nil.
func AssertNoError(err error) {
	if err != nil {
		panic(fmt.Sprintf("error: %v", err))
	}
}

// AssertMustError panics if err is nil.
func AssertMustError(err error) {
	if err == nil {
		panic("expected non-nil error")
	}
}

// EvalLazyArgs evaluates any argument of type func() any or func() string,
// leaving the rest untouched. It lets call sites defer expensive string
// formatting (e.g. id.IDShortString) until an assertion or trace actually
// fires.
func EvalLazyArgs(args ...any) []any {
	ret := make([]any, len(args))
	for i, a := range args {
		switch f := a.(type) {
		case func() string:
			ret[i] = f()
		case func() any:
			ret[i] = f()
		default:
			ret[i] = a
		}
	}
	return ret
}

// CatchPanicOrError runs fun, converting any panic into an error instead of
// letting it propagate, the way the teacher's node startup path does.
func CatchPanicOrError(fun func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("panic: %v", r)
			}
		}
	}()
	return fun()
}

// Ref returns a pointer to a copy of v. Handy for optional struct fields.
func Ref[T any](v T) *T {
	return &v
}
