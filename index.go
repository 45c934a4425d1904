package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

var errIndexOutOfRange = errors.New("index out of range")

// indexError reports an out-of-range access. Len is -1 when the length is
// unknown, as for negative runtime indexes.
type indexError struct {
	Index int
	Len   int
}

func (e *indexError) Error() string {
	if e.Len < 0 {
		return fmt.Sprintf("index %d out of range", e.Index)
	}
	return fmt.Sprintf("index %d out of range for length %d", e.Index, e.Len)
}

func (e *indexError) Is(target error) bool {
	return target == errIndexOutOfRange
}

// at is the checked form of s[i].
func at[T any](s []T, i int) (T, error) {
	if i < 0 || i >= len(s) {
		var zero T
		return zero, &indexError{Index: i, Len: len(s)}
	}
	return s[i], nil
}

// recoverIndex runs fn and turns a runtime bounds panic into an error.
// Any other panic is propagated.
func recoverIndex(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		re, ok := r.(runtime.Error)
		if !ok {
			panic(r)
		}
		ie, ok := parseBoundsPanic(re.Error())
		if !ok {
			panic(r)
		}
		err = errors.WithStack(ie)
	}()
	fn()
	return nil
}

const boundsPanicPrefix = "runtime error: index out of range"

// parseBoundsPanic reads "index out of range [i] with length n" and the
// length-less "[i]" form the runtime uses for negative indexes.
func parseBoundsPanic(msg string) (*indexError, bool) {
	if !strings.HasPrefix(msg, boundsPanicPrefix) {
		return nil, false
	}
	var i, n int
	if _, err := fmt.Sscanf(msg, boundsPanicPrefix+" [%d] with length %d", &i, &n); err == nil {
		return &indexError{Index: i, Len: n}, true
	}
	if _, err := fmt.Sscanf(msg, boundsPanicPrefix+" [%d]", &i); err == nil {
		return &indexError{Index: i, Len: -1}, true
	}
	return nil, false
}
