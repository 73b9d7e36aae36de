// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ztree

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnknownTag is returned by ReadExpr when a tag byte falls outside the
// range of known Expr variants (Bot=0, Top=1, Prefix=2, Product=3, Sum=4).
var ErrUnknownTag = errors.New("ztree: unknown expression tag")

// errInvalidUTF8 is returned (wrapped) by ReadExpr when a symbol's bytes do
// not decode as valid UTF-8, per spec.md §4.6.
var errInvalidUTF8 = errors.New("ztree: invalid UTF-8 in symbol")

// wrapf wraps an underlying I/O error with context about which part of the
// wire format was being read or written, using github.com/pkg/errors so
// callers can still unwrap down to the original error (os.ErrClosed, io.EOF,
// ...) with errors.Cause or errors.Is.
func wrapf(err error, format string, a ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, a...)
}

// InvariantError reports a violation of one of the Engine's node invariants,
// such as make being called with a non-increasing variable ordering. It
// indicates a bug in the caller or in the engine itself, not a recoverable
// runtime condition, and is always raised as a panic (see Engine.make).
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("ztree: invariant violation: %s", e.Message)
}

// invariantf panics with an *InvariantError built from format and a.
func invariantf(format string, a ...interface{}) {
	panic(&InvariantError{Message: fmt.Sprintf(format, a...)})
}
