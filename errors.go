// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jagged

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrIndexOutOfRange indicates a checked row access with an index outside
// [0, Len()).
//
// It is the only error the package returns at runtime. Callers recover by
// validating indices before use:
//
//	row, err := table.Get(i)
//	if jagged.IsOutOfRange(err) {
//	    return fmt.Errorf("lookup %d: %w", i, err)
//	}
var ErrIndexOutOfRange = errors.New("jagged: index out of range")

// IndexError reports the offending index and the row count at the time of
// the access. It unwraps to [ErrIndexOutOfRange].
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("jagged: row index %d out of range [0:%d]", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// IsOutOfRange reports whether err is, or wraps, [ErrIndexOutOfRange].
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
//
// The package returns no control flow signals, so for its own errors this
// is always false; it exists so callers can classify errors from this
// package alongside iox-based ones.
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Delegates to [iox.IsNonFailure].
//
// For errors returned by this package it is equivalent to err == nil.
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
