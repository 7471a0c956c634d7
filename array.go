// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jagged

import "iter"

// Array is an immutable jagged array: a flat element buffer and the offset
// table produced by [Builder.Push].
//
// Row i occupies Elems()[Offsets()[i-1]:Offsets()[i]], with the start of row
// 0 at 0. Views returned by the accessors alias the array's storage and are
// capped at the row's end; they must be treated as read-only.
//
// An Array is safe for concurrent readers.
type Array[T any] struct {
	table[T]
}

// Embed binds a flat buffer and an offset table produced at build time.
//
// Embed exists for generated code: the emitter writes the contents of a
// finalized [Builder] as literals and wraps them with Embed. Offset tables
// from any other source are outside the contract. With the jaggeddebug
// build tag Embed verifies that offsets are non-decreasing and end at
// len(elems), and panics otherwise.
func Embed[T any](elems []T, offsets []int) *Array[T] {
	if DebugEnabled {
		assertOffsets(offsets, len(elems))
	}
	return &Array[T]{table: table[T]{elems: elems, offsets: offsets}}
}

// Len returns the number of rows.
func (a *Array[T]) Len() int {
	return a.rows()
}

// ElemsLen returns the total number of elements across all rows.
func (a *Array[T]) ElemsLen() int {
	return len(a.elems)
}

// Get returns row i.
// Returns an *IndexError wrapping [ErrIndexOutOfRange] if i is not in
// [0, Len()).
func (a *Array[T]) Get(i int) ([]T, error) {
	return a.get(i)
}

// At returns row i. It is the indexing operator of the array and panics,
// like a slice index expression, if i is not in [0, Len()).
func (a *Array[T]) At(i int) []T {
	return a.row(i)
}

// GetUnchecked returns row i without a bounds check.
//
// The caller guarantees 0 <= i < Len(), typically because the index was
// produced by the same build step as the array. The span arithmetic is
// sound because the offset table is non-decreasing and ends at ElemsLen();
// an out-of-range index is undefined behavior. With the jaggeddebug build
// tag the index is checked and a violation panics.
func (a *Array[T]) GetUnchecked(i int) []T {
	if DebugEnabled {
		assertRow(i, len(a.offsets), "GetUnchecked")
	}
	return a.rowUnchecked(i)
}

// All returns an iterator over (index, row) pairs.
func (a *Array[T]) All() iter.Seq2[int, []T] {
	return a.all()
}

// Elems returns the flat element buffer. The result must not be modified.
func (a *Array[T]) Elems() []T {
	return a.elems[:len(a.elems):len(a.elems)]
}

// Offsets returns the offset table. The result must not be modified.
func (a *Array[T]) Offsets() []int {
	return a.offsets[:len(a.offsets):len(a.offsets)]
}
