// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jagged

import "iter"

// Builder accumulates the rows of a jagged array.
//
// Rows are appended with Push and are assigned indices 0, 1, 2, ... in push
// order. A pushed row never changes content or position. The builder is
// owned by the single build step constructing it; it is not safe for
// concurrent use.
//
// Example:
//
//	b := jagged.NewBuilder[int]()
//	b.Push([]int{1, 2, 3})
//	b.Push([]int{4})
//	b.Push([]int{5, 6})
//	b.Len()      // 3
//	b.ElemsLen() // 6
//	b.Row(2)     // [5 6]
//
// Once all rows are pushed, hand the builder to an emitter (see package
// code.hybscloud.com/jagged/emit) or call Freeze to obtain an [Array].
type Builder[T any] struct {
	table[T]
	moved bool
}

// NewBuilder creates an empty builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// NewBuilderSize creates an empty builder with room for rows rows holding
// elems elements in total. Sizes are hints; pushing past them grows storage.
//
// Panics if rows or elems is negative.
func NewBuilderSize[T any](rows, elems int) *Builder[T] {
	if rows < 0 || elems < 0 {
		panic("jagged: capacity hints must be >= 0")
	}
	return &Builder[T]{table: table[T]{
		elems:   make([]T, 0, elems),
		offsets: make([]int, 0, rows),
	}}
}

// Push appends row as the next row of the array.
//
// The elements are copied; the caller may reuse row afterwards. An empty
// (or nil) row produces a zero-length row whose offset equals the previous
// row's end.
func (b *Builder[T]) Push(row []T) {
	if DebugEnabled {
		assertLive(b.moved, "Push")
	}
	b.push(row)
}

// Len returns the number of rows pushed so far.
func (b *Builder[T]) Len() int {
	return b.rows()
}

// ElemsLen returns the total number of elements across all rows.
func (b *Builder[T]) ElemsLen() int {
	return len(b.elems)
}

// Row returns row i as a view into the builder's flat buffer.
// Panics if i is not in [0, Len()).
func (b *Builder[T]) Row(i int) []T {
	if DebugEnabled {
		assertLive(b.moved, "Row")
	}
	return b.row(i)
}

// All returns an iterator over (index, row) pairs in push order.
func (b *Builder[T]) All() iter.Seq2[int, []T] {
	return b.all()
}

// Elems returns the flat element buffer. The result must not be modified.
func (b *Builder[T]) Elems() []T {
	return b.elems[:len(b.elems):len(b.elems)]
}

// Offsets returns the offset table: entry i is the exclusive end of row i in
// Elems. The result must not be modified.
func (b *Builder[T]) Offsets() []int {
	return b.offsets[:len(b.offsets):len(b.offsets)]
}

// Freeze moves the builder's storage into an immutable [Array] with the
// identical layout. Nothing is copied or recomputed.
//
// The builder must not be used afterwards; with the jaggeddebug build tag
// any further call panics.
func (b *Builder[T]) Freeze() *Array[T] {
	if DebugEnabled {
		assertLive(b.moved, "Freeze")
	}
	a := &Array[T]{table: b.table}
	b.table = table[T]{}
	b.moved = true
	return a
}
