// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jagged

import "slices"

// BareBuilder accumulates rows like [Builder], but its artifact carries no
// offset table.
//
// Instead, each row the consumer needs is resolved once, at build time, into
// a standalone [RowDescriptor] with GetPrecalc. The emitted artifact is the
// flat element buffer plus one independently named accessor per requested
// row.
//
// Example:
//
//	h := jagged.NewHandle("NumArray")
//	b := jagged.NewBareBuilder[int]()
//	b.Push([]int{1, 2, 3})
//	b.Push([]int{4})
//	b.Push([]int{5, 6})
//	r1 := b.GetPrecalc(h, 1) // {ID: h, Offset: 3, Len: 1}
type BareBuilder[T any] struct {
	table[T]
	requested []RowDescriptor
	moved     bool
}

// NewBareBuilder creates an empty bare builder.
func NewBareBuilder[T any]() *BareBuilder[T] {
	return &BareBuilder[T]{}
}

// Push appends row as the next row. See [Builder.Push].
func (b *BareBuilder[T]) Push(row []T) {
	if DebugEnabled {
		assertLive(b.moved, "Push")
	}
	b.push(row)
}

// Len returns the number of rows pushed so far.
func (b *BareBuilder[T]) Len() int {
	return b.rows()
}

// ElemsLen returns the total number of elements across all rows.
func (b *BareBuilder[T]) ElemsLen() int {
	return len(b.elems)
}

// Row returns row i as a view into the flat buffer.
// Panics if i is not in [0, Len()).
func (b *BareBuilder[T]) Row(i int) []T {
	if DebugEnabled {
		assertLive(b.moved, "Row")
	}
	return b.row(i)
}

// Elems returns the flat element buffer. The result must not be modified.
func (b *BareBuilder[T]) Elems() []T {
	return b.elems[:len(b.elems):len(b.elems)]
}

// GetPrecalc resolves row i into a standalone descriptor tagged with id.
//
// Offset is the end of row i-1 (0 for the first row) and Len is the row's
// element count, the same span [Array.Get] computes for the equivalent full
// array. The descriptor is also recorded for the emitter; see Descriptors.
//
// Row i must already have been pushed. Passing any other index is a
// programmer error and panics.
func (b *BareBuilder[T]) GetPrecalc(id Handle, i int) RowDescriptor {
	if DebugEnabled {
		assertLive(b.moved, "GetPrecalc")
		assertRow(i, len(b.offsets), "GetPrecalc")
	}
	start, end := b.span(i)
	d := RowDescriptor{ID: id, Offset: start, Len: end - start}
	b.requested = append(b.requested, d)
	return d
}

// Descriptors returns every descriptor produced by GetPrecalc, in request
// order.
func (b *BareBuilder[T]) Descriptors() []RowDescriptor {
	return slices.Clone(b.requested)
}

// Freeze moves the flat buffer into a [BareArray]. The offset table is
// dropped. The builder must not be used afterwards.
func (b *BareBuilder[T]) Freeze() *BareArray[T] {
	if DebugEnabled {
		assertLive(b.moved, "Freeze")
	}
	a := &BareArray[T]{elems: b.elems}
	b.table = table[T]{}
	b.requested = nil
	b.moved = true
	return a
}

// BareArray is the flat element buffer of a jagged array without an offset
// table. Rows are reached only through descriptors resolved at build time.
type BareArray[T any] struct {
	elems []T
}

// EmbedBare wraps a flat buffer emitted at build time.
func EmbedBare[T any](elems []T) *BareArray[T] {
	return &BareArray[T]{elems: elems}
}

// Elems returns the flat element buffer. The result must not be modified.
func (a *BareArray[T]) Elems() []T {
	return a.elems[:len(a.elems):len(a.elems)]
}

// ElemsLen returns the number of elements in the buffer.
func (a *BareArray[T]) ElemsLen() int {
	return len(a.elems)
}

// Resolve returns the row d describes. d must have been produced by
// GetPrecalc on the builder this array was frozen from.
func (a *BareArray[T]) Resolve(d RowDescriptor) []T {
	if DebugEnabled {
		assertf(d.Offset >= 0 && d.Len >= 0 && d.End() <= len(a.elems),
			"Resolve: descriptor [%d:%d] outside %d elements", d.Offset, d.End(), len(a.elems))
	}
	end := d.End()
	return a.elems[d.Offset:end:end]
}
