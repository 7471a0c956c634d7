// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jagged

import (
	"iter"
	"unsafe"
)

// Handle identifies the array a [RowDescriptor] was derived from.
//
// The package never interprets a Handle. It is created once by the build
// step, passed to [BareBuilder.GetPrecalc], and carried through to the
// emitter, which uses [Handle.Name] to name the backing element array.
//
// Example:
//
//	h := jagged.NewHandle("Words")
//	b := jagged.NewBareBuilder[string]()
//	b.Push([]string{"a", "b"})
//	d := b.GetPrecalc(h, 0) // d.ID == h
type Handle struct {
	name string
}

// NewHandle creates a handle for the array named name.
// Panics if name is empty.
func NewHandle(name string) Handle {
	if name == "" {
		panic("jagged: handle name must not be empty")
	}
	return Handle{name: name}
}

// Name returns the name the handle was created with.
func (h Handle) Name() string {
	return h.name
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.name == ""
}

func (h Handle) String() string {
	return h.name
}

// RowDescriptor locates one row inside a flat element buffer.
//
// A descriptor is resolved at build time and stands alone: it carries no
// reference to an offset table, so the artifact it is embedded in needs only
// the flat buffer.
type RowDescriptor struct {
	ID     Handle // Array the row belongs to
	Offset int    // Index of the row's first element
	Len    int    // Number of elements in the row
}

// End returns the exclusive end index of the row.
func (d RowDescriptor) End() int {
	return d.Offset + d.Len
}

// intSize is the size of an offset table entry in bytes.
const intSize = int(unsafe.Sizeof(int(0)))

// table is the flat buffer plus offset table shared by every builder and
// array in the package.
//
// elems is an arena holding every row in push order. offsets[i] is the
// exclusive end of row i; the start of row i is offsets[i-1], or 0 for the
// first row. push is the only writer of offsets, which is what makes the
// unchecked accessor sound: offsets are non-decreasing and the last entry
// equals len(elems).
type table[T any] struct {
	elems   []T
	offsets []int
}

func (t *table[T]) push(row []T) {
	t.elems = append(t.elems, row...)
	t.offsets = append(t.offsets, len(t.elems))
}

func (t *table[T]) rows() int {
	return len(t.offsets)
}

// span returns the half-open element range of row i.
// Panics (runtime bounds check) if i is out of range.
func (t *table[T]) span(i int) (start, end int) {
	end = t.offsets[i]
	if i > 0 {
		start = t.offsets[i-1]
	}
	return start, end
}

// row returns row i capped at its own end, so append on the view cannot
// write into the next row.
func (t *table[T]) row(i int) []T {
	start, end := t.span(i)
	return t.elems[start:end:end]
}

func (t *table[T]) get(i int) ([]T, error) {
	if uint(i) >= uint(len(t.offsets)) {
		return nil, &IndexError{Index: i, Len: len(t.offsets)}
	}
	return t.row(i), nil
}

// rowUnchecked computes the same span as row without bounds checks.
// The caller guarantees 0 <= i < len(offsets).
func (t *table[T]) rowUnchecked(i int) []T {
	// Pointer arithmetic avoids slice bounds checking in hot path.
	// Equivalent to t.elems[t.offsets[i-1]:t.offsets[i]]
	offs := unsafe.Pointer(unsafe.SliceData(t.offsets))
	end := *(*int)(unsafe.Add(offs, i*intSize))
	start := 0
	if i > 0 {
		start = *(*int)(unsafe.Add(offs, (i-1)*intSize))
	}
	n := end - start
	if n == 0 {
		// A pointer at start may sit one past the end of the buffer, so
		// empty rows take the same reslice as row.
		return t.elems[start:start:start]
	}
	var zero T
	p := unsafe.Add(unsafe.Pointer(unsafe.SliceData(t.elems)), uintptr(start)*unsafe.Sizeof(zero))
	return unsafe.Slice((*T)(p), n)
}

func (t *table[T]) all() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		start := 0
		for i, end := range t.offsets {
			if !yield(i, t.elems[start:end:end]) {
				return
			}
			start = end
		}
	}
}
