// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package jagged provides jagged (ragged) arrays that are built once, at
// build time, and embedded in a program as static data.
//
// A jagged array is a collection of rows of varying length. It is stored as
// two flat slices:
//
//	elems   - every row's elements, concatenated in push order
//	offsets - offsets[i] is the exclusive end of row i in elems
//
// Row i occupies elems[offsets[i-1]:offsets[i]], with the start of row 0 at
// 0. No per-row allocation exists at runtime.
//
// # Quick Start
//
// A go:generate program builds the array and hands it to the emitter:
//
//	b := jagged.NewBuilder[int]()
//	b.Push([]int{1, 2, 3})
//	b.Push([]int{4})
//	b.Push([]int{5, 6})
//
//	f := emit.NewFile("tables")
//	emit.Array(f, jagged.NewHandle("NumArray"), b)
//	f.WriteFile("tables_gen.go")
//
// The consuming package then reads the generated variable:
//
//	tables.NumArray.At(0) // [1 2 3]
//	tables.NumArray.At(2) // [5 6]
//
// The jaggedgen command (cmd/jaggedgen) does the same from a YAML manifest.
//
// # Variants
//
// Two layouts are available:
//
//	Builder[T] → Array[T]          - flat buffer + offset table, indexable
//	BareBuilder[T] → BareArray[T]  - flat buffer only, per-row descriptors
//
// Use [Array] unless the offset table is too large to ship. With
// [BareBuilder], every row the consumer needs is resolved at build time by
// [BareBuilder.GetPrecalc] into a [RowDescriptor]; the emitter writes each
// as an independent slice expression over the flat buffer:
//
//	var WordsElems = [...]string{"a", "b", "c"}
//	var WordsRow0 = WordsElems[0:2:2]
//
// # Access Modes
//
// [Array] offers three accessors computing the same span:
//
//	Get(i)          - checked, returns ErrIndexOutOfRange
//	At(i)           - panics on a bad index, like a slice index expression
//	GetUnchecked(i) - no bounds check; caller guarantees 0 <= i < Len()
//
// GetUnchecked relies on the offset table being non-decreasing and ending at
// len(elems). The table is written only by [Builder.Push] (generated code
// reproduces it through [Embed]), so the span end-start never underflows
// and never leaves the buffer.
//
// # Error Handling
//
// The only runtime error is [ErrIndexOutOfRange], returned by [Array.Get] as
// an [*IndexError]. Classification helpers delegate to
// [code.hybscloud.com/iox]:
//
//	jagged.IsOutOfRange(err)  // true for a bad checked index
//	jagged.IsNonFailure(err)  // true only for nil
//
// Contract violations are programmer errors: indexing an unpushed row with
// GetPrecalc, an out-of-range GetUnchecked, an offset table that was not
// produced by Push, or using a builder after Freeze. They are detected by
// assertions compiled in with the jaggeddebug build tag:
//
//	go test -tags jaggeddebug ./...
//
// Without the tag the assertions compile away and the trusted paths carry
// no checks.
//
// # Ownership
//
// A builder is owned by the single build step constructing it and is not
// safe for concurrent use. Freeze moves the storage into the array; the
// builder must not be read afterwards. Row views alias the array's storage,
// are capped at the row's end, and must not be modified or outlive it.
// Frozen arrays are immutable and safe for concurrent readers.
package jagged
