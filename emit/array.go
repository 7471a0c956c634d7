// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package emit

import (
	"strconv"
	"strings"

	"code.hybscloud.com/jagged"
)

// Array declares the full variant of a jagged array:
//
//	var <Name> = jagged.Embed([]T{...}, []int{...})
//	const <Name>Len = rows
//	const <Name>ElemsLen = elements
//
// where Name is h.Name(). The flat buffer and offset table are written
// exactly as b holds them. b is only read.
func Array[T any](f *File, h jagged.Handle, b *jagged.Builder[T], opts ...ElemOption[T]) {
	name := h.Name()
	if !f.claim(name, name+"Len", name+"ElemsLen") {
		return
	}
	c := newElemConfig(f, name, opts)
	f.Import(JaggedImport)
	f.arrays[h] = declared{kind: kindFull, rows: b.Len(), elemsLen: b.ElemsLen()}

	f.printf("\n%s", comment(name, "is a jagged array of %d rows and %d elements.", b.Len(), b.ElemsLen()))
	f.printf("var %s = jagged.Embed(\n", name)
	writeElems(f, c, b.Elems(), b.Offsets())
	f.printf(",\n[]int{%s},\n)\n", joinInts(b.Offsets()))
	f.printf("\nconst (\n%sLen = %d\n%sElemsLen = %d\n)\n", name, b.Len(), name, b.ElemsLen())

	f.logger.Debug("emit array", "name", name, "rows", b.Len(), "elems", b.ElemsLen(), "type", c.typeName)
}

// ArrayRow declares a named accessor for row i of the full array h:
//
//	var <name> = <h>.At(i)
//
// h must be declared on the same file with [Array] and i must be one of its
// rows; both are checked when the file is rendered.
func ArrayRow(f *File, name string, h jagged.Handle, i int) {
	if !f.claim(name) {
		return
	}
	f.refs = append(f.refs, ref{name: name, id: h, kind: kindFull, row: i})
	f.printf("\n%s", comment(name, "is row %d of %s.", i, h.Name()))
	f.printf("var %s = %s.At(%d)\n", name, h.Name(), i)
}

// BareArray declares the bare variant of a jagged array:
//
//	var <Name>Elems = [...]T{...}
//	const <Name>ElemsLen = elements
//	var <Name> = jagged.EmbedBare(<Name>Elems[:])
//
// No offset table is written. Rows are reached through accessors declared
// with [Row] or [Rows].
func BareArray[T any](f *File, h jagged.Handle, b *jagged.BareBuilder[T], opts ...ElemOption[T]) {
	name := h.Name()
	if !f.claim(name, name+"Elems", name+"ElemsLen") {
		return
	}
	c := newElemConfig(f, name, opts)
	f.Import(JaggedImport)
	f.arrays[h] = declared{kind: kindBare, rows: b.Len(), elemsLen: b.ElemsLen()}

	// Row boundaries only drive line breaks; they are not emitted.
	offsets := make([]int, b.Len())
	end := 0
	for i := range offsets {
		end += len(b.Row(i))
		offsets[i] = end
	}

	f.printf("\n%s", comment(name+"Elems", "is the flat element buffer of %s, %d rows.", name, b.Len()))
	f.printf("var %sElems = [...]%s", name, c.typeName)
	writeRows(f, c, b.Elems(), offsets)
	f.printf("\nconst %sElemsLen = %d\n", name, b.ElemsLen())
	f.printf("\n%s", comment(name, "resolves descriptors over %sElems.", name))
	f.printf("var %s = jagged.EmbedBare(%sElems[:])\n", name, name)

	f.logger.Debug("emit bare array", "name", name, "rows", b.Len(), "elems", b.ElemsLen(), "type", c.typeName)
}

// Row declares a named accessor for the row d describes:
//
//	var <name> = <d.ID>Elems[off:end:end]
//
// The bounds are literals resolved at build time; no offset table is
// consulted at runtime.
func Row(f *File, name string, d jagged.RowDescriptor) {
	if !f.claim(name) {
		return
	}
	f.refs = append(f.refs, ref{name: name, id: d.ID, kind: kindBare, desc: d})
	f.printf("\n%s", comment(name, "is %s[%d:%d].", d.ID.Name(), d.Offset, d.End()))
	f.printf("var %s = %sElems[%d:%d:%d]\n", name, d.ID.Name(), d.Offset, d.End(), d.End())
}

// Rows declares an accessor for every descriptor b has produced, in request
// order. name chooses the identifier for the i-th descriptor.
func Rows[T any](f *File, b *jagged.BareBuilder[T], name func(i int, d jagged.RowDescriptor) string) {
	for i, d := range b.Descriptors() {
		Row(f, name(i, d), d)
	}
}

// writeElems writes elems as a []T literal, one source line per row.
func writeElems[T any](f *File, c elemConfig[T], elems []T, offsets []int) {
	f.printf("[]%s", c.typeName)
	writeRows(f, c, elems, offsets)
}

// writeRows writes the braces and contents of a composite literal holding
// elems, one line per row with the row index as a trailing comment.
func writeRows[T any](f *File, c elemConfig[T], elems []T, offsets []int) {
	if len(offsets) == 0 {
		f.printf("{}")
		return
	}
	f.printf("{\n")
	start := 0
	for i, end := range offsets {
		if end == start {
			f.printf("// %d: empty\n", i)
			continue
		}
		lits := make([]string, 0, end-start)
		for _, v := range elems[start:end] {
			lits = append(lits, c.format(v))
		}
		f.printf("%s, // %d\n", strings.Join(lits, ", "), i)
		start = end
	}
	f.printf("}")
}

func joinInts(xs []int) string {
	var sb strings.Builder
	for i, x := range xs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(x))
	}
	return sb.String()
}
