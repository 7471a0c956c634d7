// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package emit writes finalized jagged array builders as Go source.
//
// A go:generate program builds its arrays with package
// code.hybscloud.com/jagged, declares them on a [File], and writes the file:
//
//	f := emit.NewFile("tables", emit.WithGenerator("tablegen"))
//
//	nums := jagged.NewBuilder[int]()
//	nums.Push([]int{1, 2, 3})
//	nums.Push([]int{4})
//	nums.Push([]int{5, 6})
//	emit.Array(f, jagged.NewHandle("NumArray"), nums)
//
//	h := jagged.NewHandle("Words")
//	words := jagged.NewBareBuilder[string]()
//	words.Push([]string{"a", "b"})
//	words.Push([]string{"c"})
//	emit.Row(f, "FirstWords", words.GetPrecalc(h, 0))
//	emit.BareArray(f, h, words)
//
//	if err := f.WriteFile("tables_gen.go"); err != nil {
//	    log.Fatal(err)
//	}
//
// The full variant becomes a [jagged.Embed] call plus Len/ElemsLen
// constants. The bare variant becomes a fixed-size element array and one
// slice expression per requested row, resolved at build time:
//
//	var WordsElems = [...]string{
//	    "a", "b", // 0
//	    "c",      // 1
//	}
//	var FirstWords = WordsElems[0:2:2]
//
// Declaration errors (invalid or duplicate identifiers, descriptors for
// undeclared arrays, rows out of range) are collected and reported by
// [File.Bytes].
package emit
