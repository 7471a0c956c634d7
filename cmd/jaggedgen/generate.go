// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"code.hybscloud.com/jagged"
	"code.hybscloud.com/jagged/emit"
)

// arrayEmitter builds one manifest array and declares it on f.
type arrayEmitter func(f *emit.File, a *arraySpec) error

// elemTypes maps manifest type names to emitters. byte and rune keep their
// alias names in the generated source.
var elemTypes = map[string]arrayEmitter{
	"bool":    emitterFor[bool]("bool"),
	"string":  emitterFor[string]("string"),
	"int":     emitterFor[int]("int"),
	"int8":    emitterFor[int8]("int8"),
	"int16":   emitterFor[int16]("int16"),
	"int32":   emitterFor[int32]("int32"),
	"int64":   emitterFor[int64]("int64"),
	"uint":    emitterFor[uint]("uint"),
	"uint8":   emitterFor[uint8]("uint8"),
	"uint16":  emitterFor[uint16]("uint16"),
	"uint32":  emitterFor[uint32]("uint32"),
	"uint64":  emitterFor[uint64]("uint64"),
	"float32": emitterFor[float32]("float32"),
	"float64": emitterFor[float64]("float64"),
	"byte":    emitterFor[byte]("byte"),
	"rune":    emitterFor[rune]("rune"),
}

func generate(f *emit.File, m *manifest) error {
	for i := range m.Arrays {
		a := &m.Arrays[i]
		if err := elemTypes[a.Type](f, a); err != nil {
			return err
		}
	}
	return f.Err()
}

func emitterFor[T any](typeName string) arrayEmitter {
	return func(f *emit.File, a *arraySpec) error {
		var rows [][]T
		if a.Rows.Kind != 0 {
			if err := a.Rows.Decode(&rows); err != nil {
				return fmt.Errorf("array %s: rows: %w", a.Name, err)
			}
		}
		// GetPrecalc treats an unpushed row as a programmer error, so
		// manifest indices are checked here.
		for _, acc := range a.Accessors {
			if acc.Row < 0 || acc.Row >= len(rows) {
				return fmt.Errorf("array %s: accessor %s: row %d out of range [0:%d]", a.Name, acc.Name, acc.Row, len(rows))
			}
		}

		h := jagged.NewHandle(a.Name)
		elemType := emit.ElemType[T](typeName)
		if a.Bare {
			b := jagged.NewBareBuilder[T]()
			for _, row := range rows {
				b.Push(row)
			}
			emit.BareArray(f, h, b, elemType)
			for _, acc := range a.Accessors {
				emit.Row(f, acc.Name, b.GetPrecalc(h, acc.Row))
			}
			return nil
		}

		b := jagged.NewBuilder[T]()
		for _, row := range rows {
			b.Push(row)
		}
		emit.Array(f, h, b, elemType)
		for _, acc := range a.Accessors {
			emit.ArrayRow(f, acc.Name, h, acc.Row)
		}
		return nil
	}
}
