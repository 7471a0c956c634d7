// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package emit

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// elemConfig controls how elements of type T are written.
type elemConfig[T any] struct {
	typeName string
	format   func(T) string
}

// ElemOption configures element rendering for one array.
type ElemOption[T any] func(*elemConfig[T])

// ElemType overrides the element type name written in the generated source.
// Required for types declared outside the generated package; add the
// package with [File.Import].
//
// Without a [Formatter], struct elements are written as elided composite
// literals, so a type from another package can only carry exported fields.
func ElemType[T any](name string) ElemOption[T] {
	return func(c *elemConfig[T]) {
		c.typeName = name
	}
}

// Formatter overrides how a single element is written as a Go expression.
func Formatter[T any](fn func(T) string) ElemOption[T] {
	return func(c *elemConfig[T]) {
		c.format = fn
	}
}

// newElemConfig applies opts for the array named name. The default
// formatter records at most one ErrUnsupportedElem on f per array.
func newElemConfig[T any](f *File, name string, opts []ElemOption[T]) elemConfig[T] {
	c := elemConfig[T]{typeName: reflect.TypeFor[T]().String()}
	for _, opt := range opts {
		opt(&c)
	}
	if c.format == nil {
		lw := literalWriter{
			elemType:  c.typeName,
			qualified: strings.Contains(c.typeName, "."),
		}
		reported := false
		c.format = func(v T) string {
			s, err := lw.write(reflect.ValueOf(&v).Elem())
			if err != nil {
				if !reported {
					f.errorf(ErrUnsupportedElem, "%s: %v; use Formatter", name, err)
					reported = true
				}
				return "*new(" + c.typeName + ")"
			}
			if lw.needsMath {
				f.Import("math")
			}
			return s
		}
	}
	return c
}

// literalWriter writes element values as Go expressions assignable to the
// element type.
type literalWriter struct {
	elemType  string // Element type expression as written in the source
	qualified bool   // Element type lives in another package
	needsMath bool   // Some expression refers to package math
}

func (w *literalWriter) write(v reflect.Value) (string, error) {
	if v.Kind() == reflect.Struct {
		return w.structLiteral(v)
	}
	return w.basic(v, w.elemType)
}

// basic writes a value of a basic kind. conv is the type expression that
// math calls are converted to; "" means the value's type cannot be named
// here.
func (w *literalWriter) basic(v reflect.Value, conv string) (string, error) {
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		bits := 64
		if v.Kind() == reflect.Float32 {
			bits = 32
		}
		s, special := floatLiteral(v.Float(), bits)
		if !special || v.Type() == reflect.TypeFor[float64]() {
			w.needsMath = w.needsMath || special
			return s, nil
		}
		if conv == "" {
			return "", fmt.Errorf("%s of type %s has no nameable conversion", s, v.Type())
		}
		w.needsMath = true
		return conv + "(" + s + ")", nil
	case reflect.String:
		return strconv.Quote(v.String()), nil
	}
	return "", fmt.Errorf("no literal for %s of kind %s", v.Type(), v.Kind())
}

// structLiteral writes v as an elided composite literal, valid as an
// element of a []T or [...]T literal. Zero fields are omitted.
func (w *literalWriter) structLiteral(v reflect.Value) (string, error) {
	t := v.Type()
	var fields []string
	for i := range t.NumField() {
		sf := t.Field(i)
		fv := v.Field(i)
		if fv.IsZero() {
			continue
		}
		if !sf.IsExported() && w.qualified {
			return "", fmt.Errorf("unexported field %s.%s", t, sf.Name)
		}
		// Predeclared types are the only field types nameable without
		// knowing the generated package.
		conv := ""
		if sf.Type.PkgPath() == "" && sf.Type.Name() != "" {
			conv = sf.Type.Name()
		}
		s, err := w.basic(fv, conv)
		if err != nil {
			return "", fmt.Errorf("field %s: %w", sf.Name, err)
		}
		fields = append(fields, sf.Name+": "+s)
	}
	return "{" + strings.Join(fields, ", ") + "}", nil
}

// floatLiteral writes x with the shortest representation that round-trips
// at the given bit size. special reports that the result is a math call,
// typed float64, for NaN, ±Inf and negative zero.
func floatLiteral(x float64, bits int) (s string, special bool) {
	switch {
	case math.IsNaN(x):
		return "math.NaN()", true
	case math.IsInf(x, 1):
		return "math.Inf(1)", true
	case math.IsInf(x, -1):
		return "math.Inf(-1)", true
	case x == 0 && math.Signbit(x):
		// The constant -0 is +0.
		return "math.Copysign(0, -1)", true
	}
	return strconv.FormatFloat(x, 'g', -1, bits), false
}
