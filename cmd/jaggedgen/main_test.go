// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/jagged/emit"
)

const sampleManifest = `
package: tables
arrays:
  - name: NumArray
    type: int
    rows: [[1, 2, 3], [4], [5, 6]]
    accessors:
      - {name: FirstNums, row: 0}
  - name: Words
    type: string
    bare: true
    rows: [[a, b], [], [c]]
    accessors:
      - {name: WordsRow0, row: 0}
      - {name: WordsRow2, row: 2}
  - name: Ratios
    type: float32
    rows: [[0.5], [1.25, 2]]
  - name: Bytes
    type: byte
    bare: true
    rows: [[255, 0]]
  - name: Signed
    type: float64
    rows: [[-0.0, 1]]
`

// typeCheck type-checks generated source as a standalone package.
func typeCheck(t *testing.T, src []byte) {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "tables_gen.go", src, 0)
	require.NoError(t, err)
	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	_, err = conf.Check(file.Name.Name, fset, []*ast.File{file}, nil)
	require.NoError(t, err, "generated source:\n%s", src)
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGenerateFile(t *testing.T) {
	in := writeManifest(t, sampleManifest)
	out := filepath.Join(t.TempDir(), "tables_gen.go")
	var stdout, stderr bytes.Buffer

	require.NoError(t, mainImpl([]string{"-in", in, "-out", out, "-v"}, &stdout, &stderr))
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "generated")
	require.Contains(t, stderr.String(), "emit array")

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	s := string(src)

	require.True(t, strings.HasPrefix(s, "// Code generated by jaggedgen; DO NOT EDIT."))
	require.Contains(t, s, "package tables")
	require.Contains(t, s, "var NumArray = jagged.Embed(")
	require.Contains(t, s, "[]int{3, 4, 6},")
	require.Contains(t, s, "var FirstNums = NumArray.At(0)")
	require.Contains(t, s, "var WordsElems = [...]string{")
	require.Contains(t, s, "var WordsRow0 = WordsElems[0:2:2]")
	require.Contains(t, s, "var WordsRow2 = WordsElems[2:3:3]")
	require.Contains(t, s, "[]float32{")
	require.Contains(t, s, "1.25, 2, // 1")
	require.Contains(t, s, "var BytesElems = [...]byte{")
	require.Contains(t, s, "255, 0, // 0")
	require.Contains(t, s, "math.Copysign(0, -1), 1, // 0")

	typeCheck(t, src)
}

func TestGenerateStdout(t *testing.T) {
	in := writeManifest(t, sampleManifest)
	var stdout, stderr bytes.Buffer

	require.NoError(t, mainImpl([]string{"-in", in, "-pkg", "other", "-q"}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "package other")
	require.Empty(t, stderr.String())
}

func TestParseManifest(t *testing.T) {
	m, err := parseManifest(strings.NewReader(sampleManifest))
	require.NoError(t, err)
	require.Equal(t, "tables", m.Package)
	require.Len(t, m.Arrays, 5)
	require.True(t, m.Arrays[1].Bare)
	require.Equal(t, []accessor{{Name: "WordsRow0", Row: 0}, {Name: "WordsRow2", Row: 2}}, m.Arrays[1].Accessors)
}

func TestManifestErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		want     string
	}{
		{
			name:     "Empty",
			manifest: "",
			want:     "empty manifest",
		},
		{
			name:     "UnknownField",
			manifest: "package: p\ncolumns: 3\n",
			want:     "field columns not found",
		},
		{
			name:     "MissingPackage",
			manifest: "arrays:\n  - {name: A, type: int, rows: [[1]]}\n",
			want:     "package is required",
		},
		{
			name:     "NoArrays",
			manifest: "package: p\n",
			want:     "no arrays declared",
		},
		{
			name:     "BadName",
			manifest: "package: p\narrays:\n  - {name: 2A, type: int}\n",
			want:     `invalid name "2A"`,
		},
		{
			name:     "BadType",
			manifest: "package: p\narrays:\n  - {name: A, type: complex128}\n",
			want:     `unsupported type "complex128"`,
		},
		{
			name:     "RowsNotSequence",
			manifest: "package: p\narrays:\n  - {name: A, type: int, rows: 3}\n",
			want:     "rows must be a sequence",
		},
		{
			name:     "AccessorWithoutName",
			manifest: "package: p\narrays:\n  - {name: A, type: int, rows: [[1]], accessors: [{row: 0}]}\n",
			want:     "accessors[0]: name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseManifest(strings.NewReader(tt.manifest))
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		want     string
		is       error
	}{
		{
			name:     "RowTypeMismatch",
			manifest: "package: p\narrays:\n  - {name: A, type: int, rows: [[x]]}\n",
			want:     "array A: rows",
		},
		{
			name:     "AccessorOutOfRange",
			manifest: "package: p\narrays:\n  - {name: A, type: int, bare: true, rows: [[1]], accessors: [{name: R, row: 1}]}\n",
			want:     "row 1 out of range [0:1]",
		},
		{
			name:     "DuplicateArray",
			manifest: "package: p\narrays:\n  - {name: A, type: int}\n  - {name: A, type: string}\n",
			is:       emit.ErrDuplicateName,
		},
		{
			name:     "ShadowsImport",
			manifest: "package: p\narrays:\n  - {name: jagged, type: int, rows: [[1]]}\n",
			is:       emit.ErrDuplicateName,
		},
		{
			name:     "AccessorCollision",
			manifest: "package: p\narrays:\n  - {name: A, type: int, rows: [[1]], accessors: [{name: ALen, row: 0}]}\n",
			is:       emit.ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := writeManifest(t, tt.manifest)
			var stdout, stderr bytes.Buffer
			err := mainImpl([]string{"-in", in}, &stdout, &stderr)
			require.Error(t, err)
			if tt.want != "" {
				require.ErrorContains(t, err, tt.want)
			}
			if tt.is != nil {
				require.ErrorIs(t, err, tt.is)
			}
			require.Empty(t, stdout.String())
		})
	}
}

func TestFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.ErrorContains(t, mainImpl(nil, &stdout, &stderr), "-in is required")
	require.ErrorContains(t, mainImpl([]string{"-in", "x", "extra"}, &stdout, &stderr), "unknown arguments")
	require.Error(t, mainImpl([]string{"-bogus"}, &stdout, &stderr))

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	require.ErrorIs(t, mainImpl([]string{"-in", missing}, &stdout, &stderr), os.ErrNotExist)
}
