// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package emit

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"log/slog"
	"maps"
	"os"
	"path"
	"regexp"
	"slices"
	"strings"

	"code.hybscloud.com/jagged"
)

// JaggedImport is the import path generated files use for the runtime types.
const JaggedImport = "code.hybscloud.com/jagged"

var (
	ErrInvalidName     = errors.New("emit: invalid identifier")
	ErrDuplicateName   = errors.New("emit: duplicate identifier")
	ErrUnknownHandle   = errors.New("emit: handle not declared")
	ErrHandleKind      = errors.New("emit: handle declared with the other variant")
	ErrRowRange        = errors.New("emit: row outside the declared array")
	ErrUnsupportedElem = errors.New("emit: element has no default literal")
)

// Option configures a [File].
type Option func(*File)

// WithGenerator names the program in the "Code generated" header.
func WithGenerator(name string) Option {
	return func(f *File) {
		f.generator = name
	}
}

// WithLogger sets the logger receiving Debug records for each declaration.
func WithLogger(l *slog.Logger) Option {
	return func(f *File) {
		f.logger = l
	}
}

// arrayKind is the variant a handle was declared with.
type arrayKind uint8

const (
	kindFull arrayKind = iota + 1
	kindBare
)

func (k arrayKind) String() string {
	switch k {
	case kindFull:
		return "Array"
	case kindBare:
		return "BareArray"
	}
	return "unknown"
}

// declared records what the file knows about an emitted array.
type declared struct {
	kind     arrayKind
	rows     int
	elemsLen int
}

// ref is a row accessor whose target is checked when the file is rendered,
// so accessors may be declared before their array.
type ref struct {
	name string
	id   jagged.Handle
	kind arrayKind
	row  int                  // kindFull
	desc jagged.RowDescriptor // kindBare
}

// File accumulates declarations for one generated Go source file.
//
// A File is used by a single build step and is not safe for concurrent use.
type File struct {
	pkg       string
	generator string
	logger    *slog.Logger

	imports map[string]bool
	names   map[string]bool
	arrays  map[jagged.Handle]declared
	refs    []ref
	body    bytes.Buffer
	errs    []error
}

// NewFile creates an empty file for package pkg.
func NewFile(pkg string, opts ...Option) *File {
	f := &File{
		pkg:       pkg,
		generator: "jaggedgen",
		logger:    slog.New(slog.DiscardHandler),
		imports:   make(map[string]bool),
		names:     make(map[string]bool),
		arrays:    make(map[jagged.Handle]declared),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Import adds an import path, for element types or custom formatters that
// refer to other packages.
func (f *File) Import(path string) {
	f.imports[path] = true
}

// Err returns the declaration errors collected so far, joined.
func (f *File) Err() error {
	return errors.Join(f.errs...)
}

func (f *File) errorf(err error, format string, args ...any) {
	f.errs = append(f.errs, fmt.Errorf("%w: "+format, append([]any{err}, args...)...))
}

// claim reserves identifiers. It reports false, recording an error, if any
// of them is invalid or already taken.
func (f *File) claim(names ...string) bool {
	ok := true
	for _, name := range names {
		switch {
		case !token.IsIdentifier(name):
			f.errorf(ErrInvalidName, "%q", name)
			ok = false
		case f.names[name]:
			f.errorf(ErrDuplicateName, "%s", name)
			ok = false
		}
	}
	if ok {
		for _, name := range names {
			f.names[name] = true
		}
	}
	return ok
}

func (f *File) printf(format string, args ...any) {
	fmt.Fprintf(&f.body, format, args...)
}

// resolve checks every row accessor against the arrays declared in the file.
func (f *File) resolve() []error {
	var errs []error
	for _, r := range f.refs {
		d, ok := f.arrays[r.id]
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("%w: %s (accessor %s)", ErrUnknownHandle, r.id, r.name))
		case d.kind != r.kind:
			errs = append(errs, fmt.Errorf("%w: %s is a %s (accessor %s)", ErrHandleKind, r.id, d.kind, r.name))
		case r.kind == kindFull && (r.row < 0 || r.row >= d.rows):
			errs = append(errs, fmt.Errorf("%w: %s row %d of %d (accessor %s)", ErrRowRange, r.id, r.row, d.rows, r.name))
		case r.kind == kindBare && (r.desc.Offset < 0 || r.desc.Len < 0 || r.desc.End() > d.elemsLen):
			errs = append(errs, fmt.Errorf("%w: %s[%d:%d] of %d elements (accessor %s)",
				ErrRowRange, r.id, r.desc.Offset, r.desc.End(), d.elemsLen, r.name))
		}
	}
	return errs
}

// shadowed reports declared identifiers that collide with the package name
// of one of the file's imports.
func (f *File) shadowed() []error {
	var errs []error
	for _, p := range slices.Sorted(maps.Keys(f.imports)) {
		if name := importName(p); f.names[name] {
			errs = append(errs, fmt.Errorf("%w: %s shadows import %q", ErrDuplicateName, name, p))
		}
	}
	return errs
}

var majorVersion = regexp.MustCompile(`^v[0-9]+$`)

// importName returns the conventional package name for an import path:
// the last element, skipping a trailing major version element and
// dropping a gopkg.in ".vN" suffix.
func importName(p string) string {
	name := path.Base(p)
	if majorVersion.MatchString(name) && path.Dir(p) != "." {
		name = path.Base(path.Dir(p))
	}
	if i := strings.LastIndex(name, ".v"); i > 0 && majorVersion.MatchString(name[i+1:]) {
		name = name[:i]
	}
	return name
}

// Bytes renders the file as gofmt-formatted Go source.
// Returns the collected declaration errors, if any.
func (f *File) Bytes() ([]byte, error) {
	errs := slices.Clone(f.errs)
	if !token.IsIdentifier(f.pkg) {
		errs = append(errs, fmt.Errorf("%w: package %q", ErrInvalidName, f.pkg))
	}
	errs = append(errs, f.shadowed()...)
	errs = append(errs, f.resolve()...)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by %s; DO NOT EDIT.\n\npackage %s\n", f.generator, f.pkg)
	if len(f.imports) > 0 {
		buf.WriteString("\nimport (\n")
		for _, p := range slices.Sorted(maps.Keys(f.imports)) {
			fmt.Fprintf(&buf, "\t%q\n", p)
		}
		buf.WriteString(")\n")
	}
	buf.Write(f.body.Bytes())

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("emit: format generated source: %w", err)
	}
	return src, nil
}

// WriteTo writes the rendered file to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	src, err := f.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(src)
	return int64(n), err
}

// WriteFile renders the file and writes it to path.
func (f *File) WriteFile(path string) error {
	src, err := f.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("emit: %w", err)
	}
	f.logger.Debug("wrote generated file", "path", path, "bytes", len(src), "arrays", len(f.arrays))
	return nil
}

// comment formats a doc comment line for a declaration.
func comment(name, format string, args ...any) string {
	return "// " + name + " " + strings.TrimSpace(fmt.Sprintf(format, args...)) + "\n"
}
