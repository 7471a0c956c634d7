// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command jaggedgen generates Go source embedding jagged arrays described by
// a YAML manifest.
//
// Typical use is from a go:generate directive:
//
//	//go:generate go run code.hybscloud.com/jagged/cmd/jaggedgen -in tables.yaml -out tables_gen.go
//
// See manifest.go for the manifest format.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"code.hybscloud.com/jagged/emit"
)

func main() {
	if err := mainImpl(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "jaggedgen: %v\n", err)
		}
		os.Exit(1)
	}
}

func mainImpl(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("jaggedgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "Manifest path, or - for stdin")
	out := fs.String("out", "", "Output path; stdout when empty")
	pkg := fs.String("pkg", "", "Package name; overrides the manifest")
	verbose := fs.Bool("v", false, "Log declarations")
	quiet := fs.Bool("q", false, "Only log warnings and errors")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unknown arguments: %v", fs.Args())
	}
	if *in == "" {
		return errors.New("-in is required")
	}

	ll := &slog.LevelVar{}
	switch {
	case *verbose:
		ll.Set(slog.LevelDebug)
	case *quiet:
		ll.Set(slog.LevelWarn)
	}
	logger := newLogger(stderr, ll)

	m, err := loadManifest(*in)
	if err != nil {
		return err
	}
	if *pkg != "" {
		m.Package = *pkg
	}

	f := emit.NewFile(m.Package, emit.WithGenerator("jaggedgen"), emit.WithLogger(logger))
	if err := generate(f, m); err != nil {
		return err
	}

	if *out == "" {
		_, err = f.WriteTo(stdout)
		return err
	}
	if err := f.WriteFile(*out); err != nil {
		return err
	}
	logger.Info("generated", "out", *out, "package", m.Package, "arrays", len(m.Arrays))
	return nil
}

// newLogger returns a tint logger on w. Colour is enabled only when w is a
// terminal.
func newLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	noColor := true
	if file, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(file.Fd())
		w = colorable.NewColorable(file)
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
	}))
}
