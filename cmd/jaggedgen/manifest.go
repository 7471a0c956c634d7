// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// manifest is the YAML input of jaggedgen:
//
//	package: tables
//	arrays:
//	  - name: NumArray
//	    type: int
//	    rows: [[1, 2, 3], [4], [5, 6]]
//	    accessors:
//	      - {name: FirstNums, row: 0}
//	  - name: Words
//	    type: string
//	    bare: true
//	    rows: [[a, b], [], [c]]
//	    accessors:
//	      - {name: WordsRow0, row: 0}
//
// A full array becomes a jagged.Array variable; accessors on it read a row
// with At. A bare array ships only its flat buffer; each accessor is a slice
// expression resolved at generation time.
type manifest struct {
	Package string      `yaml:"package"`
	Arrays  []arraySpec `yaml:"arrays"`
}

type arraySpec struct {
	Name      string     `yaml:"name"`
	Type      string     `yaml:"type"`
	Bare      bool       `yaml:"bare"`
	Rows      yaml.Node  `yaml:"rows"`
	Accessors []accessor `yaml:"accessors"`
}

type accessor struct {
	Name string `yaml:"name"`
	Row  int    `yaml:"row"`
}

func loadManifest(path string) (*manifest, error) {
	if path == "-" {
		return parseManifest(os.Stdin)
	}
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	m, err := parseManifest(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func parseManifest(r io.Reader) (*manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	m := &manifest{}
	if err := dec.Decode(m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty manifest")
		}
		return nil, err
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// validate checks what can be checked before rows are decoded. Row indices
// of accessors are checked in generate, once the row count is known.
func (m *manifest) validate() error {
	var errs []error
	if m.Package == "" {
		errs = append(errs, errors.New("package is required"))
	}
	if len(m.Arrays) == 0 {
		errs = append(errs, errors.New("no arrays declared"))
	}
	for i, a := range m.Arrays {
		if !token.IsIdentifier(a.Name) {
			errs = append(errs, fmt.Errorf("arrays[%d]: invalid name %q", i, a.Name))
		}
		if _, ok := elemTypes[a.Type]; !ok {
			errs = append(errs, fmt.Errorf("arrays[%d] %s: unsupported type %q", i, a.Name, a.Type))
		}
		if a.Rows.Kind != 0 && a.Rows.Kind != yaml.SequenceNode {
			errs = append(errs, fmt.Errorf("arrays[%d] %s: rows must be a sequence (line %d)", i, a.Name, a.Rows.Line))
		}
		for j, acc := range a.Accessors {
			if acc.Name == "" {
				errs = append(errs, fmt.Errorf("arrays[%d] %s: accessors[%d]: name is required", i, a.Name, j))
			}
		}
	}
	return errors.Join(errs...)
}
