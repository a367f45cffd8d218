// SPDX-License-Identifier: MIT

package lp

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Problem is the on-disk description of a program as a user writes it:
//
//	sense: max
//	objective: [3, 2]
//	constraints:
//	  - {coefficients: [1, 1], operator: "<=", rhs: 4}
type Problem struct {
	Sense       Sense     `json:"sense" yaml:"sense"`
	Objective   []float64 `json:"objective" yaml:"objective"`
	Constraints []Row     `json:"constraints" yaml:"constraints"`
}

// LinearProgram canonicalises the problem (see Canonicalize).
func (p Problem) LinearProgram() (LinearProgram, error) {
	return Canonicalize(p.Sense, p.Objective, p.Constraints)
}

// DecodeJSON reads a Problem from JSON. Unknown fields are rejected.
func DecodeJSON(r io.Reader) (Problem, error) {
	var p Problem
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Problem{}, fmt.Errorf("decode json: %w: %w", ErrMalformedInput, err)
	}

	return p, nil
}

// DecodeYAML reads a Problem from YAML. Unknown fields are rejected.
func DecodeYAML(r io.Reader) (Problem, error) {
	var p Problem
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Problem{}, fmt.Errorf("decode yaml: %w: %w", ErrMalformedInput, err)
	}

	return p, nil
}

// DecodeFile picks the decoder by file extension: .json reads JSON, anything
// else (.yaml, .yml, none) reads YAML.
func DecodeFile(name string, r io.Reader) (Problem, error) {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return DecodeJSON(r)
	}

	return DecodeYAML(r)
}
