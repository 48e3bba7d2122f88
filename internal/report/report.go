/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package report describes a single driver run and writes it as YAML.
package report

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Operation is one timed step of a run.
type Operation struct {
	// Name is the operation label, e.g. "sum" or "show"
	Name string `yaml:"name"`

	// Inputs are the numbers passed to the operation
	Inputs []int `yaml:"inputs"`

	// Result is set for summations that completed
	Result *int `yaml:"result,omitempty"`

	// Seconds is the elapsed wall time of the operation
	Seconds float64 `yaml:"seconds"`

	// Error holds the failure message, if any
	Error string `yaml:"error,omitempty"`
}

// Report collects the operations of a run and the values finally displayed.
type Report struct {
	OverflowPolicy string      `yaml:"overflowPolicy"`
	Operations     []Operation `yaml:"operations"`
	Displayed      []int       `yaml:"displayed,omitempty"`
}

// Add appends an operation to the report.
func (r *Report) Add(op Operation) {
	r.Operations = append(r.Operations, op)
}

// Encode writes the report to w as YAML.
func (r *Report) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

// WriteFile writes the report to path, replacing any existing file.
func (r *Report) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close report file: %w", cerr)
		}
	}()
	return r.Encode(f)
}
