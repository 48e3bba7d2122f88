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

// Package show provides the display utility: it writes integer sequences to an
// output stream, one decimal value per line, in input order.
package show

import (
	"fmt"
	"io"
	"os"
)

// Show writes numbers to its output stream.
type Show struct {
	out io.Writer
}

// New creates a Show writing to out. A nil out selects os.Stdout.
func New(out io.Writer) *Show {
	if out == nil {
		out = os.Stdout
	}
	return &Show{out: out}
}

// ShowNumbers writes each number followed by a newline. Nothing is written for an
// empty sequence. The first write failure is returned and no further numbers are written.
func (s *Show) ShowNumbers(numbers ...int) error {
	for i, n := range numbers {
		if _, err := fmt.Fprintln(s.out, n); err != nil {
			return fmt.Errorf("failed to show number %d of %d: %w", i+1, len(numbers), err)
		}
	}
	return nil
}
