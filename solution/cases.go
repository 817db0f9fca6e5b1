// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package solution runs a candidate solution against puzzle test cases.
//
// Each test case is run by starting the solution's command, writing the
// case input to its standard input and comparing what it prints with the
// expected output. Cases run one after another, lazily, as the returned
// sequence is consumed.
package solution

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// TestCase is one input and the output a correct solution prints for it.
type TestCase struct {
	Title  string `yaml:"title"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// LoadCases decodes a YAML list of test cases. Unknown keys are errors.
func LoadCases(r io.Reader) ([]TestCase, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cases []TestCase
	if err := dec.Decode(&cases); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	for i, tc := range cases {
		if tc.Title == "" {
			cases[i].Title = fmt.Sprintf("Test %d", i+1)
		}
	}
	return cases, nil
}

// LoadCasesFile is like LoadCases, but reads the named file.
func LoadCasesFile(path string) ([]TestCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cases, err := LoadCases(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}
