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


// Package preprocessor contains passes that rewrite a parsed stub before it
// is rendered for a particular language.
//
// A pass may replace parts of the command list with [ast.External] nodes
// that carry their own rendering logic. Such nodes are found again by type
// assertion on [ast.External.Renderable].
package preprocessor

import (
	"fmt"

	"github.com/bufbuild/stubcompile/ast"
)

// Preprocessor rewrites a stub in place.
type Preprocessor func(*ast.Stub)

// Names of the built-in preprocessors, as used by language catalogs.
const (
	NameReadBatches = "read_batch"
)

// Lookup returns the preprocessor with the given name. The empty name
// returns nil, which means no preprocessing.
func Lookup(name string) (Preprocessor, error) {
	switch name {
	case "":
		return nil, nil
	case NameReadBatches:
		return ReadBatches, nil
	default:
		return nil, fmt.Errorf("unknown preprocessor %q", name)
	}
}

// Apply runs the given preprocessors on stub, in order. Nil entries are
// skipped.
func Apply(stub *ast.Stub, preprocessors ...Preprocessor) {
	for _, pre := range preprocessors {
		if pre != nil {
			pre(stub)
		}
	}
}
