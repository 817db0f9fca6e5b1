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


// Package samples provides a small library of stub generator scripts for
// well-known puzzles, for use with a stubcompile.Compiler.
package samples

import (
	"embed"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/bufbuild/stubcompile"
)

// Dir is the directory that sample paths start with.
const Dir = "puzzles"

//go:embed puzzles/*.stub
var files embed.FS

// WithSamples returns a new resolver that can also provide the source code
// of the sample scripts, as "puzzles/<name>.stub". Files found by resolver
// take precedence.
func WithSamples(resolver stubcompile.Resolver) stubcompile.Resolver {
	return stubcompile.CompositeResolver{
		resolver,
		&stubcompile.SourceResolver{
			Accessor: func(path string) (io.ReadCloser, error) {
				return files.Open(path)
			},
		},
	}
}

// Names returns the paths of all sample scripts, sorted.
func Names() []string {
	// The pattern is constant and valid, so Glob cannot fail.
	names, _ := fs.Glob(files, path.Join(Dir, "*.stub"))
	return names
}

// Source returns the source of the named sample. The name may be given
// with or without the directory and extension.
func Source(name string) (string, bool) {
	name = strings.TrimSuffix(strings.TrimPrefix(name, Dir+"/"), ".stub")
	data, err := files.ReadFile(path.Join(Dir, name+".stub"))
	if err != nil {
		return "", false
	}
	return string(data), true
}
