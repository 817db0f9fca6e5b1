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

package renderer

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"path"
	"sync"

	"github.com/tidwall/btree"
)

//go:embed languages
var builtin embed.FS

// Registry is a catalog of languages, ordered by name.
type Registry struct {
	langs btree.Map[string, *Language]
}

// Builtin returns the registry of languages that ship with this package.
var Builtin = sync.OnceValues(func() (*Registry, error) {
	sub, err := fs.Sub(builtin, "languages")
	if err != nil {
		return nil, err
	}
	return LoadRegistry(sub)
})

// LoadRegistry loads every language in fsys. Each language is a top-level
// directory holding a config.yaml file and its templates.
func LoadRegistry(fsys fs.FS) (*Registry, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	reg := new(Registry)
	var errs []error
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := fs.Stat(fsys, path.Join(entry.Name(), ConfigFile)); err != nil {
			continue
		}
		lang, err := LoadLanguage(fsys, entry.Name())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		reg.Register(lang)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return reg, nil
}

// Register adds lang to the registry, replacing any language of the same
// name.
func (r *Registry) Register(lang *Language) {
	r.langs.Set(lang.Name, lang)
}

// Lookup returns the language with the given name.
func (r *Registry) Lookup(name string) (*Language, error) {
	lang, ok := r.langs.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownLanguage, name)
	}
	return lang, nil
}

// Len returns the number of languages in the registry.
func (r *Registry) Len() int {
	return r.langs.Len()
}

// Languages yields the registered languages in name order.
func (r *Registry) Languages() iter.Seq[*Language] {
	return func(yield func(*Language) bool) {
		it := r.langs.Iter()
		for more := it.First(); more; more = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Names returns the names of the registered languages, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.Len())
	for lang := range r.Languages() {
		names = append(names, lang.Name)
	}
	return names
}
