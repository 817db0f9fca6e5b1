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
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/stubcompile/ast"
	"github.com/bufbuild/stubcompile/internal/cases"
)

// ConfigFile is the name of the file, in a language's directory, that
// holds its settings. All *.tmpl files next to it are its templates.
const ConfigFile = "config.yaml"

// Language holds the settings and templates of one target language.
type Language struct {
	Name          string `yaml:"name"`
	SourceFileExt string `yaml:"source_file_ext"`

	// The case that identifiers from the script are converted to.
	VariableNameCase cases.Case `yaml:"variable_name_case"`
	// Identifiers that would clash with the language. They get an
	// underscore suffix.
	Keywords []string `yaml:"keywords"`

	// Indentation unit, and the level commands are rendered at in the
	// main template.
	Indent     string `yaml:"indent"`
	BodyIndent int    `yaml:"body_indent"`

	// Per-type strings for the templates, keyed by type name (int, float,
	// long, bool, word, string).
	TypeTokens map[string]string `yaml:"type_tokens"`

	// Name of the preprocessor to run before rendering, if any.
	Preprocessor string `yaml:"preprocessor"`

	templates *template.Template
}

// LoadLanguage loads a language from the given directory of fsys.
func LoadLanguage(fsys fs.FS, dir string) (*Language, error) {
	data, err := fs.ReadFile(fsys, path.Join(dir, ConfigFile))
	if err != nil {
		return nil, err
	}

	lang := new(Language)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(lang); err != nil {
		return nil, fmt.Errorf("%s: %w", path.Join(dir, ConfigFile), err)
	}
	if lang.Name == "" {
		lang.Name = path.Base(dir)
	}

	lang.templates, err = template.New(lang.Name).
		Funcs(lang.funcs()).
		ParseFS(fsys, path.Join(dir, "*.tmpl"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", lang.Name, err)
	}
	for _, name := range requiredTemplates {
		if lang.templates.Lookup(name+".tmpl") == nil {
			return nil, &Error{Lang: lang.Name, Template: name, Err: ErrUnknownTemplate}
		}
	}
	return lang, nil
}

// Templates every language must provide. A language that uses the
// read_batch preprocessor also needs a read_batch template, which is
// checked when it is used.
var requiredTemplates = []string{"main", "read_one", "read_many", "write", "write_join", "loop", "loopline"}

// VariableName converts an identifier from a script into an identifier of
// this language.
func (l *Language) VariableName(ident string) string {
	name := l.VariableNameCase.Convert(ident)
	if name == "" {
		name = ident
	}
	if slices.Contains(l.Keywords, name) {
		name += "_"
	}
	return name
}

// TypeToken returns the language's token for the given variable type, or
// "" if it has none.
func (l *Language) TypeToken(t ast.VarType) string {
	return l.TypeTokens[t.String()]
}

func (l *Language) funcs() template.FuncMap {
	return template.FuncMap{
		"name":  l.VariableName,
		"token": l.TypeToken,
		"names": func(vars []*ast.VariableCommand, sep string) string {
			names := make([]string, len(vars))
			for i, v := range vars {
				names[i] = l.VariableName(v.Ident)
			}
			return strings.Join(names, sep)
		},
		// common returns the type token shared by all of vars, or "" if
		// they differ.
		"common": func(vars []*ast.VariableCommand) string {
			if len(vars) == 0 {
				return ""
			}
			tok := l.TypeToken(vars[0].Type)
			for _, v := range vars[1:] {
				if l.TypeToken(v.Type) != tok {
					return ""
				}
			}
			return tok
		},
		"quote": strconv.Quote,
		"lines": func(text string) []string {
			if text == "" {
				return nil
			}
			return strings.Split(text, "\n")
		},
		"chomp": func(text string) string {
			return strings.TrimRight(text, "\n")
		},
	}
}
