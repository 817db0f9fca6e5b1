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

package renderer_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/stubcompile/ast"
	"github.com/bufbuild/stubcompile/internal/corpora"
	"github.com/bufbuild/stubcompile/parser"
	"github.com/bufbuild/stubcompile/preprocessor"
	"github.com/bufbuild/stubcompile/renderer"
)

func builtin(t *testing.T) *renderer.Registry {
	t.Helper()
	reg, err := renderer.Builtin()
	require.NoError(t, err)
	return reg
}

func lookup(t *testing.T, name string) *renderer.Language {
	t.Helper()
	lang, err := builtin(t).Lookup(name)
	require.NoError(t, err)
	return lang
}

func mustParse(t *testing.T, src string) *ast.Stub {
	t.Helper()
	stub, err := parser.Parse("test.stub", strings.NewReader(src), nil)
	require.NoError(t, err)
	return stub
}

// generate renders src the way a compiler would: it runs the language's
// preprocessor, then renders the result.
func generate(t *testing.T, lang *renderer.Language, src string) string {
	t.Helper()
	stub := mustParse(t, src)
	pre, err := preprocessor.Lookup(lang.Preprocessor)
	require.NoError(t, err)
	preprocessor.Apply(stub, pre)

	out, err := renderer.RenderStub(lang, stub, false)
	require.NoError(t, err)
	return strings.TrimSpace(out)
}

func TestCorpus(t *testing.T) {
	t.Parallel()

	var outputs []corpora.Output
	langs := builtin(t).Names()
	for _, name := range langs {
		outputs = append(outputs, corpora.Output{Extension: lookup(t, name).SourceFileExt})
	}

	corpus := corpora.Corpus{
		Root:       "testdata",
		Refresh:    "STUBCOMPILE_REFRESH",
		Extensions: []string{"stub"},
		Outputs:    outputs,
		Parallel:   true,
	}
	corpus.Run(t, func(t *testing.T, _, text string) []string {
		results := make([]string, len(langs))
		for i, name := range langs {
			results[i] = generate(t, lookup(t, name), text) + "\n"
		}
		return results
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	got := generate(t, lookup(t, "ruby"), "read m:int n:int\nwrite result")
	assert.Equal(t, "m, n = gets.split.map(&:to_i)\nputs \"result\"", got)
}

func TestBuiltinLanguages(t *testing.T) {
	t.Parallel()

	reg := builtin(t)
	assert.Equal(t, []string{"clojure", "go", "python", "ruby"}, reg.Names())
	assert.Equal(t, 4, reg.Len())

	var exts []string
	for lang := range reg.Languages() {
		exts = append(exts, lang.SourceFileExt)
	}
	assert.Equal(t, []string{"clj", "go", "py", "rb"}, exts)

	_, err := reg.Lookup("cobol")
	require.ErrorIs(t, err, renderer.ErrUnknownLanguage)
	assert.Contains(t, err.Error(), `"cobol"`)
}

func TestVariableName(t *testing.T) {
	t.Parallel()

	ruby := lookup(t, "ruby")
	assert.Equal(t, "num_rows", ruby.VariableName("numRows"))
	assert.Equal(t, "end_", ruby.VariableName("end"))
	assert.Equal(t, "i_", ruby.VariableName("i"))

	golang := lookup(t, "go")
	assert.Equal(t, "numRows", golang.VariableName("num_rows"))
	assert.Equal(t, "type_", golang.VariableName("type"))

	clojure := lookup(t, "clojure")
	assert.Equal(t, "num-rows", clojure.VariableName("numRows"))
	assert.Equal(t, "_", clojure.VariableName("_"))

	assert.Equal(t, "to_f", ruby.TypeToken(ast.Float))
	assert.Equal(t, "", lookup(t, "python").TypeToken(ast.Word))
}

func TestRenderDoesNotModifyStub(t *testing.T) {
	t.Parallel()

	stub := mustParse(t, "read a:int\nread b:int\nwrite x\n")
	preprocessor.ReadBatches(stub)
	want := stub.Clone()

	_, err := renderer.RenderStub(lookup(t, "clojure"), stub, false)
	require.NoError(t, err)
	_, err = renderer.RenderStub(lookup(t, "clojure"), stub, true)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, stub, cmp.AllowUnexported(preprocessor.ReadBatch{}, ast.Tail{})))
}

func TestRenderDebug(t *testing.T) {
	t.Parallel()

	stub := mustParse(t, "STATEMENT\nAdd them.\n\nread m:int n:int\nloop m write result\n")
	out, err := renderer.RenderStub(lookup(t, "ruby"), stub, true)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"# statement",
		"Add them.",
		"# read",
		"m, n = gets.split.map(&:to_i)",
		"# loop",
		"m.times do",
		`  puts "result"`,
		"end",
		"",
	}, "\n"), out)
}

func TestRenderMissingTemplate(t *testing.T) {
	t.Parallel()

	// Ruby has no read_batch template.
	stub := mustParse(t, "read a:int\nwrite x\n")
	preprocessor.ReadBatches(stub)
	_, err := renderer.RenderStub(lookup(t, "ruby"), stub, false)
	require.ErrorIs(t, err, renderer.ErrUnknownTemplate)

	var renderErr *renderer.Error
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "ruby", renderErr.Lang)
	assert.Equal(t, "read_batch", renderErr.Template)
}

var customFiles = fstest.MapFS{
	"shout/config.yaml":     {Data: []byte("variable_name_case: pascal\nindent: '-'\n")},
	"shout/main.tmpl":       {Data: []byte("{{ .commands }}")},
	"shout/read_one.tmpl":   {Data: []byte("READ {{ name .var.Ident }}")},
	"shout/read_many.tmpl":  {Data: []byte("READ {{ names .vars \" \" }}")},
	"shout/write.tmpl":      {Data: []byte("{{ range .lines }}SAY {{ . }}\n{{ end }}")},
	"shout/write_join.tmpl": {Data: []byte("SAY {{ len .terms }} TERMS")},
	"shout/loop.tmpl":       {Data: []byte("{{ .count }} TIMES\n{{ .body }}")},
	"shout/loopline.tmpl":   {Data: []byte("{{ .count }} TIMES {{ names .vars \",\" }}")},
	"README.md":             {Data: []byte("not a language")},
	"empty/notes.txt":       {Data: []byte("not a language either")},
}

func TestLoadRegistry(t *testing.T) {
	t.Parallel()

	reg, err := renderer.LoadRegistry(customFiles)
	require.NoError(t, err)
	assert.Equal(t, []string{"shout"}, reg.Names())

	lang, err := reg.Lookup("shout")
	require.NoError(t, err)
	out, err := renderer.RenderStub(lang, mustParse(t, "read num_rows:int\nloop num_rows loop 2 write hi\n"), false)
	require.NoError(t, err)
	assert.Equal(t, "READ NumRows\nnum_rows TIMES\n-2 TIMES\n--SAY hi\n", out)
}

func TestLoadRegistryErrors(t *testing.T) {
	t.Parallel()

	unknownField := fstest.MapFS{
		"bad/config.yaml": {Data: []byte("name: bad\ncolour: blue\n")},
		"bad/main.tmpl":   {Data: []byte("")},
	}
	_, err := renderer.LoadRegistry(unknownField)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")

	badCase := fstest.MapFS{
		"bad/config.yaml": {Data: []byte("variable_name_case: shouting\n")},
		"bad/main.tmpl":   {Data: []byte("")},
	}
	_, err = renderer.LoadRegistry(badCase)
	require.Error(t, err)

	missingTemplates := fstest.MapFS{
		"bad/config.yaml": {Data: []byte("name: bad\n")},
		"bad/main.tmpl":   {Data: []byte("{{ .commands }}")},
	}
	_, err = renderer.LoadRegistry(missingTemplates)
	require.ErrorIs(t, err, renderer.ErrUnknownTemplate)

	badTemplate := fstest.MapFS{
		"bad/config.yaml": {Data: []byte("name: bad\n")},
		"bad/main.tmpl":   {Data: []byte("{{ .commands ")},
	}
	_, err = renderer.LoadRegistry(badTemplate)
	require.Error(t, err)
}
