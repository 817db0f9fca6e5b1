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

package cases_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/stubcompile/internal/cases"
)

func TestCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		str                         string
		snake, kebab, camel, pascal string
	}{
		{str: ""},
		{str: "_"},
		{str: "__"},

		{
			str:   "foo",
			snake: "foo", kebab: "foo",
			camel: "foo", pascal: "Foo",
		},
		{
			str:   "FOO4",
			snake: "foo4", kebab: "foo4",
			camel: "foo4", pascal: "Foo4",
		},
		{
			str:   "_foo",
			snake: "foo", kebab: "foo",
			camel: "foo", pascal: "Foo",
		},
		{
			str:   "foo_",
			snake: "foo", kebab: "foo",
			camel: "foo", pascal: "Foo",
		},
		{
			str:   "foo_bar",
			snake: "foo_bar", kebab: "foo-bar",
			camel: "fooBar", pascal: "FooBar",
		},
		{
			str:   "foo__bar",
			snake: "foo_bar", kebab: "foo-bar",
			camel: "fooBar", pascal: "FooBar",
		},
		{
			str:   "FOO_BAR",
			snake: "foo_bar", kebab: "foo-bar",
			camel: "fooBar", pascal: "FooBar",
		},
		{
			str:   "fooBar",
			snake: "foo_bar", kebab: "foo-bar",
			camel: "fooBar", pascal: "FooBar",
		},
		{
			str:   "FOOBar",
			snake: "foo_bar", kebab: "foo-bar",
			camel: "fooBar", pascal: "FooBar",
		},
		{
			str:   "num-rows",
			snake: "num_rows", kebab: "num-rows",
			camel: "numRows", pascal: "NumRows",
		},
	}

	for _, test := range tests {
		t.Run(test.str, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.snake, cases.Snake.Convert(test.str))
			assert.Equal(t, test.kebab, cases.Kebab.Convert(test.str))
			assert.Equal(t, test.camel, cases.Camel.Convert(test.str))
			assert.Equal(t, test.pascal, cases.Pascal.Convert(test.str))
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	for _, c := range []cases.Case{cases.Snake, cases.Kebab, cases.Camel, cases.Pascal} {
		parsed, err := cases.Parse(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := cases.Parse("screaming")
	require.Error(t, err)

	var c cases.Case
	require.NoError(t, c.UnmarshalText([]byte("kebab")))
	assert.Equal(t, cases.Kebab, c)
	assert.Equal(t, "Case(9)", cases.Case(9).String())
}
