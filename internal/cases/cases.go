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


// Package cases provides functions for inter-converting between different
// case styles of identifiers.
package cases

import (
	"fmt"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Case is a target case style to convert to.
type Case int

const (
	Snake  Case = iota // snake_case
	Kebab              // kebab-case
	Camel              // camelCase
	Pascal             // PascalCase
)

var names = [...]string{
	Snake:  "snake",
	Kebab:  "kebab",
	Camel:  "camel",
	Pascal: "pascal",
}

// String returns the name of this case, as accepted by [Parse].
func (c Case) String() string {
	if c < 0 || int(c) >= len(names) {
		return fmt.Sprintf("Case(%d)", int(c))
	}
	return names[c]
}

// Parse looks up a case by name.
func Parse(name string) (Case, error) {
	for c, n := range names {
		if n == name {
			return Case(c), nil
		}
	}
	return 0, fmt.Errorf("unknown case %q", name)
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Case) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Convert converts str to the given case.
func (c Case) Convert(str string) string {
	buf := new(strings.Builder)
	c.Append(buf, str)
	return buf.String()
}

// Append is like [Case.Convert], but it appends to the given buffer
// instead.
func (c Case) Append(buf *strings.Builder, str string) {
	switch c {
	case Snake, Kebab:
		sep := '_'
		if c == Kebab {
			sep = '-'
		}
		first := true
		for word := range Words(str) {
			if !first {
				buf.WriteRune(sep)
			}
			buf.WriteString(strings.ToLower(word))
			first = false
		}
	case Camel, Pascal:
		firstWord := true
		for word := range Words(str) {
			r, n := utf8.DecodeRuneInString(word)
			if firstWord && c == Camel {
				buf.WriteRune(unicode.ToLower(r))
			} else {
				buf.WriteRune(unicode.ToUpper(r))
			}
			buf.WriteString(strings.ToLower(word[n:]))
			firstWord = false
		}
	}
}

// Words splits str into words. Underscores and hyphens separate words, and
// a new word starts at an uppercase letter that is followed by a lowercase
// one (as in "fooBar" or "FOOBar"), or at a trailing uppercase letter after
// a lowercase one (as in "FooX").
func Words(str string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for part := range strings.FieldsFuncSeq(str, isSeparator) {
			runes := []rune(part)
			start := 0
			for i := 1; i < len(runes); i++ {
				if !unicode.IsUpper(runes[i]) {
					continue
				}
				last := i == len(runes)-1
				if (!last && unicode.IsLower(runes[i+1])) || (last && unicode.IsLower(runes[i-1])) {
					if !yield(string(runes[start:i])) {
						return
					}
					start = i
				}
			}
			if !yield(string(runes[start:])) {
				return
			}
		}
	}
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-'
}
