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

package reporter

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the size we render all tabstops as.
const TabstopWidth = 4

// Snippet renders err as a short diagnostic that quotes the offending line of
// source and underlines the token at the error's position:
//
//	example.stub:2:6: unknown token "wirte"
//	   2 | loop wirte x
//	     |      ^^^^^
//
// If the position does not point into source, only err.Error() is returned.
func Snippet(err ErrorWithPos, source string) string {
	pos := err.GetPosition()
	lines := strings.Split(source, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) || pos.Col <= 0 {
		return err.Error()
	}

	line := strings.TrimSuffix(lines[pos.Line-1], "\r")
	start := min(pos.Col-1, len(line))
	end := start
	for end < len(line) && line[end] != ' ' {
		end++
	}

	gutter := fmt.Sprintf("%4d | ", pos.Line)
	pad := strings.Repeat(" ", len(gutter)-2) + "| "
	indent := stringWidth(0, line[:start])
	width := max(1, stringWidth(indent, line[start:end])-indent)

	var buf strings.Builder
	buf.WriteString(err.Error())
	buf.WriteByte('\n')
	buf.WriteString(gutter)
	buf.WriteString(expandTabs(line))
	buf.WriteByte('\n')
	buf.WriteString(pad)
	buf.WriteString(strings.Repeat(" ", indent))
	buf.WriteString(strings.Repeat("^", width))
	return buf.String()
}

// stringWidth calculates the rendered width of text if placed at the given
// column, accounting for tabstops.
func stringWidth(column int, text string) int {
	for text != "" {
		next, rest, haveTab := strings.Cut(text, "\t")
		column += uniseg.StringWidth(next)
		text = rest
		if haveTab {
			column += TabstopWidth - (column % TabstopWidth)
		}
	}
	return column
}

func expandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var buf strings.Builder
	column := 0
	for line != "" {
		next, rest, haveTab := strings.Cut(line, "\t")
		buf.WriteString(next)
		column += uniseg.StringWidth(next)
		line = rest
		if haveTab {
			tab := TabstopWidth - (column % TabstopWidth)
			buf.WriteString(strings.Repeat(" ", tab))
			column += tab
		}
	}
	return buf.String()
}
