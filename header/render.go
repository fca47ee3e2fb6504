// © 2026 Marslo. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package header

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"go.marslo.io/crm/style"
)

// Context carries the dynamic values substituted into a template. It is
// passed explicitly so that rendering stays pure and testable with fixed
// fixtures instead of reading the clock or the process environment.
type Context struct {
	Year  int
	Owner string
}

// Render fills template with ctx and wraps the result in the comment
// syntax of s, producing the exact lines a correct header must contain.
// Rendering is deterministic: identical inputs yield identical output.
func Render(template string, s style.Style, ctx Context) []string {
	text := strings.NewReplacer(
		"{year}", strconv.Itoa(ctx.Year),
		"{owner}", ctx.Owner,
	).Replace(template)

	content := normalize(text)

	if !s.Bordered {
		return renderSlim(content, s)
	}
	return renderBordered(content, s)
}

func renderBordered(content []string, s style.Style) []string {
	inner := s.InnerWidth()
	border := s.BorderLine()

	var block []string
	if s.BlockOpen != "" {
		block = append(block, s.BlockOpen)
	}
	block = append(block, border)
	for _, line := range content {
		for _, part := range wrap(line, inner) {
			row := s.LinePrefix + pad(part, inner) + s.LineSuffix
			block = append(block, row)
		}
	}
	block = append(block, border)
	if s.BlockClose != "" {
		block = append(block, s.BlockClose)
	}
	return block
}

func renderSlim(content []string, s style.Style) []string {
	width := max(10, s.Width-len(s.LinePrefix))
	bare := strings.TrimRight(s.LinePrefix, " ")

	block := []string{s.BlockOpen}
	for _, line := range content {
		if line == "" {
			block = append(block, bare)
			continue
		}
		for _, part := range wrap(line, width) {
			block = append(block, s.LinePrefix+part)
		}
	}
	block = append(block, s.BlockClose)
	return block
}

// normalize right-trims template lines, collapses runs of blank lines
// into one, and drops leading and trailing blanks.
func normalize(text string) []string {
	var out []string
	prevBlank := false
	for line := range strings.Lines(text) {
		line = strings.TrimRight(line, " \t\r\n")
		blank := line == ""
		if blank && prevBlank {
			continue
		}
		out = append(out, line)
		prevBlank = blank
	}
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

// wrap greedily breaks line into pieces no wider than width display
// columns. Words longer than width are kept whole. A blank line yields a
// single empty piece.
func wrap(line string, width int) []string {
	if runewidth.StringWidth(line) <= width {
		return []string{line}
	}

	var parts []string
	var cur strings.Builder
	curWidth := 0
	for _, word := range strings.Fields(line) {
		w := runewidth.StringWidth(word)
		if curWidth > 0 && curWidth+1+w > width {
			parts = append(parts, cur.String())
			cur.Reset()
			curWidth = 0
		}
		if curWidth > 0 {
			cur.WriteByte(' ')
			curWidth++
		}
		cur.WriteString(word)
		curWidth += w
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	if len(parts) == 0 {
		parts = []string{""}
	}
	return parts
}

// pad right-fills s with spaces to width display columns.
func pad(s string, width int) string {
	if n := width - runewidth.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
