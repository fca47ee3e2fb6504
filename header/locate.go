// © 2026 Marslo. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package header

import (
	"strings"

	"go.marslo.io/crm/style"
)

// Region is a contiguous span of line indices, [Start, End), identified
// as containing a header in the file's comment style. The span need not
// byte-match the rendered header: matching is by shape, not content, so
// stale headers are still found and can be updated or reported.
type Region struct {
	Start, End int
}

// Len returns the number of lines covered by the region.
func (r Region) Len() int { return r.End - r.Start }

// Locate scans lines at or after start for a region shaped like a header
// in style s. It reports false when no candidate satisfies the minimum
// shape. When several disjoint candidates exist, the first one after
// start wins.
//
// For styles with explicit block markers, a region spans the first line
// equal to BlockOpen through the next line equal to BlockClose (compared
// after trimming surrounding whitespace). An opening marker with no close
// before end of file, or before another opening marker, is treated as no
// header at all: appending a fresh header is safer than touching an
// unterminated block.
//
// For prefix-only styles, a region is a maximal run of at least two
// consecutive lines whose left-trimmed text begins with the comment
// prefix. A single blank line directly at start is stepped over before
// matching; blank lines inside a run terminate it.
func Locate(lines []string, s style.Style, start int) (Region, bool) {
	if s.BlockOpen != "" {
		return locateBlock(lines, s, start)
	}
	return locateRun(lines, s, start)
}

func locateBlock(lines []string, s style.Style, start int) (Region, bool) {
	open := strings.TrimSpace(s.BlockOpen)
	closing := strings.TrimSpace(s.BlockClose)

	openIdx := -1
	for i := start; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == open {
			openIdx = i
			break
		}
	}
	if openIdx == -1 {
		return Region{}, false
	}

	for i := openIdx + 1; i < len(lines); i++ {
		switch strings.TrimSpace(lines[i]) {
		case closing:
			return Region{Start: openIdx, End: i + 1}, true
		case open:
			// A second opening marker before any close: the first
			// block is malformed.
			return Region{}, false
		}
	}
	return Region{}, false
}

func locateRun(lines []string, s style.Style, start int) (Region, bool) {
	prefix := strings.TrimSpace(s.LinePrefix)

	i := start
	if i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}

	for i < len(lines) {
		if !isComment(lines[i], prefix) {
			i++
			continue
		}
		runStart := i
		for i < len(lines) && isComment(lines[i], prefix) {
			i++
		}
		if i-runStart >= 2 {
			return Region{Start: runStart, End: i}, true
		}
	}
	return Region{}, false
}

func isComment(line, prefix string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), prefix)
}
