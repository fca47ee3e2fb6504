// © 2026 Marslo. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package header

import (
	"slices"
	"strings"

	"go.marslo.io/crm/style"
)

// Mode selects the transformation applied to a file's content.
type Mode int

const (
	// Add inserts a header when none exists. It never overwrites an
	// existing header, stale or not.
	Add Mode = iota
	// Update replaces a stale header in place, or adds one when absent.
	Update
	// Delete removes an existing header.
	Delete
	// Check reports the header state without mutating anything.
	Check
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case Add:
		return "add"
	case Update:
		return "update"
	case Delete:
		return "delete"
	case Check:
		return "check"
	}
	return "unknown"
}

// Result is the product of one Apply call: the content the file should
// have afterwards and the outcome verdict. For outcomes that imply no
// change, Content equals the input. A Mismatch carries the corrected
// content so callers can show what an update would do; whether anything
// is persisted is gated on [Outcome.Mutated].
type Result struct {
	Content string
	Outcome Outcome
}

// Apply runs mode against content using the comment style s and the
// rendered header lines. It is pure: all file I/O belongs to the caller,
// and the original line-ending convention and trailing-newline state of
// content are preserved in the result.
//
// rendered may be nil for Delete, which is the only mode that does not
// compare against or insert the canonical header.
func Apply(mode Mode, content string, s style.Style, rendered []string) Result {
	doc := splitDoc(content)
	pre := PreambleLen(doc.lines, s)
	region, found := Locate(doc.lines, s, pre)

	switch mode {
	case Add:
		if found {
			return Result{Content: content, Outcome: Unchanged}
		}
		return Result{Content: doc.insert(pre, rendered), Outcome: Added}

	case Update:
		if !found {
			return Result{Content: doc.insert(pre, rendered), Outcome: Added}
		}
		if slices.Equal(doc.lines[region.Start:region.End], rendered) {
			return Result{Content: content, Outcome: Unchanged}
		}
		return Result{Content: doc.replace(region, rendered), Outcome: Updated}

	case Delete:
		if !found {
			return Result{Content: content, Outcome: Unchanged}
		}
		return Result{Content: doc.remove(region, pre), Outcome: Deleted}

	case Check:
		if !found {
			return Result{Content: content, Outcome: NotFound}
		}
		if slices.Equal(doc.lines[region.Start:region.End], rendered) {
			return Result{Content: content, Outcome: Match}
		}
		return Result{Content: doc.replace(region, rendered), Outcome: Mismatch}
	}

	return Result{Content: content, Outcome: Failed}
}

// document holds split file content together with the conventions needed
// to reassemble it byte-for-byte: the line-ending style and whether the
// original ended with a newline.
type document struct {
	lines      []string
	eol        string
	trailingNL bool
}

func splitDoc(content string) document {
	doc := document{eol: "\n"}
	if strings.Contains(content, "\r\n") {
		doc.eol = "\r\n"
	}
	if content == "" {
		// An empty file gains a trailing newline once content exists.
		doc.trailingNL = true
		return doc
	}
	doc.trailingNL = strings.HasSuffix(content, "\n")

	doc.lines = strings.Split(content, "\n")
	if doc.trailingNL {
		doc.lines = doc.lines[:len(doc.lines)-1]
	}
	for i, line := range doc.lines {
		doc.lines[i] = strings.TrimSuffix(line, "\r")
	}
	return doc
}

func (d document) join(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	out := strings.Join(lines, d.eol)
	if d.trailingNL {
		out += d.eol
	}
	return out
}

// insert places block at position pos, directly after the preamble, and
// adds one blank separator line when the displaced line is non-blank.
func (d document) insert(pos int, block []string) string {
	out := make([]string, 0, len(d.lines)+len(block)+1)
	out = append(out, d.lines[:pos]...)
	out = append(out, block...)
	if pos < len(d.lines) && strings.TrimSpace(d.lines[pos]) != "" {
		out = append(out, "")
	}
	out = append(out, d.lines[pos:]...)
	return d.join(out)
}

func (d document) replace(r Region, block []string) string {
	out := make([]string, 0, len(d.lines)-r.Len()+len(block))
	out = append(out, d.lines[:r.Start]...)
	out = append(out, block...)
	out = append(out, d.lines[r.End:]...)
	return d.join(out)
}

// remove drops the region and collapses at most one blank line that the
// removal left directly after the preamble or at the start of the file.
func (d document) remove(r Region, pre int) string {
	out := make([]string, 0, len(d.lines)-r.Len())
	out = append(out, d.lines[:r.Start]...)
	rest := d.lines[r.End:]
	if r.Start == pre && len(rest) > 0 && strings.TrimSpace(rest[0]) == "" {
		rest = rest[1:]
	}
	out = append(out, rest...)
	return d.join(out)
}
