// © 2026 Marslo. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	diffmatchpatch "github.com/sergi/go-diff/diffmatchpatch"

	"go.marslo.io/crm/header"
	"go.marslo.io/crm/syncx"
)

var (
	addedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))  // cyan
	updatedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))  // blue
	deletedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))  // yellow
	matchStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))  // green
	mismatchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))  // yellow
	failedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	unchangedStyle = lipgloss.NewStyle().Faint(true)
)

// colorize renders the outcome word in its verdict color.
func colorize(o header.Outcome) string {
	s := o.String()
	switch o {
	case header.Added:
		return addedStyle.Render(s)
	case header.Updated:
		return updatedStyle.Render(s)
	case header.Deleted:
		return deletedStyle.Render(s)
	case header.Match:
		return matchStyle.Render(s)
	case header.Mismatch, header.NotFound:
		return mismatchStyle.Render(s)
	case header.Failed:
		return failedStyle.Render(s)
	}
	return unchangedStyle.Render(s)
}

// diffs accumulates before/after diffs of processed files so that
// verbose and debug runs can show them after the per-file status lines.
type diffs struct {
	differ  *diffmatchpatch.DiffMatchPatch
	entries syncx.Protected[map[string]string]
}

func newDiffs() *diffs {
	return &diffs{
		differ:  diffmatchpatch.New(),
		entries: syncx.Protect(map[string]string{}),
	}
}

// record computes and stores the pretty diff of old vs. new content for
// path. Identical contents are not recorded.
func (d *diffs) record(path, oldContent, newContent string) {
	if oldContent == newContent {
		return
	}
	diff := d.differ.DiffMain(oldContent, newContent, false)
	diff = d.differ.DiffCleanupSemantic(diff)
	text := d.differ.DiffPrettyText(diff)
	d.entries.WriteAccess(func(m map[string]string) {
		m[path] = text
	})
}

// flush writes all recorded diffs to w, sorted by path.
func (d *diffs) flush(w io.Writer) {
	d.entries.ReadAccess(func(m map[string]string) {
		paths := make([]string, 0, len(m))
		for p := range m {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		for _, p := range paths {
			fmt.Fprintf(w, "\n--- %s ---\n%s\n", p, m[p])
		}
	})
}

// tally counts outcomes for the verbose summary.
type tally map[header.Outcome]int

func (t tally) total() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}

func (t tally) summary(w io.Writer) {
	fmt.Fprintf(w, "\nprocessed %d file(s):", t.total())
	for _, o := range []header.Outcome{
		header.Added, header.Updated, header.Deleted, header.Unchanged,
		header.Match, header.Mismatch, header.NotFound, header.Failed,
	} {
		if t[o] > 0 {
			fmt.Fprintf(w, " %s=%d", o, t[o])
		}
	}
	fmt.Fprintln(w)
}
