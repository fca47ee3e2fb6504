// © 2026 Marslo. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"go.marslo.io/crm/header"
	"go.marslo.io/crm/logger"
	"go.marslo.io/crm/style"
)

// errEncoding marks files whose bytes are not valid UTF-8 text.
var errEncoding = errors.New("content is not valid UTF-8")

// processor applies one mode to a batch of files sequentially. Per-file
// failures are reported and counted but never abort the batch.
type processor struct {
	mode      header.Mode
	filetype  string // -filetype override, empty for extension detection
	template  string
	renderCtx header.Context
	debug     bool
	verbose   bool

	diffs  *diffs
	counts tally
	stdout io.Writer
}

func newProcessor(mode header.Mode, template string, a *app, renderCtx header.Context, stdout io.Writer) *processor {
	return &processor{
		mode:      mode,
		filetype:  a.filetype,
		template:  template,
		renderCtx: renderCtx,
		debug:     a.debug,
		verbose:   a.verbose,
		diffs:     newDiffs(),
		counts:    tally{},
		stdout:    stdout,
	}
}

// run processes every file and returns the number of failures.
func (p *processor) run(ctx context.Context, files []string) int {
	for i, path := range files {
		fmt.Fprintf(p.stdout, "[%d/%d] %s ... ", i+1, len(files), path)
		outcome := p.file(ctx, path)
		p.counts[outcome]++
	}

	if p.verbose || p.debug {
		p.diffs.flush(p.stdout)
	}
	if p.verbose {
		p.counts.summary(p.stdout)
	}
	return p.counts[header.Failed]
}

func (p *processor) file(ctx context.Context, path string) header.Outcome {
	res, err := p.apply(ctx, path)
	if err != nil {
		fmt.Fprintf(p.stdout, "%s: %v\n", colorize(header.Failed), err)
		return header.Failed
	}
	fmt.Fprintf(p.stdout, "%s\n", colorize(res.Outcome))
	if p.debug && res.Outcome.Mutated() && !p.verbose {
		// Preview only: show the would-be content, persist nothing.
		fmt.Fprintf(p.stdout, "%s\n", strings.TrimSuffix(res.Content, "\n"))
	}
	return res.Outcome
}

// apply performs the whole per-file pipeline: style resolution, read,
// transform, and conditional write. All file content is replaced in a
// single write so a half-written file window stays minimal.
func (p *processor) apply(ctx context.Context, path string) (header.Result, error) {
	var zero header.Result

	st, err := style.Resolve(path, p.filetype)
	if err != nil {
		return zero, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return zero, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, err
	}
	if !utf8.Valid(data) {
		return zero, errors.Wrapf(errEncoding, "%s", path)
	}
	content := string(data)

	var rendered []string
	if p.mode != header.Delete {
		rendered = header.Render(p.template, st, p.renderCtx)
	}

	res := header.Apply(p.mode, content, st, rendered)

	logger.Debug(ctx, "applied transform",
		slog.String("path", path),
		slog.String("mode", p.mode.String()),
		slog.String("family", st.Family.String()),
		slog.String("outcome", res.Outcome.String()))

	if p.verbose || p.debug {
		p.diffs.record(path, content, res.Content)
	}

	if !p.debug && res.Outcome.Mutated() {
		if err := os.WriteFile(path, []byte(res.Content), info.Mode().Perm()); err != nil {
			return zero, err
		}
	}
	return res, nil
}
