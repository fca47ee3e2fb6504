// © 2026 Marslo. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"go.marslo.io/crm/cli"
	"go.marslo.io/crm/header"
	"go.marslo.io/crm/logger"
	"go.marslo.io/crm/scan"
	"go.marslo.io/crm/style"
)

// errTemplateNotFound is fatal for modes that render: without a template
// there is no meaningful header to add, update, or check against.
var errTemplateNotFound = errors.New("copyright template not found")

func main() { cli.Main(new(app)) }

type app struct {
	check     bool
	delete    bool
	update    bool
	copyright string
	filetype  string
	recursive bool
	debug     bool
	verbose   bool
	owner     string
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.check, "check", false, "Check mode: report header status (match, mismatch, or not-found) without modifying files.")
	fs.BoolVar(&a.delete, "delete", false, "Delete mode: remove detected copyright headers.")
	fs.BoolVar(&a.update, "update", false, "Update mode: replace a stale header in place, or add one if missing.")
	fs.StringVar(&a.copyright, "copyright", "COPYRIGHT", "Copyright template `file`.")
	fs.StringVar(&a.filetype, "filetype", "", "Force a file`type`, overriding extension detection (e.g. python, java).")
	fs.StringVar(&a.filetype, "t", "", "Shorthand for -filetype.")
	fs.BoolVar(&a.recursive, "recursive", false, "Process directories recursively.")
	fs.BoolVar(&a.recursive, "r", false, "Shorthand for -recursive.")
	fs.BoolVar(&a.debug, "debug", false, "Preview the result of an action without modifying files.")
	fs.BoolVar(&a.debug, "d", false, "Shorthand for -debug.")
	fs.BoolVar(&a.verbose, "verbose", false, "Show diffs and a processing summary.")
	fs.BoolVar(&a.verbose, "v", false, "Shorthand for -verbose.")
	fs.StringVar(&a.owner, "owner", "", "Owner `name` substituted for the {owner} template token.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	ctx = logger.Put(ctx, a.newLogger(env))

	mode, err := a.mode()
	if err != nil {
		return err
	}

	actionRequested := a.check || a.delete || a.update
	if a.filetype != "" && len(env.Args) == 0 && !actionRequested && !a.debug {
		return a.preview(env)
	}
	if len(env.Args) == 0 {
		return errors.Wrap(cli.ErrInvalidArgs, "no files or directories given")
	}

	template, err := a.loadTemplate(mode)
	if err != nil {
		return err
	}

	files, err := scan.Files(ctx, env.Args, a.recursive)
	if err != nil {
		return err
	}

	renderCtx := header.Context{Year: time.Now().Year(), Owner: a.owner}
	proc := newProcessor(mode, template, a, renderCtx, env.Stdout)
	if failed := proc.run(ctx, files); failed > 0 {
		return errors.Newf("%d file(s) failed", failed)
	}
	return nil
}

// mode maps the mutually exclusive action flags to a transform mode.
// The default action is add.
func (a *app) mode() (header.Mode, error) {
	n := 0
	for _, set := range []bool{a.check, a.delete, a.update} {
		if set {
			n++
		}
	}
	if n > 1 {
		return 0, errors.Wrap(cli.ErrInvalidArgs, "-check, -delete and -update are mutually exclusive")
	}
	switch {
	case a.check:
		return header.Check, nil
	case a.delete:
		return header.Delete, nil
	case a.update:
		return header.Update, nil
	}
	return header.Add, nil
}

// loadTemplate reads the copyright template. Delete mode never renders a
// header, so a missing template is not an error there.
func (a *app) loadTemplate(mode header.Mode) (string, error) {
	data, err := os.ReadFile(a.copyright)
	if err != nil {
		if mode == header.Delete {
			return "", nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return "", errors.Wrapf(errTemplateNotFound, "%s", a.copyright)
		}
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.Wrapf(errEncoding, "%s", a.copyright)
	}
	return string(data), nil
}

// preview prints the rendered header for the forced filetype to stdout.
// It runs when -filetype is given without files or an action flag.
func (a *app) preview(env *cli.Env) error {
	st, ok := style.Lookup(a.filetype)
	if !ok {
		return errors.Wrapf(style.ErrUnsupported,
			"filetype %q (supported: %s)", a.filetype, strings.Join(style.Supported(), ", "))
	}
	template, err := a.loadTemplate(header.Add)
	if err != nil {
		return err
	}
	renderCtx := header.Context{Year: time.Now().Year(), Owner: a.owner}
	for _, line := range header.Render(template, st, renderCtx) {
		fmt.Fprintln(env.Stdout, line)
	}
	return nil
}

func (a *app) newLogger(env *cli.Env) *logger.Logger {
	level := new(slog.LevelVar)
	if a.verbose || a.debug {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelWarn)
	}

	var handler slog.Handler
	if f, ok := env.Stderr.(*os.File); ok && term.IsTerminal(int(f.Fd())) && env.Getenv("NO_COLOR") == "" {
		handler = tint.NewHandler(f, &tint.Options{Level: level, TimeFormat: time.Kitchen})
	} else {
		handler = slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: level})
	}
	return logger.New(level, handler)
}
