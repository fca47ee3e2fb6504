// © 2026 Marslo. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

// Package scan expands file and directory arguments into the sequence of
// candidate files to process.
package scan

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"go.marslo.io/crm/logger"
)

// ignoredDirs are never descended into during recursive traversal.
var ignoredDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	".idea":        true,
	".vscode":      true,
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
}

// Files expands args into an ordered list of file paths. Plain files are
// taken as-is. Directories are walked when recursive is set, skipping the
// fixed ignore list; without it they are skipped with a warning, as are
// arguments that do not exist. The returned order is the argument order,
// with directory contents in lexical walk order.
//
// An empty result is an error: there is nothing meaningful to do.
func Files(ctx context.Context, args []string, recursive bool) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			logger.Warn(ctx, "skipping argument", slog.String("path", arg), slog.Any("error", err))
			continue
		}

		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		if !recursive {
			logger.Warn(ctx, "skipping directory, -recursive not set", slog.String("path", arg))
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if ignoredDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "walking %s", arg)
		}
	}

	if len(files) == 0 {
		return nil, errors.New("no valid files to process")
	}
	return files, nil
}
