// © 2026 Marslo. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

/*
Crm adds, updates, checks, and deletes copyright headers across source
files in multiple comment formats.

The header text comes from a plain-text template file (COPYRIGHT by
default). The tokens {year} and {owner} in the template are replaced at
render time. The comment syntax is chosen from the file's extension, a
well-known basename (Dockerfile, Makefile, Jenkinsfile), or the
-filetype override.

Usage:

	crm [flags] [files and directories...]

Without an action flag, crm adds a header to each file that has none;
files that already carry a header are left untouched. With -update a
stale header is replaced in place. With -check the header status of each
file is reported without modification. With -delete detected headers are
removed.

Running with only -filetype and no files prints a preview of the
rendered header for that filetype.

Shebang lines and encoding declarations always stay above the header.
*/
package main

import (
	_ "embed"

	"go.marslo.io/crm/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
