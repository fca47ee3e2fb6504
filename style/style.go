// © 2026 Marslo. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

// Package style maps filetypes to the comment syntax used to frame a
// copyright header.
//
// Every supported filetype belongs to exactly one comment family. The
// mapping tables below are the single source of truth: adding support
// for a new alias or suffix is a one-line table edit.
package style

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnsupported is returned by Resolve when neither an override nor a
// recognized extension maps to a comment family.
var ErrUnsupported = errors.New("unsupported filetype")

// Family identifies one comment-syntax family.
type Family int

const (
	// Hash is the "#"-prefixed family with full-width "=" borders
	// (python, shell, dockerfile and friends).
	Hash Family = iota
	// Block is the "/** ... **/" family with full-width "*" borders
	// (java, groovy, gradle).
	Block
	// Slim is the "/** ... */" family without borders (C and C++
	// sources and headers).
	Slim
)

// String returns the family name used in logs and error messages.
func (f Family) String() string {
	switch f {
	case Hash:
		return "hash"
	case Block:
		return "block"
	case Slim:
		return "slim"
	}
	return "unknown"
}

// Style describes how a header block is written for one comment family.
// Styles are immutable constants; callers must not modify them.
type Style struct {
	Family     Family
	LinePrefix string // per-line comment lead, e.g. "# "
	LineSuffix string // right border of a padded content row, empty for slim
	BlockOpen  string // line preceding the body, e.g. "/**"
	BlockClose string // line following the body, e.g. "**/"
	BorderChar string // fill character of full-width border rows
	Width      int    // target line width for borders and padding
	Bordered   bool   // whether content rows are padded between border rows
}

// BorderLine returns the full-width border row for a bordered style.
func (s Style) BorderLine() string {
	lead := strings.TrimRight(s.LinePrefix, " ")
	if s.BlockOpen != "" {
		lead = " "
	}
	return lead + strings.Repeat(s.BorderChar, s.Width-len(lead))
}

// InnerWidth returns the number of columns available for content text
// between LinePrefix and LineSuffix.
func (s Style) InnerWidth() int {
	return max(10, s.Width-len(s.LinePrefix)-len(s.LineSuffix))
}

var styles = map[Family]Style{
	Hash: {
		Family:     Hash,
		LinePrefix: "# ",
		LineSuffix: " #",
		BorderChar: "=",
		Width:      80,
		Bordered:   true,
	},
	Block: {
		Family:     Block,
		LinePrefix: " * ",
		LineSuffix: " *",
		BlockOpen:  "/**",
		BlockClose: "**/",
		BorderChar: "*",
		Width:      80,
		Bordered:   true,
	},
	Slim: {
		Family:     Slim,
		LinePrefix: " * ",
		BlockOpen:  "/**",
		BlockClose: " */",
		Width:      80,
	},
}

// aliases maps filetype names accepted by the -filetype override.
var aliases = map[string]Family{
	"python":     Hash,
	"shell":      Hash,
	"bash":       Hash,
	"sh":         Hash,
	"zsh":        Hash,
	"dockerfile": Hash,
	"make":       Hash,
	"makefile":   Hash,
	"yaml":       Hash,
	"toml":       Hash,
	"conf":       Hash,

	"java":        Block,
	"groovy":      Block,
	"gradle":      Block,
	"jenkinsfile": Block,
	"kotlin":      Block,
	"scala":       Block,

	"c":          Slim,
	"cpp":        Slim,
	"c++":        Slim,
	"cxx":        Slim,
	"h":          Slim,
	"hpp":        Slim,
	"hxx":        Slim,
	"go":         Slim,
	"js":         Slim,
	"javascript": Slim,
	"ts":         Slim,
	"typescript": Slim,
}

// suffixes maps lowercased file extensions used for automatic detection.
var suffixes = map[string]Family{
	".py":         Hash,
	".sh":         Hash,
	".bash":       Hash,
	".zsh":        Hash,
	".dockerfile": Hash,
	".yaml":       Hash,
	".yml":        Hash,
	".toml":       Hash,

	".java":   Block,
	".groovy": Block,
	".gradle": Block,
	".kt":     Block,
	".kts":    Block,
	".scala":  Block,

	".c":   Slim,
	".cc":  Slim,
	".cpp": Slim,
	".cxx": Slim,
	".h":   Slim,
	".hpp": Slim,
	".hxx": Slim,
	".go":  Slim,
	".js":  Slim,
	".ts":  Slim,
}

// basenames maps well-known extensionless file names.
var basenames = map[string]Family{
	"dockerfile":  Hash,
	"makefile":    Hash,
	"jenkinsfile": Block,
}

// Get returns the Style of a family.
func Get(f Family) Style { return styles[f] }

// Lookup resolves a filetype alias (e.g. "python", or a bare suffix like
// "py") to its Style. It reports false when the alias is unknown.
func Lookup(filetype string) (Style, bool) {
	ft := strings.ToLower(filetype)
	if f, ok := aliases[ft]; ok {
		return styles[f], true
	}
	if f, ok := suffixes["."+strings.TrimPrefix(ft, ".")]; ok {
		return styles[f], true
	}
	return Style{}, false
}

// Resolve determines the Style for a target file. An explicit override
// always wins and ignores the file's real extension; without one the
// lowercased extension is consulted, then well-known basenames.
func Resolve(path, override string) (Style, error) {
	if override != "" {
		if s, ok := Lookup(override); ok {
			return s, nil
		}
		return Style{}, errors.Wrapf(ErrUnsupported, "filetype override %q (supported: %s)",
			override, strings.Join(Supported(), ", "))
	}
	if f, ok := suffixes[strings.ToLower(filepath.Ext(path))]; ok {
		return styles[f], nil
	}
	if f, ok := basenames[strings.ToLower(filepath.Base(path))]; ok {
		return styles[f], nil
	}
	return Style{}, errors.Wrapf(ErrUnsupported, "%s (supported: %s)",
		path, strings.Join(Supported(), ", "))
}

// Supported returns the sorted list of filetype aliases accepted by
// Lookup, for error hints and help text.
func Supported() []string {
	all := make([]string, 0, len(aliases))
	for ft := range aliases {
		all = append(all, ft)
	}
	sort.Strings(all)
	return all
}
