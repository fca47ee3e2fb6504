// © 2026 Marslo. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

// Package version exposes build metadata of the running binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
)

// Number is the release version, set via ldflags.
var Number = "devel"

// CmdName returns the base name of the running executable.
func CmdName() string {
	exe, err := os.Executable()
	if err != nil {
		return "crm"
	}
	return filepath.Base(exe)
}

// Version returns a single-line version string including the release
// number, VCS revision and Go toolchain version.
func Version() string {
	return fmt.Sprintf("%s %s (%s, %s/%s)", CmdName(), Number, revision(), runtime.GOOS, runtime.GOARCH)
}

func revision() string {
	rev := "unknown"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return rev
	}

	modified := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			if s.Value == "true" {
				modified = true
			}
		}
	}
	if modified {
		rev += "-dirty"
	}
	return rev
}
