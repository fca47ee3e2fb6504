// © 2026 Marslo. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package header

import (
	"regexp"
	"strings"

	"go.marslo.io/crm/style"
)

// encodingRe matches a PEP 263 style encoding declaration. It must appear
// on the first or second line to be honored by interpreters, which is why
// the classifier never looks further.
var encodingRe = regexp.MustCompile(`^[ \t\f]*#.*?coding[:=][ \t]*[-_.a-zA-Z0-9]+`)

// PreambleLen returns the number of leading lines that must stay above
// any header: a shebang on line 0, an encoding declaration on line 0 or 1,
// or both in that order. Only the hash scripting family carries a
// preamble; every other family returns 0. The shebang must be the literal
// first line because interpreter invocation depends on it.
func PreambleLen(lines []string, s style.Style) int {
	if s.Family != style.Hash {
		return 0
	}
	n := 0
	if len(lines) > 0 && strings.HasPrefix(lines[0], "#!") {
		n = 1
	}
	if len(lines) > n && encodingRe.MatchString(lines[n]) {
		n++
	}
	return n
}
