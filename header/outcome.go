// © 2026 Marslo. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package header

// Outcome is the result of applying one mode to one file.
type Outcome int

const (
	// Unchanged means the content already matches the target state.
	Unchanged Outcome = iota
	// Added means a header was inserted where none existed.
	Added
	// Updated means an existing header was replaced in place.
	Updated
	// Deleted means an existing header was removed.
	Deleted
	// Match is the check-mode verdict for a byte-identical header.
	Match
	// Mismatch is the check-mode verdict for a stale header.
	Mismatch
	// NotFound is the check-mode verdict when no header exists.
	NotFound
	// Failed means the file could not be processed at all.
	Failed
)

// String returns the verdict word reported to the user.
func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Updated:
		return "updated"
	case Deleted:
		return "deleted"
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	case NotFound:
		return "not-found"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Mutated reports whether the outcome implies new content to persist.
func (o Outcome) Mutated() bool {
	return o == Added || o == Updated || o == Deleted
}
