// © 2026 Marslo. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

// Package header implements the copyright header engine: rendering a
// template into a comment style, locating an existing header inside file
// content, classifying preamble lines that must stay on top, and applying
// add/update/delete/check transformations.
//
// The package operates on in-memory content only and performs no I/O;
// callers decide whether a transformation result is persisted.
package header
