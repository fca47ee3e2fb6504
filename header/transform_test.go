// © 2026 Marslo. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package header

import (
	"strings"
	"testing"

	"go.marslo.io/crm/style"
	"go.marslo.io/crm/testutil"
)

func TestAddThenCheck(t *testing.T) {
	hash := style.Get(style.Hash)
	rendered := Render(testTemplate, hash, testCtx)

	added := Apply(Add, "print(\"hi\")\n", hash, rendered)
	testutil.AssertEqual(t, added.Outcome, Added)

	checked := Apply(Check, added.Content, hash, rendered)
	testutil.AssertEqual(t, checked.Outcome, Match)
	testutil.AssertEqual(t, checked.Content, added.Content)
}

func TestAddIsIdempotent(t *testing.T) {
	hash := style.Get(style.Hash)
	rendered := Render(testTemplate, hash, testCtx)

	first := Apply(Add, "print(\"hi\")\n", hash, rendered)
	second := Apply(Add, first.Content, hash, rendered)

	testutil.AssertEqual(t, second.Outcome, Unchanged)
	testutil.AssertEqual(t, second.Content, first.Content)
}

func TestAddNeverOverwrites(t *testing.T) {
	// Add must leave a stale header alone; only update may replace it.
	hash := style.Get(style.Hash)
	stale := Render(testTemplate, hash, Context{Year: 2023, Owner: "marslo"})
	content := strings.Join(stale, "\n") + "\n\nprint(\"hi\")\n"

	fresh := Render(testTemplate, hash, testCtx)
	got := Apply(Add, content, hash, fresh)

	testutil.AssertEqual(t, got.Outcome, Unchanged)
	testutil.AssertEqual(t, got.Content, content)
}

func TestUpdateIsSupersetOfAdd(t *testing.T) {
	hash := style.Get(style.Hash)
	rendered := Render(testTemplate, hash, testCtx)
	input := "print(\"hi\")\n"

	viaAdd := Apply(Add, input, hash, rendered)
	viaUpdate := Apply(Update, input, hash, rendered)

	testutil.AssertEqual(t, viaUpdate.Outcome, Added)
	testutil.AssertEqual(t, viaUpdate.Content, viaAdd.Content)
}

func TestUpdateReplacesStaleHeader(t *testing.T) {
	hash := style.Get(style.Hash)
	stale := Render(testTemplate, hash, Context{Year: 2023, Owner: "marslo"})
	fresh := Render(testTemplate, hash, Context{Year: 2025, Owner: "marslo"})

	body := "\nimport os\n\nprint(\"hi\")\n"
	content := strings.Join(stale, "\n") + "\n" + body

	checked := Apply(Check, content, hash, fresh)
	testutil.AssertEqual(t, checked.Outcome, Mismatch)

	updated := Apply(Update, content, hash, fresh)
	testutil.AssertEqual(t, updated.Outcome, Updated)
	// Only the header region changes; everything below stays intact.
	testutil.AssertEqual(t, updated.Content, strings.Join(fresh, "\n")+"\n"+body)

	again := Apply(Update, updated.Content, hash, fresh)
	testutil.AssertEqual(t, again.Outcome, Unchanged)
}

func TestDeleteThenCheck(t *testing.T) {
	hash := style.Get(style.Hash)
	rendered := Render(testTemplate, hash, testCtx)

	added := Apply(Add, "print(\"hi\")\n", hash, rendered)
	deleted := Apply(Delete, added.Content, hash, nil)
	testutil.AssertEqual(t, deleted.Outcome, Deleted)

	checked := Apply(Check, deleted.Content, hash, rendered)
	testutil.AssertEqual(t, checked.Outcome, NotFound)
}

func TestAddDeleteRoundTrip(t *testing.T) {
	cases := map[string]struct {
		family  style.Family
		content string
	}{
		"python script":        {style.Hash, "import os\n\nprint(\"hi\")\n"},
		"shebang script":       {style.Hash, "#!/bin/sh\necho hi\n"},
		"c source":             {style.Slim, "#include <stdio.h>\n\nint main() {}\n"},
		"java source":          {style.Block, "class Main {}\n"},
		"empty file":           {style.Hash, ""},
		"file without newline": {style.Hash, "print(\"hi\")"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s := style.Get(tc.family)
			rendered := Render(testTemplate, s, testCtx)

			added := Apply(Add, tc.content, s, rendered)
			testutil.AssertEqual(t, added.Outcome, Added)

			deleted := Apply(Delete, added.Content, s, nil)
			testutil.AssertEqual(t, deleted.Outcome, Deleted)

			testutil.AssertEqual(t, deleted.Content, tc.content)
		})
	}
}

func TestShebangStaysOnTop(t *testing.T) {
	hash := style.Get(style.Hash)
	rendered := Render(testTemplate, hash, testCtx)

	content := "#!/usr/bin/env python3\nprint(\"hi\")\n"
	added := Apply(Add, content, hash, rendered)

	lines := strings.Split(added.Content, "\n")
	testutil.AssertEqual(t, lines[0], "#!/usr/bin/env python3")
	testutil.AssertEqual(t, lines[1], rendered[0])
}

func TestShebangAndEncodingStayOnTop(t *testing.T) {
	hash := style.Get(style.Hash)
	rendered := Render(testTemplate, hash, testCtx)

	content := "#!/usr/bin/env python3\n# -*- coding: utf-8 -*-\nprint(\"hi\")\n"
	added := Apply(Add, content, hash, rendered)

	lines := strings.Split(added.Content, "\n")
	testutil.AssertEqual(t, lines[0], "#!/usr/bin/env python3")
	testutil.AssertEqual(t, lines[1], "# -*- coding: utf-8 -*-")
	testutil.AssertEqual(t, lines[2], rendered[0])
}

func TestAddPythonScenario(t *testing.T) {
	hash := style.Get(style.Hash)
	rendered := Render("Copyright © {year} marslo\nLicensed under MIT", hash, Context{Year: 2026})

	added := Apply(Add, "print(\"hi\")\n", hash, rendered)
	testutil.AssertEqual(t, added.Outcome, Added)

	want := strings.Join([]string{
		hash.BorderLine(),
		"# " + pad("Copyright © 2026 marslo", 76) + " #",
		"# " + pad("Licensed under MIT", 76) + " #",
		hash.BorderLine(),
		"",
		`print("hi")`,
	}, "\n") + "\n"
	testutil.AssertEqual(t, added.Content, want)

	checked := Apply(Check, added.Content, hash, rendered)
	testutil.AssertEqual(t, checked.Outcome, Match)

	updated := Apply(Update, added.Content, hash, rendered)
	testutil.AssertEqual(t, updated.Outcome, Unchanged)
}

func TestCheckMismatchCarriesCorrectedContent(t *testing.T) {
	// A mismatch verdict must come with the content an update would
	// produce, so callers can diff old against intended without writing.
	hash := style.Get(style.Hash)
	stale := Render(testTemplate, hash, Context{Year: 2023, Owner: "marslo"})
	fresh := Render(testTemplate, hash, testCtx)
	content := strings.Join(stale, "\n") + "\n\nprint(\"hi\")\n"

	checked := Apply(Check, content, hash, fresh)
	testutil.AssertEqual(t, checked.Outcome, Mismatch)
	testutil.AssertEqual(t, checked.Outcome.Mutated(), false)

	updated := Apply(Update, content, hash, fresh)
	testutil.AssertEqual(t, checked.Content, updated.Content)
}

func TestDeleteWithoutHeader(t *testing.T) {
	slim := style.Get(style.Slim)
	content := "int main() {}\n"

	got := Apply(Delete, content, slim, nil)
	testutil.AssertEqual(t, got.Outcome, Unchanged)
	testutil.AssertEqual(t, got.Content, content)
}

func TestCheckDoesNotMutate(t *testing.T) {
	hash := style.Get(style.Hash)
	rendered := Render(testTemplate, hash, testCtx)
	content := "print(\"hi\")\n"

	got := Apply(Check, content, hash, rendered)
	testutil.AssertEqual(t, got.Outcome, NotFound)
	testutil.AssertEqual(t, got.Content, content)
}

func TestCRLFIsPreserved(t *testing.T) {
	hash := style.Get(style.Hash)
	rendered := Render(testTemplate, hash, testCtx)

	content := "print(\"hi\")\r\n"
	added := Apply(Add, content, hash, rendered)

	if !strings.Contains(added.Content, "\r\n") {
		t.Fatal("CRLF line endings were not preserved")
	}
	if strings.Contains(strings.ReplaceAll(added.Content, "\r\n", ""), "\n") {
		t.Fatal("output mixes line-ending conventions")
	}

	deleted := Apply(Delete, added.Content, hash, nil)
	testutil.AssertEqual(t, deleted.Content, content)
}

func TestAddToEmptyFile(t *testing.T) {
	hash := style.Get(style.Hash)
	rendered := Render(testTemplate, hash, testCtx)

	added := Apply(Add, "", hash, rendered)
	testutil.AssertEqual(t, added.Outcome, Added)
	testutil.AssertEqual(t, added.Content, strings.Join(rendered, "\n")+"\n")
}

func TestUnterminatedBlockIsLeftAlone(t *testing.T) {
	// A /** with no closing marker must be treated as "no header":
	// appending a fresh block is safer than touching broken content.
	slim := style.Get(style.Slim)
	rendered := Render(testTemplate, slim, testCtx)

	content := "/**\n * not closed\nint main() {}\n"
	added := Apply(Add, content, slim, rendered)

	testutil.AssertEqual(t, added.Outcome, Added)
	if !strings.HasSuffix(added.Content, "/**\n * not closed\nint main() {}\n") {
		t.Errorf("original content was not preserved:\n%s", added.Content)
	}
}
