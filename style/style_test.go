// © 2026 Marslo. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package style

import (
	"errors"
	"strings"
	"testing"

	"go.marslo.io/crm/testutil"
)

func TestResolve(t *testing.T) {
	cases := map[string]struct {
		path     string
		override string
		want     Family
		wantErr  bool
	}{
		"python extension":          {path: "tool.py", want: Hash},
		"shell extension":           {path: "ci/build.sh", want: Hash},
		"uppercase extension":       {path: "LEGACY.PY", want: Hash},
		"yaml extension":            {path: "deploy.yaml", want: Hash},
		"java extension":            {path: "Main.java", want: Block},
		"gradle extension":          {path: "build.gradle", want: Block},
		"c extension":               {path: "main.c", want: Slim},
		"cpp header":                {path: "list.hpp", want: Slim},
		"go extension":              {path: "main.go", want: Slim},
		"dockerfile basename":       {path: "services/Dockerfile", want: Hash},
		"makefile basename":         {path: "Makefile", want: Hash},
		"jenkinsfile basename":      {path: "Jenkinsfile", want: Block},
		"unknown extension":         {path: "notes.txt", wantErr: true},
		"no extension":              {path: "README", wantErr: true},
		"override wins":             {path: "notes.txt", override: "python", want: Hash},
		"override case-insensitive": {path: "notes.txt", override: "JAVA", want: Block},
		"override bare suffix":      {path: "whatever", override: "py", want: Hash},
		"override unknown":          {path: "tool.py", override: "cobol", wantErr: true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s, err := Resolve(tc.path, tc.override)
			if tc.wantErr {
				if !errors.Is(err, ErrUnsupported) {
					t.Fatalf("want ErrUnsupported, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, s.Family, tc.want)
		})
	}
}

func TestResolveErrorListsSupportedFiletypes(t *testing.T) {
	for name, tc := range map[string]struct{ path, override string }{
		"unknown extension": {path: "notes.txt"},
		"unknown override":  {path: "tool.py", override: "cobol"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Resolve(tc.path, tc.override)
			if !errors.Is(err, ErrUnsupported) {
				t.Fatalf("want ErrUnsupported, got %v", err)
			}
			if !strings.Contains(err.Error(), "supported: ") ||
				!strings.Contains(err.Error(), "python") {
				t.Fatalf("error lacks the supported-filetypes hint: %v", err)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	for _, ft := range Supported() {
		if _, ok := Lookup(ft); !ok {
			t.Errorf("Supported lists %q but Lookup rejects it", ft)
		}
	}

	if _, ok := Lookup("klingon"); ok {
		t.Error("Lookup accepted an unknown filetype")
	}
}

func TestBorderLine(t *testing.T) {
	hash := Get(Hash)
	border := hash.BorderLine()
	testutil.AssertEqual(t, len(border), hash.Width)
	if !strings.HasPrefix(border, "#") {
		t.Errorf("hash border must start with the comment marker, got %q", border)
	}
	testutil.AssertEqual(t, strings.Count(border, "="), hash.Width-1)

	block := Get(Block)
	border = block.BorderLine()
	testutil.AssertEqual(t, len(border), block.Width)
	if !strings.HasPrefix(border, " *") {
		t.Errorf("block border must align under the block marker, got %q", border)
	}
}

func TestStylesAreConsistent(t *testing.T) {
	for f, s := range styles {
		testutil.AssertEqual(t, s.Family, f)
		if s.LinePrefix == "" {
			t.Errorf("%v has no line prefix", f)
		}
		if s.Bordered && s.BorderChar == "" {
			t.Errorf("%v is bordered but has no border character", f)
		}
		if s.Width <= len(s.LinePrefix)+len(s.LineSuffix) {
			t.Errorf("%v width %d leaves no room for content", f, s.Width)
		}
	}
}
