// © 2026 Marslo. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

// Package clitest provides a table-driven harness for testing [cli.App]
// implementations end to end, with hermetic environments.
package clitest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"go.marslo.io/crm/cli"
)

// Case describes a single invocation of the application under test and
// the expectations placed on its result.
type Case[A cli.App] struct {
	// Args are passed to the application as command-line arguments.
	Args []string
	// Stdin, if set, is used as the application's standard input.
	Stdin io.Reader
	// Env provides environment variables visible through Env.Getenv.
	Env map[string]string
	// WantErr, if set, expects the run to fail with an error matching
	// errors.Is.
	WantErr error
	// WantErrType, if set, expects the run to fail with an error
	// matching errors.As against this type.
	WantErrType error
	// WantInStdout expects the given substring in standard output.
	WantInStdout string
	// WantInStderr expects the given substring in standard error.
	WantInStderr string
	// WantNothingPrinted expects both output streams to stay empty.
	WantNothingPrinted bool
	// CheckFunc, if set, runs after the invocation for additional
	// assertions against the application value.
	CheckFunc func(*testing.T, A)
}

// Run executes every case as a subtest. The setup function constructs a
// fresh application value per case.
func Run[A cli.App](t *testing.T, setup func(*testing.T) A, cases map[string]Case[A]) {
	t.Helper()
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			app := setup(t)

			var stdout, stderr bytes.Buffer
			stdin := tc.Stdin
			if stdin == nil {
				stdin = strings.NewReader("")
			}
			env := &cli.Env{
				Args:   tc.Args,
				Stdin:  stdin,
				Stdout: &stdout,
				Stderr: &stderr,
				Getenv: func(key string) string { return tc.Env[key] },
			}

			err := cli.Run(cli.WithEnv(context.Background(), env), app)

			switch {
			case tc.WantErr != nil:
				if !errors.Is(err, tc.WantErr) {
					t.Fatalf("want error %v, got %v", tc.WantErr, err)
				}
			case tc.WantErrType != nil:
				target := reflect.New(reflect.TypeOf(tc.WantErrType)).Interface()
				if !errors.As(err, target) {
					t.Fatalf("want error of type %T, got %v", tc.WantErrType, err)
				}
			case err != nil:
				t.Fatalf("unexpected error: %v", err)
			}

			if tc.WantNothingPrinted {
				if stdout.Len() > 0 {
					t.Errorf("stdout is not empty: %q", stdout.String())
				}
				if stderr.Len() > 0 {
					t.Errorf("stderr is not empty: %q", stderr.String())
				}
			}
			if tc.WantInStdout != "" && !strings.Contains(stdout.String(), tc.WantInStdout) {
				t.Errorf("stdout does not contain %q:\n%s", tc.WantInStdout, stdout.String())
			}
			if tc.WantInStderr != "" && !strings.Contains(stderr.String(), tc.WantInStderr) {
				t.Errorf("stderr does not contain %q:\n%s", tc.WantInStderr, stderr.String())
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
		})
	}
}
