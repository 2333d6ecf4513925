// Package testutil provides utilities for testing dotf components.
//
// Key components:
//   - TestEnvironment: an initialized dotf root plus an isolated $HOME,
//     both under t.TempDir()
//   - WriteDotfile / ReadFile: inline test data helpers
//   - AssertSymlink / AssertNotExists: filesystem assertions
//
// Every environment sets HOME and XDG_* for the duration of the test, so
// nothing leaks into the real home directory.
package testutil
