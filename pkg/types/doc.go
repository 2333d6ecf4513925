// Package types defines the core types and interfaces shared across dotf:
// the filesystem abstraction, tag sets, the per-line inclusion mode and
// link classifications.
package types
