// Package filesystem provides filesystem implementations for dotf.
//
// It contains the OS-backed types.FS implementation and the directory
// enumeration shared by the compile, link and status passes.
package filesystem
