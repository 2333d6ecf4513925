// Package scanner implements the per-line directive evaluation that turns a
// source dotfile into its compiled form.
//
// A scan is a fold over the file's lines. The state carried between lines is
// the inclusion mode (go or stop) and the destination path. Each line first
// applies its directive, if any, to the state and is then emitted or
// suppressed under the resulting mode, so a directive line is itself subject
// to the mode it sets. The destination is only final after the last line.
package scanner
