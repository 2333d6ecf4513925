// Package compile implements `dotf compile`.
package compile

import (
	"github.com/arthur-debert/dotf/pkg/compile"
	"github.com/arthur-debert/dotf/pkg/session"
)

// CompileOptions defines the options for Compile.
type CompileOptions struct {
	session.Options
}

// Compile loads a fresh session and regenerates every compiled dotfile.
func Compile(opts CompileOptions) (*compile.Result, error) {
	s, err := opts.Load()
	if err != nil {
		return nil, err
	}
	return compile.Run(s)
}
