// Package unlink implements `dotf unlink`.
package unlink

import (
	"github.com/arthur-debert/dotf/pkg/link"
	"github.com/arthur-debert/dotf/pkg/session"
)

// UnlinkOptions defines the options for Unlink.
type UnlinkOptions struct {
	session.Options

	// DryRun reports what would be removed without removing anything
	DryRun bool
}

// Unlink removes the symlinks that Link placed. Destinations that are not
// dotf symlinks are never touched.
func Unlink(opts UnlinkOptions) (*link.Result, error) {
	s, err := opts.Load()
	if err != nil {
		return nil, err
	}
	return link.Unlink(s, link.Options{DryRun: opts.DryRun})
}
