// Package link implements `dotf link`.
package link

import (
	"github.com/arthur-debert/dotf/pkg/link"
	"github.com/arthur-debert/dotf/pkg/session"
)

// LinkOptions defines the options for Link.
type LinkOptions struct {
	session.Options

	// DryRun reports what would be linked without creating symlinks
	DryRun bool
}

// Link symlinks every compiled dotfile whose destination is free.
func Link(opts LinkOptions) (*link.Result, error) {
	s, err := opts.Load()
	if err != nil {
		return nil, err
	}
	return link.Run(s, link.Options{DryRun: opts.DryRun})
}
