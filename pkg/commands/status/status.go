// Package status implements `dotf status`: one line per source dotfile
// showing whether its destination is linked to the compiled file.
package status

import (
	"fmt"

	"github.com/arthur-debert/dotf/pkg/linkstatus"
	"github.com/arthur-debert/dotf/pkg/logging"
	"github.com/arthur-debert/dotf/pkg/session"
	"github.com/arthur-debert/dotf/pkg/types"
)

// StatusOptions defines the options for Status.
type StatusOptions struct {
	session.Options
}

// StatusResult lists the link state of every source dotfile, sorted by name.
type StatusResult struct {
	Entries []linkstatus.Entry `json:"entries"`
}

// Status classifies every source dotfile.
func Status(opts StatusOptions) (*StatusResult, error) {
	logger := logging.GetLogger("commands.status")

	s, err := opts.Load()
	if err != nil {
		return nil, err
	}

	entries, err := linkstatus.All(s)
	for _, entry := range entries {
		s.Report(entry.Diagnostics)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("entries", len(entries)).Msg("Status collected")
	return &StatusResult{Entries: entries}, nil
}

// Line renders an entry as "<marker> <name> -> <location>".
func Line(entry linkstatus.Entry) string {
	return fmt.Sprintf("%s %s -> %s", entry.Status.Marker(), entry.Name, entry.Location)
}

// Lines renders every entry in plain text.
func (r *StatusResult) Lines() []string {
	lines := make([]string, 0, len(r.Entries))
	for _, entry := range r.Entries {
		lines = append(lines, Line(entry))
	}
	return lines
}

// Count returns how many entries have the given classification.
func (r *StatusResult) Count(c types.Classification) int {
	n := 0
	for _, entry := range r.Entries {
		if entry.Status == c {
			n++
		}
	}
	return n
}
