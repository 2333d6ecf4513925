// Package link places symlinks from each dotfile's destination to its
// compiled file, and removes them again.
package link

import (
	"path/filepath"

	"github.com/arthur-debert/dotf/pkg/errors"
	"github.com/arthur-debert/dotf/pkg/linkstatus"
	"github.com/arthur-debert/dotf/pkg/logging"
	"github.com/arthur-debert/dotf/pkg/scanner"
	"github.com/arthur-debert/dotf/pkg/session"
	"github.com/arthur-debert/dotf/pkg/types"
)

// Outcome is what happened to a single entry.
type Outcome string

const (
	OutcomeLinked        Outcome = "linked"
	OutcomeAlreadyLinked Outcome = "already-linked"
	OutcomeCannotLink    Outcome = "cannot-link"
	OutcomeUnlinked      Outcome = "unlinked"
	OutcomeSkipped       Outcome = "skipped"
)

// Options controls a link or unlink pass.
type Options struct {
	// DryRun reports what would change without touching the filesystem
	DryRun bool
}

// Item records one compiled file and what the pass did with it.
type Item struct {
	Name     string               `json:"name"`
	Compiled string               `json:"compiled"`
	Location string               `json:"location"`
	Status   types.Classification `json:"status"`
	Outcome  Outcome              `json:"outcome"`
}

// Result is the outcome of a link or unlink pass.
type Result struct {
	Items       []Item               `json:"items"`
	DryRun      bool                 `json:"dryRun"`
	Diagnostics []scanner.Diagnostic `json:"-"`
}

// Run links every compiled dotfile whose destination is free. Destinations
// are derived from the compiled files, so a source edited after the last
// compile does not move its link. The first symlink failure aborts the pass.
func Run(s *session.Session, opts Options) (*Result, error) {
	logger := logging.GetLogger("link")
	defer logging.LogOperationStart(logger, "link")()

	result := &Result{DryRun: opts.DryRun}

	entries, err := compiledEntries(s, result)
	if err != nil {
		return result, err
	}

	for _, entry := range entries {
		item := Item{
			Name:     entry.Name,
			Compiled: entry.Compiled,
			Location: entry.Location,
			Status:   entry.Status,
		}

		switch entry.Status {
		case types.Unlinked:
			logger.Info().Str("file", entry.Name).Str("location", entry.Location).
				Msgf("Linking: %s ...", entry.Name)
			if !opts.DryRun {
				if err := place(s, entry); err != nil {
					return result, err
				}
			}
			item.Outcome = OutcomeLinked
		case types.Linked:
			logger.Info().Str("file", entry.Name).Msgf("Already linked: %s", entry.Name)
			item.Outcome = OutcomeAlreadyLinked
		default:
			logger.Warn().Str("file", entry.Name).Str("location", entry.Location).
				Msgf("Cannot link: %s", entry.Name)
			item.Outcome = OutcomeCannotLink
		}
		result.Items = append(result.Items, item)
	}

	logger.Info().Int("files", len(result.Items)).Bool("dryRun", opts.DryRun).Msg("Finished linking")
	return result, nil
}

// Unlink removes destination symlinks that point at their compiled file.
// Anything else at a destination is left alone.
func Unlink(s *session.Session, opts Options) (*Result, error) {
	logger := logging.GetLogger("link")
	defer logging.LogOperationStart(logger, "unlink")()

	result := &Result{DryRun: opts.DryRun}

	entries, err := compiledEntries(s, result)
	if err != nil {
		return result, err
	}

	for _, entry := range entries {
		item := Item{
			Name:     entry.Name,
			Compiled: entry.Compiled,
			Location: entry.Location,
			Status:   entry.Status,
			Outcome:  OutcomeSkipped,
		}

		if entry.Status == types.Linked {
			logger.Info().Str("file", entry.Name).Str("location", entry.Location).
				Msgf("Unlinking: %s ...", entry.Name)
			if !opts.DryRun {
				if err := s.FS.Remove(entry.Location); err != nil {
					return result, errors.Wrapf(err, errors.ErrSymlinkRemove, "Unlinking failed for %s", entry.Name).
						WithDetail("location", entry.Location)
				}
			}
			item.Outcome = OutcomeUnlinked
		}
		result.Items = append(result.Items, item)
	}

	logger.Info().Int("files", len(result.Items)).Bool("dryRun", opts.DryRun).Msg("Finished unlinking")
	return result, nil
}

func compiledEntries(s *session.Session, result *Result) ([]linkstatus.Entry, error) {
	compiled, err := s.Compiled()
	if err != nil {
		return nil, err
	}

	entries := make([]linkstatus.Entry, 0, len(compiled))
	for _, path := range compiled {
		entry, err := linkstatus.ForSource(s, path)
		result.Diagnostics = append(result.Diagnostics, entry.Diagnostics...)
		s.Report(entry.Diagnostics)
		if err != nil {
			return entries, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func place(s *session.Session, entry linkstatus.Entry) error {
	if err := s.FS.MkdirAll(filepath.Dir(entry.Location), s.DirPerm()); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "Linking failed for %s", entry.Name).
			WithDetail("location", entry.Location)
	}
	if err := s.FS.Symlink(entry.Compiled, entry.Location); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "Linking failed for %s", entry.Name).
			WithDetail("location", entry.Location)
	}
	return nil
}
