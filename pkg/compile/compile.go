// Package compile regenerates the compiled dotfiles from their sources.
package compile

import (
	"path/filepath"

	"github.com/arthur-debert/dotf/pkg/errors"
	"github.com/arthur-debert/dotf/pkg/logging"
	"github.com/arthur-debert/dotf/pkg/scanner"
	"github.com/arthur-debert/dotf/pkg/session"
)

// File describes one compiled dotfile.
type File struct {
	Name     string `json:"name"`
	Source   string `json:"source"`
	Compiled string `json:"compiled"`
	Location string `json:"location"`
	Lines    int    `json:"lines"`
	Emitted  int    `json:"emitted"`
}

// Result is the outcome of a full compile pass. Failed names the source that
// aborted it, if any.
type Result struct {
	Removed     []string             `json:"removed"`
	Files       []File               `json:"files"`
	Failed      string               `json:"failed,omitempty"`
	Diagnostics []scanner.Diagnostic `json:"-"`
}

// Run clears the compiled directory and compiles every source dotfile into
// it, in sorted order. The first read or write failure aborts the pass; files
// compiled before it stay on disk and the failing file's partial output is
// removed.
func Run(s *session.Session) (*Result, error) {
	logger := logging.GetLogger("compile")
	defer logging.LogOperationStart(logger, "compile")()

	result := &Result{}

	logger.Info().Msg("Clearing out old files ...")
	stale, err := s.Compiled()
	if err != nil {
		return nil, err
	}
	for _, path := range stale {
		if err := s.FS.Remove(path); err != nil {
			return result, errors.Wrapf(err, errors.ErrFileRemove, "Could not remove %s", path)
		}
		result.Removed = append(result.Removed, path)
	}

	sources, err := s.Sources()
	if err != nil {
		return result, err
	}

	sc := s.Scanner()
	for _, source := range sources {
		name := filepath.Base(source)
		logger.Info().Str("file", name).Msgf("Compiling %s ...", name)

		file, diags, err := compileOne(s, sc, source)
		result.Diagnostics = append(result.Diagnostics, diags...)
		s.Report(diags)
		if err != nil {
			result.Failed = name
			return result, errors.Wrapf(err, errors.GetErrorCode(err), "Compilation failed for %s", name)
		}
		result.Files = append(result.Files, file)
	}

	logger.Info().Int("files", len(result.Files)).Msg("Finished compilation")
	return result, nil
}

func compileOne(s *session.Session, sc *scanner.Scanner, source string) (File, []scanner.Diagnostic, error) {
	target := s.Paths.CompiledPath(source)

	w, err := s.FS.Create(target, s.FilePerm())
	if err != nil {
		return File{}, nil, errors.Wrapf(err, errors.ErrFileWrite, "Could not create %s", target)
	}

	res, err := sc.ScanFile(s.FS, source, func(line []byte) error {
		if _, werr := w.Write(line); werr != nil {
			return errors.Wrapf(werr, errors.ErrFileWrite, "Could not write %s", target)
		}
		return nil
	})
	closeErr := w.Close()
	if err == nil && closeErr != nil {
		err = errors.Wrapf(closeErr, errors.ErrFileWrite, "Could not write %s", target)
	}
	if err != nil {
		_ = s.FS.Remove(target)
		return File{}, res.Diagnostics, err
	}

	return File{
		Name:     filepath.Base(source),
		Source:   source,
		Compiled: target,
		Location: res.Location,
		Lines:    res.Lines,
		Emitted:  res.Emitted,
	}, res.Diagnostics, nil
}
