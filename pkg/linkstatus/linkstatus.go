// Package linkstatus classifies the destination of a compiled dotfile as
// unlinked, linked or a problem. Classification looks at path identity only,
// never at file content.
package linkstatus

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"syscall"

	"github.com/arthur-debert/dotf/pkg/errors"
	"github.com/arthur-debert/dotf/pkg/scanner"
	"github.com/arthur-debert/dotf/pkg/session"
	"github.com/arthur-debert/dotf/pkg/types"
)

// Entry is the link state of one dotfile.
type Entry struct {
	Name        string               `json:"name"`
	Source      string               `json:"source"`
	Compiled    string               `json:"compiled"`
	Location    string               `json:"location"`
	Status      types.Classification `json:"status"`
	Diagnostics []scanner.Diagnostic `json:"-"`
}

// Classify compares destination with the compiled file it should point at.
// Anything present at destination, including a dangling symlink, counts as
// existing; it is Linked only when both paths canonicalize to the same file.
func Classify(fsys types.FS, destination, compiled string) (types.Classification, error) {
	if _, err := fsys.Lstat(destination); err != nil {
		if os.IsNotExist(err) || stderrors.Is(err, syscall.ENOTDIR) {
			return types.Unlinked, nil
		}
		return types.Problem, errors.Wrapf(err, errors.ErrFileRead, "Could not inspect %s", destination)
	}

	dest, err := Canonical(destination)
	if err != nil {
		return types.Problem, err
	}
	want, err := Canonical(compiled)
	if err != nil {
		return types.Problem, err
	}

	if dest == want {
		return types.Linked, nil
	}
	return types.Problem, nil
}

// Canonical resolves path to an absolute path with every symlink followed.
// Components that do not exist are kept as written, after their deepest
// existing ancestor has been resolved. A dangling symlink resolves to its
// target.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "Could not make %s absolute", path)
	}
	return canonical(abs, 0), nil
}

const maxHops = 40

func canonical(abs string, hops int) string {
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	dir := filepath.Dir(abs)
	if dir == abs {
		return abs
	}

	parent := canonical(dir, hops)
	joined := filepath.Join(parent, filepath.Base(abs))

	info, err := os.Lstat(joined)
	if err != nil || info.Mode()&os.ModeSymlink == 0 || hops >= maxHops {
		return joined
	}
	target, err := os.Readlink(joined)
	if err != nil {
		return joined
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(parent, target)
	}
	return canonical(filepath.Clean(target), hops+1)
}

// ForSource resolves the destination of the file at path by scanning it and
// classifies it against the compiled file of the same basename. path may be
// a source or a compiled file.
func ForSource(s *session.Session, path string) (Entry, error) {
	res, err := s.Scanner().Location(s.FS, path)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{
		Name:        filepath.Base(path),
		Source:      path,
		Compiled:    s.Paths.CompiledPath(path),
		Location:    res.Location,
		Diagnostics: res.Diagnostics,
	}

	entry.Status, err = Classify(s.FS, entry.Location, entry.Compiled)
	if err != nil {
		return entry, err
	}
	return entry, nil
}

// All classifies every source dotfile in sorted order.
func All(s *session.Session) ([]Entry, error) {
	sources, err := s.Sources()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(sources))
	for _, source := range sources {
		entry, err := ForSource(s, source)
		if err != nil {
			return entries, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
