// Package session loads the state one dotf operation works against: the
// root layout, the tag set and the delimiter. A Session is read once and
// never refreshed; after changing tags or the key, load a new one.
package session

import (
	"os"

	"github.com/arthur-debert/dotf/pkg/config"
	"github.com/arthur-debert/dotf/pkg/datastore"
	"github.com/arthur-debert/dotf/pkg/errors"
	"github.com/arthur-debert/dotf/pkg/filesystem"
	"github.com/arthur-debert/dotf/pkg/logging"
	"github.com/arthur-debert/dotf/pkg/paths"
	"github.com/arthur-debert/dotf/pkg/scanner"
	"github.com/arthur-debert/dotf/pkg/types"
)

// Session is the immutable context passed to compile, link and status.
type Session struct {
	FS     types.FS
	Paths  paths.Paths
	Config *config.Config
	Tags   types.TagSet
	Key    string
}

// Options names what a command needs to open a session. Commands embed it
// in their own options.
type Options struct {
	// FileSystem defaults to the real filesystem
	FileSystem types.FS
	Paths      paths.Paths
	Config     *config.Config
}

// Load opens a session from the options.
func (o Options) Load() (*Session, error) {
	return Load(o.FileSystem, o.Paths, o.Config)
}

// FS returns the configured filesystem or the real one.
func (o Options) FS() types.FS {
	if o.FileSystem == nil {
		return filesystem.NewOS()
	}
	return o.FileSystem
}

// RequireRoot fails with NOT_INITIALIZED unless the root is a directory.
func RequireRoot(fsys types.FS, p paths.Paths) error {
	if p == nil {
		return errors.New(errors.ErrInternal, "session needs paths")
	}
	info, err := fsys.Stat(p.Root())
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrNotInitialized, "Not initialized: %s (run 'dotf init')", p.Root())
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "Could not access %s", p.Root())
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrNotInitialized, "Not a dotf root: %s", p.Root())
	}
	return nil
}

// Load verifies the root exists and reads tags and key from it. A nil fsys
// means the real filesystem.
func Load(fsys types.FS, p paths.Paths, cfg *config.Config) (*Session, error) {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	if err := RequireRoot(fsys, p); err != nil {
		return nil, err
	}

	store := datastore.New(fsys, p)
	tags, err := store.Tags()
	if err != nil {
		return nil, err
	}
	key, err := store.Key()
	if err != nil {
		return nil, err
	}
	if key == "" {
		return nil, errors.Newf(errors.ErrConfigParse, "Key file %s is empty", p.KeyFile())
	}

	logger := logging.GetLogger("session")
	logger.Debug().
		Str("root", p.Root()).
		Strs("tags", tags.Sorted()).
		Str("key", key).
		Msg("Session loaded")

	return &Session{FS: fsys, Paths: p, Config: cfg, Tags: tags, Key: key}, nil
}

// Scanner returns a directive scanner bound to this session's tags and key.
func (s *Session) Scanner() *scanner.Scanner {
	return scanner.New(s.Tags, s.Key, s.Paths.HomeDir())
}

// Sources lists the source dotfiles, sorted, hidden entries excluded.
func (s *Session) Sources() ([]string, error) {
	files, err := filesystem.ListVisible(s.FS, s.Paths.DotfilesDir())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDirRead, "Could not get dotfiles")
	}
	return files, nil
}

// Compiled lists the compiled dotfiles, sorted, hidden entries excluded.
func (s *Session) Compiled() ([]string, error) {
	files, err := filesystem.ListVisible(s.FS, s.Paths.CompiledDir())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDirRead, "Could not get compiled dotfiles")
	}
	return files, nil
}

// Report logs content diagnostics as warnings.
func (s *Session) Report(diags []scanner.Diagnostic) {
	logger := logging.GetLogger("scanner")
	for _, d := range diags {
		logger.Warn().
			Str("code", string(d.Err.Code)).
			Str("file", d.File).
			Int("line", d.Line).
			Msg(d.String())
	}
}

// FilePerm is the mode compiled files are written with.
func (s *Session) FilePerm() os.FileMode {
	if s.Config != nil && s.Config.Permissions.File != 0 {
		return s.Config.Permissions.File
	}
	return 0644
}

// DirPerm is the mode for directories dotf creates.
func (s *Session) DirPerm() os.FileMode {
	if s.Config != nil && s.Config.Permissions.Directory != 0 {
		return s.Config.Permissions.Directory
	}
	return 0755
}
