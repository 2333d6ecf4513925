// Package initialize implements `dotf init`.
package initialize

import (
	"os"

	"github.com/arthur-debert/dotf/pkg/config"
	"github.com/arthur-debert/dotf/pkg/errors"
	"github.com/arthur-debert/dotf/pkg/logging"
	"github.com/arthur-debert/dotf/pkg/session"
	"github.com/arthur-debert/dotf/pkg/types"
)

const (
	defaultKey     = "~~~"
	defaultDirPerm = 0755
	defaultPerm    = 0644
)

// InitOptions defines the options for the Init command.
type InitOptions struct {
	session.Options
}

// InitResult reports what Init did.
type InitResult struct {
	Root               string   `json:"root"`
	AlreadyInitialized bool     `json:"alreadyInitialized"`
	Created            []string `json:"created,omitempty"`
}

// Init creates the root layout: dotfiles/, .compiled/, the tags file and the
// key file. An existing root, whatever it contains, is left untouched.
func Init(opts InitOptions) (*InitResult, error) {
	log := logging.GetLogger("commands.init")
	if opts.Paths == nil {
		return nil, errors.New(errors.ErrInternal, "init needs paths")
	}

	fsys := opts.FS()
	root := opts.Paths.Root()
	result := &InitResult{Root: root}

	if _, err := fsys.Lstat(root); err == nil {
		log.Info().Str("root", root).Msg("Already initialized")
		result.AlreadyInitialized = true
		return result, nil
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "Could not access %s", root)
	}

	tags, key, dirPerm, filePerm := defaults(opts.Config)

	for _, dir := range []string{root, opts.Paths.DotfilesDir(), opts.Paths.CompiledDir()} {
		if err := fsys.MkdirAll(dir, dirPerm); err != nil {
			return result, errors.Wrapf(err, errors.ErrDirCreate, "Could not create %s", dir)
		}
		result.Created = append(result.Created, dir)
	}

	files := []struct {
		path    string
		content string
	}{
		{opts.Paths.TagFile(), types.NewTagSet(tags...).Serialize()},
		{opts.Paths.KeyFile(), key + "\n"},
	}
	for _, f := range files {
		if err := fsys.WriteFile(f.path, []byte(f.content), filePerm); err != nil {
			return result, errors.Wrapf(err, errors.ErrFileWrite, "Could not write %s", f.path)
		}
		result.Created = append(result.Created, f.path)
	}

	log.Info().Str("root", root).Int("created", len(result.Created)).Msg("Initialized dotf")
	return result, nil
}

func defaults(cfg *config.Config) (tags []string, key string, dirPerm, filePerm os.FileMode) {
	tags = []string{types.UniversalTag}
	key = defaultKey
	dirPerm, filePerm = defaultDirPerm, defaultPerm
	if cfg == nil {
		return
	}
	if cfg.DefaultTags != nil {
		tags = cfg.DefaultTags
	}
	if cfg.DefaultKey != "" {
		key = cfg.DefaultKey
	}
	if cfg.Permissions.Directory != 0 {
		dirPerm = cfg.Permissions.Directory
	}
	if cfg.Permissions.File != 0 {
		filePerm = cfg.Permissions.File
	}
	return
}
