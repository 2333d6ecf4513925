// Package watch recompiles dotfiles when their sources, the tag set or the
// key change. Events are debounced so an editor's burst of writes triggers a
// single pass, and passes never overlap.
package watch

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/dotf/pkg/compile"
	"github.com/arthur-debert/dotf/pkg/errors"
	"github.com/arthur-debert/dotf/pkg/logging"
	"github.com/arthur-debert/dotf/pkg/session"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is used when no debounce window is configured.
const DefaultDebounce = 200 * time.Millisecond

// Filter reports whether a changed path should trigger a pass.
type Filter func(path string) bool

// ChangeHandler receives the sorted, deduplicated paths of one debounced
// batch. It runs on the watcher's goroutine.
type ChangeHandler func(paths []string)

// Watcher delivers debounced change batches for a set of directories.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	filter   Filter
}

// New watches dirs (not recursively). A zero debounce uses DefaultDebounce
// and a nil filter accepts every path.
func New(dirs []string, debounce time.Duration, filter Filter) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "Could not start file watcher")
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, errors.Wrapf(err, errors.ErrDirRead, "Could not watch %s", dir)
		}
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if filter == nil {
		filter = func(string) bool { return true }
	}
	return &Watcher{watcher: fw, debounce: debounce, filter: filter}, nil
}

// Run blocks until ctx is done, calling handle once per quiet period that
// followed at least one accepted event. The watcher is closed on return.
func (w *Watcher) Run(ctx context.Context, handle ChangeHandler) error {
	logger := logging.GetLogger("watch")
	defer func() { _ = w.watcher.Close() }()

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.filter(event.Name) {
				continue
			}
			logger.Trace().Str("path", event.Name).Str("op", event.Op.String()).Msg("Change detected")
			pending[event.Name] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("File watcher error")

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			batch := make([]string, 0, len(pending))
			for path := range pending {
				batch = append(batch, path)
			}
			sort.Strings(batch)
			pending = make(map[string]struct{})
			handle(batch)
		}
	}
}

// PassHandler receives the outcome of every compile pass.
type PassHandler func(changed []string, result *compile.Result, err error)

// Compile runs one compile pass, then another after every debounced change
// to the source dotfiles, the tags file or the key file. Each pass loads a
// fresh session. Compile errors are reported to onPass and do not stop the
// watch; it returns when ctx is done.
func Compile(ctx context.Context, opts session.Options, debounce time.Duration, onPass PassHandler) error {
	if opts.Paths == nil {
		return errors.New(errors.ErrInternal, "watch needs paths")
	}
	if err := session.RequireRoot(opts.FS(), opts.Paths); err != nil {
		return err
	}

	logger := logging.GetLogger("watch")
	pass := func(changed []string) {
		s, err := opts.Load()
		if err != nil {
			onPass(changed, nil, err)
			return
		}
		result, err := compile.Run(s)
		onPass(changed, result, err)
	}

	w, err := New([]string{opts.Paths.DotfilesDir(), opts.Paths.Root()}, debounce, SourceFilter(opts))
	if err != nil {
		return err
	}

	pass(nil)
	logger.Info().Str("dir", opts.Paths.DotfilesDir()).Msg("Watching for changes")
	return w.Run(ctx, pass)
}

// SourceFilter accepts visible files directly in the dotfiles directory and
// the tags and key files.
func SourceFilter(opts session.Options) Filter {
	dotfiles := filepath.Clean(opts.Paths.DotfilesDir())
	tagFile := filepath.Clean(opts.Paths.TagFile())
	keyFile := filepath.Clean(opts.Paths.KeyFile())

	return func(path string) bool {
		path = filepath.Clean(path)
		if path == tagFile || path == keyFile {
			return true
		}
		return filepath.Dir(path) == dotfiles && !strings.HasPrefix(filepath.Base(path), ".")
	}
}
