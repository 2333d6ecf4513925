// Package key implements `dotf key` and `dotf key set`.
package key

import (
	"github.com/arthur-debert/dotf/pkg/datastore"
	"github.com/arthur-debert/dotf/pkg/logging"
	"github.com/arthur-debert/dotf/pkg/session"
)

// KeyOptions defines the options for Get and Set.
type KeyOptions struct {
	session.Options

	// Key is the new delimiter. Ignored by Get.
	Key string
}

// KeyResult holds the delimiter after the command ran.
type KeyResult struct {
	Key      string `json:"key"`
	Previous string `json:"previous,omitempty"`
}

// Get returns the stored delimiter.
func Get(opts KeyOptions) (*KeyResult, error) {
	fsys := opts.FS()
	if err := session.RequireRoot(fsys, opts.Paths); err != nil {
		return nil, err
	}

	k, err := datastore.New(fsys, opts.Paths).Key()
	if err != nil {
		return nil, err
	}
	return &KeyResult{Key: k}, nil
}

// Set replaces the delimiter. It works on a root whose key file is empty or
// missing, which is how a broken key gets repaired.
func Set(opts KeyOptions) (*KeyResult, error) {
	fsys := opts.FS()
	if err := session.RequireRoot(fsys, opts.Paths); err != nil {
		return nil, err
	}

	store := datastore.New(fsys, opts.Paths)
	previous, _ := store.Key()
	if err := store.SetKey(opts.Key); err != nil {
		return nil, err
	}

	logger := logging.GetLogger("commands.key")
	logger.Info().
		Str("previous", previous).
		Str("key", opts.Key).
		Msg("Key updated")

	return &KeyResult{Key: opts.Key, Previous: previous}, nil
}
