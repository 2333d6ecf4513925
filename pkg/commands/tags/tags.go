// Package tags implements `dotf tags` and `dotf tags add`.
package tags

import (
	"strings"

	"github.com/arthur-debert/dotf/pkg/datastore"
	"github.com/arthur-debert/dotf/pkg/errors"
	"github.com/arthur-debert/dotf/pkg/logging"
	"github.com/arthur-debert/dotf/pkg/session"
)

// TagsOptions defines the options for List and Add.
type TagsOptions struct {
	session.Options

	// Tags to add. Ignored by List.
	Tags []string
}

// TagsResult holds the tag set after the command ran.
type TagsResult struct {
	Tags  []string `json:"tags"`
	Added []string `json:"added,omitempty"`
}

// List returns the current tags, sorted.
func List(opts TagsOptions) (*TagsResult, error) {
	s, err := opts.Load()
	if err != nil {
		return nil, err
	}
	return &TagsResult{Tags: s.Tags.Sorted()}, nil
}

// Add merges opts.Tags into the stored set. Tags are never removed, and
// adding a tag that is already present changes nothing.
func Add(opts TagsOptions) (*TagsResult, error) {
	log := logging.GetLogger("commands.tags")

	for _, tag := range opts.Tags {
		if err := validate(tag); err != nil {
			return nil, err
		}
	}

	s, err := opts.Load()
	if err != nil {
		return nil, err
	}

	merged, err := datastore.New(s.FS, s.Paths).AddTags(opts.Tags)
	if err != nil {
		return nil, err
	}

	result := &TagsResult{Tags: merged.Sorted()}
	for _, tag := range merged.Sorted() {
		if !s.Tags.Has(tag) {
			result.Added = append(result.Added, tag)
		}
	}

	log.Info().Strs("added", result.Added).Strs("tags", result.Tags).Msg("Tags updated")
	return result, nil
}

func validate(tag string) error {
	if tag == "" {
		return errors.New(errors.ErrInvalidInput, "tag cannot be empty")
	}
	// The tags file holds one tag per line.
	if strings.ContainsAny(tag, "\r\n") {
		return errors.Newf(errors.ErrInvalidInput, "tag %q contains a line break", tag)
	}
	return nil
}
