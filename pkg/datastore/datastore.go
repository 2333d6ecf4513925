package datastore

import "github.com/arthur-debert/dotf/pkg/types"

// DataStore reads and writes the tag set and the delimiter.
type DataStore interface {
	// Tags returns the stored tag set. An empty file yields an empty set.
	Tags() (types.TagSet, error)

	// AddTags merges tags into the stored set and rewrites it sorted and
	// deduplicated. It returns the new set. Tags are never removed.
	AddTags(tags []string) (types.TagSet, error)

	// Key returns the stored delimiter without its trailing newline.
	Key() (string, error)

	// SetKey replaces the stored delimiter.
	SetKey(key string) error
}
