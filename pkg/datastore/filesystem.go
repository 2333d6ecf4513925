package datastore

import (
	"strings"

	"github.com/arthur-debert/dotf/pkg/errors"
	"github.com/arthur-debert/dotf/pkg/logging"
	"github.com/arthur-debert/dotf/pkg/paths"
	"github.com/arthur-debert/dotf/pkg/types"
)

const filePerm = 0644

type filesystemDataStore struct {
	fs    types.FS
	paths paths.Paths
}

// New creates a new DataStore instance that interacts with the filesystem.
func New(fs types.FS, paths paths.Paths) DataStore {
	return &filesystemDataStore{
		fs:    fs,
		paths: paths,
	}
}

func (s *filesystemDataStore) Tags() (types.TagSet, error) {
	data, err := s.fs.ReadFile(s.paths.TagFile())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "Could not get tags").
			WithDetail("path", s.paths.TagFile())
	}
	return types.ParseTagSet(string(data)), nil
}

func (s *filesystemDataStore) AddTags(tags []string) (types.TagSet, error) {
	current, err := s.Tags()
	if err != nil {
		return nil, err
	}

	merged := current.Merge(tags...)
	if err := s.fs.WriteFile(s.paths.TagFile(), []byte(merged.Serialize()), filePerm); err != nil {
		return nil, errors.Wrap(err, errors.ErrFileWrite, "Could not write tags").
			WithDetail("path", s.paths.TagFile())
	}

	logger := logging.GetLogger("datastore")
	logger.Debug().
		Strs("added", tags).
		Strs("tags", merged.Sorted()).
		Msg("Tags written")

	return merged, nil
}

func (s *filesystemDataStore) Key() (string, error) {
	data, err := s.fs.ReadFile(s.paths.KeyFile())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfigLoad, "Could not get key").
			WithDetail("path", s.paths.KeyFile())
	}
	key := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(key, "\r"), nil
}

func (s *filesystemDataStore) SetKey(key string) error {
	key = strings.TrimRight(key, "\r\n")
	if key == "" {
		return errors.New(errors.ErrInvalidInput, "key cannot be empty")
	}
	if strings.Contains(key, "\n") {
		return errors.New(errors.ErrInvalidInput, "key must be a single line")
	}

	if err := s.fs.WriteFile(s.paths.KeyFile(), []byte(key+"\n"), filePerm); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "Could not write key").
			WithDetail("path", s.paths.KeyFile())
	}
	return nil
}
