package filesystem

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/dotf/pkg/types"
)

// ListVisible returns the full paths of the entries in dir whose names do not
// start with ".", sorted by path.
func ListVisible(fsys types.FS, dir string) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
