package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindPDFsInDirectory returns the paths of all PDF files directly inside
// the directory, sorted by name. The search is deliberately non-recursive.
func FindPDFsInDirectory(directory string) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", directory, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
			paths = append(paths, filepath.Join(directory, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}
