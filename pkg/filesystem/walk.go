package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ListFiles lists the files accepted by the given filter.
// Directories are walked recursively, skipping hidden ones (ex: .nt, .git).
// Files passed explicitly are returned when accepted, even when hidden.
func ListFiles(paths []string, accept func(path string) bool) ([]string, error) {
	var result []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if accept(path) {
				result = append(result, path)
			}
			continue
		}

		err = filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if isHidden(d.Name()) && d.Name() != "." {
					return filepath.SkipDir
				}
				return nil
			}
			if !isHidden(d.Name()) && accept(path) {
				result = append(result, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
