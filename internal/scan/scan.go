// Package scan discovers candidate microscopy image files for
// validation. Discovery is the only filesystem access in the program;
// the validator itself never touches disk.
package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions are the image formats the lab's microscopes
// produce (lowercase, with leading dot).
func DefaultExtensions() []string {
	return []string{".czi", ".tif", ".tiff", ".lsm"}
}

// Discover walks dir, collects files whose extension is in exts
// (case-insensitive), prunes hidden directories, and returns the
// paths sorted lexicographically for deterministic report order.
// An empty exts falls back to DefaultExtensions.
func Discover(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions()
	}
	want := make(map[string]bool, len(exts))
	for _, e := range exts {
		want[strings.ToLower(e)] = true
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if want[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
