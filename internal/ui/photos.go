package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ScanPhotos lists the files directly inside dir whose extension is one of
// extensions, compared case-insensitively. Paths are returned sorted.
func ScanPhotos(dir string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan photos: %w", err)
	}

	allowed := make([]string, len(extensions))
	for i, ext := range extensions {
		allowed[i] = strings.ToLower(ext)
	}

	var out []string
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if slices.Contains(allowed, strings.ToLower(filepath.Ext(e.Name()))) {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(out)
	return out, nil
}
