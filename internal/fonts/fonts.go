// Package fonts finds UI font files under the asset directories.
package fonts

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Exts are the font file extensions raylib can load.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate font directories, relative to the process working directory.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns the paths of all font files under dir, relative to dir, with forward slashes.
// A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalize lowercases and drops spaces, dashes and underscores so "Go Mono" matches "go-mono".
func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// Find returns the full path of the first font under dirs whose relative path contains family.
// When several files match, a "Regular" cut wins. An existing file path is returned as is.
func Find(dirs []string, family string) (string, error) {
	if family == "" {
		return "", os.ErrNotExist
	}
	if isFont(family) {
		if _, err := os.Stat(family); err == nil {
			return family, nil
		}
	}
	want := normalize(strings.TrimSuffix(family, filepath.Ext(family)))
	var matches []string
	for _, base := range dirs {
		list, err := ScanDir(base)
		if err != nil {
			return "", err
		}
		for _, rel := range list {
			if strings.Contains(normalize(rel), want) {
				matches = append(matches, filepath.Join(base, filepath.FromSlash(rel)))
			}
		}
	}
	if len(matches) == 0 {
		return "", os.ErrNotExist
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(filepath.Base(m)), "regular") {
			return m, nil
		}
	}
	return matches[0], nil
}
