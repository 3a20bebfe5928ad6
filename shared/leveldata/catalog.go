package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Level file extensions.
const (
	ExtText = ".txt"
	ExtTMX  = ".tmx"
)

// IsLevelFile reports whether name has a level extension.
func IsLevelFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ExtText || ext == ExtTMX
}

// Load reads one level file, choosing the parser by extension.
func Load(fsys fs.FS, p string, win Window) (*Level, error) {
	if strings.EqualFold(path.Ext(p), ExtTMX) {
		return LoadTMX(fsys, p)
	}
	f, err := fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", p, err)
	}
	defer f.Close()
	return Parse(f, stem(p), win)
}

// List returns the level files in dir, sorted by name.
func List(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read levels dir %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !IsLevelFile(e.Name()) {
			continue
		}
		paths = append(paths, path.Join(dir, e.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no level files found in %s", dir)
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadAll discovers and loads every level in dir.
func LoadAll(fsys fs.FS, dir string, win Window) ([]*Level, error) {
	paths, err := List(fsys, dir)
	if err != nil {
		return nil, err
	}
	levels := make([]*Level, 0, len(paths))
	for _, p := range paths {
		lvl, err := Load(fsys, p, win)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}
