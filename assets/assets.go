package assets

import (
	"embed"
	"io/fs"
)

// LevelsDir is the directory of the built-in levels inside Levels.
const LevelsDir = "levels"

//go:embed levels/*.txt levels/*.tmx
var levelFS embed.FS

// Levels returns the built-in level files rooted at the module's assets
// directory.
func Levels() fs.FS {
	return levelFS
}
