package assets

import (
	"embed"
	"fmt"
	"path"

	"github.com/automoto/nightlight/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// LevelsDir is the embedded directory holding the TMX levels.
const LevelsDir = "levels"

// LoadLevels parses every embedded level and returns them with their names in
// file order.
func LoadLevels() (map[string]*leveldata.Level, []string, error) {
	return leveldata.LoadAllLevels(assetFS, LevelsDir)
}

// LoadLevel parses one embedded level by name ("level01" or "level01.tmx").
func LoadLevel(name string) (*leveldata.Level, error) {
	if path.Ext(name) == "" {
		name += ".tmx"
	}
	return leveldata.LoadLevel(assetFS, path.Join(LevelsDir, name))
}

// MustLoadLevels is LoadLevels for startup code that cannot continue without levels.
func MustLoadLevels() (map[string]*leveldata.Level, []string) {
	levels, names, err := LoadLevels()
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	return levels, names
}
