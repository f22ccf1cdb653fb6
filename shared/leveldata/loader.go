package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from the TMX
const (
	GroupPlayerSpawn = "PlayerSpawn"
	GroupSpawners    = "Spawners"
	GroupNodes       = "Nodes"
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS (client) or os.DirFS (simulator).
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile size must be positive", tmxPath)
	}

	ppu := float64(levelMap.TileWidth)
	heightPx := float64(levelMap.Height * levelMap.TileHeight)
	toWorld := func(x, y float64) Point {
		// TMX is y-down in pixels
		return Point{X: x / ppu, Y: (heightPx - y) / ppu}
	}

	level := &Level{
		Name:          strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:         float64(levelMap.Width*levelMap.TileWidth) / ppu,
		Height:        heightPx / ppu,
		PixelsPerUnit: ppu,
		Nodes:         make(map[int]Node),
	}
	level.PlayerSpawn = level.Center()

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlayerSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.PlayerSpawn = toWorld(o.X, o.Y)
			}
		case GroupSpawners:
			for _, o := range og.Objects {
				s := Spawner{
					ID:       int(o.ID),
					Position: toWorld(o.X, o.Y),
				}
				if s.SpawnWait, err = floatProperty(o.Properties, "spawnWait"); err != nil {
					return nil, fmt.Errorf("load TMX %s: spawner %d: %w", tmxPath, o.ID, err)
				}
				if s.SpawnInterval, err = floatProperty(o.Properties, "spawnInterval"); err != nil {
					return nil, fmt.Errorf("load TMX %s: spawner %d: %w", tmxPath, o.ID, err)
				}
				if s.FirstNode, err = objectProperty(o.Properties, "node"); err != nil {
					return nil, fmt.Errorf("load TMX %s: spawner %d: %w", tmxPath, o.ID, err)
				}
				level.Spawners = append(level.Spawners, s)
			}
		case GroupNodes:
			for _, o := range og.Objects {
				next, err := objectProperty(o.Properties, "next")
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: node %d: %w", tmxPath, o.ID, err)
				}
				level.Nodes[int(o.ID)] = Node{
					ID:       int(o.ID),
					Position: toWorld(o.X, o.Y),
					Next:     next,
				}
			}
		}
	}

	if err := level.validate(); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	sort.Slice(level.Spawners, func(i, j int) bool {
		return level.Spawners[i].ID < level.Spawners[j].ID
	})
	return level, nil
}

func findProperty(props tiled.Properties, name string) *tiled.Property {
	for _, p := range props {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// objectProperty reads an object reference (or plain int) property; 0 when
// absent. go-tiled's GetInt only matches int-typed properties.
func objectProperty(props tiled.Properties, name string) (int, error) {
	p := findProperty(props, name)
	if p == nil || p.Value == "" {
		return 0, nil
	}
	switch p.Type {
	case "object", "int", "":
		id, err := strconv.Atoi(p.Value)
		if err != nil {
			return 0, fmt.Errorf("property %s: %w", name, err)
		}
		return id, nil
	}
	return 0, fmt.Errorf("property %s has type %s, expected object or int", name, p.Type)
}

// floatProperty reads a numeric property, Unset when absent.
func floatProperty(props tiled.Properties, name string) (float64, error) {
	p := findProperty(props, name)
	if p == nil || p.Value == "" {
		return Unset, nil
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("property %s: %w", name, err)
	}
	return v, nil
}

// A node without a next node loops onto itself so its spawner parks there.
func (l *Level) validate() error {
	for id, n := range l.Nodes {
		if n.Next == 0 {
			n.Next = id
			l.Nodes[id] = n
			continue
		}
		if _, ok := l.Nodes[n.Next]; !ok {
			return fmt.Errorf("node %d points at unknown node %d", id, n.Next)
		}
	}
	for _, s := range l.Spawners {
		if _, ok := l.Nodes[s.FirstNode]; !ok {
			return fmt.Errorf("spawner %d points at unknown node %d", s.ID, s.FirstNode)
		}
	}
	return nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
