package factory

import (
	"github.com/automoto/nightlight/archetypes"
	"github.com/automoto/nightlight/components"
	"github.com/automoto/nightlight/shared/leveldata"
	"github.com/yohamta/donburi"
)

func CreateLevel(w donburi.World, level *leveldata.Level, index int, names []string) *donburi.Entry {
	entry := archetypes.Level.Spawn(w)
	components.Level.Set(entry, &components.LevelData{
		CurrentLevel: level,
		LevelIndex:   index,
		Names:        names,
	})
	return entry
}
