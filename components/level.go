package components

import (
	"github.com/automoto/nightlight/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	Names        []string
}

var Level = donburi.NewComponentType[LevelData]()
