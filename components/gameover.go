package components

import "github.com/yohamta/donburi"

// GameOverOption represents the available game over selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
)

// GameOverData stores the result of the finished run and the chosen option
type GameOverData struct {
	Kills     int
	BestKills int
	Survived  float64 // seconds
	NewBest   bool
	Selected  GameOverOption
	Chosen    bool
}

// GameOver is the component type for game over state
var GameOver = donburi.NewComponentType[GameOverData]()
