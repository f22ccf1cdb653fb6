package components

import "github.com/yohamta/donburi"

// SessionData holds the run's statistics (singleton component)
type SessionData struct {
	Elapsed   float64 // seconds survived
	Kills     int
	BestKills int
	DeadTimer float64 // seconds since death, 0 while alive
	Over      bool
	Paused    bool
	ShowDebug bool
}

var Session = donburi.NewComponentType[SessionData]()
