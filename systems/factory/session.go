package factory

import (
	"github.com/automoto/nightlight/archetypes"
	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/yohamta/donburi"
)

// CreateSession adds the singleton holding run stats, input and queued sounds.
func CreateSession(w donburi.World, bestKills int, sfxVolume float64) *donburi.Entry {
	session := archetypes.Session.Spawn(w)
	components.Session.SetValue(session, components.SessionData{
		BestKills: bestKills,
		ShowDebug: cfg.Debug.ShowBoxes,
	})
	components.Audio.SetValue(session, components.AudioData{
		SFXVolume:  sfxVolume,
		PendingSFX: make([]string, 0, 8),
	})
	return session
}
