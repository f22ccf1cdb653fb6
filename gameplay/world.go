// Package gameplay holds the per-step game rules that run on a donburi world:
// player movement and state machine, spawners, ghosts, contacts and session
// stats. It does not draw or read devices, so the ebiten client and the
// headless simulator run the same rules.
package gameplay

import (
	"github.com/automoto/nightlight/components"
	"github.com/automoto/nightlight/player"
	"github.com/automoto/nightlight/shared/leveldata"
	"github.com/automoto/nightlight/shared/spatial"
	"github.com/automoto/nightlight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func spaceOf(w donburi.World) *spatial.World {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

func levelOf(w donburi.World) *leveldata.Level {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).CurrentLevel
}

func cameraOf(w donburi.World) *components.CameraData {
	entry, ok := components.Camera.First(w)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry)
}

func sessionOf(w donburi.World) *donburi.Entry {
	entry, ok := components.Session.First(w)
	if !ok {
		return nil
	}
	return entry
}

// PlayerMode returns the player's mode, or Dead when there is no player.
func PlayerMode(w donburi.World) player.Mode {
	entry, ok := tags.Player.First(w)
	if !ok {
		return player.Dead
	}
	pd := components.Player.Get(entry)
	if pd.Machine == nil {
		return pd.Mode
	}
	return pd.Machine.State().Mode
}

// QueueSound appends a clip to the session's pending sounds.
func QueueSound(w donburi.World, clip string) {
	entry := sessionOf(w)
	if entry == nil {
		return
	}
	audio := components.Audio.Get(entry)
	audio.PendingSFX = append(audio.PendingSFX, clip)
}

// PlayerPosition returns the centre of the player's body.
func PlayerPosition(w donburi.World) (math.Vec2, bool) {
	entry, ok := tags.Player.First(w)
	if !ok {
		return math.Vec2{}, false
	}
	return spatial.Center(components.Object.Get(entry).Object), true
}

// PlayerScreenPosition returns where the camera shows the player, Y up.
func PlayerScreenPosition(w donburi.World) (math.Vec2, bool) {
	pos, ok := PlayerPosition(w)
	cam := cameraOf(w)
	if !ok || cam == nil {
		return math.Vec2{}, false
	}
	return WorldToScreen(cam, pos), true
}
