package systems

import (
	"log"
	"sync"

	"github.com/automoto/nightlight/assets"
	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/gameplay"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalToneLoader   *assets.ToneLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalToneLoader = assets.NewToneLoader(cfg.Audio.SampleRate)
	})
}

// PreloadAllSFX synthesizes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()
	if err := globalToneLoader.Preload(); err != nil {
		log.Printf("Warning: Could not synthesize sound effects: %v", err)
	}
}

// ReloadSFX drops synthesized clips after the tones were retuned.
func ReloadSFX() {
	initGlobalAudio()
	globalToneLoader.Invalidate()
}

// UpdateAudio plays the sound effects queued since the last update.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	audioData := GetOrCreateAudio(e)
	for _, clip := range audioData.PendingSFX {
		playSFX(clip)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(clip string) {
	if globalSFXVolume <= 0 {
		return
	}
	pcm, err := globalToneLoader.PCM(clip)
	if err != nil {
		return
	}
	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, clip string) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, clip)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the Audio component of the session, creating a
// standalone one in worlds without a session.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	if gameplay.Session(e.World) != nil {
		entry, _ := components.Session.First(e.World)
		return components.Audio.Get(entry)
	}
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  globalSFXVolume,
			PendingSFX: make([]string, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
