package components

import "github.com/yohamta/donburi"

// AudioData queues clip ids for the audio system (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []string
}

var Audio = donburi.NewComponentType[AudioData]()
