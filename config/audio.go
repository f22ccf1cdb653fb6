package config

// Clip ids played by the game
const (
	ClipCharge = "charge"
	ClipFlash  = "flash"
	ClipBanish = "banish"
	ClipSpawn  = "spawn"
	ClipMenu   = "menu_select"
)

// Tone describes a synthesized sound effect
type Tone struct {
	StartFreq float64 // Hz
	EndFreq   float64 // Hz, linear slide from StartFreq
	Duration  float64 // seconds
	Volume    float64 // 0.0 to 1.0
	Noise     float64 // 0.0 to 1.0 white noise mix
	Tremolo   float64 // Hz, 0 disables
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig lists clip ids and how to synthesize them
type SoundConfig struct {
	ScaredSounds []string
	DeathSounds  []string
	Tones        map[string]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}

	Sound = SoundConfig{
		ScaredSounds: []string{"scared_gasp", "scared_shriek", "scared_whimper"},
		DeathSounds:  []string{"death_wail", "death_thud"},
		Tones: map[string]Tone{
			ClipCharge:       {StartFreq: 220, EndFreq: 660, Duration: 0.5, Volume: 0.25, Tremolo: 18},
			ClipFlash:        {StartFreq: 1400, EndFreq: 300, Duration: 0.25, Volume: 0.5, Noise: 0.6},
			ClipBanish:       {StartFreq: 900, EndFreq: 1800, Duration: 0.3, Volume: 0.3},
			ClipSpawn:        {StartFreq: 180, EndFreq: 120, Duration: 0.4, Volume: 0.2, Tremolo: 6},
			ClipMenu:         {StartFreq: 660, EndFreq: 880, Duration: 0.08, Volume: 0.3},
			"scared_gasp":    {StartFreq: 500, EndFreq: 900, Duration: 0.35, Volume: 0.5, Noise: 0.3},
			"scared_shriek":  {StartFreq: 1200, EndFreq: 1600, Duration: 0.45, Volume: 0.4, Tremolo: 30},
			"scared_whimper": {StartFreq: 420, EndFreq: 300, Duration: 0.6, Volume: 0.4, Tremolo: 9},
			"death_wail":     {StartFreq: 600, EndFreq: 90, Duration: 1.4, Volume: 0.5, Tremolo: 5},
			"death_thud":     {StartFreq: 120, EndFreq: 40, Duration: 0.7, Volume: 0.7, Noise: 0.4},
		},
	}
}
