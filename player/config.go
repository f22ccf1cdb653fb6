package player

import (
	"github.com/automoto/nightlight/config"
	"github.com/yohamta/donburi/features/math"
)

// Config holds the tuning a Machine runs with.
type Config struct {
	Lives int

	ChargeTime       float64
	DecayDelay       float64
	DecayRate        float64
	ConeIntensity    float64
	SpotIntensity    float64
	MaxConeIntensity float64
	MaxSpotIntensity float64
	ChargeGlow       float64
	ConeThreshold    float64
	SpotThreshold    float64

	KnockbackForce     float64
	KnockbackSpeed     float64
	KnockbackThreshold float64

	BoxWidth  float64
	BoxHeight float64
	BoxOffset float64

	ScaredTime             float64
	InvincibleTime         float64
	FlashingInvincibleRate float64

	MinCameraZoom   float64
	MaxCameraZoom   float64
	CameraZoomSpeed float64
	CameraHome      math.Vec2

	ChargeSound  string
	FlashSound   string
	BanishSound  string
	ScaredSounds []string
	DeathSounds  []string

	ConvergenceCap float64
	LogTransitions bool
}

// DefaultConfig builds a Config from the global configuration. The camera
// home is left at the origin; hosts set it to the level centre.
func DefaultConfig() Config {
	f := config.Flashlight
	return Config{
		Lives: config.Fear.Lives,

		ChargeTime:       f.ChargeTime,
		DecayDelay:       f.DecayDelay,
		DecayRate:        f.DecayRate,
		ConeIntensity:    f.ConeIntensity,
		SpotIntensity:    f.SpotIntensity,
		MaxConeIntensity: f.MaxConeIntensity,
		MaxSpotIntensity: f.MaxSpotIntensity,
		ChargeGlow:       f.ChargeGlow,
		ConeThreshold:    f.ConeThreshold,
		SpotThreshold:    f.SpotThreshold,

		KnockbackForce:     f.KnockbackForce,
		KnockbackSpeed:     f.KnockbackSpeed,
		KnockbackThreshold: f.KnockbackThreshold,

		BoxWidth:  f.BoxWidth,
		BoxHeight: f.BoxHeight,
		BoxOffset: f.BoxOffset,

		ScaredTime:             config.Fear.ScaredTime,
		InvincibleTime:         config.Fear.InvincibleTime,
		FlashingInvincibleRate: config.Fear.FlashingInvincibleRate,

		MinCameraZoom:   config.Camera.MinZoom,
		MaxCameraZoom:   config.Camera.MaxZoom,
		CameraZoomSpeed: config.Camera.ZoomSpeed,

		ChargeSound:  config.ClipCharge,
		FlashSound:   config.ClipFlash,
		BanishSound:  config.ClipBanish,
		ScaredSounds: config.Sound.ScaredSounds,
		DeathSounds:  config.Sound.DeathSounds,

		ConvergenceCap: config.Scheduler.ConvergenceCap,
		LogTransitions: config.Debug.LogTransitions,
	}
}
