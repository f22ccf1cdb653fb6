package config

import "image/color"

// Default is the draw layer every renderer is registered on.
const Default = 0

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TickRate int // fixed simulation steps per second
}

// FlashlightConfig contains flash cycle tuning
type FlashlightConfig struct {
	ChargeTime float64 // seconds between trigger and flash
	DecayDelay float64 // seconds the lights stay at max before decaying
	DecayRate  float64 // exponential smoothing rate back to baseline

	ConeIntensity    float64 // baseline intensities
	SpotIntensity    float64
	MaxConeIntensity float64
	MaxSpotIntensity float64
	ChargeGlow       float64 // fraction of the max reached while charging (0.0-1.0)
	ConeThreshold    float64 // decay ends within this of the baseline
	SpotThreshold    float64

	KnockbackForce     float64 // units pushed away from the pointer
	KnockbackSpeed     float64
	KnockbackThreshold float64

	// Detection box, in world units
	BoxWidth  float64
	BoxHeight float64
	BoxOffset float64

	ConeLength float64 // drawn cone length in world units
	ConeSpread float64 // drawn cone half angle in degrees
}

// FearConfig contains scared/invincible tuning
type FearConfig struct {
	Lives                  int
	ScaredTime             float64
	InvincibleTime         float64
	FlashingInvincibleRate float64 // must be lower than InvincibleTime
}

// CameraConfig contains camera zoom configuration
type CameraConfig struct {
	MinZoom   float64 // orthographic half height at rest
	MaxZoom   float64 // orthographic half height when zoomed on the player
	ZoomSpeed float64
}

// MovementConfig contains player movement configuration
type MovementConfig struct {
	Speed         float64 // units per second
	CollisionSize float64
}

// SpawnerConfig contains spawner defaults used when a level leaves them out
type SpawnerConfig struct {
	SpawnWait     float64
	SpawnInterval float64
	Speed         float64 // units per fixed step
	DetectRange   float64
	MaxGhosts     int
}

// GhostConfig contains ghost behavior configuration
type GhostConfig struct {
	Speed          float64 // units per second
	CollisionSize  float64
	AttackDuration float64 // seconds of lunge after touching the player
	AttackSpeed    float64
	WobbleRate     float64 // Hz
	WobbleAmount   float64 // sideways speed in units per second
}

// SchedulerConfig contains timed action limits
type SchedulerConfig struct {
	ConvergenceCap float64 // seconds before a non-converging action gives up
}

// UIConfig contains HUD and drawing configuration
type UIConfig struct {
	HUDMargin      float64
	HUDFontSize    float64
	DebugFontSize  float64
	LifeIconRadius float64
	ShakeIntensity float64 // pixels
	ShakeFrames    int

	BackgroundColor color.RGBA
	FloorColor      color.RGBA
	PlayerColor     color.RGBA
	GhostColor      color.RGBA
	SpawnerColor    color.RGBA
	NodeColor       color.RGBA
	ConeColor       color.RGBA
	HUDTextColor    color.RGBA
	DebugBoxColor   color.RGBA
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	Title           string
	Hint            string
	TitleY          float64
	HintY           float64
	PulseDuration   float32 // seconds per title pulse
}

// GameOverConfig contains game over overlay configuration values
type GameOverConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
	Delay        float64 // seconds after death before the overlay shows
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu       bool // Skip menu and go directly to game
	ShowBoxes      bool // Draw detection boxes and collision shapes
	LogTransitions bool // Log player mode changes
}

// Global configuration instances
var C *Config
var Flashlight FlashlightConfig
var Fear FearConfig
var Camera CameraConfig
var Movement MovementConfig
var Spawner SpawnerConfig
var Ghost GhostConfig
var Scheduler SchedulerConfig
var UI UIConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	WarmYellow   = color.RGBA{R: 255, G: 236, B: 160, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Night        = color.RGBA{R: 8, G: 8, B: 20, A: 255}
	Floor        = color.RGBA{R: 24, G: 26, B: 40, A: 255}
	GhostWhite   = color.RGBA{R: 210, G: 230, B: 255, A: 220}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	SlateBlue    = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DebugGreen   = color.RGBA{R: 0, G: 255, B: 60, A: 160}
)

func init() {
	C = &Config{
		Width:    640,
		Height:   360,
		TickRate: 60,
	}

	Flashlight = FlashlightConfig{
		ChargeTime: 0.5,
		DecayDelay: 0.3,
		DecayRate:  5,

		ConeIntensity:    20,
		SpotIntensity:    1,
		MaxConeIntensity: 80,
		MaxSpotIntensity: 4,
		ChargeGlow:       0.25,
		ConeThreshold:    10,
		SpotThreshold:    0.2,

		KnockbackForce:     2,
		KnockbackSpeed:     5,
		KnockbackThreshold: 1,

		BoxWidth:  5.3,
		BoxHeight: 1.7,
		BoxOffset: 3,

		ConeLength: 5.6,
		ConeSpread: 16,
	}

	Fear = FearConfig{
		Lives:                  3,
		ScaredTime:             2,
		InvincibleTime:         3,
		FlashingInvincibleRate: 0.15,
	}

	Camera = CameraConfig{
		MinZoom:   9,
		MaxZoom:   4,
		ZoomSpeed: 2,
	}

	Movement = MovementConfig{
		Speed:         4,
		CollisionSize: 0.8,
	}

	Spawner = SpawnerConfig{
		SpawnWait:     2,
		SpawnInterval: 5,
		Speed:         0.05,
		DetectRange:   1,
		MaxGhosts:     12,
	}

	Ghost = GhostConfig{
		Speed:          1.2,
		CollisionSize:  0.7,
		AttackDuration: 0.4,
		AttackSpeed:    4,
		WobbleRate:     3,
		WobbleAmount:   0.8,
	}

	Scheduler = SchedulerConfig{
		ConvergenceCap: 10,
	}

	UI = UIConfig{
		HUDMargin:      8,
		HUDFontSize:    12,
		DebugFontSize:  8,
		LifeIconRadius: 5,
		ShakeIntensity: 6,
		ShakeFrames:    20,

		BackgroundColor: Night,
		FloorColor:      Floor,
		PlayerColor:     WarmYellow,
		GhostColor:      GhostWhite,
		SpawnerColor:    Purple,
		NodeColor:       SlateBlue,
		ConeColor:       color.RGBA{R: 255, G: 240, B: 170, A: 60},
		HUDTextColor:    White,
		DebugBoxColor:   DebugGreen,
	}

	Menu = MenuConfig{
		BackgroundColor: Night,
		TitleColor:      WarmYellow,
		TextColor:       LightBlue,
		Title:           "NIGHTLIGHT",
		Hint:            "Press ENTER or click to start",
		TitleY:          120,
		HintY:           220,
		PulseDuration:   1.2,
	}

	GameOver = GameOverConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   Red,
		TextColor:    White,
		Title:        "YOU DIED OF FRIGHT",
		Hint:         "Press ENTER to try again",
		Delay:        1.5,
	}

	Debug = DebugConfig{}
}
