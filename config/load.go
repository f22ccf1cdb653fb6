package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the subset of configuration that can be overridden from a YAML
// file. Keys are the lowercased field names, for example:
//
//	fear:
//	  scaredtime: 1.5
//	flashlight:
//	  knockbackforce: 3
type Tuning struct {
	Flashlight FlashlightConfig `yaml:"flashlight"`
	Fear       FearConfig       `yaml:"fear"`
	Camera     CameraConfig     `yaml:"camera"`
	Movement   MovementConfig   `yaml:"movement"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Ghost      GhostConfig      `yaml:"ghost"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
	Sound      SoundConfig      `yaml:"sound"`
	Input      InputConfig      `yaml:"input"`
}

// CurrentTuning snapshots the global configuration. Maps are copied so a
// decode that fails validation leaves the globals untouched.
func CurrentTuning() Tuning {
	sound := Sound
	sound.Tones = make(map[string]Tone, len(Sound.Tones))
	for k, v := range Sound.Tones {
		sound.Tones[k] = v
	}
	input := Input
	input.Bindings = make(map[ActionID]InputBinding, len(Input.Bindings))
	for k, v := range Input.Bindings {
		input.Bindings[k] = v
	}
	return Tuning{
		Flashlight: Flashlight,
		Fear:       Fear,
		Camera:     Camera,
		Movement:   Movement,
		Spawner:    Spawner,
		Ghost:      Ghost,
		Scheduler:  Scheduler,
		Sound:      sound,
		Input:      input,
	}
}

// ParseTuning decodes data over the current configuration. Fields missing
// from the document keep their current values.
func ParseTuning(data []byte) (Tuning, error) {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// LoadFile reads a tuning file and applies it to the globals.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tuning file: %w", err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	t.Apply()
	return nil
}

// Apply copies the tuning into the globals.
func (t Tuning) Apply() {
	Flashlight = t.Flashlight
	Fear = t.Fear
	Camera = t.Camera
	Movement = t.Movement
	Spawner = t.Spawner
	Ghost = t.Ghost
	Scheduler = t.Scheduler
	Sound = t.Sound
	Input = t.Input
}

// Validate checks ranges the game relies on.
func (t *Tuning) Validate() error {
	var errs []error
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}

	f := t.Flashlight
	nonNegative("flashlight.chargetime", f.ChargeTime)
	nonNegative("flashlight.decaydelay", f.DecayDelay)
	nonNegative("flashlight.decayrate", f.DecayRate)
	nonNegative("flashlight.knockbackforce", f.KnockbackForce)
	nonNegative("flashlight.knockbackspeed", f.KnockbackSpeed)
	if f.BoxWidth <= 0 || f.BoxHeight <= 0 {
		errs = append(errs, fmt.Errorf("flashlight box must have a positive size, got %vx%v", f.BoxWidth, f.BoxHeight))
	}
	if f.ChargeGlow < 0 || f.ChargeGlow > 1 {
		errs = append(errs, fmt.Errorf("flashlight.chargeglow must be between 0 and 1, got %v", f.ChargeGlow))
	}

	fe := t.Fear
	if fe.Lives < 1 {
		errs = append(errs, fmt.Errorf("fear.lives must be at least 1, got %d", fe.Lives))
	}
	nonNegative("fear.scaredtime", fe.ScaredTime)
	nonNegative("fear.invincibletime", fe.InvincibleTime)
	if fe.FlashingInvincibleRate <= 0 || fe.FlashingInvincibleRate >= fe.InvincibleTime {
		errs = append(errs, fmt.Errorf("fear.flashinginvinciblerate must be in (0, invincibletime), got %v", fe.FlashingInvincibleRate))
	}

	if t.Camera.MinZoom <= 0 || t.Camera.MaxZoom <= 0 {
		errs = append(errs, fmt.Errorf("camera zooms must be positive, got min %v max %v", t.Camera.MinZoom, t.Camera.MaxZoom))
	}
	nonNegative("camera.zoomspeed", t.Camera.ZoomSpeed)
	nonNegative("movement.speed", t.Movement.Speed)
	nonNegative("spawner.spawnwait", t.Spawner.SpawnWait)
	if t.Spawner.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("spawner.spawninterval must be positive, got %v", t.Spawner.SpawnInterval))
	}
	nonNegative("ghost.speed", t.Ghost.Speed)
	nonNegative("scheduler.convergencecap", t.Scheduler.ConvergenceCap)

	if len(t.Sound.ScaredSounds) == 0 || len(t.Sound.DeathSounds) == 0 {
		errs = append(errs, errors.New("sound needs at least one scared and one death clip"))
	}
	return errors.Join(errs...)
}
