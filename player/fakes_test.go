package player

import (
	"math/rand"

	"github.com/yohamta/donburi/features/math"
)

type fakeWorld struct {
	pointer math.Vec2
	press   bool

	pos    math.Vec2
	screen math.Vec2
	walled bool // the body cannot move

	inBox     []EnemyHandle
	queries   []Box
	destroyed []EnemyHandle
	attacked  []EnemyHandle

	cone, spot float64
	visible    bool
	hidden     int
	camPos     math.Vec2
	camSize    float64
	facings    []Facing
	modes      []Mode
	sounds     []string

	movement, flashlight bool
}

func (w *fakeWorld) PointerPosition() math.Vec2 { return w.pointer }

func (w *fakeWorld) FlashTriggerPressed() bool {
	p := w.press
	w.press = false
	return p
}

func (w *fakeWorld) QueryEnemiesInBox(center, size math.Vec2, rotation float64) []EnemyHandle {
	w.queries = append(w.queries, Box{Center: center, Size: size, Rotation: rotation})
	return w.inBox
}

func (w *fakeWorld) Destroy(e EnemyHandle) { w.destroyed = append(w.destroyed, e) }
func (w *fakeWorld) Attack(e EnemyHandle)  { w.attacked = append(w.attacked, e) }

func (w *fakeWorld) SetLightIntensity(cone, spot float64) { w.cone, w.spot = cone, spot }

func (w *fakeWorld) SetSpriteVisible(v bool) {
	if !v {
		w.hidden++
	}
	w.visible = v
}

func (w *fakeWorld) SetCameraPose(p math.Vec2, size float64) { w.camPos, w.camSize = p, size }
func (w *fakeWorld) SetFacingAnimation(f Facing)            { w.facings = append(w.facings, f) }
func (w *fakeWorld) SetModeAnimation(m Mode)                { w.modes = append(w.modes, m) }
func (w *fakeWorld) PlaySound(clip string)                  { w.sounds = append(w.sounds, clip) }

func (w *fakeWorld) SetMovementEnabled(v bool)   { w.movement = v }
func (w *fakeWorld) SetFlashlightEnabled(v bool) { w.flashlight = v }

func (w *fakeWorld) Position() math.Vec2 { return w.pos }
func (w *fakeWorld) SetPosition(p math.Vec2) {
	if !w.walled {
		w.pos = p
	}
}

func (w *fakeWorld) ScreenPosition() math.Vec2 { return w.screen }

func (w *fakeWorld) ports() Ports {
	return Ports{Input: w, Query: w, Remover: w, Enemies: w, Presenter: w, Controls: w, Body: w}
}

// pointing right of the player gives an aim angle of 180
func newFakeWorld() *fakeWorld {
	return &fakeWorld{
		screen:  math.Vec2{X: 100, Y: 100},
		pointer: math.Vec2{X: 200, Y: 100},
	}
}

const step = 1.0 / 64

func testConfig() Config {
	return Config{
		Lives:              3,
		ChargeTime:         0.5,
		DecayDelay:         0.3,
		DecayRate:          5,
		ConeIntensity:      20,
		SpotIntensity:      1,
		MaxConeIntensity:   80,
		MaxSpotIntensity:   4,
		ChargeGlow:         0.25,
		ConeThreshold:      10,
		SpotThreshold:      0.2,
		KnockbackForce:     2,
		KnockbackSpeed:     5,
		KnockbackThreshold: 1,

		BoxWidth:  5.3,
		BoxHeight: 1.7,
		BoxOffset: 3,

		ScaredTime:             2,
		InvincibleTime:         1,
		FlashingInvincibleRate: 0.125,

		MinCameraZoom:   5,
		MaxCameraZoom:   2.5,
		CameraZoomSpeed: 2,
		CameraHome:      math.Vec2{X: 16, Y: 9},

		ChargeSound:  "charge",
		FlashSound:   "flash",
		BanishSound:  "banish",
		ScaredSounds: []string{"gasp", "shriek"},
		DeathSounds:  []string{"wail"},

		ConvergenceCap: 10,
	}
}

func newTestMachine(cfg Config) (*Machine, *fakeWorld) {
	w := newFakeWorld()
	return NewMachine(cfg, w.ports(), rand.New(rand.NewSource(1))), w
}

func run(m *Machine, ticks int) {
	for i := 0; i < ticks; i++ {
		m.Tick(step)
	}
}
