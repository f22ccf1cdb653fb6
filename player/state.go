package player

import "fmt"

// Mode is the exclusive part of the player state.
type Mode int

const (
	Normal Mode = iota
	Flashing
	Scared
	Dead
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "Normal"
	case Flashing:
		return "Flashing"
	case Scared:
		return "Scared"
	case Dead:
		return "Dead"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Facing is the animation direction derived from the aim angle.
type Facing int

const (
	Left Facing = iota
	Down
	Right
	Up
)

func (f Facing) String() string {
	switch f {
	case Left:
		return "Left"
	case Down:
		return "Down"
	case Right:
		return "Right"
	case Up:
		return "Up"
	}
	return fmt.Sprintf("Facing(%d)", int(f))
}

// EnemyHandle identifies an enemy for the spatial query and removal ports.
type EnemyHandle uint64

// State is a snapshot of the player.
type State struct {
	Mode       Mode
	Invincible bool
	Lives      int
	Facing     Facing
	AimAngle   float64 // degrees in [0, 360)
	Kills      int

	ConeIntensity float64
	SpotIntensity float64
}

// IsFlashing reports whether a flash cycle is running.
func (s State) IsFlashing() bool { return s.Mode == Flashing }
