package player

import "github.com/yohamta/donburi/features/math"

// Screen coordinates passed through these ports grow upward on Y, matching
// world space. Hosts with a downward screen axis flip it before reporting.

// Input provides pointer and trigger state.
type Input interface {
	PointerPosition() math.Vec2
	// FlashTriggerPressed is edge triggered: true once per press.
	FlashTriggerPressed() bool
}

// SpatialQuery finds enemies overlapping an oriented box.
type SpatialQuery interface {
	QueryEnemiesInBox(center, size math.Vec2, rotationDegrees float64) []EnemyHandle
}

// Remover destroys enemies.
type Remover interface {
	Destroy(EnemyHandle)
}

// Enemies lets the machine trigger an enemy's reaction to touching the player.
type Enemies interface {
	Attack(EnemyHandle)
}

// Presenter receives write-only presentation updates.
type Presenter interface {
	SetLightIntensity(cone, spot float64)
	SetSpriteVisible(visible bool)
	SetCameraPose(position math.Vec2, orthographicSize float64)
	SetFacingAnimation(Facing)
	SetModeAnimation(Mode)
	PlaySound(clip string)
}

// Controls gates the sibling movement and flashlight controllers.
type Controls interface {
	SetMovementEnabled(bool)
	SetFlashlightEnabled(bool)
}

// Body is the player's transform.
type Body interface {
	Position() math.Vec2
	SetPosition(math.Vec2)
	ScreenPosition() math.Vec2
}

// Ports bundles the collaborators a Machine talks to.
type Ports struct {
	Input     Input
	Query     SpatialQuery
	Remover   Remover
	Enemies   Enemies
	Presenter Presenter
	Controls  Controls
	Body      Body
}
