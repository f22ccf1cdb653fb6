package gameplay

import (
	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/player"
	"github.com/automoto/nightlight/shared/gamemath"
	"github.com/automoto/nightlight/shared/spatial"
	"github.com/automoto/nightlight/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Ports connects a player machine to the entities of a world. Enemy handles
// are donburi entity ids.
type Ports struct {
	w      donburi.World
	player *donburi.Entry
}

// NewPorts binds the machine ports to the player entity p.
func NewPorts(w donburi.World, p *donburi.Entry) *Ports {
	return &Ports{w: w, player: p}
}

// Bundle returns the ports in the shape player.NewMachine expects.
func (p *Ports) Bundle() player.Ports {
	return player.Ports{
		Input:     p,
		Query:     p,
		Remover:   p,
		Enemies:   p,
		Presenter: p,
		Controls:  p,
		Body:      p,
	}
}

func (p *Ports) data() *components.PlayerData {
	return components.Player.Get(p.player)
}

func (p *Ports) input() *components.InputData {
	entry := sessionOf(p.w)
	if entry == nil {
		return &components.InputData{}
	}
	return components.Input.Get(entry)
}

func (p *Ports) PointerPosition() math.Vec2 {
	return p.input().Pointer
}

func (p *Ports) FlashTriggerPressed() bool {
	return p.data().FlashlightEnabled && p.input().JustPressed(cfg.ActionFlash)
}

func (p *Ports) QueryEnemiesInBox(center, size math.Vec2, rotationDegrees float64) []player.EnemyHandle {
	space := spaceOf(p.w)
	if space == nil {
		return nil
	}
	var out []player.EnemyHandle
	for _, obj := range space.QueryBox(center, size, rotationDegrees, spatial.TagGhost) {
		if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() {
			out = append(out, player.EnemyHandle(entry.Entity()))
		}
	}
	return out
}

func (p *Ports) entry(h player.EnemyHandle) (*donburi.Entry, bool) {
	e := donburi.Entity(h)
	if !p.w.Valid(e) {
		return nil, false
	}
	entry := p.w.Entry(e)
	if !entry.HasComponent(components.Ghost) {
		return nil, false
	}
	return entry, true
}

// Destroy burns a ghost away and leaves a banish puff behind.
func (p *Ports) Destroy(h player.EnemyHandle) {
	entry, ok := p.entry(h)
	if !ok {
		return
	}
	obj := components.Object.Get(entry)
	factory.SpawnBanish(p.w, spatial.Center(obj.Object))
	if space := spaceOf(p.w); space != nil {
		space.Remove(obj.Object)
	}
	p.w.Remove(entry.Entity())
}

// Attack starts the ghost's lunge at the player.
func (p *Ports) Attack(h player.EnemyHandle) {
	entry, ok := p.entry(h)
	if !ok {
		return
	}
	ghost := components.Ghost.Get(entry)
	from := spatial.Center(components.Object.Get(entry).Object)
	to := p.Position()
	dx, dy := gamemath.CalculateSeekVelocity(from.X, from.Y, to.X, to.Y, 1)
	ghost.Attacking = true
	ghost.AttackTimer = cfg.Ghost.AttackDuration
	ghost.Lunge = math.Vec2{X: dx, Y: dy}
}

func (p *Ports) SetLightIntensity(cone, spot float64) {
	d := p.data()
	d.ConeIntensity, d.SpotIntensity = cone, spot
}

func (p *Ports) SetSpriteVisible(visible bool) {
	p.data().Visible = visible
}

func (p *Ports) SetCameraPose(position math.Vec2, orthographicSize float64) {
	if cam := cameraOf(p.w); cam != nil {
		cam.Position = position
		cam.Size = orthographicSize
	}
}

func (p *Ports) SetFacingAnimation(f player.Facing) {
	p.data().Facing = f
}

func (p *Ports) SetModeAnimation(m player.Mode) {
	p.data().Mode = m
	if m == player.Scared {
		TriggerScreenShake(p.w, cfg.UI.ShakeIntensity, cfg.UI.ShakeFrames)
	}
}

func (p *Ports) PlaySound(clip string) {
	QueueSound(p.w, clip)
}

func (p *Ports) SetMovementEnabled(enabled bool) {
	p.data().MovementEnabled = enabled
}

func (p *Ports) SetFlashlightEnabled(enabled bool) {
	p.data().FlashlightEnabled = enabled
}

func (p *Ports) Position() math.Vec2 {
	return spatial.Center(components.Object.Get(p.player).Object)
}

func (p *Ports) SetPosition(pos math.Vec2) {
	obj := components.Object.Get(p.player).Object
	if space := spaceOf(p.w); space != nil {
		space.MoveTo(obj, pos)
	}
}

func (p *Ports) ScreenPosition() math.Vec2 {
	cam := cameraOf(p.w)
	if cam == nil {
		return p.Position()
	}
	return WorldToScreen(cam, p.Position())
}
