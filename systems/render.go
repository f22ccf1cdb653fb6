package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/player"
	"github.com/automoto/nightlight/shared/spatial"
	"github.com/automoto/nightlight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const coneSegments = 12

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	coneVertices []ebiten.Vertex
	coneIndices  []uint16
)

func init() {
	whiteImage.Fill(color.White)
}

// DrawSpawners renders spawners as pulsing rings.
func DrawSpawners(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(ecs.World)
	if !ok {
		return
	}
	tags.Spawner.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Spawner.Get(e)
		x, y := v.point(spatial.Center(components.Object.Get(e).Object))
		r := v.length(0.4)
		// ring tightens as the next ghost gets close
		if s.Interval > 0 && s.Timer < 1 {
			r *= float32(0.6 + 0.4*math.Max(0, s.Timer))
		}
		vector.StrokeCircle(screen, x, y, r, 2, cfg.UI.SpawnerColor, true)
	})
}

// DrawGhosts renders ghosts as translucent blobs with eyes toward their heading.
func DrawGhosts(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(ecs.World)
	if !ok {
		return
	}
	tags.Ghost.Each(ecs.World, func(e *donburi.Entry) {
		g := components.Ghost.Get(e)
		obj := components.Object.Get(e).Object
		x, y := v.point(spatial.Center(obj))
		r := v.length(obj.W / 2)

		c := cfg.UI.GhostColor
		if g.Attacking {
			c.A = uint8(float64(c.A) * math.Max(0, g.AttackTimer/cfg.Ghost.AttackDuration))
		}
		vector.FillCircle(screen, x, y, r, c, true)
		eye := r / 3
		vector.FillCircle(screen, x-eye, y-eye/2, eye/2, cfg.UI.BackgroundColor, true)
		vector.FillCircle(screen, x+eye, y-eye/2, eye/2, cfg.UI.BackgroundColor, true)
	})
}

// DrawPlayer renders the flashlight cone and the player. The sprite is skipped
// while the invincibility flicker hides it.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(ecs.World)
	if !ok {
		return
	}
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	pd := components.Player.Get(entry)
	pos := spatial.Center(components.Object.Get(entry).Object)

	if pd.Machine != nil && pd.Mode != player.Dead {
		drawCone(screen, v, pos, pd.Machine.State().AimAngle, pd.ConeIntensity)
	}

	x, y := v.point(pos)
	spot := pd.SpotIntensity / cfg.Flashlight.MaxSpotIntensity
	glow := cfg.UI.ConeColor
	glow.A = uint8(math.Min(255, float64(glow.A)*(0.5+spot*2)))
	vector.FillCircle(screen, x, y, v.length(0.6+spot), glow, true)

	if !pd.Visible {
		return
	}
	c := cfg.UI.PlayerColor
	switch pd.Mode {
	case player.Scared:
		c = cfg.UI.GhostColor
	case player.Dead:
		c = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	}
	r := v.length(cfg.Movement.CollisionSize / 2)
	vector.FillCircle(screen, x, y, r, c, true)

	// facing notch
	dx, dy := facingOffset(pd.Facing)
	vector.FillCircle(screen, x+dx*r, y+dy*r, r/3, cfg.UI.BackgroundColor, true)
}

// drawCone fills a fan in front of the player, brighter with the cone intensity.
func drawCone(screen *ebiten.Image, v view, origin dmath.Vec2, aim, intensity float64) {
	front := aim + 180
	alpha := math.Min(1, intensity/cfg.Flashlight.MaxConeIntensity+0.15)

	var path vector.Path
	ox, oy := v.point(origin)
	path.MoveTo(ox, oy)
	for i := 0; i <= coneSegments; i++ {
		a := front - cfg.Flashlight.ConeSpread + 2*cfg.Flashlight.ConeSpread*float64(i)/coneSegments
		rad := a * math.Pi / 180
		p := dmath.Vec2{
			X: origin.X + math.Cos(rad)*cfg.Flashlight.ConeLength,
			Y: origin.Y + math.Sin(rad)*cfg.Flashlight.ConeLength,
		}
		x, y := v.point(p)
		path.LineTo(x, y)
	}
	path.Close()

	coneVertices, coneIndices = path.AppendVerticesAndIndicesForFilling(coneVertices[:0], coneIndices[:0])
	c := cfg.UI.ConeColor
	for i := range coneVertices {
		coneVertices[i].SrcX = 1
		coneVertices[i].SrcY = 1
		coneVertices[i].ColorR = float32(c.R) / 255
		coneVertices[i].ColorG = float32(c.G) / 255
		coneVertices[i].ColorB = float32(c.B) / 255
		coneVertices[i].ColorA = float32(c.A) / 255 * float32(alpha)
	}
	screen.DrawTriangles(coneVertices, coneIndices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

// facingOffset is the unit direction of a facing in draw coordinates.
func facingOffset(f player.Facing) (float32, float32) {
	switch f {
	case player.Up:
		return 0, -1
	case player.Down:
		return 0, 1
	case player.Right:
		return 1, 0
	}
	return -1, 0
}
