package spatial

import (
	"testing"

	"github.com/yohamta/donburi/features/math"
)

func handles(t *testing.T, w *World, center, size math.Vec2, rot float64) map[int]bool {
	t.Helper()
	out := map[int]bool{}
	for _, obj := range w.QueryBox(center, size, rot, TagGhost) {
		out[obj.Data.(int)] = true
	}
	return out
}

func TestQueryBoxRespectsRotation(t *testing.T) {
	w := NewWorld(32, 18)
	player := math.Vec2{X: 10, Y: 9}
	w.AddBox(math.Vec2{X: 13, Y: 9}, 0.5, 1, TagGhost)  // right of the player
	w.AddBox(math.Vec2{X: 10, Y: 12}, 0.5, 2, TagGhost) // above the player
	w.AddBox(math.Vec2{X: 20, Y: 15}, 0.5, 3, TagGhost) // far away
	w.AddBox(math.Vec2{X: 12, Y: 9}, 0.5, 4, TagSpawner)

	size := math.Vec2{X: 5.3, Y: 1.7}

	got := handles(t, w, math.Vec2{X: player.X + 3, Y: player.Y}, size, 0)
	if !got[1] || got[2] || got[3] || len(got) != 1 {
		t.Errorf("expected only ghost 1 in a horizontal box, got %v", got)
	}

	got = handles(t, w, math.Vec2{X: player.X, Y: player.Y + 3}, size, 90)
	if !got[2] || got[1] || len(got) != 1 {
		t.Errorf("expected only ghost 2 in a vertical box, got %v", got)
	}

	got = handles(t, w, math.Vec2{X: player.X, Y: player.Y + 3}, size, 0)
	if got[1] {
		t.Errorf("expected unrotated box above the player to miss ghost 1, got %v", got)
	}
}

func TestQueryBoxEmpty(t *testing.T) {
	w := NewWorld(16, 16)
	if got := w.QueryBox(math.Vec2{X: 8, Y: 8}, math.Vec2{X: 2, Y: 2}, 45, TagGhost); len(got) != 0 {
		t.Errorf("expected no results, got %d", len(got))
	}
	if n := len(w.Space().Objects()); n != 0 {
		t.Errorf("expected probe to be removed, got %d objects", n)
	}
}

func TestTouching(t *testing.T) {
	w := NewWorld(16, 16)
	player := w.AddBox(math.Vec2{X: 4, Y: 4}, 0.8, "p", TagPlayer)
	near := w.AddBox(math.Vec2{X: 4.6, Y: 4}, 0.7, "near", TagGhost)
	w.AddBox(math.Vec2{X: 6, Y: 4}, 0.7, "far", TagGhost)

	got := w.Touching(player, TagGhost)
	if len(got) != 1 || got[0] != near {
		t.Fatalf("expected only the near ghost, got %d objects", len(got))
	}

	w.MoveTo(near, math.Vec2{X: 10, Y: 10})
	if got := w.Touching(player, TagGhost); len(got) != 0 {
		t.Errorf("expected no contact after moving away, got %d", len(got))
	}
}

func TestMoveToClampsToWorld(t *testing.T) {
	w := NewWorld(10, 10)
	obj := w.AddBox(math.Vec2{X: 5, Y: 5}, 1, nil, TagPlayer)
	got := w.MoveTo(obj, math.Vec2{X: -3, Y: 42})
	if got.X != 0.5 || got.Y != 9.5 {
		t.Errorf("expected (0.5, 9.5), got %v", got)
	}
	if c := Center(obj); c != got {
		t.Errorf("expected centre %v, got %v", got, c)
	}
}

func TestArrived(t *testing.T) {
	tests := []struct {
		name   string
		pos    math.Vec2
		target math.Vec2
		want   bool
	}{
		{"on target", math.Vec2{X: 1, Y: 1}, math.Vec2{X: 1, Y: 1}, true},
		{"inside range", math.Vec2{X: 1.9, Y: 0.2}, math.Vec2{X: 1, Y: 1}, true},
		{"outside on x", math.Vec2{X: 2.5, Y: 1}, math.Vec2{X: 1, Y: 1}, false},
		{"outside on y", math.Vec2{X: 1, Y: -0.5}, math.Vec2{X: 1, Y: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Arrived(tt.pos, tt.target, 1); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
