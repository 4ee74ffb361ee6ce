package physics

import (
	"math"
	"testing"
)

func TestBodyBoundsOrigin(t *testing.T) {
	tests := []struct {
		name          string
		ox, oy        float64
		left, top     float64
		right, bottom float64
	}{
		{"top-left origin", 0, 0, 100, 200, 110, 220},
		{"bottom-left origin", 0, 1, 100, 180, 110, 200},
		{"center origin", 0.5, 0.5, 95, 190, 105, 210},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &Body{X: 100, Y: 200, W: 10, H: 20}
			b.SetOrigin(tc.ox, tc.oy)
			got := b.Bounds()
			if got.Left != tc.left || got.Top != tc.top || got.Right != tc.right || got.Bottom != tc.bottom {
				t.Errorf("Bounds() = %+v, expected [%v %v %v %v]", got, tc.left, tc.top, tc.right, tc.bottom)
			}
		})
	}
}

func TestWorldGravity(t *testing.T) {
	w := NewWorld()
	b := w.Add(0, 100, 10, 10)
	b.GravityY = 400

	w.Step(0.5)

	if b.VY != 200 {
		t.Errorf("VY after 0.5s = %v, expected 200", b.VY)
	}
	// Semi-implicit Euler: position uses the updated velocity
	if b.Y != 200 {
		t.Errorf("Y after 0.5s = %v, expected 200", b.Y)
	}
}

func TestWorldVelocity(t *testing.T) {
	w := NewWorld()
	g := w.NewGroup()
	a := g.Create(100, 0, 10, 10)
	b := g.Create(200, 0, 10, 10)
	g.SetVelocityX(-150)

	for i := 0; i < 60; i++ {
		w.Step(1.0 / 60.0)
	}

	if math.Abs(a.X+50) > 1e-9 || math.Abs(b.X-50) > 1e-9 {
		t.Errorf("after 1s at -150/s positions = (%v, %v), expected (-50, 50)", a.X, b.X)
	}
}

func TestWorldPauseFreezes(t *testing.T) {
	w := NewWorld()
	b := w.Add(0, 0, 10, 10)
	b.GravityY = 400
	b.VX = 10

	w.Pause()
	w.Step(1)
	if b.X != 0 || b.Y != 0 || b.VY != 0 {
		t.Errorf("paused world should not move bodies, got %+v", *b)
	}
	if !w.Paused() {
		t.Error("Paused() should be true")
	}

	w.Resume()
	w.Step(1)
	if b.X == 0 {
		t.Error("resumed world should move bodies")
	}
}

func TestWorldColliderCallback(t *testing.T) {
	w := NewWorld()
	player := w.Add(0, 0, 10, 10)
	pipes := w.NewGroup()
	far := pipes.Create(100, 0, 10, 10)
	near := pipes.Create(5, 5, 10, 10)

	var hits []*Body
	w.Collide(player, pipes, func(a, b *Body) {
		if a != player {
			t.Error("callback should receive the collider body first")
		}
		hits = append(hits, b)
	})

	w.Step(1.0 / 60.0)

	if len(hits) != 1 || hits[0] != near {
		t.Fatalf("expected one hit on the overlapping body, got %d", len(hits))
	}
	_ = far
}

func TestWorldColliderStopsWhenPaused(t *testing.T) {
	w := NewWorld()
	player := w.Add(0, 0, 10, 10)
	pipes := w.NewGroup()
	pipes.Create(0, 0, 10, 10)
	pipes.Create(2, 2, 10, 10)

	calls := 0
	w.Collide(player, pipes, func(a, b *Body) {
		calls++
		w.Pause()
	})

	w.Step(1.0 / 60.0)
	w.Step(1.0 / 60.0)

	if calls != 1 {
		t.Errorf("callback that pauses the world should fire once, fired %d times", calls)
	}
}
