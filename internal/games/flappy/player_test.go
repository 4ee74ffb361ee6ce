package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/physics"
)

func newTestPlayer() (*Player, *physics.World) {
	w := physics.NewWorld()
	return NewPlayer(w, config.DefaultFlappyConfig().Player, 80, 300), w
}

func TestPlayerFlap(t *testing.T) {
	p, _ := newTestPlayer()

	if !p.Flap(false) {
		t.Fatal("Flap(false) should apply the impulse")
	}
	if p.Body().VY != -300 {
		t.Errorf("VY = %v, expected -300", p.Body().VY)
	}

	p.Body().VY = 42
	if p.Flap(true) {
		t.Error("Flap(true) should be ignored")
	}
	if p.Body().VY != 42 {
		t.Errorf("paused flap changed VY to %v", p.Body().VY)
	}
}

func TestPlayerGravity(t *testing.T) {
	p, w := newTestPlayer()

	w.Step(0.5)

	if p.Body().VY != 200 {
		t.Errorf("VY after 0.5s = %v, expected 200", p.Body().VY)
	}
	if p.Body().Y != 400 {
		t.Errorf("Y after 0.5s = %v, expected 400", p.Body().Y)
	}
}

func TestPlayerCheckBounds(t *testing.T) {
	tests := []struct {
		name      string
		y         float64
		violation bool
		wantY     float64
	}{
		{"inside", 300, false, 300},
		{"touching bottom", 576, true, 576},
		{"below bottom", 590, true, 576},
		{"touching top", 0, true, 0},
		{"above top", -12, true, 0},
		{"just inside top", 0.5, false, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, _ := newTestPlayer()
			p.Body().Y = tc.y

			if got := p.CheckBounds(600); got != tc.violation {
				t.Errorf("CheckBounds() = %v, expected %v", got, tc.violation)
			}
			if p.Body().Y != tc.wantY {
				t.Errorf("Y = %v, expected %v", p.Body().Y, tc.wantY)
			}
		})
	}
}

func TestPlayerRespawn(t *testing.T) {
	p, _ := newTestPlayer()
	p.Body().Y = 10
	p.Body().VY = 123
	p.MarkHit()

	p.Respawn()

	if p.Body().X != 80 || p.Body().Y != 300 || p.Body().VY != 0 {
		t.Errorf("Respawn() left body at (%v, %v) vy %v", p.Body().X, p.Body().Y, p.Body().VY)
	}
	if p.Hit() {
		t.Error("Respawn() should clear the hit marker")
	}
}
