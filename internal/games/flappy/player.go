package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// Player is the bird. Its motion is integrated by the physics world;
// Player only decides the velocity and watches the playfield edges.
type Player struct {
	body         *physics.Body
	spawnX       float64
	spawnY       float64
	gravity      float64
	flapVelocity float64
	hit          bool
}

// NewPlayer adds the player body to the world at the spawn point.
func NewPlayer(world *physics.World, cfg config.PlayerConfig, spawnX, spawnY float64) *Player {
	p := &Player{
		body:         world.Add(spawnX, spawnY, cfg.Width, cfg.Height),
		spawnX:       spawnX,
		spawnY:       spawnY,
		gravity:      cfg.Gravity,
		flapVelocity: cfg.FlapVelocity,
	}
	p.ApplyGravity()
	return p
}

// Body returns the underlying physics body.
func (p *Player) Body() *physics.Body {
	return p.body
}

// ApplyGravity hands the constant downward acceleration to the world,
// which adds it to the vertical velocity on every step.
func (p *Player) ApplyGravity() {
	p.body.GravityY = p.gravity
}

// Flap gives the player an upward impulse. It does nothing while the game
// is paused and reports whether the impulse was applied.
func (p *Player) Flap(paused bool) bool {
	if paused {
		return false
	}
	p.body.VY = -p.flapVelocity
	return true
}

// CheckBounds reports whether the player touched the top or the bottom of
// a playfield of the given height. On a violation the body is clamped to
// the edge it crossed.
func (p *Player) CheckBounds(height float64) bool {
	b := p.body.Bounds()
	switch {
	case b.Bottom >= height:
		p.body.Y = height - p.body.H + p.body.OriginY*p.body.H
		return true
	case b.Top <= 0:
		p.body.Y = p.body.OriginY * p.body.H
		return true
	}
	return false
}

// MarkHit tints the player for the game over screen.
func (p *Player) MarkHit() {
	p.hit = true
}

// Hit reports whether the player has been marked as hit.
func (p *Player) Hit() bool {
	return p.hit
}

// Respawn moves the player back to the spawn point at rest.
func (p *Player) Respawn() {
	p.body.X = p.spawnX
	p.body.Y = p.spawnY
	p.body.VX = 0
	p.body.VY = 0
	p.hit = false
	p.ApplyGravity()
}
