// Package physics is a minimal arcade physics world: axis-aligned bodies
// with velocity and per-body gravity, overlap colliders with callbacks,
// and a pause switch that freezes the whole simulation.
package physics

import "github.com/vovakirdan/tui-flappy/internal/core"

// Body is a rectangular physics body positioned by its origin point.
// OriginX/OriginY are fractions of the body size: (0, 0) places X/Y at the
// top-left corner, (0, 1) at the bottom-left corner.
type Body struct {
	X, Y             float64
	W, H             float64
	OriginX, OriginY float64
	VX, VY           float64
	GravityY         float64 // Downward acceleration in units/s²
	Immovable        bool    // Not pushed apart by colliders
}

// Bounds returns the body's box in world coordinates.
func (b *Body) Bounds() core.Bounds {
	left := b.X - b.OriginX*b.W
	top := b.Y - b.OriginY*b.H
	return core.BoundsOf(left, top, b.W, b.H)
}

// SetOrigin changes the origin fractions without moving the anchor point.
func (b *Body) SetOrigin(ox, oy float64) *Body {
	b.OriginX = ox
	b.OriginY = oy
	return b
}

// SetImmovable marks the body as immovable.
func (b *Body) SetImmovable(v bool) *Body {
	b.Immovable = v
	return b
}

// CollideFunc is called when a collider detects overlap between two bodies.
type CollideFunc func(a, b *Body)

type collider struct {
	body  *Body
	group *Group
	fn    CollideFunc
}

// World owns all bodies and advances them in fixed steps.
type World struct {
	bodies    []*Body
	colliders []collider
	paused    bool
}

// NewWorld creates an empty, running world.
func NewWorld() *World {
	return &World{}
}

// Add creates a body at (x, y) with origin (0, 0).
func (w *World) Add(x, y, width, height float64) *Body {
	b := &Body{X: x, Y: y, W: width, H: height}
	w.bodies = append(w.bodies, b)
	return b
}

// NewGroup creates an empty group whose bodies belong to this world.
func (w *World) NewGroup() *Group {
	return &Group{world: w}
}

// Collide registers an overlap check between a body and every body of a group.
func (w *World) Collide(b *Body, g *Group, fn CollideFunc) {
	w.colliders = append(w.colliders, collider{body: b, group: g, fn: fn})
}

// Pause freezes integration and collision checks.
func (w *World) Pause() {
	w.paused = true
}

// Resume continues the simulation after Pause.
func (w *World) Resume() {
	w.paused = false
}

// Paused reports whether the world is frozen.
func (w *World) Paused() bool {
	return w.paused
}

// Step advances the world by dt seconds: gravity is applied to velocity,
// velocity to position, then colliders run. A collider callback that
// pauses the world stops further collision checks for this step.
func (w *World) Step(dt float64) {
	if w.paused || dt <= 0 {
		return
	}

	for _, b := range w.bodies {
		b.VY += b.GravityY * dt
		b.X += b.VX * dt
		b.Y += b.VY * dt
	}

	for _, c := range w.colliders {
		bounds := c.body.Bounds()
		for _, other := range c.group.bodies {
			if !bounds.Intersects(other.Bounds()) {
				continue
			}
			c.fn(c.body, other)
			if w.paused {
				return
			}
		}
	}
}

// Group is an ordered set of bodies that can be addressed together.
type Group struct {
	world  *World
	bodies []*Body
}

// Create adds a new body to the world and to this group.
func (g *Group) Create(x, y, width, height float64) *Body {
	b := g.world.Add(x, y, width, height)
	g.bodies = append(g.bodies, b)
	return b
}

// SetVelocityX sets the horizontal velocity of every body in the group.
func (g *Group) SetVelocityX(vx float64) {
	for _, b := range g.bodies {
		b.VX = vx
	}
}
