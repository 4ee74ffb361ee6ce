package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// Role tells the two segments of a pair apart.
type Role int

const (
	RoleUpper Role = iota // Hangs from the top, its bottom edge is the gap top
	RoleLower             // Stands on the bottom, its top edge is the gap bottom
)

// String returns the role name.
func (r Role) String() string {
	if r == RoleUpper {
		return "upper"
	}
	return "lower"
}

// Segment is one pipe.
type Segment struct {
	Role Role
	Body *physics.Body
	pair int
}

// Pair is an upper and a lower segment sharing an x position.
type Pair struct {
	Upper *Segment
	Lower *Segment
}

// Placement describes where PlacePair put a pair.
type Placement struct {
	X      float64 // Left edge of both segments
	Offset int     // Distance from the previous rightmost segment
	Top    int     // Top of the gap
	Gap    int     // Gap height
}

// Pool owns a fixed number of obstacle pairs. Pairs are created once by
// Initialize and afterwards only repositioned.
type Pool struct {
	group    *physics.Group
	segments []*Segment // Creation order: upper, lower, upper, lower, ...
	pairs    []Pair
	cfg      config.ObstacleConfig
	height   float64
	rng      *rand.Rand
}

// NewPool creates an empty pool whose segments live in world.
func NewPool(world *physics.World, cfg config.ObstacleConfig, height float64, rng *rand.Rand) *Pool {
	return &Pool{
		group:  world.NewGroup(),
		cfg:    cfg,
		height: height,
		rng:    rng,
	}
}

// Group returns the physics group holding every segment.
func (p *Pool) Group() *physics.Group {
	return p.group
}

// Pairs returns the pairs in creation order.
func (p *Pool) Pairs() []Pair {
	return p.pairs
}

// Segments returns all segments in creation order.
func (p *Pool) Segments() []*Segment {
	return p.segments
}

// Initialize fills the pool with count pairs and places each of them one
// after another. Calling it again moves the existing pairs back to the
// placeholder position and lays them out afresh; count is then ignored.
func (p *Pool) Initialize(count int, tier config.TierConfig) {
	if len(p.pairs) == 0 {
		for i := 0; i < count; i++ {
			upper := p.group.Create(0, 0, p.cfg.Width, p.cfg.Length)
			upper.SetOrigin(0, 1).SetImmovable(true)
			lower := p.group.Create(0, 0, p.cfg.Width, p.cfg.Length)
			lower.SetImmovable(true)

			pair := Pair{
				Upper: &Segment{Role: RoleUpper, Body: upper, pair: i},
				Lower: &Segment{Role: RoleLower, Body: lower, pair: i},
			}
			p.pairs = append(p.pairs, pair)
			p.segments = append(p.segments, pair.Upper, pair.Lower)
		}
	} else {
		for _, s := range p.segments {
			s.Body.X = 0
			s.Body.Y = 0
		}
	}

	for _, pair := range p.pairs {
		p.PlacePair(pair, tier)
	}
	p.group.SetVelocityX(-p.cfg.Speed)
}

// RightmostX returns the largest x over all segments, or 0 for an empty pool.
func (p *Pool) RightmostX() float64 {
	if len(p.segments) == 0 {
		return 0
	}
	x := p.segments[0].Body.X
	for _, s := range p.segments[1:] {
		if s.Body.X > x {
			x = s.Body.X
		}
	}
	return x
}

// PlacePair moves a pair ahead of the current rightmost segment using the
// tier's gap and spacing ranges. The gap never exceeds the playfield height
// minus both margins; config.Validate keeps loaded tiers within that bound.
func (p *Pool) PlacePair(pair Pair, tier config.TierConfig) Placement {
	margin := int(p.cfg.Margin)
	limit := int(p.height) - 2*margin

	gapMin, gapMax := tier.VerticalGap.Min, tier.VerticalGap.Max
	if gapMax > limit {
		gapMax = limit
	}
	if gapMin > gapMax {
		gapMin = gapMax
	}
	gap := p.between(gapMin, gapMax)
	top := p.between(margin, int(p.height)-margin-gap)
	offset := p.between(tier.HorizontalSpacing.Min, tier.HorizontalSpacing.Max)
	x := p.RightmostX() + float64(offset)

	pair.Upper.Body.X = x
	pair.Upper.Body.Y = float64(top)
	pair.Lower.Body.X = x
	pair.Lower.Body.Y = float64(top + gap)

	pair.Upper.Body.VX = -p.cfg.Speed
	pair.Lower.Body.VX = -p.cfg.Speed

	return Placement{X: x, Offset: offset, Top: top, Gap: gap}
}

// RecycleExited re-places the first pair found fully past the left edge of
// the playfield and returns the number of pairs recycled (0 or 1).
//
// Pairs move in lockstep and leave in creation order, so the first two
// exited segments in scan order are the two halves of the same pair.
func (p *Pool) RecycleExited(tier config.TierConfig) int {
	var exited []*Segment
	for _, s := range p.segments {
		if s.Body.Bounds().Right > 0 {
			continue
		}
		exited = append(exited, s)
		if len(exited) == 2 {
			p.PlacePair(p.pairs[exited[0].pair], tier)
			return 1
		}
	}
	return 0
}

// between returns a uniform integer in [lo, hi].
func (p *Pool) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + p.rng.Intn(hi-lo+1)
}
