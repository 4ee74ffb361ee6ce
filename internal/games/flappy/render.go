package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '●'
	PlayerBeak    = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
)

// Render draws the playfield scaled to the screen, then the HUD and any
// overlay for the current phase.
func (g *Game) Render(dst *core.Screen) {
	if g.player == nil {
		return
	}

	vp := core.NewViewport(
		float64(g.cfg.Playfield.Width), float64(g.cfg.Playfield.Height),
		dst.Width(), dst.Height(),
	)

	for _, pair := range g.pool.Pairs() {
		g.drawSegment(dst, vp, pair.Upper)
		g.drawSegment(dst, vp, pair.Lower)
	}
	g.drawPlayer(dst, vp)

	dst.DrawTextColored(1, 0, g.score.Text(), core.ColorBrightWhite)
	dst.DrawTextColored(1, 1, g.score.BestText(), core.ColorGray)

	switch g.phase {
	case PhasePaused:
		g.drawPauseOverlay(dst)
	case PhaseCountdown:
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Resume flying in %d", g.countdown), core.ColorBrightYellow)
	}
}

func (g *Game) drawSegment(dst *core.Screen, vp core.Viewport, s *Segment) {
	r := vp.Project(s.Body.Bounds())
	if r.Right() <= 0 || r.X >= dst.Width() {
		return
	}
	dst.DrawRect(r, PipeChar, core.ColorGreen)

	// Cap on the edge facing the gap
	capY, capChar := r.Y, PipeCapBottom
	if s.Role == RoleUpper {
		capY, capChar = r.Bottom()-1, PipeCapTop
	}
	for x := r.X; x < r.Right(); x++ {
		dst.SetColored(x, capY, capChar, core.ColorBrightGreen)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, vp core.Viewport) {
	color := core.ColorYellow
	if g.player.Hit() {
		color = core.ColorMagenta
	}

	r := vp.Project(g.player.Body().Bounds())
	dst.DrawRect(r, PlayerChar, color)
	dst.SetColored(r.Right()-1, r.Y, PlayerBeak, color)
}

// drawPauseOverlay draws a message box in the center of the screen.
func (g *Game) drawPauseOverlay(dst *core.Screen) {
	title := "PAUSED"
	subtitle := "Press P to resume"

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorWhite)
}
