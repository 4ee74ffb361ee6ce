package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func renderGame(g *Game) *core.Screen {
	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(screen)
	return screen
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, nil)
	screen := renderGame(g)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("row 0 = %q, expected the score", screen.Row(0))
	}
	if !strings.Contains(screen.Row(1), "Best Score: 0") {
		t.Errorf("row 1 = %q, expected the best score", screen.Row(1))
	}
}

func TestRenderPlayer(t *testing.T) {
	g := newTestGame(t, nil)

	// 800x600 onto 80x24: the player at (80, 300) lands on cell (8, 12)
	cell := renderGame(g).GetCell(8, 12)
	if cell.Rune != PlayerChar || cell.Color != core.ColorYellow {
		t.Errorf("player cell = %q/%v", cell.Rune, cell.Color)
	}

	g.player.MarkHit()
	if c := renderGame(g).GetCell(8, 12); c.Color != core.ColorMagenta {
		t.Errorf("hit player color = %v, expected magenta", c.Color)
	}
}

func TestRenderPipes(t *testing.T) {
	g := newTestGame(t, nil)
	screen := renderGame(g)

	x := int(g.pool.Pairs()[0].Upper.Body.X/10) + 1
	found := false
	for y := 0; y < screen.Height(); y++ {
		if c := screen.GetCell(x, y).Color; c == core.ColorGreen || c == core.ColorBrightGreen {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("no pipe drawn in column %d", x)
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, nil)

	g.Step(input(core.ActionPause))
	if !strings.Contains(renderGame(g).String(), "PAUSED") {
		t.Error("paused game should draw the pause overlay")
	}

	g.Step(input(core.ActionPause))
	out := renderGame(g).String()
	if !strings.Contains(out, "Resume flying in 3") {
		t.Error("countdown text missing")
	}
	if strings.Contains(out, "PAUSED") {
		t.Error("pause overlay should close when the countdown starts")
	}
}
