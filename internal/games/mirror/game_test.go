package mirror

import (
	"reflect"
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/mirror-lane/internal/core"
	"github.com/vovakirdan/mirror-lane/internal/config"
)

func newGame(t *testing.T, mutate func(*config.MirrorConfig)) *Game {
	t.Helper()
	cfg := config.DefaultMirrorConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	return g
}

func idle() platformcore.InputFrame {
	return platformcore.NewInputFrame()
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.MirrorConfig)
	}{
		{"unknown sprite color", func(c *config.MirrorConfig) { c.Sprites.Catalog[0].Color = "plaid" }},
		{"unknown character color", func(c *config.MirrorConfig) { c.Background.Characters[0].Color = "plaid" }},
		{"empty catalog", func(c *config.MirrorConfig) { c.Sprites.Catalog = nil }},
		{"duplicate sprite", func(c *config.MirrorConfig) { c.Sprites.Catalog[1].ID = c.Sprites.Catalog[0].ID }},
		{"zero frame width", func(c *config.MirrorConfig) { c.Lane.FrameWidth = 0 }},
		{"inverted bounds", func(c *config.MirrorConfig) { c.Lane.LeftBound, c.Lane.RightBound = 20, -20 }},
		{"zero slots", func(c *config.MirrorConfig) { c.Sprites.Slots = 0 }},
		{"empty view", func(c *config.MirrorConfig) { c.View.Left = c.View.Right }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultMirrorConfig()
			tc.mutate(&cfg)
			if _, err := New(cfg, nil); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(t, nil)
	g2 := newGame(t, nil)

	for i := 0; i < 600; i++ {
		in := idle()
		switch {
		case i%45 == 0:
			in.Set(platformcore.ActionSelect)
		case i%70 == 0:
			in.Set(platformcore.ActionRight)
		case i == 300:
			in.SetClick(20, g1.cfg.View.LaneRow+1)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestSelectMirroredFrameScores(t *testing.T) {
	g := newGame(t, func(c *config.MirrorConfig) { c.Sprites.MatchProbability = 1 })

	if _, ok := g.engine.Lane().FrameAt(g.worldX(g.cursor)); !ok {
		t.Fatal("expected a frame under the initial cursor")
	}

	in := idle()
	in.Set(platformcore.ActionSelect)
	res := g.Step(in)

	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}
	if len(res.Cues) != 1 || res.Cues[0] != platformcore.CueCorrect {
		t.Errorf("Cues = %v, expected [CueCorrect]", res.Cues)
	}
	if g.Snapshot().Bursts != 1 {
		t.Errorf("Bursts = %d, expected 1", g.Snapshot().Bursts)
	}
}

func TestSelectUnmirroredFrameMisses(t *testing.T) {
	g := newGame(t, func(c *config.MirrorConfig) { c.Sprites.MatchProbability = 0 })

	in := idle()
	in.Set(platformcore.ActionSelect)
	res := g.Step(in)

	if res.State.Score != 0 {
		t.Errorf("Score = %d, expected 0", res.State.Score)
	}
	if len(res.Cues) != 1 || res.Cues[0] != platformcore.CueWrong {
		t.Errorf("Cues = %v, expected [CueWrong]", res.Cues)
	}
	if got := g.engine.Stats().Misses; got != 1 {
		t.Errorf("Misses = %d, expected 1", got)
	}
}

func TestClickHitTest(t *testing.T) {
	g := newGame(t, nil)
	laneRow := g.cfg.View.LaneRow

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside frame row", 40, laneRow + 1, true},
		{"frame bottom border", 40, laneRow + frameHeight - 1, true},
		{"hud row", 40, 0, false},
		{"below lane", 40, laneRow + frameHeight, false},
		{"off screen", 200, laneRow + 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := g.FrameAtCell(tc.x, tc.y)
			if ok != tc.expected {
				t.Errorf("FrameAtCell(%d, %d) hit = %v, expected %v", tc.x, tc.y, ok, tc.expected)
			}
		})
	}
}

func TestClickSelectsAndMovesCursor(t *testing.T) {
	g := newGame(t, func(c *config.MirrorConfig) { c.Sprites.MatchProbability = 1 })

	in := idle()
	in.SetClick(20, g.cfg.View.LaneRow+1)
	if _, ok := g.FrameAtCell(20, g.cfg.View.LaneRow+1); !ok {
		t.Fatal("expected a frame under the click")
	}
	res := g.Step(in)

	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}
	if g.Cursor() != 20 {
		t.Errorf("Cursor = %d, expected 20", g.Cursor())
	}
}

func TestClickOutsideLaneIgnored(t *testing.T) {
	g := newGame(t, nil)

	in := idle()
	in.SetClick(40, 0)
	g.Step(in)

	if got := g.engine.Stats().Selections; got != 0 {
		t.Errorf("Selections = %d, expected 0", got)
	}
}

func TestCursorMovesByFramePitch(t *testing.T) {
	g := newGame(t, nil)
	start := g.Cursor()
	step := g.cursorStep()

	// 80 columns over 20 world units, 2.2 units per frame pitch.
	if step != 9 {
		t.Errorf("cursorStep() = %d, expected 9", step)
	}

	in := idle()
	in.Set(platformcore.ActionRight)
	g.Step(in)
	if g.Cursor() != start+step {
		t.Errorf("Cursor = %d, expected %d", g.Cursor(), start+step)
	}

	in = idle()
	in.Set(platformcore.ActionLeft)
	for i := 0; i < 20; i++ {
		g.Step(in)
	}
	if g.Cursor() != 0 {
		t.Errorf("Cursor = %d, expected clamp at 0", g.Cursor())
	}
}

func TestPauseFreezesEngine(t *testing.T) {
	g := newGame(t, nil)

	pause := idle()
	pause.Set(platformcore.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}

	before := g.Snapshot().Engine
	for i := 0; i < 120; i++ {
		g.Step(idle())
	}
	if !reflect.DeepEqual(before, g.Snapshot().Engine) {
		t.Error("engine advanced while paused")
	}

	g.Step(pause)
	g.Step(idle())
	if g.Snapshot().Engine.Tick == before.Tick {
		t.Error("engine did not resume after unpause")
	}
}

func TestBurstExpires(t *testing.T) {
	g := newGame(t, nil)

	in := idle()
	in.Set(platformcore.ActionSelect)
	g.Step(in)
	if g.Snapshot().Bursts != 1 {
		t.Fatalf("Bursts = %d, expected 1", g.Snapshot().Bursts)
	}

	for i := 0; i < 30; i++ {
		g.Step(idle())
	}
	if g.Snapshot().Bursts != 1 {
		t.Errorf("burst expired early after half a second")
	}

	for i := 0; i < 40; i++ {
		g.Step(idle())
	}
	if g.Snapshot().Bursts != 0 {
		t.Errorf("Bursts = %d, expected 0 after effect duration", g.Snapshot().Bursts)
	}
}

func TestElapsedSeconds(t *testing.T) {
	g := newGame(t, nil)

	for i := 0; i < 130; i++ {
		g.Step(idle())
	}
	if got := g.State().Elapsed; got != 2 {
		t.Errorf("Elapsed = %d, expected 2", got)
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, nil)
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Seconds: 0") {
		t.Errorf("HUD row = %q, expected score and seconds", hud)
	}

	laneRow := g.cfg.View.LaneRow
	if !strings.ContainsRune(screen.Row(laneRow), '┌') {
		t.Errorf("lane row = %q, expected frame borders", screen.Row(laneRow))
	}
	if !strings.ContainsRune(screen.Row(laneRow+2), DividerChar) {
		t.Errorf("divider row = %q, expected divider", screen.Row(laneRow+2))
	}
	if screen.Get(g.Cursor(), laneRow+cursorRow) != CursorChar {
		t.Error("cursor not drawn under the lane")
	}

	// Top and bottom rows of a mirrored frame read the same.
	g2 := newGame(t, func(c *config.MirrorConfig) { c.Sprites.MatchProbability = 1 })
	g2.Render(screen)
	if screen.Row(laneRow+1) != screen.Row(laneRow+3) {
		t.Errorf("mirrored rows differ:\n%q\n%q", screen.Row(laneRow+1), screen.Row(laneRow+3))
	}
}

func TestRenderBackgroundToggle(t *testing.T) {
	g := newGame(t, nil)
	screen := platformcore.NewScreen(80, 24)
	rabbit := g.cfg.Background.Characters[1]

	g.Render(screen)
	if strings.Contains(screen.Row(rabbit.Row), rabbit.Art) {
		t.Error("background drawn before the first toggle")
	}

	for i := 0; i < 200; i++ {
		g.Step(idle())
	}
	if !g.engine.BackgroundVisible() {
		t.Fatal("expected background visible after 3 seconds")
	}
	g.Render(screen)
	if !strings.Contains(screen.Row(rabbit.Row), rabbit.Art) {
		t.Errorf("row %d = %q, expected %q", rabbit.Row, screen.Row(rabbit.Row), rabbit.Art)
	}
}

func TestRenderPaused(t *testing.T) {
	g := newGame(t, nil)
	in := idle()
	in.Set(platformcore.ActionPause)
	g.Step(in)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("expected pause message")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := newGame(t, nil)
	g.Resize(19, 4)

	before := g.Snapshot().Engine.Tick
	g.Step(idle())
	if g.Snapshot().Engine.Tick != before {
		t.Error("engine advanced on a too-small screen")
	}

	screen := platformcore.NewScreen(19, 4)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("screen = %q, expected size warning", screen.String())
	}

	g.Resize(80, 24)
	g.Step(idle())
	if g.Snapshot().Engine.Tick == before {
		t.Error("engine did not resume after resize")
	}
}
