package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// newTestGame returns a reset game on the built-in defaults.
func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultFlappyConfig())
	g.Reset(testRuntime(seed))
	return g
}

func jump() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestGameDeterminism(t *testing.T) {
	// Jump every 15 ticks to try to stay airborne
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%15 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() (*Game, []float64) {
		g := newTestGame(12345)
		var gaps []float64
		spawned := 0
		for _, in := range inputs {
			if g.Step(in).State.GameOver() {
				break
			}
			if g.PairsSpawned() > spawned {
				spawned = g.PairsSpawned()
				newest, _ := g.queue.pairs.Back()
				gaps = append(gaps, newest.GapCenter(), newest.GapSize())
			}
		}
		return g, gaps
	}

	g1, gaps1 := run()
	g2, gaps2 := run()

	if g1.State() != g2.State() {
		t.Errorf("states differ: %+v vs %+v", g1.State(), g2.State())
	}
	if g1.tickCount != g2.tickCount {
		t.Errorf("tick counts differ: %d vs %d", g1.tickCount, g2.tickCount)
	}
	if len(gaps1) == 0 || len(gaps1) != len(gaps2) {
		t.Fatalf("spawn histories differ in length: %d vs %d", len(gaps1), len(gaps2))
	}
	for i := range gaps1 {
		if gaps1[i] != gaps2[i] {
			t.Fatalf("spawn history differs at %d: %g vs %g", i, gaps1[i], gaps2[i])
		}
	}
}

func TestGameReadyWaitsForJump(t *testing.T) {
	g := newTestGame(1)

	res := g.Step(core.NewInputFrame())
	if res.State.Phase != core.PhaseReady {
		t.Fatalf("phase = %v, expected Ready", res.State.Phase)
	}
	if g.tickCount != 0 || g.PairsSpawned() != 0 {
		t.Fatalf("idle ready step ran the world: ticks=%d pairs=%d", g.tickCount, g.PairsSpawned())
	}

	res = g.Step(jump())
	if res.State.Phase != core.PhasePlaying {
		t.Fatalf("phase = %v, expected Playing", res.State.Phase)
	}
	if !hasEvent(res.Events, core.EventStarted) {
		t.Error("expected EventStarted")
	}
	if g.tickCount != 1 || g.PairsSpawned() != 1 {
		t.Errorf("first tick: ticks=%d pairs=%d, expected 1 and 1", g.tickCount, g.PairsSpawned())
	}
}

func TestGameScoreFollowsPairCount(t *testing.T) {
	g := newTestGame(2)

	res := g.Step(jump())
	if res.State.Score != 1 || !hasEvent(res.Events, core.EventScored) {
		t.Fatalf("first pair should score: score=%d events=%v", res.State.Score, res.Events)
	}

	// Keep the bird in the air until well before the pipe arrives
	for i := 0; i < 30; i++ {
		in := core.NewInputFrame()
		if i%12 == 11 {
			in.Set(core.ActionJump)
		}
		res = g.Step(in)
		if hasEvent(res.Events, core.EventScored) {
			t.Fatalf("tick %d: scored without a new pair", i)
		}
	}
	if res.State.Score != g.PairsSpawned() {
		t.Errorf("score %d, pairs spawned %d", res.State.Score, g.PairsSpawned())
	}
}

func TestScoreTrackerEdgeTriggered(t *testing.T) {
	var s ScoreTracker

	steps := []struct {
		count   int
		changed bool
		score   int
	}{
		{0, false, 0},
		{1, true, 1},
		{1, false, 1},
		{1, false, 1},
		{2, true, 2},
		{4, true, 3},
		{4, false, 3},
	}

	for i, st := range steps {
		if got := s.Observe(st.count); got != st.changed {
			t.Errorf("step %d: Observe(%d) = %v, expected %v", i, st.count, got, st.changed)
		}
		if s.Score() != st.score {
			t.Errorf("step %d: Score() = %d, expected %d", i, s.Score(), st.score)
		}
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(42)

	for i := 0; i < 50; i++ {
		in := core.NewInputFrame()
		if i%10 == 0 {
			in.Set(core.ActionJump)
		}
		g.Step(in)
	}
	if g.tickCount == 0 {
		t.Fatal("game did not run")
	}

	g.Reset(testRuntime(42))

	if g.tickCount != 0 {
		t.Errorf("tickCount = %d after reset, expected 0", g.tickCount)
	}
	if st := g.State(); st.Score != 0 || st.Phase != core.PhaseReady {
		t.Errorf("state after reset = %+v", st)
	}
	if g.PairsSpawned() != 0 || g.queue.Len() != 0 {
		t.Errorf("queue not cleared: pairs=%d len=%d", g.PairsSpawned(), g.queue.Len())
	}
	if g.player.y != (520-24)/2.0 {
		t.Errorf("player y = %g after reset", g.player.y)
	}
}

func TestGameJumpPhysics(t *testing.T) {
	g := newTestGame(1)
	startY := g.player.y

	g.Step(jump())

	// Flap sets -8, then gravity adds 0.5 before moving
	if g.player.vel != -7.5 {
		t.Errorf("velocity after jump = %g, expected -7.5", g.player.vel)
	}
	if g.player.y != startY-7.5 {
		t.Errorf("y after jump = %g, expected %g", g.player.y, startY-7.5)
	}
}

func TestGameGravity(t *testing.T) {
	g := newTestGame(1)
	g.Step(jump())

	prevVel := g.player.vel
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
		if g.player.vel < prevVel {
			t.Fatalf("tick %d: velocity decreased from %g to %g", i, prevVel, g.player.vel)
		}
		if g.player.vel > 10 {
			t.Fatalf("tick %d: velocity %g above the fall cap", i, g.player.vel)
		}
		prevVel = g.player.vel
		if g.phase == core.PhaseGameOver {
			break
		}
	}
	if prevVel != 10 {
		t.Errorf("velocity = %g, expected the 10 unit fall cap", prevVel)
	}
}

func TestGameCeilingClamps(t *testing.T) {
	g := newTestGame(1)
	g.Step(jump())

	g.player.y = 1
	res := g.Step(jump())

	if g.player.y != 0 || g.player.vel != 0 {
		t.Errorf("player at y=%g vel=%g, expected clamped to 0 and 0", g.player.y, g.player.vel)
	}
	if res.State.GameOver() {
		t.Error("hitting the ceiling should not end the run")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(1)
	g.Step(jump())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	res := g.Step(pause)
	if !res.State.Paused() {
		t.Fatal("expected paused after pause input")
	}
	ticks := g.tickCount
	y := g.player.y

	for i := 0; i < 10; i++ {
		g.Step(jump())
	}
	if g.tickCount != ticks || g.player.y != y {
		t.Errorf("world moved while paused: ticks %d->%d y %g->%g", ticks, g.tickCount, y, g.player.y)
	}

	res = g.Step(pause)
	if res.State.Phase != core.PhasePlaying {
		t.Errorf("phase = %v after unpause, expected Playing", res.State.Phase)
	}
	if g.tickCount != ticks+1 {
		t.Errorf("tickCount = %d, expected %d", g.tickCount, ticks+1)
	}
}

func TestGameOverOnGround(t *testing.T) {
	g := newTestGame(1)
	g.Step(jump())

	crashed := false
	for i := 0; i < 200 && !crashed; i++ {
		res := g.Step(core.NewInputFrame())
		crashed = hasEvent(res.Events, core.EventCrashed)
	}

	if !crashed || !g.State().GameOver() {
		t.Fatal("falling bird never crashed")
	}
	if g.player.Bounds().Bottom() < 520 {
		t.Errorf("crashed with bottom at %g, expected at the ground", g.player.Bounds().Bottom())
	}

	// No further updates once the run is over
	ticks := g.tickCount
	res := g.Step(jump())
	if g.tickCount != ticks || len(res.Events) != 0 {
		t.Error("game over should ignore input")
	}
}

func TestGameObstacleCollision(t *testing.T) {
	g := newTestGame(1)
	g.phase = core.PhasePlaying

	geom := &g.geom
	assets := g.assets
	py := g.player.y

	// Bottom obstacle's mouth cuts through the middle of the bird
	g.queue.pairs.PushBack(&ObstaclePair{
		top:    NewObstacle(g.player.x, 0, OpeningDown, geom, assets.PipeSprite(OpeningDown)),
		bottom: NewObstacle(g.player.x, py+12, OpeningUp, geom, assets.PipeSprite(OpeningUp)),
	})

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver() || !hasEvent(res.Events, core.EventCrashed) {
		t.Errorf("expected crash into obstacle, got %+v", res)
	}
}

func TestGameThroughGap(t *testing.T) {
	g := newTestGame(1)
	g.phase = core.PhasePlaying

	py := g.player.y
	g.queue.pairs.PushBack(&ObstaclePair{
		top:     NewObstacle(g.player.x, py-100, OpeningDown, &g.geom, nil),
		bottom:  NewObstacle(g.player.x, py+100, OpeningUp, &g.geom, nil),
		gapSize: 200,
	})

	res := g.Step(core.NewInputFrame())
	if res.State.GameOver() {
		t.Error("bird inside the gap should not crash")
	}
}

func TestStreamVariant(t *testing.T) {
	g := NewStream()
	cfg := config.DefaultFlappyConfig()
	g.preset = &cfg
	g.Reset(testRuntime(1))

	if g.ID() != "flappy_stream" {
		t.Errorf("ID() = %q", g.ID())
	}
	if _, ok := g.queue.policy.(SpawnByDistance); !ok {
		t.Errorf("stream variant uses %T, expected SpawnByDistance", g.queue.policy)
	}

	classic := newTestGame(1)
	if _, ok := classic.queue.policy.(SpawnWhenEmpty); !ok {
		t.Errorf("classic game uses %T, expected SpawnWhenEmpty", classic.queue.policy)
	}
}

func TestGroundScroll(t *testing.T) {
	geom := testGeometry()
	gr := NewGround(geom, 24)

	for i := 0; i < 6; i++ {
		gr.Advance()
	}
	if gr.Offset() != 0 {
		t.Errorf("offset after one full tile = %g, expected 0", gr.Offset())
	}
	gr.Advance()
	if gr.Offset() != 4 {
		t.Errorf("offset = %g, expected 4", gr.Offset())
	}
	if b := gr.Bounds(); b.Y != 520 || b.H != 80 || b.W != 400 {
		t.Errorf("ground bounds = %+v", b)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.String(), "Press Space to start") {
		t.Error("ready screen should show the start prompt")
	}

	// 520 world units at 24/600 rows per unit lands on row 20
	for x := 0; x < screen.Width(); x++ {
		if r := screen.Get(x, 20); r != '═' && r != '╪' {
			t.Fatalf("ground row cell %d = %q", x, r)
		}
	}
	if screen.Get(0, 23) != groundFill {
		t.Errorf("bottom row = %q, expected ground fill", screen.Get(0, 23))
	}

	// Bird at x 60..94, y 248..272 maps to columns 12..18, rows 9..10
	if screen.Get(12, 10) != '●' {
		t.Errorf("bird cell = %q", screen.Get(12, 10))
	}
}

func TestGameRenderBeforeReset(t *testing.T) {
	g := New()
	screen := core.NewScreen(40, 10)
	g.Render(screen)

	if strings.TrimSpace(screen.String()) != "" {
		t.Error("unreset game should render nothing")
	}
}
