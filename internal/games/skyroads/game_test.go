package skyroads

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-skyroads/internal/config"
	"github.com/vovakirdan/tui-skyroads/internal/core"
	"github.com/vovakirdan/tui-skyroads/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

// safeConfig builds an all-blue road without gaps, fuel drain or
// difficulty progression.
func safeConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Track.Weights = config.ColorWeights{Blue: 1}
	cfg.Track.EmptyChance = 0
	cfg.Track.RowGap = 0
	cfg.Fuel.Flow = 0
	cfg.Difficulty.Enabled = false
	return cfg
}

func newTestGame(cfg config.RunnerConfig) *Game {
	g := New()
	g.resetWith(testRuntime(), cfg)
	return g
}

func step(g *Game, n int, actions ...core.Action) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame(actions...))
	}
}

// startPlatform returns the start row platform under the ball.
func startPlatform(t *testing.T, g *Game) *Platform {
	t.Helper()
	for _, p := range g.track.Platforms() {
		if p.Lane == 1 {
			return p
		}
	}
	t.Fatal("no start platform in the middle lane")
	return nil
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("skyroads") {
		t.Fatal("skyroads should register itself")
	}
	g, err := registry.Create("skyroads")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "skyroads" || g.Title() != "Skyroads" {
		t.Errorf("unexpected game %q / %q", g.ID(), g.Title())
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%40 == 0:
			inputs[i].Set(core.ActionJump)
		case i%90 < 10:
			inputs[i].Set(core.ActionLeft)
		case i%90 > 80:
			inputs[i].Set(core.ActionRight)
		}
		if i%120 == 0 {
			inputs[i].Set(core.ActionUp)
		}
	}

	run := func() *Game {
		g := newTestGame(cfg)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g
	}

	g1, g2 := run(), run()
	if g1.score != g2.score || g1.tickCount != g2.tickCount {
		t.Errorf("runs differ: score %d/%d ticks %d/%d", g1.score, g2.score, g1.tickCount, g2.tickCount)
	}
	if g1.player.Position() != g2.player.Position() {
		t.Errorf("player positions differ: %v / %v", g1.player.Position(), g2.player.Position())
	}
	if g1.track.Len() != g2.track.Len() || g1.track.Rows() != g2.track.Rows() {
		t.Errorf("tracks differ: %d/%d platforms", g1.track.Len(), g2.track.Len())
	}
	if g1.cause != g2.cause {
		t.Errorf("causes differ: %q / %q", g1.cause, g2.cause)
	}
}

func TestGameReset(t *testing.T) {
	cfg := safeConfig()
	g := newTestGame(cfg)
	step(g, 120, core.ActionUp)

	if g.score == 0 {
		t.Fatal("score should increase while running")
	}

	g.resetWith(testRuntime(), cfg)

	if g.score != 0 || g.tickCount != 0 {
		t.Errorf("after reset score=%d ticks=%d", g.score, g.tickCount)
	}
	if g.gameOver || g.paused {
		t.Error("after reset the run should be live")
	}
	if g.speed != cfg.Speed.Initial || g.fuel != cfg.Fuel.Max || g.lives != cfg.Lives.Initial {
		t.Errorf("after reset speed=%v fuel=%v lives=%d", g.speed, g.fuel, g.lives)
	}
	if g.player.ID() != 0 {
		t.Errorf("fresh world should give the player id 0, got %d", g.player.ID())
	}
}

func TestBallLandsOnStartRow(t *testing.T) {
	cfg := safeConfig()
	g := newTestGame(cfg)
	step(g, 60)

	if !g.grounded {
		t.Fatal("ball should rest on the road")
	}
	if y := g.player.Position().Y(); y != cfg.Player.Radius {
		t.Errorf("ball y = %v, expected %v", y, cfg.Player.Radius)
	}
	if vy := g.player.Body().State().Velocity.Y(); vy > 0 {
		t.Errorf("resting ball should not rise, v.y = %v", vy)
	}
	if g.gameOver {
		t.Errorf("run ended: %s", g.cause)
	}
}

func TestScoreIsDistance(t *testing.T) {
	g := newTestGame(safeConfig())
	step(g, 60)

	z := g.player.Position().Z()
	if g.score != int(math.Abs(z)) {
		t.Errorf("score = %d, expected %d", g.score, int(math.Abs(z)))
	}
	// One second at the initial speed of 6.
	if math.Abs(z+6) > 1e-6 {
		t.Errorf("z = %v, expected -6", z)
	}
}

func TestPlatformEffects(t *testing.T) {
	tests := []struct {
		name  string
		color PlatformColor
		check func(t *testing.T, g *Game, cfg config.RunnerConfig)
	}{
		{"red ends the run", PlatformRed, func(t *testing.T, g *Game, _ config.RunnerConfig) {
			if !g.gameOver || g.cause != CauseRed {
				t.Errorf("gameOver=%v cause=%q", g.gameOver, g.cause)
			}
		}},
		{"yellow burns fuel once", PlatformYellow, func(t *testing.T, g *Game, cfg config.RunnerConfig) {
			if want := cfg.Fuel.Max - cfg.Fuel.Loss; g.fuel != want {
				t.Errorf("fuel = %v, expected %v", g.fuel, want)
			}
		}},
		{"green refuels up to the cap", PlatformGreen, func(t *testing.T, g *Game, cfg config.RunnerConfig) {
			if g.fuel != cfg.Fuel.Max {
				t.Errorf("fuel = %v, expected cap %v", g.fuel, cfg.Fuel.Max)
			}
		}},
		{"orange forces max speed", PlatformOrange, func(t *testing.T, g *Game, cfg config.RunnerConfig) {
			if g.speed != cfg.Speed.Max || g.boostLeft <= 0 {
				t.Errorf("speed = %v boost = %v", g.speed, g.boostLeft)
			}
		}},
		{"white adds a life", PlatformWhite, func(t *testing.T, g *Game, cfg config.RunnerConfig) {
			if g.lives != cfg.Lives.Initial+1 {
				t.Errorf("lives = %d, expected %d", g.lives, cfg.Lives.Initial+1)
			}
		}},
		{"blue does nothing", PlatformBlue, func(t *testing.T, g *Game, cfg config.RunnerConfig) {
			if g.fuel != cfg.Fuel.Max || g.lives != cfg.Lives.Initial || g.speed != cfg.Speed.Initial {
				t.Errorf("fuel=%v lives=%d speed=%v", g.fuel, g.lives, g.speed)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := safeConfig()
			cfg.Speed.ForcedDuration = 10
			g := newTestGame(cfg)
			p := startPlatform(t, g)
			p.Color = tt.color

			step(g, 60)
			tt.check(t, g, cfg)

			switch tt.color {
			case PlatformRed, PlatformBlue:
				if p.Color != tt.color {
					t.Errorf("color changed to %v", p.Color)
				}
			default:
				if p.Color != PlatformPurple {
					t.Errorf("used platform should turn purple, got %v", p.Color)
				}
			}
		})
	}
}

func TestWhiteLifeIsCapped(t *testing.T) {
	cfg := safeConfig()
	cfg.Lives.Initial = cfg.Lives.Max
	g := newTestGame(cfg)
	startPlatform(t, g).Color = PlatformWhite

	step(g, 60)
	if g.lives != cfg.Lives.Max {
		t.Errorf("lives = %d, expected cap %d", g.lives, cfg.Lives.Max)
	}
}

func TestBoostRestoresSpeed(t *testing.T) {
	cfg := safeConfig()
	cfg.Speed.ForcedDuration = 0.5
	g := newTestGame(cfg)
	startPlatform(t, g).Color = PlatformOrange

	// Land and trigger the boost.
	for i := 0; i < 60 && g.boostLeft == 0; i++ {
		step(g, 1)
	}
	if g.boostLeft == 0 {
		t.Fatal("boost never started")
	}

	// Speed input is ignored during the boost.
	step(g, 1, core.ActionDown)
	if g.speed != cfg.Speed.Max {
		t.Errorf("speed changed during boost: %v", g.speed)
	}

	step(g, 60)
	if g.boostLeft != 0 {
		t.Errorf("boost should have ended, %v left", g.boostLeft)
	}
	if g.speed != cfg.Speed.Initial {
		t.Errorf("speed = %v, expected restored %v", g.speed, cfg.Speed.Initial)
	}
}

func TestFuelDepletionCostsLives(t *testing.T) {
	cfg := safeConfig()
	cfg.Fuel.Max = 1
	cfg.Fuel.Flow = 1
	cfg.Lives.Initial = 2
	g := newTestGame(cfg)

	step(g, 70)
	if g.lives != 1 {
		t.Fatalf("lives = %d after one tank, expected 1", g.lives)
	}
	if g.fuel <= 0 || g.fuel > cfg.Fuel.Max {
		t.Errorf("fuel should be refilled, got %v", g.fuel)
	}
	if g.gameOver {
		t.Fatal("run should continue with a life left")
	}

	step(g, 70)
	if !g.gameOver || g.cause != CauseNoFuel {
		t.Errorf("gameOver=%v cause=%q, expected out of fuel", g.gameOver, g.cause)
	}
	if g.lives != 0 {
		t.Errorf("lives = %d, expected 0", g.lives)
	}
}

func TestFallingOffEndsRun(t *testing.T) {
	g := newTestGame(safeConfig())
	for i := 0; i < 600 && !g.gameOver; i++ {
		step(g, 1, core.ActionRight)
	}

	if !g.gameOver || g.cause != CauseFell {
		t.Errorf("gameOver=%v cause=%q, expected a fall", g.gameOver, g.cause)
	}

	// Finished runs ignore further input.
	ticks := g.tickCount
	step(g, 10, core.ActionLeft)
	if g.tickCount != ticks {
		t.Error("game over should freeze the simulation")
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	cfg := safeConfig()
	g := newTestGame(cfg)

	// In the air at spawn: jump is ignored.
	step(g, 1, core.ActionJump)
	if vy := g.player.Body().State().Velocity.Y(); vy > 0 {
		t.Errorf("airborne jump applied, v.y = %v", vy)
	}

	step(g, 60)
	if !g.grounded {
		t.Fatal("ball should have landed")
	}
	y := g.player.Position().Y()
	step(g, 1, core.ActionJump)
	if g.player.Position().Y() <= y {
		t.Errorf("jump should lift the ball, y %v -> %v", y, g.player.Position().Y())
	}
	if g.grounded {
		t.Error("ball should be airborne after jumping")
	}
}

func TestSpeedControls(t *testing.T) {
	cfg := safeConfig()
	g := newTestGame(cfg)

	step(g, 1, core.ActionUp)
	if g.speed != cfg.Speed.Initial+cfg.Speed.Step {
		t.Errorf("speed = %v after speeding up", g.speed)
	}

	step(g, 100, core.ActionUp)
	if g.speed != cfg.Speed.Max {
		t.Errorf("speed = %v, expected clamp at %v", g.speed, cfg.Speed.Max)
	}

	step(g, 100, core.ActionDown)
	if g.speed != cfg.Speed.Min {
		t.Errorf("speed = %v, expected clamp at %v", g.speed, cfg.Speed.Min)
	}
}

func TestSteering(t *testing.T) {
	g := newTestGame(safeConfig())
	step(g, 10, core.ActionLeft)
	if x := g.player.Position().X(); x >= 0 {
		t.Errorf("steering left should move towards -X, x = %v", x)
	}
}

func TestCameraFollowsAndToggles(t *testing.T) {
	cfg := safeConfig()
	g := newTestGame(cfg)
	step(g, 1)

	if g.camera.Mode != ThirdPerson {
		t.Fatalf("default camera mode = %v", g.camera.Mode)
	}
	pos := g.player.Position()
	if g.camera.Eye == pos {
		t.Error("third person camera should sit behind the ball")
	}

	step(g, 1, core.ActionCamera)
	if g.camera.Mode != FirstPerson {
		t.Fatalf("camera should switch to first person")
	}
	if g.camera.Eye != g.player.Position() {
		t.Errorf("first person eye = %v, expected ball at %v", g.camera.Eye, g.player.Position())
	}
	if g.camera.ShowsPlayer() {
		t.Error("first person camera should hide the ball")
	}

	step(g, 100, core.ActionUp)
	if g.camera.FOV != cfg.Camera.MaxFOV {
		t.Errorf("FOV at max speed = %v, expected %v", g.camera.FOV, cfg.Camera.MaxFOV)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(safeConfig())
	step(g, 5)

	step(g, 1, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	ticks, pos := g.tickCount, g.player.Position()
	step(g, 30)
	if g.tickCount != ticks || g.player.Position() != pos {
		t.Error("paused game should not advance")
	}

	step(g, 1, core.ActionPause)
	if g.State().Paused {
		t.Fatal("game should resume")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(config.DefaultRunnerConfig())
	step(g, 30)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score:") {
		t.Errorf("HUD missing from top row: %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(23), "Fuel") {
		t.Errorf("fuel bar missing from bottom row: %q", screen.Row(23))
	}

	road := false
	for y := 1; y < 23 && !road; y++ {
		for x := 0; x < 80; x++ {
			if screen.GetCell(x, y).Color == core.ColorBlue {
				road = true
				break
			}
		}
	}
	if !road {
		t.Errorf("no road drawn:\n%s", screen.String())
	}

	g.endRun(CauseFell)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}

	// Degenerate screens must not panic.
	g.Render(core.NewScreen(0, 0))
	g.Render(core.NewScreen(3, 2))
}

func TestGamePresetAndTicks(t *testing.T) {
	g := New()
	if g.Difficulty() != "normal" {
		t.Errorf("default Difficulty() = %q, expected normal", g.Difficulty())
	}

	g.SetPreset("hard")
	g.Reset(testRuntime())
	if g.Difficulty() != "hard" {
		t.Errorf("Difficulty() = %q, expected hard", g.Difficulty())
	}
	if g.lives != 2 {
		t.Errorf("hard preset lives = %d, expected 2", g.lives)
	}

	g.SetPreset("insane")
	if g.Difficulty() != "normal" {
		t.Errorf("unknown preset should fall back to normal, got %q", g.Difficulty())
	}

	step(g, 5)
	if g.Ticks() != 5 {
		t.Errorf("Ticks() = %d, expected 5", g.Ticks())
	}
}

func TestLookKeysTurnCamera(t *testing.T) {
	g := newTestGame(safeConfig())

	step(g, 2, core.ActionLookUp, core.ActionLookLeft)
	if g.camera.Pitch != 2*LookStep || g.camera.Yaw != 2*LookStep {
		t.Errorf("pitch/yaw = %v/%v, expected %v", g.camera.Pitch, g.camera.Yaw, 2*LookStep)
	}

	step(g, 1, core.ActionLookDown, core.ActionLookRight)
	if g.camera.Pitch != LookStep || g.camera.Yaw != LookStep {
		t.Errorf("pitch/yaw = %v/%v, expected %v", g.camera.Pitch, g.camera.Yaw, LookStep)
	}

	step(g, 1, core.ActionCamera)
	if g.camera.Pitch != 0 || g.camera.Yaw != 0 {
		t.Errorf("camera toggle should recenter, pitch/yaw = %v/%v", g.camera.Pitch, g.camera.Yaw)
	}
}
