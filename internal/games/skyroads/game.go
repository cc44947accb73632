// Package skyroads implements a Skyroads-style 3D runner.
// A ball rolls down a road of colored platforms floating in space; each
// color has an effect on fuel, speed or lives. Physics and collision come
// from the engine package; this package holds the rules and the renderer.
package skyroads

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-skyroads/internal/config"
	"github.com/vovakirdan/tui-skyroads/internal/core"
	"github.com/vovakirdan/tui-skyroads/internal/engine"
	"github.com/vovakirdan/tui-skyroads/internal/physics"
	"github.com/vovakirdan/tui-skyroads/internal/registry"
)

// GameID is the registry id of the runner.
const GameID = "skyroads"

// Reasons a run ends.
const (
	CauseRed    = "Hit a red platform"
	CauseFell   = "Fell off the road"
	CauseNoFuel = "Out of fuel"
)

// Game implements the Skyroads runner logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.RunnerConfig
	preset     config.DifficultyPreset
	difficulty *config.DifficultyManager
	logger     *log.Logger

	world  *engine.World
	player *engine.Object
	track  *Track
	camera Camera

	speed      float64
	savedSpeed float64 // Speed restored when a boost ends
	boostLeft  float64 // Seconds of forced max speed remaining
	fuel       float64
	lives      int
	grounded   bool
	startZ     float64

	score     int
	tickCount int
	gameOver  bool
	paused    bool
	cause     string
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// New creates a new Skyroads game instance.
func New() *Game {
	return &Game{logger: logger, preset: difficultyPreset}
}

// SetPreset overrides the difficulty preset of this instance. It takes
// effect on the next Reset.
func (g *Game) SetPreset(preset string) {
	g.preset = config.ParsePreset(preset)
}

// Difficulty returns the preset name the current run uses.
func (g *Game) Difficulty() string {
	if g.preset == "" {
		return string(config.DifficultyNormal)
	}
	return string(g.preset)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Skyroads"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultRunnerConfig()
	}

	// Apply difficulty preset if set
	if g.preset != "" {
		config.ApplyRunnerPreset(&cfg, g.preset)
	}

	g.resetWith(runtime, cfg)
}

// resetWith starts a fresh run with an explicit config.
func (g *Game) resetWith(runtime core.RuntimeConfig, cfg config.RunnerConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.world = engine.NewWorld(
		engine.WithLogger(g.logger),
		engine.WithWorldGravity(mgl64.Vec3{0, -cfg.Physics.Gravity, 0}),
	)

	start := mgl64.Vec3{0, cfg.Player.Radius + cfg.Player.StartHeight, 0}
	g.player = g.world.Spawn("player", physics.Sphere{Radius: cfg.Player.Radius}, physics.State{
		Position:    start,
		GravityCoef: cfg.Player.GravityCoef,
		DragCoef:    cfg.Player.Drag,
	})
	g.startZ = start.Z()

	g.track = NewTrack(g.world, cfg.Track, g.difficulty, runtime.Seed, g.logger)
	g.track.SpawnStart(start.Z())
	g.track.Update(start.Z(), 0, 0)

	g.camera = NewCamera(cfg.Camera)

	g.speed = cfg.Speed.Initial
	g.savedSpeed = g.speed
	g.boostLeft = 0
	g.fuel = cfg.Fuel.Max
	g.lives = cfg.Lives.Initial
	g.grounded = false
	g.score = 0
	g.tickCount = 0
	g.gameOver = false
	g.paused = false
	g.cause = ""

	lo, hi := g.speedRange()
	g.camera.Follow(start, g.speed, lo, hi)

	g.logger.Info("run started", "seed", runtime.Seed, "preset", g.Difficulty(), "platforms", g.track.Len())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.DeltaTime()
	g.tickCount++

	g.handleInput(in)

	// Forward motion is kinematic; gravity, drag and steering are simulated.
	g.player.Body().Translate(mgl64.Vec3{0, 0, -g.speed * dt})
	g.world.Step(dt)

	g.resolveContacts()
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.updateFuel(dt)
	g.updateBoost(dt)

	pos := g.player.Position()
	if pos.Y() < g.cfg.Physics.KillHeight {
		g.endRun(CauseFell)
	}

	g.score = int(math.Abs(pos.Z() - g.startZ))
	g.track.Update(pos.Z(), g.score, g.tickCount)

	lo, hi := g.speedRange()
	if g.boostLeft <= 0 {
		g.speed = core.Clamp(g.speed, lo, hi)
	}
	g.camera.Follow(pos, g.speed, lo, hi)

	return core.StepResult{State: g.State()}
}

// handleInput applies camera, speed, steering and jump actions.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionCamera) {
		g.camera.Toggle()
	}
	switch {
	case in.Has(core.ActionLookUp):
		g.camera.Look(LookStep, 0)
	case in.Has(core.ActionLookDown):
		g.camera.Look(-LookStep, 0)
	}
	switch {
	case in.Has(core.ActionLookLeft):
		g.camera.Look(0, LookStep)
	case in.Has(core.ActionLookRight):
		g.camera.Look(0, -LookStep)
	}

	// Speed is locked while a boost is active
	if g.boostLeft <= 0 {
		lo, hi := g.speedRange()
		if in.Has(core.ActionUp) {
			g.speed = core.Clamp(g.speed+g.cfg.Speed.Step, lo, hi)
		}
		if in.Has(core.ActionDown) {
			g.speed = core.Clamp(g.speed-g.cfg.Speed.Step, lo, hi)
		}
	}

	body := g.player.Body()
	v := body.State().Velocity
	switch {
	case in.Has(core.ActionLeft):
		v[0] = -g.cfg.Player.LateralSpeed
	case in.Has(core.ActionRight):
		v[0] = g.cfg.Player.LateralSpeed
	}

	if in.Has(core.ActionJump) && g.grounded {
		v[1] = g.cfg.Player.JumpSpeed
		g.grounded = false
	}
	body.SetVelocity(v)
}

// resolveContacts lands the ball on platforms it touches from above and
// applies each touched platform's effect.
func (g *Game) resolveContacts() {
	g.grounded = false
	for _, id := range g.world.Collisions(g.player) {
		p, ok := g.track.Platform(id)
		if !ok {
			continue
		}
		g.land(p)
		g.applyEffect(p)
		if g.gameOver {
			return
		}
	}
}

// land snaps a falling ball whose center is at or above the platform's top
// face onto that face.
func (g *Game) land(p *Platform) {
	body := g.player.Body()
	state := body.State()
	top := p.Top()
	if state.Velocity.Y() > 0 || state.Position.Y() < top {
		return
	}

	state.Position[1] = top + g.cfg.Player.Radius
	state.Velocity[1] = 0
	body.SetState(state)
	g.player.SyncCollider()
	g.grounded = true
}

// applyEffect runs a platform's color effect. Used platforms turn purple.
func (g *Game) applyEffect(p *Platform) {
	if !p.Color.HasEffect() {
		return
	}

	switch p.Color {
	case PlatformRed:
		g.endRun(CauseRed)
		return
	case PlatformYellow:
		g.fuel -= g.cfg.Fuel.Loss
	case PlatformOrange:
		g.startBoost()
	case PlatformGreen:
		g.fuel += g.cfg.Fuel.Gain
	case PlatformWhite:
		if g.lives < g.cfg.Lives.Max {
			g.lives++
		}
	}

	g.fuel = core.Clamp(g.fuel, 0, g.cfg.Fuel.Max)
	g.logger.Debug("platform effect", "color", p.Color, "fuel", g.fuel, "lives", g.lives, "speed", g.speed)
	p.Color = PlatformPurple
}

// startBoost forces max speed for the configured duration. A second boost
// extends the first one and keeps the speed to return to.
func (g *Game) startBoost() {
	if g.boostLeft <= 0 {
		g.savedSpeed = g.speed
	}
	g.boostLeft = g.cfg.Speed.ForcedDuration
	_, hi := g.speedRange()
	g.speed = hi
}

func (g *Game) updateBoost(dt float64) {
	if g.boostLeft <= 0 {
		return
	}
	g.boostLeft -= dt
	if g.boostLeft <= 0 {
		g.boostLeft = 0
		g.speed = g.savedSpeed
	}
}

// updateFuel drains fuel. An empty tank costs a life and is refilled while
// lives remain.
func (g *Game) updateFuel(dt float64) {
	g.fuel -= g.cfg.Fuel.Flow * dt
	if g.fuel > 0 {
		return
	}

	g.lives--
	if g.lives > 0 {
		g.fuel = g.cfg.Fuel.Max
		g.logger.Info("life lost", "lives", g.lives, "score", g.score)
		return
	}
	g.fuel = 0
	g.endRun(CauseNoFuel)
}

// speedRange returns the speed limits at the current difficulty.
func (g *Game) speedRange() (lo, hi float64) {
	snap := g.difficulty.At(g.score, g.tickCount)
	return snap.Speed(g.cfg.Speed.Min), snap.Speed(g.cfg.Speed.Max)
}

func (g *Game) endRun(cause string) {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.cause = cause
	g.logger.Info("run ended", "cause", cause, "score", g.score, "ticks", g.tickCount)
}

// Cause returns why the run ended, or "" while it is running.
func (g *Game) Cause() string {
	return g.cause
}

// Ticks returns the number of simulated ticks in the current run.
func (g *Game) Ticks() int {
	return g.tickCount
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
