package skyroads

import (
	"math"
	"math/rand"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-skyroads/internal/config"
	"github.com/vovakirdan/tui-skyroads/internal/engine"
	"github.com/vovakirdan/tui-skyroads/internal/physics"
)

// Track spawns platform rows ahead of the player and removes the ones left
// behind. The road runs towards -Z.
type Track struct {
	world      *engine.World
	cfg        config.RunnerTrack
	difficulty *config.DifficultyManager
	logger     *log.Logger
	rng        *rand.Rand
	platforms  map[physics.ObjectID]*Platform
	frontZ     float64 // Far edge of the most recently spawned row
	rows       int
}

// NewTrack creates an empty track spawning into world.
func NewTrack(world *engine.World, cfg config.RunnerTrack, difficulty *config.DifficultyManager, seed int64, logger *log.Logger) *Track {
	return &Track{
		world:      world,
		cfg:        cfg,
		difficulty: difficulty,
		logger:     logger,
		rng:        rand.New(rand.NewSource(seed)),
		platforms:  make(map[physics.ObjectID]*Platform),
	}
}

// halfDims returns the collider half extents of one platform.
func (t *Track) halfDims() mgl64.Vec3 {
	return mgl64.Vec3{t.cfg.PlatformWidth, t.cfg.PlatformHeight, t.cfg.PlatformLength}.Mul(0.5)
}

// SpawnStart lays a row of plain platforms centered on z with the top face at
// y = 0. Every lane is filled so the player can land anywhere.
func (t *Track) SpawnStart(z float64) {
	half := t.halfDims()
	for lane := range t.cfg.Lanes {
		t.spawn(lane, mgl64.Vec3{t.cfg.Lanes[lane], -half.Y(), z}, PlatformBlue, false)
	}
	t.frontZ = z - half.Z()
	t.rows++
}

// Update spawns rows until the road reaches ViewAhead past playerZ and
// removes platforms further than CullBehind behind it.
func (t *Track) Update(playerZ float64, score, ticks int) {
	for t.frontZ > playerZ-t.cfg.ViewAhead {
		t.spawnRow(score, ticks)
	}

	for _, p := range t.Platforms() {
		if p.Object.Position().Z()-p.Object.Extents().Z() > playerZ+t.cfg.CullBehind {
			t.remove(p.Object.ID())
		}
	}
}

// Platform looks up the platform owning an object id.
func (t *Track) Platform(id physics.ObjectID) (*Platform, bool) {
	p, ok := t.platforms[id]
	return p, ok
}

// Platforms returns all live platforms in id order.
func (t *Track) Platforms() []*Platform {
	out := make([]*Platform, 0, len(t.platforms))
	for _, p := range t.platforms {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Object.ID() < out[j].Object.ID()
	})
	return out
}

// Len returns the number of live platforms.
func (t *Track) Len() int {
	return len(t.platforms)
}

// Rows returns the number of rows spawned so far.
func (t *Track) Rows() int {
	return t.rows
}

func (t *Track) spawnRow(score, ticks int) {
	snap := t.difficulty.At(score, ticks)
	half := t.halfDims()
	centerZ := t.frontZ - snap.RowGap(t.cfg.RowGap) - half.Z()
	swayChance := snap.SwayChance()

	for lane, color := range t.rollRow(snap) {
		if color == nil {
			continue
		}
		moving := t.cfg.SwayAmplitude > 0 && t.rng.Float64() < swayChance
		t.spawn(lane, mgl64.Vec3{t.cfg.Lanes[lane], -half.Y(), centerZ}, *color, moving)
	}

	t.frontZ = centerZ - half.Z()
	t.rows++
}

// rollRow picks a color per lane, nil meaning the lane stays empty. At least
// one lane always holds a platform that is not red.
func (t *Track) rollRow(snap config.Snapshot) []*PlatformColor {
	row := make([]*PlatformColor, len(t.cfg.Lanes))
	safe := false
	for lane := range row {
		if t.rng.Float64() < t.cfg.EmptyChance {
			continue
		}
		c := t.pickColor(snap)
		row[lane] = &c
		if c != PlatformRed {
			safe = true
		}
	}

	if !safe {
		c := PlatformBlue
		row[t.rng.Intn(len(row))] = &c
	}
	return row
}

// pickColor draws a color from the configured weights, with the harmful
// colors scaled up by the difficulty level.
func (t *Track) pickColor(snap config.Snapshot) PlatformColor {
	w := t.cfg.Weights
	weights := []struct {
		color  PlatformColor
		weight float64
	}{
		{PlatformBlue, w.Blue},
		{PlatformRed, snap.HazardWeight(w.Red)},
		{PlatformYellow, snap.HazardWeight(w.Yellow)},
		{PlatformOrange, w.Orange},
		{PlatformGreen, w.Green},
		{PlatformWhite, w.White},
	}

	var total float64
	for _, e := range weights {
		total += e.weight
	}
	if total <= 0 {
		return PlatformBlue
	}

	r := t.rng.Float64() * total
	for _, e := range weights {
		if r < e.weight {
			return e.color
		}
		r -= e.weight
	}
	return PlatformBlue
}

func (t *Track) spawn(lane int, pos mgl64.Vec3, color PlatformColor, moving bool) *Platform {
	var opts []physics.Option
	phase := 0.0
	if moving {
		phase = t.rng.Float64() * 2 * math.Pi
		pos[0] += t.cfg.SwayAmplitude * math.Sin(phase)
	} else {
		opts = append(opts, physics.WithDisabled())
	}

	obj := t.world.Spawn("platform", physics.Box{HalfDims: t.halfDims()}, physics.State{Position: pos}, opts...)
	if moving {
		motion := swayMotion(t.cfg.Lanes[lane], t.cfg.SwayAmplitude, t.cfg.SwayFrequency, phase)
		//nolint:errcheck // motion is non-nil
		obj.Body().SetMovementFunction(motion)
		//nolint:errcheck // a motion function was just assigned
		obj.Body().SetMovementType(physics.FunctionDriven)
	}

	p := &Platform{Object: obj, Color: color, Lane: lane, Moving: moving}
	t.platforms[obj.ID()] = p
	t.logger.Debug("platform spawned", "id", obj.ID(), "color", color, "lane", lane, "moving", moving)
	return p
}

func (t *Track) remove(id physics.ObjectID) {
	delete(t.platforms, id)
	t.world.Remove(id)
}

// swayMotion moves a platform sideways around baseX along a sine wave driven
// by the body's accumulated time.
func swayMotion(baseX, amplitude, frequency, phase float64) physics.MotionFunc {
	omega := 2 * math.Pi * frequency
	return func(s physics.State, total, _ float64) physics.State {
		angle := omega*total + phase
		s.Position[0] = baseX + amplitude*math.Sin(angle)
		s.Velocity = mgl64.Vec3{amplitude * omega * math.Cos(angle), 0, 0}
		return s
	}
}
