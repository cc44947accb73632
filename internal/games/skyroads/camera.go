package skyroads

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-skyroads/internal/config"
	"github.com/vovakirdan/tui-skyroads/internal/core"
)

// Clip planes of the perspective projection.
const (
	nearPlane = 0.01
	farPlane  = 200.0
)

// Look limits and the per-key turn, in radians. Pitch tilts around X, yaw
// turns around Y.
const (
	MaxPitch = 0.275
	MaxYaw   = 0.5
	LookStep = 0.025
)

// CameraMode selects where the camera sits relative to the ball.
type CameraMode int

const (
	ThirdPerson CameraMode = iota // Behind and above the ball
	FirstPerson                   // At the ball's center, ball hidden
)

// String returns the short mode name shown in the HUD.
func (m CameraMode) String() string {
	if m == FirstPerson {
		return "1st"
	}
	return "3rd"
}

// ParseCameraMode maps a config value to a mode, defaulting to third person.
func ParseCameraMode(s string) CameraMode {
	if s == "first" {
		return FirstPerson
	}
	return ThirdPerson
}

// Camera follows the ball down the road. Its field of view widens with speed.
type Camera struct {
	Mode   CameraMode
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	FOV    float64 // Vertical field of view, degrees
	Pitch  float64 // Positive looks up, within ±MaxPitch
	Yaw    float64 // Positive looks left, within ±MaxYaw

	offset mgl64.Vec3
	minFOV float64
	maxFOV float64
}

// NewCamera creates a camera from config.
func NewCamera(cfg config.RunnerCamera) Camera {
	return Camera{
		Mode:   ParseCameraMode(cfg.Mode),
		FOV:    cfg.MinFOV,
		offset: mgl64.Vec3{0, cfg.OffsetY, cfg.OffsetZ},
		minFOV: cfg.MinFOV,
		maxFOV: cfg.MaxFOV,
	}
}

// Toggle switches between first and third person and recenters the view.
func (c *Camera) Toggle() {
	if c.Mode == ThirdPerson {
		c.Mode = FirstPerson
	} else {
		c.Mode = ThirdPerson
	}
	c.Pitch, c.Yaw = 0, 0
}

// Look turns the view by the given pitch and yaw, clamped to the limits.
// It takes effect on the next Follow.
func (c *Camera) Look(dPitch, dYaw float64) {
	c.Pitch = core.Clamp(c.Pitch+dPitch, -MaxPitch, MaxPitch)
	c.Yaw = core.Clamp(c.Yaw+dYaw, -MaxYaw, MaxYaw)
}

// ShowsPlayer reports whether the ball should be drawn.
func (c Camera) ShowsPlayer() bool {
	return c.Mode == ThirdPerson
}

// Follow places the camera for the ball at player moving at speed, with the
// FOV mapped from [minSpeed, maxSpeed] onto the configured FOV range.
func (c *Camera) Follow(player mgl64.Vec3, speed, minSpeed, maxSpeed float64) {
	c.Eye = player
	if c.Mode == ThirdPerson {
		c.Eye = player.Add(c.offset)
	}
	// Look far down the road, slightly downwards, then apply the look offsets.
	look := mgl64.Vec3{0, -1, -100}
	if c.Pitch != 0 || c.Yaw != 0 {
		look = mgl64.Rotate3DY(c.Yaw).Mul3(mgl64.Rotate3DX(c.Pitch)).Mul3x1(look)
	}
	c.Target = player.Add(look)

	fov := core.MapRange(speed, minSpeed, maxSpeed, c.minFOV, c.maxFOV, 1)
	c.FOV = core.Clamp(fov, c.minFOV, c.maxFOV)
}

// ViewProjection returns the combined projection * view matrix for a
// viewport with the given width/height aspect ratio.
func (c Camera) ViewProjection(aspect float64) mgl64.Mat4 {
	proj := mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, nearPlane, farPlane)
	view := mgl64.LookAtV(c.Eye, c.Target, mgl64.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

// projector maps world points to screen cells.
type projector struct {
	m      mgl64.Mat4
	width  float64
	height float64
}

// newProjector builds a projector for a w x h cell screen. Terminal cells are
// about twice as tall as wide, which halves the effective aspect ratio.
func newProjector(c Camera, w, h int) projector {
	aspect := 1.0
	if h > 0 {
		aspect = float64(w) / (2 * float64(h))
	}
	return projector{m: c.ViewProjection(aspect), width: float64(w), height: float64(h)}
}

// project returns the screen position of p. ok is false for points at or
// behind the near plane.
func (p projector) project(v mgl64.Vec3) (x, y float64, ok bool) {
	clip := p.m.Mul4x1(v.Vec4(1))
	if clip.W() <= nearPlane {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = (ndc.X() + 1) / 2 * p.width
	y = (1 - ndc.Y()) / 2 * p.height
	return x, y, true
}
