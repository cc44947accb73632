package physics

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultGravity is the downward acceleration applied to simulated bodies.
var DefaultGravity = mgl64.Vec3{0, -9.8, 0}

// Configuration errors returned by RigidBody mutators.
var (
	ErrNilMotionFunc       = errors.New("physics: motion function is nil")
	ErrNoMotionFunc        = errors.New("physics: function-driven mode requires a motion function")
	ErrUnknownMovementType = errors.New("physics: unknown movement type")
)

// State is the kinematic state of one body.
// GravityCoef and DragCoef scale the gravity and linear drag accelerations.
type State struct {
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3
	GravityCoef float64
	DragCoef    float64
}

// MovementType selects how a body advances each tick.
type MovementType int

const (
	// Simulated integrates gravity and drag.
	Simulated MovementType = iota
	// FunctionDriven replaces the state with a motion function's result.
	FunctionDriven
)

// String returns a human-readable name for the movement type.
func (m MovementType) String() string {
	switch m {
	case Simulated:
		return "Simulated"
	case FunctionDriven:
		return "FunctionDriven"
	default:
		return fmt.Sprintf("MovementType(%d)", int(m))
	}
}

// MotionFunc computes the next state from the current one, the total
// simulated time (including dt) and the tick length. It must be pure.
type MotionFunc func(s State, totalTime, dt float64) State

// RigidBody owns one State and advances it once per tick.
type RigidBody struct {
	state   State
	enabled bool
	mode    MovementType
	motion  MotionFunc
	gravity mgl64.Vec3
	elapsed float64
}

// Option configures a RigidBody at construction.
type Option func(*RigidBody)

// WithGravity overrides the gravity acceleration vector.
func WithGravity(g mgl64.Vec3) Option {
	return func(rb *RigidBody) {
		rb.gravity = g
	}
}

// WithDisabled creates the body with physics disabled.
func WithDisabled() Option {
	return func(rb *RigidBody) {
		rb.enabled = false
	}
}

// NewRigidBody creates an enabled, simulated body.
func NewRigidBody(state State, opts ...Option) *RigidBody {
	rb := &RigidBody{
		state:   state,
		enabled: true,
		mode:    Simulated,
		gravity: DefaultGravity,
	}
	for _, opt := range opts {
		opt(rb)
	}
	return rb
}

// EnablePhysics resumes integration on the next tick.
func (rb *RigidBody) EnablePhysics() {
	rb.enabled = true
}

// DisablePhysics freezes the state until EnablePhysics is called.
func (rb *RigidBody) DisablePhysics() {
	rb.enabled = false
}

// Enabled reports whether integration runs.
func (rb *RigidBody) Enabled() bool {
	return rb.enabled
}

// MovementType returns the active movement mode.
func (rb *RigidBody) MovementType() MovementType {
	return rb.mode
}

// SetMovementType switches the movement mode. Switching to FunctionDriven
// fails with ErrNoMotionFunc unless a motion function was assigned first.
func (rb *RigidBody) SetMovementType(mode MovementType) error {
	switch mode {
	case Simulated:
	case FunctionDriven:
		if rb.motion == nil {
			return ErrNoMotionFunc
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownMovementType, int(mode))
	}
	rb.mode = mode
	return nil
}

// SetMovementFunction assigns the function used in FunctionDriven mode.
// A nil function is rejected and leaves the body unchanged.
func (rb *RigidBody) SetMovementFunction(fn MotionFunc) error {
	if fn == nil {
		return ErrNilMotionFunc
	}
	rb.motion = fn
	return nil
}

// State returns a copy of the current state.
func (rb *RigidBody) State() State {
	return rb.state
}

// SetState replaces the current state.
func (rb *RigidBody) SetState(s State) {
	rb.state = s
}

// SetVelocity replaces the velocity.
func (rb *RigidBody) SetVelocity(v mgl64.Vec3) {
	rb.state.Velocity = v
}

// Translate moves the body by offset without touching its velocity.
func (rb *RigidBody) Translate(offset mgl64.Vec3) {
	rb.state.Position = rb.state.Position.Add(offset)
}

// Elapsed returns the total simulated time accumulated while enabled.
func (rb *RigidBody) Elapsed() float64 {
	return rb.elapsed
}

// UpdatePhysics advances the body by dt seconds. A negative dt counts as zero.
func (rb *RigidBody) UpdatePhysics(dt float64) {
	if !rb.enabled {
		return
	}
	if dt < 0 {
		dt = 0
	}
	rb.elapsed += dt

	if rb.mode == FunctionDriven {
		rb.state = rb.motion(rb.state, rb.elapsed, dt)
		return
	}
	rb.state = integrate(rb.state, rb.gravity, dt)
}

// integrate performs one semi-implicit Euler step: velocity first, then
// position from the new velocity.
func integrate(s State, gravity mgl64.Vec3, dt float64) State {
	accel := gravity.Mul(s.GravityCoef).Sub(s.Velocity.Mul(s.DragCoef))
	s.Velocity = s.Velocity.Add(accel.Mul(dt))
	s.Position = s.Position.Add(s.Velocity.Mul(dt))
	return s
}
