// Package physics provides the collision and rigid-body core of the runner.
// It has no rendering or terminal dependencies; every operation is a pure,
// deterministic computation over the state it is given.
package physics

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ObjectID identifies the game object that owns a collider or body.
// IDs are assigned by the owning world and never reused within a process.
type ObjectID int

// ErrShapeMismatch is returned when a shape-specific setter is called on a
// collider of another shape.
var ErrShapeMismatch = errors.New("physics: collider shape mismatch")

// Shape is the closed set of collider geometries: Box or Sphere.
type Shape interface {
	isShape()
}

// Box is an axis-aligned box described by its per-axis half dimensions.
type Box struct {
	HalfDims mgl64.Vec3
}

// Sphere is a ball described by its radius.
type Sphere struct {
	Radius float64
}

func (Box) isShape()    {}
func (Sphere) isShape() {}

// Collider is a positioned shape tagged with its owner. It is a plain value
// and may be copied freely; the owner id is only used to exclude
// self-collision.
type Collider struct {
	owner    ObjectID
	position mgl64.Vec3
	shape    Shape
}

// NewBox creates a box collider. Negative half dimensions are clamped to zero.
func NewBox(owner ObjectID, pos, halfDims mgl64.Vec3) Collider {
	return Collider{
		owner:    owner,
		position: pos,
		shape:    Box{HalfDims: clampVec(halfDims)},
	}
}

// NewSphere creates a sphere collider. A negative radius is clamped to zero.
func NewSphere(owner ObjectID, pos mgl64.Vec3, radius float64) Collider {
	return Collider{
		owner:    owner,
		position: pos,
		shape:    Sphere{Radius: math.Max(0, radius)},
	}
}

// NewCollider creates a collider of the given shape, clamping its extents
// like NewBox and NewSphere. Any other shape, nil included, yields a collider
// with no shape that never overlaps anything.
func NewCollider(owner ObjectID, pos mgl64.Vec3, shape Shape) Collider {
	switch s := shape.(type) {
	case Box:
		return NewBox(owner, pos, s.HalfDims)
	case Sphere:
		return NewSphere(owner, pos, s.Radius)
	default:
		return Collider{owner: owner, position: pos}
	}
}

// Owner returns the id of the owning object.
func (c Collider) Owner() ObjectID {
	return c.owner
}

// Shape returns the collider geometry.
func (c Collider) Shape() Shape {
	return c.shape
}

// Position returns the world-space center.
func (c Collider) Position() mgl64.Vec3 {
	return c.position
}

// SetPosition moves the collider center.
func (c *Collider) SetPosition(pos mgl64.Vec3) {
	c.position = pos
}

// Dimensions returns the half dimensions of a box collider.
// ok is false for other shapes.
func (c Collider) Dimensions() (halfDims mgl64.Vec3, ok bool) {
	b, ok := c.shape.(Box)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return b.HalfDims, true
}

// SetDimensions replaces the half dimensions of a box collider.
// Negative components are clamped to zero.
func (c *Collider) SetDimensions(halfDims mgl64.Vec3) error {
	if _, ok := c.shape.(Box); !ok {
		return ErrShapeMismatch
	}
	c.shape = Box{HalfDims: clampVec(halfDims)}
	return nil
}

// Radius returns the radius of a sphere collider.
// ok is false for other shapes.
func (c Collider) Radius() (radius float64, ok bool) {
	s, ok := c.shape.(Sphere)
	if !ok {
		return 0, false
	}
	return s.Radius, true
}

// SetRadius replaces the radius of a sphere collider.
// A negative radius is clamped to zero.
func (c *Collider) SetRadius(radius float64) error {
	if _, ok := c.shape.(Sphere); !ok {
		return ErrShapeMismatch
	}
	c.shape = Sphere{Radius: math.Max(0, radius)}
	return nil
}

// Extents returns the half size of the collider's bounding box.
func (c Collider) Extents() mgl64.Vec3 {
	switch s := c.shape.(type) {
	case Box:
		return s.HalfDims
	case Sphere:
		return mgl64.Vec3{s.Radius, s.Radius, s.Radius}
	default:
		return mgl64.Vec3{}
	}
}

func clampVec(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Max(0, v[0]), math.Max(0, v[1]), math.Max(0, v[2])}
}
