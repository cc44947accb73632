// Package engine glues physics bodies and colliders to game objects.
// A World owns every object, assigns ids and sequences the per-tick update:
// integrate, sync colliders, then answer collision queries.
package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-skyroads/internal/physics"
)

// Object is a simulated entity with exactly one collider and one rigid body.
type Object struct {
	id       physics.ObjectID
	tag      string
	collider physics.Collider
	body     *physics.RigidBody
}

// ID returns the object's unique identifier.
func (o *Object) ID() physics.ObjectID {
	return o.id
}

// Tag returns the role tag given at spawn time (e.g. "player", "platform").
func (o *Object) Tag() string {
	return o.tag
}

// SetTag replaces the role tag.
func (o *Object) SetTag(tag string) {
	o.tag = tag
}

// Collider returns a copy of the object's collider.
func (o *Object) Collider() physics.Collider {
	return o.collider
}

// Body returns the object's rigid body.
func (o *Object) Body() *physics.RigidBody {
	return o.body
}

// Position returns the authoritative position from the rigid body.
func (o *Object) Position() mgl64.Vec3 {
	return o.body.State().Position
}

// Extents returns the half size of the object's collider.
func (o *Object) Extents() mgl64.Vec3 {
	return o.collider.Extents()
}

// UpdatePhysics advances the body by dt and moves the collider to the new
// position.
func (o *Object) UpdatePhysics(dt float64) {
	o.body.UpdatePhysics(dt)
	o.SyncCollider()
}

// SyncCollider copies the body position into the collider. Call it after
// moving the body outside UpdatePhysics.
func (o *Object) SyncCollider() {
	o.collider.SetPosition(o.body.State().Position)
}

// CollisionCheck returns the ids of the given objects this object overlaps.
// The object itself is always skipped.
func (o *Object) CollisionCheck(objects []*Object) []physics.ObjectID {
	candidates := make([]physics.Collider, 0, len(objects))
	for _, other := range objects {
		if other.id == o.id {
			continue
		}
		candidates = append(candidates, other.collider)
	}
	var cm physics.CollisionManager
	return cm.GetCollisions(o.collider, candidates)
}
