package engine

import (
	"io"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-skyroads/internal/physics"
)

// World is the simulation context: it hands out ids and owns all objects.
// It is not safe for concurrent use; the frame loop drives it from a single
// goroutine.
type World struct {
	nextID  physics.ObjectID
	objects map[physics.ObjectID]*Object
	order   []physics.ObjectID
	gravity mgl64.Vec3
	logger  *log.Logger
}

// WorldOption configures a World.
type WorldOption func(*World)

// WithLogger sets the logger used for debug events.
func WithLogger(l *log.Logger) WorldOption {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithWorldGravity sets the gravity given to every spawned body.
func WithWorldGravity(g mgl64.Vec3) WorldOption {
	return func(w *World) {
		w.gravity = g
	}
}

// NewWorld creates an empty world.
func NewWorld(opts ...WorldOption) *World {
	w := &World{
		objects: make(map[physics.ObjectID]*Object),
		gravity: physics.DefaultGravity,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NextID reserves and returns the next object id. Ids start at zero and only
// ever increase.
func (w *World) NextID() physics.ObjectID {
	id := w.nextID
	w.nextID++
	return id
}

// Spawn creates an object with a fresh id, a collider of the given shape at
// the state's position and a rigid body owning the state. A nil shape gives
// a collider that never overlaps anything; it is logged as a warning.
func (w *World) Spawn(tag string, shape physics.Shape, state physics.State, opts ...physics.Option) *Object {
	id := w.NextID()

	collider := physics.NewCollider(id, state.Position, shape)
	if collider.Shape() == nil {
		w.logger.Warn("spawned object without a shape", "id", id, "tag", tag)
	}

	bodyOpts := append([]physics.Option{physics.WithGravity(w.gravity)}, opts...)
	obj := &Object{
		id:       id,
		tag:      tag,
		collider: collider,
		body:     physics.NewRigidBody(state, bodyOpts...),
	}

	w.objects[id] = obj
	w.order = append(w.order, id)
	w.logger.Debug("spawned object", "id", id, "tag", tag)
	return obj
}

// Get looks up an object. ok is false for unknown or removed ids.
func (w *World) Get(id physics.ObjectID) (obj *Object, ok bool) {
	obj, ok = w.objects[id]
	if !ok {
		w.logger.Debug("object lookup miss", "id", id)
	}
	return obj, ok
}

// Remove destroys an object together with its collider and body.
// Removing an unknown id is a no-op.
func (w *World) Remove(id physics.ObjectID) {
	if _, ok := w.objects[id]; !ok {
		return
	}
	delete(w.objects, id)

	i := sort.Search(len(w.order), func(i int) bool { return w.order[i] >= id })
	if i < len(w.order) && w.order[i] == id {
		w.order = append(w.order[:i], w.order[i+1:]...)
	}
	w.logger.Debug("removed object", "id", id)
}

// Len returns the number of live objects.
func (w *World) Len() int {
	return len(w.order)
}

// Objects returns all live objects in id order.
func (w *World) Objects() []*Object {
	out := make([]*Object, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.objects[id])
	}
	return out
}

// Step integrates every object by dt and syncs its collider.
func (w *World) Step(dt float64) {
	for _, id := range w.order {
		w.objects[id].UpdatePhysics(dt)
	}
}

// Collisions returns the ids of every other object overlapping obj, in id order.
func (w *World) Collisions(obj *Object) []physics.ObjectID {
	return obj.CollisionCheck(w.Objects())
}
