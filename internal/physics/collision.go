package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CollisionManager runs narrow-phase overlap queries.
// It holds no state, so one value may serve any number of queries,
// including from several goroutines.
type CollisionManager struct{}

// GetCollisions returns the owners of every candidate overlapping subject,
// in candidate order. The subject is not filtered out of candidates; callers
// exclude it themselves.
func (CollisionManager) GetCollisions(subject Collider, candidates []Collider) []ObjectID {
	return GetCollisions(subject, candidates)
}

// GetCollisions is the package-level form of CollisionManager.GetCollisions.
func GetCollisions(subject Collider, candidates []Collider) []ObjectID {
	var hits []ObjectID
	for _, c := range candidates {
		if Overlaps(subject, c) {
			hits = append(hits, c.owner)
		}
	}
	return hits
}

// Overlaps reports whether two colliders touch or intersect.
// Touching counts as overlapping and the verdict does not depend on
// argument order.
func Overlaps(a, b Collider) bool {
	switch sa := a.shape.(type) {
	case Sphere:
		switch sb := b.shape.(type) {
		case Sphere:
			return sphereSphere(a.position, sa.Radius, b.position, sb.Radius)
		case Box:
			return sphereBox(a.position, sa.Radius, b.position, sb.HalfDims)
		}
	case Box:
		switch sb := b.shape.(type) {
		case Sphere:
			return sphereBox(b.position, sb.Radius, a.position, sa.HalfDims)
		case Box:
			return boxBox(a.position, sa.HalfDims, b.position, sb.HalfDims)
		}
	}
	return false
}

func sphereSphere(ca mgl64.Vec3, ra float64, cb mgl64.Vec3, rb float64) bool {
	sum := ra + rb
	return ca.Sub(cb).LenSqr() <= sum*sum
}

func boxBox(ca, ha, cb, hb mgl64.Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		if math.Abs(ca[axis]-cb[axis]) > ha[axis]+hb[axis] {
			return false
		}
	}
	return true
}

func sphereBox(center mgl64.Vec3, radius float64, boxCenter, half mgl64.Vec3) bool {
	closest := ClosestPointOnBox(center, boxCenter, half)
	return center.Sub(closest).LenSqr() <= radius*radius
}

// ClosestPointOnBox clamps p into the box centered at boxCenter with the
// given half dimensions.
func ClosestPointOnBox(p, boxCenter, half mgl64.Vec3) mgl64.Vec3 {
	var q mgl64.Vec3
	for axis := 0; axis < 3; axis++ {
		lo := boxCenter[axis] - half[axis]
		hi := boxCenter[axis] + half[axis]
		q[axis] = math.Max(lo, math.Min(hi, p[axis]))
	}
	return q
}
