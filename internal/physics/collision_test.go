package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSphereSphereOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Collider
		expected bool
	}{
		{
			name:     "overlapping",
			a:        NewSphere(1, mgl64.Vec3{0, 0, 0}, 1),
			b:        NewSphere(2, mgl64.Vec3{1.5, 0, 0}, 1),
			expected: true,
		},
		{
			name:     "touching counts",
			a:        NewSphere(1, mgl64.Vec3{0, 0, 0}, 1),
			b:        NewSphere(2, mgl64.Vec3{2, 0, 0}, 1),
			expected: true,
		},
		{
			name:     "separated",
			a:        NewSphere(1, mgl64.Vec3{0, 0, 0}, 1),
			b:        NewSphere(2, mgl64.Vec3{2.5, 0, 0}, 1),
			expected: false,
		},
		{
			name:     "diagonal touching",
			a:        NewSphere(1, mgl64.Vec3{0, 0, 0}, 2),
			b:        NewSphere(2, mgl64.Vec3{3, 4, 0}, 3),
			expected: true,
		},
		{
			name:     "same center",
			a:        NewSphere(1, mgl64.Vec3{1, 1, 1}, 0.1),
			b:        NewSphere(2, mgl64.Vec3{1, 1, 1}, 0.2),
			expected: true,
		},
		{
			name:     "zero radius points apart",
			a:        NewSphere(1, mgl64.Vec3{0, 0, 0}, 0),
			b:        NewSphere(2, mgl64.Vec3{0, 0, 1}, 0),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := Overlaps(tc.b, tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxBoxOverlaps(t *testing.T) {
	half := mgl64.Vec3{0.5, 0.5, 0.5}

	tests := []struct {
		name     string
		a, b     Collider
		expected bool
	}{
		{
			name:     "overlapping",
			a:        NewBox(1, mgl64.Vec3{0, 0, 0}, half),
			b:        NewBox(2, mgl64.Vec3{0.5, 0.5, 0.5}, half),
			expected: true,
		},
		{
			name:     "adjacent faces count",
			a:        NewBox(1, mgl64.Vec3{0, 0, 0}, half),
			b:        NewBox(2, mgl64.Vec3{1, 0, 0}, half),
			expected: true,
		},
		{
			name:     "shared corner counts",
			a:        NewBox(1, mgl64.Vec3{0, 0, 0}, half),
			b:        NewBox(2, mgl64.Vec3{1, 1, 1}, half),
			expected: true,
		},
		{
			name:     "separated on z only",
			a:        NewBox(1, mgl64.Vec3{0, 0, 0}, half),
			b:        NewBox(2, mgl64.Vec3{0, 0, 1.25}, half),
			expected: false,
		},
		{
			name:     "contained",
			a:        NewBox(1, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{5, 5, 5}),
			b:        NewBox(2, mgl64.Vec3{1, -1, 2}, half),
			expected: true,
		},
		{
			name:     "long platform under sphere-sized box",
			a:        NewBox(1, mgl64.Vec3{0, -0.125, -10}, mgl64.Vec3{0.5, 0.125, 10}),
			b:        NewBox(2, mgl64.Vec3{0, 0.5, -19}, half),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := Overlaps(tc.b, tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxBoxAxisOrderInvariant(t *testing.T) {
	// Rotating the coordinates permutes which axis is tested first.
	permute := func(v mgl64.Vec3, p [3]int) mgl64.Vec3 {
		return mgl64.Vec3{v[p[0]], v[p[1]], v[p[2]]}
	}
	perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	pairs := []struct {
		ca, ha, cb, hb mgl64.Vec3
	}{
		{mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 2, 3}, mgl64.Vec3{2, 0, 0}, mgl64.Vec3{1, 1, 1}},
		{mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 2, 3}, mgl64.Vec3{2.5, 0, 0}, mgl64.Vec3{1, 1, 1}},
		{mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{0.9, 0.9, 1.1}, mgl64.Vec3{0.5, 0.5, 0.5}},
	}

	for i, p := range pairs {
		want := Overlaps(NewBox(1, p.ca, p.ha), NewBox(2, p.cb, p.hb))
		for _, perm := range perms {
			a := NewBox(1, permute(p.ca, perm), permute(p.ha, perm))
			b := NewBox(2, permute(p.cb, perm), permute(p.hb, perm))
			if got := Overlaps(a, b); got != want {
				t.Errorf("pair %d perm %v: Overlaps() = %v, expected %v", i, perm, got, want)
			}
		}
	}
}

func TestSphereBoxOverlaps(t *testing.T) {
	half := mgl64.Vec3{0.5, 0.5, 0.5}
	sphere := NewSphere(1, mgl64.Vec3{0, 0, 0}, 0.5)

	tests := []struct {
		name     string
		box      Collider
		expected bool
	}{
		{"face touching", NewBox(2, mgl64.Vec3{1, 0, 0}, half), true},
		{"just apart on x", NewBox(2, mgl64.Vec3{1.01, 0, 0}, half), false},
		{"center inside box", NewBox(2, mgl64.Vec3{0.2, 0.1, 0}, half), true},
		{"near corner but outside", NewBox(2, mgl64.Vec3{0.9, 0.9, 0}, half), false},
		{"corner within radius", NewBox(2, mgl64.Vec3{0.8, 0.8, 0}, half), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(sphere, tc.box); got != tc.expected {
				t.Errorf("Overlaps(sphere, box) = %v, expected %v", got, tc.expected)
			}
			if got := Overlaps(tc.box, sphere); got != tc.expected {
				t.Errorf("Overlaps(box, sphere) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClosestPointOnBox(t *testing.T) {
	got := ClosestPointOnBox(mgl64.Vec3{3, 0.2, -4}, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	want := mgl64.Vec3{1, 0.2, -1}
	if got != want {
		t.Errorf("ClosestPointOnBox() = %v, expected %v", got, want)
	}
}

func TestGetCollisions(t *testing.T) {
	subject := NewSphere(0, mgl64.Vec3{0, 0, 0}, 0.5)
	candidates := []Collider{
		NewBox(7, mgl64.Vec3{5, 0, 0}, mgl64.Vec3{0.5, 0.5, 0.5}),
		NewBox(3, mgl64.Vec3{0.9, 0, 0}, mgl64.Vec3{0.5, 0.5, 0.5}),
		NewSphere(9, mgl64.Vec3{0, 3, 0}, 1),
	}

	hits := GetCollisions(subject, candidates)
	if len(hits) != 1 || hits[0] != 3 {
		t.Errorf("GetCollisions() = %v, expected [3]", hits)
	}
}

func TestGetCollisionsKeepsCandidateOrder(t *testing.T) {
	subject := NewBox(0, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 10, 10})
	candidates := []Collider{
		NewSphere(5, mgl64.Vec3{1, 0, 0}, 1),
		NewSphere(2, mgl64.Vec3{2, 0, 0}, 1),
		NewSphere(8, mgl64.Vec3{30, 0, 0}, 1),
		NewBox(1, mgl64.Vec3{-3, 0, 0}, mgl64.Vec3{1, 1, 1}),
	}

	var m CollisionManager
	hits := m.GetCollisions(subject, candidates)
	want := []ObjectID{5, 2, 1}
	if len(hits) != len(want) {
		t.Fatalf("GetCollisions() = %v, expected %v", hits, want)
	}
	for i := range want {
		if hits[i] != want[i] {
			t.Errorf("hits[%d] = %d, expected %d", i, hits[i], want[i])
		}
	}
}

func TestGetCollisionsEmpty(t *testing.T) {
	subject := NewSphere(0, mgl64.Vec3{0, 0, 0}, 1)

	if hits := GetCollisions(subject, nil); len(hits) != 0 {
		t.Errorf("GetCollisions(nil) = %v, expected empty", hits)
	}

	far := []Collider{NewSphere(1, mgl64.Vec3{10, 0, 0}, 1)}
	if hits := GetCollisions(subject, far); len(hits) != 0 {
		t.Errorf("GetCollisions(far) = %v, expected empty", hits)
	}
}

func TestGetCollisionsDoesNotExcludeSubject(t *testing.T) {
	subject := NewSphere(4, mgl64.Vec3{0, 0, 0}, 1)

	hits := GetCollisions(subject, []Collider{subject})
	if len(hits) != 1 || hits[0] != 4 {
		t.Errorf("GetCollisions() = %v, expected the subject's own id", hits)
	}
}

func TestZeroColliderNeverOverlaps(t *testing.T) {
	var zero Collider
	s := NewSphere(1, mgl64.Vec3{0, 0, 0}, 1)

	if Overlaps(zero, s) || Overlaps(s, zero) || Overlaps(zero, zero) {
		t.Error("a collider without a shape should never overlap")
	}
}
