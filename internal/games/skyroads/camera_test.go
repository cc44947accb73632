package skyroads

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-skyroads/internal/config"
)

func TestCameraFOVFollowsSpeed(t *testing.T) {
	cam := NewCamera(config.RunnerCamera{Mode: "third", MinFOV: 60, MaxFOV: 90, OffsetY: 0.5, OffsetZ: 3.5})

	tests := []struct {
		speed float64
		want  float64
	}{
		{4, 60},
		{16, 90},
		{10, 75},
		{7, 67.5},
		{100, 90}, // Clamped
	}
	for _, tt := range tests {
		cam.Follow(mgl64.Vec3{}, tt.speed, 4, 16)
		if cam.FOV != tt.want {
			t.Errorf("speed %v: FOV = %v, expected %v", tt.speed, cam.FOV, tt.want)
		}
	}
}

func TestCameraModes(t *testing.T) {
	cam := NewCamera(config.RunnerCamera{Mode: "first", MinFOV: 60, MaxFOV: 90, OffsetY: 0.5, OffsetZ: 3.5})
	if cam.Mode != FirstPerson || cam.ShowsPlayer() {
		t.Fatalf("mode = %v", cam.Mode)
	}

	player := mgl64.Vec3{1, 0.25, -10}
	cam.Follow(player, 4, 4, 16)
	if cam.Eye != player {
		t.Errorf("first person eye = %v", cam.Eye)
	}

	cam.Toggle()
	cam.Follow(player, 4, 4, 16)
	if cam.Eye != (mgl64.Vec3{1, 0.75, -6.5}) {
		t.Errorf("third person eye = %v", cam.Eye)
	}
	if cam.Mode.String() != "3rd" || FirstPerson.String() != "1st" {
		t.Error("unexpected mode names")
	}
}

func TestProjectorVisibility(t *testing.T) {
	cam := NewCamera(config.RunnerCamera{Mode: "third", MinFOV: 60, MaxFOV: 90, OffsetY: 0.5, OffsetZ: 3.5})
	cam.Follow(mgl64.Vec3{0, 0.25, 0}, 4, 4, 16)
	proj := newProjector(cam, 80, 24)

	// A point on the road ahead lands below the screen center.
	x, y, ok := proj.project(mgl64.Vec3{0, 0, -10})
	if !ok {
		t.Fatal("point ahead should be visible")
	}
	if x < 39 || x > 41 {
		t.Errorf("centered point at x = %v", x)
	}
	if y <= 12 {
		t.Errorf("road point should be below the center row, y = %v", y)
	}

	// Further points approach the horizon.
	_, yFar, _ := proj.project(mgl64.Vec3{0, 0, -100})
	if yFar >= y {
		t.Errorf("far point y = %v should be above near point y = %v", yFar, y)
	}

	if _, _, ok := proj.project(mgl64.Vec3{0, 0, 10}); ok {
		t.Error("point behind the camera should not project")
	}
}

func TestCameraLookIsClamped(t *testing.T) {
	cam := NewCamera(config.RunnerCamera{Mode: "third", MinFOV: 60, MaxFOV: 90, OffsetY: 0.5, OffsetZ: 3.5})

	for i := 0; i < 50; i++ {
		cam.Look(LookStep, LookStep)
	}
	if cam.Pitch != MaxPitch || cam.Yaw != MaxYaw {
		t.Errorf("pitch/yaw = %v/%v, expected %v/%v", cam.Pitch, cam.Yaw, MaxPitch, MaxYaw)
	}

	for i := 0; i < 100; i++ {
		cam.Look(-LookStep, -LookStep)
	}
	if cam.Pitch != -MaxPitch || cam.Yaw != -MaxYaw {
		t.Errorf("pitch/yaw = %v/%v, expected %v/%v", cam.Pitch, cam.Yaw, -MaxPitch, -MaxYaw)
	}

	cam.Toggle()
	if cam.Pitch != 0 || cam.Yaw != 0 {
		t.Errorf("toggle should recenter the view, pitch/yaw = %v/%v", cam.Pitch, cam.Yaw)
	}
}

func TestCameraLookMovesTarget(t *testing.T) {
	player := mgl64.Vec3{0, 0.25, -10}
	base := NewCamera(config.RunnerCamera{Mode: "first", MinFOV: 60, MaxFOV: 90})
	base.Follow(player, 4, 4, 16)

	tests := []struct {
		name       string
		pitch, yaw float64
		check      func(target mgl64.Vec3) bool
	}{
		{"up", 0.1, 0, func(v mgl64.Vec3) bool { return v.Y() > base.Target.Y() }},
		{"down", -0.1, 0, func(v mgl64.Vec3) bool { return v.Y() < base.Target.Y() }},
		{"left", 0, 0.1, func(v mgl64.Vec3) bool { return v.X() < base.Target.X() }},
		{"right", 0, -0.1, func(v mgl64.Vec3) bool { return v.X() > base.Target.X() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := base
			cam.Look(tt.pitch, tt.yaw)
			cam.Follow(player, 4, 4, 16)
			if !tt.check(cam.Target) {
				t.Errorf("target = %v, unrotated %v", cam.Target, base.Target)
			}
			if cam.Eye != base.Eye {
				t.Errorf("looking should not move the eye: %v vs %v", cam.Eye, base.Eye)
			}
		})
	}
}
