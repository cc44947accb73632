package skyroads

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-skyroads/internal/core"
)

// Visual characters for rendering
const (
	TopChar    = '█'
	FrontChar  = '▓'
	BallChar   = '●'
	StarChar   = '.'
	FuelFull   = '█'
	FuelEmpty  = '░'
	LifeChar   = '♥'
	fuelBarLen = 20
)

// clipDistance keeps clipped geometry just in front of the camera.
const clipDistance = 0.1

// edge is one horizontal screen span: a projected platform edge.
type edge struct {
	y     float64
	left  float64
	right float64
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	proj := newProjector(g.camera, dst.Width(), dst.Height())

	g.drawStars(dst, proj)

	// Painter's order: farthest platforms first.
	platforms := g.track.Platforms()
	sort.SliceStable(platforms, func(i, j int) bool {
		return platforms[i].Object.Position().Z() < platforms[j].Object.Position().Z()
	})
	for _, p := range platforms {
		g.drawPlatform(dst, proj, p)
	}

	if g.camera.ShowsPlayer() {
		g.drawBall(dst, proj)
	}

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("%s  |  Score: %d  |  Press R to restart", g.cause, g.score))
	}
}

// drawStars sprinkles a fixed star pattern above the horizon.
func (g *Game) drawStars(dst *core.Screen, proj projector) {
	horizon := dst.Height() / 2
	far := g.camera.Eye.Sub(mgl64.Vec3{0, g.camera.Eye.Y(), farPlane / 2})
	if _, y, ok := proj.project(far); ok {
		horizon = core.Clamp(int(y), 0, dst.Height())
	}

	for y := 1; y < horizon; y++ {
		for x := 0; x < dst.Width(); x++ {
			if (x*7+y*13)%47 == 0 {
				dst.SetColored(x, y, StarChar, core.ColorGray)
			}
		}
	}
}

// drawPlatform rasterizes a platform's top face and, below it, its front face.
func (g *Game) drawPlatform(dst *core.Screen, proj projector, p *Platform) {
	pos := p.Object.Position()
	half := p.Object.Extents()

	near := pos.Z() + half.Z()
	far := pos.Z() - half.Z()
	limit := g.camera.Eye.Z() - clipDistance
	if far >= limit {
		return // Entirely behind the camera
	}
	clipped := near > limit
	near = math.Min(near, limit)

	left, right := pos.X()-half.X(), pos.X()+half.X()
	top, bottom := pos.Y()+half.Y(), pos.Y()-half.Y()
	color := p.Color.ScreenColor()

	farTop, ok1 := projectEdge(proj, left, right, top, far)
	nearTop, ok2 := projectEdge(proj, left, right, top, near)
	if !ok1 || !ok2 {
		return
	}
	fillSpan(dst, farTop, nearTop, TopChar, color)

	// The front face is only visible when the real near edge is on screen.
	if clipped {
		return
	}
	nearBottom, ok := projectEdge(proj, left, right, bottom, near)
	if ok {
		fillSpan(dst, nearTop, nearBottom, FrontChar, color)
	}
}

// projectEdge projects the segment from (left, y, z) to (right, y, z). The
// camera never rolls and its yaw is small, so such segments stay close to
// horizontal on screen; the span takes the row of the left end.
func projectEdge(proj projector, left, right, y, z float64) (edge, bool) {
	lx, ly, ok1 := proj.project(mgl64.Vec3{left, y, z})
	rx, _, ok2 := proj.project(mgl64.Vec3{right, y, z})
	if !ok1 || !ok2 {
		return edge{}, false
	}
	return edge{y: ly, left: lx, right: rx}, true
}

// fillSpan fills the trapezoid between two horizontal edges, interpolating
// the left and right bounds per row. A trapezoid thinner than a row still
// covers one row.
func fillSpan(dst *core.Screen, a, b edge, r rune, c core.Color) {
	if a.y > b.y {
		a, b = b, a
	}
	h := float64(dst.Height())
	w := float64(dst.Width())

	y0 := int(math.Ceil(core.Clamp(a.y-0.5, -1, h)))
	y1 := int(math.Floor(core.Clamp(b.y-0.5, -1, h)))
	if y1 < y0 {
		y0 = int(math.Floor(core.Clamp(b.y, -1, h)))
		y1 = y0
	}
	y0 = max(y0, 0)
	y1 = min(y1, dst.Height()-1)

	for y := y0; y <= y1; y++ {
		t := 0.0
		if b.y != a.y {
			t = core.Clamp((float64(y)+0.5-a.y)/(b.y-a.y), 0, 1)
		}
		l := a.left + (b.left-a.left)*t
		rt := a.right + (b.right-a.right)*t

		x0 := int(math.Round(core.Clamp(l, -1, w)))
		x1 := int(math.Round(core.Clamp(rt, -1, w))) - 1
		if x1 < x0 {
			x1 = x0
		}
		x0 = max(x0, 0)
		x1 = min(x1, dst.Width()-1)
		dst.DrawHLine(x0, y, x1-x0+1, r, c)
	}
}

// drawBall draws the player as a filled ellipse sized by its distance.
func (g *Game) drawBall(dst *core.Screen, proj projector) {
	pos := g.player.Position()
	cx, cy, ok := proj.project(pos)
	if !ok {
		return
	}
	ex, _, ok := proj.project(pos.Add(mgl64.Vec3{g.cfg.Player.Radius, 0, 0}))
	if !ok {
		return
	}

	rx := math.Abs(ex - cx)
	ry := rx / 2 // Cells are twice as tall as wide
	if rx < 1 {
		dst.SetColored(int(cx), int(cy), BallChar, core.ColorCyan)
		return
	}

	y0 := int(math.Floor(core.Clamp(cy-ry, 0, float64(dst.Height()))))
	y1 := int(math.Ceil(core.Clamp(cy+ry, 0, float64(dst.Height()))))
	x0 := int(math.Floor(core.Clamp(cx-rx, 0, float64(dst.Width()))))
	x1 := int(math.Ceil(core.Clamp(cx+rx, 0, float64(dst.Width()))))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / math.Max(ry, 0.5)
			if dx*dx+dy*dy <= 1 {
				dst.SetColored(x, y, TopChar, core.ColorCyan)
			}
		}
	}
}

// drawHUD draws the status line on top and the fuel bar at the bottom.
func (g *Game) drawHUD(dst *core.Screen) {
	status := fmt.Sprintf(" Score: %d  Speed: %.1f  Cam: %s  FOV: %.1f ",
		g.score, g.speed, g.camera.Mode, g.camera.FOV)
	dst.DrawText(1, 0, status)

	lives := " " + strings.Repeat(string(LifeChar), max(g.lives, 0)) + " "
	dst.DrawTextColored(dst.Width()-len([]rune(lives))-1, 0, lives, core.ColorRed)

	bottom := dst.Height() - 1
	ratio := 0.0
	if g.cfg.Fuel.Max > 0 {
		ratio = core.Clamp(g.fuel/g.cfg.Fuel.Max, 0, 1)
	}
	filled := int(math.Round(ratio * fuelBarLen))

	fuelColor := core.ColorGreen
	switch {
	case ratio <= 0.25:
		fuelColor = core.ColorRed
	case ratio <= 0.5:
		fuelColor = core.ColorYellow
	}

	dst.DrawText(1, bottom, " Fuel [")
	bar := strings.Repeat(string(FuelFull), filled) + strings.Repeat(string(FuelEmpty), fuelBarLen-filled)
	dst.DrawTextColored(8, bottom, bar, fuelColor)
	dst.DrawText(8+fuelBarLen, bottom, fmt.Sprintf("] %3.0f%% ", ratio*100))

	if g.boostLeft > 0 {
		boost := fmt.Sprintf(" BOOST %.1fs ", g.boostLeft)
		dst.DrawTextColored(dst.Width()-len(boost)-1, bottom, boost, core.ColorOrange)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
