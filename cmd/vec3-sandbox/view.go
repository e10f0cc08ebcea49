package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lamar/vmath"
)

const (
	hudRows  = 2
	focalLen = 4.0
	camDist  = 3.0
)

var axisNames = [3]string{"x", "y", "z"}

// sandbox holds the operands under edit
type sandbox struct {
	a, b    vmath.Vec3[float64]
	s       float64
	operand int // 0 = a, 1 = b
	axis    int // 0 = X, 1 = Y, 2 = Z
	step    float64
	yaw     float64
}

type row struct {
	label string
	value string
}

func fmtVec(v vmath.Vec3[float64]) string {
	return fmt.Sprintf("(%.4g, %.4g, %.4g)", v.X, v.Y, v.Z)
}

// rows evaluates every operation for the current operands
func (sb *sandbox) rows() []row {
	a, b, s := sb.a, sb.b, sb.s
	return []row{
		{"a + b", fmtVec(a.Add(b))},
		{"a - b", fmtVec(a.Sub(b))},
		{"a * b  (cross)", fmtVec(a.Mul(b))},
		{"a . b", fmt.Sprintf("%.4g", a.Dot(b))},
		{"a + s", fmtVec(a.AddScalar(s))},
		{"a - s", fmtVec(a.SubScalar(s))},
		{"a * s", fmtVec(a.Scale(s))},
		{"a / s", fmtVec(a.Div(s))},
	}
}

// adjust shifts the selected component of the selected operand
func (sb *sandbox) adjust(sign float64) {
	if sb.operand == 0 {
		sb.a = withAxis(sb.a, sb.axis, sign*sb.step)
	} else {
		sb.b = withAxis(sb.b, sb.axis, sign*sb.step)
	}
}

// fitScale returns the largest absolute component across vs, 1 if all zero
func fitScale(vs ...vmath.Vec3[float64]) float64 {
	m := 0.0
	for _, v := range vs {
		m = math.Max(m, math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z))))
	}
	if m == 0 || math.IsInf(m, 0) || math.IsNaN(m) {
		return 1
	}
	return m
}

// project maps a unit-fitted point to screen cells, rotating about Y by yaw
// Returns ok=false when the point falls behind the camera
func project(p vmath.Vec3[float64], yaw float64, screenW, screenH int) (sx, sy int, ok bool) {
	sin, cos := math.Sincos(yaw)
	rx := p.Dot(vmath.New(cos, 0, sin))
	rz := p.Dot(vmath.New(-sin, 0, cos))

	denom := rz + camDist
	if denom < 0.2 {
		return 0, 0, false
	}
	inv := focalLen / denom

	viewH := float64(screenH - hudRows)
	scale := viewH * 0.12

	// 2x horizontal for terminal cell aspect 1:2
	fx := float64(screenW)/2.0 + rx*inv*scale*2.0
	fy := viewH/2.0 - p.Y*inv*scale
	if !onScreen(fx, screenW) || !onScreen(fy, screenH) {
		return 0, 0, false
	}
	return int(math.Round(fx)), int(math.Round(fy)), true
}

// onScreen rejects NaN, Inf and coordinates far outside the viewport
func onScreen(f float64, size int) bool {
	return f >= -float64(size) && f <= 2*float64(size)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRay draws a line from the projected origin to the projected tip
func drawRay(s tcell.Screen, tip vmath.Vec3[float64], yaw float64, w, h int, glyph rune, style tcell.Style) {
	x0, y0, ok0 := project(vmath.Zero[float64](), yaw, w, h)
	x1, y1, ok1 := project(tip, yaw, w, h)
	if !ok0 || !ok1 {
		return
	}

	steps := max(abs(x1-x0), abs(y1-y0))
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(math.Round(float64(x1-x0)*t))
		y := y0 + int(math.Round(float64(y1-y0)*t))
		if y < h-hudRows {
			s.SetContent(x, y, '·', nil, style)
		}
	}
	if y1 < h-hudRows {
		s.SetContent(x1, y1, glyph, nil, style.Bold(true))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (sb *sandbox) draw(s tcell.Screen) {
	s.Clear()
	w, h := s.Size()

	dim := tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 100, 110))
	styleA := tcell.StyleDefault.Foreground(tcell.NewRGBColor(40, 180, 255))
	styleB := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 60, 120))
	styleC := tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 255, 80))

	// Rays, fitted so the longest component spans one unit
	cross := sb.a.Mul(sb.b)
	fit := fitScale(sb.a, sb.b, cross)
	drawRay(s, sb.a.Div(fit), sb.yaw, w, h, 'a', styleA)
	drawRay(s, sb.b.Div(fit), sb.yaw, w, h, 'b', styleB)
	drawRay(s, cross.Div(fit), sb.yaw, w, h, 'c', styleC)
	if ox, oy, ok := project(vmath.Zero[float64](), sb.yaw, w, h); ok {
		s.SetContent(ox, oy, '+', nil, dim)
	}

	// Operand panel
	y := 0
	for i, v := range [2]vmath.Vec3[float64]{sb.a, sb.b} {
		style := styleA
		name := "a"
		if i == 1 {
			style, name = styleB, "b"
		}
		marker := "  "
		if i == sb.operand {
			marker = "> "
		}
		drawText(s, 1, y, marker+name, style.Bold(i == sb.operand))
		y++
		for _, line := range strings.Split(v.String(), "\n") {
			drawText(s, 3, y, line, style)
			y++
		}
	}
	drawText(s, 1, y, fmt.Sprintf("  s = %.4g", sb.s), dim)
	y += 2

	for _, r := range sb.rows() {
		style := tcell.StyleDefault
		if r.label == "a * b  (cross)" {
			style = styleC
		}
		drawText(s, 1, y, fmt.Sprintf("%-15s %s", r.label, r.value), style)
		y++
	}

	status := fmt.Sprintf("operand=%s axis=%s step=%.3g", [2]string{"a", "b"}[sb.operand], axisNames[sb.axis], sb.step)
	drawText(s, 1, h-2, status, dim)
	drawText(s, 1, h-1, "1/2:operand  x/y/z:axis  up/dn:adjust  +/-:scalar  r:reset  q:quit", dim)

	s.Show()
}
