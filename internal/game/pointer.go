package game

import "math"

// The core never talks to the input backend directly. The owning surface
// polls whatever pointer device it has and hands the model one PointerFrame
// per tick, which keeps this package free of cgo just like the rest of the
// simulation state.

// Vec2 is a screen-space point.
type Vec2 struct {
	X, Y float32
}

// Rect is a screen-space rectangle.
type Rect struct {
	X, Y, W, H float32
}

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func distance(a, b Vec2) float32 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return float32(math.Sqrt(dx*dx + dy*dy))
}

// PointerFrame is one tick's worth of pointer input. Primary and Secondary
// are edge-down events, true only on the tick the button went down.
type PointerFrame struct {
	Pos       Vec2
	Primary   bool
	Secondary bool
}
