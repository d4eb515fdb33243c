package hologram

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"gonum.org/v1/gonum/spatial/r3"
)

// turnAnim holds active view tweens for yaw and pitch.
type turnAnim struct {
	yaw       *gween.Tween
	pitch     *gween.Tween
	doneYaw   bool
	donePitch bool
}

// Camera is a first-person viewer. Yaw 0 looks down +Z and grows
// clockwise seen from above; positive pitch looks down. Angles are in
// degrees.
type Camera struct {
	Position Vec3
	Yaw      float64
	Pitch    float64
	// FOV is the vertical field of view in degrees.
	FOV float64

	turn *turnAnim
}

// NewCamera creates a camera at pos looking down +Z with a 70° field of
// view.
func NewCamera(pos Vec3) *Camera {
	return &Camera{Position: pos, FOV: 70}
}

// Look returns the unit view direction.
func (c *Camera) Look() Vec3 {
	ys, yc := math.Sincos(degToRad(c.Yaw))
	ps, pc := math.Sincos(degToRad(c.Pitch))
	return Vec3{X: -ys * pc, Y: -ps, Z: yc * pc}
}

// Ray returns the view ray through the screen center.
func (c *Camera) Ray() (origin, dir Vec3) {
	return c.Position, c.Look()
}

// basis returns the right and up vectors of the view.
func (c *Camera) basis() (fwd, right, up Vec3) {
	fwd = c.Look()
	right = r3.Cross(fwd, Vec3{Y: 1})
	if r3.Norm(right) < 1e-9 {
		// Looking straight up or down; fall back to yaw alone.
		ys, yc := math.Sincos(degToRad(c.Yaw))
		right = Vec3{X: -yc, Z: -ys}
	}
	right = r3.Unit(right)
	up = r3.Cross(right, fwd)
	return fwd, right, up
}

func (c *Camera) focal(screenH float64) float64 {
	return screenH / 2 / math.Tan(degToRad(c.FOV)/2)
}

// ScreenRay returns the ray through screen pixel (sx, sy) of a screenW by
// screenH viewport.
func (c *Camera) ScreenRay(sx, sy, screenW, screenH float64) (origin, dir Vec3) {
	fwd, right, up := c.basis()
	f := c.focal(screenH)
	dir = r3.Add(fwd, r3.Add(
		r3.Scale((sx-screenW/2)/f, right),
		r3.Scale(-(sy-screenH/2)/f, up),
	))
	return c.Position, r3.Unit(dir)
}

// Project maps a world point to screen coordinates. ok is false for points
// behind the near plane.
func (c *Camera) Project(w Vec3, screenW, screenH float64) (sx, sy float64, ok bool) {
	fwd, right, up := c.basis()
	rel := r3.Sub(w, c.Position)
	z := r3.Dot(rel, fwd)
	if z < 0.05 {
		return 0, 0, false
	}
	f := c.focal(screenH)
	return screenW/2 + r3.Dot(rel, right)*f/z, screenH/2 - r3.Dot(rel, up)*f/z, true
}

// AnglesToward returns the yaw and pitch that look from the camera at
// target.
func (c *Camera) AnglesToward(target Vec3) (yaw, pitch float64) {
	d := r3.Sub(target, c.Position)
	yaw = math.Atan2(-d.X, d.Z) * 180 / math.Pi
	pitch = -math.Atan2(d.Y, math.Hypot(d.X, d.Z)) * 180 / math.Pi
	return yaw, pitch
}

// LookAt points the camera at target immediately.
func (c *Camera) LookAt(target Vec3) {
	c.turn = nil
	c.Yaw, c.Pitch = c.AnglesToward(target)
}

// TurnTo eases the view to the given angles over duration seconds, taking
// the short way round in yaw.
func (c *Camera) TurnTo(yaw, pitch float64, duration float32, easeFn ease.TweenFunc) {
	delta := math.Remainder(yaw-c.Yaw, 360)
	c.turn = &turnAnim{
		yaw:   gween.New(float32(c.Yaw), float32(c.Yaw+delta), duration, easeFn),
		pitch: gween.New(float32(c.Pitch), float32(pitch), duration, easeFn),
	}
}

// TurnToward eases the view toward target.
func (c *Camera) TurnToward(target Vec3, duration float32, easeFn ease.TweenFunc) {
	yaw, pitch := c.AnglesToward(target)
	c.TurnTo(yaw, pitch, duration, easeFn)
}

// Turning reports whether a TurnTo is in progress.
func (c *Camera) Turning() bool { return c.turn != nil }

// Update advances view tweens by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.turn == nil {
		return
	}
	if !c.turn.doneYaw {
		val, done := c.turn.yaw.Update(dt)
		c.Yaw = float64(val)
		c.turn.doneYaw = done
	}
	if !c.turn.donePitch {
		val, done := c.turn.pitch.Update(dt)
		c.Pitch = float64(val)
		c.turn.donePitch = done
	}
	if c.turn.doneYaw && c.turn.donePitch {
		c.turn = nil
	}
}
