package hologram

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// panelFrame maps between world space and a panel's centered 2D frame,
// where X runs along the panel face, Y points down and units are panel
// units.
//
// Composition order (world to local):
//
//	Translate(-anchor) -> RotateY(180° - yaw) -> Scale(1/scale) -> FlipY
//
// The vertical flip matches the renderer, which draws panels with a
// negative vertical scale so text reads upright.
type panelFrame struct {
	anchor   Vec3
	normal   Vec3
	cos, sin float64
	scale    float64
}

func frameOf(p *Panel) panelFrame {
	theta := degToRad(180 - p.yaw)
	sin, cos := math.Sincos(theta)
	return panelFrame{
		anchor: p.anchor,
		normal: panelNormal(p.yaw),
		cos:    cos,
		sin:    sin,
		scale:  p.scale,
	}
}

// panelNormal returns the unit normal of a panel with the given yaw. Only
// yaw contributes: panels never tilt.
func panelNormal(yawDeg float64) Vec3 {
	sin, cos := math.Sincos(degToRad(yawDeg))
	return Vec3{X: -sin, Y: 0, Z: cos}
}

// worldToLocal returns centered panel coordinates of w. depth is the
// signed distance from the plane in panel units.
func (f panelFrame) worldToLocal(w Vec3) (x, y, depth float64) {
	t := r3.Sub(w, f.anchor)
	inv := 1 / f.scale
	rx := t.X*f.cos - t.Z*f.sin
	rz := t.X*f.sin + t.Z*f.cos
	return rx * inv, -t.Y * inv, rz * inv
}

// localToWorld is the inverse of worldToLocal for points on the plane.
func (f panelFrame) localToWorld(x, y float64) Vec3 {
	rx := x * f.scale
	return r3.Add(f.anchor, Vec3{
		X: rx * f.cos,
		Y: -y * f.scale,
		Z: -rx * f.sin,
	})
}

// WorldToLocal converts a world point to the panel's centered coordinates
// (origin at the anchor, Y down). Points off the plane are projected along
// the normal.
func (p *Panel) WorldToLocal(w Vec3) (x, y float64) {
	x, y, _ = frameOf(p).worldToLocal(w)
	return x, y
}

// LocalToWorld converts centered panel coordinates to a world point on the
// panel plane.
func (p *Panel) LocalToWorld(x, y float64) Vec3 {
	return frameOf(p).localToWorld(x, y)
}

// ControlToWorld converts a point in padding-adjusted control space (the
// space of Bounds) to world space.
func (p *Panel) ControlToWorld(x, y float64) Vec3 {
	return p.LocalToWorld(x+p.padding-p.width/2, y+p.padding-p.height/2)
}

// Normal returns the panel's unit normal.
func (p *Panel) Normal() Vec3 { return panelNormal(p.yaw) }
