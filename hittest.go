package hologram

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultMaxRayDistance is the longest ray considered by the controller.
const DefaultMaxRayDistance = 50

// parallelEpsilon rejects rays that graze the panel plane.
const parallelEpsilon = 1e-4

// Hit is the result of a ray meeting a panel.
type Hit struct {
	Panel *Panel
	// Control is the control under the ray, or nil when the ray lands on
	// padding, spacing or empty space.
	Control Control
	// Point is the world-space intersection.
	Point Vec3
	// Distance is the ray length from the origin to Point.
	Distance float64
	// LocalX and LocalY are centered panel coordinates (origin at the
	// anchor, Y down).
	LocalX, LocalY float64
	// PanelX and PanelY are top-left panel coordinates.
	PanelX, PanelY float64
}

// ControlX returns the pointer X in the hit control's own space, where 0
// is its left edge.
func (h Hit) ControlX() float64 {
	if h.Control == nil {
		return 0
	}
	return h.PanelX - h.Panel.padding - h.Control.Bounds().X
}

// rayPlane intersects a ray with the plane of p. dir must be a unit
// vector.
func rayPlane(p *Panel, origin, dir Vec3, maxDistance float64) (point Vec3, t float64, ok bool) {
	n := panelNormal(p.yaw)
	denom := r3.Dot(dir, n)
	if math.Abs(denom) < parallelEpsilon {
		return Vec3{}, 0, false
	}
	t = r3.Dot(r3.Sub(p.anchor, origin), n) / denom
	if t < 0 || t > maxDistance {
		return Vec3{}, 0, false
	}
	return r3.Add(origin, r3.Scale(t, dir)), t, true
}

// IntersectPanel casts a ray against a single panel. It returns false for
// invisible panels, panels beyond reach, parallel rays, hits behind the
// origin and hits outside the panel rectangle. A true result may still
// carry a nil Control.
func IntersectPanel(p *Panel, origin, dir Vec3, maxDistance float64) (Hit, bool) {
	if p == nil || !p.Visible() || p.scale <= 0 {
		return Hit{}, false
	}
	reach := math.Min(maxDistance, p.maxVisibleDistance)
	if distance(origin, p.anchor) > reach {
		return Hit{}, false
	}
	dir = unit(dir)
	if dir == (Vec3{}) {
		return Hit{}, false
	}
	point, t, ok := rayPlane(p, origin, dir, maxDistance)
	if !ok {
		return Hit{}, false
	}

	lx, ly, _ := frameOf(p).worldToLocal(point)
	hw, hh := p.width/2, p.height/2
	if lx < -hw || lx > hw || ly < -hh || ly > hh {
		return Hit{}, false
	}
	h := Hit{
		Panel:    p,
		Point:    point,
		Distance: t,
		LocalX:   lx,
		LocalY:   ly,
		PanelX:   lx + hw,
		PanelY:   ly + hh,
	}
	h.Control = p.controlAt(h.PanelX-p.padding, h.PanelY-p.padding)
	return h, true
}

// controlAt finds the row containing (x, y) in padding-adjusted space.
// Spacing between rows belongs to no control.
func (p *Panel) controlAt(x, y float64) Control {
	if x < 0 || y < 0 {
		return nil
	}
	avail := p.width - p.padding*2
	rowY := 0.0
	for _, c := range p.controls {
		h := c.Height()
		if y >= rowY && y < rowY+h {
			left := p.alignment.offset(avail, c.Width())
			if x >= left && x < left+c.Width() {
				return c
			}
			return nil
		}
		rowY += h + p.spacing
	}
	return nil
}

// Intersect casts a ray against every panel and returns the nearest hit.
// Panels are tested in slice order and a later panel must be strictly
// closer to win, so equal distances resolve to the earliest panel.
func Intersect(origin, dir Vec3, panels []*Panel, maxDistance float64) (Hit, bool) {
	var best Hit
	found := false
	for _, p := range panels {
		h, ok := IntersectPanel(p, origin, dir, maxDistance)
		if !ok {
			continue
		}
		if !found || h.Distance < best.Distance {
			best = h
			found = true
		}
	}
	return best, found
}

// ProjectOntoPanel intersects the ray with the plane of p without the
// rectangle or visibility checks and returns top-left panel coordinates.
// It keeps a drag alive after the pointer slides off the panel.
func ProjectOntoPanel(p *Panel, origin, dir Vec3, maxDistance float64) (panelX, panelY float64, ok bool) {
	if p == nil || p.scale <= 0 {
		return 0, 0, false
	}
	dir = unit(dir)
	if dir == (Vec3{}) {
		return 0, 0, false
	}
	point, _, ok := rayPlane(p, origin, dir, maxDistance)
	if !ok {
		return 0, 0, false
	}
	lx, ly, _ := frameOf(p).worldToLocal(point)
	return lx + p.width/2, ly + p.height/2, true
}

func unit(v Vec3) Vec3 {
	if r3.Norm(v) == 0 {
		return Vec3{}
	}
	return r3.Unit(v)
}
