package hologram

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// facingPanel returns a panel 4 units down +Z facing a viewer at the
// origin.
func facingPanel(id string) *Panel {
	p := NewPanel(id)
	p.SetAnchor(Vec3{Z: 4})
	p.SetYaw(180)
	return p
}

// rayAt returns the direction from eye to top-left panel coordinates
// (px, py) of p.
func rayAt(p *Panel, eye Vec3, px, py float64) Vec3 {
	w := p.LocalToWorld(px-p.Width()/2, py-p.Height()/2)
	return r3.Sub(w, eye)
}

// --- IntersectPanel ---

func TestIntersectPanelCenter(t *testing.T) {
	p := facingPanel("menu")
	h, ok := IntersectPanel(p, Vec3{}, Vec3{Z: 1}, DefaultMaxRayDistance)
	if !ok {
		t.Fatal("expected hit")
	}
	assertNear(t, "LocalX", h.LocalX, 0)
	assertNear(t, "LocalY", h.LocalY, 0)
	assertNear(t, "PanelX", h.PanelX, 100)
	assertNear(t, "PanelY", h.PanelY, 50)
	assertNear(t, "Distance", h.Distance, 4)
	if h.Panel != p || h.Control != nil {
		t.Errorf("panel=%v control=%v", h.Panel, h.Control)
	}
}

func TestIntersectPanelUnnormalisedDirection(t *testing.T) {
	p := facingPanel("menu")
	h, ok := IntersectPanel(p, Vec3{}, Vec3{Z: 10}, DefaultMaxRayDistance)
	if !ok {
		t.Fatal("expected hit")
	}
	assertNear(t, "Distance", h.Distance, 4)
}

func TestIntersectPanelOffCenter(t *testing.T) {
	p := facingPanel("menu")
	h, ok := IntersectPanel(p, Vec3{}, rayAt(p, Vec3{}, 30, 70), DefaultMaxRayDistance)
	if !ok {
		t.Fatal("expected hit")
	}
	assertNear(t, "PanelX", h.PanelX, 30)
	assertNear(t, "PanelY", h.PanelY, 70)
}

func TestIntersectPanelRejects(t *testing.T) {
	tests := []struct {
		name   string
		panel  func() *Panel
		origin Vec3
		dir    Vec3
		reach  float64
	}{
		{"parallel", func() *Panel { return facingPanel("p") }, Vec3{}, Vec3{X: 1}, DefaultMaxRayDistance},
		{"behind", func() *Panel {
			p := facingPanel("p")
			p.SetAnchor(Vec3{Z: -4})
			return p
		}, Vec3{}, Vec3{Z: 1}, DefaultMaxRayDistance},
		{"beyond visible distance", func() *Panel {
			p := facingPanel("p")
			p.SetAnchor(Vec3{Z: 20})
			return p
		}, Vec3{}, Vec3{Z: 1}, DefaultMaxRayDistance},
		{"beyond ray reach", func() *Panel { return facingPanel("p") }, Vec3{}, Vec3{Z: 1}, 3},
		{"outside rectangle", func() *Panel { return facingPanel("p") }, Vec3{}, Vec3{X: 1, Z: 1}, DefaultMaxRayDistance},
		{"invisible", func() *Panel {
			p := facingPanel("p")
			p.SetVisible(false)
			return p
		}, Vec3{}, Vec3{Z: 1}, DefaultMaxRayDistance},
		{"zero direction", func() *Panel { return facingPanel("p") }, Vec3{}, Vec3{}, DefaultMaxRayDistance},
		{"failed conditions", func() *Panel {
			p := facingPanel("p")
			p.SetConditions(&VisibilityConditions{MinDistance: 5})
			p.evaluate(Vec3{})
			return p
		}, Vec3{}, Vec3{Z: 1}, DefaultMaxRayDistance},
	}
	for _, tt := range tests {
		if _, ok := IntersectPanel(tt.panel(), tt.origin, tt.dir, tt.reach); ok {
			t.Errorf("%s: unexpected hit", tt.name)
		}
	}
}

func TestIntersectPanelEdgeInclusive(t *testing.T) {
	p := facingPanel("menu")
	if _, ok := IntersectPanel(p, Vec3{}, rayAt(p, Vec3{}, 0.001, 0.001), DefaultMaxRayDistance); !ok {
		t.Error("point just inside the corner missed")
	}
	if _, ok := IntersectPanel(p, Vec3{}, rayAt(p, Vec3{}, 200.5, 50), DefaultMaxRayDistance); ok {
		t.Error("point past the right edge hit")
	}
}

func TestIntersectPanelRotated(t *testing.T) {
	// Yaw 90 faces -X; place it 3 units along +X and look from the origin.
	p := NewPanel("side")
	p.SetAnchor(Vec3{X: 3})
	p.SetYaw(90)
	h, ok := IntersectPanel(p, Vec3{}, Vec3{X: 1}, DefaultMaxRayDistance)
	if !ok {
		t.Fatal("expected hit on rotated panel")
	}
	assertNear(t, "Distance", h.Distance, 3)
	assertNear(t, "PanelX", h.PanelX, 100)

	h, ok = IntersectPanel(p, Vec3{}, rayAt(p, Vec3{}, 150, 20), DefaultMaxRayDistance)
	if !ok {
		t.Fatal("expected off-center hit")
	}
	assertNear(t, "PanelX", h.PanelX, 150)
	assertNear(t, "PanelY", h.PanelY, 20)
}

// --- control mapping ---

func TestIntersectPanelFindsControl(t *testing.T) {
	p := facingPanel("menu")
	btn := NewButton("ok", "OK")
	txt := NewText("label", "Hi")
	p.AddControl(btn)
	p.AddControl(txt)

	// button row spans padding-adjusted y [0, 20), panel y [8, 28)
	h, ok := IntersectPanel(p, Vec3{}, rayAt(p, Vec3{}, 98, 18), DefaultMaxRayDistance)
	if !ok || h.Control != btn {
		t.Fatalf("hit=%t control=%v, want button", ok, h.Control)
	}
	assertNear(t, "ControlX", h.ControlX(), 90)

	// spacing gap between rows
	h, ok = IntersectPanel(p, Vec3{}, rayAt(p, Vec3{}, 98, 30), DefaultMaxRayDistance)
	if !ok || h.Control != nil {
		t.Errorf("gap: hit=%t control=%v, want panel hit without control", ok, h.Control)
	}

	// text row starts at padding-adjusted y 24
	h, _ = IntersectPanel(p, Vec3{}, rayAt(p, Vec3{}, 20, 37), DefaultMaxRayDistance)
	if h.Control != txt {
		t.Errorf("control = %v, want text", h.Control)
	}

	// padding
	h, _ = IntersectPanel(p, Vec3{}, rayAt(p, Vec3{}, 4, 18), DefaultMaxRayDistance)
	if h.Control != nil {
		t.Errorf("padding hit control %v", h.Control)
	}

	// past the button's right edge
	h, _ = IntersectPanel(p, Vec3{}, rayAt(p, Vec3{}, 190, 18), DefaultMaxRayDistance)
	if h.Control != nil {
		t.Errorf("right of button hit control %v", h.Control)
	}
}

func TestIntersectPanelRespectsAlignment(t *testing.T) {
	p := facingPanel("menu")
	btn := NewButton("ok", "OK").SetSize(100, 20)
	p.AddControl(btn)
	p.SetAlignment(AlignCenter) // button at x [42, 142)

	h, _ := IntersectPanel(p, Vec3{}, rayAt(p, Vec3{}, 8+30, 18), DefaultMaxRayDistance)
	if h.Control != nil {
		t.Error("left of centered button should miss it")
	}
	h, _ = IntersectPanel(p, Vec3{}, rayAt(p, Vec3{}, 8+50, 18), DefaultMaxRayDistance)
	if h.Control != btn {
		t.Fatal("centered button missed")
	}
	assertNear(t, "ControlX", h.ControlX(), 8)
}

func TestHitControlXWithoutControl(t *testing.T) {
	assertNear(t, "ControlX", Hit{PanelX: 50}.ControlX(), 0)
}

// --- Intersect ---

func TestIntersectNearestWins(t *testing.T) {
	far := facingPanel("far")
	far.SetAnchor(Vec3{Z: 6})
	near := facingPanel("near")
	h, ok := Intersect(Vec3{}, Vec3{Z: 1}, []*Panel{far, near}, DefaultMaxRayDistance)
	if !ok || h.Panel != near {
		t.Fatalf("got %v, want near", h.Panel)
	}
}

func TestIntersectTieGoesToFirst(t *testing.T) {
	a := facingPanel("a")
	b := facingPanel("b")
	h, ok := Intersect(Vec3{}, Vec3{Z: 1}, []*Panel{a, b}, DefaultMaxRayDistance)
	if !ok || h.Panel != a {
		t.Errorf("tie: got %v, want first panel", h.Panel)
	}
	h, _ = Intersect(Vec3{}, Vec3{Z: 1}, []*Panel{b, a}, DefaultMaxRayDistance)
	if h.Panel != b {
		t.Errorf("tie reversed: got %v, want first panel", h.Panel)
	}
}

func TestIntersectNone(t *testing.T) {
	if _, ok := Intersect(Vec3{}, Vec3{Z: 1}, nil, DefaultMaxRayDistance); ok {
		t.Error("hit with no panels")
	}
	hidden := facingPanel("hidden")
	hidden.SetVisible(false)
	if _, ok := Intersect(Vec3{}, Vec3{Z: 1}, []*Panel{hidden, nil}, DefaultMaxRayDistance); ok {
		t.Error("hit on hidden panel")
	}
}

// --- ProjectOntoPanel ---

func TestProjectOntoPanelOutsideRectangle(t *testing.T) {
	p := facingPanel("menu")
	px, py, ok := ProjectOntoPanel(p, Vec3{}, rayAt(p, Vec3{}, 300, -20), DefaultMaxRayDistance)
	if !ok {
		t.Fatal("projection failed")
	}
	assertNear(t, "panelX", px, 300)
	assertNear(t, "panelY", py, -20)
}

func TestProjectOntoPanelIgnoresVisibility(t *testing.T) {
	p := facingPanel("menu")
	p.SetVisible(false)
	if _, _, ok := ProjectOntoPanel(p, Vec3{}, Vec3{Z: 1}, DefaultMaxRayDistance); !ok {
		t.Error("projection should ignore visibility")
	}
	if _, _, ok := ProjectOntoPanel(p, Vec3{}, Vec3{Z: -1}, DefaultMaxRayDistance); ok {
		t.Error("projection behind the eye should fail")
	}
	if _, _, ok := ProjectOntoPanel(nil, Vec3{}, Vec3{Z: 1}, DefaultMaxRayDistance); ok {
		t.Error("nil panel should fail")
	}
}
