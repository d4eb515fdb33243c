package hologram

import "gonum.org/v1/gonum/spatial/r3"

// VisibilityConditions decide whether a panel is shown for a given viewer
// position. A panel whose conditions fail is neither drawn nor hit-tested.
type VisibilityConditions struct {
	MinDistance float64
	MaxDistance float64 // zero means unbounded
	// Custom, when set, must also return true. It receives the viewer
	// position.
	Custom func(viewer Vec3) bool
}

// Check reports whether a viewer at viewer sees a panel anchored at anchor.
func (vc *VisibilityConditions) Check(viewer, anchor Vec3) bool {
	if vc == nil {
		return true
	}
	d := distance(viewer, anchor)
	if d < vc.MinDistance {
		return false
	}
	if vc.MaxDistance > 0 && d > vc.MaxDistance {
		return false
	}
	if vc.Custom != nil && !vc.Custom(viewer) {
		return false
	}
	return true
}

// Conditions returns the panel's visibility conditions, or nil.
func (p *Panel) Conditions() *VisibilityConditions { return p.conditions }

// SetConditions replaces the panel's visibility conditions. Nil removes
// them.
func (p *Panel) SetConditions(vc *VisibilityConditions) {
	p.conditions = vc
	if vc == nil {
		p.conditionsMet = true
	}
}

// evaluate refreshes the cached condition result for viewer.
func (p *Panel) evaluate(viewer Vec3) {
	p.conditionsMet = p.conditions.Check(viewer, p.anchor)
}

func distance(a, b Vec3) float64 {
	return r3.Norm(r3.Sub(a, b))
}
