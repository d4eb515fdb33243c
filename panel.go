package hologram

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrDuplicateControl is returned when a control id is already used in the
// panel.
var ErrDuplicateControl = errors.New("hologram: duplicate control id")

// Panel defaults.
const (
	DefaultPanelWidth         = 200
	DefaultPanelHeight        = 100
	DefaultPanelScale         = 0.025
	DefaultMaxVisibleDistance = 10
	DefaultPanelPadding       = 8
	DefaultPanelSpacing       = 4
)

// WorldCollider answers solidity queries for anchor adjustment. The world
// is a grid of unit blocks.
type WorldCollider interface {
	SolidAt(p Vec3) bool
}

// Panel is a flat rectangle anchored at a world point, rotated about the
// vertical axis by Yaw, holding a vertical stack of controls. Panels are
// created through a Registry and must only be touched on the tick thread
// once registered.
type Panel struct {
	id                 string
	anchor             Vec3
	yaw                float64
	width              float64
	height             float64
	autoHeight         bool
	scale              float64
	maxVisibleDistance float64
	padding            float64
	spacing            float64
	alignment          Alignment
	visible            bool
	conditionsMet      bool

	Background *Color
	Border     *Color

	controls   []Control
	conditions *VisibilityConditions
	collider   WorldCollider

	anim    *Scheduler
	actions *ActionRegistry

	autoUpdate     func()
	updateInterval time.Duration
	lastUpdate     time.Time
}

// NewPanel creates a detached panel with default geometry. Most callers
// use Registry.Create instead.
func NewPanel(id string) *Panel {
	return &Panel{
		id:                 id,
		width:              DefaultPanelWidth,
		height:             DefaultPanelHeight,
		scale:              DefaultPanelScale,
		maxVisibleDistance: DefaultMaxVisibleDistance,
		padding:            DefaultPanelPadding,
		spacing:            DefaultPanelSpacing,
		visible:            true,
		conditionsMet:      true,
	}
}

// ID returns the panel id.
func (p *Panel) ID() string { return p.id }

// Anchor returns the world-space center point.
func (p *Panel) Anchor() Vec3 { return p.anchor }

// SetAnchor moves the panel. With a collider set, the anchor is raised so
// the bottom edge clears a solid block.
func (p *Panel) SetAnchor(v Vec3) {
	p.anchor = p.adjustForCollision(v)
}

// Yaw returns the rotation about the vertical axis, in degrees.
func (p *Panel) Yaw() float64 { return p.yaw }

func (p *Panel) SetYaw(deg float64) { p.yaw = deg }

func (p *Panel) Width() float64 { return p.width }

func (p *Panel) SetWidth(w float64) {
	p.width = w
	p.Layout()
}

// Height returns the current height in panel units.
func (p *Panel) Height() float64 { return p.height }

// SetHeight fixes the height. A negative value switches to auto height,
// which tracks ContentHeight as controls are added and removed.
func (p *Panel) SetHeight(h float64) {
	if h < 0 {
		p.autoHeight = true
		p.recalculateAutoHeight()
		return
	}
	p.autoHeight = false
	p.height = h
}

// AutoHeight reports whether the height follows the content.
func (p *Panel) AutoHeight() bool { return p.autoHeight }

// Scale returns world units per panel unit.
func (p *Panel) Scale() float64 { return p.scale }

func (p *Panel) SetScale(s float64) {
	p.scale = s
	p.anchor = p.adjustForCollision(p.anchor)
}

func (p *Panel) MaxVisibleDistance() float64 { return p.maxVisibleDistance }

func (p *Panel) SetMaxVisibleDistance(d float64) { p.maxVisibleDistance = d }

func (p *Panel) Padding() float64 { return p.padding }

func (p *Panel) SetPadding(v float64) {
	p.padding = v
	p.recalculateAutoHeight()
	p.Layout()
}

func (p *Panel) Spacing() float64 { return p.spacing }

func (p *Panel) SetSpacing(v float64) {
	p.spacing = v
	p.recalculateAutoHeight()
	p.Layout()
}

func (p *Panel) Alignment() Alignment { return p.alignment }

func (p *Panel) SetAlignment(a Alignment) {
	p.alignment = a
	p.Layout()
}

// Visible reports whether the panel is shown and hit-testable. It combines
// the host flag with the panel's visibility conditions.
func (p *Panel) Visible() bool { return p.visible && p.conditionsMet }

// SetVisible sets the host visibility flag.
func (p *Panel) SetVisible(v bool) { p.visible = v }

// SetCollider enables anchor adjustment against c. Pass nil to disable.
func (p *Panel) SetCollider(c WorldCollider) {
	p.collider = c
	p.anchor = p.adjustForCollision(p.anchor)
}

// SetAutoUpdate calls fn from the tick at most once per interval.
func (p *Panel) SetAutoUpdate(interval time.Duration, fn func()) {
	p.autoUpdate = fn
	p.updateInterval = interval
	p.lastUpdate = time.Time{}
}

// DisableAutoUpdate removes the auto-update callback.
func (p *Panel) DisableAutoUpdate() {
	p.autoUpdate = nil
}

// Controls returns the controls in stacking order. The slice must not be
// modified.
func (p *Panel) Controls() []Control { return p.controls }

// Control returns the control with the given id, searching container
// children too.
func (p *Panel) Control(id string) Control {
	return findControl(p.controls, id)
}

// AddControl appends c to the stack. Ids must be unique within the panel,
// including ids nested in containers.
func (p *Panel) AddControl(c Control) error {
	if c == nil {
		return fmt.Errorf("add control to panel %q: nil control", p.id)
	}
	ids := make(map[string]struct{})
	for _, existing := range p.controls {
		for _, id := range controlIDs(existing, nil) {
			ids[id] = struct{}{}
		}
	}
	for _, id := range controlIDs(c, nil) {
		if _, dup := ids[id]; dup {
			return fmt.Errorf("add control %q to panel %q: %w", id, p.id, ErrDuplicateControl)
		}
		ids[id] = struct{}{}
	}
	if a, ok := c.(attachable); ok && p.anim != nil {
		a.attach(p.anim, p.actions, p.id)
	}
	p.controls = append(p.controls, c)
	p.recalculateAutoHeight()
	p.Layout()
	return nil
}

// RemoveControl removes the control with id and cancels its animations.
// It reports whether the control was present.
func (p *Panel) RemoveControl(id string) bool {
	for i, c := range p.controls {
		if c.ID() != id {
			continue
		}
		p.cancelClips(c)
		p.controls = append(p.controls[:i], p.controls[i+1:]...)
		p.recalculateAutoHeight()
		p.Layout()
		return true
	}
	return false
}

// ClearControls removes every control.
func (p *Panel) ClearControls() {
	for _, c := range p.controls {
		p.cancelClips(c)
	}
	p.controls = nil
	p.recalculateAutoHeight()
}

// ContentHeight is the height needed to show every control: the sum of
// heights, spacing between rows and padding on both sides.
func (p *Panel) ContentHeight() float64 {
	h := p.padding * 2
	for i, c := range p.controls {
		if i > 0 {
			h += p.spacing
		}
		h += c.Height()
	}
	return h
}

// Layout assigns bounds to every control in padding-adjusted space.
func (p *Panel) Layout() {
	avail := p.width - p.padding*2
	y := 0.0
	for _, c := range p.controls {
		w := c.Width()
		c.SetBounds(Bounds{X: p.alignment.offset(avail, w), Y: y, Width: w, Height: c.Height()})
		y += c.Height() + p.spacing
	}
}

// Render draws the background, border and controls. hovered is the
// control under the pointer, or nil.
func (p *Panel) Render(dst Canvas, hovered Control) {
	if !p.Visible() {
		return
	}
	frame := Bounds{X: -p.padding, Y: -p.padding, Width: p.width, Height: p.height}
	if p.Background != nil {
		dst.FillRect(frame, *p.Background)
	}
	if p.Border != nil {
		dst.StrokeRect(frame, *p.Border, 1)
	}
	for _, c := range p.controls {
		c.Render(dst, c == hovered)
	}
}

// PanelGeometry is a read-only snapshot of a panel's placement.
type PanelGeometry struct {
	ID      string
	Anchor  Vec3
	Yaw     float64
	Width   float64
	Height  float64
	Scale   float64
	Padding float64
	Visible bool
}

// Geometry returns the panel's current placement.
func (p *Panel) Geometry() PanelGeometry {
	return PanelGeometry{
		ID:      p.id,
		Anchor:  p.anchor,
		Yaw:     p.yaw,
		Width:   p.width,
		Height:  p.height,
		Scale:   p.scale,
		Padding: p.padding,
		Visible: p.Visible(),
	}
}

func (p *Panel) attach(anim *Scheduler, actions *ActionRegistry) {
	p.anim = anim
	p.actions = actions
	for _, c := range p.controls {
		if a, ok := c.(attachable); ok {
			a.attach(anim, actions, p.id)
		}
	}
}

func (p *Panel) cancelClips(c Control) {
	if p.anim == nil {
		return
	}
	for _, id := range controlIDs(c, nil) {
		p.anim.Cancel(channelKey(p.id, id))
	}
}

func (p *Panel) recalculateAutoHeight() {
	if !p.autoHeight {
		return
	}
	p.height = p.ContentHeight()
	p.anchor = p.adjustForCollision(p.anchor)
}

// adjustForCollision raises v when the block under the panel's bottom edge
// is solid, leaving a 0.1 margin above the block top.
func (p *Panel) adjustForCollision(v Vec3) Vec3 {
	if p.collider == nil {
		return v
	}
	half := p.height / 2 * p.scale
	bottom := Vec3{X: v.X, Y: v.Y - half, Z: v.Z}
	if !p.collider.SolidAt(bottom) {
		return v
	}
	v.Y = math.Floor(bottom.Y) + 1 + half + 0.1
	return v
}

// dueUpdate returns the auto-update callback when its interval elapsed, or
// nil.
func (p *Panel) dueUpdate(now time.Time) func() {
	if p.autoUpdate == nil {
		return nil
	}
	if !p.lastUpdate.IsZero() && now.Sub(p.lastUpdate) < p.updateInterval {
		return nil
	}
	p.lastUpdate = now
	return p.autoUpdate
}
