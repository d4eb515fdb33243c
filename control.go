package hologram

// Control is one element in a panel's vertical stack. Implementations are
// owned by exactly one panel. Event methods are called on the tick thread
// and may panic without harming the tick: the controller recovers and logs.
type Control interface {
	ID() string
	Width() float64
	Height() float64
	Bounds() Bounds
	SetBounds(b Bounds)
	Flags() Capability

	OnClick(button MouseButton)
	OnHoverStart()
	OnHoverEnd()

	// Render draws the control at its bounds. hovered is true while the
	// pointer rests on it.
	Render(dst Canvas, hovered bool)
}

// Draggable is a Control that captures the pointer while the left button is
// held and maps the pointer's X into its own value range.
type Draggable interface {
	Control
	// UpdateValueFromPointer receives the pointer X in the control's own
	// coordinates (0 is its left edge). Out-of-range values are the
	// control's to clamp.
	UpdateValueFromPointer(localX float64)
	OnRelease()
}

// Canvas is the renderer a control draws into. Coordinates are panel-local
// (padding-adjusted, Y down); the renderer owns projection into the world.
type Canvas interface {
	// Push applies an animated transform to subsequent draws until Pop.
	Push(v Visual)
	Pop()
	FillRect(r Bounds, c Color)
	StrokeRect(r Bounds, c Color, width float64)
	DrawText(x, y float64, text string, c Color)
	DrawImage(r Bounds, source string, alpha float64)
	TextWidth(text string) float64
}

// Visual is the animated transform of a control for one frame. Scale and
// rotation pivot on the center of Bounds. Tint and Alpha are applied by
// the control to its own colors through Shade; a Canvas only applies the
// geometry.
type Visual struct {
	Bounds     Bounds
	TranslateX float64
	TranslateY float64
	ScaleX     float64
	ScaleY     float64
	Rotation   float64 // degrees
	TintR      float64
	TintG      float64
	TintB      float64
	Alpha      float64
}

// IsIdentity reports whether v leaves drawing unchanged.
func (v Visual) IsIdentity() bool {
	return v.TranslateX == 0 && v.TranslateY == 0 &&
		v.ScaleX == 1 && v.ScaleY == 1 && v.Rotation == 0 &&
		v.TintR == 1 && v.TintG == 1 && v.TintB == 1 && v.Alpha == 1
}

// Shade multiplies c by the tint and alpha.
func (v Visual) Shade(c Color) Color {
	return Color{R: c.R * v.TintR, G: c.G * v.TintG, B: c.B * v.TintB, A: c.A * v.Alpha}
}

// attachable is implemented by controls that need the panel's scheduler and
// action registry. panelID qualifies the control's animation channels.
type attachable interface {
	attach(anim *Scheduler, actions *ActionRegistry, panelID string)
}

// channelKey is the scheduler key of a control. Control ids are only unique
// within a panel, so the key carries the panel id when there is one.
func channelKey(panelID, controlID string) string {
	if panelID == "" {
		return controlID
	}
	return panelID + "/" + controlID
}

// parentControl is implemented by controls that own children.
type parentControl interface {
	Children() []Control
}

// controlBase carries the state shared by every built-in control kind.
type controlBase struct {
	id      string
	width   float64
	height  float64
	bounds  Bounds
	anim    *Scheduler
	actions *ActionRegistry
	panel   string
	key     string
}

func newControlBase(id string, w, h float64) controlBase {
	return controlBase{id: id, width: w, height: h, key: id}
}

// ID returns the control id.
func (b *controlBase) ID() string { return b.id }

// Width returns the layout width.
func (b *controlBase) Width() float64 { return b.width }

// Height returns the layout height.
func (b *controlBase) Height() float64 { return b.height }

// Bounds returns the rectangle assigned by the last layout pass.
func (b *controlBase) Bounds() Bounds { return b.bounds }

// SetBounds is called by the owning panel's layout pass.
func (b *controlBase) SetBounds(r Bounds) { b.bounds = r }

// Flags reports no capabilities; interactive kinds override it.
func (b *controlBase) Flags() Capability { return 0 }

// OnClick does nothing by default.
func (b *controlBase) OnClick(MouseButton) {}

// OnHoverStart does nothing by default.
func (b *controlBase) OnHoverStart() {}

// OnHoverEnd does nothing by default.
func (b *controlBase) OnHoverEnd() {}

func (b *controlBase) attach(anim *Scheduler, actions *ActionRegistry, panelID string) {
	b.anim = anim
	b.actions = actions
	b.panel = panelID
	b.key = channelKey(panelID, b.id)
}

// AnimationKey returns the scheduler channel key of the control, for use
// with helpers such as FadeScaleIn.
func (b *controlBase) AnimationKey() string { return b.key }

// Animate plays clip on this control. It is a no-op until the control is
// added to a registered panel.
func (b *controlBase) Animate(clip *Clip) {
	if b.anim != nil {
		b.anim.Add(b.key, clip)
	}
}

// Animated samples a property of this control, or returns def.
func (b *controlBase) Animated(property string, def float64) float64 {
	if b.anim == nil {
		return def
	}
	return b.anim.Sample(b.key, property, def)
}

// Animating reports whether a clip plays on property.
func (b *controlBase) Animating(property string) bool {
	return b.anim != nil && b.anim.Has(b.key, property)
}

// CancelAnimations cancels the given properties, or all when none given.
func (b *controlBase) CancelAnimations(properties ...string) {
	if b.anim != nil {
		b.anim.Cancel(b.key, properties...)
	}
}

// visual samples the standard transform channels.
func (b *controlBase) visual() Visual {
	scale := b.Animated(PropScale, 1)
	hover := b.Animated(PropHoverScale, 1)
	return Visual{
		Bounds:     b.bounds,
		TranslateX: b.Animated(PropTranslateX, 0),
		TranslateY: b.Animated(PropTranslateY, 0),
		ScaleX:     b.Animated(PropScaleX, scale) * hover,
		ScaleY:     b.Animated(PropScaleY, scale) * hover,
		Rotation:   b.Animated(PropRotation, 0),
		TintR:      b.Animated(PropColorR, 1),
		TintG:      b.Animated(PropColorG, 1),
		TintB:      b.Animated(PropColorB, 1),
		Alpha:      b.Animated(PropOpacity, 1) * b.Animated(PropColorA, 1),
	}
}

// controlIDs returns c's id and, recursively, its children's ids.
func controlIDs(c Control, dst []string) []string {
	dst = append(dst, c.ID())
	if p, ok := c.(parentControl); ok {
		for _, child := range p.Children() {
			dst = controlIDs(child, dst)
		}
	}
	return dst
}
