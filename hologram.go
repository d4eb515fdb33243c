package hologram

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a point or direction in world space. It is gonum's r3.Vec, so the
// r3 package functions (Add, Sub, Scale, Dot, Norm, Unit) apply directly.
type Vec3 = r3.Vec

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default text and handle color.
var ColorWhite = Color{1, 1, 1, 1}

// Brighten returns c with each RGB component raised by d, clamped to 1.
func (c Color) Brighten(d float64) Color {
	return Color{
		R: math.Min(1, c.R+d),
		G: math.Min(1, c.G+d),
		B: math.Min(1, c.B+d),
		A: c.A,
	}
}

// Bounds is an axis-aligned rectangle in panel-local, padding-adjusted
// space. The origin is the top-left of the control area, Y grows downward.
type Bounds struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width &&
		y >= b.Y && y <= b.Y+b.Height
}

// Alignment controls the horizontal placement of controls inside a panel
// or container.
type Alignment uint8

const (
	AlignLeft   Alignment = iota // flush with the left padding edge (default)
	AlignCenter                  // centered in the available width
	AlignRight                   // flush with the right padding edge
)

// offset returns the X offset of an element of width w inside avail.
func (a Alignment) offset(avail, w float64) float64 {
	switch a {
	case AlignCenter:
		return (avail - w) / 2
	case AlignRight:
		return avail - w
	default:
		return 0
	}
}

// LayoutDirection selects how a Container stacks its children.
type LayoutDirection uint8

const (
	LayoutVertical   LayoutDirection = iota // children stacked top to bottom
	LayoutHorizontal                        // children flow left to right
)

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)

	mouseButtonCount
)

// String returns the lower-case button name.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// ButtonState is the pressed state of every tracked button for one tick.
type ButtonState [mouseButtonCount]bool

// Pressed reports whether b is held.
func (s ButtonState) Pressed(b MouseButton) bool {
	if int(b) >= len(s) {
		return false
	}
	return s[b]
}

// Capability is a bitmask of what a Control responds to.
type Capability uint8

const (
	CapClickable Capability = 1 << iota // receives OnClick
	CapHoverable                        // receives OnHoverStart / OnHoverEnd
	CapDraggable                        // implements Draggable and captures the pointer
)

// Has reports whether all bits of f are set.
func (c Capability) Has(f Capability) bool {
	return c&f == f
}

// ActionKind identifies a world-affecting action the host may suppress while
// the user is engaged with a panel.
type ActionKind uint8

const (
	ActionBreakBlock   ActionKind = iota // mining / breaking
	ActionAttackEntity                   // melee attack
	ActionUseItem                        // using the held item (never suppressed)
	ActionUseBlock                       // interacting with a block
)

// String returns the action name.
func (k ActionKind) String() string {
	switch k {
	case ActionBreakBlock:
		return "break_block"
	case ActionAttackEntity:
		return "attack_entity"
	case ActionUseItem:
		return "use_item"
	case ActionUseBlock:
		return "use_block"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventHoverStart EventType = iota // pointer entered a control
	EventHoverEnd                    // pointer left a control
	EventClick                       // accepted rising edge on a clickable control
	EventDragStart                   // drag began on a drag-capable control
	EventDrag                        // pointer moved while dragging
	EventDragEnd                     // drag released
	EventEngage                      // engagement started
	EventDisengage                   // engagement ended
	EventPanelOpen                   // panel added to the registry
	EventPanelClose                  // panel removed from the registry

	eventTypeCount
)

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventHoverStart:
		return "hover_start"
	case EventHoverEnd:
		return "hover_end"
	case EventClick:
		return "click"
	case EventDragStart:
		return "drag_start"
	case EventDrag:
		return "drag"
	case EventDragEnd:
		return "drag_end"
	case EventEngage:
		return "engage"
	case EventDisengage:
		return "disengage"
	case EventPanelOpen:
		return "panel_open"
	case EventPanelClose:
		return "panel_close"
	default:
		return "unknown"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}
