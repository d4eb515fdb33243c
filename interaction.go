package hologram

import "log"

// FrameInput is everything the controller reads from the host in one tick.
type FrameInput struct {
	// Eye and Look form the view ray. Look need not be normalised.
	Eye, Look Vec3
	Buttons   ButtonState
	// BlockingUI is true while a foreground screen owns the pointer.
	BlockingUI bool
}

// Feedback plays interface sounds. Implemented by audio.Feedback.
type Feedback interface {
	Hover()
	Click()
}

// InteractionState is the controller's pointer state.
type InteractionState uint8

const (
	StateIdle InteractionState = iota
	StateHovering
	StateDragging
)

// String returns the state name.
func (s InteractionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHovering:
		return "hovering"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Controller turns per-tick ray and button state into hover, click and
// drag events against controls, and drives the tracker's engagement flag.
// All methods run on the tick thread.
type Controller struct {
	registry *Registry
	tracker  *Tracker
	config   *ConfigStore
	logger   *log.Logger
	feedback Feedback
	store    EntityStore
	handlers handlerRegistry

	hit          Hit
	hasHit       bool
	hovered      Control
	hoveredPanel *Panel

	dragging   Draggable
	dragPanel  *Panel
	dragButton MouseButton

	prev     ButtonState
	cooldown int

	injectQueue []ButtonState
}

// NewController wires a controller to its collaborators. A nil config uses
// DefaultConfig; a nil logger logs to stderr.
func NewController(registry *Registry, tracker *Tracker, config *ConfigStore, logger *log.Logger) *Controller {
	if config == nil {
		config = NewConfigStore(DefaultConfig())
	}
	if logger == nil {
		logger = defaultLogger()
	}
	c := &Controller{
		registry: registry,
		tracker:  tracker,
		config:   config,
		logger:   logger,
	}
	if registry != nil {
		registry.lifecycle = c.panelEvent
	}
	return c
}

// SetFeedback sets the sound player. Nil disables sounds.
func (c *Controller) SetFeedback(f Feedback) { c.feedback = f }

// SetEntityStore sets the ECS bridge. Nil disables forwarding.
func (c *Controller) SetEntityStore(s EntityStore) { c.store = s }

// State returns the current pointer state.
func (c *Controller) State() InteractionState {
	switch {
	case c.dragging != nil:
		return StateDragging
	case c.hovered != nil:
		return StateHovering
	default:
		return StateIdle
	}
}

// Hovered returns the control under the pointer and its panel.
func (c *Controller) Hovered() (Control, *Panel) { return c.hovered, c.hoveredPanel }

// LastHit returns the most recent hit, if the ray met a panel this tick.
func (c *Controller) LastHit() (Hit, bool) { return c.hit, c.hasHit }

// Dragged returns the control being dragged, or nil.
func (c *Controller) Dragged() Draggable { return c.dragging }

// Cooldown returns the remaining click cooldown in ticks.
func (c *Controller) Cooldown() int { return c.cooldown }

// Update runs one tick.
func (c *Controller) Update(in FrameInput) {
	cfg := c.config.Load()
	if c.cooldown > 0 {
		c.cooldown--
	}
	buttons := c.nextButtons(in.Buttons)

	c.hit, c.hasHit = Intersect(in.Eye, in.Look, c.registry.Panels(), cfg.MaxRayDistance)
	var target Control
	var panel *Panel
	if c.hasHit {
		target, panel = c.hit.Control, c.hit.Panel
	}
	c.updateHover(target, panel)
	c.updateEngagement()
	c.updateDrag(in, buttons, cfg)
	c.handleClicks(in, buttons, cfg)
	c.prev = buttons
}

func (c *Controller) updateHover(target Control, panel *Panel) {
	if target == c.hovered {
		c.hoveredPanel = panel
		return
	}
	if old := c.hovered; old != nil {
		if old.Flags().Has(CapHoverable) && c.registry.Alive(c.hoveredPanel) {
			c.dispatch(old, "hover end", old.OnHoverEnd)
		}
		c.fire(c.event(EventHoverEnd, c.hoveredPanel, old))
	}
	c.hovered, c.hoveredPanel = target, panel
	if target == nil {
		return
	}
	flags := target.Flags()
	if flags.Has(CapHoverable) {
		c.dispatch(target, "hover start", target.OnHoverStart)
	}
	if flags.Has(CapClickable) && c.feedback != nil {
		c.feedback.Hover()
	}
	c.fire(c.event(EventHoverStart, panel, target))
}

// updateEngagement starts engagement when the ray meets any panel and ends
// it when the ray meets none, unless a drag is holding it open.
func (c *Controller) updateEngagement() {
	if c.hasHit {
		if c.tracker.StartInteraction() {
			c.fire(InteractionEvent{Type: EventEngage, PanelID: c.hit.Panel.id, Engaged: true})
		}
		return
	}
	if c.dragging != nil {
		return
	}
	if c.tracker.EndInteraction() {
		c.fire(InteractionEvent{Type: EventDisengage})
	}
}

func (c *Controller) updateDrag(in FrameInput, buttons ButtonState, cfg Config) {
	if c.dragging == nil {
		return
	}
	if !c.registry.Alive(c.dragPanel) || !buttons.Pressed(c.dragButton) {
		c.endDrag()
		return
	}
	px, py, ok := ProjectOntoPanel(c.dragPanel, in.Eye, in.Look, cfg.MaxRayDistance)
	if !ok {
		c.endDrag()
		return
	}
	x := px - c.dragPanel.padding - c.dragging.Bounds().X
	d := c.dragging
	c.dispatch(d, "drag", func() { d.UpdateValueFromPointer(x) })
	ev := c.event(EventDrag, c.dragPanel, d)
	ev.PanelX, ev.PanelY, ev.ControlX = px, py, x
	c.fire(ev)
}

func (c *Controller) beginDrag(d Draggable, b MouseButton) {
	c.dragging, c.dragPanel, c.dragButton = d, c.hoveredPanel, b
	x := c.hit.ControlX()
	c.dispatch(d, "drag start", func() { d.UpdateValueFromPointer(x) })
	c.fire(c.event(EventDragStart, c.dragPanel, d))
}

func (c *Controller) endDrag() {
	d, p := c.dragging, c.dragPanel
	c.dragging, c.dragPanel = nil, nil
	c.dispatch(d, "release", d.OnRelease)
	c.fire(c.event(EventDragEnd, p, d))
}

// CancelDrag releases an active drag, as when the host closes its
// panels.
func (c *Controller) CancelDrag() {
	if c.dragging != nil {
		c.endDrag()
	}
}

func (c *Controller) handleClicks(in FrameInput, buttons ButtonState, cfg Config) {
	for b := MouseButtonLeft; b < mouseButtonCount; b++ {
		if !buttons.Pressed(b) || c.prev.Pressed(b) {
			continue
		}
		if c.cooldown > 0 || in.BlockingUI || c.hovered == nil {
			continue
		}
		c.cooldown = cfg.InteractionCooldownTicks
		c.tracker.Touch()
		target := c.hovered
		flags := target.Flags()
		if b == MouseButtonLeft && c.dragging == nil && flags.Has(CapDraggable) {
			if d, ok := target.(Draggable); ok {
				if c.feedback != nil {
					c.feedback.Click()
				}
				c.beginDrag(d, b)
				continue
			}
		}
		if !flags.Has(CapClickable) {
			continue
		}
		if c.feedback != nil {
			c.feedback.Click()
		}
		c.dispatch(target, "click", func() { target.OnClick(b) })
		ev := c.event(EventClick, c.hoveredPanel, target)
		ev.Button = b
		c.fire(ev)
	}
}

// Reset drops hover and drag state without firing control callbacks and
// ends engagement, firing EventDisengage if the user was engaged.
func (c *Controller) Reset() {
	c.hovered, c.hoveredPanel = nil, nil
	c.dragging, c.dragPanel = nil, nil
	c.hit, c.hasHit = Hit{}, false
	c.prev = ButtonState{}
	c.cooldown = 0
	c.injectQueue = c.injectQueue[:0]
	if c.tracker.EndInteraction() {
		c.fire(InteractionEvent{Type: EventDisengage})
	}
}

// dispatch runs a control callback behind the recover boundary.
func (c *Controller) dispatch(target Control, what string, fn func()) {
	safeCall(c.logger, describeControl(target)+" "+what, fn)
}

func (c *Controller) event(t EventType, p *Panel, ctl Control) InteractionEvent {
	ev := InteractionEvent{Type: t, Engaged: c.tracker.IsInteracting()}
	if p != nil {
		ev.PanelID = p.id
	}
	if ctl != nil {
		ev.ControlID = ctl.ID()
	}
	if c.hasHit && c.hit.Panel == p {
		ev.Point = c.hit.Point
		ev.PanelX, ev.PanelY = c.hit.PanelX, c.hit.PanelY
		if c.hit.Control == ctl {
			ev.ControlX = c.hit.ControlX()
		}
	}
	return ev
}
