package hologram

import (
	"slices"

	"github.com/google/uuid"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Controller, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge and for
// controller-level callbacks.
type InteractionEvent struct {
	Type      EventType
	UserID    uuid.UUID
	PanelID   string
	ControlID string
	Button    MouseButton
	// Point is the world-space ray hit, zero for engagement and panel
	// lifecycle events.
	Point Vec3
	// PanelX and PanelY are top-left panel coordinates.
	PanelX float64
	PanelY float64
	// ControlX is the pointer X in the control's own space.
	ControlX float64
	// Engaged is the engagement state after the event.
	Engaged bool
}

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(InteractionEvent)
}

type handlerRegistry struct {
	byType [eventTypeCount][]eventHandler
	nextID uint32
}

func (r *handlerRegistry) add(t EventType, fn func(InteractionEvent)) CallbackHandle {
	r.nextID++
	r.byType[t] = append(r.byType[t], eventHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, event: t}
}

// CallbackHandle allows removing a registered controller-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. A handler may
// remove itself, or another handler, while an event is being delivered.
func (h CallbackHandle) Remove() {
	if h.reg == nil || int(h.event) >= len(h.reg.byType) {
		return
	}
	s := h.reg.byType[h.event]
	for i := range s {
		if s[i].id == h.id {
			// fire may be ranging over s; leave it untouched.
			h.reg.byType[h.event] = slices.Delete(slices.Clone(s), i, i+1)
			return
		}
	}
}

// OnHoverStart registers a callback for the pointer entering a control.
func (c *Controller) OnHoverStart(fn func(InteractionEvent)) CallbackHandle {
	return c.handlers.add(EventHoverStart, fn)
}

// OnHoverEnd registers a callback for the pointer leaving a control.
func (c *Controller) OnHoverEnd(fn func(InteractionEvent)) CallbackHandle {
	return c.handlers.add(EventHoverEnd, fn)
}

// OnClick registers a callback for accepted clicks.
func (c *Controller) OnClick(fn func(InteractionEvent)) CallbackHandle {
	return c.handlers.add(EventClick, fn)
}

// OnDragStart registers a callback for drags beginning.
func (c *Controller) OnDragStart(fn func(InteractionEvent)) CallbackHandle {
	return c.handlers.add(EventDragStart, fn)
}

// OnDrag registers a callback for each drag update.
func (c *Controller) OnDrag(fn func(InteractionEvent)) CallbackHandle {
	return c.handlers.add(EventDrag, fn)
}

// OnDragEnd registers a callback for drags ending.
func (c *Controller) OnDragEnd(fn func(InteractionEvent)) CallbackHandle {
	return c.handlers.add(EventDragEnd, fn)
}

// OnEngage registers a callback for engagement starting.
func (c *Controller) OnEngage(fn func(InteractionEvent)) CallbackHandle {
	return c.handlers.add(EventEngage, fn)
}

// OnDisengage registers a callback for engagement ending.
func (c *Controller) OnDisengage(fn func(InteractionEvent)) CallbackHandle {
	return c.handlers.add(EventDisengage, fn)
}

// OnPanelOpen registers a callback for panels added to the registry,
// including replacements.
func (c *Controller) OnPanelOpen(fn func(InteractionEvent)) CallbackHandle {
	return c.handlers.add(EventPanelOpen, fn)
}

// OnPanelClose registers a callback for panels leaving the registry
// through Destroy, Clear or replacement.
func (c *Controller) OnPanelClose(fn func(InteractionEvent)) CallbackHandle {
	return c.handlers.add(EventPanelClose, fn)
}

// panelEvent reports a registry lifecycle change.
func (c *Controller) panelEvent(t EventType, panelID string) {
	c.fire(InteractionEvent{Type: t, PanelID: panelID, Engaged: c.tracker.IsInteracting()})
}

// fire runs controller-level callbacks, then forwards the event to the store.
func (c *Controller) fire(ev InteractionEvent) {
	ev.UserID = c.tracker.UserID()
	for _, h := range c.handlers.byType[ev.Type] {
		safeCall(c.logger, ev.Type.String()+" handler", func() { h.fn(ev) })
	}
	if c.store != nil {
		safeCall(c.logger, "entity store", func() { c.store.EmitEvent(ev) })
	}
}
