package ecs

import (
	"github.com/google/uuid"
	"github.com/phanxgames/hologram"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for hologram interaction
// events. Subscribe to this in your ECS systems to receive hover, click,
// drag and engagement events.
var InteractionEventType = events.NewEventType[hologram.InteractionEvent]()

// Interaction is the per-user component maintained by the store.
type Interaction struct {
	UserID    uuid.UUID
	PanelID   string
	ControlID string
	Engaged   bool
	Dragging  bool
	Clicks    int
}

// InteractionComponent holds each user's Interaction state.
var InteractionComponent = donburi.NewComponentType[Interaction]()

// DonburiStore is a hologram.EntityStore backed by a Donburi world.
type DonburiStore struct {
	world donburi.World
	users map[uuid.UUID]donburi.Entity
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{world: world, users: make(map[uuid.UUID]donburi.Entity)}
}

// EmitEvent publishes event and updates the user's Interaction component.
func (s *DonburiStore) EmitEvent(event hologram.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)

	entry := s.world.Entry(s.entity(event.UserID))
	state := InteractionComponent.Get(entry)
	state.Engaged = event.Engaged
	switch event.Type {
	case hologram.EventHoverStart:
		state.PanelID, state.ControlID = event.PanelID, event.ControlID
	case hologram.EventHoverEnd:
		if state.ControlID == event.ControlID {
			state.ControlID = ""
		}
	case hologram.EventClick:
		state.Clicks++
	case hologram.EventDragStart:
		state.Dragging = true
	case hologram.EventDragEnd:
		state.Dragging = false
	case hologram.EventEngage:
		state.PanelID = event.PanelID
	case hologram.EventDisengage:
		state.PanelID, state.ControlID = "", ""
	case hologram.EventPanelClose:
		if state.PanelID == event.PanelID {
			state.PanelID, state.ControlID = "", ""
		}
	}
}

// Entity returns the entity holding id's Interaction component, creating
// it on first use.
func (s *DonburiStore) Entity(id uuid.UUID) donburi.Entity {
	return s.entity(id)
}

func (s *DonburiStore) entity(id uuid.UUID) donburi.Entity {
	if e, ok := s.users[id]; ok && s.world.Valid(e) {
		return e
	}
	e := s.world.Create(InteractionComponent)
	InteractionComponent.SetValue(s.world.Entry(e), Interaction{UserID: id})
	s.users[id] = e
	return e
}
