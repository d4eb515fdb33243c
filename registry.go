package hologram

import (
	"log"
	"slices"
	"sync"
)

// RegistryStats counts panel lifecycle events.
type RegistryStats struct {
	Active    int
	Pending   int
	Created   uint64
	Destroyed uint64
}

type registryOp uint8

const (
	opCreate registryOp = iota
	opUpdate
	opDestroy
	opConditions
	opClear
)

// lifecycleEvent is a panel open or close recorded during drain.
type lifecycleEvent struct {
	typ EventType
	id  string
}

type registryCmd struct {
	op         registryOp
	id         string
	panel      *Panel
	fn         func(*Panel)
	conditions *VisibilityConditions
}

// Registry owns every live panel. Mutations may be requested from any
// goroutine; they are queued and applied in request order at the start of
// the next Tick, on the tick thread. Panel pointers returned by Panels and
// Panel are only valid on the tick thread.
type Registry struct {
	anim    *Scheduler
	actions *ActionRegistry
	logger  *log.Logger
	clock   Clock

	mu      sync.Mutex
	pending []registryCmd
	ids     []string // snapshot of order, guarded by mu
	stats   RegistryStats

	order []*Panel
	byID  map[string]*Panel

	// lifecycle receives EventPanelOpen and EventPanelClose after each
	// drain. Set by NewController.
	lifecycle func(t EventType, panelID string)
}

// NewRegistry creates a registry whose panels animate on anim and run
// button actions from actions. Either may be nil.
func NewRegistry(anim *Scheduler, actions *ActionRegistry, clock Clock, logger *log.Logger) *Registry {
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = defaultLogger()
	}
	return &Registry{
		anim:    anim,
		actions: actions,
		logger:  logger,
		clock:   clock,
		byID:    make(map[string]*Panel),
	}
}

func (r *Registry) enqueue(cmd registryCmd) {
	r.mu.Lock()
	r.pending = append(r.pending, cmd)
	r.mu.Unlock()
}

// Create queues a new panel with default geometry, configured by build on
// the tick thread. An existing panel with the same id is destroyed first.
func (r *Registry) Create(id string, build func(*Panel)) {
	r.enqueue(registryCmd{op: opCreate, id: id, fn: build})
}

// Register queues an already built panel. The caller must not touch p
// afterwards except from the tick thread.
func (r *Registry) Register(p *Panel) {
	if p == nil {
		return
	}
	r.enqueue(registryCmd{op: opCreate, id: p.id, panel: p})
}

// Update queues fn to run against the panel on the tick thread. Unknown ids
// are ignored.
func (r *Registry) Update(id string, fn func(*Panel)) {
	r.enqueue(registryCmd{op: opUpdate, id: id, fn: fn})
}

// Destroy queues removal of a panel. Every animation keyed to its controls
// is cancelled.
func (r *Registry) Destroy(id string) {
	r.enqueue(registryCmd{op: opDestroy, id: id})
}

// SetConditions queues new visibility conditions for a panel.
func (r *Registry) SetConditions(id string, vc *VisibilityConditions) {
	r.enqueue(registryCmd{op: opConditions, id: id, conditions: vc})
}

// Clear queues removal of every panel.
func (r *Registry) Clear() {
	r.enqueue(registryCmd{op: opClear})
}

// Count returns the number of live panels as of the last Tick.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ids)
}

// IDs returns the ids of live panels in registration order as of the last
// Tick.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.ids)
}

// Stats returns lifecycle counters.
func (r *Registry) Stats() RegistryStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.stats
	s.Active = len(r.ids)
	s.Pending = len(r.pending)
	return s
}

// Panels returns live panels in registration order. Tick thread only; the
// slice must not be modified.
func (r *Registry) Panels() []*Panel { return r.order }

// Panel returns the live panel with id, or nil. Tick thread only.
func (r *Registry) Panel(id string) *Panel { return r.byID[id] }

// Alive reports whether p is still registered. Tick thread only.
func (r *Registry) Alive(p *Panel) bool {
	return p != nil && r.byID[p.id] == p
}

// Tick applies queued mutations, then refreshes visibility conditions for
// a viewer at viewer and runs due auto-update callbacks.
func (r *Registry) Tick(viewer Vec3) {
	r.drain()
	now := r.clock.Now()
	for _, p := range r.order {
		p.evaluate(viewer)
		if fn := p.dueUpdate(now); fn != nil {
			if safeCall(r.logger, "panel "+p.id+" auto-update", fn) {
				p.recalculateAutoHeight()
				p.Layout()
			}
		}
	}
}

func (r *Registry) drain() {
	r.mu.Lock()
	cmds := r.pending
	r.pending = nil
	r.mu.Unlock()
	if len(cmds) == 0 {
		return
	}

	var created, destroyed uint64
	var events []lifecycleEvent
	closed := func(id string) {
		destroyed++
		events = append(events, lifecycleEvent{EventPanelClose, id})
	}
	for _, cmd := range cmds {
		switch cmd.op {
		case opCreate:
			if old := r.byID[cmd.id]; old != nil {
				r.remove(old)
				closed(old.id)
			}
			p := cmd.panel
			if p == nil {
				p = NewPanel(cmd.id)
			}
			p.attach(r.anim, r.actions)
			if cmd.fn != nil {
				if !safeCall(r.logger, "panel "+cmd.id+" build", func() { cmd.fn(p) }) {
					r.cancelPanel(p)
					continue
				}
			}
			p.Layout()
			r.byID[p.id] = p
			r.order = append(r.order, p)
			created++
			events = append(events, lifecycleEvent{EventPanelOpen, p.id})
		case opUpdate:
			p := r.byID[cmd.id]
			if p == nil || cmd.fn == nil {
				continue
			}
			safeCall(r.logger, "panel "+cmd.id+" update", func() { cmd.fn(p) })
			p.Layout()
		case opDestroy:
			if p := r.byID[cmd.id]; p != nil {
				r.remove(p)
				closed(p.id)
			}
		case opConditions:
			if p := r.byID[cmd.id]; p != nil {
				p.SetConditions(cmd.conditions)
			}
		case opClear:
			for _, p := range r.order {
				r.cancelPanel(p)
				delete(r.byID, p.id)
				closed(p.id)
			}
			r.order = nil
		}
	}

	ids := make([]string, len(r.order))
	for i, p := range r.order {
		ids[i] = p.id
	}
	r.mu.Lock()
	r.ids = ids
	r.stats.Created += created
	r.stats.Destroyed += destroyed
	r.mu.Unlock()

	if r.lifecycle != nil {
		for _, ev := range events {
			r.lifecycle(ev.typ, ev.id)
		}
	}
}

func (r *Registry) remove(p *Panel) {
	r.cancelPanel(p)
	delete(r.byID, p.id)
	if i := slices.Index(r.order, p); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
}

func (r *Registry) cancelPanel(p *Panel) {
	for _, c := range p.controls {
		p.cancelClips(c)
	}
}
