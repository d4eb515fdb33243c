package hologram

import (
	"log"
	"sort"
	"sync"
)

// ActionFunc handles a named action triggered by a control.
type ActionFunc func(source Control)

// ActionRegistry maps action ids to handlers, letting panels built from
// data refer to behavior by name. Safe for concurrent registration; Execute
// runs on the tick thread.
type ActionRegistry struct {
	mu      sync.RWMutex
	actions map[string]ActionFunc
	logger  *log.Logger
}

// NewActionRegistry creates an empty registry.
func NewActionRegistry(logger *log.Logger) *ActionRegistry {
	if logger == nil {
		logger = defaultLogger()
	}
	return &ActionRegistry{actions: make(map[string]ActionFunc), logger: logger}
}

// Register binds id to fn, replacing any previous handler.
func (r *ActionRegistry) Register(id string, fn ActionFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[id] = fn
}

// Unregister removes id.
func (r *ActionRegistry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.actions, id)
}

// Has reports whether id is bound.
func (r *ActionRegistry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.actions[id]
	return ok
}

// IDs returns the bound ids, sorted.
func (r *ActionRegistry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.actions))
	for id := range r.actions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Execute runs the handler for id with source. Unknown ids are logged. A
// panicking handler is recovered and logged. Execute reports whether a
// handler ran to completion.
func (r *ActionRegistry) Execute(id string, source Control) bool {
	r.mu.RLock()
	fn := r.actions[id]
	r.mu.RUnlock()
	if fn == nil {
		r.logger.Printf("warning: unknown action %q from %s", id, describeControl(source))
		return false
	}
	return safeCall(r.logger, "action "+id, func() { fn(source) })
}

// Clear removes every binding.
func (r *ActionRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.actions)
}
