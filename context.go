package hologram

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// Options configures a Context. Zero values select defaults.
type Options struct {
	// UserID identifies the local user in engagement notifications. A nil
	// UUID is replaced with a random one.
	UserID uuid.UUID
	Config *ConfigStore
	Clock  Clock
	Logger *log.Logger
	// Input is polled by Tick. Nil means no buttons are ever pressed.
	Input    InputSource
	Feedback Feedback
}

// Context is the top-level object that owns the registry, the animation
// scheduler, the interaction controller and the suppression tracker for one
// local user. Hosts create one at startup and call Tick once per game
// tick.
type Context struct {
	config     *ConfigStore
	clock      Clock
	logger     *log.Logger
	input      InputSource
	debug      bool
	runner     *TestRunner
	scheduler  *Scheduler
	actions    *ActionRegistry
	registry   *Registry
	tracker    *Tracker
	controller *Controller
	peers      *PeerTable
}

// New creates a Context.
func New(opts Options) *Context {
	if opts.Config == nil {
		opts.Config = NewConfigStore(DefaultConfig())
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = defaultLogger()
	}
	if opts.UserID == uuid.Nil {
		opts.UserID = uuid.New()
	}
	c := &Context{
		config: opts.Config,
		clock:  opts.Clock,
		logger: opts.Logger,
		input:  opts.Input,
		peers:  NewPeerTable(),
	}
	c.scheduler = NewScheduler(opts.Clock, opts.Logger)
	c.actions = NewActionRegistry(opts.Logger)
	c.registry = NewRegistry(c.scheduler, c.actions, opts.Clock, opts.Logger)
	c.tracker = NewTracker(opts.UserID, opts.Config, opts.Clock, opts.Logger)
	c.controller = NewController(c.registry, c.tracker, opts.Config, opts.Logger)
	c.controller.SetFeedback(opts.Feedback)
	return c
}

func (c *Context) Registry() *Registry { return c.registry }
func (c *Context) Scheduler() *Scheduler { return c.scheduler }
func (c *Context) Controller() *Controller { return c.controller }
func (c *Context) Tracker() *Tracker { return c.tracker }
func (c *Context) Actions() *ActionRegistry { return c.actions }
func (c *Context) Config() *ConfigStore { return c.config }
func (c *Context) Peers() *PeerTable { return c.peers }
func (c *Context) Logger() *log.Logger { return c.logger }
func (c *Context) Clock() Clock { return c.clock }

// SetEntityStore sets the ECS bridge on the controller.
func (c *Context) SetEntityStore(store EntityStore) {
	c.controller.SetEntityStore(store)
}

// SetDebugMode enables per-tick timing logs and panel geometry checks.
// The config's debug flag has the same effect.
func (c *Context) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// Tick runs one frame for a viewer at eye looking along look, polling
// buttons from the configured input source.
func (c *Context) Tick(eye, look Vec3) {
	in := FrameInput{Eye: eye, Look: look}
	if c.input != nil {
		in.Buttons = c.input.Buttons()
		in.BlockingUI = c.input.BlockingUI()
	}
	c.TickInput(in)
}

// TickInput runs one frame with explicit input: queued registry changes
// are applied, visibility refreshed, interaction processed, then finished
// animations are pruned.
func (c *Context) TickInput(in FrameInput) {
	debug := c.debug || c.config.Load().Debug
	var stats tickStats
	var t0 time.Time
	if debug {
		t0 = time.Now()
	}

	c.registry.Tick(in.Eye)
	if debug {
		stats.drainTime = time.Since(t0)
		t0 = time.Now()
		for _, p := range c.registry.Panels() {
			debugCheckPanel(c.logger, p)
		}
	}

	if c.runner != nil {
		c.runner.step(c, &in)
	}
	c.controller.Update(in)
	if debug {
		stats.interactTime = time.Since(t0)
		t0 = time.Now()
	}

	c.scheduler.Tick()
	if debug {
		stats.animTime = time.Since(t0)
		stats.panelCount = len(c.registry.Panels())
		stats.clipCount = c.scheduler.Len()
		stats.hovered = describeControl(c.controller.hovered)
		stats.engaged = c.tracker.IsInteracting()
		c.debugLog(stats)
	}
}

// Draw renders every visible panel. begin is called per panel and returns
// the canvas to draw it into, positioned at the panel's frame; a nil canvas
// skips the panel.
func (c *Context) Draw(begin func(p *Panel) Canvas) {
	hovered, _ := c.controller.Hovered()
	for _, p := range c.registry.Panels() {
		if !p.Visible() {
			continue
		}
		dst := begin(p)
		if dst == nil {
			continue
		}
		safeCall(c.logger, "panel "+p.id+" render", func() { p.Render(dst, hovered) })
	}
}

// Shutdown destroys every panel, drops all animations, releases any drag
// and ends engagement.
func (c *Context) Shutdown() {
	c.controller.CancelDrag()
	c.registry.Clear()
	c.registry.drain()
	c.scheduler.Clear()
	c.controller.Reset()
	c.tracker.Clear()
}
