package hologram

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// notificationBuffer bounds the outbound queue. Sends never block the tick;
// when the queue is full the notification is dropped and counted.
const notificationBuffer = 16

// Notification reports a change of a user's engagement state to peers.
type Notification struct {
	UserID  uuid.UUID
	Engaged bool
	At      time.Time
}

// Notifier delivers notifications to peers. Implementations own the wire
// format.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, n Notification) error

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, n Notification) error { return f(ctx, n) }

// Tracker holds the local user's engagement flag. The tick thread flips
// it; world-action hooks on other goroutines read it through
// ShouldSuppress.
type Tracker struct {
	userID uuid.UUID
	config *ConfigStore
	clock  Clock
	logger *log.Logger

	engaged atomic.Bool
	last    atomic.Int64 // unix nanos of the last accepted click, 0 if none
	dropped atomic.Uint64
	out     chan Notification
}

// NewTracker creates a tracker for userID reading suppression flags from
// config. A nil config uses DefaultConfig.
func NewTracker(userID uuid.UUID, config *ConfigStore, clock Clock, logger *log.Logger) *Tracker {
	if config == nil {
		config = NewConfigStore(DefaultConfig())
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = defaultLogger()
	}
	return &Tracker{
		userID: userID,
		config: config,
		clock:  clock,
		logger: logger,
		out:    make(chan Notification, notificationBuffer),
	}
}

// UserID returns the tracked user.
func (t *Tracker) UserID() uuid.UUID { return t.userID }

// StartInteraction marks the user engaged. It reports whether the state
// changed; only a change queues a notification.
func (t *Tracker) StartInteraction() bool {
	if !t.engaged.CompareAndSwap(false, true) {
		return false
	}
	t.notify(true)
	return true
}

// EndInteraction clears engagement. It reports whether the state changed.
func (t *Tracker) EndInteraction() bool {
	if !t.engaged.CompareAndSwap(true, false) {
		return false
	}
	t.notify(false)
	return true
}

// IsInteracting reports the engagement flag.
func (t *Tracker) IsInteracting() bool { return t.engaged.Load() }

// ShouldSuppress reports whether a world action of kind must be blocked
// right now. Using the held item is never blocked.
func (t *Tracker) ShouldSuppress(kind ActionKind) bool {
	cfg := t.config.Load()
	if !cfg.SuppressWorldInteractions || !t.engaged.Load() {
		return false
	}
	switch kind {
	case ActionBreakBlock:
		return cfg.SuppressBlockBreaking
	case ActionAttackEntity:
		return cfg.SuppressEntityAttacking
	case ActionUseBlock:
		return cfg.SuppressBlockUsage
	default:
		return false
	}
}

// Touch records an accepted click.
func (t *Tracker) Touch() {
	t.last.Store(t.clock.Now().UnixNano())
}

// LastInteraction returns the time of the last accepted click, or the zero
// time.
func (t *Tracker) LastInteraction() time.Time {
	n := t.last.Load()
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}

// Clear resets engagement and the last interaction time. A notification is
// queued if the user was engaged.
func (t *Tracker) Clear() {
	t.EndInteraction()
	t.last.Store(0)
}

// Notifications exposes the outbound queue for hosts that deliver
// notifications themselves instead of calling Run.
func (t *Tracker) Notifications() <-chan Notification { return t.out }

// Dropped returns how many notifications were discarded on a full queue.
func (t *Tracker) Dropped() uint64 { return t.dropped.Load() }

func (t *Tracker) notify(engaged bool) {
	n := Notification{UserID: t.userID, Engaged: engaged, At: t.clock.Now()}
	select {
	case t.out <- n:
	default:
		t.dropped.Add(1)
	}
}

// Run delivers queued notifications to n until ctx is done. Delivery
// errors are logged and do not stop the loop.
func (t *Tracker) Run(ctx context.Context, n Notifier) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case note := <-t.out:
			if err := n.Notify(ctx, note); err != nil {
				t.logger.Printf("warning: engagement notification for %s: %v", note.UserID, err)
			}
		}
	}
}
