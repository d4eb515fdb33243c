package hologram

import (
	"fmt"
	"log"
	"os"
	"time"
)

// defaultLogger writes to stderr with the package prefix.
func defaultLogger() *log.Logger {
	return log.New(os.Stderr, "[hologram] ", log.LstdFlags)
}

// safeCall runs fn, recovering and logging any panic. It reports whether fn
// returned normally. Every user callback (control events, clip completions,
// actions, event handlers) goes through here so one faulty control cannot
// abort the rest of the tick.
func safeCall(logger *log.Logger, what string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			if logger != nil {
				logger.Printf("error: %s panicked: %v", what, r)
			}
		}
	}()
	fn()
	return true
}

// tickStats holds per-tick timing. Only populated in debug mode.
type tickStats struct {
	drainTime    time.Duration
	interactTime time.Duration
	animTime     time.Duration
	panelCount   int
	clipCount    int
	hovered      string
	engaged      bool
}

// debugLog prints tick timing and state.
func (c *Context) debugLog(stats tickStats) {
	total := stats.drainTime + stats.interactTime + stats.animTime
	c.logger.Printf("registry: %v | interaction: %v | animation: %v | total: %v",
		stats.drainTime, stats.interactTime, stats.animTime, total)
	c.logger.Printf("panels: %d | clips: %d | hovered: %q | engaged: %t",
		stats.panelCount, stats.clipCount, stats.hovered, stats.engaged)
}

// debugCheckPanel warns when a panel's geometry breaks its invariants.
func debugCheckPanel(logger *log.Logger, p *Panel) {
	if p.width <= 0 {
		logger.Printf("warning: panel %q has non-positive width %v", p.id, p.width)
	}
	if p.scale <= 0 {
		logger.Printf("warning: panel %q has non-positive scale %v", p.id, p.scale)
	}
	if p.autoHeight {
		if want := p.ContentHeight(); p.height != want {
			logger.Printf("warning: panel %q auto height %v, content %v", p.id, p.height, want)
		}
	}
}

// describeControl renders a short label for log lines.
func describeControl(c Control) string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%s(%T)", c.ID(), c)
}
