package hologram

// Synthetic button input. Each queued entry is one tick's full button
// state and replaces the host's real buttons for that tick, so scripted
// tests and automation drive the controller exactly like a user.

// queuedState returns the button state the queue will end on.
func (c *Controller) queuedState() ButtonState {
	if n := len(c.injectQueue); n > 0 {
		return c.injectQueue[n-1]
	}
	return c.prev
}

// InjectPress queues a tick with button b held, keeping other queued
// buttons as they are.
func (c *Controller) InjectPress(b MouseButton) {
	s := c.queuedState()
	if int(b) < len(s) {
		s[b] = true
	}
	c.injectQueue = append(c.injectQueue, s)
}

// InjectRelease queues a tick with button b released.
func (c *Controller) InjectRelease(b MouseButton) {
	s := c.queuedState()
	if int(b) < len(s) {
		s[b] = false
	}
	c.injectQueue = append(c.injectQueue, s)
}

// InjectHold queues ticks more ticks repeating the last queued state.
func (c *Controller) InjectHold(ticks int) {
	s := c.queuedState()
	for range ticks {
		c.injectQueue = append(c.injectQueue, s)
	}
}

// InjectClick is a convenience that queues a press followed by a release.
// Consumes two ticks.
func (c *Controller) InjectClick(b MouseButton) {
	c.InjectPress(b)
	c.InjectRelease(b)
}

// PendingInjections returns the number of queued ticks.
func (c *Controller) PendingInjections() int { return len(c.injectQueue) }

// nextButtons pops one injected state, or returns real when the queue is
// empty.
func (c *Controller) nextButtons(real ButtonState) ButtonState {
	if len(c.injectQueue) == 0 {
		return real
	}
	s := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]
	return s
}
