package hologram

// Container groups child controls and stacks them vertically or
// horizontally inside its own padding. Hit testing stops at the container:
// children are drawn but never hovered on their own.
type Container struct {
	controlBase

	Direction  LayoutDirection
	Padding    float64
	Spacing    float64
	Align      Alignment
	Background *Color
	Border     *Color

	children []Control
}

// NewContainer creates an empty 100x50 vertical container.
func NewContainer(id string) *Container {
	return &Container{
		controlBase: newControlBase(id, 100, 50),
		Padding:     4,
		Spacing:     2,
	}
}

// SetSize overrides the current dimensions. Adding or removing children
// recomputes the size along the stacking axis.
func (c *Container) SetSize(w, h float64) *Container {
	c.width, c.height = w, h
	return c
}

// Add appends children and resizes. Children inherit the container's
// scheduler.
func (c *Container) Add(children ...Control) *Container {
	for _, child := range children {
		if a, ok := child.(attachable); ok && c.anim != nil {
			a.attach(c.anim, c.actions, c.panel)
		}
		c.children = append(c.children, child)
	}
	c.recalculateSize()
	return c
}

// Remove drops the child with the given id. It reports whether one was
// found.
func (c *Container) Remove(id string) bool {
	for i, child := range c.children {
		if child.ID() == id {
			c.children = append(c.children[:i], c.children[i+1:]...)
			c.recalculateSize()
			return true
		}
	}
	return false
}

// Children returns the children in stacking order. The slice must not be
// modified.
func (c *Container) Children() []Control { return c.children }

func (c *Container) attach(anim *Scheduler, actions *ActionRegistry, panelID string) {
	c.controlBase.attach(anim, actions, panelID)
	for _, child := range c.children {
		if a, ok := child.(attachable); ok {
			a.attach(anim, actions, panelID)
		}
	}
}

// SetBounds places the container and lays out its children.
func (c *Container) SetBounds(r Bounds) {
	c.bounds = r
	c.layout()
}

func (c *Container) recalculateSize() {
	if len(c.children) == 0 {
		return
	}
	total := c.Padding * 2
	for i, child := range c.children {
		if i > 0 {
			total += c.Spacing
		}
		if c.Direction == LayoutHorizontal {
			total += child.Width()
		} else {
			total += child.Height()
		}
	}
	if c.Direction == LayoutHorizontal {
		c.width = total
	} else {
		c.height = total
	}
}

func (c *Container) layout() {
	x := c.bounds.X + c.Padding
	y := c.bounds.Y + c.Padding
	avail := c.width - c.Padding*2
	for _, child := range c.children {
		w, h := child.Width(), child.Height()
		if c.Direction == LayoutHorizontal {
			child.SetBounds(Bounds{x, y, w, h})
			x += w + c.Spacing
			continue
		}
		child.SetBounds(Bounds{x + c.Align.offset(avail, w), y, w, h})
		y += h + c.Spacing
	}
}

func (c *Container) Render(dst Canvas, hovered bool) {
	v := c.visual()
	if v.Alpha <= 0.01 {
		return
	}
	dst.Push(v)
	defer dst.Pop()
	if c.Background != nil {
		dst.FillRect(c.bounds, v.Shade(*c.Background))
	}
	if c.Border != nil {
		dst.StrokeRect(c.bounds, v.Shade(*c.Border), 1)
	}
	for _, child := range c.children {
		child.Render(dst, false)
	}
}
