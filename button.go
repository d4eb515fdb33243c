package hologram

// Button is a clickable text row. A left click runs, in order of priority,
// the simple callback, the element callback, or the named action; only the
// first one set fires.
type Button struct {
	controlBase

	Text       string
	Action     string
	TextColor  Color
	HoverColor Color

	onClick   func()
	onElement func(*Button)
	hovered   bool
}

// NewButton creates a 180x20 button.
func NewButton(id, text string) *Button {
	return &Button{
		controlBase: newControlBase(id, 180, 20),
		Text:        text,
		TextColor:   ColorWhite,
		HoverColor:  Color{1, 1, 1, 0.25},
	}
}

// SetSize overrides the default dimensions.
func (b *Button) SetSize(w, h float64) *Button {
	b.width, b.height = w, h
	return b
}

// OnPress sets the simple callback.
func (b *Button) OnPress(fn func()) *Button {
	b.onClick = fn
	return b
}

// OnPressElement sets a callback that receives the button.
func (b *Button) OnPressElement(fn func(*Button)) *Button {
	b.onElement = fn
	return b
}

// WithAction names an ActionRegistry entry run on click when no callback is
// set.
func (b *Button) WithAction(action string) *Button {
	b.Action = action
	return b
}

// ClearCallbacks removes both callbacks and the action.
func (b *Button) ClearCallbacks() {
	b.onClick = nil
	b.onElement = nil
	b.Action = ""
}

// Hovered reports whether the pointer rests on the button.
func (b *Button) Hovered() bool { return b.hovered }

func (b *Button) Flags() Capability { return CapClickable | CapHoverable }

func (b *Button) OnClick(button MouseButton) {
	if button != MouseButtonLeft {
		return
	}
	b.Animate(ClickBounce())
	switch {
	case b.onClick != nil:
		b.onClick()
	case b.onElement != nil:
		b.onElement(b)
	case b.Action != "" && b.actions != nil:
		b.actions.Execute(b.Action, b)
	}
}

func (b *Button) OnHoverStart() {
	b.hovered = true
	b.Animate(HoverGrow())
}

func (b *Button) OnHoverEnd() {
	b.hovered = false
	b.Animate(HoverShrink())
}

func (b *Button) Render(dst Canvas, hovered bool) {
	v := b.visual()
	if v.Alpha <= 0.01 {
		return
	}
	dst.Push(v)
	defer dst.Pop()

	r := b.bounds
	if hovered {
		bg := b.HoverColor
		bg = v.Shade(bg)
		dst.FillRect(r, bg)
	}
	c := b.TextColor
	if hovered {
		c = c.Brighten(30.0 / 255)
	}
	c = v.Shade(c)
	dst.DrawText(r.X+4, r.Y+(r.Height-8)/2, b.Text, c)
}
