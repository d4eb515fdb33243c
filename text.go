package hologram

// Text is a non-interactive label.
type Text struct {
	controlBase

	Content  string
	Color    Color
	Centered bool
}

// NewText creates a 180x10 left-aligned label.
func NewText(id, content string) *Text {
	return &Text{
		controlBase: newControlBase(id, 180, 10),
		Content:     content,
		Color:       ColorWhite,
	}
}

// SetSize overrides the default dimensions.
func (t *Text) SetSize(w, h float64) *Text {
	t.width, t.height = w, h
	return t
}

func (t *Text) Render(dst Canvas, _ bool) {
	v := t.visual()
	if v.Alpha <= 0.01 {
		return
	}
	dst.Push(v)
	defer dst.Pop()

	x := t.bounds.X + 4
	if t.Centered {
		x = t.bounds.X + (t.width-dst.TextWidth(t.Content))/2
	}
	c := t.Color
	c = v.Shade(c)
	dst.DrawText(x, t.bounds.Y, t.Content, c)
}

// Separator is a thin horizontal rule.
type Separator struct {
	controlBase

	Color Color
}

// NewSeparator creates a 180x3 rule.
func NewSeparator(id string) *Separator {
	return &Separator{
		controlBase: newControlBase(id, 180, 3),
		Color:       Color{1, 1, 1, 0.25},
	}
}

// SetSize overrides the default dimensions.
func (s *Separator) SetSize(w, h float64) *Separator {
	s.width, s.height = w, h
	return s
}

func (s *Separator) Render(dst Canvas, _ bool) {
	v := s.visual()
	dst.Push(v)
	defer dst.Pop()
	c := s.Color
	c = v.Shade(c)
	dst.FillRect(s.bounds, c)
}
