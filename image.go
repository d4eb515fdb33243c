package hologram

// Image draws a texture referenced by Source. Loading the texture is the
// renderer's job.
type Image struct {
	controlBase

	Source     string
	KeepAspect bool

	srcW, srcH float64
}

// NewImage creates a 16x16 image.
func NewImage(id, source string) *Image {
	return &Image{
		controlBase: newControlBase(id, 16, 16),
		Source:      source,
		KeepAspect:  true,
		srcW:        16,
		srcH:        16,
	}
}

// SetSize sets the drawn width and, unless the aspect is kept, the height.
func (m *Image) SetSize(w, h float64) *Image {
	m.width = w
	if m.KeepAspect {
		m.fitAspect()
	} else {
		m.height = h
	}
	return m
}

// SetSourceSize records the pixel size of the texture. With KeepAspect the
// height follows the width.
func (m *Image) SetSourceSize(w, h float64) *Image {
	m.srcW, m.srcH = w, h
	if m.KeepAspect {
		m.fitAspect()
	}
	return m
}

func (m *Image) fitAspect() {
	if m.srcW > 0 && m.srcH > 0 {
		m.height = m.width * m.srcH / m.srcW
	}
}

func (m *Image) Render(dst Canvas, hovered bool) {
	v := m.visual()
	if v.Alpha <= 0.01 {
		return
	}
	dst.Push(v)
	defer dst.Pop()
	dst.DrawImage(m.bounds, m.Source, v.Alpha)
	if hovered {
		dst.FillRect(m.bounds, v.Shade(Color{1, 1, 1, 0.2}))
	}
}
