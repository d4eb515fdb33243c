package hologram

import (
	"fmt"
	"math"
	"strconv"
)

// Slider is a horizontal drag control. Its normalised value lives in
// [0, 1] and maps linearly onto [Min, Max].
type Slider struct {
	controlBase

	Min, Max  float64
	Decimals  int
	Unit      string
	Label     string
	ShowValue bool

	Track  Color
	Fill   Color
	Handle Color
	Border Color

	value    float64
	dragging bool
	onChange func(actual float64)
}

// NewSlider creates a 150x16 slider over [0, 100] resting at the middle.
func NewSlider(id string) *Slider {
	return &Slider{
		controlBase: newControlBase(id, 150, 16),
		Max:         100,
		ShowValue:   true,
		Track:       Color{0.2, 0.2, 0.2, 1},
		Fill:        Color{0, 1, 0, 1},
		Handle:      ColorWhite,
		Border:      Color{0.53, 0.53, 0.53, 1},
		value:       0.5,
	}
}

// SetSize overrides the default dimensions.
func (s *Slider) SetSize(w, h float64) *Slider {
	s.width, s.height = w, h
	return s
}

// SetRange sets the value range reported to OnChange.
func (s *Slider) SetRange(min, max float64) *Slider {
	s.Min, s.Max = min, max
	return s
}

// OnChange sets the callback receiving the value in [Min, Max] whenever a
// drag moves the slider.
func (s *Slider) OnChange(fn func(actual float64)) *Slider {
	s.onChange = fn
	return s
}

// Value returns the normalised value.
func (s *Slider) Value() float64 { return s.value }

// SetValue sets the normalised value, clamped to [0, 1].
func (s *Slider) SetValue(v float64) { s.value = clamp01(v) }

// ActualValue returns the value mapped onto [Min, Max].
func (s *Slider) ActualValue() float64 {
	return s.Min + (s.Max-s.Min)*s.value
}

// SetActualValue sets the value from a number in [Min, Max].
func (s *Slider) SetActualValue(v float64) {
	if s.Max == s.Min {
		s.value = 0
		return
	}
	s.value = clamp01((v - s.Min) / (s.Max - s.Min))
}

// Dragging reports whether a drag is in progress.
func (s *Slider) Dragging() bool { return s.dragging }

func (s *Slider) Flags() Capability { return CapClickable | CapHoverable | CapDraggable }

// UpdateValueFromPointer maps the pointer X onto the track. Moves smaller
// than 0.001 are ignored.
func (s *Slider) UpdateValueFromPointer(localX float64) {
	s.dragging = true
	if s.width <= 0 {
		return
	}
	v := clamp01(localX / s.width)
	if math.Abs(v-s.value) <= 0.001 {
		return
	}
	s.value = v
	if s.onChange != nil {
		s.onChange(s.ActualValue())
	}
}

func (s *Slider) OnRelease() {
	s.dragging = false
}

// OnClick is reached for the right and middle buttons only; the left
// button starts a drag instead.
func (s *Slider) OnClick(MouseButton) {}

// ValueText formats the actual value with Decimals and Unit.
func (s *Slider) ValueText() string {
	text := strconv.FormatFloat(s.Min+(s.Max-s.Min)*s.shown(), 'f', max(s.Decimals, 0), 64) + s.Unit
	if s.Label != "" {
		return fmt.Sprintf("%s: %s", s.Label, text)
	}
	return text
}

func (s *Slider) shown() float64 {
	return s.Animated(PropSlider, s.value)
}

func (s *Slider) Render(dst Canvas, hovered bool) {
	v := s.visual()
	if v.Alpha <= 0.01 {
		return
	}
	dst.Push(v)
	defer dst.Pop()

	r := s.bounds
	trackH := r.Height * 0.4
	track := Bounds{r.X, r.Y + (r.Height-trackH)/2, r.Width, trackH}
	dst.StrokeRect(Bounds{track.X - 1, track.Y - 1, track.Width + 2, track.Height + 2}, v.Shade(s.Border), 1)
	dst.FillRect(track, v.Shade(s.Track))

	hx := r.Width * clamp01(s.shown())
	if hx > 0 {
		fill := s.Fill
		if hovered {
			fill = fill.Brighten(30.0 / 255)
		}
		dst.FillRect(Bounds{track.X, track.Y, hx, track.Height}, v.Shade(fill))
	}

	handle := s.Handle
	if hovered || s.dragging {
		handle = handle.Brighten(30.0 / 255)
	}
	hr := Bounds{r.X + hx - 4, r.Y - 2, 8, r.Height + 4}
	dst.FillRect(hr, v.Shade(handle))
	dst.StrokeRect(hr, v.Shade(s.Border), 1)

	if s.ShowValue {
		text := s.ValueText()
		dst.DrawText(r.X+(r.Width-dst.TextWidth(text))/2, r.Y-10, text, v.Shade(ColorWhite))
	}
}
