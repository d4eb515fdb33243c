package hologram

import (
	"fmt"
	"time"
)

// ProgressBar shows a fill fraction in [0, 1].
type ProgressBar struct {
	controlBase

	Label          string
	ShowPercentage bool
	Background     Color
	Foreground     Color
	Border         Color

	progress float64
}

// NewProgressBar creates a 100x12 bar at 50%.
func NewProgressBar(id string) *ProgressBar {
	return &ProgressBar{
		controlBase:    newControlBase(id, 100, 12),
		ShowPercentage: true,
		Background:     Color{0.2, 0.2, 0.2, 1},
		Foreground:     Color{0, 1, 0, 1},
		Border:         Color{0.53, 0.53, 0.53, 1},
		progress:       0.5,
	}
}

// SetSize overrides the default dimensions.
func (p *ProgressBar) SetSize(w, h float64) *ProgressBar {
	p.width, p.height = w, h
	return p
}

// Progress returns the target fraction.
func (p *ProgressBar) Progress() float64 { return p.progress }

// SetProgress jumps to v, clamped to [0, 1].
func (p *ProgressBar) SetProgress(v float64) {
	p.CancelAnimations(PropProgress)
	p.progress = clamp01(v)
}

// AnimateProgress eases from the displayed fraction to v over d.
func (p *ProgressBar) AnimateProgress(v float64, d time.Duration) {
	from := p.Displayed()
	p.progress = clamp01(v)
	p.Animate(Animate(PropProgress).From(from).To(p.progress).Duration(d).Ease(OutCubic).Build())
}

// Displayed returns the fraction currently drawn, which trails Progress
// while an animation plays.
func (p *ProgressBar) Displayed() float64 {
	return p.Animated(PropProgress, p.progress)
}

func (p *ProgressBar) Render(dst Canvas, hovered bool) {
	v := p.visual()
	if v.Alpha <= 0.01 {
		return
	}
	dst.Push(v)
	defer dst.Pop()

	r := p.bounds
	shown := clamp01(p.Displayed())
	dst.StrokeRect(r, v.Shade(p.Border), 2)
	dst.FillRect(r, v.Shade(p.Background))
	if shown > 0 {
		fg := p.Foreground
		if hovered {
			fg = fg.Brighten(0.2)
		}
		dst.FillRect(Bounds{r.X, r.Y, r.Width * shown, r.Height}, v.Shade(fg))
	}
	if p.ShowPercentage {
		s := fmt.Sprintf("%.0f%%", shown*100)
		if p.Label != "" {
			s = p.Label + " " + s
		}
		dst.DrawText(r.X+(r.Width-dst.TextWidth(s))/2, r.Y+(r.Height-8)/2, s, v.Shade(ColorWhite))
	}
}
