package hologram

import "time"

// Well-known animated property names. Controls sample these while rendering;
// any other string is a valid custom channel.
const (
	PropOpacity    = "opacity"
	PropScale      = "scale"
	PropScaleX     = "scaleX"
	PropScaleY     = "scaleY"
	PropRotation   = "rotation"
	PropTranslateX = "translateX"
	PropTranslateY = "translateY"
	PropTranslateZ = "translateZ"
	PropColorR     = "colorR"
	PropColorG     = "colorG"
	PropColorB     = "colorB"
	PropColorA     = "colorA"
	PropHoverScale = "hoverScale"
	PropHoverGlow  = "hoverGlow"
	PropProgress   = "progress"
	PropSlider     = "sliderValue"
)

// Clip interpolates one numeric property from From to To over Duration,
// after an optional Delay. A Clip is started by Scheduler.Add and must not
// be shared between channels.
type Clip struct {
	Property   string
	From, To   float64
	Duration   time.Duration
	Delay      time.Duration
	Easing     Easing
	OnComplete func()

	start     time.Time
	started   bool
	completed bool
	cancelled bool
}

// begin records the start timestamp and resets lifecycle flags.
func (c *Clip) begin(now time.Time) {
	c.start = now
	c.started = true
	c.completed = false
	c.cancelled = false
}

// Cancel marks the clip cancelled. A cancelled clip never completes and its
// callback never fires.
func (c *Clip) Cancel() {
	c.cancelled = true
}

// Started reports whether the clip has been handed to a scheduler.
func (c *Clip) Started() bool { return c.started }

// Completed reports whether the clip reached its end value.
func (c *Clip) Completed() bool { return c.completed }

// Cancelled reports whether the clip was cancelled.
func (c *Clip) Cancelled() bool { return c.cancelled }

// Done reports whether the clip is finished for any reason.
func (c *Clip) Done() bool { return c.completed || c.cancelled }

// progress returns the clamped linear progress at now and whether the clip
// is still in its delay window.
func (c *Clip) progress(now time.Time) (p float64, delayed bool) {
	if !c.started {
		return 0, true
	}
	elapsed := now.Sub(c.start)
	if elapsed < c.Delay {
		return 0, true
	}
	if c.Duration <= 0 {
		return 1, false
	}
	return clamp01(float64(elapsed-c.Delay) / float64(c.Duration)), false
}

// valueAt returns the interpolated value for progress p. Easing output is
// used as-is so overshoot survives.
func (c *Clip) valueAt(p float64) float64 {
	fn := c.Easing
	if fn == nil {
		fn = Linear
	}
	return c.From + (c.To-c.From)*fn(p)
}

// ClipBuilder assembles a Clip with the defaults of the original toolkit:
// 0 → 1 over 300ms with OutQuad easing.
type ClipBuilder struct {
	clip Clip
}

// Animate starts building a clip for property.
func Animate(property string) *ClipBuilder {
	return &ClipBuilder{clip: Clip{
		Property: property,
		From:     0,
		To:       1,
		Duration: 300 * time.Millisecond,
		Easing:   OutQuad,
	}}
}

// From sets the start value.
func (b *ClipBuilder) From(v float64) *ClipBuilder { b.clip.From = v; return b }

// To sets the end value.
func (b *ClipBuilder) To(v float64) *ClipBuilder { b.clip.To = v; return b }

// Duration sets the interpolation time.
func (b *ClipBuilder) Duration(d time.Duration) *ClipBuilder { b.clip.Duration = d; return b }

// Delay sets the wait before interpolation starts.
func (b *ClipBuilder) Delay(d time.Duration) *ClipBuilder { b.clip.Delay = d; return b }

// Ease sets the easing function.
func (b *ClipBuilder) Ease(fn Easing) *ClipBuilder { b.clip.Easing = fn; return b }

// EaseNamed sets the easing by name; unknown names fall back to Linear.
func (b *ClipBuilder) EaseNamed(name string) *ClipBuilder {
	b.clip.Easing = EasingByName(name)
	return b
}

// OnComplete sets a callback fired once when the clip reaches its end.
func (b *ClipBuilder) OnComplete(fn func()) *ClipBuilder { b.clip.OnComplete = fn; return b }

// Build returns a fresh, unstarted clip.
func (b *ClipBuilder) Build() *Clip {
	c := b.clip
	return &c
}
