package hologram

import "time"

// Preset clips. Each call returns a fresh clip; hand it to Scheduler.Add or
// a control's Animate.

func FadeIn(d time.Duration) *Clip {
	return Animate(PropOpacity).From(0).To(1).Duration(d).Ease(OutQuad).Build()
}

func FadeOut(d time.Duration) *Clip {
	return Animate(PropOpacity).From(1).To(0).Duration(d).Ease(InQuad).Build()
}

// ScaleIn grows from nothing with a slight overshoot.
func ScaleIn(d time.Duration) *Clip {
	return Animate(PropScale).From(0).To(1).Duration(d).Ease(OutBack).Build()
}

func ScaleOut(d time.Duration) *Clip {
	return Animate(PropScale).From(1).To(0).Duration(d).Ease(InBack).Build()
}

func ScaleBounce() *Clip {
	return Animate(PropScale).From(1).To(1.1).Duration(150 * time.Millisecond).Ease(OutBounce).Build()
}

// SlideInX slides in horizontally from -distance (left) or +distance
// (right) to rest.
func SlideInX(distance float64, d time.Duration) *Clip {
	return Animate(PropTranslateX).From(distance).To(0).Duration(d).Ease(OutCubic).Build()
}

func SlideInY(distance float64, d time.Duration) *Clip {
	return Animate(PropTranslateY).From(distance).To(0).Duration(d).Ease(OutCubic).Build()
}

func SlideOutX(distance float64, d time.Duration) *Clip {
	return Animate(PropTranslateX).From(0).To(distance).Duration(d).Ease(InCubic).Build()
}

func SlideOutY(distance float64, d time.Duration) *Clip {
	return Animate(PropTranslateY).From(0).To(distance).Duration(d).Ease(InCubic).Build()
}

// HoverGrow and HoverShrink pair up on the hover scale channel.
func HoverGrow() *Clip {
	return Animate(PropHoverScale).From(1).To(1.05).Duration(150 * time.Millisecond).Ease(OutQuad).Build()
}

func HoverShrink() *Clip {
	return Animate(PropHoverScale).From(1.05).To(1).Duration(150 * time.Millisecond).Ease(OutQuad).Build()
}

func HoverGlowOn() *Clip {
	return Animate(PropHoverGlow).From(0).To(1).Duration(200 * time.Millisecond).Ease(OutQuad).Build()
}

func HoverGlowOff() *Clip {
	return Animate(PropHoverGlow).From(1).To(0).Duration(200 * time.Millisecond).Ease(OutQuad).Build()
}

func ClickBounce() *Clip {
	return Animate(PropScale).From(1).To(0.95).Duration(100 * time.Millisecond).Ease(InOutQuad).Build()
}

func ClickFlash() *Clip {
	return Animate(PropColorA).From(1).To(0.5).Duration(100 * time.Millisecond).Ease(InOutQuad).Build()
}

// Pulse rotates one full turn, linearly.
func Pulse(d time.Duration) *Clip {
	return Animate(PropRotation).From(0).To(360).Duration(d).Ease(Linear).Build()
}

func Shake() *Clip {
	return Animate(PropRotation).From(-5).To(5).Duration(100 * time.Millisecond).Ease(InOutQuad).Build()
}

// FadeScaleIn plays FadeIn and ScaleIn together on the channel key of a
// control (see AnimationKey).
func FadeScaleIn(s *Scheduler, key string, d time.Duration) {
	s.Add(key, FadeIn(d))
	s.Add(key, ScaleIn(d))
}

// FadeScaleOut plays FadeOut and ScaleOut together on key.
func FadeScaleOut(s *Scheduler, key string, d time.Duration) {
	s.Add(key, FadeOut(d))
	s.Add(key, ScaleOut(d))
}

// SlideFadeIn fades in while sliding in from the left by distance.
func SlideFadeIn(s *Scheduler, key string, distance float64, d time.Duration) {
	s.Add(key, FadeIn(d))
	s.Add(key, SlideInX(-distance, d))
}
