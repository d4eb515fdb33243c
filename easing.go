package hologram

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// Easing maps linear progress t in [0, 1] to eased progress. Results may
// leave [0, 1] for the back, elastic and bounce families; callers must not
// clamp them.
type Easing func(t float64) float64

// FromTween adapts a gween easing function to the normalised Easing form.
func FromTween(fn ease.TweenFunc) Easing {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

var (
	Linear = FromTween(ease.Linear)

	InQuad    = FromTween(ease.InQuad)
	OutQuad   = FromTween(ease.OutQuad)
	InOutQuad = FromTween(ease.InOutQuad)

	InCubic    = FromTween(ease.InCubic)
	OutCubic   = FromTween(ease.OutCubic)
	InOutCubic = FromTween(ease.InOutCubic)

	InQuart    = FromTween(ease.InQuart)
	OutQuart   = FromTween(ease.OutQuart)
	InOutQuart = FromTween(ease.InOutQuart)

	InQuint    = FromTween(ease.InQuint)
	OutQuint   = FromTween(ease.OutQuint)
	InOutQuint = FromTween(ease.InOutQuint)

	InSine    = FromTween(ease.InSine)
	OutSine   = FromTween(ease.OutSine)
	InOutSine = FromTween(ease.InOutSine)

	InExpo    = FromTween(ease.InExpo)
	OutExpo   = FromTween(ease.OutExpo)
	InOutExpo = FromTween(ease.InOutExpo)

	InCirc    = FromTween(ease.InCirc)
	OutCirc   = FromTween(ease.OutCirc)
	InOutCirc = FromTween(ease.InOutCirc)

	InBack    = FromTween(ease.InBack)
	OutBack   = FromTween(ease.OutBack)
	InOutBack = FromTween(ease.InOutBack)

	InElastic    = FromTween(ease.InElastic)
	OutElastic   = FromTween(ease.OutElastic)
	InOutElastic = FromTween(ease.InOutElastic)

	InBounce    = FromTween(ease.InBounce)
	OutBounce   = FromTween(ease.OutBounce)
	InOutBounce = FromTween(ease.InOutBounce)
)

// easings is keyed by the canonical lower-case name without the "ease"
// prefix or separators, e.g. "inoutquad".
var easings = map[string]Easing{
	"linear": Linear,

	"inquad": InQuad, "outquad": OutQuad, "inoutquad": InOutQuad,
	"incubic": InCubic, "outcubic": OutCubic, "inoutcubic": InOutCubic,
	"inquart": InQuart, "outquart": OutQuart, "inoutquart": InOutQuart,
	"inquint": InQuint, "outquint": OutQuint, "inoutquint": InOutQuint,
	"insine": InSine, "outsine": OutSine, "inoutsine": InOutSine,
	"inexpo": InExpo, "outexpo": OutExpo, "inoutexpo": InOutExpo,
	"incirc": InCirc, "outcirc": OutCirc, "inoutcirc": InOutCirc,
	"inback": InBack, "outback": OutBack, "inoutback": InOutBack,
	"inelastic": InElastic, "outelastic": OutElastic, "inoutelastic": InOutElastic,
	"inbounce": InBounce, "outbounce": OutBounce, "inoutbounce": InOutBounce,
}

// EasingByName resolves an easing by name. Matching ignores case, an
// optional "ease" prefix and '_' / '-' separators, so "easeOutQuad",
// "outquad" and "out_quad" are equivalent. Unknown names return Linear.
func EasingByName(name string) Easing {
	if fn, ok := lookupEasing(name); ok {
		return fn
	}
	return Linear
}

// IsEasingName reports whether name resolves to a known easing.
func IsEasingName(name string) bool {
	_, ok := lookupEasing(name)
	return ok
}

func lookupEasing(name string) (Easing, bool) {
	key := strings.ToLower(name)
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
	if key != "ease" {
		key = strings.TrimPrefix(key, "ease")
	}
	fn, ok := easings[key]
	return fn, ok
}
