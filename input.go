package hologram

import "github.com/hajimehoshi/ebiten/v2"

// InputSource polls the host's pointer buttons once per tick.
type InputSource interface {
	Buttons() ButtonState
	// BlockingUI reports whether a foreground screen owns the pointer.
	BlockingUI() bool
}

// EbitenInput reads mouse buttons from ebiten. Blocking, when set, is
// consulted for foreground screens.
type EbitenInput struct {
	Blocking func() bool
}

// Buttons returns the pressed state of the left, right and middle buttons.
func (EbitenInput) Buttons() ButtonState {
	var s ButtonState
	s[MouseButtonLeft] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s[MouseButtonRight] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	s[MouseButtonMiddle] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	return s
}

// BlockingUI calls Blocking, or reports false when it is nil.
func (in EbitenInput) BlockingUI() bool {
	return in.Blocking != nil && in.Blocking()
}

// StaticInput is an InputSource with fixed state, for tests and headless
// hosts.
type StaticInput struct {
	State    ButtonState
	Blocking bool
}

func (s *StaticInput) Buttons() ButtonState { return s.State }

func (s *StaticInput) BlockingUI() bool { return s.Blocking }

// Press sets b held.
func (s *StaticInput) Press(b MouseButton) { s.State[b] = true }

// Release sets b released.
func (s *StaticInput) Release(b MouseButton) { s.State[b] = false }
