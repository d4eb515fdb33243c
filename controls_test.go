package hologram

import (
	"bytes"
	"log"
	"testing"
	"time"
)

func attachTo(c Control, s *Scheduler, a *ActionRegistry) {
	if at, ok := c.(attachable); ok {
		at.attach(s, a, "")
	}
}

// --- Button ---

func TestButtonDefaults(t *testing.T) {
	b := NewButton("ok", "OK")
	assertNear(t, "width", b.Width(), 180)
	assertNear(t, "height", b.Height(), 20)
	if !b.Flags().Has(CapClickable) || !b.Flags().Has(CapHoverable) || b.Flags().Has(CapDraggable) {
		t.Errorf("flags = %v", b.Flags())
	}
}

func TestButtonLeftClickOnly(t *testing.T) {
	calls := 0
	b := NewButton("ok", "OK").OnPress(func() { calls++ })
	b.OnClick(MouseButtonRight)
	b.OnClick(MouseButtonMiddle)
	if calls != 0 {
		t.Fatalf("non-left click fired callback")
	}
	b.OnClick(MouseButtonLeft)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestButtonCallbackPriority(t *testing.T) {
	var got []string
	actions := NewActionRegistry(log.New(&bytes.Buffer{}, "", 0))
	actions.Register("act", func(Control) { got = append(got, "action") })

	b := NewButton("ok", "OK").
		OnPress(func() { got = append(got, "simple") }).
		OnPressElement(func(*Button) { got = append(got, "element") }).
		WithAction("act")
	attachTo(b, nil, actions)

	b.OnClick(MouseButtonLeft)
	b.OnPress(nil)
	b.OnClick(MouseButtonLeft)
	b.OnPressElement(nil)
	b.OnClick(MouseButtonLeft)
	b.ClearCallbacks()
	b.OnClick(MouseButtonLeft)

	want := []string{"simple", "element", "action"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestButtonElementCallbackReceivesButton(t *testing.T) {
	var seen *Button
	b := NewButton("ok", "OK")
	b.OnPressElement(func(x *Button) { seen = x })
	b.OnClick(MouseButtonLeft)
	if seen != b {
		t.Error("element callback did not receive the button")
	}
}

func TestButtonHoverAnimations(t *testing.T) {
	s, clock := newTestScheduler()
	b := NewButton("ok", "OK")
	attachTo(b, s, nil)

	b.OnHoverStart()
	if !b.Hovered() || !s.Has("ok", PropHoverScale) {
		t.Fatal("hover start should set hovered and grow")
	}
	clock.Advance(time.Second)
	assertNear(t, "grown", s.Sample("ok", PropHoverScale, 1), 1.05)

	b.OnHoverEnd()
	if b.Hovered() {
		t.Error("still hovered")
	}
	clock.Advance(time.Second)
	assertNear(t, "shrunk", s.Sample("ok", PropHoverScale, 1.05), 1)
}

func TestButtonClickBounce(t *testing.T) {
	s, _ := newTestScheduler()
	b := NewButton("ok", "OK")
	attachTo(b, s, nil)
	b.OnClick(MouseButtonLeft)
	if !s.Has("ok", PropScale) {
		t.Error("left click should play the bounce")
	}
}

func TestButtonRenderHovered(t *testing.T) {
	b := NewButton("ok", "OK")
	rc := &recordCanvas{}
	b.Render(rc, false)
	if len(rc.fills) != 0 || len(rc.texts) != 1 {
		t.Errorf("idle render: fills=%d texts=%d", len(rc.fills), len(rc.texts))
	}
	rc = &recordCanvas{}
	b.Render(rc, true)
	if len(rc.fills) != 1 {
		t.Errorf("hover render fills = %d, want 1", len(rc.fills))
	}
	if rc.depth != 0 {
		t.Errorf("unbalanced Push/Pop: depth %d", rc.depth)
	}
}

func TestButtonRenderSkipsTransparent(t *testing.T) {
	s, _ := newTestScheduler()
	b := NewButton("ok", "OK")
	attachTo(b, s, nil)
	b.Animate(Animate(PropOpacity).From(0).To(0).Duration(time.Hour).Build())
	rc := &recordCanvas{}
	b.Render(rc, false)
	if len(rc.texts) != 0 {
		t.Error("transparent button drew text")
	}
}

// --- Slider ---

func TestSliderPointerMapping(t *testing.T) {
	var changes []float64
	s := NewSlider("vol").OnChange(func(v float64) { changes = append(changes, v) })

	s.UpdateValueFromPointer(120) // 120 / 150 = 0.8
	if !s.Dragging() {
		t.Error("pointer update should mark dragging")
	}
	assertNear(t, "value", s.Value(), 0.8)
	if len(changes) != 1 {
		t.Fatalf("changes = %v", changes)
	}
	assertNear(t, "actual", changes[0], 80)

	s.UpdateValueFromPointer(120.1) // below threshold
	if len(changes) != 1 {
		t.Errorf("sub-threshold move fired OnChange")
	}

	s.UpdateValueFromPointer(500)
	assertNear(t, "clamped high", s.Value(), 1)
	s.UpdateValueFromPointer(-20)
	assertNear(t, "clamped low", s.Value(), 0)

	s.OnRelease()
	if s.Dragging() {
		t.Error("still dragging after release")
	}
}

func TestSliderRange(t *testing.T) {
	s := NewSlider("temp").SetRange(-10, 30)
	s.SetValue(0.25)
	assertNear(t, "actual", s.ActualValue(), 0)
	s.SetActualValue(20)
	assertNear(t, "normalised", s.Value(), 0.75)
	s.SetActualValue(100)
	assertNear(t, "clamped", s.Value(), 1)

	flat := NewSlider("flat").SetRange(5, 5)
	flat.SetActualValue(5)
	assertNear(t, "flat range", flat.Value(), 0)
}

func TestSliderFlags(t *testing.T) {
	s := NewSlider("vol")
	want := CapClickable | CapHoverable | CapDraggable
	if s.Flags() != want {
		t.Errorf("flags = %v, want %v", s.Flags(), want)
	}
	var _ Draggable = s
}

func TestSliderValueText(t *testing.T) {
	s := NewSlider("vol")
	s.SetValue(0.25)
	if got := s.ValueText(); got != "25" {
		t.Errorf("ValueText = %q, want 25", got)
	}
	s.Decimals = 1
	s.Unit = "%"
	s.Label = "Volume"
	if got := s.ValueText(); got != "Volume: 25.0%" {
		t.Errorf("ValueText = %q", got)
	}
}

// --- ProgressBar ---

func TestProgressBarSetProgressClamps(t *testing.T) {
	p := NewProgressBar("load")
	assertNear(t, "default", p.Progress(), 0.5)
	p.SetProgress(1.5)
	assertNear(t, "high", p.Progress(), 1)
	p.SetProgress(-1)
	assertNear(t, "low", p.Progress(), 0)
}

func TestProgressBarAnimate(t *testing.T) {
	s, clock := newTestScheduler()
	p := NewProgressBar("load")
	attachTo(p, s, nil)

	p.AnimateProgress(1, time.Second)
	assertNear(t, "target", p.Progress(), 1)
	assertNear(t, "displayed at start", p.Displayed(), 0.5)

	clock.Advance(2 * time.Second)
	assertNear(t, "displayed at end", p.Displayed(), 1)

	p.AnimateProgress(0, time.Second)
	p.SetProgress(0.3)
	assertNear(t, "jump cancels animation", p.Displayed(), 0.3)
}

func TestProgressBarRenderFill(t *testing.T) {
	p := NewProgressBar("load")
	p.SetBounds(Bounds{Width: 100, Height: 12})
	p.SetProgress(0.25)
	rc := &recordCanvas{}
	p.Render(rc, false)
	// background then foreground
	if len(rc.fills) != 2 {
		t.Fatalf("fills = %d, want 2", len(rc.fills))
	}
	assertNear(t, "fill width", rc.fills[1].Width, 25)
	if len(rc.texts) != 1 || rc.texts[0] != "25%" {
		t.Errorf("texts = %v", rc.texts)
	}
}

// --- Text, Separator, Image ---

func TestTextAndSeparatorSizes(t *testing.T) {
	txt := NewText("t", "hello")
	assertNear(t, "text height", txt.Height(), 10)
	sep := NewSeparator("s")
	assertNear(t, "separator height", sep.Height(), 3)
	if txt.Flags() != 0 || sep.Flags() != 0 {
		t.Error("labels should not be interactive")
	}
}

func TestImageKeepAspect(t *testing.T) {
	img := NewImage("icon", "logo").SetSourceSize(64, 32)
	img.SetSize(40, 999)
	assertNear(t, "width", img.Width(), 40)
	assertNear(t, "height follows aspect", img.Height(), 20)

	img.KeepAspect = false
	img.SetSize(40, 30)
	assertNear(t, "free height", img.Height(), 30)

	rc := &recordCanvas{}
	img.Render(rc, true)
	if len(rc.images) != 1 || rc.images[0] != "logo" || len(rc.fills) != 1 {
		t.Errorf("image render: images=%v fills=%d", rc.images, len(rc.fills))
	}
}

// --- Container ---

func TestContainerVerticalLayout(t *testing.T) {
	c := NewContainer("col")
	a := NewText("a", "A")
	b := NewText("b", "B")
	c.Add(a, b)
	// 4 + 10 + 2 + 10 + 4
	assertNear(t, "height", c.Height(), 30)
	assertNear(t, "width unchanged", c.Width(), 100)

	c.SetBounds(Bounds{X: 10, Y: 20, Width: c.Width(), Height: c.Height()})
	if got := a.Bounds(); got.X != 14 || got.Y != 24 {
		t.Errorf("a bounds = %+v", got)
	}
	if got := b.Bounds(); got.Y != 36 {
		t.Errorf("b bounds = %+v", got)
	}
}

func TestContainerHorizontalLayout(t *testing.T) {
	c := NewContainer("row")
	c.Direction = LayoutHorizontal
	a := NewButton("a", "A").SetSize(30, 10)
	b := NewButton("b", "B").SetSize(40, 10)
	c.Add(a, b)
	assertNear(t, "width", c.Width(), 4+30+2+40+4)

	c.SetBounds(Bounds{Width: c.Width(), Height: c.Height()})
	assertNear(t, "a.X", a.Bounds().X, 4)
	assertNear(t, "b.X", b.Bounds().X, 36)

	if !c.Remove("a") || c.Remove("a") {
		t.Error("Remove should report presence once")
	}
	assertNear(t, "width after remove", c.Width(), 48)
}

func TestContainerAttachesChildren(t *testing.T) {
	s, _ := newTestScheduler()
	child := NewButton("child", "C")
	c := NewContainer("row").Add(child)
	attachTo(c, s, nil)

	child.OnHoverStart()
	if !s.Has("child", PropHoverScale) {
		t.Error("child not attached to scheduler")
	}

	late := NewButton("late", "L")
	c.Add(late)
	late.OnHoverStart()
	if !s.Has("late", PropHoverScale) {
		t.Error("late child not attached")
	}
}

func TestContainerRender(t *testing.T) {
	c := NewContainer("box")
	bg := Color{A: 1}
	c.Background = &bg
	c.Add(NewText("a", "A"), NewText("b", "B"))
	rc := &recordCanvas{}
	c.Render(rc, true)
	if len(rc.texts) != 2 || len(rc.fills) != 1 {
		t.Errorf("texts=%v fills=%d", rc.texts, len(rc.fills))
	}
	if rc.maxPush != 2 || rc.depth != 0 {
		t.Errorf("push depth max=%d final=%d", rc.maxPush, rc.depth)
	}
}

// --- visual ---

func TestControlVisualCombinesChannels(t *testing.T) {
	s, _ := newTestScheduler()
	b := NewButton("ok", "OK")
	attachTo(b, s, nil)
	hold := func(prop string, v float64) {
		s.Add("ok", Animate(prop).From(v).To(v).Duration(time.Hour).Build())
	}
	hold(PropScale, 2)
	hold(PropHoverScale, 1.5)
	hold(PropOpacity, 0.5)
	hold(PropColorA, 0.5)
	hold(PropColorG, 0.2)

	v := b.visual()
	assertNear(t, "ScaleX", v.ScaleX, 3)
	assertNear(t, "ScaleY", v.ScaleY, 3)
	assertNear(t, "Alpha", v.Alpha, 0.25)
	assertNear(t, "TintR", v.TintR, 1)
	assertNear(t, "TintG", v.TintG, 0.2)

	c := v.Shade(Color{0.5, 1, 1, 1})
	if c != (Color{0.5, 0.2, 1, 0.25}) {
		t.Errorf("Shade = %+v", c)
	}
	if v.IsIdentity() {
		t.Error("animated visual reported identity")
	}
	if !(Visual{ScaleX: 1, ScaleY: 1, TintR: 1, TintG: 1, TintB: 1, Alpha: 1}).IsIdentity() {
		t.Error("identity visual not recognised")
	}
}

func TestButtonRenderTinted(t *testing.T) {
	s, _ := newTestScheduler()
	b := NewButton("ok", "OK")
	attachTo(b, s, nil)
	s.Add("ok", Animate(PropColorB).From(0).To(0).Duration(time.Hour).Build())

	rc := &recordCanvas{}
	b.Render(rc, false)
	if len(rc.colors) != 0 {
		t.Fatalf("unhovered button filled %v", rc.fills)
	}
	b.Render(rc, true)
	if len(rc.colors) != 1 || rc.colors[0].B != 0 || rc.colors[0].R != 1 {
		t.Errorf("hover fill = %+v, want blue removed", rc.colors)
	}
}
