package hologram

import (
	"encoding/json"
	"fmt"
	"strings"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action  string    `json:"action"`
	Label   string    `json:"label,omitempty"`
	Button  string    `json:"button,omitempty"`
	Panel   string    `json:"panel,omitempty"`
	Control string    `json:"control,omitempty"`
	At      []float64 `json:"at,omitempty"`
	Frames  int       `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences aiming and injected button input across ticks for
// automated interaction tests. Attach to a Context via SetTestRunner.
//
// Actions:
//
//	aim      point the view at "at" [x,y,z], or at the center of
//	         "control" in "panel"
//	press    hold "button" (left, right, middle; default left)
//	release  release "button"
//	click    press then release "button"
//	hold     keep the current buttons for "frames" ticks
//	wait     do nothing for "frames" ticks
//	log      log "label" with the controller state
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool

	aiming bool
	aim    Vec3
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Context via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func (st testStep) validate() error {
	switch st.Action {
	case "aim":
		if len(st.At) != 3 && (st.Panel == "" || st.Control == "") {
			return fmt.Errorf("aim needs \"at\" [x,y,z] or \"panel\" and \"control\"")
		}
	case "press", "release", "click":
		if _, ok := parseButton(st.Button); !ok {
			return fmt.Errorf("unknown button %q", st.Button)
		}
	case "hold", "wait", "log":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

func parseButton(name string) (MouseButton, bool) {
	switch strings.ToLower(name) {
	case "", "left":
		return MouseButtonLeft, true
	case "right":
		return MouseButtonRight, true
	case "middle":
		return MouseButtonMiddle, true
	default:
		return 0, false
	}
}

// SetTestRunner attaches a TestRunner to the context. The runner's step
// method is called from TickInput before the controller runs.
func (c *Context) SetTestRunner(runner *TestRunner) {
	c.runner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one tick and applies any aim override
// to in.
func (r *TestRunner) step(c *Context, in *FrameInput) {
	defer r.applyAim(in)
	if r.done {
		return
	}
	ctl := c.controller
	// Wait for pending injections to drain before advancing.
	if ctl.PendingInjections() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	b, _ := parseButton(st.Button)
	switch st.Action {
	case "aim":
		r.setAim(c, st)
	case "press":
		ctl.InjectPress(b)
	case "release":
		ctl.InjectRelease(b)
	case "click":
		ctl.InjectClick(b)
	case "hold":
		ctl.InjectHold(st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "log":
		hovered, _ := ctl.Hovered()
		c.logger.Printf("test %s: state=%s hovered=%q engaged=%t",
			st.Label, ctl.State(), describeControl(hovered), c.tracker.IsInteracting())
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && ctl.PendingInjections() == 0 {
		r.done = true
	}
}

func (r *TestRunner) setAim(c *Context, st testStep) {
	if len(st.At) == 3 {
		r.aim = Vec3{X: st.At[0], Y: st.At[1], Z: st.At[2]}
		r.aiming = true
		return
	}
	p := c.registry.Panel(st.Panel)
	if p == nil {
		c.logger.Printf("warning: test aim: unknown panel %q", st.Panel)
		return
	}
	ctl := findControl(p.controls, st.Control)
	if ctl == nil {
		c.logger.Printf("warning: test aim: unknown control %q in panel %q", st.Control, st.Panel)
		return
	}
	b := ctl.Bounds()
	r.aim = p.ControlToWorld(b.X+b.Width/2, b.Y+b.Height/2)
	r.aiming = true
}

func (r *TestRunner) applyAim(in *FrameInput) {
	if r.aiming {
		in.Look = Vec3{X: r.aim.X - in.Eye.X, Y: r.aim.Y - in.Eye.Y, Z: r.aim.Z - in.Eye.Z}
	}
}

// findControl searches controls and container children for id.
func findControl(controls []Control, id string) Control {
	for _, c := range controls {
		if c.ID() == id {
			return c
		}
		if p, ok := c.(parentControl); ok {
			if found := findControl(p.Children(), id); found != nil {
				return found
			}
		}
	}
	return nil
}
