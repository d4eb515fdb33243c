package hologram

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestActionRegistryExecute(t *testing.T) {
	var buf bytes.Buffer
	r := NewActionRegistry(log.New(&buf, "", 0))
	var src Control
	r.Register("open", func(c Control) { src = c })

	btn := NewButton("b", "B")
	if !r.Execute("open", btn) {
		t.Fatal("Execute(open) = false")
	}
	if src != btn {
		t.Error("handler did not receive the source control")
	}

	if r.Execute("missing", btn) {
		t.Error("Execute(missing) = true")
	}
	if !strings.Contains(buf.String(), `unknown action "missing"`) {
		t.Errorf("unknown action not logged: %q", buf.String())
	}
}

func TestActionRegistryPanicRecovered(t *testing.T) {
	var buf bytes.Buffer
	r := NewActionRegistry(log.New(&buf, "", 0))
	r.Register("bad", func(Control) { panic("boom") })
	if r.Execute("bad", nil) {
		t.Error("panicking handler reported success")
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("panic not logged: %q", buf.String())
	}
}

func TestActionRegistryManage(t *testing.T) {
	r := NewActionRegistry(log.New(&bytes.Buffer{}, "", 0))
	r.Register("b", func(Control) {})
	r.Register("a", func(Control) {})
	if ids := r.IDs(); len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("IDs = %v", ids)
	}
	r.Unregister("a")
	if r.Has("a") || !r.Has("b") {
		t.Error("Unregister removed the wrong id")
	}
	r.Clear()
	if len(r.IDs()) != 0 {
		t.Error("Clear left ids")
	}
}
