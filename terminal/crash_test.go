package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func TestEmergencyResetSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.String()
	for name, seq := range map[string][]byte{
		"cursor show":     csiCursorShow,
		"alt screen exit": csiAltScreenExit,
		"mouse sgr off":   csiMouseSGROff,
		"reset":           csiRIS,
	} {
		if !strings.Contains(out, string(seq)) {
			t.Errorf("missing %s sequence", name)
		}
	}
	if !strings.HasSuffix(out, string(csiRIS)) {
		t.Error("full reset must be written last")
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, "EVENT POLLER", "boom")

	out := buf.String()
	if !strings.Contains(out, "EVENT POLLER CRASHED: boom") {
		t.Errorf("missing banner in %q", out)
	}
	if !strings.Contains(out, "Stack Trace:") {
		t.Error("missing stack trace")
	}
}
