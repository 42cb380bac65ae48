package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(buf, "", 0)

	logger.Debug("hidden")
	if got := buf.String(); got != "" {
		t.Fatalf("debug output at info level: %q", got)
	}

	logger.SetLevel(DebugLevel)
	logger.Debug("shown")
	if got := buf.String(); !strings.Contains(got, DebugPrefix+"shown") {
		t.Fatalf("debug output at debug level = %q, want contains %q", got, DebugPrefix+"shown")
	}

	logger.Info("always")
	if got := buf.String(); !strings.Contains(got, "always") {
		t.Fatalf("info output missing: %q", got)
	}
}

func TestSilentWriter(t *testing.T) {
	n, err := SilentWriter{}.Write([]byte("ignored"))
	if err != nil {
		t.Fatal(err)
	}
	if n != len("ignored") {
		t.Fatalf("Write() = %d, want %d", n, len("ignored"))
	}
}
