package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	logger := New("test-module")

	logger.Info("hidden at default level")
	logger.Notice("visible notice")
	if strings.Contains(buf.String(), "hidden at default level") {
		t.Error("Info messages should be filtered at the default Notice level")
	}
	if !strings.Contains(buf.String(), "visible notice") {
		t.Errorf("Expected notice in output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[test-module]") {
		t.Errorf("Expected module name in output, got %q", buf.String())
	}

	SetLevel(Debug)
	logger.Debugf("rendered %d rows", 42)
	if !strings.Contains(buf.String(), "rendered 42 rows") {
		t.Errorf("Expected debug message after raising verbosity, got %q", buf.String())
	}

	SetLevel(Error)
	buf.Reset()
	logger.Warning("suppressed warning")
	if buf.Len() != 0 {
		t.Errorf("Expected no output below Error level, got %q", buf.String())
	}
}
