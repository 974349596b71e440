package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:      DebugLevel,
		Output:     &buf,
		TimeFormat: "-",
	})

	logger.Info("emulation started", String("firmware", "bios.bin"))

	out := buf.String()
	if !strings.Contains(out, "INFO") {
		t.Errorf("missing level in output: %q", out)
	}
	if !strings.Contains(out, "emulation started") {
		t.Errorf("missing message in output: %q", out)
	}
	if !strings.Contains(out, "bios.bin") {
		t.Errorf("missing field in output: %q", out)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:      InfoLevel,
		Output:     &buf,
		TimeFormat: "-",
	})

	logger.Debug("not logged")
	if buf.Len() != 0 {
		t.Errorf("debug message was logged: %q", buf.String())
	}

	logger.SetLevel(TraceLevel)
	logger.Trace("step trace")
	if !strings.Contains(buf.String(), "step trace") {
		t.Errorf("trace message missing after level change: %q", buf.String())
	}
}

func TestFatal(t *testing.T) {
	exited := false
	orig := fatalExitFunc
	fatalExitFunc = func() { exited = true }
	defer func() { fatalExitFunc = orig }()

	logger := NewNop()
	logger.Fatal("fatal error")
	if !exited {
		t.Error("fatal did not call the exit function")
	}
}
