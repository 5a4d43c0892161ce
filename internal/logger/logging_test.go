package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithConfig(&buf, "wordseg", log.InfoLevel, false, false, log.LogfmtFormatter)

	l.Debug("hidden")
	l.Info("loaded", "words", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message printed at info level: %q", out)
	}
	if !strings.Contains(out, "words=3") || !strings.Contains(out, "wordseg") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestSetup(t *testing.T) {
	defer Setup(false)

	Setup(true)
	if log.GetLevel() != log.DebugLevel {
		t.Errorf("expected debug level, got %v", log.GetLevel())
	}
	Setup(false)
	if log.GetLevel() != log.WarnLevel {
		t.Errorf("expected warn level, got %v", log.GetLevel())
	}
}
