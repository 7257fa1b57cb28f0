package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_RoutesByLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewDefaultLoggerTo(&out, &errOut, false)

	l.Info("listening", Fields{"string": "A2"})
	l.Warn("clipping")

	assert.Contains(t, out.String(), "[INFO] listening string=A2")
	assert.Contains(t, errOut.String(), "[WARN] clipping")
}

func TestDefaultLogger_LevelFilter(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewDefaultLoggerTo(&out, &errOut, false)

	l.Debug("hidden")
	assert.Empty(t, out.String())

	l.SetLevel(DebugLevel)
	l.Debug("shown")
	assert.Contains(t, out.String(), "[DEBUG] shown")
}

func TestDefaultLogger_WithFieldsSortsKeys(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewDefaultLoggerTo(&out, &errOut, false).WithFields(Fields{"b": 2, "a": 1})

	l.Info("msg")
	assert.Contains(t, out.String(), "msg a=1 b=2")
}

func TestSetGlobalLogger_NilInstallsNoOp(t *testing.T) {
	prev := GetGlobalLogger()
	defer SetGlobalLogger(prev)

	SetGlobalLogger(nil)
	_, ok := GetGlobalLogger().(*NoOpLogger)
	assert.True(t, ok)
}
