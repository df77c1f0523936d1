package loglevel

import (
	"bytes"
	"testing"
)

func TestSilentSuppressesEverything(t *testing.T) {
	var buf bytes.Buffer
	l := New(Silent, &buf)
	l.Info("info %d", 1)
	l.Debug("debug %d", 2)
	if buf.Len() != 0 {
		t.Errorf("silent logger wrote %q", buf.String())
	}
}

func TestInfoLevelGatesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(Info, &buf)
	l.Info("visible")
	l.Debug("hidden")
	if got := buf.String(); got != "visible\n" {
		t.Errorf("got %q, want only the info line", got)
	}
}

func TestDebugLevelPassesBoth(t *testing.T) {
	var buf bytes.Buffer
	l := New(Debug, &buf)
	l.Info("a")
	l.Debug("b")
	if got := buf.String(); got != "a\nb\n" {
		t.Errorf("got %q, want both lines", got)
	}
}
