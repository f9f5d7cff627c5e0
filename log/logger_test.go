package log

import (
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	defer Replace(nil)

	if err := Init(true, "warn"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if L().Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !L().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("error should be enabled at warn level")
	}
}

func TestInit_InvalidLevel(t *testing.T) {
	if err := Init(false, "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestL_LazyInit(t *testing.T) {
	Replace(nil)
	if L() == nil {
		t.Fatal("expected a logger")
	}
}

func TestFormatUptime(t *testing.T) {
	d := 26*time.Hour + 3*time.Minute + 4*time.Second
	if got := formatUptime(d); got != "1d 02h 03m 04s" {
		t.Errorf("formatUptime = %q", got)
	}
}

func TestMonitor_StartStop(t *testing.T) {
	m := NewMonitor(t.Context())
	m.interval = time.Millisecond
	m.StartMonitor()
	time.Sleep(5 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		m.StopMonitor()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}
