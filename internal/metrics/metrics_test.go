package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksSourceAttempts(t *testing.T) {
	r := NewRecorder()

	r.RecordSourceAttempt("EPL", 120*time.Millisecond, nil)
	r.RecordSourceAttempt("EPL", 80*time.Millisecond, errors.New("boom"))
	r.RecordSourceAttempt("ovogoals", 10*time.Millisecond, nil)

	if got := r.SourceCalls("EPL"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := r.SourceErrors("EPL"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := r.LastCallLatency("EPL"); got != 80*time.Millisecond {
		t.Fatalf("expected last latency recorded, got %v", got)
	}
	if got := r.SourceErrors("ovogoals"); got != 0 {
		t.Fatalf("expected no errors for ovogoals, got %d", got)
	}
}

func TestRecorderUnknownSourceSnapshot(t *testing.T) {
	r := NewRecorder()
	snap := r.Snapshot("unknown")
	if snap.Calls != 0 || snap.Errors != 0 || snap.LastCallLatency != 0 {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.RecordSourceAttempt("EPL", time.Millisecond, nil)
	r.RecordHTTPRequest("GET", "/matches", 200, time.Millisecond)
	if r.Snapshot("EPL").Calls != 0 {
		t.Fatal("expected zero snapshot from nil recorder")
	}
}

func TestSetupDisabledReturnsBareRecorder(t *testing.T) {
	recorder, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if recorder == nil {
		t.Fatal("expected recorder")
	}
	if handler != nil {
		t.Fatal("expected no prometheus handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected no-op shutdown, got %v", err)
	}
}

func TestSetupEnabledBuildsPrometheusHandler(t *testing.T) {
	recorder, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer shutdown(context.Background())

	if handler == nil {
		t.Fatal("expected prometheus handler")
	}
	// Exercise the otel path.
	recorder.RecordSourceAttempt("EPL", time.Millisecond, nil)
	recorder.RecordHTTPRequest("GET", "/matches", 200, time.Millisecond)
}
