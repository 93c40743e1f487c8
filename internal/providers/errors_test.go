package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestAsSourceUnavailableUnwrapsWrappedError(t *testing.T) {
	base := &SourceUnavailableError{Source: "shortsdata", StatusCode: 502}
	wrapped := fmt.Errorf("fetch EPL: %w", base)

	got, ok := AsSourceUnavailable(wrapped)
	if !ok || got.StatusCode != 502 {
		t.Fatalf("expected unwrap to succeed, got %v ok=%v", got, ok)
	}

	if _, ok := AsSourceUnavailable(errors.New("plain")); ok {
		t.Fatal("expected plain error not to unwrap")
	}
}

func TestAsMalformedPayload(t *testing.T) {
	base := &MalformedPayloadError{Source: "ovogoals", Reason: "not an array"}
	wrapped := fmt.Errorf("provider: %w", base)

	got, ok := AsMalformedPayload(wrapped)
	if !ok || got.Source != "ovogoals" {
		t.Fatalf("expected unwrap to succeed, got %v ok=%v", got, ok)
	}
}

func TestErrorMessages(t *testing.T) {
	srcErr := &SourceUnavailableError{Source: "shortsdata", StatusCode: 500}
	if srcErr.Error() != "source shortsdata unavailable (status=500)" {
		t.Fatalf("unexpected message %q", srcErr.Error())
	}

	netErr := &SourceUnavailableError{Source: "shortsdata", Err: errors.New("dial timeout")}
	if netErr.Error() != "source shortsdata unavailable: dial timeout" {
		t.Fatalf("unexpected message %q", netErr.Error())
	}
}
