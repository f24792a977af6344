package logging

import "testing"

func TestNew(t *testing.T) {
	logger, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger == nil {
		t.Fatalf("expected logger instance")
	}
	if ce := logger.Check(logger.Level(), "probe"); ce == nil {
		t.Fatalf("expected logger to accept entries at its own level")
	}
	_ = logger.Sync()
}
