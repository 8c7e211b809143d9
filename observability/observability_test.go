package observability

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("gocmd")

	if cfg.ServiceName != "gocmd" {
		t.Errorf("expected ServiceName 'gocmd', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.Enabled {
		t.Error("expected export to be disabled by default")
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{Endpoint: "collector:4318"}
	cfg.ApplyDefaults("gocmd")

	if cfg.Endpoint != "collector:4318" {
		t.Errorf("expected explicit endpoint to be kept, got %s", cfg.Endpoint)
	}
	if cfg.ServiceName != "gocmd" || cfg.Environment != "development" {
		t.Errorf("expected defaults to be filled, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	valid := DefaultConfig("gocmd")
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := DefaultConfig("gocmd")
	bad.SampleRate = 2
	if err := bad.Validate(); err == nil {
		t.Error("expected error for sample rate above 1")
	}

	noEndpoint := Config{Enabled: true}
	if err := noEndpoint.Validate(); err == nil || !strings.Contains(err.Error(), "endpoint") {
		t.Errorf("expected endpoint error, got %v", err)
	}
}

func TestSamplerFor(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{0.5, "TraceIDRatioBased"},
	}
	for _, tc := range tests {
		if got := samplerFor(tc.rate).Description(); !strings.HasPrefix(got, tc.want) {
			t.Errorf("samplerFor(%v) = %q, want prefix %q", tc.rate, got, tc.want)
		}
	}
}

func TestSetupDisabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), DefaultConfig("gocmd"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("unexpected shutdown error: %v", err)
	}
}

func TestSetupEnabled(t *testing.T) {
	cfg := DefaultConfig("gocmd")
	cfg.Enabled = true

	shutdown, err := Setup(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Nothing was recorded, so shutdown has nothing to export.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = shutdown(ctx)
}

func TestNewResource(t *testing.T) {
	res, err := newResource(DefaultConfig("gocmd"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, kv := range res.Attributes() {
		if string(kv.Key) == "service.name" && kv.Value.AsString() == "gocmd" {
			found = true
		}
	}
	if !found {
		t.Error("expected service.name attribute")
	}
}
