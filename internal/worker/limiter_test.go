package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_New(t *testing.T) {
	if l := NewLimiter(10, 5); l.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", l.defaultBurst)
	}
	if l := NewLimiter(10, -1); l.defaultBurst != 5 {
		t.Errorf("expected default burst 5 for negative input, got %d", l.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "http://a.example.az/foo"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
	if err := limiter.Wait(ctx, "http://b.example.az"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_WaitWithDelay(t *testing.T) {
	limiter := NewLimiter(100, 1)

	start := time.Now()
	if err := limiter.WaitWithDelay(context.Background(), "http://a.example.az", 50*time.Millisecond); err != nil {
		t.Fatalf("WaitWithDelay failed: %v", err)
	}

	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("expected delay >= 50ms, got %v", elapsed)
	}
}

func TestLimiter_PerHost(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if !limiter.Allow("http://a.example.az") {
		t.Error("first request must pass")
	}
	if limiter.Allow("http://a.example.az") {
		t.Error("second request must exhaust the burst")
	}
	if !limiter.Allow("http://b.example.az") {
		t.Error("other host must have its own budget")
	}
}

func TestLimiter_SetHostRate(t *testing.T) {
	limiter := NewLimiter(10, 10)
	limiter.SetHostRate("slow.example.az", 0.1, 1)

	if !limiter.Allow("http://slow.example.az") {
		t.Error("first request must pass")
	}
	if limiter.Allow("http://slow.example.az") {
		t.Error("second request must fail on the slow host")
	}
	if !limiter.Allow("http://fast.example.az") {
		t.Error("other host must stay at the default rate")
	}
}

func TestExtractHost(t *testing.T) {
	host, err := extractHost("http://a.example.az/foo")
	if err != nil {
		t.Fatalf("extractHost: %v", err)
	}
	if host != "a.example.az" {
		t.Errorf("host = %s, want a.example.az", host)
	}

	if _, err := extractHost("::invalid"); err == nil {
		t.Error("expected error for invalid URL")
	}
}
