package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 1 {
		t.Errorf("expected default burst 1 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "openai"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
	if err := limiter.Wait(ctx, "anthropic"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_RateLimitDelays(t *testing.T) {
	// 10 rps, burst 1: the second request must wait about 100ms.
	limiter := NewLimiter(10, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "openai"); err != nil {
		t.Fatalf("first wait failed: %v", err)
	}

	start := time.Now()
	if err := limiter.Wait(ctx, "openai"); err != nil {
		t.Fatalf("second wait failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("expected rate-limit delay, got %v", elapsed)
	}
}

func TestLimiter_ProvidersIndependent(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if !limiter.Allow("openai") {
		t.Error("expected first openai request allowed")
	}
	if limiter.Allow("openai") {
		t.Error("expected second openai request throttled")
	}
	// A different provider has its own budget.
	if !limiter.Allow("anthropic") {
		t.Error("expected anthropic request allowed")
	}
}

func TestLimiter_SetProviderRate(t *testing.T) {
	limiter := NewLimiter(1, 1)
	limiter.SetProviderRate("openai", 1000, 10)

	allowed := 0
	for i := 0; i < 5; i++ {
		if limiter.Allow("openai") {
			allowed++
		}
	}
	if allowed != 5 {
		t.Errorf("expected 5 allowed with raised burst, got %d", allowed)
	}
}
