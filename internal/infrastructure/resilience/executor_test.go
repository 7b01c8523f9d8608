package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
)

func TestDoRetriesTransientFailure(t *testing.T) {
	exec := NewExecutor(Policy{
		MaxAttempts:    3,
		InitialBackoff: 1 * time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
		Multiplier:     2,
		BreakerEnabled: false,
	})

	attempts := 0
	errTransient := errors.New("transient")
	err := exec.Do(context.Background(), "op", func(context.Context) error {
		attempts++
		if attempts < 3 {
			return errTransient
		}
		return nil
	}, func(err error) Verdict {
		return Verdict{Retryable: errors.Is(err, errTransient), Trips: true}
	})
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestDoStopsOnPermanentFailure(t *testing.T) {
	exec := NewExecutor(Policy{
		MaxAttempts:    3,
		InitialBackoff: 1 * time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
		Multiplier:     2,
		BreakerEnabled: false,
	})

	attempts := 0
	errPermanent := errors.New("permanent")
	err := exec.Do(context.Background(), "op", func(context.Context) error {
		attempts++
		return errPermanent
	}, func(error) Verdict {
		return Verdict{Retryable: false, Trips: false}
	})
	if !errors.Is(err, errPermanent) {
		t.Fatalf("expected permanent error, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestDoOpensCircuitAfterFailures(t *testing.T) {
	exec := NewExecutor(Policy{
		MaxAttempts:        1,
		InitialBackoff:     1 * time.Millisecond,
		MaxBackoff:         1 * time.Millisecond,
		Multiplier:         2,
		BreakerEnabled:     true,
		BreakerMinRequests: 2,
		BreakerFailRatio:   0.5,
		BreakerOpenFor:     50 * time.Millisecond,
		BreakerProbeCalls:  1,
	})

	errDown := errors.New("upstream down")
	classify := func(error) Verdict {
		return Verdict{Retryable: false, Trips: true}
	}

	for i := 0; i < 2; i++ {
		err := exec.Do(context.Background(), "op", func(context.Context) error {
			return errDown
		}, classify)
		if !errors.Is(err, errDown) {
			t.Fatalf("expected upstream error on iteration %d, got %v", i, err)
		}
	}

	err := exec.Do(context.Background(), "op", func(context.Context) error {
		t.Fatal("circuit should be open and must not call operation")
		return nil
	}, classify)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected open state error, got %v", err)
	}
	if !IsCircuitOpen(err) {
		t.Fatal("IsCircuitOpen must report the open breaker")
	}
}

func TestGenerationPolicySingleAttempt(t *testing.T) {
	exec := NewExecutor(GenerationPolicy())

	attempts := 0
	errTransient := errors.New("transient")
	_ = exec.Do(context.Background(), "generate", func(context.Context) error {
		attempts++
		return errTransient
	}, func(error) Verdict {
		return Verdict{Retryable: true, Trips: true}
	})
	if attempts != 1 {
		t.Fatalf("generation policy must not retry, got %d attempts", attempts)
	}
}
