package utils

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWaitFor_ImmediateSuccess(t *testing.T) {
	calls := 0
	err := WaitFor(context.Background(), 0, time.Millisecond, func() (bool, error) {
		calls++
		return true, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestWaitFor_EventualSuccess(t *testing.T) {
	calls := 0
	err := WaitFor(context.Background(), time.Second, 5*time.Millisecond, func() (bool, error) {
		calls++
		return calls >= 3, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestWaitFor_Timeout(t *testing.T) {
	err := WaitFor(context.Background(), 30*time.Millisecond, 5*time.Millisecond, func() (bool, error) {
		return false, nil
	})
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
}

func TestWaitFor_CheckError(t *testing.T) {
	want := errors.New("boom")
	err := WaitFor(context.Background(), time.Second, time.Millisecond, func() (bool, error) {
		return false, want
	})
	if !errors.Is(err, want) {
		t.Errorf("expected %v, got %v", want, err)
	}
}

func TestWaitFor_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := WaitFor(ctx, time.Second, time.Millisecond, func() (bool, error) {
		return false, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
