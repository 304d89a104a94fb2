package bhasha

import (
	"errors"
	"fmt"
	"testing"
)

func TestProviderErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &ProviderError{Message: "call failed", Cause: cause, Retryable: true}

	if !errors.Is(err, cause) {
		t.Error("Unwrap should expose the cause")
	}
	if msg := err.Error(); msg != "provider error: call failed: connection refused" {
		t.Errorf("Error() = %q", msg)
	}
}

func TestTranslationErrorWrapping(t *testing.T) {
	inner := &CacheError{Message: "redis down"}
	wrapped := fmt.Errorf("translating batch: %w", inner)

	var cacheErr *CacheError
	if !errors.As(wrapped, &cacheErr) {
		t.Error("errors.As should find the CacheError through the wrap")
	}
}

func TestCountMismatchError(t *testing.T) {
	err := &CountMismatchError{Expected: 3, Got: 1}
	if err.Error() != "translation count mismatch: expected 3, got 1" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestStaleRequestError(t *testing.T) {
	err := &StaleRequestError{Age: "31s"}
	if err.Error() != "stale translation request: queued for 31s" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(&ProviderError{Message: "rate limited", Retryable: true}) {
		t.Error("retryable provider error should be retryable")
	}
	if IsRetryable(&ProviderError{Message: "bad key", Retryable: false}) {
		t.Error("non-retryable provider error")
	}
	if IsRetryable(errors.New("plain")) {
		t.Error("plain errors are not retryable")
	}
	if IsRetryable(nil) {
		t.Error("nil is not retryable")
	}
}
