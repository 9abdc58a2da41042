// Package testutil provides shared test utilities for the chess-rules-go project.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		fail(t, fmt.Sprintf("mismatch (-want +got):\n%s", diff), msgAndArgs...)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		fail(t, fmt.Sprintf("unexpected error: %v", err), msgAndArgs...)
	}
}

// AssertError fails if err is nil.
func AssertError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		fail(t, "expected an error but got nil", msgAndArgs...)
	}
}

// AssertErrorIs fails if err does not match target under errors.Is.
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		fail(t, fmt.Sprintf("error = %v, want %v", err, target), msgAndArgs...)
	}
}

// AssertPanicsWith runs fn and fails unless it panics with an error
// matching target under errors.Is.
func AssertPanicsWith(t *testing.T, target error, fn func(), msgAndArgs ...interface{}) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			fail(t, fmt.Sprintf("expected panic with %v but call returned", target), msgAndArgs...)
			return
		}
		if err, ok := r.(error); !ok || !errors.Is(err, target) {
			fail(t, fmt.Sprintf("panic value %v, want error wrapping %v", r, target), msgAndArgs...)
		}
	}()
	fn()
}

// AssertContains fails if substr is not found in got.
func AssertContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		fail(t, fmt.Sprintf("%q does not contain %q", got, substr), msgAndArgs...)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		fail(t, "expected true but got false", msgAndArgs...)
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		fail(t, "expected false but got true", msgAndArgs...)
	}
}

// fail reports text, prefixed by the optional caller message.
func fail(t *testing.T, text string, msgAndArgs ...interface{}) {
	t.Helper()
	if msg := formatMessage(msgAndArgs...); msg != "" {
		t.Errorf("%s: %s", msg, text)
		return
	}
	t.Error(text)
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
