package assert

import (
	"errors"
	"testing"
)

func Equal[T comparable](t *testing.T, actual, expected T) {
	t.Helper()

	if actual != expected {
		t.Errorf("got: %v; want: %v", actual, expected)
	}
}

func SliceEqual[T comparable](t *testing.T, actual, expected []T) {
	t.Helper()

	if len(actual) != len(expected) {
		t.Errorf("different sizes. got: (%v, len: %d), want: (%v, len: %d)", actual, len(actual), expected, len(expected))
		return
	}

	for i := range len(actual) {
		Equal(t, actual[i], expected[i])
	}
}

func BytesEqual(t *testing.T, actual, expected []byte) {
	t.Helper()

	if string(actual) != string(expected) {
		t.Errorf("got: %q; want: %q", actual, expected)
	}
}

// ErrorStatus reports whether err is nil, failing the test when that
// disagrees with expectError.
func ErrorStatus(t *testing.T, err error, expectError bool) bool {
	t.Helper()

	if err != nil {
		if !expectError {
			t.Errorf("got unexpected error: %s", err.Error())
		}
		return false
	}

	if expectError {
		t.Error("did not get expected error")
		return false
	}

	return true
}

func ErrorIs(t *testing.T, err, target error) {
	t.Helper()

	if !errors.Is(err, target) {
		t.Errorf("got error: %v; want error matching: %v", err, target)
	}
}

func ErrorAs[T error](t *testing.T, err error) T {
	t.Helper()

	var target T
	if !errors.As(err, &target) {
		t.Errorf("got error: %v (%T); want error of type %T", err, err, target)
	}
	return target
}

func NoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("got unexpected error: %s", err.Error())
	}
}
