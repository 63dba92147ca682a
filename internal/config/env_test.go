package config

import (
	"testing"
	"time"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	t.Setenv("DURATION_TEST", "")
	if got := durationEnvOrDefault("DURATION_TEST", time.Second); got != time.Second {
		t.Fatalf("expected default when unset, got %s", got)
	}

	t.Setenv("DURATION_TEST", "250ms")
	if got := durationEnvOrDefault("DURATION_TEST", time.Second); got != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %s", got)
	}

	t.Setenv("DURATION_TEST", "-1s")
	if got := durationEnvOrDefault("DURATION_TEST", time.Second); got != time.Second {
		t.Fatalf("expected default on negative value, got %s", got)
	}
}
