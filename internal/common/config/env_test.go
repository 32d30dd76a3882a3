package config

import (
	"testing"
	"time"
)

func TestIntFromEnv(t *testing.T) {
	key := "TEST_INT_ENV"

	t.Run("default", func(t *testing.T) {
		got, err := IntFromEnv(key, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 42 {
			t.Errorf("expected 42, got %d", got)
		}
	})

	t.Run("valid", func(t *testing.T) {
		t.Setenv(key, "100")
		got, err := IntFromEnv(key, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 100 {
			t.Errorf("expected 100, got %d", got)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Setenv(key, "not_int")
		_, err := IntFromEnv(key, 42)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestBoolFromEnv(t *testing.T) {
	key := "TEST_BOOL_ENV"

	tests := []struct {
		val  string
		want bool
	}{
		{"true", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"no", false},
	}

	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv(key, tt.val)
			got, err := BoolFromEnv(key, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	t.Run("invalid", func(t *testing.T) {
		t.Setenv(key, "maybe")
		_, err := BoolFromEnv(key, false)
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestDurationSecondsFromEnv(t *testing.T) {
	key := "TEST_DURATION_ENV"

	t.Run("default", func(t *testing.T) {
		got, err := DurationSecondsFromEnv(key, 30)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 30*time.Second {
			t.Errorf("expected 30s, got %v", got)
		}
	})

	t.Run("negative", func(t *testing.T) {
		t.Setenv(key, "-1")
		_, err := DurationSecondsFromEnv(key, 30)
		if err == nil {
			t.Fatal("expected error for negative duration")
		}
	})
}

func TestStringFromEnvFirstNonEmpty(t *testing.T) {
	t.Setenv("TEST_FIRST_A", "")
	t.Setenv("TEST_FIRST_B", "value_b")

	got := StringFromEnvFirstNonEmpty([]string{"TEST_FIRST_A", "TEST_FIRST_B"}, "fallback")
	if got != "value_b" {
		t.Errorf("expected value_b, got %q", got)
	}

	got = StringFromEnvFirstNonEmpty([]string{"TEST_FIRST_MISSING"}, "fallback")
	if got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}
