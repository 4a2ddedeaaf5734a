package builder

import "testing"

func TestEnvOr(t *testing.T) {
	const key = "RAYSUM_TEST_BUILDER_ENV_OR"
	t.Setenv(key, "")
	if got := EnvOr(key, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}

	t.Setenv(key, `"  value  "`)
	if got := EnvOr(key, "fallback"); got != "value" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}

func TestEnvIntOr(t *testing.T) {
	const key = "RAYSUM_TEST_BUILDER_ENV_INT"
	t.Setenv(key, "")
	if got := EnvIntOr(key, 7); got != 7 {
		t.Fatalf("expected default int, got %d", got)
	}

	t.Setenv(key, "12")
	if got := EnvIntOr(key, 7); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}

	t.Setenv(key, "not-int")
	if got := EnvIntOr(key, 7); got != 7 {
		t.Fatalf("expected default on bad int, got %d", got)
	}
}

func TestEnvIntOr_Concurrency(t *testing.T) {
	t.Setenv(EnvConcurrency, " 4 ")
	if got := EnvIntOr(EnvConcurrency, 1); got != 4 {
		t.Fatalf("expected %s=4, got %d", EnvConcurrency, got)
	}
}
