package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()
	if Ping() != DefaultPing || Short() != DefaultShort || Medium() != DefaultMedium || Long() != DefaultLong {
		t.Errorf("defaults not applied: %v %v %v %v", Ping(), Short(), Medium(), Long())
	}
}

func TestConfigureFromEnv(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	t.Setenv("TIMEOUT_SHORT", "1s")
	t.Setenv("TIMEOUT_LONG", "2m")
	t.Setenv("TIMEOUT_MEDIUM", "garbage")

	n := ConfigureFromEnv()
	if n != 2 {
		t.Errorf("configured count: got %d, want 2", n)
	}
	if Short() != time.Second {
		t.Errorf("Short: got %v, want 1s", Short())
	}
	if Long() != 2*time.Minute {
		t.Errorf("Long: got %v, want 2m", Long())
	}
	if Medium() != DefaultMedium {
		t.Errorf("Medium should keep default on bad input, got %v", Medium())
	}
}

func TestConfigureFromEnvRejectsNonPositive(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	t.Setenv("TIMEOUT_PING", "-5s")
	if n := ConfigureFromEnv(); n != 0 {
		t.Errorf("configured count: got %d, want 0", n)
	}
	if Ping() != DefaultPing {
		t.Errorf("Ping changed on negative input: %v", Ping())
	}
}
