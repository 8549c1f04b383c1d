package config

import (
	"os"
	"testing"
)

// unsetenv removes a variable; a prior t.Setenv restores it after the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}
