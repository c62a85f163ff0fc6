package env

import (
	"testing"
	"time"
)

func TestGetters(t *testing.T) {
	t.Setenv("PROPDESK_TEST_STR", "hello")
	t.Setenv("PROPDESK_TEST_INT", " 42 ")
	t.Setenv("PROPDESK_TEST_BAD_INT", "forty")
	t.Setenv("PROPDESK_TEST_BOOL", "true")
	t.Setenv("PROPDESK_TEST_DURATION", "90s")

	if got := GetString("PROPDESK_TEST_STR", "x"); got != "hello" {
		t.Errorf("GetString() = %q, want %q", got, "hello")
	}
	if got := GetString("PROPDESK_TEST_MISSING", "x"); got != "x" {
		t.Errorf("GetString() fallback = %q, want %q", got, "x")
	}
	if got := GetInt("PROPDESK_TEST_INT", 1); got != 42 {
		t.Errorf("GetInt() = %d, want 42", got)
	}
	if got := GetInt("PROPDESK_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("GetInt() with invalid value = %d, want fallback 7", got)
	}
	if got := GetBool("PROPDESK_TEST_BOOL", false); !got {
		t.Errorf("GetBool() = %v, want true", got)
	}
	if got := GetDuration("PROPDESK_TEST_DURATION", time.Second); got != 90*time.Second {
		t.Errorf("GetDuration() = %v, want 90s", got)
	}
}
