package envutil

import (
	"testing"
	"time"
)

func TestTypedAccessors(t *testing.T) {
	t.Setenv("ENVUTIL_STR", "  hello ")
	t.Setenv("ENVUTIL_INT", "42")
	t.Setenv("ENVUTIL_BAD_INT", "forty")
	t.Setenv("ENVUTIL_BOOL", "off")
	t.Setenv("ENVUTIL_SECS", "-3")

	if got := String("ENVUTIL_STR", "x"); got != "hello" {
		t.Fatalf("String: got=%q", got)
	}
	if got := String("ENVUTIL_MISSING", "x"); got != "x" {
		t.Fatalf("String default: got=%q", got)
	}
	if got := FirstString("d", "ENVUTIL_MISSING", "ENVUTIL_STR"); got != "hello" {
		t.Fatalf("FirstString: got=%q", got)
	}
	if got := Int("ENVUTIL_INT", 1); got != 42 {
		t.Fatalf("Int: got=%d", got)
	}
	if got := Int("ENVUTIL_BAD_INT", 7); got != 7 {
		t.Fatalf("Int fallback: got=%d", got)
	}
	if got := Bool("ENVUTIL_BOOL", true); got {
		t.Fatalf("Bool: expected false")
	}
	if got := Bool("ENVUTIL_MISSING", true); !got {
		t.Fatalf("Bool default: expected true")
	}
	if got := Seconds("ENVUTIL_SECS", 15); got != 15*time.Second {
		t.Fatalf("Seconds fallback: got=%s", got)
	}
}

func TestFloat(t *testing.T) {
	t.Setenv("ENVUTIL_FLOAT", " 0.25 ")
	t.Setenv("ENVUTIL_BAD_FLOAT", "quarter")
	if got := Float("ENVUTIL_FLOAT", 1); got != 0.25 {
		t.Fatalf("Float: want=0.25 got=%v", got)
	}
	if got := Float("ENVUTIL_BAD_FLOAT", 1); got != 1 {
		t.Fatalf("Float fallback: want=1 got=%v", got)
	}
}
