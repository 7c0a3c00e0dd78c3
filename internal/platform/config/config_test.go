package config

import (
	"testing"
	"time"
)

func TestPrefixAndKey(t *testing.T) {
	lib := New().Prefix("LIBFJ_")
	if got := lib.key("TIMEOUT"); got != "LIBFJ_TIMEOUT" {
		t.Fatalf("key() = %q, want %q", got, "LIBFJ_TIMEOUT")
	}
	fac := lib.Prefix("FACTORY_")
	if got := fac.key("BASE_URL"); got != "LIBFJ_FACTORY_BASE_URL" {
		t.Fatalf("nested key() = %q", got)
	}
}

func TestMayString(t *testing.T) {
	c := New().Prefix("S_")
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q, want %q", got, "def")
	}
	t.Setenv("S_NAME", " libfj ")
	if got := c.MayString("NAME", "x"); got != "libfj" {
		t.Fatalf("MayString value = %q, want %q", got, "libfj")
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("I_")
	if got := c.MayInt("MISSING", 9); got != 9 {
		t.Fatalf("MayInt default = %d", got)
	}
	t.Setenv("I_OK", " 7 ")
	if got := c.MayInt("OK", 0); got != 7 {
		t.Fatalf("MayInt ok = %d", got)
	}
	t.Setenv("I_BAD", "x")
	if got := c.MayInt("BAD", 3); got != 3 {
		t.Fatalf("MayInt bad -> default = %d", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("B_")
	if !c.MayBool("MISSING", true) {
		t.Fatalf("MayBool default true expected")
	}
	t.Setenv("B_T", "true")
	if !c.MayBool("T", false) {
		t.Fatalf("MayBool true expected")
	}
	t.Setenv("B_BAD", "nope")
	if c.MayBool("BAD", false) {
		t.Fatalf("MayBool bad -> default false expected")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("DUR_")
	if got := c.MayDuration("MISS", 5*time.Second); got != 5*time.Second {
		t.Fatalf("MayDuration default expected")
	}
	t.Setenv("DUR_OK", "150ms")
	if got := c.MayDuration("OK", time.Second); got != 150*time.Millisecond {
		t.Fatalf("MayDuration ok = %v", got)
	}
	t.Setenv("DUR_NEG", "-1s")
	if got := c.MayDuration("NEG", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration negative -> default expected, got %v", got)
	}
	t.Setenv("DUR_BAD", "nope")
	if got := c.MayDuration("BAD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration bad -> default expected")
	}
}

func TestMayURL(t *testing.T) {
	c := New().Prefix("U_")
	t.Setenv("U_BASE", "http://127.0.0.1:8080/")
	if got := c.MayURL("BASE", "x"); got != "http://127.0.0.1:8080" {
		t.Fatalf("MayURL = %q", got)
	}
	t.Setenv("U_REL", "/relative")
	if got := c.MayURL("REL", "https://factory.example"); got != "https://factory.example" {
		t.Fatalf("MayURL relative -> default expected, got %q", got)
	}
	if got := c.MayURL("MISSING", "d"); got != "d" {
		t.Fatalf("MayURL missing -> default expected")
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	if got := c.MayEnum("MISS", "json", "json", "console"); got != "json" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("E_FMT", "Console")
	if got := c.MayEnum("FMT", "json", "json", "console"); got != "console" {
		t.Fatalf("MayEnum canonical value = %q", got)
	}
	t.Setenv("E_BAD", "xml")
	if got := c.MayEnum("BAD", "json", "json", "console"); got != "json" {
		t.Fatalf("MayEnum invalid -> default expected, got %q", got)
	}
}
