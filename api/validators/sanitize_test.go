package validators

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitizeStringTrimsAndCaps(t *testing.T) {
	if got := SanitizeString("  hello  ", 0); got != "hello" {
		t.Fatalf("expected trimmed input, got %q", got)
	}
	if got := SanitizeString("abcdef", 4); got != "abcd" {
		t.Fatalf("expected 4-byte cap, got %q", got)
	}
	if got := SanitizeString("abc", 10); got != "abc" {
		t.Fatalf("short input should pass through, got %q", got)
	}
}

func TestSanitizeStringKeepsRuneBoundary(t *testing.T) {
	// "héllo" is 6 bytes; a 2-byte cap lands mid-rune.
	got := SanitizeString("héllo", 2)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
	if got != "h" {
		t.Fatalf("expected backoff to the previous rune, got %q", got)
	}

	long := strings.Repeat("ü", 1001)
	capped := SanitizeString(long, 2001)
	if !utf8.ValidString(capped) {
		t.Fatalf("capped message is not valid UTF-8")
	}
	if len(capped) != 2000 {
		t.Fatalf("expected 2000 bytes after rune backoff, got %d", len(capped))
	}
}
