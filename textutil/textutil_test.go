package textutil

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestClip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"ascii cut", "hello world", 5, "hello"},
		{"empty", "", 4, ""},
		{"zero max", "hello", 0, ""},
		{"negative max", "hello", -1, ""},
		{"em dash boundary", "a—b", 4, "a—"},
		{"em dash split", "a—b", 3, "a"},
		{"em dash split low", "a—b", 2, "a"},
		{"curly quote", "“hello”", 2, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clip(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("Clip(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Clip(%q, %d) = %q is not valid UTF-8", tt.in, tt.max, got)
			}
		})
	}
}

func TestClipNeverSplitsRunes(t *testing.T) {
	// Em dashes are 3 bytes each, so every cut offset lands mid-rune
	// two times out of three.
	long := strings.Repeat("—", 400)
	for max := 0; max < 30; max++ {
		got := Clip(long, max)
		if !utf8.ValidString(got) {
			t.Fatalf("Clip at %d produced invalid UTF-8: %q", max, got)
		}
		if len(got) > max {
			t.Fatalf("Clip at %d returned %d bytes", max, len(got))
		}
	}
}

func TestEllipsis(t *testing.T) {
	if got := Ellipsis("short", 10); got != "short" {
		t.Errorf("Ellipsis(short) = %q", got)
	}
	got := Ellipsis(strings.Repeat("“", 100), 20)
	if len(got) > 20 {
		t.Errorf("Ellipsis returned %d bytes, want <= 20", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Ellipsis = %q, want ... suffix", got)
	}
	if !utf8.ValidString(got) {
		t.Errorf("Ellipsis = %q is not valid UTF-8", got)
	}
}
