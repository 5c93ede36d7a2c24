package utils

import (
	"strings"
	"testing"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 5, "hello..."},
		{"runes", "日本語のメモ", 3, "日本語..."},
		{"zero limit", "hello", 0, "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.in, tt.n); got != tt.want {
				t.Errorf("Preview(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}

	long := strings.Repeat("a", 130)
	if got := Preview(long, 120); len(got) != 123 {
		t.Errorf("expected 120 chars plus ellipsis, got %d", len(got))
	}
}
