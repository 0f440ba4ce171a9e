package ui

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"  padded  ", 10, "padded"},
		{"Third Party Risk Assessment", 10, "Third P..."},
		{"abcdef", 3, "abc"},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestTruncateMiddleKeepsEnds(t *testing.T) {
	got := truncateMiddle("/home/operator/.local/state/lookout/lookout.log", 20)
	if len([]rune(got)) != 20 {
		t.Fatalf("truncateMiddle length = %d, want 20 (%q)", len([]rune(got)), got)
	}
	if got[:5] != "/home" {
		t.Fatalf("truncateMiddle prefix = %q", got)
	}
	if want := "lookout.log"; got[len(got)-len(want):] != want {
		t.Fatalf("truncateMiddle suffix = %q", got)
	}
}

func TestTruncateMiddleLongFileName(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"/var/log/lookout.log", 40, "/var/log/lookout.log"},
		{"/var/log/lookout.log", 15, "/v…/lookout.log"},
		{"/tmp/a-very-long-log-file-name.log", 12, "/tmp/…/e.log"},
		{"no-slash-at-all-here.log", 10, "no-s…/.log"},
		{"/abc/def", 3, "/ab"},
	}
	for _, tt := range tests {
		got := truncateMiddle(tt.in, tt.limit)
		if got != tt.want {
			t.Errorf("truncateMiddle(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
		if n := len([]rune(got)); n > tt.limit {
			t.Errorf("truncateMiddle(%q, %d) has %d runes", tt.in, tt.limit, n)
		}
	}
}

func TestPadRightAndOrDash(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Fatalf("padRight overflow = %q", got)
	}
	if got := orDash("  "); got != "-" {
		t.Fatalf("orDash blank = %q", got)
	}
	if got := orDash(" x "); got != "x" {
		t.Fatalf("orDash = %q", got)
	}
}
