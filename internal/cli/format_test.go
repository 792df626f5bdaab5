package cli

import (
	"testing"

	"github.com/theirongolddev/dburn/internal/pipeline"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{150, "$150"},
		{42.5, "$42.50"},
		{0, "$0"},
		{1234567, "$1,234,567"},
		{0.05, "$0.05"},
	}

	for _, tt := range tests {
		if got := FormatAmount("$", tt.v); got != tt.want {
			t.Fatalf("FormatAmount(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestFormatSignedAmount(t *testing.T) {
	if got := FormatSignedAmount("$", -120); got != "-$120" {
		t.Fatalf("got %q, want -$120", got)
	}
	if got := FormatSignedAmount("$", 350); got != "$350" {
		t.Fatalf("got %q, want $350", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1_000, "1,000"},
		{1_234_567, "1,234,567"},
		{-12_345, "-12,345"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatTier(t *testing.T) {
	if got := FormatTier(pipeline.TierMedium); got != "MEDIUM" {
		t.Fatalf("got %q, want MEDIUM", got)
	}
}

func TestFormatDayOfWeek(t *testing.T) {
	// 2026-08-31 is a Monday
	if got := FormatDayOfWeek("2026-08-31"); got != "Mon" {
		t.Fatalf("got %q, want Mon", got)
	}
	if got := FormatDayOfWeek("bogus"); got != "???" {
		t.Fatalf("got %q, want ???", got)
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("0123456789abcdef"); got != "01234567" {
		t.Fatalf("got %q, want 01234567", got)
	}
	if got := ShortID("abc"); got != "abc" {
		t.Fatalf("got %q, want abc", got)
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(0); got != "" {
		t.Fatalf("got %q, want empty for zero", got)
	}
	if got := FormatClock(-5); got != "" {
		t.Fatalf("got %q, want empty for negative", got)
	}
}
