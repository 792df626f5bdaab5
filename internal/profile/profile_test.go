package profile

import (
	"testing"

	"github.com/theirongolddev/dburn/internal/model"
)

func TestDefaults(t *testing.T) {
	p := New(model.DefaultProfile())

	if got := p.DisplayName(); got != "User" {
		t.Fatalf("DisplayName = %q, want User", got)
	}
	if got := p.DailyBudget(); got != 500 {
		t.Fatalf("DailyBudget = %d, want 500", got)
	}
}

func TestSetters(t *testing.T) {
	p := New(model.DefaultProfile())

	p.SetDisplayName("Asha")
	p.SetDailyBudget(750)

	cur := p.Current()
	if cur.DisplayName != "Asha" || cur.DailyBudget != 750 {
		t.Fatalf("Current = %+v, want {Asha 750}", cur)
	}
}

func TestSetDailyBudgetString(t *testing.T) {
	tests := []struct {
		in      string
		applied bool
		want    int
	}{
		{"750", true, 750},
		{"0", true, 0},
		{"-5", false, 500},
		{"12.5", false, 500},
		{"abc", false, 500},
		{"", false, 500},
	}

	for _, tt := range tests {
		p := New(model.DefaultProfile())
		if got := p.SetDailyBudgetString(tt.in); got != tt.applied {
			t.Fatalf("SetDailyBudgetString(%q) = %v, want %v", tt.in, got, tt.applied)
		}
		if got := p.DailyBudget(); got != tt.want {
			t.Fatalf("after %q: DailyBudget = %d, want %d", tt.in, got, tt.want)
		}
	}
}
