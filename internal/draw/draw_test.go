package draw

import (
	"testing"
	"time"
)

func TestValidDigits(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want bool
	}{
		{"417", 3, true},
		{"0007", 4, true},
		{"41", 3, false},
		{"4170", 3, false},
		{"41a", 3, false},
		{"", 3, false},
		{"4 7", 3, false},
		{"9999", 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			if got := ValidDigits(tt.s, tt.n); got != tt.want {
				t.Errorf("ValidDigits(%q, %d) = %v, want %v", tt.s, tt.n, got, tt.want)
			}
		})
	}
}

func TestGameDigits(t *testing.T) {
	if got := GamePick3.Digits(); got != 3 {
		t.Errorf("GamePick3.Digits() = %d, want 3", got)
	}
	if got := GamePick4.Digits(); got != 4 {
		t.Errorf("GamePick4.Digits() = %d, want 4", got)
	}
}

func TestNewPairRejectsMalformedDigits(t *testing.T) {
	p := NewPair("ny", SlotMidday,
		Result{Digits: "41x"},
		Result{Digits: "12345"},
	)
	if p.Digits3 != "" {
		t.Errorf("Digits3 = %q, want empty for malformed input", p.Digits3)
	}
	if p.Digits4 != "" {
		t.Errorf("Digits4 = %q, want empty for wrong-length input", p.Digits4)
	}
	if _, ok := p.Combined(); ok {
		t.Error("Combined() should be absent when both halves are malformed")
	}
}

func TestPairCombined(t *testing.T) {
	tests := []struct {
		name    string
		d3, d4  string
		want    string
		wantOK  bool
	}{
		{"both present", "417", "9021", "417-9021", true},
		{"missing pick4", "417", "", "", false},
		{"missing pick3", "", "9021", "", false},
		{"both missing", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pair{Digits3: tt.d3, Digits4: tt.d4}
			got, ok := p.Combined()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Combined() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNewPairKeepsLaterDate(t *testing.T) {
	d1 := time.Date(2025, 9, 9, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	p := NewPair("ny", SlotEvening,
		Result{Digits: "417", Date: d1},
		Result{Digits: "9021", Date: d2},
	)
	if !p.Date.Equal(d2) {
		t.Errorf("Date = %v, want %v", p.Date, d2)
	}
}
