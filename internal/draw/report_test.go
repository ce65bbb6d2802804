package draw

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestBuildReportCombinesSlots(t *testing.T) {
	now := time.Date(2025, 9, 12, 15, 0, 0, 0, Location())
	d10 := time.Date(2025, 9, 10, 0, 0, 0, 0, Location())
	d11 := time.Date(2025, 9, 11, 0, 0, 0, 0, Location())

	pairs := []Pair{
		{State: "ny", Slot: SlotMidday, Digits3: "417", Digits4: "9021", Date: d10},
		{State: "ny", Slot: SlotEvening, Digits3: "003", Digits4: "5566", Date: d11},
	}

	rep := BuildReport("ny", pairs, now)

	if rep.Midday == nil || *rep.Midday != "417-9021" {
		t.Errorf("Midday = %v, want 417-9021", rep.Midday)
	}
	if rep.Evening == nil || *rep.Evening != "003-5566" {
		t.Errorf("Evening = %v, want 003-5566", rep.Evening)
	}
	if rep.Night != nil {
		t.Errorf("Night = %v, want nil", rep.Night)
	}
	// Latest date among combined slots wins.
	if rep.Date != "2025-09-11" {
		t.Errorf("Date = %q, want 2025-09-11", rep.Date)
	}
}

func TestBuildReportDefaultsToToday(t *testing.T) {
	now := time.Date(2025, 9, 12, 15, 0, 0, 0, Location())

	// No pair produced a combined value, so no per-slot date is trusted.
	pairs := []Pair{
		{State: "ny", Slot: SlotMidday, Digits3: "417", Date: time.Date(2025, 9, 1, 0, 0, 0, 0, Location())},
		{State: "ny", Slot: SlotEvening},
	}

	rep := BuildReport("ny", pairs, now)

	if rep.Midday != nil {
		t.Errorf("Midday = %v, want nil for half-extracted pair", rep.Midday)
	}
	if rep.Date != "2025-09-12" {
		t.Errorf("Date = %q, want today 2025-09-12", rep.Date)
	}
}

func TestReportJSONShape(t *testing.T) {
	now := time.Date(2025, 9, 12, 15, 0, 0, 0, Location())
	rep := BuildReport("nj", nil, now)

	data, err := json.Marshal(rep)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	out := string(data)

	// Absent two-slot fields serialize as explicit nulls; night is omitted.
	if !strings.Contains(out, `"midday":null`) {
		t.Errorf("expected midday null, got %s", out)
	}
	if !strings.Contains(out, `"evening":null`) {
		t.Errorf("expected evening null, got %s", out)
	}
	if strings.Contains(out, "night") {
		t.Errorf("expected night omitted, got %s", out)
	}
}
