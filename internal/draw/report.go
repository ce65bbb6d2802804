package draw

import "time"

// Reference timezone for report dates. US numbers games publish in Eastern
// time; fall back to a fixed offset if the zone database is unavailable.
var eastern = loadEastern()

func loadEastern() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.FixedZone("ET", -5*60*60)
	}
	return loc
}

// Location returns the reference timezone used for "today" defaults.
func Location() *time.Location {
	return eastern
}

// Report is the state-level daily result. Date is always populated; slot
// fields are nil when either half of the pair could not be extracted. Night
// is omitted for states that only model two slots.
type Report struct {
	State   string  `json:"state"`
	Date    string  `json:"date"`
	Midday  *string `json:"midday"`
	Evening *string `json:"evening"`
	Night   *string `json:"night,omitempty"`
}

// BuildReport combines per-slot pairs into the daily report. The report date
// is the most recent date among slots that produced a combined value; when no
// slot did, it defaults to "today" in the reference timezone.
func BuildReport(state string, pairs []Pair, now time.Time) *Report {
	rep := &Report{State: state}

	var best time.Time
	for _, p := range pairs {
		combined, ok := p.Combined()
		if !ok {
			continue
		}
		v := combined
		switch p.Slot {
		case SlotMidday:
			rep.Midday = &v
		case SlotEvening:
			rep.Evening = &v
		case SlotNight:
			rep.Night = &v
		}
		if p.Date.After(best) {
			best = p.Date
		}
	}

	if best.IsZero() {
		best = now.In(eastern)
	}
	rep.Date = best.Format("2006-01-02")
	return rep
}
