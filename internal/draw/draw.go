package draw

import (
	"fmt"
	"time"
)

// Slot is a named draw time within a day.
type Slot string

const (
	SlotMidday  Slot = "midday"
	SlotEvening Slot = "evening"
	SlotNight   Slot = "night"
)

// Game identifies a numbers game by how many digits it draws.
type Game string

const (
	GamePick3 Game = "pick3"
	GamePick4 Game = "pick4"
)

// Digits returns the number of decimal digits the game draws.
func (g Game) Digits() int {
	if g == GamePick4 {
		return 4
	}
	return 3
}

// Result is the outcome of one extraction attempt. Digits is either exactly
// the game's digit count or empty, never partially filled. A zero Date means
// no draw date was recovered.
type Result struct {
	Digits    string
	Date      time.Time
	SourceURL string
}

// Present reports whether the attempt recovered digits.
func (r Result) Present() bool {
	return r.Digits != ""
}

// ValidDigits reports whether s is exactly n decimal digits.
func ValidDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Pair holds the independently extracted 3-digit and 4-digit results for one
// slot. Date is the more recent of the dates the two halves recovered.
type Pair struct {
	State   string
	Slot    Slot
	Digits3 string
	Digits4 string
	Date    time.Time
}

// NewPair validates both halves and combines their dates. A malformed digit
// string is treated as absent rather than propagated.
func NewPair(state string, slot Slot, r3, r4 Result) Pair {
	p := Pair{State: state, Slot: slot}
	if ValidDigits(r3.Digits, 3) {
		p.Digits3 = r3.Digits
	}
	if ValidDigits(r4.Digits, 4) {
		p.Digits4 = r4.Digits
	}
	p.Date = laterDate(r3.Date, r4.Date)
	return p
}

// Combined returns the "ddd-dddd" form for the slot. It exists only when both
// halves were extracted.
func (p Pair) Combined() (string, bool) {
	if p.Digits3 == "" || p.Digits4 == "" {
		return "", false
	}
	return fmt.Sprintf("%s-%s", p.Digits3, p.Digits4), true
}

func laterDate(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
