package scrape

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"drawfetch/internal/draw"
)

var (
	relativeRe = regexp.MustCompile(`(?i)\b(?:today|tonight|this\s+(?:evening|afternoon|morning))\b`)
	monthRe    = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{1,2})(?:\s*,?\s*(\d{4}))?`)
	numericRe  = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})(?:[/-](\d{2,4}))?\b`)
)

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ResolveDate scans candidate texts, ordered from narrowest to widest scope,
// for a draw date. Within one text the accepted forms are tried in priority
// order: a relative phrase ("tonight"), a month-name form ("Sep 10, 2025"),
// then a numeric form ("9/10/25"). Two-digit years are shifted into the
// 2000s; a missing year defaults to now's year. Returns false when no form
// matches anywhere; the caller decides whether "today" is an acceptable
// stand-in.
func ResolveDate(texts []string, now time.Time) (time.Time, bool) {
	for _, text := range texts {
		if t, ok := parseDrawDate(text, now); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateCandidates flattens the widening chain around anchor into the ordered
// text sequence ResolveDate expects.
func DateCandidates(anchor, scope *goquery.Selection) []string {
	chain := ScopeChain(anchor, scope)
	texts := make([]string, 0, len(chain))
	for _, level := range chain {
		if t := normalize(level.Text()); t != "" {
			texts = append(texts, t)
		}
	}
	return texts
}

func parseDrawDate(text string, now time.Time) (time.Time, bool) {
	if relativeRe.MatchString(text) {
		local := now.In(draw.Location())
		return midnight(local.Year(), local.Month(), local.Day()), true
	}

	for _, m := range monthRe.FindAllStringSubmatch(text, -1) {
		month := months[strings.ToLower(m[1])]
		day, _ := strconv.Atoi(m[2])
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		if day >= 1 && day <= 31 {
			return midnight(year, month, day), true
		}
	}

	for _, m := range numericRe.FindAllStringSubmatch(text, -1) {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if year < 100 {
				year += 2000
			}
		}
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return midnight(year, time.Month(month), day), true
		}
	}

	return time.Time{}, false
}

func midnight(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, draw.Location())
}
